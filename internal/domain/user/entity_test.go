package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAuthorizedDevice(t *testing.T) {
	u := User{}

	require.NoError(t, u.AddAuthorizedDevice("dev-1", "Pixel 9", 2))
	require.NoError(t, u.AddAuthorizedDevice("dev-2", "iPhone 16", 2))
	assert.Len(t, u.AuthorizedDevices, 2)

	// Third device exceeds the limit and leaves the list unchanged
	err := u.AddAuthorizedDevice("dev-3", "Galaxy S25", 2)
	assert.ErrorIs(t, err, ErrDeviceLimitReached)
	assert.Len(t, u.AuthorizedDevices, 2)

	// Re-adding a known device is a no-op even at the limit
	require.NoError(t, u.AddAuthorizedDevice("dev-1", "Pixel 9", 2))
	assert.Len(t, u.AuthorizedDevices, 2)

	assert.True(t, u.IsDeviceAuthorized("dev-1"))
	assert.False(t, u.IsDeviceAuthorized("dev-3"))
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{"employee", "manager", "hr", "admin"} {
		assert.True(t, ValidRole(role), role)
	}
	for _, role := range []string{"", "owner", "EMPLOYEE", "root"} {
		assert.False(t, ValidRole(role), role)
	}
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleEmployee, PermissionTimeRecordCreate))
	assert.False(t, HasPermission(RoleEmployee, PermissionTimeRecordViewAll))
	assert.True(t, HasPermission(RoleManager, PermissionAbsenceReview))
	assert.False(t, HasPermission(RoleManager, PermissionEmployeeManage))
	assert.True(t, HasPermission(RoleHR, PermissionEmployeeManage))
	assert.True(t, HasPermission(RoleAdmin, PermissionCompanyManage))
	assert.False(t, HasPermission(Role("ghost"), PermissionTimeRecordCreate))
}
