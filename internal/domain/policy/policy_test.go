package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/user"
)

var (
	employeeActor = Actor{UserID: "u1", CompanyID: "c1", Role: user.RoleEmployee}
	managerActor  = Actor{UserID: "u2", CompanyID: "c1", Role: user.RoleManager}
	hrActor       = Actor{UserID: "u3", CompanyID: "c1", Role: user.RoleHR}
	adminActor    = Actor{UserID: "u4", CompanyID: "c0", Role: user.RoleAdmin}
)

func TestScopeFor(t *testing.T) {
	t.Run("employee scoped to self and company", func(t *testing.T) {
		scope := ScopeFor(employeeActor, nil)
		assert.Equal(t, "c1", *scope.CompanyID)
		assert.Equal(t, "u1", *scope.UserID)
	})

	t.Run("manager scoped to company only", func(t *testing.T) {
		scope := ScopeFor(managerActor, nil)
		assert.Equal(t, "c1", *scope.CompanyID)
		assert.Nil(t, scope.UserID)
	})

	t.Run("hr scoped to company only", func(t *testing.T) {
		scope := ScopeFor(hrActor, nil)
		assert.Equal(t, "c1", *scope.CompanyID)
		assert.Nil(t, scope.UserID)
	})

	t.Run("admin unscoped", func(t *testing.T) {
		scope := ScopeFor(adminActor, nil)
		assert.Nil(t, scope.CompanyID)
		assert.Nil(t, scope.UserID)
	})

	t.Run("admin narrowed to requested company", func(t *testing.T) {
		requested := "c9"
		scope := ScopeFor(adminActor, &requested)
		assert.Equal(t, "c9", *scope.CompanyID)
	})

	t.Run("manager cannot widen scope via request", func(t *testing.T) {
		requested := "c9"
		scope := ScopeFor(managerActor, &requested)
		assert.Equal(t, "c1", *scope.CompanyID)
	})
}

func TestCanAccessCompany(t *testing.T) {
	assert.NoError(t, CanAccessCompany(managerActor, "c1"))
	assert.ErrorIs(t, CanAccessCompany(managerActor, "c2"), ErrCrossCompanyAccess)
	assert.NoError(t, CanAccessCompany(adminActor, "c2"))
}

func TestCanAccessUserRecords(t *testing.T) {
	t.Run("own records always allowed", func(t *testing.T) {
		assert.NoError(t, CanAccessUserRecords(employeeActor, "u1", "c1"))
	})

	t.Run("employee cannot read peers", func(t *testing.T) {
		assert.ErrorIs(t, CanAccessUserRecords(employeeActor, "u5", "c1"), ErrSelfOnly)
	})

	t.Run("manager reads own company", func(t *testing.T) {
		assert.NoError(t, CanAccessUserRecords(managerActor, "u5", "c1"))
	})

	t.Run("manager blocked cross company", func(t *testing.T) {
		assert.ErrorIs(t, CanAccessUserRecords(managerActor, "u5", "c2"), ErrCrossCompanyAccess)
	})

	t.Run("admin reads anyone", func(t *testing.T) {
		assert.NoError(t, CanAccessUserRecords(adminActor, "u5", "c2"))
	})
}

func TestCanReview(t *testing.T) {
	assert.ErrorIs(t, CanReview(employeeActor, "c1"), ErrReviewerRoleRequired)
	assert.NoError(t, CanReview(managerActor, "c1"))
	assert.NoError(t, CanReview(hrActor, "c1"))
	assert.ErrorIs(t, CanReview(managerActor, "c2"), ErrCrossCompanyAccess)
	assert.NoError(t, CanReview(adminActor, "c2"))
}

func TestCanManageEmployee(t *testing.T) {
	assert.ErrorIs(t, CanManageEmployee(employeeActor, "c1"), ErrManagementRoleRequired)
	assert.ErrorIs(t, CanManageEmployee(managerActor, "c1"), ErrManagementRoleRequired)
	assert.NoError(t, CanManageEmployee(hrActor, "c1"))
	assert.ErrorIs(t, CanManageEmployee(hrActor, "c2"), ErrCrossCompanyAccess)
	assert.NoError(t, CanManageEmployee(adminActor, "c2"))
}

func TestCanAssignRole(t *testing.T) {
	assert.NoError(t, CanAssignRole(hrActor, user.RoleEmployee))
	assert.ErrorIs(t, CanAssignRole(hrActor, user.RoleManager), ErrRoleAssignmentDenied)
	assert.ErrorIs(t, CanAssignRole(hrActor, user.RoleAdmin), ErrRoleAssignmentDenied)
	assert.NoError(t, CanAssignRole(adminActor, user.RoleManager))
	assert.NoError(t, CanAssignRole(adminActor, user.RoleHR))
}
