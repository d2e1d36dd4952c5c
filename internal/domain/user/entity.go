package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Clocks in/out, manages own requests
	RoleManager  Role = "manager"  // Reviews requests for own company
	RoleHR       Role = "hr"       // Manager powers plus employee administration
	RoleAdmin    Role = "admin"    // Cross-company administration
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleEmployee, RoleManager, RoleHR, RoleAdmin:
		return true
	}
	return false
}

// AuthorizedDevice is a client device approved for clock actions.
type AuthorizedDevice struct {
	DeviceID     string    `json:"device_id"`
	DeviceName   string    `json:"device_name"`
	AuthorizedAt time.Time `json:"authorized_at"`
}

type User struct {
	ID                string
	CompanyID         string
	Name              string
	Email             string
	PasswordHash      string
	CPF               string
	Role              Role
	Department        *string
	Position          *string
	Phone             *string
	ProfileImageURL   *string
	AuthorizedDevices []AuthorizedDevice
	IsActive          bool
	LastLoginAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO / Join
	CompanyName *string
}

// IsAdmin checks if user has cross-company privileges
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanReview checks if user can approve/reject requests
func (u *User) CanReview() bool {
	return u.Role == RoleManager || u.Role == RoleHR || u.Role == RoleAdmin
}

// IsDeviceAuthorized reports whether deviceID is in the authorized list.
func (u *User) IsDeviceAuthorized(deviceID string) bool {
	for _, d := range u.AuthorizedDevices {
		if d.DeviceID == deviceID {
			return true
		}
	}
	return false
}

// AddAuthorizedDevice appends a device to the authorized list. Adding a
// device beyond maxDevices fails and leaves the list unchanged; adding an
// already-authorized device is a no-op.
func (u *User) AddAuthorizedDevice(deviceID, deviceName string, maxDevices int) error {
	if u.IsDeviceAuthorized(deviceID) {
		return nil
	}
	if len(u.AuthorizedDevices) >= maxDevices {
		return ErrDeviceLimitReached
	}
	u.AuthorizedDevices = append(u.AuthorizedDevices, AuthorizedDevice{
		DeviceID:     deviceID,
		DeviceName:   deviceName,
		AuthorizedAt: time.Now().UTC(),
	})
	return nil
}
