package user

import "context"

// UserRepository defines data access methods for users.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByCPF(ctx context.Context, cpf string) (User, error)
	Update(ctx context.Context, u User) error
	UpdateLastLogin(ctx context.Context, id string) error

	// AddAuthorizedDevice appends a device atomically. The length limit and
	// the device-id uniqueness are re-checked inside the statement so two
	// concurrent logins cannot exceed maxDevices.
	AddAuthorizedDevice(ctx context.Context, userID string, device AuthorizedDevice, maxDevices int) error

	// List returns users matched by filter with total count for pagination.
	List(ctx context.Context, filter ListFilter) ([]User, int64, error)
	CountByCompany(ctx context.Context, companyID string, roles []Role, activeOnly bool) (int64, error)
	CountInactiveByCompany(ctx context.Context, companyID string) (int64, error)

	EmailExists(ctx context.Context, email string) (bool, error)

	// DepartmentCounts breaks active users down by department, largest
	// departments first.
	DepartmentCounts(ctx context.Context, companyID string) ([]DepartmentCount, error)
}

// ListFilter scopes and paginates user listings. A nil CompanyID means
// unscoped (admin); handlers never set it directly, the policy evaluator does.
type ListFilter struct {
	CompanyID  *string
	Role       *Role
	Search     string
	Department *string
	IsActive   *bool
	Page       int
	Limit      int
}
