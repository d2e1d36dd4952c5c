package user

import "context"

// EmployeeService defines employee administration. The corporate email is
// generated from the department slug and the company email domain, with a
// numeric suffix on collision.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (CreatedEmployee, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, query EmployeeListQuery) (EmployeeListResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Deactivate is a soft delete; the account and its records survive.
	Deactivate(ctx context.Context, id string) error

	Stats(ctx context.Context, requestedCompanyID *string) (EmployeeStatsResponse, error)
}
