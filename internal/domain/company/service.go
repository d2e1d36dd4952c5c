package company

import "context"

// CreatedManager is returned from manager creation; the temporary
// password is surfaced once so the admin can hand it over.
type CreatedManager struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	CPF               string `json:"cpf"`
	Role              string `json:"role"`
	TemporaryPassword string `json:"temporaryPassword"`
}

// CompanyService defines business logic for company administration.
// All operations are admin-only; the handler layer enforces that.
type CompanyService interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	GetByID(ctx context.Context, id string) (Response, error)
	List(ctx context.Context) ([]Response, error)
	Update(ctx context.Context, id string, req UpdateRequest) (Response, error)

	// Delete refuses when employees are still linked to the company.
	Delete(ctx context.Context, id string) error

	CreateManager(ctx context.Context, companyID string, req CreateManagerRequest) (CreatedManager, error)
}
