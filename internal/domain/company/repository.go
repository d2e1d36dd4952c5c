package company

import "context"

// CompanyRepository defines data access methods for companies.
type CompanyRepository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	GetByCNPJ(ctx context.Context, cnpj string) (Company, error)
	List(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, c Company) error
	Delete(ctx context.Context, id string) error
}
