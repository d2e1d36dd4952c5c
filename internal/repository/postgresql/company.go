package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/company"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

const companyColumns = `id, name, cnpj, email, email_domain, phone,
	   address_street, address_number, address_city, address_state, address_zip_code,
	   workplace_latitude, workplace_longitude,
	   is_active, created_at, updated_at`

func scanCompany(row pgx.Row) (company.Company, error) {
	var found company.Company
	var workplaceLat, workplaceLong *float64
	err := row.Scan(
		&found.ID,
		&found.Name,
		&found.CNPJ,
		&found.Email,
		&found.EmailDomain,
		&found.Phone,
		&found.Address.Street,
		&found.Address.Number,
		&found.Address.City,
		&found.Address.State,
		&found.Address.ZipCode,
		&workplaceLat,
		&workplaceLong,
		&found.IsActive,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return company.Company{}, err
	}
	if workplaceLat != nil && workplaceLong != nil {
		found.Workplace = &company.WorkplaceLocation{
			Latitude:  *workplaceLat,
			Longitude: *workplaceLong,
		}
	}
	return found, nil
}

func workplaceCoords(c company.Company) (lat, long *float64) {
	if c.Workplace != nil {
		lat = &c.Workplace.Latitude
		long = &c.Workplace.Longitude
	}
	return lat, long
}

// Create implements company.CompanyRepository.
func (r *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	lat, long := workplaceCoords(newCompany)

	query := `
		INSERT INTO companies (
			name, cnpj, email, email_domain, phone,
			address_street, address_number, address_city, address_state, address_zip_code,
			workplace_latitude, workplace_longitude, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + companyColumns

	created, err := scanCompany(q.QueryRow(ctx, query,
		newCompany.Name,
		newCompany.CNPJ,
		newCompany.Email,
		newCompany.EmailDomain,
		newCompany.Phone,
		newCompany.Address.Street,
		newCompany.Address.Number,
		newCompany.Address.City,
		newCompany.Address.State,
		newCompany.Address.ZipCode,
		lat,
		long,
		newCompany.IsActive,
	))
	if err != nil {
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	return created, nil
}

// GetByID implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	found, err := scanCompany(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company by id: %w", err)
	}

	return found, nil
}

// GetByCNPJ implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetByCNPJ(ctx context.Context, cnpj string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + companyColumns + ` FROM companies WHERE cnpj = $1`

	found, err := scanCompany(q.QueryRow(ctx, query, cnpj))
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company by cnpj: %w", err)
	}

	return found, nil
}

// List implements company.CompanyRepository. Employee and manager counts
// come along for the admin listing.
func (r *companyRepositoryImpl) List(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.name, c.cnpj, c.email, c.email_domain, c.phone,
			   c.address_street, c.address_number, c.address_city, c.address_state, c.address_zip_code,
			   c.workplace_latitude, c.workplace_longitude,
			   c.is_active, c.created_at, c.updated_at,
			   COUNT(u.id) FILTER (WHERE u.role = 'employee') AS employee_count,
			   COUNT(u.id) FILTER (WHERE u.role IN ('manager', 'hr')) AS manager_count
		FROM companies c
		LEFT JOIN users u ON u.company_id = c.id AND u.is_active = TRUE
		GROUP BY c.id
		ORDER BY c.name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]company.Company, 0)
	for rows.Next() {
		var found company.Company
		var workplaceLat, workplaceLong *float64
		err := rows.Scan(
			&found.ID,
			&found.Name,
			&found.CNPJ,
			&found.Email,
			&found.EmailDomain,
			&found.Phone,
			&found.Address.Street,
			&found.Address.Number,
			&found.Address.City,
			&found.Address.State,
			&found.Address.ZipCode,
			&workplaceLat,
			&workplaceLong,
			&found.IsActive,
			&found.CreatedAt,
			&found.UpdatedAt,
			&found.EmployeeCount,
			&found.ManagerCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		if workplaceLat != nil && workplaceLong != nil {
			found.Workplace = &company.WorkplaceLocation{
				Latitude:  *workplaceLat,
				Longitude: *workplaceLong,
			}
		}
		companies = append(companies, found)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}

// Update implements company.CompanyRepository.
func (r *companyRepositoryImpl) Update(ctx context.Context, c company.Company) error {
	q := GetQuerier(ctx, r.db)

	lat, long := workplaceCoords(c)

	query := `
		UPDATE companies
		SET name = $1, email = $2, email_domain = $3, phone = $4,
			address_street = $5, address_number = $6, address_city = $7,
			address_state = $8, address_zip_code = $9,
			workplace_latitude = $10, workplace_longitude = $11,
			is_active = $12, updated_at = NOW()
		WHERE id = $13
	`

	tag, err := q.Exec(ctx, query,
		c.Name,
		c.Email,
		c.EmailDomain,
		c.Phone,
		c.Address.Street,
		c.Address.Number,
		c.Address.City,
		c.Address.State,
		c.Address.ZipCode,
		lat,
		long,
		c.IsActive,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}

	return nil
}

// Delete implements company.CompanyRepository.
func (r *companyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}

	return nil
}
