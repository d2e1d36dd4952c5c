package company

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ponto-digital/ponto-backend-go/internal/config"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/company"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/user"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/utils"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/validator"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
	userRepo user.UserRepository
	security config.SecurityConfig
}

func NewCompanyService(companyRepository company.CompanyRepository, userRepository user.UserRepository, security config.SecurityConfig) company.CompanyService {
	return &CompanyServiceImpl{
		CompanyRepository: companyRepository,
		userRepo:          userRepository,
		security:          security,
	}
}

// Create implements company.CompanyService.
func (s *CompanyServiceImpl) Create(ctx context.Context, req company.CreateRequest) (company.Response, error) {
	if err := req.Validate(); err != nil {
		return company.Response{}, err
	}

	cnpj := validator.NormalizeCNPJ(req.CNPJ)
	if _, err := s.CompanyRepository.GetByCNPJ(ctx, cnpj); err == nil {
		return company.Response{}, company.ErrCNPJExists
	} else if !errors.Is(err, company.ErrCompanyNotFound) {
		return company.Response{}, fmt.Errorf("failed to check cnpj: %w", err)
	}

	entity := company.Company{
		Name:        req.Name,
		CNPJ:        cnpj,
		Email:       req.Email,
		EmailDomain: req.EmailDomain,
		Phone:       req.Phone,
		IsActive:    true,
	}
	if req.Address != nil {
		entity.Address = company.Address{
			Street:  req.Address.Street,
			Number:  req.Address.Number,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
		}
	}
	if req.Workplace != nil {
		entity.Workplace = &company.WorkplaceLocation{
			Latitude:  req.Workplace.Latitude,
			Longitude: req.Workplace.Longitude,
		}
	}

	created, err := s.CompanyRepository.Create(ctx, entity)
	if err != nil {
		return company.Response{}, err
	}

	return company.ToResponse(created), nil
}

// GetByID implements company.CompanyService.
func (s *CompanyServiceImpl) GetByID(ctx context.Context, id string) (company.Response, error) {
	found, err := s.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		return company.Response{}, err
	}

	employeeCount, err := s.userRepo.CountByCompany(ctx, id, nil, false)
	if err != nil {
		return company.Response{}, err
	}
	managerCount, err := s.userRepo.CountByCompany(ctx, id, []user.Role{user.RoleManager, user.RoleHR}, false)
	if err != nil {
		return company.Response{}, err
	}
	found.EmployeeCount = &employeeCount
	found.ManagerCount = &managerCount

	return company.ToResponse(found), nil
}

// List implements company.CompanyService.
func (s *CompanyServiceImpl) List(ctx context.Context) ([]company.Response, error) {
	companies, err := s.CompanyRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]company.Response, 0, len(companies))
	for _, c := range companies {
		responses = append(responses, company.ToResponse(c))
	}
	return responses, nil
}

// Update implements company.CompanyService. CNPJ is immutable after
// creation; a differing value is rejected.
func (s *CompanyServiceImpl) Update(ctx context.Context, id string, req company.UpdateRequest) (company.Response, error) {
	if err := req.Validate(); err != nil {
		return company.Response{}, err
	}

	existing, err := s.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		return company.Response{}, err
	}

	if req.CNPJ != nil && validator.NormalizeCNPJ(*req.CNPJ) != existing.CNPJ {
		return company.Response{}, company.ErrCNPJExists
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.EmailDomain != nil {
		existing.EmailDomain = *req.EmailDomain
	}
	if req.Phone != nil {
		existing.Phone = req.Phone
	}
	if req.Address != nil {
		existing.Address = company.Address{
			Street:  req.Address.Street,
			Number:  req.Address.Number,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
		}
	}
	if req.Workplace != nil {
		existing.Workplace = &company.WorkplaceLocation{
			Latitude:  req.Workplace.Latitude,
			Longitude: req.Workplace.Longitude,
		}
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.CompanyRepository.Update(ctx, existing); err != nil {
		return company.Response{}, err
	}

	return s.GetByID(ctx, id)
}

// Delete implements company.CompanyService. A company with linked staff
// cannot be removed; deactivate it instead.
func (s *CompanyServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.CompanyRepository.GetByID(ctx, id); err != nil {
		return err
	}

	staff, err := s.userRepo.CountByCompany(ctx, id, nil, false)
	if err != nil {
		return err
	}
	if staff > 0 {
		return company.ErrCompanyHasStaff
	}

	return s.CompanyRepository.Delete(ctx, id)
}

// CreateManager implements company.CompanyService. The temporary password
// is returned exactly once for the admin to hand over.
func (s *CompanyServiceImpl) CreateManager(ctx context.Context, companyID string, req company.CreateManagerRequest) (company.CreatedManager, error) {
	if err := req.Validate(); err != nil {
		return company.CreatedManager{}, err
	}

	companyData, err := s.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return company.CreatedManager{}, err
	}

	cpf := validator.NormalizeCPF(req.CPF)
	if _, err := s.userRepo.GetByCPF(ctx, cpf); err == nil {
		return company.CreatedManager{}, user.ErrCPFExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return company.CreatedManager{}, fmt.Errorf("failed to check cpf: %w", err)
	}

	email := fmt.Sprintf("coordenador@%s", companyData.EmailDomain)
	if req.Email != nil && *req.Email != "" {
		email = *req.Email
	}
	if exists, err := s.userRepo.EmailExists(ctx, email); err != nil {
		return company.CreatedManager{}, err
	} else if exists {
		return company.CreatedManager{}, user.ErrEmailExists
	}

	tempPassword, err := utils.GenerateTempPassword(8)
	if err != nil {
		return company.CreatedManager{}, fmt.Errorf("failed to generate password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), s.security.BcryptCost)
	if err != nil {
		return company.CreatedManager{}, fmt.Errorf("failed to hash password: %w", err)
	}

	department := "Gestão"
	if req.Department != nil && *req.Department != "" {
		department = *req.Department
	}
	position := "Coordenador"
	if req.Position != nil && *req.Position != "" {
		position = *req.Position
	}

	created, err := s.userRepo.Create(ctx, user.User{
		CompanyID:    companyID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		CPF:          cpf,
		Role:         user.RoleManager,
		Department:   &department,
		Position:     &position,
		Phone:        req.Phone,
		IsActive:     true,
	})
	if err != nil {
		return company.CreatedManager{}, err
	}

	return company.CreatedManager{
		ID:                created.ID,
		Name:              created.Name,
		Email:             created.Email,
		CPF:               created.CPF,
		Role:              string(created.Role),
		TemporaryPassword: tempPassword,
	}, nil
}
