package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/ponto-digital/ponto-backend-go/internal/config"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/company"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/policy"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/user"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/authctx"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/email"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/utils"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	user.UserRepository
	companyRepo company.CompanyRepository
	emailSvc    email.EmailService
	security    config.SecurityConfig
}

func NewEmployeeService(userRepository user.UserRepository, companyRepository company.CompanyRepository, emailService email.EmailService, security config.SecurityConfig) user.EmployeeService {
	return &EmployeeServiceImpl{
		UserRepository: userRepository,
		companyRepo:    companyRepository,
		emailSvc:       emailService,
		security:       security,
	}
}

// Create implements user.EmployeeService. The corporate email is built
// from the department slug and the company email domain; collisions get a
// numeric suffix (vendas@, vendas1@, vendas2@...).
func (s *EmployeeServiceImpl) Create(ctx context.Context, req user.CreateEmployeeRequest) (user.CreatedEmployee, error) {
	if err := req.Validate(); err != nil {
		return user.CreatedEmployee{}, err
	}

	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return user.CreatedEmployee{}, err
	}

	companyID := actor.CompanyID
	if actor.Role == user.RoleAdmin && req.CompanyID != nil && *req.CompanyID != "" {
		companyID = *req.CompanyID
	}

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}
	if err := policy.CanAssignRole(actor, role); err != nil {
		return user.CreatedEmployee{}, err
	}

	companyData, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return user.CreatedEmployee{}, err
	}

	cpf := validator.NormalizeCPF(req.CPF)
	if _, err := s.UserRepository.GetByCPF(ctx, cpf); err == nil {
		return user.CreatedEmployee{}, user.ErrCPFExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.CreatedEmployee{}, fmt.Errorf("failed to check cpf: %w", err)
	}

	generatedEmail, err := s.generateCorporateEmail(ctx, req.Department, companyData.EmailDomain)
	if err != nil {
		return user.CreatedEmployee{}, err
	}

	tempPassword, err := utils.GenerateTempPassword(8)
	if err != nil {
		return user.CreatedEmployee{}, fmt.Errorf("failed to generate password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), s.security.BcryptCost)
	if err != nil {
		return user.CreatedEmployee{}, fmt.Errorf("failed to hash password: %w", err)
	}

	position := req.Department
	if req.Position != nil && *req.Position != "" {
		position = *req.Position
	}
	department := req.Department

	created, err := s.UserRepository.Create(ctx, user.User{
		CompanyID:    companyID,
		Name:         req.Name,
		Email:        generatedEmail,
		PasswordHash: string(hash),
		CPF:          cpf,
		Role:         role,
		Department:   &department,
		Position:     &position,
		Phone:        req.Phone,
		IsActive:     true,
	})
	if err != nil {
		return user.CreatedEmployee{}, err
	}
	created.CompanyName = &companyData.Name

	// Credential delivery is best effort; the password is also returned
	// in the response for hr to hand over.
	if err := s.emailSvc.SendCredentials(generatedEmail, created.Name, companyData.Name, generatedEmail, tempPassword); err != nil {
		slog.Warn("Failed to send credentials email", "employee_id", created.ID, "error", err)
	}

	return user.CreatedEmployee{
		Employee:          user.ToEmployeeResponse(created),
		TemporaryPassword: tempPassword,
	}, nil
}

// GetByID implements user.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (user.EmployeeResponse, error) {
	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return user.EmployeeResponse{}, err
	}

	found, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.EmployeeResponse{}, err
	}
	if err := policy.CanAccessCompany(actor, found.CompanyID); err != nil {
		return user.EmployeeResponse{}, err
	}

	if companyData, err := s.companyRepo.GetByID(ctx, found.CompanyID); err == nil {
		found.CompanyName = &companyData.Name
	}

	return user.ToEmployeeResponse(found), nil
}

// List implements user.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, query user.EmployeeListQuery) (user.EmployeeListResponse, error) {
	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return user.EmployeeListResponse{}, err
	}

	scope := policy.ScopeFor(actor, query.CompanyID)

	filter := user.ListFilter{
		CompanyID:  scope.CompanyID,
		Search:     query.Search,
		Department: query.Department,
		IsActive:   query.IsActive,
		Page:       query.Page,
		Limit:      query.Limit,
	}

	employees, total, err := s.UserRepository.List(ctx, filter)
	if err != nil {
		return user.EmployeeListResponse{}, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	responses := make([]user.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, user.ToEmployeeResponse(e))
	}

	return user.EmployeeListResponse{
		Employees:  responses,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// Update implements user.EmployeeService. Role changes require admin.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req user.UpdateEmployeeRequest) (user.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return user.EmployeeResponse{}, err
	}

	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return user.EmployeeResponse{}, err
	}

	existing, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.EmployeeResponse{}, err
	}
	if err := policy.CanManageEmployee(actor, existing.CompanyID); err != nil {
		return user.EmployeeResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Department != nil {
		existing.Department = req.Department
	}
	if req.Position != nil {
		existing.Position = req.Position
	}
	if req.Phone != nil {
		existing.Phone = req.Phone
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if req.Role != nil {
		newRole := user.Role(*req.Role)
		if err := policy.CanAssignRole(actor, newRole); err != nil {
			return user.EmployeeResponse{}, err
		}
		existing.Role = newRole
	}

	if err := s.UserRepository.Update(ctx, existing); err != nil {
		return user.EmployeeResponse{}, err
	}

	return s.GetByID(ctx, id)
}

// Deactivate implements user.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := policy.CanManageEmployee(actor, existing.CompanyID); err != nil {
		return err
	}

	existing.IsActive = false
	return s.UserRepository.Update(ctx, existing)
}

// Stats implements user.EmployeeService.
func (s *EmployeeServiceImpl) Stats(ctx context.Context, requestedCompanyID *string) (user.EmployeeStatsResponse, error) {
	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return user.EmployeeStatsResponse{}, err
	}

	companyID := actor.CompanyID
	if actor.Role == user.RoleAdmin && requestedCompanyID != nil && *requestedCompanyID != "" {
		companyID = *requestedCompanyID
	}

	// hr accounts are excluded from the headcount, matching the HR
	// dashboard convention.
	total, err := s.UserRepository.CountByCompany(ctx, companyID, []user.Role{user.RoleEmployee, user.RoleManager, user.RoleAdmin}, true)
	if err != nil {
		return user.EmployeeStatsResponse{}, err
	}
	inactive, err := s.UserRepository.CountInactiveByCompany(ctx, companyID)
	if err != nil {
		return user.EmployeeStatsResponse{}, err
	}
	byDepartment, err := s.UserRepository.DepartmentCounts(ctx, companyID)
	if err != nil {
		return user.EmployeeStatsResponse{}, err
	}

	return user.EmployeeStatsResponse{
		TotalEmployees: total,
		TotalInactive:  inactive,
		ByDepartment:   byDepartment,
	}, nil
}

func (s *EmployeeServiceImpl) generateCorporateEmail(ctx context.Context, department, emailDomain string) (string, error) {
	slug := utils.Slugify(department)
	if slug == "" {
		slug = "colaborador"
	}

	candidate := fmt.Sprintf("%s@%s", slug, emailDomain)
	counter := 1
	for {
		exists, err := s.UserRepository.EmailExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d@%s", slug, counter, emailDomain)
		counter++
	}
}
