package user

import (
	"time"

	"github.com/ponto-digital/ponto-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	CPF        string  `json:"cpf"`
	Department string  `json:"department"`
	Position   *string `json:"position,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Role       string  `json:"role,omitempty"`

	// Admin may target any company; hr is pinned to their own.
	CompanyID *string `json:"companyId,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidCPF(r.CPF) {
		errs = append(errs, validator.ValidationError{Field: "cpf", Message: "cpf must have 11 digits"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if r.Role != "" && !ValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "unknown role"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "invalid phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	IsActive   *bool   `json:"isActive,omitempty"`

	// Only admin may change roles; validated by the policy evaluator.
	Role *string `json:"role,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.Role != nil && !ValidRole(*r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "unknown role"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeListQuery is the handler-facing filter; the policy evaluator
// narrows it into a repository ListFilter.
type EmployeeListQuery struct {
	CompanyID  *string
	Search     string
	Department *string
	IsActive   *bool
	Page       int
	Limit      int
}

type EmployeeResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	CPF         string     `json:"cpf"`
	Role        string     `json:"role"`
	CompanyID   string     `json:"companyId"`
	CompanyName *string    `json:"companyName,omitempty"`
	Department  *string    `json:"department,omitempty"`
	Position    *string    `json:"position,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type EmployeeListResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	Total      int64              `json:"total"`
	Page       int                `json:"currentPage"`
	TotalPages int                `json:"totalPages"`
}

// CreatedEmployee carries the generated credentials exactly once so hr
// can hand them to the new employee.
type CreatedEmployee struct {
	Employee          EmployeeResponse `json:"employee"`
	TemporaryPassword string           `json:"temporaryPassword"`
}

// DepartmentCount is one row of the by-department breakdown.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type EmployeeStatsResponse struct {
	TotalEmployees int64             `json:"totalEmployees"`
	TotalInactive  int64             `json:"totalInactive"`
	ByDepartment   []DepartmentCount `json:"byDepartment"`
}

// ToEmployeeResponse maps the entity to its API shape.
func ToEmployeeResponse(u User) EmployeeResponse {
	return EmployeeResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		CPF:         u.CPF,
		Role:        string(u.Role),
		CompanyID:   u.CompanyID,
		CompanyName: u.CompanyName,
		Department:  u.Department,
		Position:    u.Position,
		Phone:       u.Phone,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
