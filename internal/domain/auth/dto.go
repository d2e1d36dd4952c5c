package auth

import (
	"time"

	"github.com/ponto-digital/ponto-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CPF       string `json:"cpf"`
	CompanyID string `json:"companyId"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if !validator.IsValidCPF(r.CPF) {
		errs = append(errs, validator.ValidationError{Field: "cpf", Message: "cpf must have 11 digits"})
	}
	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{Field: "companyId", Message: "companyId is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	DeviceID   *string `json:"deviceId,omitempty"`
	DeviceName *string `json:"deviceName,omitempty"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserPayload struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	CompanyID   string     `json:"companyId"`
	CompanyName *string    `json:"companyName,omitempty"`
	Department  *string    `json:"department,omitempty"`
	Position    *string    `json:"position,omitempty"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

type TokenResponse struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expiresAt"`
	User      UserPayload `json:"user"`
}
