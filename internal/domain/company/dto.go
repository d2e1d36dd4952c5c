package company

import (
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/validator"
)

type AddressPayload struct {
	Street  *string `json:"street,omitempty"`
	Number  *string `json:"number,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zipCode,omitempty"`
}

type WorkplacePayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type CreateRequest struct {
	Name        string            `json:"name"`
	CNPJ        string            `json:"cnpj"`
	Email       string            `json:"email"`
	EmailDomain string            `json:"emailDomain"`
	Phone       *string           `json:"phone,omitempty"`
	Address     *AddressPayload   `json:"address,omitempty"`
	Workplace   *WorkplacePayload `json:"workplace,omitempty"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidCNPJ(r.CNPJ) {
		errs = append(errs, validator.ValidationError{Field: "cnpj", Message: "cnpj must have 14 digits"})
	}
	if validator.IsEmpty(r.EmailDomain) {
		errs = append(errs, validator.ValidationError{Field: "emailDomain", Message: "emailDomain is required"})
	}
	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if r.Workplace != nil {
		if r.Workplace.Latitude < -90 || r.Workplace.Latitude > 90 {
			errs = append(errs, validator.ValidationError{Field: "workplace.latitude", Message: "latitude must be between -90 and 90"})
		}
		if r.Workplace.Longitude < -180 || r.Workplace.Longitude > 180 {
			errs = append(errs, validator.ValidationError{Field: "workplace.longitude", Message: "longitude must be between -180 and 180"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequest struct {
	Name        *string           `json:"name,omitempty"`
	CNPJ        *string           `json:"cnpj,omitempty"`
	Email       *string           `json:"email,omitempty"`
	EmailDomain *string           `json:"emailDomain,omitempty"`
	Phone       *string           `json:"phone,omitempty"`
	Address     *AddressPayload   `json:"address,omitempty"`
	Workplace   *WorkplacePayload `json:"workplace,omitempty"`
	IsActive    *bool             `json:"isActive,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CNPJ != nil && !validator.IsValidCNPJ(*r.CNPJ) {
		errs = append(errs, validator.ValidationError{Field: "cnpj", Message: "cnpj must have 14 digits"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateManagerRequest struct {
	Name       string  `json:"name"`
	Email      *string `json:"email,omitempty"`
	CPF        string  `json:"cpf"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	Phone      *string `json:"phone,omitempty"`
}

func (r *CreateManagerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidCPF(r.CPF) {
		errs = append(errs, validator.ValidationError{Field: "cpf", Message: "cpf must have 11 digits"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Response struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	CNPJ          string            `json:"cnpj"`
	Email         string            `json:"email"`
	EmailDomain   string            `json:"emailDomain"`
	Phone         *string           `json:"phone,omitempty"`
	Address       AddressPayload    `json:"address"`
	Workplace     *WorkplacePayload `json:"workplace,omitempty"`
	IsActive      bool              `json:"isActive"`
	EmployeeCount *int64            `json:"employeeCount,omitempty"`
	ManagerCount  *int64            `json:"managerCount,omitempty"`
}

// ToResponse maps the entity to its API shape.
func ToResponse(c Company) Response {
	resp := Response{
		ID:          c.ID,
		Name:        c.Name,
		CNPJ:        c.CNPJ,
		Email:       c.Email,
		EmailDomain: c.EmailDomain,
		Phone:       c.Phone,
		Address: AddressPayload{
			Street:  c.Address.Street,
			Number:  c.Address.Number,
			City:    c.Address.City,
			State:   c.Address.State,
			ZipCode: c.Address.ZipCode,
		},
		IsActive:      c.IsActive,
		EmployeeCount: c.EmployeeCount,
		ManagerCount:  c.ManagerCount,
	}
	if c.Workplace != nil {
		resp.Workplace = &WorkplacePayload{
			Latitude:  c.Workplace.Latitude,
			Longitude: c.Workplace.Longitude,
		}
	}
	return resp
}
