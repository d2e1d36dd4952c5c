package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrCNPJExists      = errors.New("cnpj already registered")
	ErrCompanyHasStaff = errors.New("company still has linked employees")
	ErrCompanyInactive = errors.New("company is inactive")
	ErrNoWorkplaceSet  = errors.New("company has no workplace location configured")
)
