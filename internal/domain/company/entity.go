package company

import "time"

// Address is the company's registered address.
type Address struct {
	Street  *string
	Number  *string
	City    *string
	State   *string
	ZipCode *string
}

// WorkplaceLocation is the reference point for geolocation checks of
// clock events submitted by the company's employees.
type WorkplaceLocation struct {
	Latitude  float64
	Longitude float64
}

// Company is the tenant boundary. A company's data is never visible to
// another company's manager or hr.
type Company struct {
	ID          string
	Name        string
	CNPJ        string
	Email       string
	EmailDomain string
	Phone       *string
	Address     Address
	Workplace   *WorkplaceLocation
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	EmployeeCount *int64
	ManagerCount  *int64
}
