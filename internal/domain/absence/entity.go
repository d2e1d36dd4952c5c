package absence

import "time"

// Status of an absence request. Reviewer fields are set only on the
// transition out of pending.
type Status string

const (
	StatusPending  Status = "pendente"
	StatusApproved Status = "aprovado"
	StatusRejected Status = "rejeitado"
)

// Type classifies the absence.
type Type string

const (
	TypeMedicalCertificate Type = "atestado_medico"
	TypeJustified          Type = "falta_justificada"
	TypeUnjustified        Type = "falta_injustificada"
	TypeLeave              Type = "licenca"
	TypeVacation           Type = "ferias"
)

// ValidType reports whether s is a known absence type.
func ValidType(s string) bool {
	switch Type(s) {
	case TypeMedicalCertificate, TypeJustified, TypeUnjustified, TypeLeave, TypeVacation:
		return true
	}
	return false
}

// Attachment is optional supporting documentation.
type Attachment struct {
	URL        string
	Filename   string
	UploadedAt time.Time
}

type Absence struct {
	ID          string
	UserID      string
	CompanyID   string
	Date        time.Time
	Reason      string
	Type        Type
	Status      Status
	Attachment  *Attachment
	ReviewedBy  *string
	ReviewedAt  *time.Time
	ReviewNotes *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	UserName     *string
	ReviewerName *string
}
