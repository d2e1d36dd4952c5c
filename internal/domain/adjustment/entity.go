package adjustment

import "time"

// Status of an adjustment request. Stored capitalized for compatibility
// with existing data.
type Status string

const (
	StatusPending  Status = "Pendente"
	StatusApproved Status = "Aprovado"
	StatusRejected Status = "Rejeitado"
)

// AttachmentMeta describes the uploaded supporting file; only metadata is
// kept on the row, the bytes live in file storage.
type AttachmentMeta struct {
	OriginalName string
	MimeType     string
	Size         int64
	StoragePath  *string
}

// Adjustment requests a correction to a prior time record.
type Adjustment struct {
	ID            string
	UserID        string
	CompanyID     string
	RecordType    string
	Date          *string
	Start         *string
	End           *string
	Description   *string
	Justification *string
	Status        Status
	Attachment    *AttachmentMeta
	ReviewedBy    *string
	ReviewedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO / Join
	UserName *string
}
