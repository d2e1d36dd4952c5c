package adjustment

import (
	"time"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/timerecord"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	RecordType  string  `json:"recordType"`
	Date        *string `json:"date,omitempty"`
	Start       *string `json:"start,omitempty"`
	End         *string `json:"end,omitempty"`
	Description *string `json:"description,omitempty"`

	// Filled by the handler.
	UserID     string          `json:"-"`
	CompanyID  string          `json:"-"`
	Attachment *AttachmentMeta `json:"-"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !timerecord.ValidRecordType(r.RecordType) {
		errs = append(errs, validator.ValidationError{
			Field:   "recordType",
			Message: "recordType must be one of entrada, pausa, retorno, saida",
		})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewRequest struct {
	Status string `json:"status"`
}

func (r *ReviewRequest) Validate() error {
	if Status(r.Status) != StatusApproved && Status(r.Status) != StatusRejected {
		return ErrInvalidReviewStatus
	}
	return nil
}

// GenerateJustificationRequest asks the text-generation collaborator to
// turn an informal description into a professional justification.
type GenerateJustificationRequest struct {
	UserInput  string  `json:"userInput"`
	RecordType string  `json:"recordType"`
	Date       *string `json:"date,omitempty"`
}

func (r *GenerateJustificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserInput) {
		errs = append(errs, validator.ValidationError{Field: "userInput", Message: "userInput is required"})
	}
	if !timerecord.ValidRecordType(r.RecordType) {
		errs = append(errs, validator.ValidationError{
			Field:   "recordType",
			Message: "recordType must be one of entrada, pausa, retorno, saida",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerateJustificationResponse struct {
	Justification string `json:"justification"`
	OriginalInput string `json:"originalInput"`
}

type AttachmentPayload struct {
	OriginalName string `json:"originalname"`
	MimeType     string `json:"mimetype"`
	Size         int64  `json:"size"`
}

type Response struct {
	ID            string             `json:"id"`
	UserID        string             `json:"userId"`
	UserName      *string            `json:"userName,omitempty"`
	RecordType    string             `json:"recordType"`
	Date          *string            `json:"date,omitempty"`
	Start         *string            `json:"start,omitempty"`
	End           *string            `json:"end,omitempty"`
	Description   *string            `json:"description,omitempty"`
	Justification *string            `json:"justification,omitempty"`
	Status        string             `json:"status"`
	Attachment    *AttachmentPayload `json:"attachment,omitempty"`
	ReviewedBy    *string            `json:"reviewedBy,omitempty"`
	ReviewedAt    *time.Time         `json:"reviewedAt,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// ToResponse maps the entity to its API shape.
func ToResponse(a Adjustment) Response {
	resp := Response{
		ID:            a.ID,
		UserID:        a.UserID,
		UserName:      a.UserName,
		RecordType:    a.RecordType,
		Date:          a.Date,
		Start:         a.Start,
		End:           a.End,
		Description:   a.Description,
		Justification: a.Justification,
		Status:        string(a.Status),
		ReviewedBy:    a.ReviewedBy,
		ReviewedAt:    a.ReviewedAt,
		CreatedAt:     a.CreatedAt,
	}
	if a.Attachment != nil {
		resp.Attachment = &AttachmentPayload{
			OriginalName: a.Attachment.OriginalName,
			MimeType:     a.Attachment.MimeType,
			Size:         a.Attachment.Size,
		}
	}
	return resp
}
