package absence

import (
	"time"

	"github.com/ponto-digital/ponto-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
	Type   string `json:"type"`

	// Filled by the handler.
	UserID     string      `json:"-"`
	CompanyID  string      `json:"-"`
	Attachment *Attachment `json:"-"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	if r.Type != "" && !ValidType(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown absence type"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewRequest struct {
	Status      string  `json:"status"`
	ReviewNotes *string `json:"reviewNotes,omitempty"`
}

func (r *ReviewRequest) Validate() error {
	if Status(r.Status) != StatusApproved && Status(r.Status) != StatusRejected {
		return ErrInvalidReviewStatus
	}
	return nil
}

type AttachmentResponse struct {
	URL        string    `json:"url"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type Response struct {
	ID           string              `json:"id"`
	UserID       string              `json:"userId"`
	UserName     *string             `json:"userName,omitempty"`
	Date         string              `json:"date"`
	Reason       string              `json:"reason"`
	Type         string              `json:"type"`
	Status       string              `json:"status"`
	Attachment   *AttachmentResponse `json:"attachment,omitempty"`
	ReviewedBy   *string             `json:"reviewedBy,omitempty"`
	ReviewerName *string             `json:"reviewerName,omitempty"`
	ReviewedAt   *time.Time          `json:"reviewedAt,omitempty"`
	ReviewNotes  *string             `json:"reviewNotes,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// StatsResponse counts absences by status within the caller's scope.
type StatsResponse struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// ToResponse maps the entity to its API shape.
func ToResponse(a Absence) Response {
	resp := Response{
		ID:           a.ID,
		UserID:       a.UserID,
		UserName:     a.UserName,
		Date:         a.Date.Format("2006-01-02"),
		Reason:       a.Reason,
		Type:         string(a.Type),
		Status:       string(a.Status),
		ReviewedBy:   a.ReviewedBy,
		ReviewerName: a.ReviewerName,
		ReviewedAt:   a.ReviewedAt,
		ReviewNotes:  a.ReviewNotes,
		CreatedAt:    a.CreatedAt,
	}
	if a.Attachment != nil {
		resp.Attachment = &AttachmentResponse{
			URL:        a.Attachment.URL,
			Filename:   a.Attachment.Filename,
			UploadedAt: a.Attachment.UploadedAt,
		}
	}
	return resp
}
