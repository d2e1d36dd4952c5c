package ticket

import (
	"time"

	"github.com/ponto-digital/ponto-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Priority    string `json:"priority,omitempty"`
	Category    string `json:"category,omitempty"`

	// Filled by the handler.
	UserID    string `json:"-"`
	CompanyID string `json:"-"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{Field: "subject", Message: "subject is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}
	if r.Priority != "" && !ValidPriority(r.Priority) {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "priority must be baixa, media or alta"})
	}
	if r.Category != "" && !ValidCategory(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "unknown category"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RespondRequest struct {
	Message string `json:"message"`

	// Filled by the handler.
	UserID string `json:"-"`
}

func (r *RespondRequest) Validate() error {
	if validator.IsEmpty(r.Message) {
		return validator.ValidationErrors{{Field: "message", Message: "message is required"}}
	}
	return nil
}

type ResponseEntryPayload struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  *string   `json:"userName,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type Response struct {
	ID           string                 `json:"id"`
	UserID       string                 `json:"userId"`
	UserName     *string                `json:"userName,omitempty"`
	Subject      string                 `json:"subject"`
	Description  string                 `json:"description"`
	Priority     string                 `json:"priority"`
	Category     string                 `json:"category"`
	Status       string                 `json:"status"`
	Responses    []ResponseEntryPayload `json:"responses"`
	ResolvedBy   *string                `json:"resolvedBy,omitempty"`
	ResolverName *string                `json:"resolverName,omitempty"`
	ResolvedAt   *time.Time             `json:"resolvedAt,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
}

// ToResponse maps the entity to its API shape.
func ToResponse(t Ticket) Response {
	responses := make([]ResponseEntryPayload, 0, len(t.Responses))
	for _, entry := range t.Responses {
		responses = append(responses, ResponseEntryPayload{
			ID:        entry.ID,
			UserID:    entry.UserID,
			UserName:  entry.UserName,
			Message:   entry.Message,
			CreatedAt: entry.CreatedAt,
		})
	}
	return Response{
		ID:           t.ID,
		UserID:       t.UserID,
		UserName:     t.UserName,
		Subject:      t.Subject,
		Description:  t.Description,
		Priority:     string(t.Priority),
		Category:     string(t.Category),
		Status:       string(t.Status),
		Responses:    responses,
		ResolvedBy:   t.ResolvedBy,
		ResolverName: t.ResolverName,
		ResolvedAt:   t.ResolvedAt,
		CreatedAt:    t.CreatedAt,
	}
}
