package ticket

import "time"

// Status advances monotonically: aberto -> em_analise on first response,
// -> resolvido on explicit resolve, -> fechado by housekeeping.
type Status string

const (
	StatusOpen     Status = "aberto"
	StatusInReview Status = "em_analise"
	StatusResolved Status = "resolvido"
	StatusClosed   Status = "fechado"
)

type Priority string

const (
	PriorityLow    Priority = "baixa"
	PriorityMedium Priority = "media"
	PriorityHigh   Priority = "alta"
)

// ValidPriority reports whether s is a known priority.
func ValidPriority(s string) bool {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Category string

const (
	CategoryTimeRecord Category = "ponto"
	CategorySystem     Category = "sistema"
	CategoryQuestion   Category = "duvida"
	CategoryComplaint  Category = "reclamacao"
	CategorySuggestion Category = "sugestao"
	CategoryOther      Category = "outro"
)

// ValidCategory reports whether s is a known category.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategoryTimeRecord, CategorySystem, CategoryQuestion, CategoryComplaint, CategorySuggestion, CategoryOther:
		return true
	}
	return false
}

// ResponseEntry is one message in a ticket's ordered conversation.
type ResponseEntry struct {
	ID        string
	TicketID  string
	UserID    string
	Message   string
	CreatedAt time.Time

	// DTO / Join
	UserName *string
}

type Ticket struct {
	ID          string
	UserID      string
	CompanyID   string
	Subject     string
	Description string
	Priority    Priority
	Category    Category
	Status      Status
	Responses   []ResponseEntry
	ResolvedBy  *string
	ResolvedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	UserName     *string
	ResolverName *string
}
