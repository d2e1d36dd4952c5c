package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/ticket"
	"github.com/ponto-digital/ponto-backend-go/internal/handler/http/response"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/authctx"
)

type TicketHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Respond(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type TicketHandlerImpl struct {
	ticketService ticket.TicketService
}

func NewTicketHandler(ticketService ticket.TicketService) TicketHandler {
	return &TicketHandlerImpl{
		ticketService: ticketService,
	}
}

// Create implements TicketHandler.
func (h *TicketHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := authctx.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq ticket.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Ticket create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	createReq.UserID = actor.UserID
	createReq.CompanyID = actor.CompanyID

	if err := createReq.Validate(); err != nil {
		slog.Error("Ticket create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.ticketService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Ticket create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Ticket created", "user_id", actor.UserID, "subject", createReq.Subject)
	response.Created(w, "Ticket created", created)
}

// List implements TicketHandler.
func (h *TicketHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var status *ticket.Status
	if v := r.URL.Query().Get("status"); v != "" {
		s := ticket.Status(v)
		status = &s
	}

	items, err := h.ticketService.List(r.Context(), status)
	if err != nil {
		slog.Error("Ticket list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// Respond implements TicketHandler.
func (h *TicketHandlerImpl) Respond(w http.ResponseWriter, r *http.Request) {
	actor, err := authctx.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	ticketID := chi.URLParam(r, "id")

	var respondReq ticket.RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&respondReq); err != nil {
		slog.Error("Ticket respond decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	respondReq.UserID = actor.UserID

	if err := respondReq.Validate(); err != nil {
		slog.Error("Ticket respond validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.ticketService.Respond(r.Context(), ticketID, respondReq)
	if err != nil {
		slog.Error("Ticket respond service error", "error", err, "ticket_id", ticketID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Ticket response added", "ticket_id", ticketID, "user_id", actor.UserID)
	response.SuccessWithMessage(w, "Response added", updated)
}

// Resolve implements TicketHandler.
func (h *TicketHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")

	resolved, err := h.ticketService.Resolve(r.Context(), ticketID)
	if err != nil {
		slog.Error("Ticket resolve service error", "error", err, "ticket_id", ticketID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Ticket resolved", "ticket_id", ticketID)
	response.SuccessWithMessage(w, "Ticket resolved", resolved)
}
