package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/company"
	"github.com/ponto-digital/ponto-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	CreateManager(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{
		companyService: companyService,
	}
}

// Create implements CompanyHandler.
func (h *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq company.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Company create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Company create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.companyService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Company create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Company created", "name", createReq.Name)
	response.Created(w, "Company created", created)
}

// List implements CompanyHandler.
func (h *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyService.List(r.Context())
	if err != nil {
		slog.Error("Company list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, companies)
}

// GetByID implements CompanyHandler.
func (h *CompanyHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.companyService.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("Company get service error", "error", err, "company_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements CompanyHandler.
func (h *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq company.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Company update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.companyService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Company update service error", "error", err, "company_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Company updated", "company_id", id)
	response.SuccessWithMessage(w, "Company updated", updated)
}

// Delete implements CompanyHandler.
func (h *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.companyService.Delete(r.Context(), id); err != nil {
		slog.Error("Company delete service error", "error", err, "company_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Company deleted", "company_id", id)
	response.SuccessWithMessage(w, "Company deleted", nil)
}

// CreateManager implements CompanyHandler.
func (h *CompanyHandlerImpl) CreateManager(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "id")

	var managerReq company.CreateManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&managerReq); err != nil {
		slog.Error("CreateManager decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := managerReq.Validate(); err != nil {
		slog.Error("CreateManager validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.companyService.CreateManager(r.Context(), companyID, managerReq)
	if err != nil {
		slog.Error("CreateManager service error", "error", err, "company_id", companyID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Manager created", "company_id", companyID)
	response.Created(w, "Manager account created", created)
}
