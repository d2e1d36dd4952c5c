package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/user"
	"github.com/ponto-digital/ponto-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService user.EmployeeService
}

func NewEmployeeHandler(employeeService user.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Employee create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Employee create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.employeeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Employee create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created", "email", created.Employee.Email)
	response.Created(w, "Employee created", created)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := user.EmployeeListQuery{
		Search: q.Get("search"),
		Page:   parseIntParam(q.Get("page"), 1),
		Limit:  parseIntParam(q.Get("limit"), 20),
	}
	if v := q.Get("companyId"); v != "" {
		query.CompanyID = &v
	}
	if v := q.Get("department"); v != "" {
		query.Department = &v
	}
	if v := q.Get("isActive"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			response.BadRequest(w, "isActive must be true or false", nil)
			return
		}
		query.IsActive = &active
	}

	list, err := h.employeeService.List(r.Context(), query)
	if err != nil {
		slog.Error("Employee list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list, &response.Meta{
		Page:       list.Page,
		Limit:      query.Limit,
		TotalItems: list.Total,
		TotalPages: list.TotalPages,
	})
}

// GetByID implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.employeeService.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("Employee get service error", "error", err, "employee_id", id)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq user.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Employee update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		slog.Error("Employee update validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.employeeService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Employee update service error", "error", err, "employee_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee updated", "employee_id", id)
	response.SuccessWithMessage(w, "Employee updated", updated)
}

// Deactivate implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.Deactivate(r.Context(), id); err != nil {
		slog.Error("Employee deactivate service error", "error", err, "employee_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee deactivated", "employee_id", id)
	response.SuccessWithMessage(w, "Employee deactivated", nil)
}

// Stats implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	var companyID *string
	if v := r.URL.Query().Get("companyId"); v != "" {
		companyID = &v
	}

	stats, err := h.employeeService.Stats(r.Context(), companyID)
	if err != nil {
		slog.Error("Employee stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
