package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/dashboard"
	"github.com/ponto-digital/ponto-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
	GetEmployeeStats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetStats implements DashboardHandler.
func (h *DashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		slog.Error("Dashboard stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// GetEmployeeStats implements DashboardHandler.
func (h *DashboardHandlerImpl) GetEmployeeStats(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	stats, err := h.dashboardService.GetEmployeeStats(r.Context(), employeeID)
	if err != nil {
		slog.Error("Employee dashboard service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
