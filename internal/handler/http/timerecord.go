package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/timerecord"
	"github.com/ponto-digital/ponto-backend-go/internal/handler/http/response"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/authctx"
)

type TimeRecordHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type TimeRecordHandlerImpl struct {
	timeRecordService timerecord.TimeRecordService
}

func NewTimeRecordHandler(timeRecordService timerecord.TimeRecordService) TimeRecordHandler {
	return &TimeRecordHandlerImpl{
		timeRecordService: timeRecordService,
	}
}

// deviceInfoFromHeaders reads the device fingerprint the mobile app sends
// with every clock action.
func deviceInfoFromHeaders(r *http.Request) timerecord.DeviceInfo {
	return timerecord.DeviceInfo{
		DeviceID:   r.Header.Get("X-Device-ID"),
		DeviceName: r.Header.Get("X-Device-Name"),
		Platform:   r.Header.Get("X-Platform"),
		AppVersion: r.Header.Get("X-App-Version"),
	}
}

// Create implements TimeRecordHandler.
func (h *TimeRecordHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := authctx.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq timerecord.CreateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("TimeRecord create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	createReq.UserID = actor.UserID
	createReq.DeviceInfo = deviceInfoFromHeaders(r)

	if err := createReq.Validate(); err != nil {
		slog.Error("TimeRecord create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	record, err := h.timeRecordService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("TimeRecord create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Time record created", "user_id", actor.UserID, "type", record.Type, "status", record.OverallStatus)
	response.Created(w, "Time record created", record)
}

// List implements TimeRecordHandler.
func (h *TimeRecordHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := timerecord.ListFilter{
		Page:  parseIntParam(q.Get("page"), 1),
		Limit: parseIntParam(q.Get("limit"), 50),
	}

	if v := q.Get("startDate"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "startDate must be in YYYY-MM-DD format", nil)
			return
		}
		filter.StartDate = &parsed
	}
	if v := q.Get("endDate"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "endDate must be in YYYY-MM-DD format", nil)
			return
		}
		end := parsed.AddDate(0, 0, 1)
		filter.EndDate = &end
	}

	list, err := h.timeRecordService.List(r.Context(), q.Get("userId"), filter)
	if err != nil {
		slog.Error("TimeRecord list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list, &response.Meta{
		Page:       list.Page,
		Limit:      filter.Limit,
		TotalItems: list.Total,
		TotalPages: list.TotalPages,
	})
}

// parseIntParam parses a positive integer query parameter, falling back
// when absent or malformed.
func parseIntParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
