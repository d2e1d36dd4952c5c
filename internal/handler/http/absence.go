package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/absence"
	"github.com/ponto-digital/ponto-backend-go/internal/handler/http/response"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/authctx"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/storage"
)

const absenceAttachmentMaxSize = 10 << 20 // 10 MB

type AbsenceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.AbsenceService
	fileStorage    storage.FileStorage
}

func NewAbsenceHandler(absenceService absence.AbsenceService, fileStorage storage.FileStorage) AbsenceHandler {
	return &AbsenceHandlerImpl{
		absenceService: absenceService,
		fileStorage:    fileStorage,
	}
}

// Create implements AbsenceHandler. Accepts either plain JSON or
// multipart/form-data with an optional "attachment" file part.
func (h *AbsenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := authctx.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq absence.CreateRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(absenceAttachmentMaxSize); err != nil {
			response.BadRequest(w, "Invalid multipart form", nil)
			return
		}
		createReq.Date = r.FormValue("date")
		createReq.Reason = r.FormValue("reason")
		createReq.Type = r.FormValue("type")

		file, header, err := r.FormFile("attachment")
		if err == nil {
			defer file.Close()
			path := fmt.Sprintf("absences/%s/%s%s", actor.UserID, uuid.New().String(), filepath.Ext(header.Filename))
			stored, err := h.fileStorage.Upload(r.Context(), file, path, header.Header.Get("Content-Type"))
			if err != nil {
				slog.Error("Absence attachment upload error", "error", err)
				response.InternalServerError(w, "Failed to store attachment")
				return
			}
			url, err := h.fileStorage.GetURL(r.Context(), stored, 0)
			if err != nil {
				url = stored
			}
			createReq.Attachment = &absence.Attachment{
				URL:        url,
				Filename:   header.Filename,
				UploadedAt: time.Now().UTC(),
			}
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
			slog.Error("Absence create decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	createReq.UserID = actor.UserID
	createReq.CompanyID = actor.CompanyID

	if err := createReq.Validate(); err != nil {
		slog.Error("Absence create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.absenceService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Absence create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Absence created", "user_id", actor.UserID, "date", createReq.Date)
	response.Created(w, "Absence request created", created)
}

// List implements AbsenceHandler.
func (h *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var status *absence.Status
	if v := r.URL.Query().Get("status"); v != "" {
		s := absence.Status(v)
		status = &s
	}

	items, err := h.absenceService.List(r.Context(), status)
	if err != nil {
		slog.Error("Absence list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// Review implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var reviewReq absence.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&reviewReq); err != nil {
		slog.Error("Absence review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	reviewed, err := h.absenceService.Review(r.Context(), id, reviewReq)
	if err != nil {
		slog.Error("Absence review service error", "error", err, "absence_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Absence reviewed", "absence_id", id, "status", reviewReq.Status)
	response.SuccessWithMessage(w, "Absence reviewed", reviewed)
}

// Stats implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.absenceService.Stats(r.Context())
	if err != nil {
		slog.Error("Absence stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
