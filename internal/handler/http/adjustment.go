package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/adjustment"
	"github.com/ponto-digital/ponto-backend-go/internal/handler/http/response"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/authctx"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/storage"
)

const adjustmentAttachmentMaxSize = 10 << 20 // 10 MB

type AdjustmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	GenerateJustification(w http.ResponseWriter, r *http.Request)
}

type AdjustmentHandlerImpl struct {
	adjustmentService adjustment.AdjustmentService
	fileStorage       storage.FileStorage
}

func NewAdjustmentHandler(adjustmentService adjustment.AdjustmentService, fileStorage storage.FileStorage) AdjustmentHandler {
	return &AdjustmentHandlerImpl{
		adjustmentService: adjustmentService,
		fileStorage:       fileStorage,
	}
}

// Create implements AdjustmentHandler. Accepts either plain JSON or
// multipart/form-data with an optional "attachment" file part.
func (h *AdjustmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := authctx.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq adjustment.CreateRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(adjustmentAttachmentMaxSize); err != nil {
			response.BadRequest(w, "Invalid multipart form", nil)
			return
		}
		createReq.RecordType = r.FormValue("recordType")
		createReq.Date = optionalFormValue(r, "date")
		createReq.Start = optionalFormValue(r, "start")
		createReq.End = optionalFormValue(r, "end")
		createReq.Description = optionalFormValue(r, "description")

		file, header, err := r.FormFile("attachment")
		if err == nil {
			defer file.Close()
			path := fmt.Sprintf("adjustments/%s/%s%s", actor.UserID, uuid.New().String(), filepath.Ext(header.Filename))
			stored, err := h.fileStorage.Upload(r.Context(), file, path, header.Header.Get("Content-Type"))
			if err != nil {
				slog.Error("Adjustment attachment upload error", "error", err)
				response.InternalServerError(w, "Failed to store attachment")
				return
			}
			createReq.Attachment = &adjustment.AttachmentMeta{
				OriginalName: header.Filename,
				MimeType:     header.Header.Get("Content-Type"),
				Size:         header.Size,
				StoragePath:  &stored,
			}
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
			slog.Error("Adjustment create decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	createReq.UserID = actor.UserID
	createReq.CompanyID = actor.CompanyID

	if err := createReq.Validate(); err != nil {
		slog.Error("Adjustment create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.adjustmentService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Adjustment create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Adjustment created", "user_id", actor.UserID, "record_type", createReq.RecordType)
	response.Created(w, "Adjustment request created", created)
}

// List implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var status *adjustment.Status
	if v := r.URL.Query().Get("status"); v != "" {
		s := adjustment.Status(v)
		status = &s
	}

	items, err := h.adjustmentService.List(r.Context(), status)
	if err != nil {
		slog.Error("Adjustment list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// Review implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var reviewReq adjustment.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&reviewReq); err != nil {
		slog.Error("Adjustment review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	reviewed, err := h.adjustmentService.Review(r.Context(), id, reviewReq)
	if err != nil {
		slog.Error("Adjustment review service error", "error", err, "adjustment_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Adjustment reviewed", "adjustment_id", id, "status", reviewReq.Status)
	response.SuccessWithMessage(w, "Adjustment reviewed", reviewed)
}

// GenerateJustification implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) GenerateJustification(w http.ResponseWriter, r *http.Request) {
	var genReq adjustment.GenerateJustificationRequest
	if err := json.NewDecoder(r.Body).Decode(&genReq); err != nil {
		slog.Error("GenerateJustification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := genReq.Validate(); err != nil {
		slog.Error("GenerateJustification validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	generated, err := h.adjustmentService.GenerateJustification(r.Context(), genReq)
	if err != nil {
		slog.Error("GenerateJustification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, generated)
}

// optionalFormValue returns a pointer to the form field value, or nil
// when the field is absent or blank.
func optionalFormValue(r *http.Request, key string) *string {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return nil
	}
	return &v
}
