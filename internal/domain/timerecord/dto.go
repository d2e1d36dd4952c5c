package timerecord

import (
	"time"

	"github.com/ponto-digital/ponto-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Type         string         `json:"type"`
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	Address      *string        `json:"address,omitempty"`
	FaceImageURL *string        `json:"faceImageUrl,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`

	// Filled by the handler from headers, never from the body.
	UserID     string     `json:"-"`
	DeviceInfo DeviceInfo `json:"-"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidRecordType(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of entrada, pausa, retorno, saida",
		})
	}

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter selects records for one employee within a window.
type ListFilter struct {
	UserID    string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

type CheckResponse struct {
	Status     string   `json:"status"`
	Confidence *float64 `json:"confidence,omitempty"`
	Distance   *float64 `json:"distanceFromWorkplace,omitempty"`
	ImageURL   *string  `json:"imageUrl,omitempty"`
}

type ValidationResponse struct {
	FaceRecognition CheckResponse `json:"faceRecognition"`
	Geolocation     CheckResponse `json:"geolocation"`
	DeviceAuth      CheckResponse `json:"deviceAuth"`
}

type Response struct {
	ID            string             `json:"id"`
	UserID        string             `json:"userId"`
	Type          string             `json:"type"`
	Timestamp     time.Time          `json:"timestamp"`
	Latitude      float64            `json:"latitude"`
	Longitude     float64            `json:"longitude"`
	Address       *string            `json:"address,omitempty"`
	DeviceID      string             `json:"deviceId"`
	DeviceName    string             `json:"deviceName,omitempty"`
	Platform      string             `json:"platform,omitempty"`
	AppVersion    string             `json:"appVersion,omitempty"`
	Validation    ValidationResponse `json:"validation"`
	OverallStatus string             `json:"overallStatus"`
	IsSynced      bool               `json:"isSynced"`
	CreatedAt     time.Time          `json:"createdAt"`
}

type ListResponse struct {
	Records    []Response `json:"records"`
	Total      int64      `json:"total"`
	Page       int        `json:"currentPage"`
	TotalPages int        `json:"totalPages"`
}

// ToResponse maps the entity to its API shape.
func ToResponse(r TimeRecord) Response {
	return Response{
		ID:         r.ID,
		UserID:     r.UserID,
		Type:       string(r.Type),
		Timestamp:  r.Timestamp,
		Latitude:   r.Location.Latitude,
		Longitude:  r.Location.Longitude,
		Address:    r.Location.Address,
		DeviceID:   r.DeviceInfo.DeviceID,
		DeviceName: r.DeviceInfo.DeviceName,
		Platform:   r.DeviceInfo.Platform,
		AppVersion: r.DeviceInfo.AppVersion,
		Validation: ValidationResponse{
			FaceRecognition: CheckResponse{
				Status:     string(r.Validation.FaceRecognition.Status),
				Confidence: r.Validation.FaceRecognition.Confidence,
				ImageURL:   r.Validation.FaceRecognition.ImageURL,
			},
			Geolocation: CheckResponse{
				Status:   string(r.Validation.Geolocation.Status),
				Distance: r.Validation.Geolocation.DistanceFromWorkplace,
			},
			DeviceAuth: CheckResponse{
				Status: string(r.Validation.DeviceAuth.Status),
			},
		},
		OverallStatus: string(r.OverallStatus),
		IsSynced:      r.IsSynced,
		CreatedAt:     r.CreatedAt,
	}
}
