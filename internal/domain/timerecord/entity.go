package timerecord

import (
	"time"
)

// RecordType is the kind of clock event.
type RecordType string

const (
	TypeClockIn    RecordType = "entrada"
	TypeBreakStart RecordType = "pausa"
	TypeBreakEnd   RecordType = "retorno"
	TypeClockOut   RecordType = "saida"
)

// ValidRecordType reports whether s is one of the four clock event types.
func ValidRecordType(s string) bool {
	switch RecordType(s) {
	case TypeClockIn, TypeBreakStart, TypeBreakEnd, TypeClockOut:
		return true
	}
	return false
}

// CheckStatus is the outcome of one independent validation check.
type CheckStatus string

const (
	CheckSuccess CheckStatus = "success"
	CheckFailed  CheckStatus = "failed"
	CheckSkipped CheckStatus = "skipped"

	// CheckPending marks a check whose external collaborator returned an
	// inconclusive result (timeout, transport error). It routes the record
	// to pending_review instead of rejecting it outright.
	CheckPending CheckStatus = "pending"
)

// OverallStatus is the single validity verdict for a clock event.
type OverallStatus string

const (
	StatusValid         OverallStatus = "valid"
	StatusInvalid       OverallStatus = "invalid"
	StatusPendingReview OverallStatus = "pending_review"
)

// FaceCheck is the face-recognition check outcome.
type FaceCheck struct {
	Status     CheckStatus
	Confidence *float64
	ImageURL   *string
}

// GeoCheck is the geolocation check outcome.
type GeoCheck struct {
	Status                CheckStatus
	DistanceFromWorkplace *float64
}

// DeviceCheck is the device-authorization check outcome. It is always
// evaluated; a missing device id is rejected before a record exists, so
// CheckSkipped never appears here.
type DeviceCheck struct {
	Status CheckStatus
}

// Validation groups the three independent check outcomes.
type Validation struct {
	FaceRecognition FaceCheck
	Geolocation     GeoCheck
	DeviceAuth      DeviceCheck
}

// Location is where the event was recorded.
type Location struct {
	Latitude  float64
	Longitude float64
	Address   *string
}

// DeviceInfo identifies the client that submitted the event.
type DeviceInfo struct {
	DeviceID   string
	DeviceName string
	Platform   string
	AppVersion string
}

// TimeRecord is one immutable clock event. Records are never deleted and
// only the IsSynced flag may change after creation.
type TimeRecord struct {
	ID            string
	UserID        string
	CompanyID     string
	Type          RecordType
	Timestamp     time.Time
	Location      Location
	DeviceInfo    DeviceInfo
	Validation    Validation
	OverallStatus OverallStatus
	IsSynced      bool
	Metadata      map[string]any
	CreatedAt     time.Time
}
