package geocheck

import (
	"github.com/ponto-digital/ponto-backend-go/internal/domain/company"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/timerecord"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/utils"
)

// Checker validates a clock event location against the company workplace.
type Checker interface {
	Check(loc timerecord.Location, workplace *company.WorkplaceLocation) timerecord.GeoCheck
}

type haversineChecker struct {
	maxDistanceMeters float64
}

// NewChecker creates a radius-based geolocation checker.
func NewChecker(maxDistanceMeters float64) Checker {
	return &haversineChecker{maxDistanceMeters: maxDistanceMeters}
}

// Check computes the distance from the workplace reference point. When the
// company has no workplace configured the check is skipped, never failed.
func (c *haversineChecker) Check(loc timerecord.Location, workplace *company.WorkplaceLocation) timerecord.GeoCheck {
	if workplace == nil {
		return timerecord.GeoCheck{Status: timerecord.CheckSkipped}
	}

	distance := utils.CalculateHaversineDistance(
		loc.Latitude, loc.Longitude,
		workplace.Latitude, workplace.Longitude,
	)

	status := timerecord.CheckSuccess
	if distance > c.maxDistanceMeters {
		status = timerecord.CheckFailed
	}

	return timerecord.GeoCheck{
		Status:                status,
		DistanceFromWorkplace: &distance,
	}
}
