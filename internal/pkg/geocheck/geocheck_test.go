package geocheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/company"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/timerecord"
)

func TestCheck_NoWorkplaceConfigured(t *testing.T) {
	checker := NewChecker(100)

	result := checker.Check(timerecord.Location{Latitude: -23.55, Longitude: -46.63}, nil)

	assert.Equal(t, timerecord.CheckSkipped, result.Status)
	assert.Nil(t, result.DistanceFromWorkplace)
}

func TestCheck_WithinRadius(t *testing.T) {
	checker := NewChecker(100)
	workplace := &company.WorkplaceLocation{Latitude: -23.5505, Longitude: -46.6333}

	result := checker.Check(timerecord.Location{Latitude: -23.5505, Longitude: -46.6333}, workplace)

	assert.Equal(t, timerecord.CheckSuccess, result.Status)
	if assert.NotNil(t, result.DistanceFromWorkplace) {
		assert.InDelta(t, 0, *result.DistanceFromWorkplace, 1)
	}
}

func TestCheck_OutsideRadius(t *testing.T) {
	checker := NewChecker(100)
	workplace := &company.WorkplaceLocation{Latitude: -23.5505, Longitude: -46.6333}

	// About 1.1 km north of the workplace
	result := checker.Check(timerecord.Location{Latitude: -23.5405, Longitude: -46.6333}, workplace)

	assert.Equal(t, timerecord.CheckFailed, result.Status)
	if assert.NotNil(t, result.DistanceFromWorkplace) {
		assert.Greater(t, *result.DistanceFromWorkplace, 100.0)
	}
}
