package timerecord

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func rec(recordType RecordType, ts string) TimeRecord {
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return TimeRecord{Type: recordType, Timestamp: parsed}
}

func TestCurrentState(t *testing.T) {
	assert.Equal(t, StateOffShift, CurrentState(nil))

	assert.Equal(t, StateWorking, CurrentState([]TimeRecord{
		rec(TypeClockIn, "2025-03-10T08:00:00Z"),
	}))

	assert.Equal(t, StateOnBreak, CurrentState([]TimeRecord{
		rec(TypeClockIn, "2025-03-10T08:00:00Z"),
		rec(TypeBreakStart, "2025-03-10T12:00:00Z"),
	}))

	assert.Equal(t, StateWorking, CurrentState([]TimeRecord{
		rec(TypeClockIn, "2025-03-10T08:00:00Z"),
		rec(TypeBreakStart, "2025-03-10T12:00:00Z"),
		rec(TypeBreakEnd, "2025-03-10T13:00:00Z"),
	}))

	assert.Equal(t, StateOffShift, CurrentState([]TimeRecord{
		rec(TypeClockIn, "2025-03-10T08:00:00Z"),
		rec(TypeClockOut, "2025-03-10T17:00:00Z"),
	}))
}

func TestReduce_CompleteSession(t *testing.T) {
	records := []TimeRecord{
		rec(TypeClockIn, "2025-03-10T08:00:00Z"),
		rec(TypeBreakStart, "2025-03-10T12:00:00Z"),
		rec(TypeBreakEnd, "2025-03-10T13:00:00Z"),
		rec(TypeClockOut, "2025-03-10T17:00:00Z"),
	}

	s := Reduce(records)

	assert.InDelta(t, 9.0, s.TotalHours, 0.001)
	assert.Equal(t, 1, s.CompleteSessions)
	assert.Equal(t, 1, s.DaysWorked)
	assert.InDelta(t, 9.0, s.AverageHoursPerDay, 0.001)
	assert.Equal(t, 0, s.Anomalies)
}

func TestReduce_SessionWithoutBreak(t *testing.T) {
	records := []TimeRecord{
		rec(TypeClockIn, "2025-03-10T09:00:00Z"),
		rec(TypeClockOut, "2025-03-10T17:30:00Z"),
	}

	s := Reduce(records)

	assert.InDelta(t, 8.5, s.TotalHours, 0.001)
	assert.Equal(t, 1, s.CompleteSessions)
	assert.Equal(t, 0, s.Anomalies)
}

func TestReduce_MultipleDays(t *testing.T) {
	records := []TimeRecord{
		rec(TypeClockIn, "2025-03-10T08:00:00Z"),
		rec(TypeClockOut, "2025-03-10T16:00:00Z"),
		rec(TypeClockIn, "2025-03-11T08:00:00Z"),
		rec(TypeClockOut, "2025-03-11T18:00:00Z"),
	}

	s := Reduce(records)

	assert.InDelta(t, 18.0, s.TotalHours, 0.001)
	assert.Equal(t, 2, s.CompleteSessions)
	assert.Equal(t, 2, s.DaysWorked)
	assert.InDelta(t, 9.0, s.AverageHoursPerDay, 0.001)
}

func TestReduce_OrphanedEvents(t *testing.T) {
	// saida with no entrada, then pausa outside a session
	records := []TimeRecord{
		rec(TypeClockOut, "2025-03-10T17:00:00Z"),
		rec(TypeBreakStart, "2025-03-10T18:00:00Z"),
	}

	s := Reduce(records)

	assert.Equal(t, 0.0, s.TotalHours)
	assert.Equal(t, 0, s.CompleteSessions)
	assert.Equal(t, 2, s.Anomalies)
}

func TestReduce_DoubleClockIn(t *testing.T) {
	// second entrada replaces the first; only the second session closes
	records := []TimeRecord{
		rec(TypeClockIn, "2025-03-10T08:00:00Z"),
		rec(TypeClockIn, "2025-03-10T10:00:00Z"),
		rec(TypeClockOut, "2025-03-10T17:00:00Z"),
	}

	s := Reduce(records)

	assert.InDelta(t, 7.0, s.TotalHours, 0.001)
	assert.Equal(t, 1, s.CompleteSessions)
	assert.Equal(t, 1, s.Anomalies)
}

func TestReduce_OpenTrailingSession(t *testing.T) {
	records := []TimeRecord{
		rec(TypeClockIn, "2025-03-10T08:00:00Z"),
	}

	s := Reduce(records)

	assert.Equal(t, 0.0, s.TotalHours)
	assert.Equal(t, 0, s.CompleteSessions)
	assert.Equal(t, 1, s.DaysWorked)
	assert.Equal(t, 1, s.Anomalies)
}

func TestReduce_BreakEndWithoutBreakStart(t *testing.T) {
	records := []TimeRecord{
		rec(TypeClockIn, "2025-03-10T08:00:00Z"),
		rec(TypeBreakEnd, "2025-03-10T13:00:00Z"),
		rec(TypeClockOut, "2025-03-10T17:00:00Z"),
	}

	s := Reduce(records)

	assert.InDelta(t, 9.0, s.TotalHours, 0.001)
	assert.Equal(t, 1, s.CompleteSessions)
	assert.Equal(t, 1, s.Anomalies)
}

func TestReduce_Empty(t *testing.T) {
	s := Reduce(nil)

	assert.Equal(t, 0.0, s.TotalHours)
	assert.Equal(t, 0, s.DaysWorked)
	assert.Equal(t, 0.0, s.AverageHoursPerDay)
	assert.Equal(t, 0, s.Anomalies)
}

func TestReduceLegacy_WellFormedGroups(t *testing.T) {
	records := []TimeRecord{
		rec(TypeClockIn, "2025-03-10T08:00:00Z"),
		rec(TypeBreakStart, "2025-03-10T12:00:00Z"),
		rec(TypeBreakEnd, "2025-03-10T13:00:00Z"),
		rec(TypeClockOut, "2025-03-10T17:00:00Z"),
	}

	s := ReduceLegacy(records)

	assert.InDelta(t, 9.0, s.TotalHours, 0.001)
	assert.Equal(t, 1, s.CompleteSessions)
}

func TestReduceLegacy_IncompleteGroupIgnored(t *testing.T) {
	records := []TimeRecord{
		rec(TypeClockIn, "2025-03-10T08:00:00Z"),
		rec(TypeBreakStart, "2025-03-10T12:00:00Z"),
		rec(TypeBreakEnd, "2025-03-10T13:00:00Z"),
	}

	s := ReduceLegacy(records)

	assert.Equal(t, 0.0, s.TotalHours)
	assert.Equal(t, 0, s.CompleteSessions)
	assert.Equal(t, 1, s.DaysWorked)
}
