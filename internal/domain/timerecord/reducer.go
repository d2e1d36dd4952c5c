package timerecord

// AttendanceState is what an employee is doing right now, derived from
// their single latest clock event.
type AttendanceState string

const (
	StateWorking  AttendanceState = "working"
	StateOnBreak  AttendanceState = "on_break"
	StateOffShift AttendanceState = "off_shift"
)

// CurrentState derives the attendance state from the latest event of a
// chronologically ordered sequence (ties already broken by insertion
// order upstream). No events means off shift.
func CurrentState(records []TimeRecord) AttendanceState {
	if len(records) == 0 {
		return StateOffShift
	}
	switch records[len(records)-1].Type {
	case TypeClockIn, TypeBreakEnd:
		return StateWorking
	case TypeBreakStart:
		return StateOnBreak
	default:
		return StateOffShift
	}
}

// Summary aggregates one employee's events over a reporting window.
type Summary struct {
	TotalHours         float64
	DaysWorked         int
	AverageHoursPerDay float64
	CompleteSessions   int
	// Anomalies counts out-of-order or orphaned events that could not be
	// attributed to a session (strict mode only).
	Anomalies int
}

// Reduce walks the ordered event sequence with a per-employee session
// state machine: off-shift -> working -> on-break -> working -> off-shift.
// An entrada is paired with the next saida regardless of intervening
// noise; events that do not fit the current state count as anomalies and
// contribute no hours. An open trailing session contributes zero.
//
// Input must be sorted by timestamp ascending; the reducer does not
// re-sort defensively.
func Reduce(records []TimeRecord) Summary {
	var s Summary

	type sessionState int
	const (
		offShift sessionState = iota
		working
		onBreak
	)

	state := offShift
	var sessionStart *TimeRecord

	for i := range records {
		rec := &records[i]
		switch rec.Type {
		case TypeClockIn:
			if state != offShift {
				// Previous session never closed; the new entrada wins.
				s.Anomalies++
			}
			sessionStart = rec
			state = working
		case TypeBreakStart:
			if state != working {
				s.Anomalies++
				continue
			}
			state = onBreak
		case TypeBreakEnd:
			if state != onBreak {
				s.Anomalies++
				continue
			}
			state = working
		case TypeClockOut:
			if state == offShift || sessionStart == nil {
				s.Anomalies++
				continue
			}
			s.TotalHours += rec.Timestamp.Sub(sessionStart.Timestamp).Hours()
			s.CompleteSessions++
			sessionStart = nil
			state = offShift
		}
	}

	if state != offShift {
		s.Anomalies++
	}

	s.DaysWorked = distinctDays(records)
	if s.DaysWorked > 0 {
		s.AverageHoursPerDay = s.TotalHours / float64(s.DaysWorked)
	}
	return s
}

// ReduceLegacy replicates the older positional aggregation: events are
// consumed in fixed groups of four (entrada, pausa, retorno, saida) and a
// group contributes saida minus entrada only when all four slots exist.
// It silently mis-totals when the window is not well-formed; kept for
// compatibility, Reduce is the default.
func ReduceLegacy(records []TimeRecord) Summary {
	var s Summary

	for i := 0; i+3 < len(records); i += 4 {
		s.TotalHours += records[i+3].Timestamp.Sub(records[i].Timestamp).Hours()
		s.CompleteSessions++
	}

	s.DaysWorked = distinctDays(records)
	if s.DaysWorked > 0 {
		s.AverageHoursPerDay = s.TotalHours / float64(s.DaysWorked)
	}
	return s
}

// distinctDays counts distinct UTC calendar dates in the window.
func distinctDays(records []TimeRecord) int {
	days := make(map[string]struct{}, len(records))
	for i := range records {
		days[records[i].Timestamp.UTC().Format("2006-01-02")] = struct{}{}
	}
	return len(days)
}
