package dashboard

// DayCount is the number of clock events recorded on one calendar date.
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// CompanyStats is the per-tenant block admins see on the dashboard.
type CompanyStats struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	EmployeeCount int64  `json:"employeeCount"`
	ActiveToday   int64  `json:"activeToday"`
}

// StatsResponse is the combined dashboard payload. WorkingNow and OnBreak
// are derived from each employee's single latest clock event.
type StatsResponse struct {
	TotalEmployees int64          `json:"totalEmployees"`
	ActiveToday    int64          `json:"activeToday"`
	WorkingNow     int64          `json:"workingNow"`
	OnBreak        int64          `json:"onBreak"`
	MonthRecords   int64          `json:"monthRecords"`
	RecordsByDay   []DayCount     `json:"recordsByDay"`
	Companies      []CompanyStats `json:"companies,omitempty"`
}

// EmployeeInfo is the header block of per-employee stats.
type EmployeeInfo struct {
	Name       string  `json:"name"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
}

// EmployeeStatsResponse aggregates one employee's current month.
type EmployeeStatsResponse struct {
	Employee           EmployeeInfo `json:"employee"`
	MonthRecords       int          `json:"monthRecords"`
	TotalHours         float64      `json:"totalHours"`
	DaysWorked         int          `json:"daysWorked"`
	AverageHoursPerDay float64      `json:"averageHoursPerDay"`
	CompleteSessions   int          `json:"completeSessions"`
	Anomalies          int          `json:"anomalies"`
}
