package dashboard

import "context"

// DashboardService aggregates attendance statistics. Both operations
// resolve the caller from the request context and scope results to the
// caller's company unless the caller is an admin.
type DashboardService interface {
	GetStats(ctx context.Context) (*StatsResponse, error)
	GetEmployeeStats(ctx context.Context, employeeID string) (*EmployeeStatsResponse, error)
}
