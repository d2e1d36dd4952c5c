package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ponto-digital/ponto-backend-go/internal/domain/company"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/dashboard"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/policy"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/timerecord"
	"github.com/ponto-digital/ponto-backend-go/internal/domain/user"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/authctx"
)

type DashboardServiceImpl struct {
	UserRepository       user.UserRepository
	TimeRecordRepository timerecord.TimeRecordRepository
	CompanyRepository    company.CompanyRepository
}

func NewDashboardService(
	userRepo user.UserRepository,
	recordRepo timerecord.TimeRecordRepository,
	companyRepo company.CompanyRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		UserRepository:       userRepo,
		TimeRecordRepository: recordRepo,
		CompanyRepository:    companyRepo,
	}
}

// GetStats returns the combined dashboard payload using parallel
// goroutines, one DB query each. Managers and hr see their own company;
// admins see the whole platform plus a per-company breakdown.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (*dashboard.StatsResponse, error) {
	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !user.HasPermission(actor.Role, user.PermissionStatsView) {
		return nil, policy.ErrReviewerRoleRequired
	}

	var companyID *string
	if actor.Role != user.RoleAdmin {
		id := actor.CompanyID
		companyID = &id
	}

	now := time.Now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	weekAgo := startOfDay.AddDate(0, 0, -6)

	resp := &dashboard.StatsResponse{}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.countEmployees(gCtx, companyID)
		if err != nil {
			return err
		}
		resp.TotalEmployees = total
		return nil
	})

	g.Go(func() error {
		active, err := s.TimeRecordRepository.DistinctUsersSince(gCtx, companyID, startOfDay)
		if err != nil {
			return err
		}
		resp.ActiveToday = active
		return nil
	})

	g.Go(func() error {
		latest, err := s.TimeRecordRepository.LatestTypeByUser(gCtx, companyID)
		if err != nil {
			return err
		}
		for _, recordType := range latest {
			switch recordType {
			case timerecord.TypeClockIn, timerecord.TypeBreakEnd:
				resp.WorkingNow++
			case timerecord.TypeBreakStart:
				resp.OnBreak++
			}
		}
		return nil
	})

	g.Go(func() error {
		count, err := s.TimeRecordRepository.CountSince(gCtx, companyID, startOfMonth)
		if err != nil {
			return err
		}
		resp.MonthRecords = count
		return nil
	})

	g.Go(func() error {
		byDay, err := s.TimeRecordRepository.CountByDaySince(gCtx, companyID, weekAgo)
		if err != nil {
			return err
		}
		resp.RecordsByDay = fillDayCounts(byDay, weekAgo, startOfDay)
		return nil
	})

	if actor.Role == user.RoleAdmin {
		g.Go(func() error {
			companies, err := s.companyBreakdown(gCtx, startOfDay)
			if err != nil {
				return err
			}
			resp.Companies = companies
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetEmployeeStats aggregates one employee's current month through the
// session reducer. Employees may only request themselves.
func (s *DashboardServiceImpl) GetEmployeeStats(ctx context.Context, employeeID string) (*dashboard.EmployeeStatsResponse, error) {
	actor, err := authctx.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	target, err := s.UserRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if err := policy.CanAccessUserRecords(actor, target.ID, target.CompanyID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	records, err := s.TimeRecordRepository.ListForWindow(ctx, target.ID, startOfMonth, now)
	if err != nil {
		return nil, err
	}

	summary := timerecord.Reduce(records)

	return &dashboard.EmployeeStatsResponse{
		Employee: dashboard.EmployeeInfo{
			Name:       target.Name,
			Department: target.Department,
			Position:   target.Position,
		},
		MonthRecords:       len(records),
		TotalHours:         summary.TotalHours,
		DaysWorked:         summary.DaysWorked,
		AverageHoursPerDay: summary.AverageHoursPerDay,
		CompleteSessions:   summary.CompleteSessions,
		Anomalies:          summary.Anomalies,
	}, nil
}

// countEmployees counts active employees in one company, or across all
// companies when companyID is nil.
func (s *DashboardServiceImpl) countEmployees(ctx context.Context, companyID *string) (int64, error) {
	if companyID != nil {
		return s.UserRepository.CountByCompany(ctx, *companyID, []user.Role{user.RoleEmployee}, true)
	}

	companies, err := s.CompanyRepository.List(ctx)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, c := range companies {
		count, err := s.UserRepository.CountByCompany(ctx, c.ID, []user.Role{user.RoleEmployee}, true)
		if err != nil {
			return 0, err
		}
		total += count
	}
	return total, nil
}

// companyBreakdown builds the admin-only per-tenant block.
func (s *DashboardServiceImpl) companyBreakdown(ctx context.Context, startOfDay time.Time) ([]dashboard.CompanyStats, error) {
	companies, err := s.CompanyRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]dashboard.CompanyStats, 0, len(companies))
	for _, c := range companies {
		count, err := s.UserRepository.CountByCompany(ctx, c.ID, []user.Role{user.RoleEmployee}, true)
		if err != nil {
			return nil, err
		}
		id := c.ID
		active, err := s.TimeRecordRepository.DistinctUsersSince(ctx, &id, startOfDay)
		if err != nil {
			return nil, err
		}
		stats = append(stats, dashboard.CompanyStats{
			ID:            c.ID,
			Name:          c.Name,
			EmployeeCount: count,
			ActiveToday:   active,
		})
	}
	return stats, nil
}

// fillDayCounts expands the sparse per-day map into a dense ordered slice
// covering the whole window, zeroes included.
func fillDayCounts(byDay map[string]int64, from, to time.Time) []dashboard.DayCount {
	out := make([]dashboard.DayCount, 0, 7)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		out = append(out, dashboard.DayCount{Date: key, Count: byDay[key]})
	}
	return out
}
