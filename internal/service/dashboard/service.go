package dashboard

import (
	"context"
	"time"

	"github.com/absensi-rfid/attendance-backend-go/internal/domain/attendance"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/dashboard"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/employee"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/master/position"
	"golang.org/x/sync/errgroup"
)

const latestScansLimit = 10

type DashboardServiceImpl struct {
	dashboardRepo  dashboard.DashboardRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	positionRepo   position.PositionRepository
	now            func() time.Time
	loc            *time.Location
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	positionRepo position.PositionRepository,
	now func() time.Time,
	loc *time.Location,
) dashboard.DashboardService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &DashboardServiceImpl{
		dashboardRepo:  dashboardRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		positionRepo:   positionRepo,
		now:            now,
		loc:            loc,
	}
}

// GetDashboard returns combined dashboard data using parallel goroutines,
// one query each.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	now := s.now().In(s.loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Millisecond)

	var (
		totalEmployees   int
		totalPositions   int
		totalAttendances int
		scansToday       int
		latestScans      []dashboard.LatestScanItem
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalEmployees, err = s.employeeRepo.Count(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		totalPositions, err = s.positionRepo.Count(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		totalAttendances, err = s.dashboardRepo.CountScans(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		scansToday, err = s.attendanceRepo.CountInRange(gCtx, dayStart, dayEnd)
		return err
	})

	g.Go(func() error {
		var err error
		latestScans, err = s.dashboardRepo.GetLatestScans(gCtx, latestScansLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if latestScans == nil {
		latestScans = []dashboard.LatestScanItem{}
	}

	return &dashboard.DashboardResponse{
		TotalEmployees:   totalEmployees,
		TotalPositions:   totalPositions,
		TotalAttendances: totalAttendances,
		ScansToday:       scansToday,
		LatestScans:      latestScans,
	}, nil
}
