package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns combined counts and the latest scans
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
