package dashboard

import (
	"context"
)

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// GetLatestScans returns the most recent scan events, newest first
	GetLatestScans(ctx context.Context, limit int) ([]LatestScanItem, error)

	// CountScans counts all stored scan events
	CountScans(ctx context.Context) (int, error)
}
