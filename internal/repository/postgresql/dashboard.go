package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/absensi-rfid/attendance-backend-go/internal/domain/dashboard"
	"github.com/absensi-rfid/attendance-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetLatestScans implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetLatestScans(ctx context.Context, limit int) ([]dashboard.LatestScanItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_name, type, scanned_at
		FROM attendances
		ORDER BY scanned_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest scans: %w", err)
	}
	defer rows.Close()

	var items []dashboard.LatestScanItem
	for rows.Next() {
		var item dashboard.LatestScanItem
		var scannedAt time.Time
		if err := rows.Scan(&item.EmployeeName, &item.Type, &scannedAt); err != nil {
			return nil, fmt.Errorf("failed to scan latest scan row: %w", err)
		}
		item.Timestamp = scannedAt.Format(time.RFC3339)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}

// CountScans implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountScans(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM attendances`

	var count int
	if err := q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count scans: %w", err)
	}

	return count, nil
}
