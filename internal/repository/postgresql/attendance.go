package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/absensi-rfid/attendance-backend-go/internal/domain/attendance"
	"github.com/absensi-rfid/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, employee_name, type, scanned_at, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW())
		RETURNING id, employee_id, employee_name, type, scanned_at, created_at
	`

	var result attendance.Attendance
	err := q.QueryRow(ctx, query, att.EmployeeID, att.EmployeeName, att.Type, att.Timestamp).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.EmployeeName,
		&result.Type,
		&result.Timestamp,
		&result.CreatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return result, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, employee_name, type, scanned_at, created_at
		FROM attendances
		WHERE id = $1
	`

	var result attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.EmployeeName,
		&result.Type,
		&result.Timestamp,
		&result.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, pgx.ErrNoRows
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return result, nil
}

// ListByRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, employee_name, type, scanned_at, created_at
		FROM attendances
		WHERE scanned_at >= $1 AND scanned_at <= $2
		ORDER BY scanned_at ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID,
			&a.EmployeeID,
			&a.EmployeeName,
			&a.Type,
			&a.Timestamp,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return attendances, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET type = $1, scanned_at = $2
		WHERE id = $3
		RETURNING id, employee_id, employee_name, type, scanned_at, created_at
	`

	var result attendance.Attendance
	err := q.QueryRow(ctx, query, att.Type, att.Timestamp, att.ID).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.EmployeeName,
		&result.Type,
		&result.Timestamp,
		&result.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, pgx.ErrNoRows
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return result, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// CountInRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountInRange(ctx context.Context, start, end time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendances
		WHERE scanned_at >= $1 AND scanned_at <= $2
	`

	var count int
	if err := q.QueryRow(ctx, query, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	return count, nil
}
