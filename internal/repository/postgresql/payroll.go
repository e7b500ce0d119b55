package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/absensi-rfid/attendance-backend-go/internal/domain/payroll"
	"github.com/absensi-rfid/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

func scanReport(row pgx.Row) (payroll.PayrollReport, error) {
	var report payroll.PayrollReport
	var itemsJSON []byte

	err := row.Scan(
		&report.ID,
		&report.PeriodMonth,
		&report.PeriodYear,
		&itemsJSON,
		&report.GeneratedAt,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return payroll.PayrollReport{}, err
	}

	if err := json.Unmarshal(itemsJSON, &report.EmployeeSalaries); err != nil {
		return payroll.PayrollReport{}, fmt.Errorf("failed to decode line items: %w", err)
	}

	return report, nil
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, report payroll.PayrollReport) (payroll.PayrollReport, error) {
	q := GetQuerier(ctx, r.db)

	itemsJSON, err := json.Marshal(report.EmployeeSalaries)
	if err != nil {
		return payroll.PayrollReport{}, fmt.Errorf("failed to encode line items: %w", err)
	}

	if report.ID == "" {
		report.ID = uuid.New().String()
	}

	query := `
		INSERT INTO payroll_reports (id, period_month, period_year, employee_salaries, generated_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, period_month, period_year, employee_salaries, generated_at, created_at, updated_at
	`

	result, err := scanReport(q.QueryRow(ctx, query,
		report.ID, report.PeriodMonth, report.PeriodYear, itemsJSON, report.GeneratedAt,
	))
	if err != nil {
		return payroll.PayrollReport{}, fmt.Errorf("failed to create payroll report: %w", err)
	}

	return result, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.PayrollReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, period_month, period_year, employee_salaries, generated_at, created_at, updated_at
		FROM payroll_reports
		WHERE id = $1
	`

	result, err := scanReport(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollReport{}, pgx.ErrNoRows
		}
		return payroll.PayrollReport{}, fmt.Errorf("failed to get payroll report: %w", err)
	}

	return result, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context) ([]payroll.PayrollReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, period_month, period_year, employee_salaries, generated_at, created_at, updated_at
		FROM payroll_reports
		ORDER BY generated_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll reports: %w", err)
	}
	defer rows.Close()

	var reports []payroll.PayrollReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll report: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return reports, nil
}

// UpdateLineItems implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdateLineItems(ctx context.Context, id string, items []payroll.PayrollLineItem) (payroll.PayrollReport, error) {
	q := GetQuerier(ctx, r.db)

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return payroll.PayrollReport{}, fmt.Errorf("failed to encode line items: %w", err)
	}

	query := `
		UPDATE payroll_reports
		SET employee_salaries = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, period_month, period_year, employee_salaries, generated_at, created_at, updated_at
	`

	result, err := scanReport(q.QueryRow(ctx, query, itemsJSON, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollReport{}, pgx.ErrNoRows
		}
		return payroll.PayrollReport{}, fmt.Errorf("failed to update payroll report: %w", err)
	}

	return result, nil
}

// Delete implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payroll_reports WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll report: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
