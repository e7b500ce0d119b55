package postgresql

import (
	"context"
	"fmt"

	"github.com/absensi-rfid/attendance-backend-go/internal/domain/employee"
	"github.com/absensi-rfid/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, full_name, email, position_id, position_name,
	rfid_token, base_salary, hire_date, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.FullName,
		&e.Email,
		&e.PositionID,
		&e.PositionName,
		&e.RFIDToken,
		&e.BaseSalary,
		&e.HireDate,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, full_name, email, position_id, position_name,
			rfid_token, base_salary, hire_date, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + employeeColumns

	result, err := scanEmployee(q.QueryRow(ctx, query,
		emp.FullName, emp.Email, emp.PositionID, emp.PositionName,
		emp.RFIDToken, emp.BaseSalary, emp.HireDate,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	result, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, pgx.ErrNoRows
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return result, nil
}

// GetByRFIDToken implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByRFIDToken(ctx context.Context, token string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE rfid_token = $1`

	result, err := scanEmployee(q.QueryRow(ctx, query, token))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, pgx.ErrNoRows
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by rfid token: %w", err)
	}

	return result, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY full_name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $1, email = $2, position_id = $3, position_name = $4,
			rfid_token = $5, base_salary = $6, hire_date = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING ` + employeeColumns

	result, err := scanEmployee(q.QueryRow(ctx, query,
		emp.FullName, emp.Email, emp.PositionID, emp.PositionName,
		emp.RFIDToken, emp.BaseSalary, emp.HireDate, emp.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, pgx.ErrNoRows
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return result, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE LOWER(email) = LOWER($1) AND ($2::uuid IS NULL OR id != $2)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee email: %w", err)
	}

	return exists, nil
}

// ExistsByRFIDToken implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByRFIDToken(ctx context.Context, token string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE rfid_token = $1 AND ($2::uuid IS NULL OR id != $2)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, token, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check rfid token: %w", err)
	}

	return exists, nil
}

// ExistsByPositionID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByPositionID(ctx context.Context, positionID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM employees WHERE position_id = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, positionID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check position usage: %w", err)
	}

	return exists, nil
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}
