package payroll

import "context"

// PayrollRepository defines data access methods for payroll reports.
// There is deliberately no uniqueness constraint on (month, year):
// regenerating a period creates a new report next to the old one.
type PayrollRepository interface {
	Create(ctx context.Context, report PayrollReport) (PayrollReport, error)
	GetByID(ctx context.Context, id string) (PayrollReport, error)
	// List returns reports newest first by generation time.
	List(ctx context.Context) ([]PayrollReport, error)
	// UpdateLineItems overwrites a report's line items and bumps UpdatedAt.
	UpdateLineItems(ctx context.Context, id string, items []PayrollLineItem) (PayrollReport, error)
	Delete(ctx context.Context, id string) error
}
