package payroll

import "context"

// PayrollService defines business logic for payroll computation
type PayrollService interface {
	// GeneratePayroll aggregates a month's attendance and computes prorated pay
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) (PayrollReportResponse, error)

	// GetPayroll retrieves a single report by ID
	GetPayroll(ctx context.Context, id string) (PayrollReportResponse, error)

	// ListPayroll lists generated reports, newest first
	ListPayroll(ctx context.Context) (ListPayrollResponse, error)

	// UpdatePayroll replaces a report's line items wholesale
	UpdatePayroll(ctx context.Context, req UpdatePayrollRequest) (PayrollReportResponse, error)

	// DeletePayroll removes a report
	DeletePayroll(ctx context.Context, id string) error
}
