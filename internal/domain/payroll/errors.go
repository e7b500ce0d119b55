package payroll

import "errors"

var (
	ErrReportNotFound = errors.New("payroll report not found")
	ErrInvalidPeriod  = errors.New("invalid payroll period")
)
