package payroll

import (
	"github.com/shopspring/decimal"
)

// WorkDaysPerMonth is the fixed divisor for prorating monthly salaries.
const WorkDaysPerMonth = 22

var workDays = decimal.NewFromInt(WorkDaysPerMonth)

// ComputeFinalPay prorates a monthly base salary by attended days.
// finalPay = round(baseSalary / 22 * attendedDays), rounded half up.
// Zero attended days always yields zero pay.
func ComputeFinalPay(baseSalary int64, attendedDays int) int64 {
	if attendedDays <= 0 {
		return 0
	}

	pay := decimal.NewFromInt(baseSalary).
		Mul(decimal.NewFromInt(int64(attendedDays))).
		DivRound(workDays, 0)

	return pay.IntPart()
}
