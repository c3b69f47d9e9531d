// Package schedule builds installment schedules and folds installment
// statuses into a plan status. Everything here is pure.
package schedule

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"traites/internal/models"
	"traites/internal/utils"
)

// Generate splits total into count installments spaced one period apart,
// starting at firstDue. All installments but the last carry total/count
// rounded to the millime; the last absorbs the rounding drift so the sum is exact.
func Generate(total decimal.Decimal, count int, period models.PeriodUnit, firstDue time.Time) ([]models.Installment, error) {
	if err := validate(total, count, period, firstDue); err != nil {
		return nil, err
	}

	base := total.DivRound(decimal.NewFromInt(int64(count)), utils.MinorDigits)
	last := total.Sub(base.Mul(decimal.NewFromInt(int64(count - 1))))
	if !last.IsPositive() {
		// a few millimes split many ways can round the last slice away
		return nil, models.NewValidationError("installmentCount", "total is too small for this many installments")
	}

	out := make([]models.Installment, count)
	for i := range out {
		amount := base
		if i == count-1 {
			amount = last
		}
		out[i] = models.Installment{
			ID:      uuid.New(),
			Index:   i + 1,
			Amount:  amount,
			DueDate: AddPeriods(firstDue, period, i),
			Status:  models.InstallmentUnpaid,
		}
	}
	return out, nil
}

func validate(total decimal.Decimal, count int, period models.PeriodUnit, firstDue time.Time) error {
	if count < 1 {
		return models.NewValidationError("installmentCount", "must be at least 1")
	}
	if !total.IsPositive() {
		return models.NewValidationError("totalAmount", "must be greater than zero")
	}
	if !utils.HasMillimePrecision(total) {
		return models.NewValidationError("totalAmount", "must have at most 3 decimal places")
	}
	if period.Months() == 0 {
		return models.NewValidationError("periodUnit", "unknown period "+string(period))
	}
	if firstDue.IsZero() {
		return models.NewValidationError("firstDueDate", "is required")
	}
	return nil
}

// AddPeriods moves date forward by n periods. The offset is always taken from
// date itself and the day is clamped to the last day of the target month, so
// a schedule starting Jan 31 falls due Feb 28 (or 29), Mar 31, Apr 30...
func AddPeriods(date time.Time, period models.PeriodUnit, n int) time.Time {
	return AddMonthsClamped(date, period.Months()*n)
}

// AddMonthsClamped adds months without the overflow time.AddDate applies
// (Jan 31 + 1 month is Feb 28, not Mar 3).
func AddMonthsClamped(date time.Time, months int) time.Time {
	y, m, d := date.Date()
	first := time.Date(y, m+time.Month(months), 1, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
	if last := daysIn(first.Year(), first.Month(), date.Location()); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
