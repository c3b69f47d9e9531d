package schedule

import (
	"time"

	"github.com/google/uuid"

	"traites/internal/models"
)

var ErrInstallmentNotFound = models.ErrInstallmentNotFound

// Aggregate folds installment statuses into the plan status. The order of
// installments does not matter. An unpaid plan with an unpaid installment due
// before now's calendar day is reported overdue.
func Aggregate(installments []models.Installment, now time.Time) models.PlanStatus {
	if len(installments) == 0 {
		return models.PlanUnpaid
	}

	paid := 0
	pastDue := false
	for _, in := range installments {
		if in.Status == models.InstallmentPaid {
			paid++
			continue
		}
		if dueBefore(in.DueDate, now) {
			pastDue = true
		}
	}

	switch {
	case paid == len(installments):
		return models.PlanPaid
	case paid > 0:
		return models.PlanPartiallyPaid
	case pastDue:
		return models.PlanOverdue
	}
	return models.PlanUnpaid
}

// PersistedStatus is the value written to storage: overdue is never stored.
func PersistedStatus(s models.PlanStatus) models.PlanStatus {
	if s == models.PlanOverdue {
		return models.PlanUnpaid
	}
	return s
}

func dueBefore(due, now time.Time) bool {
	now = now.In(due.Location())
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, due.Location())
	dy, dm, dd := due.Date()
	return time.Date(dy, dm, dd, 0, 0, 0, 0, due.Location()).Before(today)
}

// MarkPaid returns a copy of installments with id flipped to paid.
func MarkPaid(installments []models.Installment, id uuid.UUID) ([]models.Installment, error) {
	return SetStatus(installments, id, models.InstallmentPaid)
}

// MarkUnpaid returns a copy of installments with id flipped back to unpaid.
func MarkUnpaid(installments []models.Installment, id uuid.UUID) ([]models.Installment, error) {
	return SetStatus(installments, id, models.InstallmentUnpaid)
}

func SetStatus(installments []models.Installment, id uuid.UUID, status models.InstallmentStatus) ([]models.Installment, error) {
	out := append([]models.Installment(nil), installments...)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
			return out, nil
		}
	}
	return nil, ErrInstallmentNotFound
}
