package schedule

import "traites/internal/models"

type dedupKey struct {
	amount string
	due    string
}

// Dedup drops installments whose (amount, due date) pair was already seen,
// keeping the first one. Two legitimately distinct traites sharing both
// values collapse into one.
func Dedup(installments []models.Installment) []models.Installment {
	seen := make(map[dedupKey]struct{}, len(installments))
	out := make([]models.Installment, 0, len(installments))
	for _, in := range installments {
		k := dedupKey{amount: in.Amount.StringFixed(3), due: in.DueDate.Format("2006-01-02")}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, in)
	}
	return out
}
