package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traites/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerate_MonthEndCarry(t *testing.T) {
	got, err := Generate(decimal.RequireFromString("1000.000"), 3, models.PeriodMonthly, day(2025, 1, 31))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "333.333", got[0].Amount.StringFixed(3))
	assert.Equal(t, "333.333", got[1].Amount.StringFixed(3))
	assert.Equal(t, "333.334", got[2].Amount.StringFixed(3))

	assert.Equal(t, day(2025, 1, 31), got[0].DueDate)
	assert.Equal(t, day(2025, 2, 28), got[1].DueDate)
	assert.Equal(t, day(2025, 3, 31), got[2].DueDate)

	sum := decimal.Zero
	for _, in := range got {
		sum = sum.Add(in.Amount)
	}
	assert.True(t, sum.Equal(decimal.RequireFromString("1000")))
}

func TestGenerate_LeapYear(t *testing.T) {
	got, err := Generate(decimal.NewFromInt(200), 2, models.PeriodMonthly, day(2024, 1, 31))
	require.NoError(t, err)
	assert.Equal(t, day(2024, 2, 29), got[1].DueDate)
}

func TestGenerate_Periods(t *testing.T) {
	start := day(2025, 8, 31)
	cases := []struct {
		period models.PeriodUnit
		want   []time.Time
	}{
		{models.PeriodMonthly, []time.Time{start, day(2025, 9, 30), day(2025, 10, 31)}},
		{models.PeriodQuarterly, []time.Time{start, day(2025, 11, 30), day(2026, 2, 28)}},
		{models.PeriodSemiannual, []time.Time{start, day(2026, 2, 28), day(2026, 8, 31)}},
		{models.PeriodAnnual, []time.Time{start, day(2026, 8, 31), day(2027, 8, 31)}},
	}
	for _, tc := range cases {
		t.Run(string(tc.period), func(t *testing.T) {
			got, err := Generate(decimal.NewFromInt(900), 3, tc.period, start)
			require.NoError(t, err)
			for i, in := range got {
				assert.Equal(t, tc.want[i], in.DueDate, "installment %d", i+1)
			}
		})
	}
}

func TestGenerate_Invariants(t *testing.T) {
	totals := []string{"1", "10", "100.5", "999.999", "1000", "12345.678", "7777777.777"}
	for _, ts := range totals {
		total := decimal.RequireFromString(ts)
		for count := 1; count <= 37; count++ {
			got, err := Generate(total, count, models.PeriodMonthly, day(2025, 1, 31))
			require.NoError(t, err)
			require.Len(t, got, count)

			plan := models.InstallmentPlan{TotalAmount: total, Installments: got}
			require.NoError(t, plan.CheckTotals(), "total=%s count=%d", ts, count)

			for i := range got {
				assert.Equal(t, models.InstallmentUnpaid, got[i].Status)
				assert.True(t, utilsExact(got[i].Amount), "amount %s", got[i].Amount)
				if i > 0 {
					assert.True(t, got[i].DueDate.After(got[i-1].DueDate))
					assert.NotEqual(t, got[i-1].ID, got[i].ID)
				}
			}
		}
	}
}

func utilsExact(d decimal.Decimal) bool {
	return d.Round(3).Equal(d)
}

func TestGenerate_RoundsHalfAwayFromZero(t *testing.T) {
	// 0.005 / 2 = 0.0025 -> 0.003
	got, err := Generate(decimal.RequireFromString("0.005"), 2, models.PeriodMonthly, day(2025, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, "0.003", got[0].Amount.StringFixed(3))
	assert.Equal(t, "0.002", got[1].Amount.StringFixed(3))
}

func TestGenerate_Validation(t *testing.T) {
	cases := []struct {
		name   string
		total  string
		count  int
		period models.PeriodUnit
		first  time.Time
		field  string
	}{
		{"zero count", "100", 0, models.PeriodMonthly, day(2025, 1, 1), "installmentCount"},
		{"negative count", "100", -2, models.PeriodMonthly, day(2025, 1, 1), "installmentCount"},
		{"zero total", "0", 3, models.PeriodMonthly, day(2025, 1, 1), "totalAmount"},
		{"negative total", "-5", 3, models.PeriodMonthly, day(2025, 1, 1), "totalAmount"},
		{"sub-millime total", "1.0001", 3, models.PeriodMonthly, day(2025, 1, 1), "totalAmount"},
		{"unknown period", "100", 3, "weekly", day(2025, 1, 1), "periodUnit"},
		{"too small to split", "0.009", 6, models.PeriodMonthly, day(2025, 1, 1), "installmentCount"},
		{"no first due date", "100", 3, models.PeriodMonthly, time.Time{}, "firstDueDate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Generate(decimal.RequireFromString(tc.total), tc.count, tc.period, tc.first)
			assert.Nil(t, got)
			var verr *models.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestAddMonthsClamped(t *testing.T) {
	assert.Equal(t, day(2025, 2, 28), AddMonthsClamped(day(2025, 1, 31), 1))
	assert.Equal(t, day(2026, 1, 15), AddMonthsClamped(day(2025, 12, 15), 1))
	assert.Equal(t, day(2024, 11, 30), AddMonthsClamped(day(2025, 1, 30), -2))
	assert.Equal(t, day(2025, 4, 30), AddMonthsClamped(day(2025, 3, 31), 1))
}
