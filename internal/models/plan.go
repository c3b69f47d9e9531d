package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PeriodUnit string

const (
	PeriodMonthly    PeriodUnit = "monthly"
	PeriodQuarterly  PeriodUnit = "quarterly"
	PeriodSemiannual PeriodUnit = "semiannual"
	PeriodAnnual     PeriodUnit = "annual"
)

// Months returns the length of one period in calendar months, 0 for an unknown unit.
func (p PeriodUnit) Months() int {
	switch p {
	case PeriodMonthly:
		return 1
	case PeriodQuarterly:
		return 3
	case PeriodSemiannual:
		return 6
	case PeriodAnnual:
		return 12
	}
	return 0
}

type InstallmentStatus string

const (
	InstallmentUnpaid InstallmentStatus = "unpaid"
	InstallmentPaid   InstallmentStatus = "paid"
)

func (s InstallmentStatus) Valid() bool {
	return s == InstallmentUnpaid || s == InstallmentPaid
}

type PlanStatus string

const (
	PlanUnpaid        PlanStatus = "unpaid"
	PlanPartiallyPaid PlanStatus = "partially_paid"
	PlanPaid          PlanStatus = "paid"
	// PlanOverdue is only ever computed at read time.
	PlanOverdue PlanStatus = "overdue"
)

// Installment is one traite of a plan.
type Installment struct {
	ID      uuid.UUID         `json:"id"`
	Index   int               `json:"index"`
	Amount  decimal.Decimal   `json:"amount"`
	DueDate time.Time         `json:"dueDate"`
	Status  InstallmentStatus `json:"status"`
}

// InstallmentPlan owns its installments; they are created in one batch and
// only go away with the plan.
type InstallmentPlan struct {
	ID                     uuid.UUID       `json:"id"`
	PartyKind              PartyKind       `json:"partyKind"`
	Counterparty           Party           `json:"counterparty"`
	ReferenceInvoiceNumber string          `json:"referenceInvoiceNumber"`
	TotalAmount            decimal.Decimal `json:"totalAmount"`
	InstallmentCount       int             `json:"installmentCount"`
	PeriodUnit             PeriodUnit      `json:"periodUnit"`
	FirstDueDate           time.Time       `json:"firstDueDate"`
	CreationDate           time.Time       `json:"creationDate"`
	Notice                 string          `json:"notice"`
	Acceptance             string          `json:"acceptance"`
	BankName               string          `json:"bankName"`
	BankAddress            string          `json:"bankAddress"`
	AccountReference       string          `json:"accountReference"`
	Status                 PlanStatus      `json:"status"`
	Installments           []Installment   `json:"installments"`
	CreatedAt              time.Time       `json:"createdAt"`
	UpdatedAt              time.Time       `json:"updatedAt"`
}

// Installment looks up an installment by id.
func (p *InstallmentPlan) Installment(id uuid.UUID) (Installment, bool) {
	for _, in := range p.Installments {
		if in.ID == id {
			return in, true
		}
	}
	return Installment{}, false
}

// Clone returns a deep copy, so callers can hand out snapshots.
func (p *InstallmentPlan) Clone() *InstallmentPlan {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Installments = append([]Installment(nil), p.Installments...)
	return &cp
}

// CheckTotals verifies the amounts reconcile with the total to the millime
// and that indices run 1..n without gaps.
func (p *InstallmentPlan) CheckTotals() error {
	sum := decimal.Zero
	for i, in := range p.Installments {
		if in.Index != i+1 {
			return fmt.Errorf("installment %d has index %d", i+1, in.Index)
		}
		sum = sum.Add(in.Amount)
	}
	if !sum.Equal(p.TotalAmount) {
		return fmt.Errorf("installments sum to %s, plan total is %s", sum.StringFixed(3), p.TotalAmount.StringFixed(3))
	}
	return nil
}
