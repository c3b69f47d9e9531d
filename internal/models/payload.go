package models

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"traites/internal/utils"
)

// CreatePlanRequest is the plan creation payload sent by the treasury forms.
type CreatePlanRequest struct {
	PartyKind              PartyKind       `json:"partyKind"`
	CounterpartyName       string          `json:"counterpartyName"`
	CounterpartyTaxID      string          `json:"counterpartyTaxId"`
	CounterpartyAddress    string          `json:"counterpartyAddress"`
	ReferenceInvoiceNumber string          `json:"referenceInvoiceNumber"`
	InstallmentCount       int             `json:"installmentCount"`
	FirstDueDate           Date            `json:"firstDueDate"`
	PeriodUnit             PeriodUnit      `json:"periodUnit"`
	TotalAmount            decimal.Decimal `json:"totalAmount"`
	Notice                 string          `json:"notice"`
	Acceptance             string          `json:"acceptance"`
	BankName               string          `json:"bankName"`
	BankAddress            string          `json:"bankAddress"`
	AccountReference       string          `json:"accountReference"`
	CreationDate           Date            `json:"creationDate"`
}

// UnmarshalJSON lets totalAmount arrive as a JSON number or as a string in
// either notation the forms produce ("1234.5", "1 234,500").
func (r *CreatePlanRequest) UnmarshalJSON(b []byte) error {
	type Alias CreatePlanRequest
	aux := struct {
		*Alias
		TotalAmount json.RawMessage `json:"totalAmount"`
	}{Alias: (*Alias)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	amount, err := decodeAmount(aux.TotalAmount)
	if err != nil {
		return NewValidationError("totalAmount", err.Error())
	}
	r.TotalAmount = amount
	return nil
}

func decodeAmount(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return decimal.Zero, nil
	}
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, err
		}
		if s == "" {
			return decimal.Zero, nil
		}
	}
	return utils.ParseDecimal(s)
}

type InstallmentStatusChange struct {
	InstallmentID uuid.UUID         `json:"installmentId"`
	Status        InstallmentStatus `json:"status"`
}

// PlanStatusUpdate is what the repository writes on a status change: the
// changed installments plus the recomputed plan status.
type PlanStatusUpdate struct {
	Installments []InstallmentStatusChange `json:"installments"`
	Status       PlanStatus                `json:"status"`
}

// PlanFilter narrows List; zero values mean "any".
type PlanFilter struct {
	PartyKind PartyKind
	Status    PlanStatus
	Limit     int
	Offset    int
}

// InstallmentView is the read shape of one installment.
type InstallmentView struct {
	ID      uuid.UUID         `json:"id"`
	Index   int               `json:"index"`
	Amount  string            `json:"amount"`
	DueDate Date              `json:"dueDate"`
	Status  InstallmentStatus `json:"status"`
}

// PlanView is a plan as read back: creation fields plus the status derived at read time.
type PlanView struct {
	ID                     uuid.UUID         `json:"id"`
	PartyKind              PartyKind         `json:"partyKind"`
	CounterpartyName       string            `json:"counterpartyName"`
	CounterpartyTaxID      string            `json:"counterpartyTaxId"`
	CounterpartyAddress    string            `json:"counterpartyAddress"`
	ReferenceInvoiceNumber string            `json:"referenceInvoiceNumber"`
	InstallmentCount       int               `json:"installmentCount"`
	FirstDueDate           Date              `json:"firstDueDate"`
	PeriodUnit             PeriodUnit        `json:"periodUnit"`
	TotalAmount            string            `json:"totalAmount"`
	Notice                 string            `json:"notice"`
	Acceptance             string            `json:"acceptance"`
	BankName               string            `json:"bankName"`
	BankAddress            string            `json:"bankAddress"`
	AccountReference       string            `json:"accountReference"`
	CreationDate           Date              `json:"creationDate"`
	Status                 PlanStatus        `json:"status"`
	Installments           []InstallmentView `json:"installments"`
}

// Date is a calendar day carried as "2006-01-02" on the wire.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		d.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return &ValidationError{Message: "date must be a string"}
	}
	s = s[1 : len(s)-1]
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		// the forms sometimes post full timestamps
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return &ValidationError{Message: "invalid date " + s}
		}
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	d.Time = t
	return nil
}
