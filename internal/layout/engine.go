package layout

import (
	"errors"
	"fmt"
	"strings"

	"traites/internal/models"
	"traites/internal/utils"
	"traites/internal/words"
)

var (
	ErrUnknownRole          = errors.New("unknown party role")
	ErrInstallmentNotInPlan = errors.New("installment does not belong to plan")
)

// FieldPlacement is one piece of text at its fixed slot on the draft.
type FieldPlacement struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	MaxWidth float64 `json:"maxWidth"`
	Wrap     bool    `json:"wrap"`
	FontSize float64 `json:"fontSize"`
}

// Engine lays out traites on behalf of the company that owns the ERP.
type Engine struct {
	Company    models.Party
	IssuePlace string
}

func NewEngine(company models.Party, issuePlace string) *Engine {
	return &Engine{Company: company, IssuePlace: issuePlace}
}

// Layout fills the template for one installment of plan.
//
// For a client plan the company draws the traite and the client pays it;
// for a supplier plan the supplier draws it and the company pays. Only the
// party feeding each group changes, never the coordinates. Blank values are
// left off the page.
func (e *Engine) Layout(plan *models.InstallmentPlan, inst models.Installment, role models.PartyKind) ([]FieldPlacement, error) {
	drawer, drawee, err := e.parties(plan, role)
	if err != nil {
		return nil, err
	}
	if _, ok := plan.Installment(inst.ID); !ok {
		return nil, ErrInstallmentNotInPlan
	}

	amount := utils.FormatAmount(inst.Amount)
	issued := utils.FormatDate(plan.CreationDate)
	due := utils.FormatDate(inst.DueDate)

	values := map[string]string{
		AmountFigures1:    amount,
		AmountFigures2:    amount,
		AmountWords:       words.ToWords(inst.Amount),
		DueDate1:          due,
		DueDate2:          due,
		IssuePlace1:       e.IssuePlace,
		IssuePlace2:       e.IssuePlace,
		IssueDate1:        issued,
		IssueDate2:        issued,
		DraweeName1:       drawee.Name,
		DraweeName2:       drawee.Name,
		DraweeAddress1:    drawee.Address,
		DraweeAddress2:    drawee.Address,
		DraweeTaxID1:      drawee.TaxID,
		DraweeTaxID2:      drawee.TaxID,
		DrawerName:        drawer.Name,
		DrawerAddress:     drawer.Address,
		DrawerTaxID:       drawer.TaxID,
		BankName:          plan.BankName,
		BankAddress:       plan.BankAddress,
		AccountReference1: plan.AccountReference,
		AccountReference2: plan.AccountReference,
		Acceptance:        plan.Acceptance,
		Aval:              plan.Notice,
		InvoiceReference:  invoiceReference(plan, inst),
	}

	out := make([]FieldPlacement, 0, len(template))
	for _, slot := range template {
		v := strings.TrimSpace(values[slot.Name])
		if v == "" {
			continue
		}
		out = append(out, FieldPlacement{
			Name:     slot.Name,
			Value:    v,
			X:        slot.X,
			Y:        slot.Y,
			MaxWidth: slot.MaxWidth,
			Wrap:     slot.Wrap,
			FontSize: slot.FontSize,
		})
	}
	return out, nil
}

func (e *Engine) parties(plan *models.InstallmentPlan, role models.PartyKind) (drawer, drawee models.Party, err error) {
	switch role {
	case models.PartyClient:
		return e.Company, plan.Counterparty, nil
	case models.PartySupplier:
		return plan.Counterparty, e.Company, nil
	}
	return models.Party{}, models.Party{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
}

func invoiceReference(plan *models.InstallmentPlan, inst models.Installment) string {
	n := fmt.Sprintf("%d/%d", inst.Index, len(plan.Installments))
	if ref := strings.TrimSpace(plan.ReferenceInvoiceNumber); ref != "" {
		return "Fact. " + ref + " - " + n
	}
	return n
}

// Find returns the placement named name.
func Find(fields []FieldPlacement, name string) (FieldPlacement, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldPlacement{}, false
}
