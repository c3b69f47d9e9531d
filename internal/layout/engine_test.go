package layout

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traites/internal/models"
)

var company = models.Party{Name: "Métaux du Sahel SARL", TaxID: "1234567/A/M/000", Address: "Route de Gabès km 4, Sfax"}

func samplePlan(kind models.PartyKind) *models.InstallmentPlan {
	inst := []models.Installment{
		{ID: uuid.New(), Index: 1, Amount: decimal.RequireFromString("12345.678"), DueDate: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), Status: models.InstallmentUnpaid},
		{ID: uuid.New(), Index: 2, Amount: decimal.RequireFromString("12345.679"), DueDate: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), Status: models.InstallmentUnpaid},
	}
	return &models.InstallmentPlan{
		ID:                     uuid.New(),
		PartyKind:              kind,
		Counterparty:           models.Party{Name: "Tôlerie Ben Salah", TaxID: "7654321/B/P/000", Address: "Zone industrielle, Sousse"},
		ReferenceInvoiceNumber: "FA-2025-0042",
		TotalAmount:            decimal.RequireFromString("24691.357"),
		InstallmentCount:       2,
		PeriodUnit:             models.PeriodMonthly,
		FirstDueDate:           inst[0].DueDate,
		CreationDate:           time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Notice:                 "Bon pour aval",
		Acceptance:             "Accepté",
		BankName:               "BIAT",
		BankAddress:            "Avenue Habib Bourguiba, Sfax",
		AccountReference:       "08 123 0001234567890 12",
		Installments:           inst,
	}
}

func value(t *testing.T, fields []FieldPlacement, name string) string {
	t.Helper()
	f, ok := Find(fields, name)
	require.True(t, ok, "field %s missing", name)
	return f.Value
}

func TestLayout_ClientPlan_CompanyDraws(t *testing.T) {
	e := NewEngine(company, "Sfax")
	plan := samplePlan(models.PartyClient)

	fields, err := e.Layout(plan, plan.Installments[0], models.PartyClient)
	require.NoError(t, err)

	assert.Equal(t, company.Name, value(t, fields, DrawerName))
	assert.Equal(t, plan.Counterparty.Name, value(t, fields, DraweeName1))
	assert.Equal(t, plan.Counterparty.Name, value(t, fields, DraweeName2))
	assert.Equal(t, plan.Counterparty.TaxID, value(t, fields, DraweeTaxID1))
}

func TestLayout_SupplierPlan_CompanyPays(t *testing.T) {
	e := NewEngine(company, "Sfax")
	plan := samplePlan(models.PartySupplier)

	fields, err := e.Layout(plan, plan.Installments[0], models.PartySupplier)
	require.NoError(t, err)

	assert.Equal(t, plan.Counterparty.Name, value(t, fields, DrawerName))
	assert.Equal(t, plan.Counterparty.Address, value(t, fields, DrawerAddress))
	assert.Equal(t, company.Name, value(t, fields, DraweeName1))
	assert.Equal(t, company.Name, value(t, fields, DraweeName2))
	assert.Equal(t, company.Address, value(t, fields, DraweeAddress2))
}

func TestLayout_CoordinatesDoNotDependOnRole(t *testing.T) {
	e := NewEngine(company, "Sfax")
	plan := samplePlan(models.PartyClient)

	asClient, err := e.Layout(plan, plan.Installments[0], models.PartyClient)
	require.NoError(t, err)
	asSupplier, err := e.Layout(plan, plan.Installments[0], models.PartySupplier)
	require.NoError(t, err)

	require.Equal(t, len(asClient), len(asSupplier))
	for i := range asClient {
		assert.Equal(t, asClient[i].Name, asSupplier[i].Name)
		assert.Equal(t, asClient[i].X, asSupplier[i].X)
		assert.Equal(t, asClient[i].Y, asSupplier[i].Y)
		assert.Equal(t, asClient[i].MaxWidth, asSupplier[i].MaxWidth)
	}
}

func TestLayout_AmountsAreIdentical(t *testing.T) {
	e := NewEngine(company, "Sfax")
	plan := samplePlan(models.PartyClient)

	for _, inst := range plan.Installments {
		fields, err := e.Layout(plan, inst, plan.PartyKind)
		require.NoError(t, err)

		a1 := value(t, fields, AmountFigures1)
		a2 := value(t, fields, AmountFigures2)
		assert.Equal(t, a1, a2)
		assert.Equal(t, []byte(a1), []byte(a2))
	}

	fields, err := e.Layout(plan, plan.Installments[0], plan.PartyKind)
	require.NoError(t, err)
	assert.Equal(t, "12 345.678", value(t, fields, AmountFigures1))
	assert.Equal(t, "douze mille trois cent quarante-cinq dinars et six cent soixante-dix-huit millimes", value(t, fields, AmountWords))
	assert.Equal(t, "31/01/2025", value(t, fields, DueDate1))
	assert.Equal(t, "31/01/2025", value(t, fields, DueDate2))
	assert.Equal(t, "02/01/2025", value(t, fields, IssueDate1))
	assert.Equal(t, "Sfax", value(t, fields, IssuePlace2))
	assert.Equal(t, "Fact. FA-2025-0042 - 1/2", value(t, fields, InvoiceReference))
}

func TestLayout_FullTemplateWhenEverythingIsFilled(t *testing.T) {
	e := NewEngine(company, "Sfax")
	plan := samplePlan(models.PartyClient)

	fields, err := e.Layout(plan, plan.Installments[1], plan.PartyKind)
	require.NoError(t, err)
	assert.Len(t, fields, len(Template()))

	slots := slotsByName()
	for _, f := range fields {
		slot, ok := slots[f.Name]
		require.True(t, ok)
		assert.Equal(t, slot.X, f.X)
		assert.Equal(t, slot.Y, f.Y)
		assert.LessOrEqual(t, f.X+f.MaxWidth, PageWidth)
		assert.Less(t, f.Y, PageHeight)
	}
}

func TestLayout_MissingOptionalFieldsAreOmitted(t *testing.T) {
	e := NewEngine(company, "Sfax")
	plan := samplePlan(models.PartyClient)
	plan.BankName = ""
	plan.BankAddress = "   "
	plan.Acceptance = ""
	plan.Notice = ""
	plan.AccountReference = ""

	fields, err := e.Layout(plan, plan.Installments[0], plan.PartyKind)
	require.NoError(t, err)

	for _, name := range []string{BankName, BankAddress, Acceptance, Aval, AccountReference1, AccountReference2} {
		_, ok := Find(fields, name)
		assert.False(t, ok, name)
	}
	_, ok := Find(fields, AmountFigures1)
	assert.True(t, ok)
}

func TestLayout_Errors(t *testing.T) {
	e := NewEngine(company, "Sfax")
	plan := samplePlan(models.PartyClient)

	_, err := e.Layout(plan, plan.Installments[0], "bank")
	assert.True(t, errors.Is(err, ErrUnknownRole))

	stranger := models.Installment{ID: uuid.New(), Index: 1, Amount: decimal.NewFromInt(1)}
	_, err = e.Layout(plan, stranger, models.PartyClient)
	assert.ErrorIs(t, err, ErrInstallmentNotInPlan)
}

func TestTemplate_IsACopy(t *testing.T) {
	tpl := Template()
	tpl[0].X = 99
	slot := slotsByName()[tpl[0].Name]
	assert.NotEqual(t, 99.0, slot.X)
	assert.Len(t, Template(), 25)
}

func slotsByName() map[string]Slot {
	m := make(map[string]Slot)
	for _, s := range Template() {
		m[s.Name] = s
	}
	return m
}
