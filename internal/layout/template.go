// Package layout places the data of one traite onto the fixed coordinate
// table of the pre-printed bank draft.
package layout

// Page size of the draft template, in centimetres.
const (
	PageWidth  = 17.5
	PageHeight = 11.5
)

// Field names of the draft template.
const (
	AmountFigures1    = "amount_figures_1"
	AmountFigures2    = "amount_figures_2"
	AmountWords       = "amount_words"
	DueDate1          = "due_date_1"
	DueDate2          = "due_date_2"
	IssuePlace1       = "issue_place_1"
	IssuePlace2       = "issue_place_2"
	IssueDate1        = "issue_date_1"
	IssueDate2        = "issue_date_2"
	DraweeName1       = "drawee_name_1"
	DraweeName2       = "drawee_name_2"
	DraweeAddress1    = "drawee_address_1"
	DraweeAddress2    = "drawee_address_2"
	DraweeTaxID1      = "drawee_tax_id_1"
	DraweeTaxID2      = "drawee_tax_id_2"
	DrawerName        = "drawer_name"
	DrawerAddress     = "drawer_address"
	DrawerTaxID       = "drawer_tax_id"
	BankName          = "bank_name"
	BankAddress       = "bank_address"
	AccountReference1 = "account_reference_1"
	AccountReference2 = "account_reference_2"
	Acceptance        = "acceptance"
	Aval              = "aval"
	InvoiceReference  = "invoice_reference"
)

// Slot is a fixed position on the template. X and Y are measured in cm from
// the top-left corner of the page; text never extends past X+MaxWidth.
type Slot struct {
	Name     string
	X        float64
	Y        float64
	MaxWidth float64
	Wrap     bool
	FontSize float64
}

// template is the coordinate table of the draft. It does not depend on data.
var template = []Slot{
	{Name: AccountReference1, X: 0.60, Y: 0.80, MaxWidth: 3.40, FontSize: 8},
	{Name: IssuePlace1, X: 4.20, Y: 0.80, MaxWidth: 2.80, FontSize: 9},
	{Name: IssueDate1, X: 7.20, Y: 0.80, MaxWidth: 2.60, FontSize: 9},
	{Name: DueDate1, X: 10.20, Y: 0.80, MaxWidth: 2.80, FontSize: 9},
	{Name: AmountFigures1, X: 13.60, Y: 0.80, MaxWidth: 3.40, FontSize: 10},
	{Name: InvoiceReference, X: 0.60, Y: 1.70, MaxWidth: 3.40, FontSize: 7},

	{Name: IssuePlace2, X: 4.20, Y: 3.10, MaxWidth: 2.80, FontSize: 9},
	{Name: IssueDate2, X: 7.20, Y: 3.10, MaxWidth: 2.60, FontSize: 9},
	{Name: DueDate2, X: 10.20, Y: 3.10, MaxWidth: 2.80, FontSize: 9},
	{Name: AmountFigures2, X: 13.60, Y: 3.10, MaxWidth: 3.40, FontSize: 10},
	{Name: AmountWords, X: 1.80, Y: 4.10, MaxWidth: 14.80, Wrap: true, FontSize: 9},

	{Name: DraweeName1, X: 1.80, Y: 5.60, MaxWidth: 7.00, FontSize: 9},
	{Name: DraweeAddress1, X: 1.80, Y: 6.10, MaxWidth: 7.00, Wrap: true, FontSize: 8},
	{Name: DraweeTaxID1, X: 1.80, Y: 7.00, MaxWidth: 7.00, FontSize: 8},
	{Name: AccountReference2, X: 9.40, Y: 5.60, MaxWidth: 7.40, FontSize: 9},
	{Name: BankName, X: 9.40, Y: 6.30, MaxWidth: 7.40, FontSize: 8},
	{Name: BankAddress, X: 9.40, Y: 6.80, MaxWidth: 7.40, Wrap: true, FontSize: 8},

	{Name: Acceptance, X: 0.60, Y: 8.20, MaxWidth: 4.00, Wrap: true, FontSize: 7},
	{Name: Aval, X: 4.80, Y: 8.20, MaxWidth: 4.20, Wrap: true, FontSize: 7},
	{Name: DrawerName, X: 9.40, Y: 8.20, MaxWidth: 7.40, FontSize: 9},
	{Name: DrawerAddress, X: 9.40, Y: 8.70, MaxWidth: 7.40, Wrap: true, FontSize: 8},
	{Name: DrawerTaxID, X: 9.40, Y: 9.50, MaxWidth: 7.40, FontSize: 8},

	{Name: DraweeName2, X: 0.60, Y: 10.30, MaxWidth: 5.00, FontSize: 8},
	{Name: DraweeAddress2, X: 5.80, Y: 10.30, MaxWidth: 6.00, FontSize: 8},
	{Name: DraweeTaxID2, X: 12.00, Y: 10.30, MaxWidth: 4.90, FontSize: 8},
}

// Template returns a copy of the coordinate table in print order.
func Template() []Slot {
	return append([]Slot(nil), template...)
}
