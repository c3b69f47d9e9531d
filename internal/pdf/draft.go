package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"traites/internal/layout"
)

var (
	ErrTemplateMissing = errors.New("draft template image not found")
	ErrFontMissing     = errors.New("draft font not found")
)

// Surface is where rendered drafts go. Render either writes a complete
// document to w or writes nothing.
type Surface interface {
	Render(doc Document, w io.Writer) error
}

// Document is one traite ready to print.
type Document struct {
	Name   string
	Title  string
	Fields []layout.FieldPlacement
}

// DraftRenderer prints field placements onto a page the size of the
// pre-printed draft (17.5 x 11.5 cm).
type DraftRenderer struct {
	TemplatePath string // scan of the blank draft drawn under the text; optional
	FontPath     string // TTF with French accents; core Helvetica when empty
	fontName     string
}

func NewDraftRenderer(templatePath, fontPath string) *DraftRenderer {
	r := &DraftRenderer{TemplatePath: templatePath, FontPath: fontPath, fontName: "Helvetica"}
	if fontPath != "" {
		r.fontName = "DejaVu"
	}
	return r
}

const (
	cmToMM   = 10.0
	ptToMM   = 0.3528
	lineSpan = 1.2
)

func (g *DraftRenderer) Render(doc Document, w io.Writer) error {
	if err := g.checkAssets(); err != nil {
		return err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: layout.PageWidth * cmToMM, Ht: layout.PageHeight * cmToMM},
	})
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor("Traites", false)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	g.addFont(pdf)
	pdf.AddPage()

	if g.TemplatePath != "" {
		pdf.ImageOptions(g.TemplatePath, 0, 0, layout.PageWidth*cmToMM, layout.PageHeight*cmToMM,
			false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	tr := func(s string) string { return s }
	if g.FontPath == "" {
		tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	for _, f := range doc.Fields {
		g.drawField(pdf, f, tr)
	}

	// build fully in memory so a failure never leaves half a draft behind
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fmt.Errorf("render %s: %w", doc.Name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (g *DraftRenderer) drawField(pdf *gofpdf.Fpdf, f layout.FieldPlacement, tr func(string) string) {
	size := f.FontSize
	if size <= 0 {
		size = 9
	}
	pdf.SetFont(g.fontName, "", size)
	lineH := size * ptToMM * lineSpan
	width := f.MaxWidth * cmToMM

	pdf.SetXY(f.X*cmToMM, f.Y*cmToMM)
	if f.Wrap {
		pdf.MultiCell(width, lineH, tr(f.Value), "", "L", false)
		return
	}
	pdf.CellFormat(width, lineH, fit(pdf, f.Value, width, tr), "", 0, "L", false, 0, "")
}

// fit cuts text so it stays inside width mm once translated for the font.
func fit(pdf *gofpdf.Fpdf, text string, width float64, tr func(string) string) string {
	if pdf.GetStringWidth(tr(text)) <= width {
		return tr(text)
	}
	const ellipsis = "..."
	r := []rune(text)
	for len(r) > 0 && pdf.GetStringWidth(tr(string(r)+ellipsis)) > width {
		r = r[:len(r)-1]
	}
	return tr(strings.TrimSpace(string(r)) + ellipsis)
}

func (g *DraftRenderer) checkAssets() error {
	if g.TemplatePath != "" {
		if _, err := os.Stat(g.TemplatePath); err != nil {
			return fmt.Errorf("%w: %s", ErrTemplateMissing, g.TemplatePath)
		}
	}
	if g.FontPath != "" {
		if _, err := os.Stat(g.FontPath); err != nil {
			return fmt.Errorf("%w: %s", ErrFontMissing, g.FontPath)
		}
	}
	return nil
}

func (g *DraftRenderer) addFont(pdf *gofpdf.Fpdf) {
	if g.FontPath == "" {
		return
	}
	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
}

// DocumentName is the file name of a single printed draft: traite-FA-12.pdf
func DocumentName(docType, reference string) string {
	ref := sanitize(reference)
	if ref == "" {
		ref = "sans-reference"
	}
	return fmt.Sprintf("%s-%s.pdf", docType, ref)
}

// BatchName names draft n of a full-plan print run.
func BatchName(n, count int) string {
	return fmt.Sprintf("draft-%d-of-%d.pdf", n, count)
}

func sanitize(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, s)
}
