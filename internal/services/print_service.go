package services

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"traites/internal/layout"
	"traites/internal/models"
	"traites/internal/pdf"
	"traites/internal/utils"
)

var ErrNoRecipient = errors.New("recipient email is required")

// PrintService turns stored plans into printable traites.
type PrintService struct {
	Plans   *PlanService
	Layouts *layout.Engine
	Surface pdf.Surface
	Mailer  DraftMailer
	DocType string
}

func NewPrintService(plans *PlanService, layouts *layout.Engine, surface pdf.Surface, mailer DraftMailer) *PrintService {
	return &PrintService{Plans: plans, Layouts: layouts, Surface: surface, Mailer: mailer, DocType: "traite"}
}

// Layout returns the field placements of one draft without rendering it.
func (s *PrintService) Layout(ctx context.Context, planID, installmentID uuid.UUID) ([]layout.FieldPlacement, error) {
	plan, inst, err := s.installment(ctx, planID, installmentID)
	if err != nil {
		return nil, err
	}
	return s.Layouts.Layout(plan, inst, plan.PartyKind)
}

// PrintInstallment renders one draft to w and returns its file name.
func (s *PrintService) PrintInstallment(ctx context.Context, planID, installmentID uuid.UUID, w io.Writer) (string, error) {
	plan, inst, err := s.installment(ctx, planID, installmentID)
	if err != nil {
		return "", err
	}
	doc, err := s.document(plan, inst, pdf.DocumentName(s.DocType, plan.ReferenceInvoiceNumber))
	if err != nil {
		return "", err
	}
	if err := s.Surface.Render(doc, w); err != nil {
		log.Printf("[print][one] plan=%s installment=%s err=%v", planID, installmentID, err)
		return "", fmt.Errorf("render draft: %w", err)
	}
	return doc.Name, nil
}

// PrintBatch writes a zip holding one PDF per installment. Nothing reaches w
// unless every draft rendered.
func (s *PrintService) PrintBatch(ctx context.Context, planID uuid.UUID, w io.Writer) (string, error) {
	plan, err := s.Plans.GetPlan(ctx, planID)
	if err != nil {
		return "", err
	}
	files, err := s.renderAll(plan)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		fw, err := zw.Create(f.Name)
		if err != nil {
			return "", fmt.Errorf("zip entry %s: %w", f.Name, err)
		}
		if _, err := fw.Write(f.Data); err != nil {
			return "", fmt.Errorf("zip entry %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("zip close: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return "", err
	}
	return strings.TrimSuffix(pdf.DocumentName(s.DocType, plan.ReferenceInvoiceNumber), ".pdf") + ".zip", nil
}

// MailDrafts renders every draft of the plan and sends them in one email.
func (s *PrintService) MailDrafts(ctx context.Context, planID uuid.UUID, to string) (int, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return 0, ErrNoRecipient
	}
	if s.Mailer == nil {
		return 0, errors.New("mailer is not configured")
	}
	plan, err := s.Plans.GetPlan(ctx, planID)
	if err != nil {
		return 0, err
	}
	files, err := s.renderAll(plan)
	if err != nil {
		return 0, err
	}

	subject := fmt.Sprintf("Traites %s", plan.Counterparty.Name)
	if plan.ReferenceInvoiceNumber != "" {
		subject += " - " + plan.ReferenceInvoiceNumber
	}
	body := fmt.Sprintf("%d traite(s), total %s.", len(files), utils.FormatAmount(plan.TotalAmount))

	if err := s.Mailer.SendDrafts(to, subject, body, files); err != nil {
		log.Printf("[print][mail] plan=%s to=%s err=%v", planID, to, err)
		s.Plans.Notifier.OperationFailed(ctx, "mail", planID, err)
		return 0, fmt.Errorf("send drafts: %w", err)
	}
	log.Printf("[print][mail] plan=%s to=%s drafts=%d", planID, to, len(files))
	return len(files), nil
}

func (s *PrintService) installment(ctx context.Context, planID, installmentID uuid.UUID) (*models.InstallmentPlan, models.Installment, error) {
	plan, err := s.Plans.GetPlan(ctx, planID)
	if err != nil {
		return nil, models.Installment{}, err
	}
	inst, ok := plan.Installment(installmentID)
	if !ok {
		return nil, models.Installment{}, models.ErrInstallmentNotFound
	}
	return plan, inst, nil
}

func (s *PrintService) document(plan *models.InstallmentPlan, inst models.Installment, name string) (pdf.Document, error) {
	fields, err := s.Layouts.Layout(plan, inst, plan.PartyKind)
	if err != nil {
		return pdf.Document{}, err
	}
	return pdf.Document{
		Name:   name,
		Title:  fmt.Sprintf("Traite %d/%d %s", inst.Index, plan.InstallmentCount, plan.Counterparty.Name),
		Fields: fields,
	}, nil
}

func (s *PrintService) renderAll(plan *models.InstallmentPlan) ([]Attachment, error) {
	count := len(plan.Installments)
	files := make([]Attachment, 0, count)
	for _, inst := range plan.Installments {
		doc, err := s.document(plan, inst, pdf.BatchName(inst.Index, count))
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := s.Surface.Render(doc, &buf); err != nil {
			log.Printf("[print][batch] plan=%s draft=%d err=%v", plan.ID, inst.Index, err)
			return nil, fmt.Errorf("render %s: %w", doc.Name, err)
		}
		files = append(files, Attachment{Name: doc.Name, Data: buf.Bytes()})
	}
	return files, nil
}
