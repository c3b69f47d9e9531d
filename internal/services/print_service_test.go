package services_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"traites/internal/layout"
	"traites/internal/models"
	"traites/internal/pdf"
	"traites/internal/repositories"
	"traites/internal/services"
	"traites/internal/services/mocks"
)

// recordingSurface writes a small fake document listing its fields.
type recordingSurface struct {
	docs   []pdf.Document
	failAt int
}

func (r *recordingSurface) Render(doc pdf.Document, w io.Writer) error {
	r.docs = append(r.docs, doc)
	if r.failAt > 0 && len(r.docs) == r.failAt {
		return pdf.ErrTemplateMissing
	}
	_, err := fmt.Fprintf(w, "%%PDF-fake %s %d", doc.Name, len(doc.Fields))
	return err
}

func newPrintFixture(t *testing.T, mailer services.DraftMailer) (*services.PrintService, *recordingSurface, *models.InstallmentPlan) {
	t.Helper()
	repo := repositories.NewMemoryPlanRepository()
	plans := newService(repo, nil)
	plan, err := plans.Create(context.Background(), validRequest())
	require.NoError(t, err)

	surface := &recordingSurface{}
	engine := layout.NewEngine(models.Party{Name: "Tunis Equipements SA", TaxID: "0001234/B"}, "Tunis")
	return services.NewPrintService(plans, engine, surface, mailer), surface, plan
}

func TestPrintService_PrintInstallment(t *testing.T) {
	svc, surface, plan := newPrintFixture(t, nil)

	var out bytes.Buffer
	name, err := svc.PrintInstallment(context.Background(), plan.ID, plan.Installments[1].ID, &out)
	require.NoError(t, err)
	assert.Equal(t, "traite-F2025-014.pdf", name)
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF")))

	require.Len(t, surface.docs, 1)
	drawer, ok := layout.Find(surface.docs[0].Fields, layout.DrawerName)
	require.True(t, ok)
	assert.Equal(t, "Tunis Equipements SA", drawer.Value)
	amount, _ := layout.Find(surface.docs[0].Fields, layout.AmountFigures1)
	assert.Equal(t, "333.333", amount.Value)
}

func TestPrintService_UnknownInstallment(t *testing.T) {
	svc, _, plan := newPrintFixture(t, nil)
	_, err := svc.PrintInstallment(context.Background(), plan.ID, uuid.New(), io.Discard)
	assert.ErrorIs(t, err, models.ErrInstallmentNotFound)

	_, err = svc.Layout(context.Background(), uuid.New(), plan.Installments[0].ID)
	assert.ErrorIs(t, err, models.ErrPlanNotFound)
}

func TestPrintService_PrintBatch(t *testing.T) {
	svc, _, plan := newPrintFixture(t, nil)

	var out bytes.Buffer
	name, err := svc.PrintBatch(context.Background(), plan.ID, &out)
	require.NoError(t, err)
	assert.Equal(t, "traite-F2025-014.zip", name)

	zr, err := zip.NewReader(bytes.NewReader(out.Bytes()), int64(out.Len()))
	require.NoError(t, err)
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"draft-1-of-3.pdf", "draft-2-of-3.pdf", "draft-3-of-3.pdf"}, names)
}

func TestPrintService_BatchIsAllOrNothing(t *testing.T) {
	svc, surface, plan := newPrintFixture(t, nil)
	surface.failAt = 2

	var out bytes.Buffer
	_, err := svc.PrintBatch(context.Background(), plan.ID, &out)
	require.ErrorIs(t, err, pdf.ErrTemplateMissing)
	assert.Zero(t, out.Len())
}

func TestPrintService_MailDrafts(t *testing.T) {
	t.Run("sends every draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := mocks.NewMockDraftMailer(ctrl)
		svc, _, plan := newPrintFixture(t, mailer)

		mailer.EXPECT().
			SendDrafts("compta@textile.tn", "Traites Société Textile du Sahel - F2025-014", gomock.Any(), gomock.Len(3)).
			Return(nil)

		n, err := svc.MailDrafts(context.Background(), plan.ID, " compta@textile.tn ")
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("missing recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, plan := newPrintFixture(t, mocks.NewMockDraftMailer(ctrl))
		_, err := svc.MailDrafts(context.Background(), plan.ID, "  ")
		assert.ErrorIs(t, err, services.ErrNoRecipient)
	})

	t.Run("smtp failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := mocks.NewMockDraftMailer(ctrl)
		svc, _, plan := newPrintFixture(t, mailer)
		boom := errors.New("dial tcp: timeout")
		mailer.EXPECT().SendDrafts(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)

		_, err := svc.MailDrafts(context.Background(), plan.ID, "a@b.tn")
		assert.ErrorIs(t, err, boom)
	})
}
