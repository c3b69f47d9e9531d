package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"traites/internal/models"
	"traites/internal/schedule"
	"traites/internal/utils"
)

var ErrPartialUpdate = errors.New("some installments were not updated")

// PlanService runs the installment plan workflow for both receivables
// (client plans) and payables (supplier plans).
type PlanService struct {
	Repo     PlanRepository
	Notifier Notifier
	Now      func() time.Time
}

func NewPlanService(repo PlanRepository, notifier Notifier) *PlanService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &PlanService{Repo: repo, Notifier: notifier, Now: time.Now}
}

// Preview computes the schedule a request would produce without saving anything.
func (s *PlanService) Preview(req models.CreatePlanRequest) ([]models.Installment, error) {
	normalize(&req, s.Now())
	if err := validate(req); err != nil {
		return nil, err
	}
	return generate(req)
}

// Create validates the request, builds the schedule and stores the plan.
// It only reports the new plan; what the UI does next is up to the caller.
func (s *PlanService) Create(ctx context.Context, req models.CreatePlanRequest) (*models.InstallmentPlan, error) {
	now := s.Now()
	normalize(&req, now)
	if err := validate(req); err != nil {
		log.Printf("[plans][create] validation failed: %v", err)
		return nil, err
	}

	installments, err := generate(req)
	if err != nil {
		return nil, err
	}

	plan := &models.InstallmentPlan{
		ID:        uuid.New(),
		PartyKind: req.PartyKind,
		Counterparty: models.Party{
			Name:    strings.TrimSpace(req.CounterpartyName),
			TaxID:   strings.TrimSpace(req.CounterpartyTaxID),
			Address: strings.TrimSpace(req.CounterpartyAddress),
		},
		ReferenceInvoiceNumber: strings.TrimSpace(req.ReferenceInvoiceNumber),
		TotalAmount:            req.TotalAmount,
		InstallmentCount:       req.InstallmentCount,
		PeriodUnit:             req.PeriodUnit,
		FirstDueDate:           req.FirstDueDate.Time,
		CreationDate:           req.CreationDate.Time,
		Notice:                 strings.TrimSpace(req.Notice),
		Acceptance:             strings.TrimSpace(req.Acceptance),
		BankName:               strings.TrimSpace(req.BankName),
		BankAddress:            strings.TrimSpace(req.BankAddress),
		AccountReference:       strings.TrimSpace(req.AccountReference),
		Installments:           installments,
	}
	plan.Status = schedule.PersistedStatus(schedule.Aggregate(plan.Installments, now))

	if err := plan.CheckTotals(); err != nil {
		return nil, fmt.Errorf("schedule does not reconcile: %w", err)
	}

	if err := s.Repo.Create(ctx, plan); err != nil {
		log.Printf("[plans][create] repository failed kind=%s counterparty=%q err=%v", plan.PartyKind, plan.Counterparty.Name, err)
		s.Notifier.OperationFailed(ctx, "create", plan.ID, err)
		return nil, fmt.Errorf("create plan: %w", err)
	}
	log.Printf("[plans][create] ok id=%s kind=%s total=%s count=%d", plan.ID, plan.PartyKind, plan.TotalAmount.StringFixed(3), plan.InstallmentCount)
	s.Notifier.PlanCreated(ctx, plan)
	return plan, nil
}

// GetPlan loads a plan as stored.
func (s *PlanService) GetPlan(ctx context.Context, id uuid.UUID) (*models.InstallmentPlan, error) {
	plan, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	if plan == nil {
		return nil, models.ErrPlanNotFound
	}
	return plan, nil
}

// Get returns the plan with its status derived as of now.
func (s *PlanService) Get(ctx context.Context, id uuid.UUID) (*models.PlanView, error) {
	plan, err := s.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	v := ToView(plan, s.Now())
	return &v, nil
}

// List returns plans matching f. Filtering on a derived status (overdue, or
// unpaid as opposed to overdue) happens after the status is recomputed.
func (s *PlanService) List(ctx context.Context, f models.PlanFilter) ([]models.PlanView, error) {
	want := f.Status
	f.Status = schedule.PersistedStatus(f.Status)

	plans, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	now := s.Now()
	out := make([]models.PlanView, 0, len(plans))
	for _, p := range plans {
		v := ToView(p, now)
		if want != "" && v.Status != want {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// SetInstallmentStatus flips one installment and writes it together with the
// recomputed plan status in a single repository call.
func (s *PlanService) SetInstallmentStatus(ctx context.Context, planID, installmentID uuid.UUID, status models.InstallmentStatus) (*models.PlanView, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("status", "must be paid or unpaid")
	}
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	updated, err := schedule.SetStatus(plan.Installments, installmentID, status)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	planStatus := schedule.PersistedStatus(schedule.Aggregate(updated, now))

	err = s.Repo.UpdatePlan(ctx, planID, models.PlanStatusUpdate{
		Installments: []models.InstallmentStatusChange{{InstallmentID: installmentID, Status: status}},
		Status:       planStatus,
	})
	if err != nil {
		log.Printf("[plans][status] update failed plan=%s installment=%s err=%v", planID, installmentID, err)
		s.Notifier.OperationFailed(ctx, "status", planID, err)
		return nil, fmt.Errorf("update installment status: %w", err)
	}

	plan.Installments = updated
	plan.Status = planStatus
	v := ToView(plan, now)
	return &v, nil
}

// BulkResult reports which installments a MarkAll call managed to update.
type BulkResult struct {
	PlanID  uuid.UUID                `json:"planId"`
	Status  models.InstallmentStatus `json:"status"`
	Updated []uuid.UUID              `json:"updated"`
	Failed  []BulkFailure            `json:"failed"`
}

type BulkFailure struct {
	InstallmentID uuid.UUID `json:"installmentId"`
	Error         string    `json:"error"`
}

// MarkAll sets every installment of the plan to status, one repository call
// per installment, all in flight at once. There is no ordering between the
// calls and no rollback: when some fail the others stay updated and
// ErrPartialUpdate is returned along with the result. Once every call has
// returned, the plan status is rewritten from the installments that actually
// changed.
func (s *PlanService) MarkAll(ctx context.Context, planID uuid.UUID, status models.InstallmentStatus) (*BulkResult, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("status", "must be paid or unpaid")
	}
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	errs := make([]error, len(plan.Installments))
	var g errgroup.Group
	for i, in := range plan.Installments {
		i, in := i, in
		g.Go(func() error {
			errs[i] = s.Repo.UpdatePlan(ctx, planID, models.PlanStatusUpdate{
				Installments: []models.InstallmentStatusChange{{InstallmentID: in.ID, Status: status}},
				Status:       plan.Status,
			})
			return errs[i]
		})
	}
	_ = g.Wait()

	res := &BulkResult{PlanID: planID, Status: status, Updated: []uuid.UUID{}, Failed: []BulkFailure{}}
	applied := make([]models.Installment, len(plan.Installments))
	for i, in := range plan.Installments {
		applied[i] = in
		if errs[i] != nil {
			res.Failed = append(res.Failed, BulkFailure{InstallmentID: in.ID, Error: errs[i].Error()})
			continue
		}
		applied[i].Status = status
		res.Updated = append(res.Updated, in.ID)
	}

	final := schedule.PersistedStatus(schedule.Aggregate(applied, s.Now()))
	if err := s.Repo.UpdatePlan(ctx, planID, models.PlanStatusUpdate{Status: final}); err != nil {
		log.Printf("[plans][mark-all] plan=%s status write failed: %v", planID, err)
		s.Notifier.OperationFailed(ctx, "mark-all", planID, err)
		return res, fmt.Errorf("update plan status: %w", err)
	}

	if len(res.Failed) > 0 {
		log.Printf("[plans][mark-all] plan=%s status=%s updated=%d failed=%d", planID, status, len(res.Updated), len(res.Failed))
		err := fmt.Errorf("%w: %d of %d", ErrPartialUpdate, len(res.Failed), len(plan.Installments))
		s.Notifier.OperationFailed(ctx, "mark-all", planID, err)
		return res, err
	}
	log.Printf("[plans][mark-all] plan=%s status=%s updated=%d", planID, status, len(res.Updated))
	return res, nil
}

// Delete removes a plan and its installments.
func (s *PlanService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrPlanNotFound) {
			return err
		}
		s.Notifier.OperationFailed(ctx, "delete", id, err)
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}

// ToView derives the plan status as of now and de-duplicates the installments
// for display.
func ToView(p *models.InstallmentPlan, now time.Time) models.PlanView {
	installments := schedule.Dedup(p.Installments)
	views := make([]models.InstallmentView, len(installments))
	for i, in := range installments {
		views[i] = models.InstallmentView{
			ID:      in.ID,
			Index:   in.Index,
			Amount:  in.Amount.StringFixed(utils.MinorDigits),
			DueDate: models.NewDate(in.DueDate),
			Status:  in.Status,
		}
	}
	return models.PlanView{
		ID:                     p.ID,
		PartyKind:              p.PartyKind,
		CounterpartyName:       p.Counterparty.Name,
		CounterpartyTaxID:      p.Counterparty.TaxID,
		CounterpartyAddress:    p.Counterparty.Address,
		ReferenceInvoiceNumber: p.ReferenceInvoiceNumber,
		InstallmentCount:       p.InstallmentCount,
		FirstDueDate:           models.NewDate(p.FirstDueDate),
		PeriodUnit:             p.PeriodUnit,
		TotalAmount:            p.TotalAmount.StringFixed(utils.MinorDigits),
		Notice:                 p.Notice,
		Acceptance:             p.Acceptance,
		BankName:               p.BankName,
		BankAddress:            p.BankAddress,
		AccountReference:       p.AccountReference,
		CreationDate:           models.NewDate(p.CreationDate),
		Status:                 schedule.Aggregate(p.Installments, now),
		Installments:           views,
	}
}

func normalize(req *models.CreatePlanRequest, now time.Time) {
	if req.PeriodUnit == "" {
		req.PeriodUnit = models.PeriodMonthly
	}
	if req.CreationDate.IsZero() {
		y, m, d := now.Date()
		req.CreationDate = models.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	}
}

func validate(req models.CreatePlanRequest) error {
	var errs models.ValidationErrors
	if !req.PartyKind.Valid() {
		errs = append(errs, models.NewValidationError("partyKind", "must be client or supplier"))
	}
	if strings.TrimSpace(req.CounterpartyName) == "" {
		errs = append(errs, models.NewValidationError("counterpartyName", "is required"))
	}
	switch {
	case !req.TotalAmount.IsPositive():
		errs = append(errs, models.NewValidationError("totalAmount", "must be greater than zero"))
	case !utils.HasMillimePrecision(req.TotalAmount):
		errs = append(errs, models.NewValidationError("totalAmount", "must have at most 3 decimal places"))
	}
	if req.InstallmentCount < 1 {
		errs = append(errs, models.NewValidationError("installmentCount", "must be at least 1"))
	}
	if req.FirstDueDate.IsZero() {
		errs = append(errs, models.NewValidationError("firstDueDate", "is required"))
	}
	if req.PeriodUnit.Months() == 0 {
		errs = append(errs, models.NewValidationError("periodUnit", "must be monthly, quarterly, semiannual or annual"))
	}
	return errs.ErrOrNil()
}

func generate(req models.CreatePlanRequest) ([]models.Installment, error) {
	installments, err := schedule.Generate(req.TotalAmount, req.InstallmentCount, req.PeriodUnit, req.FirstDueDate.Time)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			return nil, models.ValidationErrors{verr}
		}
		return nil, err
	}
	return installments, nil
}
