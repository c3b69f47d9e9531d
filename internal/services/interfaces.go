package services

import (
	"context"

	"github.com/google/uuid"

	"traites/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// PlanRepository is the storage behind the plan engine. Plans it returns are
// snapshots; changing them does not change storage.
type PlanRepository interface {
	Create(ctx context.Context, plan *models.InstallmentPlan) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.InstallmentPlan, error)
	List(ctx context.Context, filter models.PlanFilter) ([]*models.InstallmentPlan, error)
	UpdatePlan(ctx context.Context, planID uuid.UUID, update models.PlanStatusUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Notifier tells the treasury team what happened. Delivery problems are
// logged, never returned: a lost notification must not fail the operation.
type Notifier interface {
	PlanCreated(ctx context.Context, plan *models.InstallmentPlan)
	OperationFailed(ctx context.Context, operation string, planID uuid.UUID, err error)
}

// DraftMailer sends rendered drafts by email.
type DraftMailer interface {
	SendDrafts(to, subject, body string, attachments []Attachment) error
}

type Attachment struct {
	Name string
	Data []byte
}

// NopNotifier drops every notification.
type NopNotifier struct{}

func (NopNotifier) PlanCreated(context.Context, *models.InstallmentPlan)      {}
func (NopNotifier) OperationFailed(context.Context, string, uuid.UUID, error) {}
