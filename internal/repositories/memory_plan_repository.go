package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"traites/internal/models"
)

// MemoryPlanRepository keeps plans in process memory. Reads hand out deep
// copies; writes replace whatever was there (last write wins).
type MemoryPlanRepository struct {
	mu    sync.RWMutex
	plans map[uuid.UUID]*models.InstallmentPlan
}

func NewMemoryPlanRepository() *MemoryPlanRepository {
	return &MemoryPlanRepository{plans: make(map[uuid.UUID]*models.InstallmentPlan)}
}

func (r *MemoryPlanRepository) Create(_ context.Context, plan *models.InstallmentPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.plans[plan.ID]; exists {
		return models.ErrDuplicatePlan
	}
	now := time.Now().UTC()
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = now
	}
	plan.UpdatedAt = now
	r.plans[plan.ID] = plan.Clone()
	return nil
}

func (r *MemoryPlanRepository) GetByID(_ context.Context, id uuid.UUID) (*models.InstallmentPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

func (r *MemoryPlanRepository) List(_ context.Context, f models.PlanFilter) ([]*models.InstallmentPlan, error) {
	r.mu.RLock()
	out := make([]*models.InstallmentPlan, 0, len(r.plans))
	for _, p := range r.plans {
		if f.PartyKind != "" && p.PartyKind != f.PartyKind {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		out = append(out, p.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})

	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return []*models.InstallmentPlan{}, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *MemoryPlanRepository) UpdatePlan(_ context.Context, planID uuid.UUID, u models.PlanStatusUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[planID]
	if !ok {
		return models.ErrPlanNotFound
	}

	next := p.Clone()
	for _, ch := range u.Installments {
		found := false
		for i := range next.Installments {
			if next.Installments[i].ID == ch.InstallmentID {
				next.Installments[i].Status = ch.Status
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s", models.ErrInstallmentNotFound, ch.InstallmentID)
		}
	}
	next.Status = u.Status
	next.UpdatedAt = time.Now().UTC()
	r.plans[planID] = next
	return nil
}

func (r *MemoryPlanRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[id]; !ok {
		return models.ErrPlanNotFound
	}
	delete(r.plans, id)
	return nil
}
