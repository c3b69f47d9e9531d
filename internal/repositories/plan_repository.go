package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"traites/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS installment_plans (
    id                       UUID PRIMARY KEY,
    party_kind               TEXT NOT NULL,
    counterparty_name        TEXT NOT NULL,
    counterparty_tax_id      TEXT NOT NULL DEFAULT '',
    counterparty_address     TEXT NOT NULL DEFAULT '',
    reference_invoice_number TEXT NOT NULL DEFAULT '',
    total_amount             NUMERIC(18,3) NOT NULL,
    installment_count        INT NOT NULL,
    period_unit              TEXT NOT NULL,
    first_due_date           DATE NOT NULL,
    creation_date            DATE NOT NULL,
    notice                   TEXT NOT NULL DEFAULT '',
    acceptance               TEXT NOT NULL DEFAULT '',
    bank_name                TEXT NOT NULL DEFAULT '',
    bank_address             TEXT NOT NULL DEFAULT '',
    account_reference        TEXT NOT NULL DEFAULT '',
    status                   TEXT NOT NULL DEFAULT 'unpaid',
    created_at               TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at               TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS installment_plans_kind_status_idx ON installment_plans (party_kind, status);

CREATE TABLE IF NOT EXISTS traites (
    id       UUID PRIMARY KEY,
    plan_id  UUID NOT NULL REFERENCES installment_plans(id) ON DELETE CASCADE,
    idx      INT NOT NULL,
    amount   NUMERIC(18,3) NOT NULL,
    due_date DATE NOT NULL,
    status   TEXT NOT NULL DEFAULT 'unpaid',
    UNIQUE (plan_id, idx)
);
`

const planColumns = `id, party_kind, counterparty_name, counterparty_tax_id, counterparty_address,
        reference_invoice_number, total_amount, installment_count, period_unit,
        first_due_date, creation_date, notice, acceptance, bank_name, bank_address,
        account_reference, status, created_at, updated_at`

// PlanRepository stores plans in postgres. The plan status column is a
// denormalized copy kept for filtering; the installments stay the truth.
type PlanRepository struct {
	db *sql.DB
}

func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// EnsureSchema creates the tables when they are missing.
func (r *PlanRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("создание схемы: %w", err)
	}
	return nil
}

// Create inserts the plan and all of its installments in one transaction.
func (r *PlanRepository) Create(ctx context.Context, plan *models.InstallmentPlan) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("начало транзакции: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = now
	}
	plan.UpdatedAt = now

	_, err = tx.ExecContext(ctx, `
        INSERT INTO installment_plans (`+planColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		plan.ID,
		plan.PartyKind,
		plan.Counterparty.Name,
		plan.Counterparty.TaxID,
		plan.Counterparty.Address,
		plan.ReferenceInvoiceNumber,
		plan.TotalAmount,
		plan.InstallmentCount,
		plan.PeriodUnit,
		plan.FirstDueDate,
		plan.CreationDate,
		plan.Notice,
		plan.Acceptance,
		plan.BankName,
		plan.BankAddress,
		plan.AccountReference,
		plan.Status,
		plan.CreatedAt,
		plan.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicatePlan
		}
		return fmt.Errorf("создание плана: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO traites (id, plan_id, idx, amount, due_date, status)
        VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return fmt.Errorf("подготовка вставки траншей: %w", err)
	}
	defer stmt.Close()

	for _, in := range plan.Installments {
		if _, err := stmt.ExecContext(ctx, in.ID, plan.ID, in.Index, in.Amount, in.DueDate, in.Status); err != nil {
			return fmt.Errorf("создание транша %d: %w", in.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("фиксация транзакции: %w", err)
	}
	return nil
}

// GetByID returns nil, nil when the plan does not exist.
func (r *PlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.InstallmentPlan, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+planColumns+` FROM installment_plans WHERE id = $1`, id)
	plan, err := scanPlan(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("получение плана по id: %w", err)
	}

	byPlan, err := r.installmentsFor(ctx, []uuid.UUID{plan.ID})
	if err != nil {
		return nil, err
	}
	plan.Installments = byPlan[plan.ID]
	return plan, nil
}

func (r *PlanRepository) List(ctx context.Context, f models.PlanFilter) ([]*models.InstallmentPlan, error) {
	query := `SELECT ` + planColumns + ` FROM installment_plans WHERE 1=1`
	args := []interface{}{}
	i := 1

	if f.PartyKind != "" {
		query += fmt.Sprintf(" AND party_kind = $%d", i)
		args = append(args, f.PartyKind)
		i++
	}
	if f.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", i)
		args = append(args, f.Status)
		i++
	}
	query += " ORDER BY created_at DESC, id"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", i)
		args = append(args, f.Limit)
		i++
	}
	if f.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", i)
		args = append(args, f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("список планов: %w", err)
	}
	defer rows.Close()

	var plans []*models.InstallmentPlan
	var ids []uuid.UUID
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("чтение плана: %w", err)
		}
		plans = append(plans, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return plans, nil
	}

	byPlan, err := r.installmentsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range plans {
		p.Installments = byPlan[p.ID]
	}
	return plans, nil
}

// UpdatePlan writes installment statuses and the recomputed plan status together.
func (r *PlanRepository) UpdatePlan(ctx context.Context, planID uuid.UUID, u models.PlanStatusUpdate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("начало транзакции: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, ch := range u.Installments {
		res, err := tx.ExecContext(ctx,
			`UPDATE traites SET status = $1 WHERE id = $2 AND plan_id = $3`,
			ch.Status, ch.InstallmentID, planID)
		if err != nil {
			return fmt.Errorf("обновление транша: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("проверка обновления транша: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: %s", models.ErrInstallmentNotFound, ch.InstallmentID)
		}
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE installment_plans SET status = $1, updated_at = $2 WHERE id = $3`,
		u.Status, time.Now().UTC(), planID)
	if err != nil {
		return fmt.Errorf("обновление статуса плана: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("проверка обновления: %w", err)
	}
	if affected == 0 {
		return models.ErrPlanNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("фиксация транзакции: %w", err)
	}
	return nil
}

// Delete removes the plan; its installments go with it (ON DELETE CASCADE).
func (r *PlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM installment_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("удаление плана: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("проверка удаления: %w", err)
	}
	if affected == 0 {
		return models.ErrPlanNotFound
	}
	return nil
}

func (r *PlanRepository) installmentsFor(ctx context.Context, planIDs []uuid.UUID) (map[uuid.UUID][]models.Installment, error) {
	ids := make([]string, len(planIDs))
	for i, id := range planIDs {
		ids[i] = id.String()
	}
	rows, err := r.db.QueryContext(ctx, `
        SELECT plan_id, id, idx, amount, due_date, status
        FROM traites
        WHERE plan_id = ANY($1::uuid[])
        ORDER BY plan_id, idx`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("получение траншей: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]models.Installment, len(planIDs))
	for rows.Next() {
		var planID uuid.UUID
		var in models.Installment
		if err := rows.Scan(&planID, &in.ID, &in.Index, &in.Amount, &in.DueDate, &in.Status); err != nil {
			return nil, fmt.Errorf("чтение транша: %w", err)
		}
		in.DueDate = dateOnly(in.DueDate)
		out[planID] = append(out[planID], in)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlan(row rowScanner) (*models.InstallmentPlan, error) {
	p := &models.InstallmentPlan{}
	err := row.Scan(
		&p.ID,
		&p.PartyKind,
		&p.Counterparty.Name,
		&p.Counterparty.TaxID,
		&p.Counterparty.Address,
		&p.ReferenceInvoiceNumber,
		&p.TotalAmount,
		&p.InstallmentCount,
		&p.PeriodUnit,
		&p.FirstDueDate,
		&p.CreationDate,
		&p.Notice,
		&p.Acceptance,
		&p.BankName,
		&p.BankAddress,
		&p.AccountReference,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.FirstDueDate = dateOnly(p.FirstDueDate)
	p.CreationDate = dateOnly(p.CreationDate)
	return p, nil
}

// DATE columns come back with the session time zone; keep the calendar day only.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" || strings.Contains(pqErr.Message, "duplicate key")
	}
	return false
}
