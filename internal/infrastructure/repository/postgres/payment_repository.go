package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/teamtally/clubdesk/internal/domain/payment"
	qb "github.com/teamtally/clubdesk/internal/platform/querybuilder"
)

type PaymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p payment.Payment) (payment.Payment, error) {
	query, args, err := qb.InsertModel("payments", paymentInsertModelFrom(p), "RETURNING *")
	if err != nil {
		return payment.Payment{}, fmt.Errorf("build create payment query: %w", err)
	}

	var row paymentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return payment.Payment{}, fmt.Errorf("create payment: %w", err)
	}

	return paymentFromRow(row), nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (payment.Payment, bool, error) {
	query, args, err := qb.Select("*").From("payments").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return payment.Payment{}, false, fmt.Errorf("build get payment by id query: %w", err)
	}

	var row paymentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return payment.Payment{}, false, nil
		}
		return payment.Payment{}, false, fmt.Errorf("get payment by id: %w", err)
	}

	return paymentFromRow(row), true, nil
}

func (r *PaymentRepository) List(ctx context.Context, f payment.Filter) ([]payment.Payment, error) {
	conds := make([]qb.Condition, 0, 2)
	if f.UserID != "" {
		conds = append(conds, qb.Eq("user_id", f.UserID))
	}
	if f.Status != "" {
		conds = append(conds, qb.Eq("status", string(f.Status)))
	}

	query, args, err := qb.Select("*").From("payments").
		Where(conds...).
		OrderBy("due_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list payments query: %w", err)
	}

	var rows []paymentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	out := make([]payment.Payment, 0, len(rows))
	for _, row := range rows {
		out = append(out, paymentFromRow(row))
	}

	return out, nil
}

func (r *PaymentRepository) Update(ctx context.Context, id string, p payment.Patch) (payment.Payment, bool, error) {
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	b := qb.Update("payments")
	if p.AmountCents != nil {
		b.Set("amount_cents", *p.AmountCents)
	}
	if p.DueAt != nil {
		b.Set("due_at", *p.DueAt)
	}
	if p.PaidAt != nil {
		b.Set("paid_at", *p.PaidAt)
	}
	if p.Status != nil {
		b.Set("status", string(*p.Status))
	}
	query, args, err := b.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return payment.Payment{}, false, fmt.Errorf("build update payment query: %w", err)
	}

	var row paymentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return payment.Payment{}, false, nil
		}
		return payment.Payment{}, false, fmt.Errorf("update payment: %w", err)
	}

	return paymentFromRow(row), true, nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("payments").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete payment query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}

	return nil
}
