package postgres

import (
	"database/sql"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/payment"
)

type paymentTableModel struct {
	ID          string       `db:"id"`
	UserID      string       `db:"user_id"`
	AmountCents int64        `db:"amount_cents"`
	Currency    string       `db:"currency"`
	DueAt       time.Time    `db:"due_at"`
	PaidAt      sql.NullTime `db:"paid_at"`
	Status      string       `db:"status"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

func paymentInsertModelFrom(p payment.Payment) paymentTableModel {
	return paymentTableModel{
		ID:          p.ID,
		UserID:      p.UserID,
		AmountCents: p.AmountCents,
		Currency:    p.Currency,
		DueAt:       p.DueAt,
		PaidAt:      ptrToNullTime(p.PaidAt),
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func paymentFromRow(row paymentTableModel) payment.Payment {
	return payment.Payment{
		ID:          row.ID,
		UserID:      row.UserID,
		AmountCents: row.AmountCents,
		Currency:    row.Currency,
		DueAt:       row.DueAt,
		PaidAt:      nullTimeToPtr(row.PaidAt),
		Status:      payment.Status(row.Status),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
