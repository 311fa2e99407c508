package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/teamtally/clubdesk/internal/domain/message"
	qb "github.com/teamtally/clubdesk/internal/platform/querybuilder"
)

type MessageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, m message.Message) (message.Message, error) {
	query, args, err := qb.InsertModel("messages", messageInsertModelFrom(m), "RETURNING *")
	if err != nil {
		return message.Message{}, fmt.Errorf("build create message query: %w", err)
	}

	var row messageTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return message.Message{}, fmt.Errorf("create message: %w", err)
	}

	return messageFromRow(row), nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id string) (message.Message, bool, error) {
	query, args, err := qb.Select("*").From("messages").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return message.Message{}, false, fmt.Errorf("build get message by id query: %w", err)
	}

	var row messageTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return message.Message{}, false, nil
		}
		return message.Message{}, false, fmt.Errorf("get message by id: %w", err)
	}

	return messageFromRow(row), true, nil
}

func (r *MessageRepository) List(ctx context.Context, f message.Filter) ([]message.Message, error) {
	conds := make([]qb.Condition, 0, 3)
	if f.TeamID != "" {
		conds = append(conds, qb.Eq("team_id", f.TeamID))
	}
	if f.SenderUserID != "" {
		conds = append(conds, qb.Eq("sender_user_id", f.SenderUserID))
	}
	if f.Sent != nil {
		if *f.Sent {
			conds = append(conds, qb.IsNotNull("sent_at"))
		} else {
			conds = append(conds, qb.IsNull("sent_at"))
		}
	}

	query, args, err := qb.Select("*").From("messages").
		Where(conds...).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list messages query: %w", err)
	}

	var rows []messageTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	out := make([]message.Message, 0, len(rows))
	for _, row := range rows {
		out = append(out, messageFromRow(row))
	}

	return out, nil
}

func (r *MessageRepository) Update(ctx context.Context, id string, p message.Patch) (message.Message, bool, error) {
	if p.Empty() {
		return r.GetByID(ctx, id)
	}

	b := qb.Update("messages")
	if p.Subject != nil {
		b.Set("subject", *p.Subject)
	}
	if p.Body != nil {
		b.Set("body", *p.Body)
	}
	query, args, err := b.
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return message.Message{}, false, fmt.Errorf("build update message query: %w", err)
	}

	var row messageTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return message.Message{}, false, nil
		}
		return message.Message{}, false, fmt.Errorf("update message: %w", err)
	}

	return messageFromRow(row), true, nil
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom("messages").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete message query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}

	return nil
}

func (r *MessageRepository) AddRecipient(ctx context.Context, rec message.Recipient) error {
	// Re-delivery of the same message to the same player is a no-op.
	query, args, err := qb.InsertInto("message_recipients").
		Columns("message_id", "player_id", "delivered_at").
		Values(rec.MessageID, rec.PlayerID, rec.DeliveredAt).
		Suffix("ON CONFLICT (message_id, player_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build add message recipient query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("add message recipient: %w", err)
	}

	return nil
}

func (r *MessageRepository) MarkSent(ctx context.Context, id string, at time.Time) (message.Message, bool, error) {
	query, args, err := qb.Update("messages").
		Set("sent_at", at).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return message.Message{}, false, fmt.Errorf("build mark message sent query: %w", err)
	}

	var row messageTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return message.Message{}, false, nil
		}
		return message.Message{}, false, fmt.Errorf("mark message sent: %w", err)
	}

	return messageFromRow(row), true, nil
}

func (r *MessageRepository) ListRecipients(ctx context.Context, messageID string) ([]message.Recipient, error) {
	query, args, err := qb.Select("message_id", "player_id", "delivered_at").
		From("message_recipients").
		Where(qb.Eq("message_id", messageID)).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list message recipients query: %w", err)
	}

	var rows []messageRecipientTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list message recipients: %w", err)
	}

	out := make([]message.Recipient, 0, len(rows))
	for _, row := range rows {
		out = append(out, recipientFromRow(row))
	}

	return out, nil
}
