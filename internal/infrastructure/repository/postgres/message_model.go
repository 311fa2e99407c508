package postgres

import (
	"database/sql"
	"time"

	"github.com/teamtally/clubdesk/internal/domain/message"
)

type messageTableModel struct {
	ID           string       `db:"id"`
	SenderUserID string       `db:"sender_user_id"`
	TeamID       string       `db:"team_id"`
	Subject      string       `db:"subject"`
	Body         string       `db:"body"`
	SentAt       sql.NullTime `db:"sent_at"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

type messageRecipientTableModel struct {
	MessageID   string    `db:"message_id"`
	PlayerID    string    `db:"player_id"`
	DeliveredAt time.Time `db:"delivered_at"`
}

func messageInsertModelFrom(m message.Message) messageTableModel {
	return messageTableModel{
		ID:           m.ID,
		SenderUserID: m.SenderUserID,
		TeamID:       m.TeamID,
		Subject:      m.Subject,
		Body:         m.Body,
		SentAt:       ptrToNullTime(m.SentAt),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func messageFromRow(row messageTableModel) message.Message {
	return message.Message{
		ID:           row.ID,
		SenderUserID: row.SenderUserID,
		TeamID:       row.TeamID,
		Subject:      row.Subject,
		Body:         row.Body,
		SentAt:       nullTimeToPtr(row.SentAt),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func recipientFromRow(row messageRecipientTableModel) message.Recipient {
	return message.Recipient{
		MessageID:   row.MessageID,
		PlayerID:    row.PlayerID,
		DeliveredAt: row.DeliveredAt,
	}
}
