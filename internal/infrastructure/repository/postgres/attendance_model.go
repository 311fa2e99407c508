package postgres

import (
	"time"

	"github.com/teamtally/clubdesk/internal/domain/attendance"
)

type attendanceTableModel struct {
	ID        string    `db:"id"`
	PlayerID  string    `db:"player_id"`
	MatchID   string    `db:"match_id"`
	Status    string    `db:"status"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func attendanceInsertModelFrom(rec attendance.Record) attendanceTableModel {
	return attendanceTableModel{
		ID:        rec.ID,
		PlayerID:  rec.PlayerID,
		MatchID:   rec.MatchID,
		Status:    string(rec.Status),
		Note:      rec.Note,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func attendanceFromRow(row attendanceTableModel) attendance.Record {
	return attendance.Record{
		ID:        row.ID,
		PlayerID:  row.PlayerID,
		MatchID:   row.MatchID,
		Status:    attendance.Status(row.Status),
		Note:      row.Note,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
