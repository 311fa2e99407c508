package postgres

import (
	"time"

	"github.com/teamtally/clubdesk/internal/domain/player"
)

type playerTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	BirthDate time.Time `db:"birth_date"`
	Position  string    `db:"position"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func playerInsertModelFrom(p player.Player) playerTableModel {
	return playerTableModel{
		ID:        p.ID,
		Name:      p.Name,
		BirthDate: p.BirthDate,
		Position:  string(p.Position),
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func playerFromRow(row playerTableModel, teamIDs []string) player.Player {
	return player.Player{
		ID:        row.ID,
		Name:      row.Name,
		BirthDate: row.BirthDate,
		Position:  player.Position(row.Position),
		IsActive:  row.IsActive,
		TeamIDs:   teamIDs,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
