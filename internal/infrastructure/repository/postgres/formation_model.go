package postgres

import (
	"time"

	"github.com/teamtally/clubdesk/internal/domain/formation"
)

type formationTableModel struct {
	ID        string    `db:"id"`
	MatchID   string    `db:"match_id"`
	Shape     string    `db:"shape"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type formationPositionTableModel struct {
	FormationID string `db:"formation_id"`
	Slot        int    `db:"slot"`
	Role        string `db:"role"`
	PlayerID    string `db:"player_id"`
}

func formationInsertModelFrom(f formation.Formation) formationTableModel {
	return formationTableModel{
		ID:        f.ID,
		MatchID:   f.MatchID,
		Shape:     f.Shape,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func formationFromRow(row formationTableModel, positions []formation.Position) formation.Formation {
	return formation.Formation{
		ID:        row.ID,
		MatchID:   row.MatchID,
		Shape:     row.Shape,
		Positions: positions,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func positionFromRow(row formationPositionTableModel) formation.Position {
	return formation.Position{
		Slot:     row.Slot,
		Role:     row.Role,
		PlayerID: row.PlayerID,
	}
}
