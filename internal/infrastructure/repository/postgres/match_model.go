package postgres

import (
	"time"

	"github.com/teamtally/clubdesk/internal/domain/match"
)

type matchTableModel struct {
	ID           string    `db:"id"`
	TeamID       string    `db:"team_id"`
	Opponent     string    `db:"opponent"`
	KickoffAt    time.Time `db:"kickoff_at"`
	Venue        string    `db:"venue"`
	GoalsFor     int       `db:"goals_for"`
	GoalsAgainst int       `db:"goals_against"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func matchInsertModelFrom(m match.Match) matchTableModel {
	return matchTableModel{
		ID:           m.ID,
		TeamID:       m.TeamID,
		Opponent:     m.Opponent,
		KickoffAt:    m.KickoffAt,
		Venue:        string(m.Venue),
		GoalsFor:     m.GoalsFor,
		GoalsAgainst: m.GoalsAgainst,
		Status:       string(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:           row.ID,
		TeamID:       row.TeamID,
		Opponent:     row.Opponent,
		KickoffAt:    row.KickoffAt,
		Venue:        match.Venue(row.Venue),
		GoalsFor:     row.GoalsFor,
		GoalsAgainst: row.GoalsAgainst,
		Status:       match.Status(row.Status),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
