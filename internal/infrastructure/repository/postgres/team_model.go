package postgres

import (
	"time"

	"github.com/teamtally/clubdesk/internal/domain/division"
	"github.com/teamtally/clubdesk/internal/domain/team"
)

type teamTableModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	ClubName    string    `db:"club_name"`
	DivisionID  string    `db:"division_id"`
	OwnerUserID string    `db:"owner_user_id"`
	MaxPlayers  int       `db:"max_players"`
	SquadAge    int       `db:"squad_age"`
	Gender      string    `db:"gender"`
	Category    string    `db:"category"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func teamInsertModelFrom(t team.Team) teamTableModel {
	return teamTableModel{
		ID:          t.ID,
		Name:        t.Name,
		ClubName:    t.ClubName,
		DivisionID:  t.DivisionID,
		OwnerUserID: t.OwnerUserID,
		MaxPlayers:  t.MaxPlayers,
		SquadAge:    t.SquadAge,
		Gender:      string(t.Gender),
		Category:    t.Category,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:          row.ID,
		Name:        row.Name,
		ClubName:    row.ClubName,
		DivisionID:  row.DivisionID,
		OwnerUserID: row.OwnerUserID,
		MaxPlayers:  row.MaxPlayers,
		SquadAge:    row.SquadAge,
		Gender:      division.Gender(row.Gender),
		Category:    row.Category,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
