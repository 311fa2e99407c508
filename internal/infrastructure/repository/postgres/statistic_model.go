package postgres

import (
	"time"

	"github.com/teamtally/clubdesk/internal/domain/statistic"
)

type statisticTableModel struct {
	ID            string    `db:"id"`
	PlayerID      string    `db:"player_id"`
	Season        string    `db:"season"`
	MatchesPlayed int       `db:"matches_played"`
	Goals         int       `db:"goals"`
	Assists       int       `db:"assists"`
	Minutes       int       `db:"minutes"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func statisticInsertModelFrom(s statistic.Statistic) statisticTableModel {
	return statisticTableModel{
		ID:            s.ID,
		PlayerID:      s.PlayerID,
		Season:        s.Season,
		MatchesPlayed: s.MatchesPlayed,
		Goals:         s.Goals,
		Assists:       s.Assists,
		Minutes:       s.Minutes,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func statisticFromRow(row statisticTableModel) statistic.Statistic {
	return statistic.Statistic{
		ID:            row.ID,
		PlayerID:      row.PlayerID,
		Season:        row.Season,
		MatchesPlayed: row.MatchesPlayed,
		Goals:         row.Goals,
		Assists:       row.Assists,
		Minutes:       row.Minutes,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
