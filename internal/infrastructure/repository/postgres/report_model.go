package postgres

import (
	"time"

	"github.com/teamtally/clubdesk/internal/domain/report"
)

type reportTableModel struct {
	ID           string    `db:"id"`
	AuthorUserID string    `db:"author_user_id"`
	Kind         string    `db:"kind"`
	Title        string    `db:"title"`
	Body         string    `db:"body"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func reportInsertModelFrom(rep report.Report) reportTableModel {
	return reportTableModel{
		ID:           rep.ID,
		AuthorUserID: rep.AuthorUserID,
		Kind:         string(rep.Kind),
		Title:        rep.Title,
		Body:         rep.Body,
		CreatedAt:    rep.CreatedAt,
		UpdatedAt:    rep.UpdatedAt,
	}
}

func reportFromRow(row reportTableModel) report.Report {
	return report.Report{
		ID:           row.ID,
		AuthorUserID: row.AuthorUserID,
		Kind:         report.Kind(row.Kind),
		Title:        row.Title,
		Body:         row.Body,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
