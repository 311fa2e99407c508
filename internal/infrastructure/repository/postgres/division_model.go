package postgres

import (
	"time"

	"github.com/teamtally/clubdesk/internal/domain/division"
)

type divisionTableModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Gender    string    `db:"gender"`
	Category  string    `db:"category"`
	AgeMin    int       `db:"age_min"`
	AgeMax    int       `db:"age_max"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func divisionInsertModelFrom(d division.Division) divisionTableModel {
	return divisionTableModel{
		ID:        d.ID,
		Name:      d.Name,
		Gender:    string(d.Gender),
		Category:  d.Category,
		AgeMin:    d.AgeMin,
		AgeMax:    d.AgeMax,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func divisionFromRow(row divisionTableModel) division.Division {
	return division.Division{
		ID:        row.ID,
		Name:      row.Name,
		Gender:    division.Gender(row.Gender),
		Category:  row.Category,
		AgeMin:    row.AgeMin,
		AgeMax:    row.AgeMax,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
