package postgres

import (
	"time"

	"github.com/riskibarqy/cantera/internal/domain/season"
)

type seasonTableModel struct {
	ID        int64      `db:"id,readonly"`
	Name      string     `db:"name"`
	StartDate time.Time  `db:"start_date"`
	EndDate   time.Time  `db:"end_date"`
	Active    bool       `db:"active"`
	CreatedAt time.Time  `db:"created_at,readonly"`
	UpdatedAt time.Time  `db:"updated_at,readonly"`
	DeletedAt *time.Time `db:"deleted_at,readonly"`
}

func seasonRow(item season.Season) seasonTableModel {
	return seasonTableModel{
		ID:        item.ID,
		Name:      item.Name,
		StartDate: item.Start,
		EndDate:   item.End,
		Active:    item.Active,
	}
}

func seasonFromRow(row seasonTableModel) season.Season {
	return season.Season{
		ID:     row.ID,
		Name:   row.Name,
		Start:  row.StartDate,
		End:    row.EndDate,
		Active: row.Active,
	}
}
