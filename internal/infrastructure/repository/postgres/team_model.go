package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/team"
)

type teamTableModel struct {
	ID        int64         `db:"id,readonly"`
	Name      string        `db:"name"`
	Category  string        `db:"category"`
	SeasonID  sql.NullInt64 `db:"season_id"`
	Coach     string        `db:"coach"`
	CreatedAt time.Time     `db:"created_at,readonly"`
	UpdatedAt time.Time     `db:"updated_at,readonly"`
	DeletedAt *time.Time    `db:"deleted_at,readonly"`
}

func teamRow(item team.Team) teamTableModel {
	return teamTableModel{
		ID:       item.ID,
		Name:     item.Name,
		Category: item.Category,
		SeasonID: nullInt64(item.SeasonID),
		Coach:    item.Coach,
	}
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:       row.ID,
		Name:     row.Name,
		Category: row.Category,
		SeasonID: int64Ptr(row.SeasonID),
		Coach:    row.Coach,
	}
}
