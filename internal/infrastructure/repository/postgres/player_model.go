package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/player"
)

type playerTableModel struct {
	ID        int64         `db:"id,readonly"`
	TeamID    int64         `db:"team_id"`
	Name      string        `db:"name"`
	Position  string        `db:"position"`
	Jersey    sql.NullInt64 `db:"jersey"`
	BirthDate sql.NullTime  `db:"birth_date"`
	Notes     string        `db:"notes"`
	CreatedAt time.Time     `db:"created_at,readonly"`
	UpdatedAt time.Time     `db:"updated_at,readonly"`
	DeletedAt *time.Time    `db:"deleted_at,readonly"`
}

func playerRow(item player.Player) playerTableModel {
	return playerTableModel{
		ID:        item.ID,
		TeamID:    item.TeamID,
		Name:      item.Name,
		Position:  item.Position,
		Jersey:    nullInt(item.Jersey),
		BirthDate: nullTime(item.BirthDate),
		Notes:     item.Notes,
	}
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:        row.ID,
		TeamID:    row.TeamID,
		Name:      row.Name,
		Position:  row.Position,
		Jersey:    intPtr(row.Jersey),
		BirthDate: timePtr(row.BirthDate),
		Notes:     row.Notes,
	}
}
