package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cantera/internal/domain/player"
	qb "github.com/riskibarqy/cantera/internal/platform/querybuilder"
)

const playersTable = "players"

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// List returns players ordered by jersey number, then by name.
func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	conditions := []qb.Condition{qb.IsNull("deleted_at")}
	if filter.TeamID != nil {
		conditions = append(conditions, qb.Eq("team_id", *filter.TeamID))
	}
	query, args, err := qb.Select("*").From(playersTable).
		Where(conditions...).
		OrderBy("jersey NULLS LAST", "name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From(playersTable).
		Where(qb.Eq("id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player id=%d: %w", id, err)
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	id, err := insertRow(ctx, r.db, playersTable, playerRow(item))
	if err != nil {
		return player.Player{}, err
	}
	item.ID = id
	return item, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (player.Player, error) {
	if err := updateRow(ctx, r.db, playersTable, item.ID, playerRow(item)); err != nil {
		return player.Player{}, err
	}
	return item, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return softDelete(ctx, r.db, playersTable, id)
}
