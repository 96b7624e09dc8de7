package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cantera/internal/domain/season"
	qb "github.com/riskibarqy/cantera/internal/platform/querybuilder"
)

const seasonsTable = "seasons"

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	query, args, err := qb.Select("*").From(seasonsTable).
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}
	return out, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, id int64) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From(seasonsTable).
		Where(qb.Eq("id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season id=%d: %w", id, err)
	}
	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) (season.Season, error) {
	id, err := insertRow(ctx, r.db, seasonsTable, seasonRow(item))
	if err != nil {
		return season.Season{}, err
	}
	item.ID = id
	return item, nil
}

func (r *SeasonRepository) Update(ctx context.Context, item season.Season) (season.Season, error) {
	if err := updateRow(ctx, r.db, seasonsTable, item.ID, seasonRow(item)); err != nil {
		return season.Season{}, err
	}
	return item, nil
}

func (r *SeasonRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return softDelete(ctx, r.db, seasonsTable, id)
}
