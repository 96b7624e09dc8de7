package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cantera/internal/domain/match"
	qb "github.com/riskibarqy/cantera/internal/platform/querybuilder"
)

const matchesTable = "matches"

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// List returns matches by kickoff.
func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	conditions := []qb.Condition{qb.IsNull("deleted_at")}
	if filter.TeamID != nil {
		conditions = append(conditions, qb.Eq("team_id", *filter.TeamID))
	}
	if filter.SeasonID != nil {
		conditions = append(conditions, qb.Eq("season_id", *filter.SeasonID))
	}
	if filter.From != nil {
		conditions = append(conditions, qb.Gte("kickoff", *filter.From))
	}
	query, args, err := qb.Select("*").From(matchesTable).
		Where(conditions...).
		OrderBy("kickoff", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		item, err := matchFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From(matchesTable).
		Where(qb.Eq("id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match id=%d: %w", id, err)
	}

	item, err := matchFromRow(row)
	if err != nil {
		return match.Match{}, false, err
	}
	return item, true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	row, err := matchRow(item)
	if err != nil {
		return match.Match{}, err
	}
	id, err := insertRow(ctx, r.db, matchesTable, row)
	if err != nil {
		return match.Match{}, err
	}
	item.ID = id
	return item, nil
}

// Update writes the whole match, lineup and events included, in one statement.
func (r *MatchRepository) Update(ctx context.Context, item match.Match) (match.Match, error) {
	row, err := matchRow(item)
	if err != nil {
		return match.Match{}, err
	}
	if err := updateRow(ctx, r.db, matchesTable, item.ID, row); err != nil {
		return match.Match{}, err
	}
	return item, nil
}

func (r *MatchRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return softDelete(ctx, r.db, matchesTable, id)
}
