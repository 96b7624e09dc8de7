package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cantera/internal/domain/team"
	qb "github.com/riskibarqy/cantera/internal/platform/querybuilder"
)

const teamsTable = "teams"

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context, filter team.ListFilter) ([]team.Team, error) {
	conditions := []qb.Condition{qb.IsNull("deleted_at")}
	if filter.SeasonID != nil {
		conditions = append(conditions, qb.Eq("season_id", *filter.SeasonID))
	}
	query, args, err := qb.Select("*").From(teamsTable).
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From(teamsTable).
		Where(qb.Eq("id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team id=%d: %w", id, err)
	}
	return teamFromRow(row), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	id, err := insertRow(ctx, r.db, teamsTable, teamRow(item))
	if err != nil {
		return team.Team{}, err
	}
	item.ID = id
	return item, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (team.Team, error) {
	if err := updateRow(ctx, r.db, teamsTable, item.ID, teamRow(item)); err != nil {
		return team.Team{}, err
	}
	return item, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return softDelete(ctx, r.db, teamsTable, id)
}
