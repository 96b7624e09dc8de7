package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cantera/internal/domain/objective"
	qb "github.com/riskibarqy/cantera/internal/platform/querybuilder"
)

const objectivesTable = "objectives"

type objectiveTableModel struct {
	ID          int64         `db:"id,readonly"`
	TeamID      int64         `db:"team_id"`
	PlayerID    sql.NullInt64 `db:"player_id"`
	Title       string        `db:"title"`
	Description string        `db:"description"`
	Progress    int           `db:"progress"`
	DueDate     sql.NullTime  `db:"due_date"`
	CreatedAt   time.Time     `db:"created_at,readonly"`
	UpdatedAt   time.Time     `db:"updated_at,readonly"`
	DeletedAt   *time.Time    `db:"deleted_at,readonly"`
}

func objectiveRow(item objective.Objective) objectiveTableModel {
	return objectiveTableModel{
		ID:          item.ID,
		TeamID:      item.TeamID,
		PlayerID:    nullInt64(item.PlayerID),
		Title:       item.Title,
		Description: item.Description,
		Progress:    item.Progress,
		DueDate:     nullTime(item.DueDate),
	}
}

func objectiveFromRow(row objectiveTableModel) objective.Objective {
	return objective.Objective{
		ID:          row.ID,
		TeamID:      row.TeamID,
		PlayerID:    int64Ptr(row.PlayerID),
		Title:       row.Title,
		Description: row.Description,
		Progress:    row.Progress,
		DueDate:     timePtr(row.DueDate),
	}
}

type ObjectiveRepository struct {
	db *sqlx.DB
}

func NewObjectiveRepository(db *sqlx.DB) *ObjectiveRepository {
	return &ObjectiveRepository{db: db}
}

func (r *ObjectiveRepository) List(ctx context.Context, filter objective.ListFilter) ([]objective.Objective, error) {
	conditions := []qb.Condition{qb.IsNull("deleted_at")}
	if filter.TeamID != nil {
		conditions = append(conditions, qb.Eq("team_id", *filter.TeamID))
	}
	if filter.PlayerID != nil {
		conditions = append(conditions, qb.Eq("player_id", *filter.PlayerID))
	}
	query, args, err := qb.Select("*").From(objectivesTable).
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select objectives query: %w", err)
	}

	var rows []objectiveTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select objectives: %w", err)
	}

	out := make([]objective.Objective, 0, len(rows))
	for _, row := range rows {
		out = append(out, objectiveFromRow(row))
	}
	return out, nil
}

func (r *ObjectiveRepository) GetByID(ctx context.Context, id int64) (objective.Objective, bool, error) {
	query, args, err := qb.Select("*").From(objectivesTable).
		Where(qb.Eq("id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return objective.Objective{}, false, fmt.Errorf("build get objective query: %w", err)
	}

	var row objectiveTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return objective.Objective{}, false, nil
		}
		return objective.Objective{}, false, fmt.Errorf("get objective id=%d: %w", id, err)
	}
	return objectiveFromRow(row), true, nil
}

func (r *ObjectiveRepository) Create(ctx context.Context, item objective.Objective) (objective.Objective, error) {
	id, err := insertRow(ctx, r.db, objectivesTable, objectiveRow(item))
	if err != nil {
		return objective.Objective{}, err
	}
	item.ID = id
	return item, nil
}

func (r *ObjectiveRepository) Update(ctx context.Context, item objective.Objective) (objective.Objective, error) {
	if err := updateRow(ctx, r.db, objectivesTable, item.ID, objectiveRow(item)); err != nil {
		return objective.Objective{}, err
	}
	return item, nil
}

func (r *ObjectiveRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return softDelete(ctx, r.db, objectivesTable, id)
}
