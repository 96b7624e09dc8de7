package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cantera/internal/domain/training"
	qb "github.com/riskibarqy/cantera/internal/platform/querybuilder"
)

const trainingSessionsTable = "training_sessions"

type trainingSessionTableModel struct {
	ID        int64        `db:"id,readonly"`
	TeamID    int64        `db:"team_id"`
	StartAt   time.Time    `db:"start_at"`
	EndAt     sql.NullTime `db:"end_at"`
	CreatedAt time.Time    `db:"created_at,readonly"`
	UpdatedAt time.Time    `db:"updated_at,readonly"`
	DeletedAt *time.Time   `db:"deleted_at,readonly"`
}

func trainingSessionFromRow(row trainingSessionTableModel) training.Session {
	return training.Session{
		ID:     row.ID,
		TeamID: row.TeamID,
		Start:  row.StartAt,
		End:    timePtr(row.EndAt),
	}
}

type TrainingRepository struct {
	db *sqlx.DB
}

func NewTrainingRepository(db *sqlx.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

// ListByTeam returns sessions ordered by start. from and to are inclusive bounds on start.
func (r *TrainingRepository) ListByTeam(ctx context.Context, teamID int64, from, to *time.Time) ([]training.Session, error) {
	conditions := []qb.Condition{qb.Eq("team_id", teamID), qb.IsNull("deleted_at")}
	if from != nil {
		conditions = append(conditions, qb.Gte("start_at", *from))
	}
	if to != nil {
		conditions = append(conditions, qb.Lte("start_at", *to))
	}
	query, args, err := qb.Select("*").From(trainingSessionsTable).
		Where(conditions...).
		OrderBy("start_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select training sessions query: %w", err)
	}

	var rows []trainingSessionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select training sessions team=%d: %w", teamID, err)
	}

	out := make([]training.Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, trainingSessionFromRow(row))
	}
	return out, nil
}

func (r *TrainingRepository) GetByID(ctx context.Context, id int64) (training.Session, bool, error) {
	query, args, err := qb.Select("*").From(trainingSessionsTable).
		Where(qb.Eq("id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return training.Session{}, false, fmt.Errorf("build get training session query: %w", err)
	}

	var row trainingSessionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return training.Session{}, false, nil
		}
		return training.Session{}, false, fmt.Errorf("get training session id=%d: %w", id, err)
	}
	return trainingSessionFromRow(row), true, nil
}

// CreateMany stores all sessions in one transaction.
func (r *TrainingRepository) CreateMany(ctx context.Context, sessions []training.Session) ([]training.Session, error) {
	if len(sessions) == 0 {
		return []training.Session{}, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin create training sessions tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	out := make([]training.Session, 0, len(sessions))
	for _, s := range sessions {
		id, err := insertRow(ctx, tx, trainingSessionsTable, trainingSessionTableModel{
			TeamID:  s.TeamID,
			StartAt: s.Start,
			EndAt:   nullTime(s.End),
		})
		if err != nil {
			return nil, err
		}
		s.ID = id
		out = append(out, s)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create training sessions tx: %w", err)
	}
	return out, nil
}

func (r *TrainingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return softDelete(ctx, r.db, trainingSessionsTable, id)
}
