package memory

import (
	"context"
	"slices"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/training"
)

type TrainingRepository struct {
	rows *table[training.Session]
}

func NewTrainingRepository(sessions []training.Session) *TrainingRepository {
	rows := newTable(
		func(s training.Session) int64 { return s.ID },
		func(s *training.Session, id int64) { s.ID = id },
		func(s training.Session) training.Session {
			if s.End != nil {
				end := *s.End
				s.End = &end
			}
			return s
		},
	)
	rows.seed(sessions)
	return &TrainingRepository{rows: rows}
}

// ListByTeam returns sessions ordered by start. from and to are inclusive bounds on start.
func (r *TrainingRepository) ListByTeam(_ context.Context, teamID int64, from, to *time.Time) ([]training.Session, error) {
	items := r.rows.list(func(s training.Session) bool {
		if s.TeamID != teamID {
			return false
		}
		if from != nil && s.Start.Before(*from) {
			return false
		}
		if to != nil && s.Start.After(*to) {
			return false
		}
		return true
	})
	slices.SortStableFunc(items, func(a, b training.Session) int {
		return a.Start.Compare(b.Start)
	})
	return items, nil
}

func (r *TrainingRepository) GetByID(_ context.Context, id int64) (training.Session, bool, error) {
	item, ok := r.rows.get(id)
	return item, ok, nil
}

func (r *TrainingRepository) CreateMany(_ context.Context, sessions []training.Session) ([]training.Session, error) {
	out := make([]training.Session, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, r.rows.insert(s))
	}
	return out, nil
}

func (r *TrainingRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.rows.delete(id), nil
}
