package memory

import (
	"context"

	"github.com/riskibarqy/cantera/internal/domain/objective"
)

type ObjectiveRepository struct {
	rows *table[objective.Objective]
}

func NewObjectiveRepository(objectives []objective.Objective) *ObjectiveRepository {
	rows := newTable(
		func(o objective.Objective) int64 { return o.ID },
		func(o *objective.Objective, id int64) { o.ID = id },
		func(o objective.Objective) objective.Objective {
			o.PlayerID = cloneInt64Ptr(o.PlayerID)
			if o.DueDate != nil {
				d := *o.DueDate
				o.DueDate = &d
			}
			return o
		},
	)
	rows.seed(objectives)
	return &ObjectiveRepository{rows: rows}
}

func (r *ObjectiveRepository) List(_ context.Context, filter objective.ListFilter) ([]objective.Objective, error) {
	return r.rows.list(func(o objective.Objective) bool {
		if filter.TeamID != nil && o.TeamID != *filter.TeamID {
			return false
		}
		if filter.PlayerID != nil && (o.PlayerID == nil || *o.PlayerID != *filter.PlayerID) {
			return false
		}
		return true
	}), nil
}

func (r *ObjectiveRepository) GetByID(_ context.Context, id int64) (objective.Objective, bool, error) {
	item, ok := r.rows.get(id)
	return item, ok, nil
}

func (r *ObjectiveRepository) Create(_ context.Context, item objective.Objective) (objective.Objective, error) {
	return r.rows.insert(item), nil
}

func (r *ObjectiveRepository) Update(_ context.Context, item objective.Objective) (objective.Objective, error) {
	return r.rows.update(item)
}

func (r *ObjectiveRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.rows.delete(id), nil
}
