package memory

import (
	"context"

	"github.com/riskibarqy/cantera/internal/domain/scouting"
)

type ScoutingRepository struct {
	rows *table[scouting.Report]
}

func NewScoutingRepository(reports []scouting.Report) *ScoutingRepository {
	rows := newTable(
		func(s scouting.Report) int64 { return s.ID },
		func(s *scouting.Report, id int64) { s.ID = id },
		func(s scouting.Report) scouting.Report {
			s.TeamID = cloneInt64Ptr(s.TeamID)
			if s.BirthDate != nil {
				d := *s.BirthDate
				s.BirthDate = &d
			}
			return s
		},
	)
	rows.seed(reports)
	return &ScoutingRepository{rows: rows}
}

func (r *ScoutingRepository) List(_ context.Context) ([]scouting.Report, error) {
	return r.rows.list(nil), nil
}

func (r *ScoutingRepository) GetByID(_ context.Context, id int64) (scouting.Report, bool, error) {
	item, ok := r.rows.get(id)
	return item, ok, nil
}

func (r *ScoutingRepository) Create(_ context.Context, item scouting.Report) (scouting.Report, error) {
	return r.rows.insert(item), nil
}

func (r *ScoutingRepository) Update(_ context.Context, item scouting.Report) (scouting.Report, error) {
	return r.rows.update(item)
}

func (r *ScoutingRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.rows.delete(id), nil
}
