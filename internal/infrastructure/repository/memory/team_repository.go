package memory

import (
	"context"

	"github.com/riskibarqy/cantera/internal/domain/team"
)

type TeamRepository struct {
	rows *table[team.Team]
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	rows := newTable(
		func(t team.Team) int64 { return t.ID },
		func(t *team.Team, id int64) { t.ID = id },
		func(t team.Team) team.Team {
			t.SeasonID = cloneInt64Ptr(t.SeasonID)
			return t
		},
	)
	rows.seed(teams)
	return &TeamRepository{rows: rows}
}

func (r *TeamRepository) List(_ context.Context, filter team.ListFilter) ([]team.Team, error) {
	return r.rows.list(func(t team.Team) bool {
		if filter.SeasonID == nil {
			return true
		}
		return t.SeasonID != nil && *t.SeasonID == *filter.SeasonID
	}), nil
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (team.Team, bool, error) {
	item, ok := r.rows.get(id)
	return item, ok, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	return r.rows.insert(item), nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) (team.Team, error) {
	return r.rows.update(item)
}

func (r *TeamRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.rows.delete(id), nil
}
