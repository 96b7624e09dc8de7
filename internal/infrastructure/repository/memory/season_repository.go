package memory

import (
	"context"

	"github.com/riskibarqy/cantera/internal/domain/season"
)

type SeasonRepository struct {
	rows *table[season.Season]
}

func NewSeasonRepository(seasons []season.Season) *SeasonRepository {
	rows := newTable(
		func(s season.Season) int64 { return s.ID },
		func(s *season.Season, id int64) { s.ID = id },
		nil,
	)
	rows.seed(seasons)
	return &SeasonRepository{rows: rows}
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	return r.rows.list(nil), nil
}

func (r *SeasonRepository) GetByID(_ context.Context, id int64) (season.Season, bool, error) {
	item, ok := r.rows.get(id)
	return item, ok, nil
}

func (r *SeasonRepository) Create(_ context.Context, item season.Season) (season.Season, error) {
	return r.rows.insert(item), nil
}

func (r *SeasonRepository) Update(_ context.Context, item season.Season) (season.Season, error) {
	return r.rows.update(item)
}

func (r *SeasonRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.rows.delete(id), nil
}
