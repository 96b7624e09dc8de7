package memory

import (
	"context"
	"slices"

	"github.com/riskibarqy/cantera/internal/domain/rating"
)

type RatingRepository struct {
	rows *table[rating.Rating]
}

func NewRatingRepository(ratings []rating.Rating) *RatingRepository {
	rows := newTable(
		func(r rating.Rating) int64 { return r.ID },
		func(r *rating.Rating, id int64) { r.ID = id },
		nil,
	)
	rows.seed(ratings)
	return &RatingRepository{rows: rows}
}

// List returns ratings newest first.
func (r *RatingRepository) List(_ context.Context, filter rating.ListFilter) ([]rating.Rating, error) {
	items := r.rows.list(func(item rating.Rating) bool {
		if filter.PlayerID != nil && item.PlayerID != *filter.PlayerID {
			return false
		}
		if filter.PlayerIDs != nil && !slices.Contains(filter.PlayerIDs, item.PlayerID) {
			return false
		}
		return true
	})
	slices.SortStableFunc(items, func(a, b rating.Rating) int {
		return b.Date.Compare(a.Date)
	})
	return items, nil
}

func (r *RatingRepository) GetByID(_ context.Context, id int64) (rating.Rating, bool, error) {
	item, ok := r.rows.get(id)
	return item, ok, nil
}

func (r *RatingRepository) Create(_ context.Context, item rating.Rating) (rating.Rating, error) {
	return r.rows.insert(item), nil
}

func (r *RatingRepository) Update(_ context.Context, item rating.Rating) (rating.Rating, error) {
	return r.rows.update(item)
}

func (r *RatingRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.rows.delete(id), nil
}
