package rating

import (
	"context"
	"time"
)

// Rating is a coach evaluation of a player on a given day. Skills range 0..10 and a
// zero means the skill was not rated.
type Rating struct {
	ID        int64
	PlayerID  int64
	Date      time.Time
	Technical float64
	Tactical  float64
	Physical  float64
	Mental    float64
	Comment   string
}

func (r Rating) Skills() []float64 {
	return []float64{r.Technical, r.Tactical, r.Physical, r.Mental}
}

type ListFilter struct {
	PlayerID  *int64
	PlayerIDs []int64
}

// Repository describes rating persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Rating, error)
	GetByID(ctx context.Context, id int64) (Rating, bool, error)
	Create(ctx context.Context, item Rating) (Rating, error)
	Update(ctx context.Context, item Rating) (Rating, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
