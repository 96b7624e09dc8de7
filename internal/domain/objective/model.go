package objective

import (
	"context"
	"math"
	"time"
)

const CompleteProgress = 100

// Objective is a development goal for a team or one of its players. Progress is 0..100.
type Objective struct {
	ID          int64
	TeamID      int64
	PlayerID    *int64
	Title       string
	Description string
	Progress    int
	DueDate     *time.Time
}

func (o Objective) Completed() bool {
	return o.Progress >= CompleteProgress
}

// CompletionPercentage is the rounded share of completed objectives, 0 when there are none.
func CompletionPercentage(items []Objective) int {
	if len(items) == 0 {
		return 0
	}
	done := 0
	for _, o := range items {
		if o.Completed() {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(items)) * 100))
}

type ListFilter struct {
	TeamID   *int64
	PlayerID *int64
}

// Repository describes objective persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Objective, error)
	GetByID(ctx context.Context, id int64) (Objective, bool, error)
	Create(ctx context.Context, item Objective) (Objective, error)
	Update(ctx context.Context, item Objective) (Objective, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
