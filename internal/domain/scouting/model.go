package scouting

import (
	"context"
	"time"
)

// Report is an observation of a player outside the club.
type Report struct {
	ID        int64
	TeamID    *int64
	Name      string
	Club      string
	Position  string
	BirthDate *time.Time
	Score     float64
	Notes     string
	Date      time.Time
}

// Repository describes scouting persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Report, error)
	GetByID(ctx context.Context, id int64) (Report, bool, error)
	Create(ctx context.Context, item Report) (Report, error)
	Update(ctx context.Context, item Report) (Report, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
