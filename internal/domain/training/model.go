package training

import (
	"context"
	"time"
)

// Session is a persisted training slot of a team.
type Session struct {
	ID     int64
	TeamID int64
	Start  time.Time
	End    *time.Time
}

// Repository describes training session persistence needs from use cases.
type Repository interface {
	ListByTeam(ctx context.Context, teamID int64, from, to *time.Time) ([]Session, error)
	GetByID(ctx context.Context, id int64) (Session, bool, error)
	CreateMany(ctx context.Context, sessions []Session) ([]Session, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
