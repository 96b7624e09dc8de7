package attendance

import (
	"context"
	"time"
)

// Record is one player's attendance mark.
type Record struct {
	PlayerID int64
	Attended bool
}

// Key identifies an attendance sheet: a team plus either a training session or a calendar date.
type Key struct {
	TeamID    int64
	SessionID *int64
	Date      *time.Time
}

// Sheet is the full attendance set stored under one key.
type Sheet struct {
	Key       Key
	Records   []Record
	UpdatedAt time.Time
}

// Repository describes attendance persistence needs. Replace swaps the whole sheet.
type Repository interface {
	Get(ctx context.Context, key Key) (Sheet, bool, error)
	Replace(ctx context.Context, sheet Sheet) (Sheet, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Sheet, error)
}
