package match

import (
	"context"
	"time"
)

// Role is the part a player takes in a match lineup.
type Role string

const (
	RoleField       Role = "field"
	RoleBench       Role = "bench"
	RoleUnavailable Role = "unavailable"
)

func (r Role) Valid() bool {
	switch r {
	case RoleField, RoleBench, RoleUnavailable:
		return true
	default:
		return false
	}
}

const GoalkeeperPosition = "GK"

// PlayerSlot is one row of a match lineup. Position is set only for field players.
type PlayerSlot struct {
	PlayerID      int64
	Role          Role
	Position      string
	Jersey        *int
	Minutes       int
	CleanSheet    *bool
	GoalsConceded *int
}

func (s PlayerSlot) IsGoalkeeper() bool {
	return s.Role == RoleField && s.Position == GoalkeeperPosition
}

// Match is a fixture of one club team against an opponent.
type Match struct {
	ID            int64
	TeamID        int64
	SeasonID      *int64
	Opponent      string
	Home          bool
	Venue         string
	Kickoff       time.Time
	Lineup        []PlayerSlot
	Events        []Event
	OpponentNotes string
	Finished      bool
	GoalsFor      int
	GoalsAgainst  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FieldPositions lists the positions of field slots in lineup order.
func (m Match) FieldPositions() []string {
	out := make([]string, 0, len(m.Lineup))
	for _, slot := range m.Lineup {
		if slot.Role == RoleField && slot.Position != "" {
			out = append(out, slot.Position)
		}
	}
	return out
}

// SlotsByPlayer indexes the current lineup by player id.
func (m Match) SlotsByPlayer() map[int64]PlayerSlot {
	out := make(map[int64]PlayerSlot, len(m.Lineup))
	for _, slot := range m.Lineup {
		if _, exists := out[slot.PlayerID]; exists {
			continue
		}
		out[slot.PlayerID] = slot
	}
	return out
}

// NextEventID returns an id that is unique among the match events.
func (m Match) NextEventID() int64 {
	var maxID int64
	for _, ev := range m.Events {
		if ev.ID > maxID {
			maxID = ev.ID
		}
	}
	return maxID + 1
}

// CountGoals counts goal events credited to players in roster.
func (m Match) CountGoals(roster map[int64]struct{}) int {
	goals := 0
	for _, ev := range m.Events {
		if ev.Type != EventGoal || ev.PlayerID == nil {
			continue
		}
		if _, ok := roster[*ev.PlayerID]; ok {
			goals++
		}
	}
	return goals
}

type ListFilter struct {
	TeamID   *int64
	SeasonID *int64
	From     *time.Time
}

// Repository describes match persistence needs from use cases. Update replaces the
// whole row including lineup and events.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Match, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	Create(ctx context.Context, item Match) (Match, error)
	Update(ctx context.Context, item Match) (Match, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
