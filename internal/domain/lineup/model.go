package lineup

import "github.com/riskibarqy/cantera/internal/domain/match"

// RosterEntry is the part of a player the engine needs.
type RosterEntry struct {
	PlayerID int64
	Jersey   *int
}

// Assignment is an explicit position request as submitted, e.g. "GK:12" split in two.
// PlayerID is kept raw so the engine can apply its own parsing rules.
type Assignment struct {
	Position string
	PlayerID string
}

// Input is everything needed to build a lineup for one match.
type Input struct {
	Roster      []RosterEntry
	Formation   []string
	Starters    []int64
	Bench       []int64
	Unavailable []int64
	Assignments []Assignment
	Previous    []match.PlayerSlot
}

// IgnoreReason explains why part of a submission was dropped.
type IgnoreReason string

const (
	ReasonEmptyPosition     IgnoreReason = "empty_position"
	ReasonInvalidPlayerID   IgnoreReason = "invalid_player_id"
	ReasonNotStarter        IgnoreReason = "not_a_starter"
	ReasonPositionTaken     IgnoreReason = "position_already_assigned"
	ReasonNotInFormation    IgnoreReason = "position_not_in_formation"
	ReasonPlayerAlreadyUsed IgnoreReason = "player_already_assigned"
)

type IgnoredAssignment struct {
	Position string
	PlayerID string
	Reason   IgnoreReason
}

// Result is the constructed lineup plus everything the engine discarded on the way.
type Result struct {
	Slots          []match.PlayerSlot
	ActualStarters []int64
	Ignored        []IgnoredAssignment
	UnknownPlayers []int64
	Overflow       []int64
}

// Clean reports whether the submission was used as given.
func (r Result) Clean() bool {
	return len(r.Ignored) == 0 && len(r.UnknownPlayers) == 0
}
