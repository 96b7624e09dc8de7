package lineup

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/riskibarqy/cantera/internal/domain/match"
)

// Assign builds a conflict-free lineup from a coach submission.
//
// Explicit assignments are honoured when they name a starter and a free position of
// the formation; every other formation position takes the next unreserved starter in
// submission order. Positions without a starter stay empty. Starters that do not fit
// the formation are listed in Overflow and keep only the bench or unavailable role they
// were also submitted with. Anything dropped is reported in the result instead of
// failing the call.
func Assign(in Input) Result {
	roster := make(map[int64]RosterEntry, len(in.Roster))
	for _, entry := range in.Roster {
		roster[entry.PlayerID] = entry
	}

	var res Result
	unknown := make(map[int64]struct{})
	keep := func(ids []int64) []int64 {
		out := make([]int64, 0, len(ids))
		seen := make(map[int64]struct{}, len(ids))
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			if _, ok := roster[id]; !ok {
				if _, reported := unknown[id]; !reported {
					unknown[id] = struct{}{}
					res.UnknownPlayers = append(res.UnknownPlayers, id)
				}
				continue
			}
			out = append(out, id)
		}
		return out
	}

	starters := keep(in.Starters)
	bench := keep(in.Bench)
	unavailable := keep(in.Unavailable)

	starterSet := toSet(starters)
	assigned, ignored := buildAssignments(in.Assignments, starterSet)
	res.Ignored = append(res.Ignored, ignored...)

	formation := dedupePositions(in.Formation)
	inFormation := make(map[string]struct{}, len(formation))
	for _, pos := range formation {
		inFormation[pos] = struct{}{}
	}

	reserved := make(map[int64]struct{}, len(assigned))
	byPosition := make(map[string]int64, len(assigned))
	for _, a := range assigned {
		if _, ok := inFormation[a.position]; !ok {
			res.Ignored = append(res.Ignored, IgnoredAssignment{Position: a.position, PlayerID: a.raw, Reason: ReasonNotInFormation})
			continue
		}
		if _, taken := reserved[a.playerID]; taken {
			res.Ignored = append(res.Ignored, IgnoredAssignment{Position: a.position, PlayerID: a.raw, Reason: ReasonPlayerAlreadyUsed})
			continue
		}
		reserved[a.playerID] = struct{}{}
		byPosition[a.position] = a.playerID
	}

	previous := make(map[int64]match.PlayerSlot, len(in.Previous))
	for _, slot := range in.Previous {
		if _, exists := previous[slot.PlayerID]; !exists {
			previous[slot.PlayerID] = slot
		}
	}

	used := make(map[int64]struct{}, len(formation))
	next := 0
	for _, pos := range formation {
		playerID, ok := byPosition[pos]
		if !ok {
			playerID, ok = nextFree(starters, &next, used, reserved)
		}
		if !ok {
			continue
		}
		used[playerID] = struct{}{}
		res.ActualStarters = append(res.ActualStarters, playerID)
		res.Slots = append(res.Slots, newSlot(roster[playerID], match.RoleField, pos, previous))
	}

	benched := make(map[int64]struct{}, len(bench))
	for _, id := range bench {
		if _, onField := used[id]; onField {
			continue
		}
		benched[id] = struct{}{}
		res.Slots = append(res.Slots, newSlot(roster[id], match.RoleBench, "", previous))
	}
	for _, id := range starters {
		if _, onField := used[id]; onField {
			continue
		}
		res.Overflow = append(res.Overflow, id)
	}
	for _, id := range unavailable {
		if _, onField := used[id]; onField {
			continue
		}
		if _, onBench := benched[id]; onBench {
			continue
		}
		res.Slots = append(res.Slots, newSlot(roster[id], match.RoleUnavailable, "", previous))
	}

	return res
}

type parsedAssignment struct {
	position string
	playerID int64
	raw      string
}

// buildAssignments validates explicit position requests. The first valid request for a
// position wins.
func buildAssignments(raw []Assignment, starters map[int64]struct{}) ([]parsedAssignment, []IgnoredAssignment) {
	var (
		out     []parsedAssignment
		ignored []IgnoredAssignment
	)
	claimed := make(map[string]struct{}, len(raw))
	for _, a := range raw {
		position := strings.ToUpper(strings.TrimSpace(a.Position))
		if position == "" {
			ignored = append(ignored, IgnoredAssignment{Position: a.Position, PlayerID: a.PlayerID, Reason: ReasonEmptyPosition})
			continue
		}
		playerID, ok := parsePlayerID(a.PlayerID)
		if !ok {
			ignored = append(ignored, IgnoredAssignment{Position: position, PlayerID: a.PlayerID, Reason: ReasonInvalidPlayerID})
			continue
		}
		if _, ok := starters[playerID]; !ok {
			ignored = append(ignored, IgnoredAssignment{Position: position, PlayerID: a.PlayerID, Reason: ReasonNotStarter})
			continue
		}
		if _, taken := claimed[position]; taken {
			ignored = append(ignored, IgnoredAssignment{Position: position, PlayerID: a.PlayerID, Reason: ReasonPositionTaken})
			continue
		}
		claimed[position] = struct{}{}
		out = append(out, parsedAssignment{position: position, playerID: playerID, raw: a.PlayerID})
	}
	return out, ignored
}

func parsePlayerID(raw string) (int64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	return int64(f), true
}

func nextFree(starters []int64, cursor *int, used, reserved map[int64]struct{}) (int64, bool) {
	for *cursor < len(starters) {
		id := starters[*cursor]
		*cursor++
		if _, ok := used[id]; ok {
			continue
		}
		if _, ok := reserved[id]; ok {
			continue
		}
		return id, true
	}
	return 0, false
}

func newSlot(entry RosterEntry, role match.Role, position string, previous map[int64]match.PlayerSlot) match.PlayerSlot {
	slot := match.PlayerSlot{
		PlayerID: entry.PlayerID,
		Role:     role,
		Position: position,
	}
	if entry.Jersey != nil {
		jersey := *entry.Jersey
		slot.Jersey = &jersey
	}
	if prev, ok := previous[entry.PlayerID]; ok {
		slot.Minutes = prev.Minutes
		if slot.IsGoalkeeper() {
			if prev.CleanSheet != nil {
				v := *prev.CleanSheet
				slot.CleanSheet = &v
			}
			if prev.GoalsConceded != nil {
				v := *prev.GoalsConceded
				slot.GoalsConceded = &v
			}
		}
	}
	return slot
}

func dedupePositions(positions []string) []string {
	out := make([]string, 0, len(positions))
	for _, pos := range positions {
		if pos == "" || slices.Contains(out, pos) {
			continue
		}
		out = append(out, pos)
	}
	return out
}

func toSet(ids []int64) map[int64]struct{} {
	out := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
