package lineup

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/riskibarqy/cantera/internal/domain/match"
	"github.com/stretchr/testify/require"
)

func roster(ids ...int64) []RosterEntry {
	out := make([]RosterEntry, 0, len(ids))
	for _, id := range ids {
		jersey := int(id) + 1
		out = append(out, RosterEntry{PlayerID: id, Jersey: &jersey})
	}
	return out
}

func fieldMap(slots []match.PlayerSlot) map[string]int64 {
	out := map[string]int64{}
	for _, s := range slots {
		if s.Role == match.RoleField {
			out[s.Position] = s.PlayerID
		}
	}
	return out
}

func roles(slots []match.PlayerSlot) map[int64]match.Role {
	out := map[int64]match.Role{}
	for _, s := range slots {
		out[s.PlayerID] = s.Role
	}
	return out
}

func TestAssign_SubmissionOrder(t *testing.T) {
	res := Assign(Input{
		Roster:    roster(1, 2, 3),
		Formation: []string{"GK", "LB", "RB"},
		Starters:  []int64{1, 2, 3},
	})

	require.Equal(t, []match.PlayerSlot{
		{PlayerID: 1, Role: match.RoleField, Position: "GK", Jersey: intPtr(2)},
		{PlayerID: 2, Role: match.RoleField, Position: "LB", Jersey: intPtr(3)},
		{PlayerID: 3, Role: match.RoleField, Position: "RB", Jersey: intPtr(4)},
	}, res.Slots)
	require.Equal(t, []int64{1, 2, 3}, res.ActualStarters)
	require.True(t, res.Clean())
}

func TestAssign_ExplicitAssignments(t *testing.T) {
	res := Assign(Input{
		Roster:    roster(1, 2, 3, 4),
		Formation: []string{"GK", "LB", "CB", "RB"},
		Starters:  []int64{1, 2, 3, 4},
		Assignments: []Assignment{
			{Position: "RB", PlayerID: "1"},
			{Position: "gk", PlayerID: " 4 "},
			{Position: "RB", PlayerID: "2"},
			{Position: "", PlayerID: "3"},
			{Position: "CB", PlayerID: "abc"},
			{Position: "CB", PlayerID: "99"},
			{Position: "ST", PlayerID: "3"},
		},
	})

	require.Equal(t, map[string]int64{"GK": 4, "LB": 2, "CB": 3, "RB": 1}, fieldMap(res.Slots))
	require.Equal(t, []int64{4, 2, 3, 1}, res.ActualStarters)

	reasons := map[IgnoreReason]int{}
	for _, ig := range res.Ignored {
		reasons[ig.Reason]++
	}
	require.Equal(t, map[IgnoreReason]int{
		ReasonPositionTaken:   1,
		ReasonEmptyPosition:   1,
		ReasonInvalidPlayerID: 1,
		ReasonNotStarter:      1,
		ReasonNotInFormation:  1,
	}, reasons)
	require.False(t, res.Clean())
}

func TestAssign_SamePlayerTwoPositions(t *testing.T) {
	res := Assign(Input{
		Roster:      roster(1, 2),
		Formation:   []string{"GK", "ST"},
		Starters:    []int64{1, 2},
		Assignments: []Assignment{{Position: "GK", PlayerID: "2"}, {Position: "ST", PlayerID: "2.0"}},
	})

	require.Equal(t, map[string]int64{"GK": 2, "ST": 1}, fieldMap(res.Slots))
	require.Len(t, res.Ignored, 1)
	require.Equal(t, ReasonPlayerAlreadyUsed, res.Ignored[0].Reason)
}

func TestAssign_FewerStartersLeavesPositionsEmpty(t *testing.T) {
	res := Assign(Input{
		Roster:    roster(1, 2),
		Formation: []string{"GK", "LB", "CB", "RB"},
		Starters:  []int64{2, 1, 2},
	})

	require.Equal(t, map[string]int64{"GK": 2, "LB": 1}, fieldMap(res.Slots))
	require.Len(t, res.Slots, 2)
}

func TestAssign_OverflowKeepsOtherBuckets(t *testing.T) {
	res := Assign(Input{
		Roster:      roster(1, 2, 3, 4, 5, 6),
		Formation:   []string{"GK", "ST"},
		Starters:    []int64{1, 2, 3, 4},
		Bench:       []int64{5, 1},
		Unavailable: []int64{4, 6, 5},
	})

	got := roles(res.Slots)
	require.Equal(t, map[int64]match.Role{
		1: match.RoleField,
		2: match.RoleField,
		4: match.RoleUnavailable,
		5: match.RoleBench,
		6: match.RoleUnavailable,
	}, got)
	require.Equal(t, []int64{3, 4}, res.Overflow)
	require.Len(t, res.Slots, 5)
}

func TestAssign_OverflowStarterGetsNoSlot(t *testing.T) {
	res := Assign(Input{
		Roster:    roster(1, 2, 3),
		Formation: []string{"GK", "ST"},
		Starters:  []int64{1, 2, 3},
	})

	require.Equal(t, map[string]int64{"GK": 1, "ST": 2}, fieldMap(res.Slots))
	require.Len(t, res.Slots, 2)
	require.Equal(t, []int64{1, 2}, res.ActualStarters)
	require.Equal(t, []int64{3}, res.Overflow)
}

func TestAssign_OverflowStarterAlsoOnBench(t *testing.T) {
	res := Assign(Input{
		Roster:    roster(1, 2, 3),
		Formation: []string{"GK", "ST"},
		Starters:  []int64{1, 2, 3},
		Bench:     []int64{3},
	})

	require.Equal(t, map[int64]match.Role{
		1: match.RoleField,
		2: match.RoleField,
		3: match.RoleBench,
	}, roles(res.Slots))
	require.Equal(t, []int64{3}, res.Overflow)
}

func TestAssign_BenchAndUnavailableMinusField(t *testing.T) {
	res := Assign(Input{
		Roster:      roster(1, 2, 3),
		Formation:   []string{"GK"},
		Starters:    []int64{1},
		Bench:       []int64{1, 2, 2},
		Unavailable: []int64{1, 2, 3},
	})

	require.Equal(t, []match.PlayerSlot{
		{PlayerID: 1, Role: match.RoleField, Position: "GK", Jersey: intPtr(2)},
		{PlayerID: 2, Role: match.RoleBench, Jersey: intPtr(3)},
		{PlayerID: 3, Role: match.RoleUnavailable, Jersey: intPtr(4)},
	}, res.Slots)
}

func TestAssign_UnknownPlayersDropped(t *testing.T) {
	res := Assign(Input{
		Roster:      roster(1),
		Formation:   []string{"GK", "ST"},
		Starters:    []int64{42, 1},
		Bench:       []int64{42, 43},
		Unavailable: []int64{44},
	})

	require.Equal(t, map[string]int64{"GK": 1}, fieldMap(res.Slots))
	require.Len(t, res.Slots, 1)
	require.Equal(t, []int64{42, 43, 44}, res.UnknownPlayers)
	require.False(t, res.Clean())
}

func TestAssign_PreservesMinutesAndGoalkeeperStats(t *testing.T) {
	cleanSheet := true
	conceded := 0
	res := Assign(Input{
		Roster:    roster(1, 2, 3),
		Formation: []string{"GK", "ST"},
		Starters:  []int64{1, 2},
		Bench:     []int64{3},
		Previous: []match.PlayerSlot{
			{PlayerID: 1, Role: match.RoleField, Position: "GK", Minutes: 80, CleanSheet: &cleanSheet, GoalsConceded: &conceded},
			{PlayerID: 3, Role: match.RoleField, Position: "ST", Minutes: 35},
		},
	})

	bySlot := map[int64]match.PlayerSlot{}
	for _, s := range res.Slots {
		bySlot[s.PlayerID] = s
	}
	require.Equal(t, 80, bySlot[1].Minutes)
	require.NotNil(t, bySlot[1].CleanSheet)
	require.True(t, *bySlot[1].CleanSheet)
	require.Equal(t, 0, bySlot[2].Minutes)
	require.Equal(t, 35, bySlot[3].Minutes)
	require.Nil(t, bySlot[3].CleanSheet)
}

func TestAssign_JerseySnapshotIsCopied(t *testing.T) {
	jersey := 7
	in := Input{
		Roster:    []RosterEntry{{PlayerID: 1, Jersey: &jersey}, {PlayerID: 2}},
		Formation: []string{"GK", "ST"},
		Starters:  []int64{1, 2},
	}
	res := Assign(in)
	jersey = 99

	require.Equal(t, 7, *res.Slots[0].Jersey)
	require.Nil(t, res.Slots[1].Jersey)
}

func TestAssign_Invariants(t *testing.T) {
	formation := []string{"GK", "LB", "LCB", "RCB", "RB", "LCM", "CM", "RCM", "LW", "ST", "RW"}
	rng := rand.New(rand.NewPCG(7, 11))

	for iter := 0; iter < 300; iter++ {
		size := 5 + rng.IntN(20)
		ids := make([]int64, size)
		for i := range ids {
			ids[i] = int64(i + 1)
		}
		pick := func(n int) []int64 {
			out := make([]int64, 0, n)
			for i := 0; i < n; i++ {
				out = append(out, int64(rng.IntN(size+3)+1))
			}
			return out
		}
		var assignments []Assignment
		for i := 0; i < rng.IntN(8); i++ {
			assignments = append(assignments, Assignment{
				Position: formation[rng.IntN(len(formation))],
				PlayerID: fmt.Sprint(rng.IntN(size + 2)),
			})
		}
		in := Input{
			Roster:      roster(ids...),
			Formation:   formation,
			Starters:    pick(rng.IntN(15)),
			Bench:       pick(rng.IntN(8)),
			Unavailable: pick(rng.IntN(6)),
			Assignments: assignments,
		}

		res := Assign(in)

		seenPlayers := map[int64]bool{}
		seenPositions := map[string]bool{}
		for _, s := range res.Slots {
			require.False(t, seenPlayers[s.PlayerID], "player %d in two slots", s.PlayerID)
			seenPlayers[s.PlayerID] = true
			if s.Role == match.RoleField {
				require.NotEmpty(t, s.Position)
				require.False(t, seenPositions[s.Position], "position %s used twice", s.Position)
				require.Contains(t, formation, s.Position)
				seenPositions[s.Position] = true
			} else {
				require.Empty(t, s.Position)
			}
		}
		require.LessOrEqual(t, len(res.Slots), size)

		validStarters := map[int64]bool{}
		for _, id := range in.Starters {
			if id <= int64(size) {
				validStarters[id] = true
			}
		}
		if len(validStarters) <= len(formation) {
			require.Len(t, res.ActualStarters, len(validStarters))
		} else {
			require.Len(t, res.ActualStarters, len(formation))
		}
	}
}

func intPtr(v int) *int {
	return &v
}
