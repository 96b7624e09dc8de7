package match

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinute_RoundTrip(t *testing.T) {
	for _, p := range []Period{PeriodFirst, PeriodSecond, PeriodExtra} {
		for r := 0; r <= HalfDuration; r++ {
			require.Equal(t, r, ToRelative(p, ToAbsolute(p, r)), "period %s minute %d", p, r)
		}
	}
}

func TestMinute_Conversions(t *testing.T) {
	require.Equal(t, 12, ToAbsolute(PeriodFirst, 12))
	require.Equal(t, 52, ToAbsolute(PeriodSecond, 12))
	require.Equal(t, 92, ToAbsolute(PeriodExtra, 12))
	require.Equal(t, 0, ToAbsolute(PeriodFirst, -5))
	require.Equal(t, 80+MaxRelativeMinute, ToAbsolute(PeriodExtra, 500))

	require.Equal(t, 0, ToRelative(PeriodSecond, 10))
	require.Equal(t, 5, ToRelative(PeriodExtra, 85))
}

func TestPeriodForMinute(t *testing.T) {
	tests := []struct {
		minute int
		want   Period
	}{
		{0, PeriodFirst},
		{40, PeriodFirst},
		{41, PeriodSecond},
		{80, PeriodSecond},
		{81, PeriodExtra},
		{125, PeriodExtra},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, PeriodForMinute(tc.minute), "minute %d", tc.minute)
	}
}

func TestDecodeStoredEvent(t *testing.T) {
	tests := []struct {
		name     string
		minute   int
		metadata map[string]any
		want     StoredEvent
		timing   Timing
	}{
		{
			name:     "metadata wins over minute",
			minute:   30,
			metadata: map[string]any{"period": "second", "relativeMinute": 5},
			want:     WithMetadata{Period: PeriodSecond, RelativeMinute: 5},
			timing:   Timing{Period: PeriodSecond, Relative: 5, Absolute: 45},
		},
		{
			name:     "json decoded float",
			minute:   0,
			metadata: map[string]any{"period": "extra", "relativeMinute": float64(3)},
			want:     WithMetadata{Period: PeriodExtra, RelativeMinute: 3},
			timing:   Timing{Period: PeriodExtra, Relative: 3, Absolute: 83},
		},
		{
			name:     "json number",
			minute:   0,
			metadata: map[string]any{"period": "FIRST", "relativeMinute": json.Number("17")},
			want:     WithMetadata{Period: PeriodFirst, RelativeMinute: 17},
			timing:   Timing{Period: PeriodFirst, Relative: 17, Absolute: 17},
		},
		{
			name:     "legacy without metadata",
			minute:   55,
			metadata: nil,
			want:     LegacyAbsoluteOnly{Minute: 55},
			timing:   Timing{Period: PeriodSecond, Relative: 15, Absolute: 55},
		},
		{
			name:     "missing relative minute falls back",
			minute:   38,
			metadata: map[string]any{"period": "second"},
			want:     LegacyAbsoluteOnly{Minute: 38},
			timing:   Timing{Period: PeriodFirst, Relative: 38, Absolute: 38},
		},
		{
			name:     "badly typed relative minute falls back",
			minute:   90,
			metadata: map[string]any{"period": "first", "relativeMinute": "10"},
			want:     LegacyAbsoluteOnly{Minute: 90},
			timing:   Timing{Period: PeriodExtra, Relative: 10, Absolute: 90},
		},
		{
			name:     "fractional relative minute falls back",
			minute:   12,
			metadata: map[string]any{"period": "first", "relativeMinute": 1.5},
			want:     LegacyAbsoluteOnly{Minute: 12},
			timing:   Timing{Period: PeriodFirst, Relative: 12, Absolute: 12},
		},
		{
			name:     "unknown period falls back",
			minute:   70,
			metadata: map[string]any{"period": "third", "relativeMinute": 4},
			want:     LegacyAbsoluteOnly{Minute: 70},
			timing:   Timing{Period: PeriodSecond, Relative: 30, Absolute: 70},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeStoredEvent(tc.minute, tc.metadata)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.timing, Resolve(got))
		})
	}
}

func TestNewEvent_WritesMetadata(t *testing.T) {
	playerID := int64(9)
	ev := NewEvent(1, EventGoal, &playerID, PeriodSecond, 12, "")

	require.Equal(t, 52, ev.Minute)
	require.Equal(t, WithMetadata{Period: PeriodSecond, RelativeMinute: 12}, ev.Stored())
	require.Equal(t, "second", ev.Metadata["period"])
}

func TestSortTimeline(t *testing.T) {
	events := []Event{
		{ID: 1, Minute: 70},
		NewEvent(2, EventYellow, nil, PeriodFirst, 20, ""),
		{ID: 3, Minute: 20},
		NewEvent(4, EventGoal, nil, PeriodSecond, 1, ""),
	}

	sorted := SortTimeline(events)

	ids := make([]int64, 0, len(sorted))
	for _, ev := range sorted {
		ids = append(ids, ev.ID)
	}
	require.Equal(t, []int64{2, 3, 4, 1}, ids)
	require.Equal(t, int64(1), events[0].ID, "input must not be reordered")
}

func TestMatchHelpers(t *testing.T) {
	p1, p2, rival := int64(1), int64(2), int64(99)
	m := Match{
		Lineup: []PlayerSlot{
			{PlayerID: 1, Role: RoleField, Position: "GK"},
			{PlayerID: 2, Role: RoleField, Position: "ST"},
			{PlayerID: 3, Role: RoleBench},
		},
		Events: []Event{
			{ID: 4, Type: EventGoal, PlayerID: &p2},
			{ID: 7, Type: EventGoal, PlayerID: &rival},
			{ID: 2, Type: EventYellow, PlayerID: &p1},
			{ID: 3, Type: EventGoal},
		},
	}

	require.Equal(t, []string{"GK", "ST"}, m.FieldPositions())
	require.Equal(t, int64(8), m.NextEventID())
	require.Equal(t, 1, m.CountGoals(map[int64]struct{}{1: {}, 2: {}, 3: {}}))
	require.True(t, m.Lineup[0].IsGoalkeeper())
	require.Len(t, m.SlotsByPlayer(), 3)
}
