package attendance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		want    int
	}{
		{name: "empty", records: nil, want: 0},
		{name: "half", records: []Record{{Attended: true}, {Attended: true}, {Attended: false}, {Attended: false}}, want: 50},
		{name: "rounds up", records: []Record{{Attended: true}, {Attended: true}, {Attended: false}}, want: 67},
		{name: "rounds down", records: []Record{{Attended: true}, {Attended: false}, {Attended: false}}, want: 33},
		{name: "none", records: []Record{{Attended: false}}, want: 0},
		{name: "all", records: []Record{{Attended: true}}, want: 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Percentage(tc.records))
		})
	}
}

func TestPercentage_Bounds(t *testing.T) {
	for total := 1; total <= 40; total++ {
		for attended := 0; attended <= total; attended++ {
			records := make([]Record, total)
			for i := 0; i < attended; i++ {
				records[i].Attended = true
			}
			got := Percentage(records)
			require.GreaterOrEqual(t, got, 0)
			require.LessOrEqual(t, got, 100)
		}
	}
}

func TestByPlayer(t *testing.T) {
	sheets := []Sheet{
		{Records: []Record{{PlayerID: 2, Attended: true}, {PlayerID: 1, Attended: false}}},
		{Records: []Record{{PlayerID: 2, Attended: false}, {PlayerID: 1, Attended: true}}},
		{Records: []Record{{PlayerID: 2, Attended: true}}},
	}

	got := ByPlayer(sheets)

	require.Equal(t, []PlayerSummary{
		{PlayerID: 1, Attended: 1, Total: 2, Percentage: 50},
		{PlayerID: 2, Attended: 2, Total: 3, Percentage: 67},
	}, got)
	require.Len(t, Flatten(sheets), 5)
}
