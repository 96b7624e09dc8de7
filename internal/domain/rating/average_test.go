package rating

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAverage(t *testing.T) {
	tests := []struct {
		name    string
		ratings []Rating
		want    string
	}{
		{name: "no records", ratings: nil, want: "0"},
		{name: "only unrated records", ratings: []Rating{{}, {}}, want: "0"},
		{name: "single record", ratings: []Rating{{Technical: 8, Tactical: 6, Physical: 7, Mental: 9}}, want: "7.5"},
		{
			name: "unrated records are excluded",
			ratings: []Rating{
				{Technical: 8, Tactical: 8, Physical: 8, Mental: 8},
				{},
				{Technical: 5, Tactical: 5, Physical: 5, Mental: 5},
			},
			want: "6.5",
		},
		{name: "partially rated counts zeros", ratings: []Rating{{Technical: 10}}, want: "2.5"},
		{name: "one decimal", ratings: []Rating{{Technical: 7, Tactical: 7, Physical: 7, Mental: 6}, {Technical: 7, Tactical: 7, Physical: 7, Mental: 7}}, want: "6.9"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Average(tc.ratings))
		})
	}
}

func TestRecordAverage(t *testing.T) {
	avg, ok := RecordAverage(Rating{Technical: 4, Mental: 6})
	require.True(t, ok)
	require.InDelta(t, 2.5, avg, 1e-9)

	_, ok = RecordAverage(Rating{})
	require.False(t, ok)
}
