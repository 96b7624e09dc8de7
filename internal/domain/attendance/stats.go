package attendance

import (
	"math"
	"sort"
)

// Percentage is the share of attended records rounded to the nearest integer.
// No records means 0.
func Percentage(records []Record) int {
	if len(records) == 0 {
		return 0
	}
	attended := 0
	for _, r := range records {
		if r.Attended {
			attended++
		}
	}
	return percent(attended, len(records))
}

// PlayerSummary aggregates one player's marks across sheets.
type PlayerSummary struct {
	PlayerID   int64
	Attended   int
	Total      int
	Percentage int
}

// ByPlayer summarises attendance per player, ordered by player id.
func ByPlayer(sheets []Sheet) []PlayerSummary {
	index := make(map[int64]*PlayerSummary)
	for _, sheet := range sheets {
		for _, r := range sheet.Records {
			s, ok := index[r.PlayerID]
			if !ok {
				s = &PlayerSummary{PlayerID: r.PlayerID}
				index[r.PlayerID] = s
			}
			s.Total++
			if r.Attended {
				s.Attended++
			}
		}
	}

	out := make([]PlayerSummary, 0, len(index))
	for _, s := range index {
		s.Percentage = percent(s.Attended, s.Total)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}

// Flatten joins the records of every sheet.
func Flatten(sheets []Sheet) []Record {
	var out []Record
	for _, sheet := range sheets {
		out = append(out, sheet.Records...)
	}
	return out
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
