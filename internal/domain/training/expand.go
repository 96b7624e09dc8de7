package training

import (
	"slices"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Rule describes a weekly recurring training slot as submitted by a coach.
type Rule struct {
	StartDate  string
	EndDate    string
	DaysOfWeek []int
	StartTime  string
	EndTime    string
}

// Occurrence is one concrete training slot. End is nil when no valid end time was given.
type Occurrence struct {
	Start time.Time
	End   *time.Time
}

// Weekdays returns the deduplicated, in-range weekday set of the rule in submission order.
// 0 is Sunday and 6 is Saturday.
func (r Rule) Weekdays() []time.Weekday {
	out := make([]time.Weekday, 0, len(r.DaysOfWeek))
	for _, d := range r.DaysOfWeek {
		if d < 0 || d > 6 {
			continue
		}
		wd := time.Weekday(d)
		if slices.Contains(out, wd) {
			continue
		}
		out = append(out, wd)
	}
	return out
}

// Span returns the first and last calendar day of the rule as UTC midnights. Days are
// civil dates: stepping them with AddDate never meets a DST gap.
func (r Rule) Span() (time.Time, time.Time, bool) {
	start, err := time.Parse(dateLayout, strings.TrimSpace(r.StartDate))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end := start
	if raw := strings.TrimSpace(r.EndDate); raw != "" {
		end, err = time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
	}
	return start, end, true
}

// Expand walks every calendar day of the rule and emits one occurrence per day whose
// weekday is selected. An empty result means the rule produced nothing usable: no
// weekdays, an unparsable date or start time, or a start date after the end date.
func Expand(rule Rule, loc *time.Location) []Occurrence {
	if loc == nil {
		loc = time.Local
	}

	weekdays := rule.Weekdays()
	if len(weekdays) == 0 {
		return nil
	}
	start, end, ok := rule.Span()
	if !ok || start.After(end) {
		return nil
	}
	startClock, ok := parseClock(rule.StartTime)
	if !ok {
		return nil
	}
	endClock, hasEnd := parseClock(rule.EndTime)

	var out []Occurrence
	// day is a civil date; only atClock places it in loc.
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if !slices.Contains(weekdays, day.Weekday()) {
			continue
		}

		occ := Occurrence{Start: atClock(day, startClock, loc)}
		if hasEnd {
			finish := atClock(day, endClock, loc)
			if finish.After(occ.Start) {
				occ.End = &finish
			}
		}
		out = append(out, occ)
	}

	return out
}

type clock struct {
	hour, minute int
}

func parseClock(raw string) (clock, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return clock{}, false
	}
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		return clock{}, false
	}
	return clock{hour: t.Hour(), minute: t.Minute()}, true
}

func atClock(day time.Time, c clock, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.hour, c.minute, 0, 0, loc)
}
