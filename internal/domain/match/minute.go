package match

import (
	"encoding/json"
	"math"
	"slices"
	"strings"
)

const (
	HalfDuration      = 40
	MaxRelativeMinute = 130
)

// Period tags the part of the match an event happened in.
type Period string

const (
	PeriodFirst  Period = "first"
	PeriodSecond Period = "second"
	PeriodExtra  Period = "extra"
)

// ParsePeriod accepts the canonical period names case-insensitively.
func ParsePeriod(raw string) (Period, bool) {
	switch Period(strings.ToLower(strings.TrimSpace(raw))) {
	case PeriodFirst:
		return PeriodFirst, true
	case PeriodSecond:
		return PeriodSecond, true
	case PeriodExtra:
		return PeriodExtra, true
	default:
		return "", false
	}
}

// Offset is the absolute minute at which the period starts.
func (p Period) Offset() int {
	switch p {
	case PeriodSecond:
		return HalfDuration
	case PeriodExtra:
		return 2 * HalfDuration
	default:
		return 0
	}
}

// ToAbsolute converts a per-period minute into an absolute match minute.
func ToAbsolute(p Period, relative int) int {
	return p.Offset() + clampRelative(relative)
}

// ToRelative converts an absolute minute into a minute within p, floored at zero.
func ToRelative(p Period, absolute int) int {
	return max(absolute-p.Offset(), 0)
}

// PeriodForMinute infers the period from an absolute minute alone.
func PeriodForMinute(absolute int) Period {
	switch {
	case absolute <= HalfDuration:
		return PeriodFirst
	case absolute <= 2*HalfDuration:
		return PeriodSecond
	default:
		return PeriodExtra
	}
}

func clampRelative(v int) int {
	return min(max(v, 0), MaxRelativeMinute)
}

// StoredEvent is the timing information of a persisted event. Events written with
// metadata are WithMetadata, older rows without it are LegacyAbsoluteOnly.
type StoredEvent interface {
	storedEvent()
}

type WithMetadata struct {
	Period         Period
	RelativeMinute int
}

type LegacyAbsoluteOnly struct {
	Minute int
}

func (WithMetadata) storedEvent()       {}
func (LegacyAbsoluteOnly) storedEvent() {}

// Timing is the resolved position of an event on the match timeline.
type Timing struct {
	Period   Period
	Relative int
	Absolute int
}

const (
	metadataPeriodKey   = "period"
	metadataRelativeKey = "relativeMinute"
)

// DecodeStoredEvent picks the metadata variant only when both metadata fields are
// present and well typed, otherwise the event is treated as legacy.
func DecodeStoredEvent(minute int, metadata map[string]any) StoredEvent {
	rawPeriod, okPeriod := metadata[metadataPeriodKey].(string)
	period, validPeriod := ParsePeriod(rawPeriod)
	relative, okRelative := wholeNumber(metadata[metadataRelativeKey])
	if okPeriod && validPeriod && okRelative {
		return WithMetadata{Period: period, RelativeMinute: relative}
	}
	return LegacyAbsoluteOnly{Minute: minute}
}

// Resolve is the single decode path for stored event timing.
func Resolve(ev StoredEvent) Timing {
	switch v := ev.(type) {
	case WithMetadata:
		relative := clampRelative(v.RelativeMinute)
		return Timing{Period: v.Period, Relative: relative, Absolute: ToAbsolute(v.Period, relative)}
	case LegacyAbsoluteOnly:
		period := PeriodForMinute(v.Minute)
		return Timing{Period: period, Relative: ToRelative(period, v.Minute), Absolute: max(v.Minute, 0)}
	default:
		return Timing{Period: PeriodFirst}
	}
}

// Metadata renders the map persisted alongside new events.
func (w WithMetadata) Metadata() map[string]any {
	return map[string]any{
		metadataPeriodKey:   string(w.Period),
		metadataRelativeKey: clampRelative(w.RelativeMinute),
	}
}

func wholeNumber(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// SortTimeline orders events by resolved absolute minute, keeping insertion order on ties.
func SortTimeline(events []Event) []Event {
	out := slices.Clone(events)
	slices.SortStableFunc(out, func(a, b Event) int {
		return a.Timing().Absolute - b.Timing().Absolute
	})
	return out
}
