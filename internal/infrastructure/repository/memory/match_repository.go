package memory

import (
	"context"
	"maps"
	"slices"

	"github.com/riskibarqy/cantera/internal/domain/match"
)

type MatchRepository struct {
	rows *table[match.Match]
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	rows := newTable(
		func(m match.Match) int64 { return m.ID },
		func(m *match.Match, id int64) { m.ID = id },
		cloneMatch,
	)
	rows.seed(matches)
	return &MatchRepository{rows: rows}
}

// List returns matches by kickoff.
func (r *MatchRepository) List(_ context.Context, filter match.ListFilter) ([]match.Match, error) {
	items := r.rows.list(func(m match.Match) bool {
		if filter.TeamID != nil && m.TeamID != *filter.TeamID {
			return false
		}
		if filter.SeasonID != nil && (m.SeasonID == nil || *m.SeasonID != *filter.SeasonID) {
			return false
		}
		if filter.From != nil && m.Kickoff.Before(*filter.From) {
			return false
		}
		return true
	})
	slices.SortStableFunc(items, func(a, b match.Match) int {
		return a.Kickoff.Compare(b.Kickoff)
	})
	return items, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	item, ok := r.rows.get(id)
	return item, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	return r.rows.insert(item), nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) (match.Match, error) {
	return r.rows.update(item)
}

func (r *MatchRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.rows.delete(id), nil
}

func cloneMatch(m match.Match) match.Match {
	m.SeasonID = cloneInt64Ptr(m.SeasonID)
	if m.Lineup != nil {
		lineup := make([]match.PlayerSlot, len(m.Lineup))
		for i, slot := range m.Lineup {
			slot.Jersey = cloneIntPtr(slot.Jersey)
			slot.GoalsConceded = cloneIntPtr(slot.GoalsConceded)
			if slot.CleanSheet != nil {
				v := *slot.CleanSheet
				slot.CleanSheet = &v
			}
			lineup[i] = slot
		}
		m.Lineup = lineup
	}
	if m.Events != nil {
		events := make([]match.Event, len(m.Events))
		for i, ev := range m.Events {
			ev.PlayerID = cloneInt64Ptr(ev.PlayerID)
			ev.Metadata = maps.Clone(ev.Metadata)
			events[i] = ev
		}
		m.Events = events
	}
	return m
}
