package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/match"
)

type matchTableModel struct {
	ID            int64         `db:"id,readonly"`
	TeamID        int64         `db:"team_id"`
	SeasonID      sql.NullInt64 `db:"season_id"`
	Opponent      string        `db:"opponent"`
	Home          bool          `db:"home"`
	Venue         string        `db:"venue"`
	Kickoff       time.Time     `db:"kickoff"`
	Lineup        string        `db:"lineup"`
	Events        string        `db:"events"`
	OpponentNotes string        `db:"opponent_notes"`
	Finished      bool          `db:"finished"`
	GoalsFor      int           `db:"goals_for"`
	GoalsAgainst  int           `db:"goals_against"`
	CreatedAt     time.Time     `db:"created_at,readonly"`
	UpdatedAt     time.Time     `db:"updated_at,readonly"`
	DeletedAt     *time.Time    `db:"deleted_at,readonly"`
}

// slotDocument is the JSONB shape of one lineup entry.
type slotDocument struct {
	PlayerID      int64  `json:"player_id"`
	Role          string `json:"role"`
	Position      string `json:"position,omitempty"`
	Jersey        *int   `json:"jersey,omitempty"`
	Minutes       int    `json:"minutes"`
	CleanSheet    *bool  `json:"clean_sheet,omitempty"`
	GoalsConceded *int   `json:"goals_conceded,omitempty"`
}

// eventDocument is the JSONB shape of one timeline entry. Events stored before
// per-period minutes existed have no metadata.
type eventDocument struct {
	ID       int64          `json:"id"`
	Minute   int            `json:"minute"`
	Type     string         `json:"type"`
	PlayerID *int64         `json:"player_id,omitempty"`
	Note     string         `json:"note,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func matchRow(item match.Match) (matchTableModel, error) {
	slots := make([]slotDocument, 0, len(item.Lineup))
	for _, s := range item.Lineup {
		slots = append(slots, slotDocument{
			PlayerID:      s.PlayerID,
			Role:          string(s.Role),
			Position:      s.Position,
			Jersey:        s.Jersey,
			Minutes:       s.Minutes,
			CleanSheet:    s.CleanSheet,
			GoalsConceded: s.GoalsConceded,
		})
	}
	lineup, err := jsonb.MarshalToString(slots)
	if err != nil {
		return matchTableModel{}, fmt.Errorf("encode lineup for match %d: %w", item.ID, err)
	}

	events := make([]eventDocument, 0, len(item.Events))
	for _, ev := range item.Events {
		events = append(events, eventDocument{
			ID:       ev.ID,
			Minute:   ev.Minute,
			Type:     string(ev.Type),
			PlayerID: ev.PlayerID,
			Note:     ev.Note,
			Metadata: ev.Metadata,
		})
	}
	timeline, err := jsonb.MarshalToString(events)
	if err != nil {
		return matchTableModel{}, fmt.Errorf("encode events for match %d: %w", item.ID, err)
	}

	return matchTableModel{
		ID:            item.ID,
		TeamID:        item.TeamID,
		SeasonID:      nullInt64(item.SeasonID),
		Opponent:      item.Opponent,
		Home:          item.Home,
		Venue:         item.Venue,
		Kickoff:       item.Kickoff,
		Lineup:        lineup,
		Events:        timeline,
		OpponentNotes: item.OpponentNotes,
		Finished:      item.Finished,
		GoalsFor:      item.GoalsFor,
		GoalsAgainst:  item.GoalsAgainst,
	}, nil
}

func matchFromRow(row matchTableModel) (match.Match, error) {
	var slots []slotDocument
	if row.Lineup != "" {
		if err := jsonb.UnmarshalFromString(row.Lineup, &slots); err != nil {
			return match.Match{}, fmt.Errorf("decode lineup for match %d: %w", row.ID, err)
		}
	}
	var events []eventDocument
	if row.Events != "" {
		if err := jsonb.UnmarshalFromString(row.Events, &events); err != nil {
			return match.Match{}, fmt.Errorf("decode events for match %d: %w", row.ID, err)
		}
	}

	out := match.Match{
		ID:            row.ID,
		TeamID:        row.TeamID,
		SeasonID:      int64Ptr(row.SeasonID),
		Opponent:      row.Opponent,
		Home:          row.Home,
		Venue:         row.Venue,
		Kickoff:       row.Kickoff,
		Lineup:        make([]match.PlayerSlot, 0, len(slots)),
		Events:        make([]match.Event, 0, len(events)),
		OpponentNotes: row.OpponentNotes,
		Finished:      row.Finished,
		GoalsFor:      row.GoalsFor,
		GoalsAgainst:  row.GoalsAgainst,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	for _, s := range slots {
		out.Lineup = append(out.Lineup, match.PlayerSlot{
			PlayerID:      s.PlayerID,
			Role:          match.Role(s.Role),
			Position:      s.Position,
			Jersey:        s.Jersey,
			Minutes:       s.Minutes,
			CleanSheet:    s.CleanSheet,
			GoalsConceded: s.GoalsConceded,
		})
	}
	for _, ev := range events {
		out.Events = append(out.Events, match.Event{
			ID:       ev.ID,
			Minute:   ev.Minute,
			Type:     match.EventType(ev.Type),
			PlayerID: ev.PlayerID,
			Note:     ev.Note,
			Metadata: ev.Metadata,
		})
	}
	return out, nil
}
