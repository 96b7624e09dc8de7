package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/match"
	"github.com/riskibarqy/cantera/internal/domain/player"
	"github.com/riskibarqy/cantera/internal/domain/team"
)

// EventInput is a new timeline entry. Either Period with RelativeMinute or a bare
// absolute Minute must be given.
type EventInput struct {
	Type           match.EventType
	PlayerID       *int64
	Period         string
	RelativeMinute *int
	Minute         *int
	Note           string
}

type MatchService struct {
	matchRepo  match.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	now        func() time.Time
}

func NewMatchService(matchRepo match.Repository, teamRepo team.Repository, playerRepo player.Repository) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		now:        time.Now,
	}
}

func (s *MatchService) List(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	items, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	for i := range items {
		items[i].Events = match.SortTimeline(items[i].Events)
	}
	return items, nil
}

func (s *MatchService) Get(ctx context.Context, id int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get", matchAttr(id))
	defer span.End()

	item, err := s.load(ctx, id)
	if err != nil {
		return match.Match{}, err
	}
	item.Events = match.SortTimeline(item.Events)
	return item, nil
}

// Create stores a match with an empty draft lineup.
func (s *MatchService) Create(ctx context.Context, item match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	if err := s.validate(ctx, &item); err != nil {
		return match.Match{}, err
	}
	now := s.now()
	item.ID = 0
	item.Lineup = []match.PlayerSlot{}
	item.Events = []match.Event{}
	item.Finished = false
	item.GoalsFor = 0
	item.CreatedAt = now
	item.UpdatedAt = now

	created, err := s.matchRepo.Create(ctx, item)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return created, nil
}

// Update changes the descriptive fields of a match. Lineup, events and the club score
// are owned by their own operations.
func (s *MatchService) Update(ctx context.Context, item match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	current, err := s.loadEditable(ctx, item.ID)
	if err != nil {
		return match.Match{}, err
	}
	if err := s.validate(ctx, &item); err != nil {
		return match.Match{}, err
	}

	current.TeamID = item.TeamID
	current.SeasonID = item.SeasonID
	current.Opponent = item.Opponent
	current.Home = item.Home
	current.Venue = item.Venue
	current.Kickoff = item.Kickoff
	current.OpponentNotes = item.OpponentNotes
	current.GoalsAgainst = item.GoalsAgainst
	current.UpdatedAt = s.now()

	return s.save(ctx, current)
}

func (s *MatchService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	return deleteByID(ctx, id, "partido", s.matchRepo.Delete)
}

// AddEvent appends an event to the timeline and recomputes the club score.
func (s *MatchService) AddEvent(ctx context.Context, matchID int64, in EventInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.AddEvent", matchAttr(matchID))
	defer span.End()

	current, err := s.loadEditable(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if !in.Type.Valid() {
		return match.Match{}, fmt.Errorf("%w: tipo de evento desconocido %q", ErrInvalidInput, in.Type)
	}

	id := current.NextEventID()
	note := strings.TrimSpace(in.Note)
	var event match.Event
	switch {
	case strings.TrimSpace(in.Period) != "":
		period, ok := match.ParsePeriod(in.Period)
		if !ok {
			return match.Match{}, fmt.Errorf("%w: periodo desconocido %q", ErrInvalidInput, in.Period)
		}
		if in.RelativeMinute == nil {
			return match.Match{}, fmt.Errorf("%w: el minuto del periodo es obligatorio", ErrInvalidInput)
		}
		if *in.RelativeMinute < 0 || *in.RelativeMinute > match.MaxRelativeMinute {
			return match.Match{}, fmt.Errorf("%w: el minuto debe estar entre 0 y %d", ErrInvalidInput, match.MaxRelativeMinute)
		}
		event = match.NewEvent(id, in.Type, in.PlayerID, period, *in.RelativeMinute, note)
	case in.Minute != nil:
		if *in.Minute < 0 || *in.Minute > 2*match.HalfDuration+match.MaxRelativeMinute {
			return match.Match{}, fmt.Errorf("%w: minuto fuera de rango", ErrInvalidInput)
		}
		period := match.PeriodForMinute(*in.Minute)
		event = match.NewEvent(id, in.Type, in.PlayerID, period, match.ToRelative(period, *in.Minute), note)
	default:
		return match.Match{}, fmt.Errorf("%w: indica periodo y minuto del periodo o el minuto absoluto", ErrInvalidInput)
	}

	current.Events = append(current.Events, event)
	if err := s.recomputeScore(ctx, &current); err != nil {
		return match.Match{}, err
	}
	current.UpdatedAt = s.now()
	return s.save(ctx, current)
}

func (s *MatchService) DeleteEvent(ctx context.Context, matchID, eventID int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteEvent")
	defer span.End()

	current, err := s.loadEditable(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	idx := slices.IndexFunc(current.Events, func(ev match.Event) bool { return ev.ID == eventID })
	if idx < 0 {
		return match.Match{}, fmt.Errorf("%w: evento %d", ErrNotFound, eventID)
	}
	current.Events = slices.Delete(current.Events, idx, idx+1)
	if err := s.recomputeScore(ctx, &current); err != nil {
		return match.Match{}, err
	}
	current.UpdatedAt = s.now()
	return s.save(ctx, current)
}

// Finish closes the match. Goalkeepers on the field get their clean sheet and goals
// conceded from the final score; no later edits are accepted.
func (s *MatchService) Finish(ctx context.Context, matchID int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Finish", matchAttr(matchID))
	defer span.End()

	current, err := s.loadEditable(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if err := s.recomputeScore(ctx, &current); err != nil {
		return match.Match{}, err
	}
	for i := range current.Lineup {
		if !current.Lineup[i].IsGoalkeeper() {
			continue
		}
		cleanSheet := current.GoalsAgainst == 0
		conceded := current.GoalsAgainst
		current.Lineup[i].CleanSheet = &cleanSheet
		current.Lineup[i].GoalsConceded = &conceded
	}
	current.Finished = true
	current.UpdatedAt = s.now()
	return s.save(ctx, current)
}

func (s *MatchService) recomputeScore(ctx context.Context, item *match.Match) error {
	roster, err := s.playerRepo.List(ctx, player.ListFilter{TeamID: &item.TeamID})
	if err != nil {
		return fmt.Errorf("list players: %w", err)
	}
	ids := make(map[int64]struct{}, len(roster))
	for _, p := range roster {
		ids[p.ID] = struct{}{}
	}
	item.GoalsFor = item.CountGoals(ids)
	return nil
}

func (s *MatchService) validate(ctx context.Context, item *match.Match) error {
	item.Opponent = strings.TrimSpace(item.Opponent)
	item.Venue = strings.TrimSpace(item.Venue)
	if item.TeamID <= 0 {
		return fmt.Errorf("%w: equipoId es obligatorio", ErrInvalidInput)
	}
	if item.Opponent == "" {
		return fmt.Errorf("%w: el rival es obligatorio", ErrInvalidInput)
	}
	if item.Kickoff.IsZero() {
		return fmt.Errorf("%w: la fecha del partido es obligatoria", ErrInvalidInput)
	}
	if item.GoalsAgainst < 0 {
		return fmt.Errorf("%w: los goles en contra no pueden ser negativos", ErrInvalidInput)
	}
	_, exists, err := s.teamRepo.GetByID(ctx, item.TeamID)
	if err != nil {
		return fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: el equipo %d no existe", ErrInvalidInput, item.TeamID)
	}
	return nil
}

func (s *MatchService) load(ctx context.Context, id int64) (match.Match, error) {
	if id <= 0 {
		return match.Match{}, fmt.Errorf("%w: id de partido inválido", ErrInvalidInput)
	}
	item, exists, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: partido %d", ErrNotFound, id)
	}
	return item, nil
}

// loadEditable loads a match that still accepts changes.
func (s *MatchService) loadEditable(ctx context.Context, id int64) (match.Match, error) {
	item, err := s.load(ctx, id)
	if err != nil {
		return match.Match{}, err
	}
	if item.Finished {
		return match.Match{}, fmt.Errorf("%w: el partido %d ya ha finalizado", ErrConflict, id)
	}
	return item, nil
}

func (s *MatchService) save(ctx context.Context, item match.Match) (match.Match, error) {
	updated, err := s.matchRepo.Update(ctx, item)
	if err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	updated.Events = match.SortTimeline(updated.Events)
	return updated, nil
}
