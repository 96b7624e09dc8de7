package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/formation"
	"github.com/riskibarqy/cantera/internal/domain/lineup"
	"github.com/riskibarqy/cantera/internal/domain/match"
	"github.com/riskibarqy/cantera/internal/domain/player"
)

// LineupInput is a whole-lineup replacement for one match.
type LineupInput struct {
	MatchID     int64
	Formation   string
	Starters    []int64
	Bench       []int64
	Unavailable []int64
	Assignments []lineup.Assignment
	Kickoff     *time.Time
	Minutes     map[int64]int
}

// LineupView is a stored lineup together with the formation inferred from it.
type LineupView struct {
	Match     match.Match
	Formation string
	Positions []string
}

// LineupResult is the saved lineup plus what the engine dropped from the submission.
type LineupResult struct {
	LineupView
	Ignored        []lineup.IgnoredAssignment
	UnknownPlayers []int64
	Overflow       []int64
}

type LineupService struct {
	matchRepo  match.Repository
	playerRepo player.Repository
	catalog    *formation.Catalog
	strict     bool
	now        func() time.Time
}

type LineupOption func(*LineupService)

// WithStrictLineups makes Save reject submissions the engine had to correct.
func WithStrictLineups(strict bool) LineupOption {
	return func(s *LineupService) {
		s.strict = strict
	}
}

func WithFormationCatalog(catalog *formation.Catalog) LineupOption {
	return func(s *LineupService) {
		if catalog != nil {
			s.catalog = catalog
		}
	}
}

func NewLineupService(matchRepo match.Repository, playerRepo player.Repository, opts ...LineupOption) *LineupService {
	s := &LineupService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		catalog:    formation.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LineupService) Get(ctx context.Context, matchID int64) (LineupView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Get", matchAttr(matchID))
	defer span.End()

	item, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return LineupView{}, err
	}
	return s.view(item), nil
}

// Save rebuilds the lineup of a match from a coach submission. Kickoff, when given, is
// stored in the same write.
func (s *LineupService) Save(ctx context.Context, in LineupInput) (LineupResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Save", matchAttr(in.MatchID))
	defer span.End()

	item, err := s.loadMatch(ctx, in.MatchID)
	if err != nil {
		return LineupResult{}, err
	}
	if item.Finished {
		return LineupResult{}, fmt.Errorf("%w: el partido %d ya ha finalizado", ErrConflict, item.ID)
	}

	key := strings.TrimSpace(in.Formation)
	if s.strict && key != "" && !s.catalog.Has(key) {
		return LineupResult{}, fmt.Errorf("%w: formación desconocida %q", ErrInvalidInput, key)
	}
	key = s.catalog.Resolve(key)

	players, err := s.playerRepo.List(ctx, player.ListFilter{TeamID: &item.TeamID})
	if err != nil {
		return LineupResult{}, fmt.Errorf("list players: %w", err)
	}
	roster := make([]lineup.RosterEntry, 0, len(players))
	for _, p := range players {
		roster = append(roster, lineup.RosterEntry{PlayerID: p.ID, Jersey: p.Jersey})
	}

	res := lineup.Assign(lineup.Input{
		Roster:      roster,
		Formation:   s.catalog.Positions(key),
		Starters:    in.Starters,
		Bench:       in.Bench,
		Unavailable: in.Unavailable,
		Assignments: in.Assignments,
		Previous:    item.Lineup,
	})
	if s.strict && !res.Clean() {
		return LineupResult{}, fmt.Errorf("%w: %s", ErrInvalidInput, describeLineupIssues(res))
	}

	slots := res.Slots
	if slots == nil {
		slots = []match.PlayerSlot{}
	}
	for i := range slots {
		minutes, ok := in.Minutes[slots[i].PlayerID]
		if !ok {
			continue
		}
		if minutes < 0 || minutes > 2*match.HalfDuration+match.MaxRelativeMinute {
			return LineupResult{}, fmt.Errorf("%w: minutos fuera de rango para el jugador %d", ErrInvalidInput, slots[i].PlayerID)
		}
		slots[i].Minutes = minutes
	}

	item.Lineup = slots
	if in.Kickoff != nil && !in.Kickoff.IsZero() {
		item.Kickoff = *in.Kickoff
	}
	item.UpdatedAt = s.now()

	updated, err := s.matchRepo.Update(ctx, item)
	if err != nil {
		return LineupResult{}, fmt.Errorf("update match lineup: %w", err)
	}

	view := s.view(updated)
	// The inferred key can differ when some positions stayed empty; report the chosen one.
	if len(view.Match.FieldPositions()) > 0 {
		view.Formation = key
		view.Positions = s.catalog.Positions(key)
	}
	return LineupResult{
		LineupView:     view,
		Ignored:        res.Ignored,
		UnknownPlayers: res.UnknownPlayers,
		Overflow:       res.Overflow,
	}, nil
}

func (s *LineupService) view(item match.Match) LineupView {
	key := s.catalog.Infer(item.FieldPositions())
	item.Events = match.SortTimeline(item.Events)
	return LineupView{
		Match:     item,
		Formation: key,
		Positions: s.catalog.Positions(key),
	}
}

func (s *LineupService) loadMatch(ctx context.Context, id int64) (match.Match, error) {
	if id <= 0 {
		return match.Match{}, fmt.Errorf("%w: partidoId es obligatorio", ErrInvalidInput)
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

func describeLineupIssues(res lineup.Result) string {
	parts := make([]string, 0, len(res.Ignored)+1)
	if len(res.UnknownPlayers) > 0 {
		parts = append(parts, fmt.Sprintf("jugadores fuera de la plantilla %v", res.UnknownPlayers))
	}
	for _, ig := range res.Ignored {
		parts = append(parts, fmt.Sprintf("posición %q jugador %q (%s)", ig.Position, ig.PlayerID, ig.Reason))
	}
	return "alineación no válida: " + strings.Join(parts, "; ")
}
