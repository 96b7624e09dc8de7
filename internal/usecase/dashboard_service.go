package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/cantera/internal/domain/attendance"
	"github.com/riskibarqy/cantera/internal/domain/match"
	"github.com/riskibarqy/cantera/internal/domain/objective"
	"github.com/riskibarqy/cantera/internal/domain/player"
	"github.com/riskibarqy/cantera/internal/domain/rating"
	"github.com/riskibarqy/cantera/internal/domain/team"
	"github.com/riskibarqy/cantera/internal/domain/training"
	"github.com/sourcegraph/conc/pool"
)

// Dashboard is the overview of one team.
type Dashboard struct {
	Team                 team.Team
	Players              int
	AttendancePercentage int
	RatingAverage        string
	ObjectivesCompleted  int
	NextMatch            *match.Match
	NextSession          *training.Session
}

type DashboardService struct {
	teamRepo       team.Repository
	playerRepo     player.Repository
	attendanceRepo attendance.Repository
	ratingRepo     rating.Repository
	objectiveRepo  objective.Repository
	matchRepo      match.Repository
	sessionRepo    training.Repository
	workers        int
	now            func() time.Time
}

func NewDashboardService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	attendanceRepo attendance.Repository,
	ratingRepo rating.Repository,
	objectiveRepo objective.Repository,
	matchRepo match.Repository,
	sessionRepo training.Repository,
	workers int,
) *DashboardService {
	if workers <= 0 {
		workers = 1
	}
	return &DashboardService{
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		attendanceRepo: attendanceRepo,
		ratingRepo:     ratingRepo,
		objectiveRepo:  objectiveRepo,
		matchRepo:      matchRepo,
		sessionRepo:    sessionRepo,
		workers:        workers,
		now:            time.Now,
	}
}

func (s *DashboardService) Get(ctx context.Context, teamID int64) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get", teamAttr(teamID))
	defer span.End()

	if teamID <= 0 {
		return Dashboard{}, fmt.Errorf("%w: equipoId es obligatorio", ErrInvalidInput)
	}
	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return Dashboard{}, fmt.Errorf("%w: equipo %d", ErrNotFound, teamID)
	}
	return s.build(ctx, item)
}

// Season builds one dashboard per team of the season on a bounded worker pool.
// Results keep the team listing order.
func (s *DashboardService) Season(ctx context.Context, seasonID int64) ([]Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Season")
	defer span.End()

	if seasonID <= 0 {
		return nil, fmt.Errorf("%w: temporadaId es obligatorio", ErrInvalidInput)
	}
	teams, err := s.teamRepo.List(ctx, team.ListFilter{SeasonID: &seasonID})
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	out := make([]Dashboard, len(teams))
	if len(teams) == 0 {
		return out, nil
	}

	workerPool, err := ants.NewPool(min(s.workers, len(teams)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var (
		workers  sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i, item := range teams {
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			dashboard, err := s.build(ctx, item)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("team %d: %w", item.ID, err)
				}
				mu.Unlock()
				return
			}
			out[i] = dashboard
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// build loads the independent parts of a team dashboard concurrently.
func (s *DashboardService) build(ctx context.Context, item team.Team) (Dashboard, error) {
	teamID := item.ID
	now := s.now()
	out := Dashboard{Team: item, RatingAverage: "0"}

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		players, err := s.playerRepo.List(ctx, player.ListFilter{TeamID: &teamID})
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		out.Players = len(players)
		if len(players) == 0 {
			return nil
		}
		ids := make([]int64, 0, len(players))
		for _, pl := range players {
			ids = append(ids, pl.ID)
		}
		ratings, err := s.ratingRepo.List(ctx, rating.ListFilter{PlayerIDs: ids})
		if err != nil {
			return fmt.Errorf("list ratings: %w", err)
		}
		out.RatingAverage = rating.Average(ratings)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		sheets, err := s.attendanceRepo.ListByTeam(ctx, teamID)
		if err != nil {
			return fmt.Errorf("list attendance: %w", err)
		}
		out.AttendancePercentage = attendance.Percentage(attendance.Flatten(sheets))
		return nil
	})
	p.Go(func(ctx context.Context) error {
		objectives, err := s.objectiveRepo.List(ctx, objective.ListFilter{TeamID: &teamID})
		if err != nil {
			return fmt.Errorf("list objectives: %w", err)
		}
		out.ObjectivesCompleted = objective.CompletionPercentage(objectives)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		matches, err := s.matchRepo.List(ctx, match.ListFilter{TeamID: &teamID, From: &now})
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		out.NextMatch = earliestMatch(matches, now)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		sessions, err := s.sessionRepo.ListByTeam(ctx, teamID, &now, nil)
		if err != nil {
			return fmt.Errorf("list training sessions: %w", err)
		}
		out.NextSession = earliestSession(sessions, now)
		return nil
	})

	if err := p.Wait(); err != nil {
		return Dashboard{}, err
	}
	return out, nil
}

func earliestMatch(items []match.Match, now time.Time) *match.Match {
	var next *match.Match
	for i := range items {
		m := items[i]
		if m.Finished || m.Kickoff.Before(now) {
			continue
		}
		if next == nil || m.Kickoff.Before(next.Kickoff) {
			next = &m
		}
	}
	return next
}

func earliestSession(items []training.Session, now time.Time) *training.Session {
	var next *training.Session
	for i := range items {
		sess := items[i]
		if sess.Start.Before(now) {
			continue
		}
		if next == nil || sess.Start.Before(next.Start) {
			next = &sess
		}
	}
	return next
}
