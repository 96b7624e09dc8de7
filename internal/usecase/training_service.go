package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/team"
	"github.com/riskibarqy/cantera/internal/domain/training"
)

const maxRecurrenceDays = 366

type TrainingService struct {
	sessionRepo training.Repository
	teamRepo    team.Repository
	location    *time.Location
}

func NewTrainingService(sessionRepo training.Repository, teamRepo team.Repository, location *time.Location) *TrainingService {
	if location == nil {
		location = time.Local
	}
	return &TrainingService{
		sessionRepo: sessionRepo,
		teamRepo:    teamRepo,
		location:    location,
	}
}

func (s *TrainingService) ListByTeam(ctx context.Context, teamID int64, from, to *time.Time) ([]training.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TrainingService.ListByTeam", teamAttr(teamID))
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: equipoId es obligatorio", ErrInvalidInput)
	}
	items, err := s.sessionRepo.ListByTeam(ctx, teamID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list training sessions: %w", err)
	}
	return items, nil
}

// Preview expands a rule without persisting it.
func (s *TrainingService) Preview(rule training.Rule) ([]training.Occurrence, error) {
	if start, end, ok := rule.Span(); ok && start.AddDate(0, 0, maxRecurrenceDays).Before(end) {
		return nil, fmt.Errorf("%w: el rango de fechas no puede superar %d días", ErrInvalidInput, maxRecurrenceDays)
	}
	occurrences := training.Expand(rule, s.location)
	if len(occurrences) == 0 {
		return nil, fmt.Errorf("%w: no se generaron sesiones con los datos indicados", ErrInvalidInput)
	}
	return occurrences, nil
}

// CreateFromRule expands a recurrence rule and stores every resulting session.
func (s *TrainingService) CreateFromRule(ctx context.Context, teamID int64, rule training.Rule) ([]training.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TrainingService.CreateFromRule", teamAttr(teamID))
	defer span.End()

	if teamID <= 0 {
		return nil, fmt.Errorf("%w: equipoId es obligatorio", ErrInvalidInput)
	}
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: el equipo %d no existe", ErrInvalidInput, teamID)
	}

	occurrences, err := s.Preview(rule)
	if err != nil {
		return nil, err
	}

	sessions := make([]training.Session, 0, len(occurrences))
	for _, occ := range occurrences {
		sessions = append(sessions, training.Session{
			TeamID: teamID,
			Start:  occ.Start,
			End:    occ.End,
		})
	}

	created, err := s.sessionRepo.CreateMany(ctx, sessions)
	if err != nil {
		return nil, fmt.Errorf("create training sessions: %w", err)
	}
	return created, nil
}

func (s *TrainingService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TrainingService.Delete")
	defer span.End()

	return deleteByID(ctx, id, "sesión", s.sessionRepo.Delete)
}
