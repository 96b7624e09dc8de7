package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/cantera/internal/domain/objective"
	"github.com/riskibarqy/cantera/internal/domain/player"
	"github.com/riskibarqy/cantera/internal/domain/team"
)

type ObjectiveService struct {
	objectiveRepo objective.Repository
	teamRepo      team.Repository
	playerRepo    player.Repository
}

func NewObjectiveService(objectiveRepo objective.Repository, teamRepo team.Repository, playerRepo player.Repository) *ObjectiveService {
	return &ObjectiveService{
		objectiveRepo: objectiveRepo,
		teamRepo:      teamRepo,
		playerRepo:    playerRepo,
	}
}

func (s *ObjectiveService) List(ctx context.Context, filter objective.ListFilter) ([]objective.Objective, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ObjectiveService.List")
	defer span.End()

	items, err := s.objectiveRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list objectives: %w", err)
	}
	return items, nil
}

func (s *ObjectiveService) Get(ctx context.Context, id int64) (objective.Objective, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ObjectiveService.Get")
	defer span.End()

	if id <= 0 {
		return objective.Objective{}, fmt.Errorf("%w: id de objetivo inválido", ErrInvalidInput)
	}
	item, exists, err := s.objectiveRepo.GetByID(ctx, id)
	if err != nil {
		return objective.Objective{}, fmt.Errorf("get objective: %w", err)
	}
	if !exists {
		return objective.Objective{}, fmt.Errorf("%w: objetivo %d", ErrNotFound, id)
	}
	return item, nil
}

func (s *ObjectiveService) Create(ctx context.Context, item objective.Objective) (objective.Objective, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ObjectiveService.Create")
	defer span.End()

	if err := s.validate(ctx, &item); err != nil {
		return objective.Objective{}, err
	}
	created, err := s.objectiveRepo.Create(ctx, item)
	if err != nil {
		return objective.Objective{}, fmt.Errorf("create objective: %w", err)
	}
	return created, nil
}

func (s *ObjectiveService) Update(ctx context.Context, item objective.Objective) (objective.Objective, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ObjectiveService.Update")
	defer span.End()

	if _, err := s.Get(ctx, item.ID); err != nil {
		return objective.Objective{}, err
	}
	if err := s.validate(ctx, &item); err != nil {
		return objective.Objective{}, err
	}
	updated, err := s.objectiveRepo.Update(ctx, item)
	if err != nil {
		return objective.Objective{}, fmt.Errorf("update objective: %w", err)
	}
	return updated, nil
}

func (s *ObjectiveService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ObjectiveService.Delete")
	defer span.End()

	return deleteByID(ctx, id, "objetivo", s.objectiveRepo.Delete)
}

func (s *ObjectiveService) validate(ctx context.Context, item *objective.Objective) error {
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return fmt.Errorf("%w: el título del objetivo es obligatorio", ErrInvalidInput)
	}
	if item.Progress < 0 || item.Progress > objective.CompleteProgress {
		return fmt.Errorf("%w: el progreso debe estar entre 0 y 100", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, item.TeamID)
	if err != nil {
		return fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: el equipo %d no existe", ErrInvalidInput, item.TeamID)
	}
	if item.PlayerID == nil {
		return nil
	}
	p, exists, err := s.playerRepo.GetByID(ctx, *item.PlayerID)
	if err != nil {
		return fmt.Errorf("get player by id: %w", err)
	}
	if !exists || p.TeamID != item.TeamID {
		return fmt.Errorf("%w: el jugador %d no pertenece al equipo", ErrInvalidInput, *item.PlayerID)
	}
	return nil
}
