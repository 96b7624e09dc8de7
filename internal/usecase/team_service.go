package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/cantera/internal/domain/season"
	"github.com/riskibarqy/cantera/internal/domain/team"
)

type TeamService struct {
	teamRepo   team.Repository
	seasonRepo season.Repository
}

func NewTeamService(teamRepo team.Repository, seasonRepo season.Repository) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		seasonRepo: seasonRepo,
	}
}

func (s *TeamService) List(ctx context.Context, seasonID *int64) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	items, err := s.teamRepo.List(ctx, team.ListFilter{SeasonID: seasonID})
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *TeamService) Get(ctx context.Context, id int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	if id <= 0 {
		return team.Team{}, fmt.Errorf("%w: id de equipo inválido", ErrInvalidInput)
	}
	item, exists, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: equipo %d", ErrNotFound, id)
	}
	return item, nil
}

func (s *TeamService) Create(ctx context.Context, item team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	if err := s.validate(ctx, &item); err != nil {
		return team.Team{}, err
	}
	created, err := s.teamRepo.Create(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	return created, nil
}

func (s *TeamService) Update(ctx context.Context, item team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	if _, err := s.Get(ctx, item.ID); err != nil {
		return team.Team{}, err
	}
	if err := s.validate(ctx, &item); err != nil {
		return team.Team{}, err
	}
	updated, err := s.teamRepo.Update(ctx, item)
	if err != nil {
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	return updated, nil
}

func (s *TeamService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	return deleteByID(ctx, id, "equipo", s.teamRepo.Delete)
}

func (s *TeamService) validate(ctx context.Context, item *team.Team) error {
	item.Name = strings.TrimSpace(item.Name)
	item.Category = strings.TrimSpace(item.Category)
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if item.SeasonID == nil {
		return nil
	}
	_, exists, err := s.seasonRepo.GetByID(ctx, *item.SeasonID)
	if err != nil {
		return fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: la temporada %d no existe", ErrInvalidInput, *item.SeasonID)
	}
	return nil
}
