package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/cantera/internal/domain/player"
	"github.com/riskibarqy/cantera/internal/domain/team"
)

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
	}
}

// ListByTeam returns the roster of a team. An unknown team yields an empty list.
func (s *PlayerService) ListByTeam(ctx context.Context, teamID *int64) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByTeam")
	defer span.End()

	items, err := s.playerRepo.List(ctx, player.ListFilter{TeamID: teamID})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) Get(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	if id <= 0 {
		return player.Player{}, fmt.Errorf("%w: id de jugador inválido", ErrInvalidInput)
	}
	item, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: jugador %d", ErrNotFound, id)
	}
	return item, nil
}

func (s *PlayerService) Create(ctx context.Context, item player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	if err := s.validate(ctx, &item); err != nil {
		return player.Player{}, err
	}
	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return created, nil
}

func (s *PlayerService) Update(ctx context.Context, item player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	if _, err := s.Get(ctx, item.ID); err != nil {
		return player.Player{}, err
	}
	if err := s.validate(ctx, &item); err != nil {
		return player.Player{}, err
	}
	updated, err := s.playerRepo.Update(ctx, item)
	if err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	return updated, nil
}

func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	return deleteByID(ctx, id, "jugador", s.playerRepo.Delete)
}

func (s *PlayerService) validate(ctx context.Context, item *player.Player) error {
	item.Name = strings.TrimSpace(item.Name)
	item.Position = strings.ToUpper(strings.TrimSpace(item.Position))
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
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
