package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/cantera/internal/domain/season"
)

type SeasonService struct {
	seasonRepo season.Repository
}

func NewSeasonService(seasonRepo season.Repository) *SeasonService {
	return &SeasonService{seasonRepo: seasonRepo}
}

func (s *SeasonService) List(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.List")
	defer span.End()

	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return items, nil
}

func (s *SeasonService) Get(ctx context.Context, id int64) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Get")
	defer span.End()

	if id <= 0 {
		return season.Season{}, fmt.Errorf("%w: id de temporada inválido", ErrInvalidInput)
	}
	item, exists, err := s.seasonRepo.GetByID(ctx, id)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: temporada %d", ErrNotFound, id)
	}
	return item, nil
}

func (s *SeasonService) Create(ctx context.Context, item season.Season) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Create")
	defer span.End()

	item.Name = strings.TrimSpace(item.Name)
	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	created, err := s.seasonRepo.Create(ctx, item)
	if err != nil {
		return season.Season{}, fmt.Errorf("create season: %w", err)
	}
	return created, nil
}

func (s *SeasonService) Update(ctx context.Context, item season.Season) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Update")
	defer span.End()

	if _, err := s.Get(ctx, item.ID); err != nil {
		return season.Season{}, err
	}
	item.Name = strings.TrimSpace(item.Name)
	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	updated, err := s.seasonRepo.Update(ctx, item)
	if err != nil {
		return season.Season{}, fmt.Errorf("update season: %w", err)
	}
	return updated, nil
}

func (s *SeasonService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Delete")
	defer span.End()

	return deleteByID(ctx, id, "temporada", s.seasonRepo.Delete)
}

// deleteByID validates id and maps a missing row to ErrNotFound.
func deleteByID(ctx context.Context, id int64, entity string, del func(context.Context, int64) (bool, error)) error {
	if id <= 0 {
		return fmt.Errorf("%w: id de %s inválido", ErrInvalidInput, entity)
	}
	deleted, err := del(ctx, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", entity, err)
	}
	if !deleted {
		return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
	}
	return nil
}
