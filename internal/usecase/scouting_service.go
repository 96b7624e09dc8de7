package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/scouting"
)

const maxScoutingScore = 10

type ScoutingService struct {
	reportRepo scouting.Repository
	now        func() time.Time
}

func NewScoutingService(reportRepo scouting.Repository) *ScoutingService {
	return &ScoutingService{
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

func (s *ScoutingService) List(ctx context.Context) ([]scouting.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutingService.List")
	defer span.End()

	items, err := s.reportRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scouting reports: %w", err)
	}
	return items, nil
}

func (s *ScoutingService) Get(ctx context.Context, id int64) (scouting.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutingService.Get")
	defer span.End()

	if id <= 0 {
		return scouting.Report{}, fmt.Errorf("%w: id de informe inválido", ErrInvalidInput)
	}
	item, exists, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return scouting.Report{}, fmt.Errorf("get scouting report: %w", err)
	}
	if !exists {
		return scouting.Report{}, fmt.Errorf("%w: informe %d", ErrNotFound, id)
	}
	return item, nil
}

func (s *ScoutingService) Create(ctx context.Context, item scouting.Report) (scouting.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutingService.Create")
	defer span.End()

	if err := s.normalize(&item); err != nil {
		return scouting.Report{}, err
	}
	created, err := s.reportRepo.Create(ctx, item)
	if err != nil {
		return scouting.Report{}, fmt.Errorf("create scouting report: %w", err)
	}
	return created, nil
}

func (s *ScoutingService) Update(ctx context.Context, item scouting.Report) (scouting.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutingService.Update")
	defer span.End()

	if _, err := s.Get(ctx, item.ID); err != nil {
		return scouting.Report{}, err
	}
	if err := s.normalize(&item); err != nil {
		return scouting.Report{}, err
	}
	updated, err := s.reportRepo.Update(ctx, item)
	if err != nil {
		return scouting.Report{}, fmt.Errorf("update scouting report: %w", err)
	}
	return updated, nil
}

func (s *ScoutingService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutingService.Delete")
	defer span.End()

	return deleteByID(ctx, id, "informe", s.reportRepo.Delete)
}

func (s *ScoutingService) normalize(item *scouting.Report) error {
	item.Name = strings.TrimSpace(item.Name)
	item.Club = strings.TrimSpace(item.Club)
	item.Position = strings.ToUpper(strings.TrimSpace(item.Position))
	if item.Name == "" {
		return fmt.Errorf("%w: el nombre del jugador observado es obligatorio", ErrInvalidInput)
	}
	if item.Score < 0 || item.Score > maxScoutingScore {
		return fmt.Errorf("%w: la valoración debe estar entre 0 y %d", ErrInvalidInput, maxScoutingScore)
	}
	if item.Date.IsZero() {
		item.Date = s.now()
	}
	return nil
}
