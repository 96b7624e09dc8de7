package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/player"
	"github.com/riskibarqy/cantera/internal/domain/rating"
)

const maxSkillScore = 10

// RatingSummary is the team or player level rating overview.
type RatingSummary struct {
	Average       string
	RatedRecords  int
	TotalRecords  int
	PlayerAverage map[int64]string
}

type RatingService struct {
	ratingRepo rating.Repository
	playerRepo player.Repository
	now        func() time.Time
}

func NewRatingService(ratingRepo rating.Repository, playerRepo player.Repository) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		playerRepo: playerRepo,
		now:        time.Now,
	}
}

// List returns ratings of one player, of every player in a team, or all of them.
func (s *RatingService) List(ctx context.Context, playerID, teamID *int64) ([]rating.Rating, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.List")
	defer span.End()

	filter := rating.ListFilter{PlayerID: playerID}
	if playerID == nil && teamID != nil {
		ids, err := s.rosterIDs(ctx, *teamID)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []rating.Rating{}, nil
		}
		filter.PlayerIDs = ids
	}

	items, err := s.ratingRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return items, nil
}

func (s *RatingService) Get(ctx context.Context, id int64) (rating.Rating, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.Get")
	defer span.End()

	if id <= 0 {
		return rating.Rating{}, fmt.Errorf("%w: id de valoración inválido", ErrInvalidInput)
	}
	item, exists, err := s.ratingRepo.GetByID(ctx, id)
	if err != nil {
		return rating.Rating{}, fmt.Errorf("get rating: %w", err)
	}
	if !exists {
		return rating.Rating{}, fmt.Errorf("%w: valoración %d", ErrNotFound, id)
	}
	return item, nil
}

func (s *RatingService) Create(ctx context.Context, item rating.Rating) (rating.Rating, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.Create")
	defer span.End()

	if err := s.validate(ctx, &item); err != nil {
		return rating.Rating{}, err
	}
	created, err := s.ratingRepo.Create(ctx, item)
	if err != nil {
		return rating.Rating{}, fmt.Errorf("create rating: %w", err)
	}
	return created, nil
}

func (s *RatingService) Update(ctx context.Context, item rating.Rating) (rating.Rating, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.Update")
	defer span.End()

	if _, err := s.Get(ctx, item.ID); err != nil {
		return rating.Rating{}, err
	}
	if err := s.validate(ctx, &item); err != nil {
		return rating.Rating{}, err
	}
	updated, err := s.ratingRepo.Update(ctx, item)
	if err != nil {
		return rating.Rating{}, fmt.Errorf("update rating: %w", err)
	}
	return updated, nil
}

func (s *RatingService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.Delete")
	defer span.End()

	return deleteByID(ctx, id, "valoración", s.ratingRepo.Delete)
}

// Summary averages the ratings of a team roster.
func (s *RatingService) Summary(ctx context.Context, teamID int64) (RatingSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RatingService.Summary")
	defer span.End()

	items, err := s.List(ctx, nil, &teamID)
	if err != nil {
		return RatingSummary{}, err
	}
	return summarizeRatings(items), nil
}

func summarizeRatings(items []rating.Rating) RatingSummary {
	byPlayer := make(map[int64][]rating.Rating)
	rated := 0
	for _, item := range items {
		byPlayer[item.PlayerID] = append(byPlayer[item.PlayerID], item)
		if _, ok := rating.RecordAverage(item); ok {
			rated++
		}
	}

	summary := RatingSummary{
		Average:       rating.Average(items),
		RatedRecords:  rated,
		TotalRecords:  len(items),
		PlayerAverage: make(map[int64]string, len(byPlayer)),
	}
	for playerID, list := range byPlayer {
		summary.PlayerAverage[playerID] = rating.Average(list)
	}
	return summary
}

func (s *RatingService) rosterIDs(ctx context.Context, teamID int64) ([]int64, error) {
	players, err := s.playerRepo.List(ctx, player.ListFilter{TeamID: &teamID})
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	ids := make([]int64, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (s *RatingService) validate(ctx context.Context, item *rating.Rating) error {
	for _, v := range item.Skills() {
		if v < 0 || v > maxSkillScore {
			return fmt.Errorf("%w: las puntuaciones deben estar entre 0 y %d", ErrInvalidInput, maxSkillScore)
		}
	}
	item.Comment = strings.TrimSpace(item.Comment)
	if item.Date.IsZero() {
		item.Date = s.now()
	}

	_, exists, err := s.playerRepo.GetByID(ctx, item.PlayerID)
	if err != nil {
		return fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: el jugador %d no existe", ErrInvalidInput, item.PlayerID)
	}
	return nil
}
