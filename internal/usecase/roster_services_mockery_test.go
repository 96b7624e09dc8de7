package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/objective"
	"github.com/riskibarqy/cantera/internal/domain/player"
	"github.com/riskibarqy/cantera/internal/domain/rating"
	"github.com/riskibarqy/cantera/internal/domain/season"
	"github.com/riskibarqy/cantera/internal/domain/team"
	objectivemock "github.com/riskibarqy/cantera/internal/mocks/domain/objective"
	playermock "github.com/riskibarqy/cantera/internal/mocks/domain/player"
	ratingmock "github.com/riskibarqy/cantera/internal/mocks/domain/rating"
	seasonmock "github.com/riskibarqy/cantera/internal/mocks/domain/season"
	teammock "github.com/riskibarqy/cantera/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestTeamService_CreateChecksSeasonUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-123")
	teamRepo := teammock.NewRepository(t)
	seasonRepo := seasonmock.NewRepository(t)
	service := NewTeamService(teamRepo, seasonRepo)
	seasonID := int64(4)

	seasonRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), seasonID).
		Return(season.Season{ID: seasonID}, true, nil).
		Once()
	teamRepo.
		On("Create", mock.Anything, team.Team{Name: "Benjamín A", Category: "benjamin", SeasonID: &seasonID}).
		Return(team.Team{ID: 9, Name: "Benjamín A", Category: "benjamin", SeasonID: &seasonID}, nil).
		Once()

	got, err := service.Create(ctx, team.Team{Name: "  Benjamín A ", Category: " benjamin", SeasonID: &seasonID})
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if got.ID != 9 {
		t.Fatalf("unexpected team id: got=%d want=9", got.ID)
	}
}

func TestTeamService_CreateUnknownSeasonUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	seasonRepo := seasonmock.NewRepository(t)
	service := NewTeamService(teamRepo, seasonRepo)
	seasonID := int64(99)

	seasonRepo.On("GetByID", ctx, seasonID).Return(season.Season{}, false, nil).Once()

	_, err := service.Create(ctx, team.Team{Name: "Cadete", SeasonID: &seasonID})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamService_GetNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, seasonmock.NewRepository(t))

	teamRepo.On("GetByID", ctx, int64(5)).Return(team.Team{}, false, nil).Once()

	if _, err := service.Get(ctx, 5); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_RepositoryErrorIsWrappedUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, seasonmock.NewRepository(t))
	boom := errors.New("connection reset")

	teamRepo.On("List", ctx, team.ListFilter{}).Return(nil, boom).Once()

	_, err := service.List(ctx, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestPlayerService_CreateNormalizesPositionUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	service := NewPlayerService(playerRepo, teamRepo)

	teamRepo.On("GetByID", ctx, int64(1)).Return(team.Team{ID: 1}, true, nil).Once()
	playerRepo.
		On("Create", ctx, mock.MatchedBy(func(p player.Player) bool { return p.Position == "LCB" && p.Name == "Leo" })).
		Return(player.Player{ID: 30, TeamID: 1, Name: "Leo", Position: "LCB"}, nil).
		Once()

	got, err := service.Create(ctx, player.Player{TeamID: 1, Name: " Leo ", Position: " lcb "})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if got.ID != 30 {
		t.Fatalf("unexpected player id: got=%d", got.ID)
	}
}

func TestPlayerService_CreateValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	service := NewPlayerService(playermock.NewRepository(t), teammock.NewRepository(t))
	jersey := 120

	tests := []struct {
		name string
		item player.Player
	}{
		{name: "missing name", item: player.Player{TeamID: 1}},
		{name: "missing team", item: player.Player{Name: "Leo"}},
		{name: "jersey out of range", item: player.Player{TeamID: 1, Name: "Leo", Jersey: &jersey}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.Create(ctx, tc.item); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestObjectiveService_PlayerMustBelongToTeamUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	objectiveRepo := objectivemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	service := NewObjectiveService(objectiveRepo, teamRepo, playerRepo)
	playerID := int64(12)

	teamRepo.On("GetByID", ctx, int64(1)).Return(team.Team{ID: 1}, true, nil).Once()
	playerRepo.On("GetByID", ctx, playerID).Return(player.Player{ID: playerID, TeamID: 2}, true, nil).Once()

	_, err := service.Create(ctx, objective.Objective{TeamID: 1, PlayerID: &playerID, Title: "Golpeo"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, err = service.Create(ctx, objective.Objective{TeamID: 1, Title: "Golpeo", Progress: 101})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for progress, got %v", err)
	}
}

func TestRatingService_SummaryUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ratingRepo := ratingmock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	service := NewRatingService(ratingRepo, playerRepo)
	teamID := int64(1)
	day := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	playerRepo.
		On("List", ctx, player.ListFilter{TeamID: &teamID}).
		Return([]player.Player{{ID: 1}, {ID: 2}}, nil).
		Once()
	ratingRepo.
		On("List", ctx, rating.ListFilter{PlayerIDs: []int64{1, 2}}).
		Return([]rating.Rating{
			{ID: 1, PlayerID: 1, Date: day, Technical: 8, Tactical: 8, Physical: 8, Mental: 8},
			{ID: 2, PlayerID: 2, Date: day, Technical: 6, Tactical: 6, Physical: 6, Mental: 6},
			{ID: 3, PlayerID: 2, Date: day},
		}, nil).
		Once()

	got, err := service.Summary(ctx, teamID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got.Average != "7.0" {
		t.Fatalf("unexpected average: %s", got.Average)
	}
	if got.RatedRecords != 2 || got.TotalRecords != 3 {
		t.Fatalf("unexpected counts: rated=%d total=%d", got.RatedRecords, got.TotalRecords)
	}
	if got.PlayerAverage[2] != "6.0" {
		t.Fatalf("unexpected player average: %s", got.PlayerAverage[2])
	}
}

func TestRatingService_SummaryEmptyRoster(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	service := NewRatingService(ratingmock.NewRepository(t), playerRepo)
	teamID := int64(3)

	playerRepo.On("List", ctx, player.ListFilter{TeamID: &teamID}).Return([]player.Player{}, nil).Once()

	got, err := service.Summary(ctx, teamID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got.Average != "0" || got.TotalRecords != 0 {
		t.Fatalf("unexpected summary: %+v", got)
	}
}
