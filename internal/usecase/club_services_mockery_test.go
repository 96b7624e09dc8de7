package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/attendance"
	"github.com/riskibarqy/cantera/internal/domain/match"
	"github.com/riskibarqy/cantera/internal/domain/scouting"
	"github.com/riskibarqy/cantera/internal/domain/user"
	attendancemock "github.com/riskibarqy/cantera/internal/mocks/domain/attendance"
	matchmock "github.com/riskibarqy/cantera/internal/mocks/domain/match"
	playermock "github.com/riskibarqy/cantera/internal/mocks/domain/player"
	scoutingmock "github.com/riskibarqy/cantera/internal/mocks/domain/scouting"
	teammock "github.com/riskibarqy/cantera/internal/mocks/domain/team"
	trainingmock "github.com/riskibarqy/cantera/internal/mocks/domain/training"
	usermock "github.com/riskibarqy/cantera/internal/mocks/domain/user"
	"github.com/riskibarqy/cantera/internal/platform/cache"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScoutingService_CreateNormalizesUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := scoutingmock.NewRepository(t)
	service := NewScoutingService(repo)
	service.now = func() time.Time { return fixtureNow }

	want := scouting.Report{Name: "Iker", Club: "CD Ribera", Position: "LW", Score: 7.5, Date: fixtureNow}
	repo.On("Create", mock.Anything, want).Return(scouting.Report{ID: 3, Name: "Iker"}, nil).Once()

	got, err := service.Create(ctx, scouting.Report{Name: " Iker ", Club: "CD Ribera ", Position: " lw", Score: 7.5})
	require.NoError(t, err)
	require.Equal(t, int64(3), got.ID)
}

func TestScoutingService_RejectsScoreOutOfRangeUsingMockery(t *testing.T) {
	t.Parallel()

	service := NewScoutingService(scoutingmock.NewRepository(t))

	_, err := service.Create(context.Background(), scouting.Report{Name: "Iker", Score: 11})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestScoutingService_UpdateMissingReportUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := scoutingmock.NewRepository(t)
	service := NewScoutingService(repo)

	repo.On("GetByID", ctx, int64(8)).Return(scouting.Report{}, false, nil).Once()

	_, err := service.Update(ctx, scouting.Report{ID: 8, Name: "Iker"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSessionService_LoginUnknownUserUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := usermock.NewRepository(t)
	service := NewSessionService(repo, cache.NewStore(0), &fixedIDs{}, time.Hour)

	repo.On("GetByUsername", ctx, "nadie").Return(user.User{}, false, nil).Once()

	_, err := service.Login(ctx, " NADIE ")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestSessionService_LoginRepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := usermock.NewRepository(t)
	service := NewSessionService(repo, cache.NewStore(0), &fixedIDs{}, time.Hour)
	boom := errors.New("db down")

	repo.On("GetByUsername", ctx, "marta").Return(user.User{}, false, boom).Once()

	_, err := service.Login(ctx, "marta")
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, ErrUnauthorized)
}

func TestAttendanceService_GetUnsavedSheetUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := attendancemock.NewRepository(t)
	service := NewAttendanceService(repo, teammock.NewRepository(t), playermock.NewRepository(t), trainingmock.NewRepository(t), time.UTC)
	sessionID := int64(4)
	key := attendance.Key{TeamID: 1, SessionID: &sessionID}

	repo.On("Get", mock.Anything, key).Return(attendance.Sheet{}, false, nil).Once()

	got, err := service.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, key, got.Key)
	require.Empty(t, got.Records)
	require.NotNil(t, got.Records)
}

func TestAttendanceService_GetRejectsAmbiguousKeyUsingMockery(t *testing.T) {
	t.Parallel()

	service := NewAttendanceService(attendancemock.NewRepository(t), teammock.NewRepository(t), playermock.NewRepository(t), trainingmock.NewRepository(t), time.UTC)
	sessionID := int64(4)
	day := fixtureNow

	_, err := service.Get(context.Background(), attendance.Key{TeamID: 1, SessionID: &sessionID, Date: &day})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMatchService_UpdateFinishedMatchUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := matchmock.NewRepository(t)
	service := NewMatchService(repo, teammock.NewRepository(t), playermock.NewRepository(t))

	repo.On("GetByID", mock.Anything, int64(2)).Return(match.Match{ID: 2, TeamID: 1, Finished: true}, true, nil).Once()

	_, err := service.Update(ctx, match.Match{ID: 2, TeamID: 1, Opponent: "CD Ribera"})
	require.ErrorIs(t, err, ErrConflict)
}

func TestMatchService_DeleteMissingUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := matchmock.NewRepository(t)
	service := NewMatchService(repo, teammock.NewRepository(t), playermock.NewRepository(t))

	repo.On("Delete", mock.Anything, int64(12)).Return(false, nil).Once()

	require.ErrorIs(t, service.Delete(ctx, 12), ErrNotFound)
}
