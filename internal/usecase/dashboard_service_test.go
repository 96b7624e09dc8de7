package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/attendance"
	"github.com/riskibarqy/cantera/internal/domain/objective"
	"github.com/riskibarqy/cantera/internal/domain/rating"
	"github.com/riskibarqy/cantera/internal/domain/training"
	"github.com/stretchr/testify/require"
)

func seedDashboardData(t *testing.T, f *clubFixture) {
	t.Helper()
	ctx := context.Background()

	day := fixtureNow.AddDate(0, 0, -3)
	_, err := f.attendance.Replace(ctx, attendance.Sheet{
		Key:     attendance.Key{TeamID: f.teamID, Date: &day},
		Records: []attendance.Record{mark(1, true), mark(2, true), mark(3, false), mark(4, true)},
	})
	require.NoError(t, err)

	_, err = f.ratings.Create(ctx, rating.Rating{PlayerID: 1, Date: day, Technical: 8, Tactical: 6, Physical: 7, Mental: 7})
	require.NoError(t, err)
	_, err = f.ratings.Create(ctx, rating.Rating{PlayerID: 12, Date: day, Technical: 1, Tactical: 1, Physical: 1, Mental: 1})
	require.NoError(t, err)

	_, err = f.objectives.Create(ctx, objective.Objective{TeamID: f.teamID, Title: "Presión", Progress: 100})
	require.NoError(t, err)
	_, err = f.objectives.Create(ctx, objective.Objective{TeamID: f.teamID, Title: "Rondos", Progress: 20})
	require.NoError(t, err)

	_, err = f.sessions.CreateMany(ctx, []training.Session{
		{TeamID: f.teamID, Start: fixtureNow.Add(-24 * time.Hour)},
		{TeamID: f.teamID, Start: fixtureNow.Add(48 * time.Hour)},
		{TeamID: f.teamID, Start: fixtureNow.Add(24 * time.Hour)},
	})
	require.NoError(t, err)
}

func TestDashboardService_Get(t *testing.T) {
	t.Parallel()

	f := newClubFixture(t)
	seedDashboardData(t, f)

	got, err := f.dashboardService(2).Get(context.Background(), f.teamID)
	require.NoError(t, err)
	require.Equal(t, 11, got.Players)
	require.Equal(t, 75, got.AttendancePercentage)
	require.Equal(t, "7.0", got.RatingAverage)
	require.Equal(t, 50, got.ObjectivesCompleted)
	require.NotNil(t, got.NextMatch)
	require.Equal(t, f.matchID, got.NextMatch.ID)
	require.NotNil(t, got.NextSession)
	require.True(t, got.NextSession.Start.Equal(fixtureNow.Add(24*time.Hour)))
}

func TestDashboardService_GetEmptyTeam(t *testing.T) {
	t.Parallel()

	f := newClubFixture(t)
	got, err := f.dashboardService(1).Get(context.Background(), f.otherTeamID)
	require.NoError(t, err)
	require.Equal(t, 2, got.Players)
	require.Equal(t, 0, got.AttendancePercentage)
	require.Equal(t, "0", got.RatingAverage)
	require.Nil(t, got.NextMatch)
	require.Nil(t, got.NextSession)

	_, err = f.dashboardService(1).Get(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDashboardService_SeasonKeepsTeamOrder(t *testing.T) {
	t.Parallel()

	f := newClubFixture(t)
	seedDashboardData(t, f)

	got, err := f.dashboardService(4).Season(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, f.teamID, got[0].Team.ID)
	require.Equal(t, f.otherTeamID, got[1].Team.ID)
	require.Equal(t, 75, got[0].AttendancePercentage)

	empty, err := f.dashboardService(4).Season(context.Background(), 99)
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = f.dashboardService(4).Season(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidInput)
}
