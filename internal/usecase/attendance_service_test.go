package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/attendance"
	"github.com/riskibarqy/cantera/internal/domain/training"
	"github.com/stretchr/testify/require"
)

func TestAttendanceService_SaveReplacesWholeSheet(t *testing.T) {
	t.Parallel()

	f := newClubFixture(t)
	svc := f.attendanceService()
	ctx := context.Background()
	day := time.Date(2025, time.January, 6, 18, 30, 0, 0, time.UTC)
	key := attendance.Key{TeamID: f.teamID, Date: &day}

	_, err := svc.Save(ctx, attendance.Sheet{Key: key, Records: []attendance.Record{mark(1, true), mark(2, false), mark(3, true)}})
	require.NoError(t, err)

	saved, err := svc.Save(ctx, attendance.Sheet{Key: key, Records: []attendance.Record{mark(1, false), mark(4, true), mark(1, true)}})
	require.NoError(t, err)
	require.Equal(t, []attendance.Record{mark(1, true), mark(4, true)}, saved.Records)

	got, err := svc.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, saved.Records, got.Records)
	require.Equal(t, 0, got.Key.Date.Hour(), "dates are stored as calendar days")
}

func TestAttendanceService_GetUnsavedSheetIsEmpty(t *testing.T) {
	t.Parallel()

	f := newClubFixture(t)
	day := fixtureNow
	got, err := f.attendanceService().Get(context.Background(), attendance.Key{TeamID: f.teamID, Date: &day})
	require.NoError(t, err)
	require.NotNil(t, got.Records)
	require.Empty(t, got.Records)
}

func TestAttendanceService_KeyValidation(t *testing.T) {
	t.Parallel()

	f := newClubFixture(t)
	svc := f.attendanceService()
	ctx := context.Background()
	day := fixtureNow
	sessionID := int64(1)

	for _, key := range []attendance.Key{
		{TeamID: 0, Date: &day},
		{TeamID: f.teamID},
		{TeamID: f.teamID, Date: &day, SessionID: &sessionID},
	} {
		_, err := svc.Save(ctx, attendance.Sheet{Key: key})
		require.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestAttendanceService_RejectsForeignPlayersAndSessions(t *testing.T) {
	t.Parallel()

	f := newClubFixture(t)
	svc := f.attendanceService()
	ctx := context.Background()
	day := fixtureNow

	_, err := svc.Save(ctx, attendance.Sheet{Key: attendance.Key{TeamID: f.teamID, Date: &day}, Records: []attendance.Record{mark(12, true)}})
	require.ErrorIs(t, err, ErrInvalidInput)

	sessions, err := f.sessions.CreateMany(ctx, []training.Session{{TeamID: f.otherTeamID, Start: fixtureNow}})
	require.NoError(t, err)
	_, err = svc.Save(ctx, attendance.Sheet{Key: attendance.Key{TeamID: f.teamID, SessionID: &sessions[0].ID}})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAttendanceService_StatsAndReport(t *testing.T) {
	t.Parallel()

	f := newClubFixture(t)
	svc := f.attendanceService()
	ctx := context.Background()
	d1 := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 2)

	_, err := svc.Save(ctx, attendance.Sheet{Key: attendance.Key{TeamID: f.teamID, Date: &d1}, Records: []attendance.Record{mark(1, true), mark(2, false)}})
	require.NoError(t, err)
	_, err = svc.Save(ctx, attendance.Sheet{Key: attendance.Key{TeamID: f.teamID, Date: &d2}, Records: []attendance.Record{mark(1, true), mark(2, false)}})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, f.teamID)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Sheets)
	require.Equal(t, 50, stats.Percentage)
	require.Len(t, stats.Players, 2)

	report, err := svc.Report(ctx, f.teamID)
	require.NoError(t, err)
	require.Equal(t, f.teamID, report.Team.ID)
	require.Len(t, report.Players, 11)
	require.Len(t, report.Sheets, 2)

	_, err = svc.Report(ctx, 404)
	require.ErrorIs(t, err, ErrNotFound)
}
