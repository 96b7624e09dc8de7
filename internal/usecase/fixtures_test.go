package usecase

import (
	"testing"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/attendance"
	"github.com/riskibarqy/cantera/internal/domain/match"
	"github.com/riskibarqy/cantera/internal/domain/objective"
	"github.com/riskibarqy/cantera/internal/domain/player"
	"github.com/riskibarqy/cantera/internal/domain/rating"
	"github.com/riskibarqy/cantera/internal/domain/season"
	"github.com/riskibarqy/cantera/internal/domain/team"
	"github.com/riskibarqy/cantera/internal/infrastructure/repository/memory"
)

var fixtureNow = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

// clubFixture is a small in-memory club: one season, two teams, eleven players in team 1
// and two in team 2, one upcoming match for team 1.
type clubFixture struct {
	seasons     *memory.SeasonRepository
	teams       *memory.TeamRepository
	players     *memory.PlayerRepository
	matches     *memory.MatchRepository
	sessions    *memory.TrainingRepository
	attendance  *memory.AttendanceRepository
	ratings     *memory.RatingRepository
	objectives  *memory.ObjectiveRepository
	kickoff     time.Time
	matchID     int64
	teamID      int64
	otherTeamID int64
}

func newClubFixture(t *testing.T) *clubFixture {
	t.Helper()

	seasonID := int64(1)
	players := make([]player.Player, 0, 13)
	for i := 1; i <= 11; i++ {
		jersey := i
		players = append(players, player.Player{ID: int64(i), TeamID: 1, Name: "Jugador", Jersey: &jersey})
	}
	players = append(players,
		player.Player{ID: 12, TeamID: 2, Name: "Otra"},
		player.Player{ID: 13, TeamID: 2, Name: "Otra más"},
	)
	kickoff := fixtureNow.Add(72 * time.Hour)

	return &clubFixture{
		seasons: memory.NewSeasonRepository([]season.Season{{ID: seasonID, Name: "2024/25", Start: fixtureNow.AddDate(0, -6, 0), End: fixtureNow.AddDate(0, 4, 0), Active: true}}),
		teams: memory.NewTeamRepository([]team.Team{
			{ID: 1, Name: "Alevín A", SeasonID: &seasonID},
			{ID: 2, Name: "Infantil B", SeasonID: &seasonID},
		}),
		players: memory.NewPlayerRepository(players),
		matches: memory.NewMatchRepository([]match.Match{
			{ID: 1, TeamID: 1, SeasonID: &seasonID, Opponent: "CD Rival", Kickoff: kickoff, Lineup: []match.PlayerSlot{}, Events: []match.Event{}},
		}),
		sessions:    memory.NewTrainingRepository(nil),
		attendance:  memory.NewAttendanceRepository(nil),
		ratings:     memory.NewRatingRepository([]rating.Rating{}),
		objectives:  memory.NewObjectiveRepository([]objective.Objective{}),
		kickoff:     kickoff,
		matchID:     1,
		teamID:      1,
		otherTeamID: 2,
	}
}

func (f *clubFixture) attendanceService() *AttendanceService {
	s := NewAttendanceService(f.attendance, f.teams, f.players, f.sessions, time.UTC)
	s.now = func() time.Time { return fixtureNow }
	return s
}

func (f *clubFixture) matchService() *MatchService {
	s := NewMatchService(f.matches, f.teams, f.players)
	s.now = func() time.Time { return fixtureNow }
	return s
}

func (f *clubFixture) lineupService(opts ...LineupOption) *LineupService {
	s := NewLineupService(f.matches, f.players, opts...)
	s.now = func() time.Time { return fixtureNow }
	return s
}

func (f *clubFixture) dashboardService(workers int) *DashboardService {
	s := NewDashboardService(f.teams, f.players, f.attendance, f.ratings, f.objectives, f.matches, f.sessions, workers)
	s.now = func() time.Time { return fixtureNow }
	return s
}

func mark(playerID int64, attended bool) attendance.Record {
	return attendance.Record{PlayerID: playerID, Attended: attended}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}
