package memory

import (
	"time"

	"github.com/riskibarqy/cantera/internal/domain/match"
	"github.com/riskibarqy/cantera/internal/domain/objective"
	"github.com/riskibarqy/cantera/internal/domain/player"
	"github.com/riskibarqy/cantera/internal/domain/rating"
	"github.com/riskibarqy/cantera/internal/domain/scouting"
	"github.com/riskibarqy/cantera/internal/domain/season"
	"github.com/riskibarqy/cantera/internal/domain/team"
	"github.com/riskibarqy/cantera/internal/domain/user"
)

const (
	SeedSeasonID       int64 = 1
	SeedTeamAlevinID   int64 = 1
	SeedTeamInfantilID int64 = 2
)

// Club is the demo data set used by the memory driver and by clubctl seed.
type Club struct {
	Seasons    []season.Season
	Teams      []team.Team
	Players    []player.Player
	Users      []user.User
	Matches    []match.Match
	Ratings    []rating.Rating
	Objectives []objective.Objective
	Scouting   []scouting.Report
}

// SeedClub builds the demo club relative to now so the season is always current.
func SeedClub(now time.Time, loc *time.Location) Club {
	if loc == nil {
		loc = time.Local
	}
	year := now.In(loc).Year()
	if now.In(loc).Month() < time.August {
		year--
	}
	seasonStart := time.Date(year, time.September, 1, 0, 0, 0, 0, loc)
	seasonEnd := time.Date(year+1, time.June, 30, 0, 0, 0, 0, loc)

	seasonID := SeedSeasonID
	alevin, infantil := SeedTeamAlevinID, SeedTeamInfantilID
	today := time.Date(now.In(loc).Year(), now.In(loc).Month(), now.In(loc).Day(), 0, 0, 0, 0, loc)

	return Club{
		Seasons: []season.Season{
			{ID: seasonID, Name: seasonName(year), Start: seasonStart, End: seasonEnd, Active: true},
		},
		Teams: []team.Team{
			{ID: alevin, Name: "Alevín A", Category: "alevin", SeasonID: &seasonID, Coach: "Marta Ruiz"},
			{ID: infantil, Name: "Infantil B", Category: "infantil", SeasonID: &seasonID, Coach: "Jorge Sanz"},
		},
		Players: seedPlayers(alevin, infantil),
		Users: []user.User{
			{ID: 1, Username: "marta", Name: "Marta Ruiz", TeamID: &alevin},
			{ID: 2, Username: "jorge", Name: "Jorge Sanz", TeamID: &infantil},
			{ID: 3, Username: "coordinador", Name: "Coordinación"},
		},
		Matches: []match.Match{
			{
				ID:        1,
				TeamID:    alevin,
				SeasonID:  &seasonID,
				Opponent:  "CD Los Olivos",
				Home:      true,
				Venue:     "Campo Municipal",
				Kickoff:   today.AddDate(0, 0, 5).Add(10 * time.Hour),
				Lineup:    []match.PlayerSlot{},
				Events:    []match.Event{},
				CreatedAt: now,
				UpdatedAt: now,
			},
			{
				ID:        2,
				TeamID:    infantil,
				SeasonID:  &seasonID,
				Opponent:  "AD Ribera",
				Venue:     "Polideportivo Ribera",
				Kickoff:   today.AddDate(0, 0, 6).Add(12 * time.Hour),
				Lineup:    []match.PlayerSlot{},
				Events:    []match.Event{},
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		Ratings: []rating.Rating{
			{ID: 1, PlayerID: 1, Date: today.AddDate(0, 0, -14), Technical: 7, Tactical: 6, Physical: 8, Mental: 7},
			{ID: 2, PlayerID: 2, Date: today.AddDate(0, 0, -14), Technical: 6, Tactical: 7, Physical: 6, Mental: 8},
		},
		Objectives: []objective.Objective{
			{ID: 1, TeamID: alevin, Title: "Salida de balón desde portería", Progress: 60},
			{ID: 2, TeamID: alevin, PlayerID: ptr(int64(2)), Title: "Mejorar pierna izquierda", Progress: 100},
		},
		Scouting: []scouting.Report{
			{ID: 1, Name: "Hugo Martín", Club: "CD Los Olivos", Position: "ST", Score: 7.5, Notes: "Rápido al espacio", Date: today.AddDate(0, 0, -7)},
		},
	}
}

func seedPlayers(alevin, infantil int64) []player.Player {
	type row struct {
		name     string
		position string
		jersey   int
	}
	alevinRows := []row{
		{"Lucas García", "GK", 1}, {"Mateo López", "LB", 2}, {"Leo Fernández", "LCB", 4},
		{"Daniel Pérez", "RCB", 5}, {"Pablo Sánchez", "RB", 3}, {"Álvaro Gómez", "CM", 6},
		{"Hugo Díaz", "LCM", 8}, {"Martín Moreno", "RCM", 10}, {"Manuel Muñoz", "LW", 11},
		{"Enzo Álvarez", "ST", 9}, {"Adrián Romero", "RW", 7}, {"Marco Navarro", "GK", 13},
		{"Izan Torres", "CM", 14},
	}
	infantilRows := []row{
		{"Sara Gil", "GK", 1}, {"Noa Serrano", "LCB", 4}, {"Vera Molina", "RCB", 5},
		{"Alba Ortiz", "LM", 7}, {"Lía Castro", "CM", 6}, {"Irene Rubio", "RM", 8},
		{"Elsa Marín", "ST", 9}, {"Carla Núñez", "CM", 10},
	}

	out := make([]player.Player, 0, len(alevinRows)+len(infantilRows))
	id := int64(1)
	add := func(teamID int64, rows []row) {
		for _, r := range rows {
			out = append(out, player.Player{ID: id, TeamID: teamID, Name: r.name, Position: r.position, Jersey: ptr(r.jersey)})
			id++
		}
	}
	add(alevin, alevinRows)
	add(infantil, infantilRows)
	return out
}

func seasonName(startYear int) string {
	return time.Date(startYear, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006") + "/" +
		time.Date(startYear+1, 1, 1, 0, 0, 0, 0, time.UTC).Format("06")
}

func ptr[T any](v T) *T {
	return &v
}
