package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/attendance"
	"github.com/riskibarqy/cantera/internal/domain/player"
	"github.com/riskibarqy/cantera/internal/domain/team"
	"github.com/riskibarqy/cantera/internal/domain/training"
)

// AttendanceStats is the team attendance overview.
type AttendanceStats struct {
	TeamID     int64
	Sheets     int
	Percentage int
	Players    []attendance.PlayerSummary
}

// AttendanceReport carries everything needed to export a team attendance workbook.
type AttendanceReport struct {
	Team     team.Team
	Players  []player.Player
	Sheets   []attendance.Sheet
	Sessions []training.Session
	Stats    AttendanceStats
}

type AttendanceService struct {
	attendanceRepo attendance.Repository
	teamRepo       team.Repository
	playerRepo     player.Repository
	sessionRepo    training.Repository
	location       *time.Location
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	sessionRepo training.Repository,
	location *time.Location,
) *AttendanceService {
	if location == nil {
		location = time.Local
	}
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		sessionRepo:    sessionRepo,
		location:       location,
		now:            time.Now,
	}
}

// Get returns the sheet for key. A sheet that was never saved is returned empty.
func (s *AttendanceService) Get(ctx context.Context, key attendance.Key) (attendance.Sheet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttendanceService.Get")
	defer span.End()

	key, err := s.normalizeKey(key)
	if err != nil {
		return attendance.Sheet{}, err
	}
	sheet, exists, err := s.attendanceRepo.Get(ctx, key)
	if err != nil {
		return attendance.Sheet{}, fmt.Errorf("get attendance: %w", err)
	}
	if !exists {
		return attendance.Sheet{Key: key, Records: []attendance.Record{}}, nil
	}
	return sheet, nil
}

// Save replaces the whole sheet for its key.
func (s *AttendanceService) Save(ctx context.Context, sheet attendance.Sheet) (attendance.Sheet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttendanceService.Save")
	defer span.End()

	key, err := s.normalizeKey(sheet.Key)
	if err != nil {
		return attendance.Sheet{}, err
	}
	sheet.Key = key

	if _, exists, err := s.teamRepo.GetByID(ctx, key.TeamID); err != nil {
		return attendance.Sheet{}, fmt.Errorf("get team by id: %w", err)
	} else if !exists {
		return attendance.Sheet{}, fmt.Errorf("%w: el equipo %d no existe", ErrInvalidInput, key.TeamID)
	}
	if key.SessionID != nil {
		session, exists, err := s.sessionRepo.GetByID(ctx, *key.SessionID)
		if err != nil {
			return attendance.Sheet{}, fmt.Errorf("get training session: %w", err)
		}
		if !exists || session.TeamID != key.TeamID {
			return attendance.Sheet{}, fmt.Errorf("%w: la sesión %d no pertenece al equipo", ErrInvalidInput, *key.SessionID)
		}
	}

	roster, err := s.playerRepo.List(ctx, player.ListFilter{TeamID: &key.TeamID})
	if err != nil {
		return attendance.Sheet{}, fmt.Errorf("list players: %w", err)
	}
	members := make(map[int64]struct{}, len(roster))
	for _, p := range roster {
		members[p.ID] = struct{}{}
	}

	seen := make(map[int64]int, len(sheet.Records))
	records := make([]attendance.Record, 0, len(sheet.Records))
	for _, r := range sheet.Records {
		if _, ok := members[r.PlayerID]; !ok {
			return attendance.Sheet{}, fmt.Errorf("%w: el jugador %d no pertenece al equipo", ErrInvalidInput, r.PlayerID)
		}
		if idx, dup := seen[r.PlayerID]; dup {
			records[idx] = r
			continue
		}
		seen[r.PlayerID] = len(records)
		records = append(records, r)
	}
	sheet.Records = records
	sheet.UpdatedAt = s.now()

	saved, err := s.attendanceRepo.Replace(ctx, sheet)
	if err != nil {
		return attendance.Sheet{}, fmt.Errorf("replace attendance: %w", err)
	}
	return saved, nil
}

func (s *AttendanceService) Stats(ctx context.Context, teamID int64) (AttendanceStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttendanceService.Stats", teamAttr(teamID))
	defer span.End()

	if teamID <= 0 {
		return AttendanceStats{}, fmt.Errorf("%w: equipoId es obligatorio", ErrInvalidInput)
	}
	sheets, err := s.attendanceRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return AttendanceStats{}, fmt.Errorf("list attendance: %w", err)
	}
	return buildAttendanceStats(teamID, sheets), nil
}

// Report collects the data of the attendance export for a team.
func (s *AttendanceService) Report(ctx context.Context, teamID int64) (AttendanceReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AttendanceService.Report", teamAttr(teamID))
	defer span.End()

	if teamID <= 0 {
		return AttendanceReport{}, fmt.Errorf("%w: equipoId es obligatorio", ErrInvalidInput)
	}
	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return AttendanceReport{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return AttendanceReport{}, fmt.Errorf("%w: equipo %d", ErrNotFound, teamID)
	}
	players, err := s.playerRepo.List(ctx, player.ListFilter{TeamID: &teamID})
	if err != nil {
		return AttendanceReport{}, fmt.Errorf("list players: %w", err)
	}
	sheets, err := s.attendanceRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return AttendanceReport{}, fmt.Errorf("list attendance: %w", err)
	}
	sessions, err := s.sessionRepo.ListByTeam(ctx, teamID, nil, nil)
	if err != nil {
		return AttendanceReport{}, fmt.Errorf("list training sessions: %w", err)
	}

	return AttendanceReport{
		Team:     item,
		Players:  players,
		Sheets:   sheets,
		Sessions: sessions,
		Stats:    buildAttendanceStats(teamID, sheets),
	}, nil
}

func buildAttendanceStats(teamID int64, sheets []attendance.Sheet) AttendanceStats {
	return AttendanceStats{
		TeamID:     teamID,
		Sheets:     len(sheets),
		Percentage: attendance.Percentage(attendance.Flatten(sheets)),
		Players:    attendance.ByPlayer(sheets),
	}
}

func (s *AttendanceService) normalizeKey(key attendance.Key) (attendance.Key, error) {
	if key.TeamID <= 0 {
		return attendance.Key{}, fmt.Errorf("%w: equipoId es obligatorio", ErrInvalidInput)
	}
	switch {
	case key.SessionID != nil && key.Date != nil:
		return attendance.Key{}, fmt.Errorf("%w: indica sesionId o fecha, no ambos", ErrInvalidInput)
	case key.SessionID == nil && key.Date == nil:
		return attendance.Key{}, fmt.Errorf("%w: sesionId o fecha es obligatorio", ErrInvalidInput)
	case key.Date != nil:
		y, m, d := key.Date.In(s.location).Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, s.location)
		key.Date = &day
	}
	return key, nil
}
