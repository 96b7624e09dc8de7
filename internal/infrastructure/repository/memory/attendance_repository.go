package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/riskibarqy/cantera/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu     sync.RWMutex
	sheets map[string]attendance.Sheet
	order  []string
}

func NewAttendanceRepository(sheets []attendance.Sheet) *AttendanceRepository {
	r := &AttendanceRepository{sheets: make(map[string]attendance.Sheet, len(sheets))}
	for _, sheet := range sheets {
		r.put(sheet)
	}
	return r
}

func (r *AttendanceRepository) Get(_ context.Context, key attendance.Key) (attendance.Sheet, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sheet, ok := r.sheets[attendanceKey(key)]
	if !ok {
		return attendance.Sheet{}, false, nil
	}
	return cloneSheet(sheet), true, nil
}

func (r *AttendanceRepository) Replace(_ context.Context, sheet attendance.Sheet) (attendance.Sheet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.put(sheet)
	return cloneSheet(sheet), nil
}

func (r *AttendanceRepository) ListByTeam(_ context.Context, teamID int64) ([]attendance.Sheet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]attendance.Sheet, 0)
	for _, k := range r.order {
		sheet := r.sheets[k]
		if sheet.Key.TeamID == teamID {
			out = append(out, cloneSheet(sheet))
		}
	}
	return out, nil
}

// put must be called with the write lock held.
func (r *AttendanceRepository) put(sheet attendance.Sheet) {
	k := attendanceKey(sheet.Key)
	if _, exists := r.sheets[k]; !exists {
		r.order = append(r.order, k)
	}
	r.sheets[k] = cloneSheet(sheet)
}

func attendanceKey(key attendance.Key) string {
	switch {
	case key.SessionID != nil:
		return fmt.Sprintf("%d:session:%d", key.TeamID, *key.SessionID)
	case key.Date != nil:
		return fmt.Sprintf("%d:date:%s", key.TeamID, key.Date.Format("2006-01-02"))
	default:
		return fmt.Sprintf("%d:none", key.TeamID)
	}
}

func cloneSheet(sheet attendance.Sheet) attendance.Sheet {
	sheet.Key.SessionID = cloneInt64Ptr(sheet.Key.SessionID)
	if sheet.Key.Date != nil {
		d := *sheet.Key.Date
		sheet.Key.Date = &d
	}
	sheet.Records = slices.Clone(sheet.Records)
	return sheet
}
