package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cantera/internal/domain/attendance"
	qb "github.com/riskibarqy/cantera/internal/platform/querybuilder"
)

const attendanceSheetsTable = "attendance_sheets"

type attendanceSheetTableModel struct {
	ID        int64         `db:"id,readonly"`
	TeamID    int64         `db:"team_id"`
	SessionID sql.NullInt64 `db:"session_id"`
	SheetDate sql.NullTime  `db:"sheet_date"`
	Records   string        `db:"records"`
	UpdatedAt time.Time     `db:"updated_at"`
	CreatedAt time.Time     `db:"created_at,readonly"`
}

type recordDocument struct {
	PlayerID int64 `json:"player_id"`
	Attended bool  `json:"attended"`
}

func attendanceSheetFromRow(row attendanceSheetTableModel) (attendance.Sheet, error) {
	var docs []recordDocument
	if row.Records != "" {
		if err := jsonb.UnmarshalFromString(row.Records, &docs); err != nil {
			return attendance.Sheet{}, fmt.Errorf("decode attendance records id=%d: %w", row.ID, err)
		}
	}
	records := make([]attendance.Record, 0, len(docs))
	for _, d := range docs {
		records = append(records, attendance.Record{PlayerID: d.PlayerID, Attended: d.Attended})
	}
	return attendance.Sheet{
		Key: attendance.Key{
			TeamID:    row.TeamID,
			SessionID: int64Ptr(row.SessionID),
			Date:      timePtr(row.SheetDate),
		},
		Records:   records,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

type AttendanceRepository struct {
	db *sqlx.DB
}

func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Get(ctx context.Context, key attendance.Key) (attendance.Sheet, bool, error) {
	query, args, err := qb.Select("*").From(attendanceSheetsTable).
		Where(keyConditions(key)...).
		Limit(1).
		ToSQL()
	if err != nil {
		return attendance.Sheet{}, false, fmt.Errorf("build get attendance sheet query: %w", err)
	}

	var row attendanceSheetTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return attendance.Sheet{}, false, nil
		}
		return attendance.Sheet{}, false, fmt.Errorf("get attendance sheet team=%d: %w", key.TeamID, err)
	}

	sheet, err := attendanceSheetFromRow(row)
	if err != nil {
		return attendance.Sheet{}, false, err
	}
	return sheet, true, nil
}

// Replace swaps the whole sheet for its key in one transaction.
func (r *AttendanceRepository) Replace(ctx context.Context, sheet attendance.Sheet) (attendance.Sheet, error) {
	docs := make([]recordDocument, 0, len(sheet.Records))
	for _, rec := range sheet.Records {
		docs = append(docs, recordDocument{PlayerID: rec.PlayerID, Attended: rec.Attended})
	}
	records, err := jsonb.MarshalToString(docs)
	if err != nil {
		return attendance.Sheet{}, fmt.Errorf("encode attendance records: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return attendance.Sheet{}, fmt.Errorf("begin replace attendance tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.DeleteFrom(attendanceSheetsTable).Where(keyConditions(sheet.Key)...).ToSQL()
	if err != nil {
		return attendance.Sheet{}, fmt.Errorf("build delete attendance sheet query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return attendance.Sheet{}, fmt.Errorf("delete attendance sheet team=%d: %w", sheet.Key.TeamID, err)
	}

	if _, err := insertRow(ctx, tx, attendanceSheetsTable, attendanceSheetTableModel{
		TeamID:    sheet.Key.TeamID,
		SessionID: nullInt64(sheet.Key.SessionID),
		SheetDate: nullTime(sheet.Key.Date),
		Records:   records,
		UpdatedAt: sheet.UpdatedAt,
	}); err != nil {
		return attendance.Sheet{}, err
	}

	if err := tx.Commit(); err != nil {
		return attendance.Sheet{}, fmt.Errorf("commit replace attendance tx: %w", err)
	}
	return sheet, nil
}

func (r *AttendanceRepository) ListByTeam(ctx context.Context, teamID int64) ([]attendance.Sheet, error) {
	query, args, err := qb.Select("*").From(attendanceSheetsTable).
		Where(qb.Eq("team_id", teamID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select attendance sheets query: %w", err)
	}

	var rows []attendanceSheetTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select attendance sheets team=%d: %w", teamID, err)
	}

	out := make([]attendance.Sheet, 0, len(rows))
	for _, row := range rows {
		sheet, err := attendanceSheetFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, sheet)
	}
	return out, nil
}

// keyConditions matches a sheet by session when one is given, otherwise by date.
func keyConditions(key attendance.Key) []qb.Condition {
	conditions := []qb.Condition{qb.Eq("team_id", key.TeamID)}
	switch {
	case key.SessionID != nil:
		conditions = append(conditions, qb.Eq("session_id", *key.SessionID))
	case key.Date != nil:
		conditions = append(conditions, qb.IsNull("session_id"), qb.Eq("sheet_date", key.Date.Format("2006-01-02")))
	default:
		conditions = append(conditions, qb.IsNull("session_id"), qb.IsNull("sheet_date"))
	}
	return conditions
}
