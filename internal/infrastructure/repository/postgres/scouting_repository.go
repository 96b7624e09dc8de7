package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cantera/internal/domain/scouting"
	qb "github.com/riskibarqy/cantera/internal/platform/querybuilder"
)

const scoutingReportsTable = "scouting_reports"

type scoutingReportTableModel struct {
	ID         int64         `db:"id,readonly"`
	TeamID     sql.NullInt64 `db:"team_id"`
	Name       string        `db:"name"`
	Club       string        `db:"club"`
	Position   string        `db:"position"`
	BirthDate  sql.NullTime  `db:"birth_date"`
	Score      float64       `db:"score"`
	Notes      string        `db:"notes"`
	ReportDate time.Time     `db:"report_date"`
	CreatedAt  time.Time     `db:"created_at,readonly"`
	UpdatedAt  time.Time     `db:"updated_at,readonly"`
	DeletedAt  *time.Time    `db:"deleted_at,readonly"`
}

func scoutingReportRow(item scouting.Report) scoutingReportTableModel {
	return scoutingReportTableModel{
		ID:         item.ID,
		TeamID:     nullInt64(item.TeamID),
		Name:       item.Name,
		Club:       item.Club,
		Position:   item.Position,
		BirthDate:  nullTime(item.BirthDate),
		Score:      item.Score,
		Notes:      item.Notes,
		ReportDate: item.Date,
	}
}

func scoutingReportFromRow(row scoutingReportTableModel) scouting.Report {
	return scouting.Report{
		ID:        row.ID,
		TeamID:    int64Ptr(row.TeamID),
		Name:      row.Name,
		Club:      row.Club,
		Position:  row.Position,
		BirthDate: timePtr(row.BirthDate),
		Score:     row.Score,
		Notes:     row.Notes,
		Date:      row.ReportDate,
	}
}

type ScoutingRepository struct {
	db *sqlx.DB
}

func NewScoutingRepository(db *sqlx.DB) *ScoutingRepository {
	return &ScoutingRepository{db: db}
}

func (r *ScoutingRepository) List(ctx context.Context) ([]scouting.Report, error) {
	query, args, err := qb.Select("*").From(scoutingReportsTable).
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select scouting reports query: %w", err)
	}

	var rows []scoutingReportTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select scouting reports: %w", err)
	}

	out := make([]scouting.Report, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoutingReportFromRow(row))
	}
	return out, nil
}

func (r *ScoutingRepository) GetByID(ctx context.Context, id int64) (scouting.Report, bool, error) {
	query, args, err := qb.Select("*").From(scoutingReportsTable).
		Where(qb.Eq("id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return scouting.Report{}, false, fmt.Errorf("build get scouting report query: %w", err)
	}

	var row scoutingReportTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scouting.Report{}, false, nil
		}
		return scouting.Report{}, false, fmt.Errorf("get scouting report id=%d: %w", id, err)
	}
	return scoutingReportFromRow(row), true, nil
}

func (r *ScoutingRepository) Create(ctx context.Context, item scouting.Report) (scouting.Report, error) {
	id, err := insertRow(ctx, r.db, scoutingReportsTable, scoutingReportRow(item))
	if err != nil {
		return scouting.Report{}, err
	}
	item.ID = id
	return item, nil
}

func (r *ScoutingRepository) Update(ctx context.Context, item scouting.Report) (scouting.Report, error) {
	if err := updateRow(ctx, r.db, scoutingReportsTable, item.ID, scoutingReportRow(item)); err != nil {
		return scouting.Report{}, err
	}
	return item, nil
}

func (r *ScoutingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return softDelete(ctx, r.db, scoutingReportsTable, id)
}
