package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cantera/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/cantera/internal/platform/querybuilder"
)

// seedTables lists the tables BootstrapSeed writes, in foreign key order.
var seedTables = []string{
	seasonsTable,
	teamsTable,
	playersTable,
	usersTable,
	matchesTable,
	ratingsTable,
	objectivesTable,
	scoutingReportsTable,
}

// BootstrapSeed loads the demo club into an empty database. It is a no-op once any
// season exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, now time.Time, loc *time.Location) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM seasons WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count seasons for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	club := memory.SeedClub(now, loc)

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, s := range club.Seasons {
		if err := seedRow(ctx, tx, seasonsTable, s.ID, seasonRow(s)); err != nil {
			return err
		}
	}
	for _, t := range club.Teams {
		if err := seedRow(ctx, tx, teamsTable, t.ID, teamRow(t)); err != nil {
			return err
		}
	}
	for _, p := range club.Players {
		if err := seedRow(ctx, tx, playersTable, p.ID, playerRow(p)); err != nil {
			return err
		}
	}
	for _, u := range club.Users {
		row := userTableModel{Username: u.Username, Name: u.Name, TeamID: nullInt64(u.TeamID)}
		if err := seedRow(ctx, tx, usersTable, u.ID, row); err != nil {
			return err
		}
	}
	for _, m := range club.Matches {
		row, err := matchRow(m)
		if err != nil {
			return err
		}
		if err := seedRow(ctx, tx, matchesTable, m.ID, row); err != nil {
			return err
		}
	}
	for _, r := range club.Ratings {
		if err := seedRow(ctx, tx, ratingsTable, r.ID, ratingRow(r)); err != nil {
			return err
		}
	}
	for _, o := range club.Objectives {
		if err := seedRow(ctx, tx, objectivesTable, o.ID, objectiveRow(o)); err != nil {
			return err
		}
	}
	for _, s := range club.Scouting {
		if err := seedRow(ctx, tx, scoutingReportsTable, s.ID, scoutingReportRow(s)); err != nil {
			return err
		}
	}

	// Explicit ids leave the serial sequences behind.
	for _, table := range seedTables {
		query := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 1))`, table)
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("reset %s id sequence: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

func seedRow(ctx context.Context, tx *sqlx.Tx, table string, id int64, model any) error {
	cols, vals, err := qb.ModelColumns(model)
	if err != nil {
		return fmt.Errorf("seed %s columns: %w", table, err)
	}
	query, args, err := qb.InsertInto(table).
		Columns(append([]string{"id"}, cols...)...).
		Values(append([]any{id}, vals...)...).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build seed %s query: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("seed %s id=%d: %w", table, id, err)
	}
	return nil
}
