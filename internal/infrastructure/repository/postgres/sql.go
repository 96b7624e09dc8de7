package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	qb "github.com/riskibarqy/cantera/internal/platform/querybuilder"
)

var errRowNotFound = errors.New("postgres: row not found")

var jsonb = jsoniter.ConfigCompatibleWithStandardLibrary

const uniqueViolation = "23505"

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx.
type queryer interface {
	QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// insertRow inserts the writable columns of model and returns the generated id.
func insertRow(ctx context.Context, db queryer, table string, model any) (int64, error) {
	query, args, err := qb.InsertModel(table, model, "RETURNING id")
	if err != nil {
		return 0, fmt.Errorf("build insert %s query: %w", table, err)
	}

	var id int64
	if err := db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	return id, nil
}

// updateRow overwrites the writable columns of a live row.
func updateRow(ctx context.Context, db queryer, table string, id int64, model any) error {
	query, args, err := qb.UpdateModel(table, model, qb.Eq("id", id), qb.IsNull("deleted_at")).
		SetExpr("updated_at", "NOW()").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update %s query: %w", table, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s id=%d: %w", table, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s id=%d rows affected: %w", table, id, err)
	}
	if affected == 0 {
		return fmt.Errorf("update %s: %w: id=%d", table, errRowNotFound, id)
	}
	return nil
}

// softDelete stamps deleted_at and reports whether a live row was hit.
func softDelete(ctx context.Context, db queryer, table string, id int64) (bool, error) {
	query, args, err := qb.Update(table).
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete %s query: %w", table, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete %s id=%d: %w", table, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete %s id=%d rows affected: %w", table, id, err)
	}
	return affected > 0, nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	out := v.Int64
	return &out
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	out := v.Time
	return &out
}
