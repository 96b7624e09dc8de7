package querybuilder

import (
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("players").
		Where(Eq("team_id", int64(3)), IsNull("deleted_at")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM players WHERE team_id = $1 AND deleted_at IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderRange(t *testing.T) {
	from := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	query, args, err := Select("*").
		From("training_sessions").
		Where(Eq("team_id", int64(1)), Gte("start_at", from), Lt("start_at", to), In("id", []any{int64(4), int64(5)})).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM training_sessions WHERE team_id = $1 AND start_at >= $2 AND start_at < $3 AND id IN ($4, $5)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 5 || args[1] != from || args[2] != to {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("name", "category").
		Values("Alevín A", "alevin").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (name, category) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Alevín A" || args[1] != "alevin" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("teams").
		Set("name", "new").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE teams SET name = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "new" || args[1] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

type seasonRow struct {
	ID     int64  `db:"id,readonly"`
	Name   string `db:"name"`
	Active bool   `db:"active"`
	Skip   string `db:"-"`
	hidden string
}

func TestInsertModelSkipsReadonly(t *testing.T) {
	query, args, err := InsertModel("seasons", seasonRow{ID: 9, Name: "2025/26", Active: true}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO seasons (name, active) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "2025/26" || args[1] != true {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateModel(t *testing.T) {
	query, args, err := UpdateModel("seasons", seasonRow{ID: 9, Name: "2025/26"}, Eq("id", int64(9)), IsNull("deleted_at")).
		SetExpr("updated_at", "NOW()").
		Suffix("RETURNING updated_at").
		ToSQL()
	if err != nil {
		t.Fatalf("build update model query: %v", err)
	}

	wantQuery := "UPDATE seasons SET name = $1, active = $2, updated_at = NOW() WHERE id = $3 AND deleted_at IS NULL RETURNING updated_at"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != int64(9) {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := UpdateModel("seasons", nil).ToSQL(); err == nil {
		t.Fatalf("expected error for nil model")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("attendance_sheets").
		Where(Eq("team_id", int64(2)), IsNull("session_id")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM attendance_sheets WHERE team_id = $1 AND session_id IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("attendance_sheets").ToSQL(); err == nil {
		t.Fatalf("expected error for unbounded delete")
	}
}

func TestExprAndLteShareNumbering(t *testing.T) {
	until := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	query, args, err := Select("*").
		From("ratings").
		Where(Expr("player_id = ANY(?)", []int64{1, 2}), Lte("created_at", until), Expr("note <> '?'")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM ratings WHERE player_id = ANY($1) AND created_at <= $2 AND note <> '?'"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[1] != until {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInEmptyMatchesNothing(t *testing.T) {
	query, args, err := Select("id").From("players").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}
}

func TestInsertBuilderRejectsShortRow(t *testing.T) {
	_, _, err := InsertInto("teams").Columns("name", "category").Values("Benjamín").ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}
