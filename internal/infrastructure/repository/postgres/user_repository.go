package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cantera/internal/domain/user"
	qb "github.com/riskibarqy/cantera/internal/platform/querybuilder"
)

const usersTable = "users"

type userTableModel struct {
	ID        int64         `db:"id,readonly"`
	Username  string        `db:"username"`
	Name      string        `db:"name"`
	TeamID    sql.NullInt64 `db:"team_id"`
	CreatedAt time.Time     `db:"created_at,readonly"`
	UpdatedAt time.Time     `db:"updated_at,readonly"`
	DeletedAt *time.Time    `db:"deleted_at,readonly"`
}

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, bool, error) {
	return r.getOne(ctx, qb.Expr("LOWER(username) = LOWER(?)", strings.TrimSpace(username)))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (user.User, bool, error) {
	return r.getOne(ctx, qb.Eq("id", id))
}

func (r *UserRepository) getOne(ctx context.Context, condition qb.Condition) (user.User, bool, error) {
	query, args, err := qb.Select("*").From(usersTable).
		Where(condition, qb.IsNull("deleted_at")).
		Limit(1).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user: %w", err)
	}
	return user.User{
		ID:       row.ID,
		Username: row.Username,
		Name:     row.Name,
		TeamID:   int64Ptr(row.TeamID),
	}, true, nil
}
