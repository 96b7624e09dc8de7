package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/cantera/internal/domain/rating"
	qb "github.com/riskibarqy/cantera/internal/platform/querybuilder"
)

const ratingsTable = "ratings"

type ratingTableModel struct {
	ID        int64      `db:"id,readonly"`
	PlayerID  int64      `db:"player_id"`
	RatedOn   time.Time  `db:"rated_on"`
	Technical float64    `db:"technical"`
	Tactical  float64    `db:"tactical"`
	Physical  float64    `db:"physical"`
	Mental    float64    `db:"mental"`
	Comment   string     `db:"comment"`
	CreatedAt time.Time  `db:"created_at,readonly"`
	UpdatedAt time.Time  `db:"updated_at,readonly"`
	DeletedAt *time.Time `db:"deleted_at,readonly"`
}

func ratingRow(item rating.Rating) ratingTableModel {
	return ratingTableModel{
		ID:        item.ID,
		PlayerID:  item.PlayerID,
		RatedOn:   item.Date,
		Technical: item.Technical,
		Tactical:  item.Tactical,
		Physical:  item.Physical,
		Mental:    item.Mental,
		Comment:   item.Comment,
	}
}

func ratingFromRow(row ratingTableModel) rating.Rating {
	return rating.Rating{
		ID:        row.ID,
		PlayerID:  row.PlayerID,
		Date:      row.RatedOn,
		Technical: row.Technical,
		Tactical:  row.Tactical,
		Physical:  row.Physical,
		Mental:    row.Mental,
		Comment:   row.Comment,
	}
}

type RatingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// List returns ratings newest first. A non-nil PlayerIDs filter restricts the result
// to those players, so an empty slice matches nothing.
func (r *RatingRepository) List(ctx context.Context, filter rating.ListFilter) ([]rating.Rating, error) {
	conditions := []qb.Condition{qb.IsNull("deleted_at")}
	if filter.PlayerID != nil {
		conditions = append(conditions, qb.Eq("player_id", *filter.PlayerID))
	}
	if filter.PlayerIDs != nil {
		conditions = append(conditions, qb.Expr("player_id = ANY(?)", pq.Int64Array(filter.PlayerIDs)))
	}
	query, args, err := qb.Select("*").From(ratingsTable).
		Where(conditions...).
		OrderBy("rated_on DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select ratings query: %w", err)
	}

	var rows []ratingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select ratings: %w", err)
	}

	out := make([]rating.Rating, 0, len(rows))
	for _, row := range rows {
		out = append(out, ratingFromRow(row))
	}
	return out, nil
}

func (r *RatingRepository) GetByID(ctx context.Context, id int64) (rating.Rating, bool, error) {
	query, args, err := qb.Select("*").From(ratingsTable).
		Where(qb.Eq("id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return rating.Rating{}, false, fmt.Errorf("build get rating query: %w", err)
	}

	var row ratingTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return rating.Rating{}, false, nil
		}
		return rating.Rating{}, false, fmt.Errorf("get rating id=%d: %w", id, err)
	}
	return ratingFromRow(row), true, nil
}

func (r *RatingRepository) Create(ctx context.Context, item rating.Rating) (rating.Rating, error) {
	id, err := insertRow(ctx, r.db, ratingsTable, ratingRow(item))
	if err != nil {
		return rating.Rating{}, err
	}
	item.ID = id
	return item, nil
}

func (r *RatingRepository) Update(ctx context.Context, item rating.Rating) (rating.Rating, error) {
	if err := updateRow(ctx, r.db, ratingsTable, item.ID, ratingRow(item)); err != nil {
		return rating.Rating{}, err
	}
	return item, nil
}

func (r *RatingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return softDelete(ctx, r.db, ratingsTable, id)
}
