package team

import (
	"context"
	"fmt"
	"strings"
)

// Team is one age-group squad of the club within a season.
type Team struct {
	ID       int64
	Name     string
	Category string
	SeasonID *int64
	Coach    string
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("el nombre del equipo es obligatorio")
	}
	return nil
}

type ListFilter struct {
	SeasonID *int64
}

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Team, error)
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	Create(ctx context.Context, item Team) (Team, error)
	Update(ctx context.Context, item Team) (Team, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
