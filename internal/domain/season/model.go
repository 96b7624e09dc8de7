package season

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Season is a sporting year, e.g. "2024/25".
type Season struct {
	ID     int64
	Name   string
	Start  time.Time
	End    time.Time
	Active bool
}

func (s Season) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("el nombre de la temporada es obligatorio")
	}
	if !s.Start.IsZero() && !s.End.IsZero() && s.End.Before(s.Start) {
		return fmt.Errorf("la temporada termina antes de empezar")
	}
	return nil
}

// Repository describes season persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Season, error)
	GetByID(ctx context.Context, id int64) (Season, bool, error)
	Create(ctx context.Context, item Season) (Season, error)
	Update(ctx context.Context, item Season) (Season, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
