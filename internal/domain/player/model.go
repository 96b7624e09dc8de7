package player

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Player is a member of a team roster.
type Player struct {
	ID        int64
	TeamID    int64
	Name      string
	Position  string
	Jersey    *int
	BirthDate *time.Time
	Notes     string
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("el nombre del jugador es obligatorio")
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("el jugador debe pertenecer a un equipo")
	}
	if p.Jersey != nil && (*p.Jersey < 0 || *p.Jersey > 99) {
		return fmt.Errorf("el dorsal debe estar entre 0 y 99")
	}
	return nil
}

type ListFilter struct {
	TeamID *int64
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	Create(ctx context.Context, item Player) (Player, error)
	Update(ctx context.Context, item Player) (Player, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
