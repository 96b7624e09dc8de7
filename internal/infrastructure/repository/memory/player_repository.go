package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/riskibarqy/cantera/internal/domain/player"
)

type PlayerRepository struct {
	rows *table[player.Player]
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	rows := newTable(
		func(p player.Player) int64 { return p.ID },
		func(p *player.Player, id int64) { p.ID = id },
		func(p player.Player) player.Player {
			p.Jersey = cloneIntPtr(p.Jersey)
			if p.BirthDate != nil {
				d := *p.BirthDate
				p.BirthDate = &d
			}
			return p
		},
	)
	rows.seed(players)
	return &PlayerRepository{rows: rows}
}

// List returns players ordered by jersey number, then by name.
func (r *PlayerRepository) List(_ context.Context, filter player.ListFilter) ([]player.Player, error) {
	items := r.rows.list(func(p player.Player) bool {
		return filter.TeamID == nil || p.TeamID == *filter.TeamID
	})
	sortPlayers(items)
	return items, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	item, ok := r.rows.get(id)
	return item, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	return r.rows.insert(item), nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) (player.Player, error) {
	return r.rows.update(item)
}

func (r *PlayerRepository) Delete(_ context.Context, id int64) (bool, error) {
	return r.rows.delete(id), nil
}

func sortPlayers(items []player.Player) {
	jersey := func(p player.Player) int {
		if p.Jersey == nil {
			return 1 << 30
		}
		return *p.Jersey
	}
	slices.SortStableFunc(items, func(a, b player.Player) int {
		if ja, jb := jersey(a), jersey(b); ja != jb {
			return ja - jb
		}
		return strings.Compare(a.Name, b.Name)
	})
}
