package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/cantera/internal/domain/player"
	"github.com/riskibarqy/cantera/internal/domain/season"
	"github.com/riskibarqy/cantera/internal/domain/team"
	basecache "github.com/riskibarqy/cantera/internal/platform/cache"
)

const (
	seasonPrefix = "season:"
	teamPrefix   = "team:"
	playerPrefix = "player:"
)

type cachedByID[T any] struct {
	value  T
	exists bool
}

func loadList[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]T)
	return append(make([]T, 0, len(items)), items...), nil
}

func loadByID[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cachedByID[T]{value: item, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	cached, _ := v.(cachedByID[T])
	return cached.value, cached.exists, nil
}

func optionalKey(prefix string, id *int64) string {
	if id == nil {
		return prefix + "all"
	}
	return prefix + strconv.FormatInt(*id, 10)
}

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	return loadList(ctx, r.cache, seasonPrefix+"list", r.next.List)
}

func (r *SeasonRepository) GetByID(ctx context.Context, id int64) (season.Season, bool, error) {
	return loadByID(ctx, r.cache, seasonPrefix+"id:"+strconv.FormatInt(id, 10), func(ctx context.Context) (season.Season, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) (season.Season, error) {
	defer r.cache.DeletePrefix(ctx, seasonPrefix)
	return r.next.Create(ctx, item)
}

func (r *SeasonRepository) Update(ctx context.Context, item season.Season) (season.Season, error) {
	defer r.cache.DeletePrefix(ctx, seasonPrefix)
	return r.next.Update(ctx, item)
}

func (r *SeasonRepository) Delete(ctx context.Context, id int64) (bool, error) {
	defer r.cache.DeletePrefix(ctx, seasonPrefix)
	return r.next.Delete(ctx, id)
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context, filter team.ListFilter) ([]team.Team, error) {
	return loadList(ctx, r.cache, optionalKey(teamPrefix+"list:season:", filter.SeasonID), func(ctx context.Context) ([]team.Team, error) {
		return r.next.List(ctx, filter)
	})
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	return loadByID(ctx, r.cache, teamPrefix+"id:"+strconv.FormatInt(id, 10), func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	defer r.cache.DeletePrefix(ctx, teamPrefix)
	return r.next.Create(ctx, item)
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (team.Team, error) {
	defer r.cache.DeletePrefix(ctx, teamPrefix)
	return r.next.Update(ctx, item)
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) (bool, error) {
	defer r.cache.DeletePrefix(ctx, teamPrefix)
	return r.next.Delete(ctx, id)
}

// PlayerRepository caches rosters, which the lineup engine and every aggregator read.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	return loadList(ctx, r.cache, optionalKey(playerPrefix+"list:team:", filter.TeamID), func(ctx context.Context) ([]player.Player, error) {
		return r.next.List(ctx, filter)
	})
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	return loadByID(ctx, r.cache, playerPrefix+"id:"+strconv.FormatInt(id, 10), func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	defer r.cache.DeletePrefix(ctx, playerPrefix)
	return r.next.Create(ctx, item)
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (player.Player, error) {
	defer r.cache.DeletePrefix(ctx, playerPrefix)
	return r.next.Update(ctx, item)
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	defer r.cache.DeletePrefix(ctx, playerPrefix)
	return r.next.Delete(ctx, id)
}
