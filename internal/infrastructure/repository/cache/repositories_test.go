package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/player"
	"github.com/riskibarqy/cantera/internal/domain/team"
	"github.com/riskibarqy/cantera/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/cantera/internal/platform/cache"
	"github.com/stretchr/testify/require"
)

type countingPlayers struct {
	player.Repository
	lists int
	gets  int
}

func (c *countingPlayers) List(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	c.lists++
	return c.Repository.List(ctx, filter)
}

func (c *countingPlayers) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	c.gets++
	return c.Repository.GetByID(ctx, id)
}

func TestPlayerRepository_ReadThroughAndInvalidate(t *testing.T) {
	ctx := context.Background()
	club := memory.SeedClub(time.Now(), time.UTC)
	inner := &countingPlayers{Repository: memory.NewPlayerRepository(club.Players)}
	repo := NewPlayerRepository(inner, basecache.NewStore(time.Minute))

	teamID := memory.SeedTeamAlevinID
	first, err := repo.List(ctx, player.ListFilter{TeamID: &teamID})
	require.NoError(t, err)
	second, err := repo.List(ctx, player.ListFilter{TeamID: &teamID})
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, inner.lists)

	second[0].Name = "mutated"
	third, err := repo.List(ctx, player.ListFilter{TeamID: &teamID})
	require.NoError(t, err)
	require.NotEqual(t, "mutated", third[0].Name, "cached slice must not be shared")

	_, err = repo.Create(ctx, player.Player{TeamID: teamID, Name: "Nueva"})
	require.NoError(t, err)

	after, err := repo.List(ctx, player.ListFilter{TeamID: &teamID})
	require.NoError(t, err)
	require.Len(t, after, len(first)+1)
	require.Equal(t, 2, inner.lists)
}

func TestPlayerRepository_CachesMisses(t *testing.T) {
	ctx := context.Background()
	inner := &countingPlayers{Repository: memory.NewPlayerRepository(nil)}
	repo := NewPlayerRepository(inner, basecache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		_, exists, err := repo.GetByID(ctx, 404)
		require.NoError(t, err)
		require.False(t, exists)
	}
	require.Equal(t, 1, inner.gets)
}

func TestTeamRepository_FilterKeysAreSeparate(t *testing.T) {
	ctx := context.Background()
	club := memory.SeedClub(time.Now(), time.UTC)
	repo := NewTeamRepository(memory.NewTeamRepository(club.Teams), basecache.NewStore(time.Minute))

	seasonID := memory.SeedSeasonID
	other := int64(99)
	all, err := repo.List(ctx, team.ListFilter{})
	require.NoError(t, err)
	inSeason, err := repo.List(ctx, team.ListFilter{SeasonID: &seasonID})
	require.NoError(t, err)
	none, err := repo.List(ctx, team.ListFilter{SeasonID: &other})
	require.NoError(t, err)

	require.Len(t, all, 2)
	require.Len(t, inSeason, 2)
	require.Empty(t, none)

	deleted, err := repo.Delete(ctx, memory.SeedTeamInfantilID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, exists, err := repo.GetByID(ctx, memory.SeedTeamInfantilID)
	require.NoError(t, err)
	require.False(t, exists)
}
