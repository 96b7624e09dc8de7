package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/user"
	"github.com/riskibarqy/cantera/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cantera/internal/platform/cache"
	"github.com/stretchr/testify/require"
)

type fixedIDs struct {
	next int
}

func (g *fixedIDs) NewID() (string, error) {
	g.next++
	return fmt.Sprintf("token-%d", g.next), nil
}

func TestSessionService_LoginVerifyLogout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teamID := int64(1)
	users := memory.NewUserRepository([]user.User{{ID: 7, Username: "marta", Name: "Marta", TeamID: &teamID}})
	clock := fixtureNow
	store := cache.NewStore(0, cache.WithClock(func() time.Time { return clock }))
	svc := NewSessionService(users, store, &fixedIDs{}, time.Hour)
	svc.now = func() time.Time { return clock }

	session, err := svc.Login(ctx, "  Marta ")
	require.NoError(t, err)
	require.Equal(t, "token-1", session.Token)
	require.Equal(t, int64(7), session.Principal.UserID)
	require.Equal(t, fixtureNow.Add(time.Hour), session.Principal.ExpiresAt)

	principal, err := svc.Verify(ctx, session.Token)
	require.NoError(t, err)
	require.Equal(t, "marta", principal.Username)
	require.Equal(t, &teamID, principal.TeamID)

	svc.Logout(ctx, session.Token)
	_, err = svc.Verify(ctx, session.Token)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestSessionService_Expiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users := memory.NewUserRepository([]user.User{{ID: 1, Username: "jorge"}})
	clock := fixtureNow
	store := cache.NewStore(0, cache.WithClock(func() time.Time { return clock }))
	svc := NewSessionService(users, store, &fixedIDs{}, 30*time.Minute)

	session, err := svc.Login(ctx, "jorge")
	require.NoError(t, err)

	clock = clock.Add(31 * time.Minute)
	_, err = svc.Verify(ctx, session.Token)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestSessionService_LoginErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewSessionService(memory.NewUserRepository(nil), cache.NewStore(0), &fixedIDs{}, time.Hour)

	_, err := svc.Login(ctx, "")
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Login(ctx, "nadie")
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.Verify(ctx, "")
	require.ErrorIs(t, err, ErrUnauthorized)
}
