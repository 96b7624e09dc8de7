package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cantera/internal/domain/user"
	"github.com/riskibarqy/cantera/internal/platform/cache"
	"github.com/riskibarqy/cantera/internal/platform/id"
)

const sessionKeyPrefix = "session:"

// Principal is the signed-in coach attached to a request.
type Principal struct {
	UserID    int64
	Username  string
	Name      string
	TeamID    *int64
	ExpiresAt time.Time
}

// Session is an issued token and the principal it resolves to.
type Session struct {
	Token     string
	Principal Principal
}

// SessionService signs coaches in by username and resolves opaque tokens.
type SessionService struct {
	userRepo user.Repository
	store    *cache.Store
	ids      id.Generator
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionService(userRepo user.Repository, store *cache.Store, ids id.Generator, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &SessionService{
		userRepo: userRepo,
		store:    store,
		ids:      ids,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *SessionService) Login(ctx context.Context, username string) (Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SessionService.Login")
	defer span.End()

	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return Session{}, fmt.Errorf("%w: el usuario es obligatorio", ErrInvalidInput)
	}
	u, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return Session{}, fmt.Errorf("get user by username: %w", err)
	}
	if !exists {
		return Session{}, fmt.Errorf("%w: usuario desconocido", ErrUnauthorized)
	}

	token, err := s.ids.NewID()
	if err != nil {
		return Session{}, fmt.Errorf("generate session token: %w", err)
	}
	principal := Principal{
		UserID:    u.ID,
		Username:  u.Username,
		Name:      u.Name,
		TeamID:    u.TeamID,
		ExpiresAt: s.now().Add(s.ttl),
	}
	s.store.SetWithTTL(ctx, sessionKeyPrefix+token, principal, s.ttl)

	return Session{Token: token, Principal: principal}, nil
}

// Verify resolves a token into its principal.
func (s *SessionService) Verify(ctx context.Context, token string) (Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Principal{}, fmt.Errorf("%w: falta el token de sesión", ErrUnauthorized)
	}
	value, ok := s.store.Get(ctx, sessionKeyPrefix+token)
	if !ok {
		return Principal{}, fmt.Errorf("%w: sesión caducada o inexistente", ErrUnauthorized)
	}
	principal, ok := value.(Principal)
	if !ok {
		return Principal{}, fmt.Errorf("%w: sesión inválida", ErrUnauthorized)
	}
	return principal, nil
}

func (s *SessionService) Logout(ctx context.Context, token string) {
	_, span := startUsecaseSpan(ctx, "usecase.SessionService.Logout")
	defer span.End()

	s.store.Delete(ctx, sessionKeyPrefix+strings.TrimSpace(token))
}
