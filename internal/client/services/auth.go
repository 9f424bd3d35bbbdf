package services

import (
	"context"
	"strings"

	"github.com/cforge/cforge/internal/client/api"
	"github.com/cforge/cforge/internal/client/storage"
)

// AuthService verifies a handle against the platform and establishes the
// session. There is no password: the handle is the sole credential.
type AuthService interface {
	// SignIn verifies the handle via user.info and persists it as the
	// session handle. Returns api.ErrHandleNotFound for unknown handles.
	SignIn(ctx context.Context, handle string) (*storage.Session, error)

	// Current returns the persisted session, or nil when signed out.
	Current(ctx context.Context) (*storage.Session, error)
}

type authService struct {
	client   api.Client
	sessions *storage.SessionStore
}

func NewAuthService(client api.Client, sessions *storage.SessionStore) AuthService {
	return &authService{client: client, sessions: sessions}
}

func (a *authService) SignIn(ctx context.Context, handle string) (*storage.Session, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, api.ErrHandleNotFound
	}

	// the server resolves handles case-insensitively; keep its spelling
	profile, err := a.client.UserInfo(ctx, handle)
	if err != nil {
		return nil, err
	}

	sess := storage.Session{Handle: profile.Handle}
	if err := a.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (a *authService) Current(ctx context.Context) (*storage.Session, error) {
	return a.sessions.Load(ctx)
}
