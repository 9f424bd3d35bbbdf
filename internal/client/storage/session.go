package storage

import (
	"context"
	"fmt"

	"github.com/cforge/cforge/internal/client/repositories/metadata"
)

// sessionKey is the fixed metadata key the signed-in handle lives under.
const sessionKey = "session_handle"

// Session identifies the signed-in user. It is created once, after handle
// verification, and passed explicitly to the components that need it; there
// is no ambient global. At most one session exists per install.
type Session struct {
	Handle string
}

// SessionStore persists the session handle across restarts.
type SessionStore struct {
	repo metadata.Repository
}

func NewSessionStore(repo metadata.Repository) *SessionStore {
	return &SessionStore{repo: repo}
}

// Load returns the persisted session, or nil when nobody has signed in yet.
func (s *SessionStore) Load(ctx context.Context) (*Session, error) {
	data, err := s.repo.Get(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &Session{Handle: string(data)}, nil
}

// Save persists the session handle.
func (s *SessionStore) Save(ctx context.Context, sess Session) error {
	if err := s.repo.Set(ctx, sessionKey, []byte(sess.Handle)); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}
