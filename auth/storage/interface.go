package storage

import (
	"context"

	"github.com/google/uuid"

	"volunteerhub/auth/users"
)

// SessionStorage persists browser sessions, their flash messages and their
// one-shot handoff tokens.
//
// Handoff semantics: PutHandoff keeps at most one pending token per
// session and kind (a second write replaces the first). ConsumeHandoff is
// destructive: the token is deleted in the same transaction that reads it,
// so a token is observed at most once.
type SessionStorage interface {
	Create(ctx context.Context, session users.Session) error
	Get(ctx context.Context, id uuid.UUID) (users.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error

	PushFlash(ctx context.Context, sessionID uuid.UUID, message string) error
	PopFlashes(ctx context.Context, sessionID uuid.UUID) ([]string, error)

	PutHandoff(ctx context.Context, sessionID uuid.UUID, kind, value string) error
	ConsumeHandoff(ctx context.Context, sessionID uuid.UUID, kind string) (string, bool, error)
}
