package users

import (
	"time"

	"github.com/google/uuid"
)

// Handoff token kinds. A token is written by one page, consumed exactly
// once by another, then gone.
const (
	HandoffOpenEvent = "open_event"
)

// Session is one logged-in browser session. The descriptor inside is
// whatever the backend reported at login; it is trusted as given.
type Session struct {
	ID        uuid.UUID
	User      User
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
