package model

import "time"

type EventType string

const (
	NewNotification EventType = "new_notification"
)

type User struct {
	ID        int64
	FirstName string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time

	// VolunteerID links the chat to a backend volunteer account, empty
	// until /link is used.
	VolunteerID string

	Subscribed     bool
	LastNotifiedAt time.Time
}

func (u User) Linked() bool {
	return u.VolunteerID != ""
}
