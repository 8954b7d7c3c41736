package domain

import "time"

// NotificationSource tags which feed a notification came from. It only
// matters for ordering the combined display.
type NotificationSource string

const (
	SourceGeneral NotificationSource = "general"
	SourceRequest NotificationSource = "request"
)

type Notification struct {
	ID      string
	Message string
	// CreatedAt is zero when the backend sent no usable timestamp; zero
	// sorts last in the combined feed.
	CreatedAt time.Time
	Read      bool
	Source    NotificationSource
}

// Dashboard is one user's loaded dashboard snapshot. Each field is filled
// by its own fetch; a failed fetch leaves its field empty.
type Dashboard struct {
	NextEvent     *Event
	Suggested     []Match
	Notifications []Notification
	Calendar      []CalendarEntry
	Enrolled      []Event
	Browse        []Event
}
