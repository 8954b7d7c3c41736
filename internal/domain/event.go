package domain

import "time"

// StatusUpcoming is the enrollment status the backend reports for events
// the volunteer is signed up for.
const StatusUpcoming = "Upcoming"

// Event is the canonical event record. The backend owns it; the client
// keeps a read-mostly cached copy per session, patched on enroll.
type Event struct {
	ID          string
	Name        string
	Location    string
	Category    string
	Description string
	// StartTime is zero when the backend sent an unparseable timestamp.
	// Such events never match a date window but still list under "any".
	StartTime time.Time
	EndTime   time.Time
	Urgency   string
	Skills    []string
	Status    string
}

// Enrolled reports whether the volunteer is signed up for the event.
func (e Event) Enrolled() bool {
	return e.Status == StatusUpcoming
}

// Match is a backend-computed ranking of an event's fit for a volunteer.
// Immutable from this side.
type Match struct {
	EventID       string
	Title         string
	StartTime     time.Time
	EndTime       time.Time
	Location      string
	Score         int
	MatchedSkills []string
	Description   string
}

// CalendarEntry is a single day cell of the dashboard calendar.
type CalendarEntry struct {
	Date      time.Time
	EventID   string
	EventName string
}

// HistoryEntry is one row of the volunteer's participation history.
type HistoryEntry struct {
	EventID   string
	EventName string
	Location  string
	Date      time.Time
	Status    string
}
