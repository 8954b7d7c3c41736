package web

import (
	"strings"
	"time"

	"volunteerhub/internal/domain"
)

// View models keep the templates dumb: every optional backend field is
// already coalesced to a display default here.

type eventView struct {
	ID          string
	Name        string
	Location    string
	Category    string
	Description string
	Date        string
	Time        string
	Urgency     string
	Skills      string
	Status      string
	Enrolled    bool
}

func newEventView(e domain.Event) eventView {
	return eventView{
		ID:          e.ID,
		Name:        fallback(e.Name, "Unknown"),
		Location:    fallback(e.Location, "TBD"),
		Category:    fallback(e.Category, "Unknown"),
		Description: e.Description,
		Date:        formatDate(e.StartTime),
		Time:        formatTime(e.StartTime),
		Urgency:     fallback(e.Urgency, "Unknown"),
		Skills:      strings.Join(e.Skills, ", "),
		Status:      fallback(e.Status, "Open"),
		Enrolled:    e.Enrolled(),
	}
}

func newEventViews(list []domain.Event) []eventView {
	views := make([]eventView, 0, len(list))
	for _, e := range list {
		views = append(views, newEventView(e))
	}
	return views
}

type matchView struct {
	EventID  string
	Title    string
	When     string
	Location string
	Skills   string
	Score    int
}

func newMatchViews(matches []domain.Match) []matchView {
	views := make([]matchView, 0, len(matches))
	for _, m := range matches {
		views = append(views, matchView{
			EventID:  m.EventID,
			Title:    fallback(m.Title, "Event"),
			When:     formatDateTime(m.StartTime),
			Location: fallback(m.Location, "TBD"),
			Skills:   strings.Join(m.MatchedSkills, ", "),
			Score:    m.Score,
		})
	}
	return views
}

type notificationView struct {
	Message string
	When    string
	Source  string
	Read    bool
}

func newNotificationViews(notifications []domain.Notification) []notificationView {
	views := make([]notificationView, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, notificationView{
			Message: n.Message,
			When:    formatDateTime(n.CreatedAt),
			Source:  string(n.Source),
			Read:    n.Read,
		})
	}
	return views
}

type historyView struct {
	EventName string
	Location  string
	Date      string
	Status    string
}

func newHistoryViews(entries []domain.HistoryEntry) []historyView {
	views := make([]historyView, 0, len(entries))
	for _, h := range entries {
		views = append(views, historyView{
			EventName: fallback(h.EventName, "Unknown"),
			Location:  fallback(h.Location, "TBD"),
			Date:      formatDate(h.Date),
			Status:    fallback(h.Status, "Unknown"),
		})
	}
	return views
}

type calendarEntryView struct {
	Date      string
	EventName string
}

func newCalendarViews(entries []domain.CalendarEntry) []calendarEntryView {
	views := make([]calendarEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, calendarEntryView{
			Date:      formatDate(entry.Date),
			EventName: fallback(entry.EventName, "Unknown"),
		})
	}
	return views
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return t.Format("Jan 2, 2006")
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return t.Format("3:04 PM")
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}
