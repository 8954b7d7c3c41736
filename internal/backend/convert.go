package backend

import (
	"bytes"
	"encoding/json"
	"time"

	"volunteerhub/internal/domain"
)

// The backend is loose about wire shapes: ids arrive as numbers or strings,
// timestamps in several formats, read flags as 0/1 or booleans, and some
// fields under two or three different names. Everything is coalesced here,
// once, into the canonical domain shapes; fallbacks get logged instead of
// silently passing through.

// flexID accepts a JSON string or number.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// flexBool accepts true/false, 0/1 and the strings "true"/"false".
type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil
	case bytes.Equal(data, []byte("true")), bytes.Equal(data, []byte(`"true"`)), bytes.Equal(data, []byte("1")):
		*f = true
	default:
		*f = false
	}
	return nil
}

var timeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// flexTime parses any of the timestamp formats the backend has been seen
// sending. Unparseable values stay zero rather than failing the record.
type flexTime struct {
	time.Time
}

func (f *flexTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// numeric unix timestamp
		var n int64
		if err := json.Unmarshal(data, &n); err == nil {
			f.Time = time.Unix(n, 0)
		}
		return nil
	}
	for _, format := range timeFormats {
		t, err := time.Parse(format, s)
		if err == nil {
			f.Time = t
			return nil
		}
	}
	return nil
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

type rawEvent struct {
	ID             flexID   `json:"id"`
	EventID        flexID   `json:"event_id"`
	EventName      string   `json:"event_name"`
	Name           string   `json:"name"`
	Location       string   `json:"event_location"`
	AltLocation    string   `json:"location"`
	Category       string   `json:"event_category"`
	Description    string   `json:"event_description"`
	StartTime      flexTime `json:"start_time"`
	EndTime        flexTime `json:"end_time"`
	Urgency        string   `json:"urgency"`
	Skills         []string `json:"skills"`
	RequiredSkills []string `json:"required_skills"`
	Status         string   `json:"event_status"`
}

func (c *Client) convertEvent(raw rawEvent) domain.Event {
	id := coalesce(string(raw.EventID), string(raw.ID))
	if id == "" {
		c.log.Warn("event record without id")
	}
	skills := raw.Skills
	if len(skills) == 0 {
		skills = raw.RequiredSkills
	}
	return domain.Event{
		ID:          id,
		Name:        coalesce(raw.EventName, raw.Name),
		Location:    coalesce(raw.Location, raw.AltLocation),
		Category:    raw.Category,
		Description: raw.Description,
		StartTime:   raw.StartTime.Time,
		EndTime:     raw.EndTime.Time,
		Urgency:     raw.Urgency,
		Skills:      skills,
		Status:      raw.Status,
	}
}

func (c *Client) convertEvents(raw []rawEvent) []domain.Event {
	events := make([]domain.Event, 0, len(raw))
	for _, r := range raw {
		events = append(events, c.convertEvent(r))
	}
	return events
}

type rawMatch struct {
	ID             flexID   `json:"id"`
	EventID        flexID   `json:"event_id"`
	Title          string   `json:"title"`
	EventName      string   `json:"event_name"`
	StartTime      flexTime `json:"startTime"`
	StartTimeSnake flexTime `json:"start_time"`
	EndTime        flexTime `json:"endTime"`
	EndTimeSnake   flexTime `json:"end_time"`
	Location       string   `json:"location"`
	EventLocation  string   `json:"event_location"`
	Score          int      `json:"matchScore"`
	MatchedSkills  []string `json:"matchedSkills"`
	Description    string   `json:"description"`
}

func (c *Client) convertMatch(raw rawMatch) domain.Match {
	start := raw.StartTime.Time
	if start.IsZero() {
		start = raw.StartTimeSnake.Time
	}
	end := raw.EndTime.Time
	if end.IsZero() {
		end = raw.EndTimeSnake.Time
	}
	return domain.Match{
		EventID:       coalesce(string(raw.ID), string(raw.EventID)),
		Title:         coalesce(raw.Title, raw.EventName),
		StartTime:     start,
		EndTime:       end,
		Location:      coalesce(raw.Location, raw.EventLocation),
		Score:         raw.Score,
		MatchedSkills: raw.MatchedSkills,
		Description:   raw.Description,
	}
}

type rawNotification struct {
	ID        flexID   `json:"id"`
	Message   string   `json:"message"`
	CreatedAt flexTime `json:"created_at"`
	IsRead    *int     `json:"is_read"`
	Read      *bool    `json:"read"`
}

func (c *Client) convertNotification(raw rawNotification, source domain.NotificationSource) domain.Notification {
	// two observed shapes: numeric is_read or boolean read; unread wins
	// when neither is present
	read := false
	switch {
	case raw.IsRead != nil:
		read = *raw.IsRead != 0
	case raw.Read != nil:
		read = *raw.Read
	default:
		c.log.WithField("id", string(raw.ID)).Debug("notification without read flag")
	}
	if raw.CreatedAt.IsZero() {
		c.log.WithField("id", string(raw.ID)).Debug("notification without created_at, sorting last")
	}
	return domain.Notification{
		ID:        string(raw.ID),
		Message:   raw.Message,
		CreatedAt: raw.CreatedAt.Time,
		Read:      read,
		Source:    source,
	}
}

type rawCalendarEntry struct {
	Date      flexTime `json:"date"`
	EventID   flexID   `json:"event_id"`
	EventName string   `json:"event_name"`
}

func convertCalendar(raw []rawCalendarEntry) []domain.CalendarEntry {
	entries := make([]domain.CalendarEntry, 0, len(raw))
	for _, r := range raw {
		entries = append(entries, domain.CalendarEntry{
			Date:      r.Date.Time,
			EventID:   string(r.EventID),
			EventName: r.EventName,
		})
	}
	return entries
}

type rawHistoryEntry struct {
	EventID       flexID   `json:"event_id"`
	EventName     string   `json:"event_name"`
	Location      string   `json:"event_location"`
	AltLocation   string   `json:"location"`
	Date          flexTime `json:"date"`
	StartTime     flexTime `json:"start_time"`
	Status        string   `json:"status"`
	Participation string   `json:"participation_status"`
}

func convertHistory(raw []rawHistoryEntry) []domain.HistoryEntry {
	entries := make([]domain.HistoryEntry, 0, len(raw))
	for _, r := range raw {
		date := r.Date.Time
		if date.IsZero() {
			date = r.StartTime.Time
		}
		entries = append(entries, domain.HistoryEntry{
			EventID:   string(r.EventID),
			EventName: r.EventName,
			Location:  coalesce(r.Location, r.AltLocation),
			Date:      date,
			Status:    coalesce(r.Status, r.Participation),
		})
	}
	return entries
}
