package backend

import (
	"context"

	"volunteerhub/internal/domain"
)

// NextEvent returns the volunteer's next upcoming event, or nil when the
// backend has none for them.
func (c *Client) NextEvent(ctx context.Context, userID string) (*domain.Event, error) {
	var resp struct {
		NextEvent []rawEvent `json:"nextEvent"`
	}
	err := c.get(ctx, "/volunteer-dashboard/"+userID, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.NextEvent) == 0 {
		return nil, nil
	}
	event := c.convertEvent(resp.NextEvent[0])
	return &event, nil
}

func (c *Client) Calendar(ctx context.Context, userID string) ([]domain.CalendarEntry, error) {
	var resp struct {
		CalendarData []rawCalendarEntry `json:"calendarData"`
	}
	err := c.get(ctx, "/volunteer-dashboard/calendar/"+userID, &resp)
	if err != nil {
		return nil, err
	}
	return convertCalendar(resp.CalendarData), nil
}

func (c *Client) EnrolledEvents(ctx context.Context, userID string) ([]domain.Event, error) {
	var resp struct {
		Events []rawEvent `json:"events"`
	}
	err := c.get(ctx, "/volunteer-dashboard/enrolled-events/"+userID, &resp)
	if err != nil {
		return nil, err
	}
	return c.convertEvents(resp.Events), nil
}

func (c *Client) BrowseEvents(ctx context.Context, userID string) ([]domain.Event, error) {
	var resp struct {
		Events []rawEvent `json:"events"`
	}
	err := c.get(ctx, "/volunteer-dashboard/browse-events/"+userID, &resp)
	if err != nil {
		return nil, err
	}
	return c.convertEvents(resp.Events), nil
}

// Enroll signs the volunteer up for an event. Callers must not assume
// success without this returning nil; double enrollment is the backend's
// call to reject.
func (c *Client) Enroll(ctx context.Context, userID, eventID string) error {
	return c.post(ctx, "/volunteer-dashboard/browse-enroll/"+userID+"/"+eventID, nil, nil)
}

// Matches runs the backend matching query for the volunteer.
func (c *Client) Matches(ctx context.Context, userID string) ([]domain.Match, error) {
	var resp []rawMatch
	err := c.get(ctx, "/api/match/"+userID, &resp)
	if err != nil {
		return nil, err
	}
	matches := make([]domain.Match, 0, len(resp))
	for _, r := range resp {
		matches = append(matches, c.convertMatch(r))
	}
	return matches, nil
}

func (c *Client) History(ctx context.Context, userID string) ([]domain.HistoryEntry, error) {
	var resp struct {
		VolunteerHistory []rawHistoryEntry `json:"volunteer_history"`
	}
	err := c.get(ctx, "/history/"+userID, &resp)
	if err != nil {
		return nil, err
	}
	return convertHistory(resp.VolunteerHistory), nil
}
