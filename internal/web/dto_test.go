package web

import (
	"testing"
	"time"

	"volunteerhub/internal/domain"
)

func Test_newEventView(t *testing.T) {
	tests := []struct {
		name  string
		event domain.Event
		want  eventView
	}{
		{
			name: "full record",
			event: domain.Event{
				ID:        "1",
				Name:      "Beach Cleanup",
				Location:  "Galveston",
				Category:  "Environment",
				Urgency:   "High",
				Skills:    []string{"Lifting", "Teamwork"},
				Status:    "Upcoming",
				StartTime: time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC),
			},
			want: eventView{
				ID:       "1",
				Name:     "Beach Cleanup",
				Location: "Galveston",
				Category: "Environment",
				Date:     "Jun 1, 2024",
				Time:     "9:30 AM",
				Urgency:  "High",
				Skills:   "Lifting, Teamwork",
				Status:   "Upcoming",
				Enrolled: true,
			},
		},
		{
			name:  "missing fields fall back to display defaults",
			event: domain.Event{ID: "2"},
			want: eventView{
				ID:       "2",
				Name:     "Unknown",
				Location: "TBD",
				Category: "Unknown",
				Date:     "TBD",
				Time:     "TBD",
				Urgency:  "Unknown",
				Skills:   "",
				Status:   "Open",
				Enrolled: false,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := newEventView(tt.event); got != tt.want {
				t.Errorf("newEventView() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func Test_newHistoryViews(t *testing.T) {
	got := newHistoryViews([]domain.HistoryEntry{
		{EventName: "Cleanup", Location: "Austin", Date: time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), Status: "Completed"},
		{},
	})
	if len(got) != 2 {
		t.Fatalf("got %d views, want 2", len(got))
	}
	if got[0].Date != "Jan 5, 2024" || got[0].Status != "Completed" {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].EventName != "Unknown" || got[1].Location != "TBD" || got[1].Date != "TBD" || got[1].Status != "Unknown" {
		t.Errorf("empty entry should render defaults, got %+v", got[1])
	}
}

func Test_newNotificationViews(t *testing.T) {
	got := newNotificationViews([]domain.Notification{
		{Message: "hello", CreatedAt: time.Date(2024, time.May, 1, 14, 0, 0, 0, time.UTC), Source: domain.SourceRequest, Read: true},
		{Message: "undated"},
	})
	if got[0].When != "May 1, 2024 2:00 PM" || got[0].Source != "request" || !got[0].Read {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].When != "TBD" {
		t.Errorf("missing timestamp should render TBD, got %q", got[1].When)
	}
}
