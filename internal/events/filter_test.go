package events

import (
	"reflect"
	"strconv"
	"testing"
	"time"

	"volunteerhub/internal/domain"
)

func TestApply(t *testing.T) {
	now := time.Date(2024, time.March, 13, 12, 0, 0, 0, time.UTC) // a Wednesday
	beachCleanup := domain.Event{
		ID:        "1",
		Name:      "Beach Cleanup",
		Location:  "Galveston",
		Urgency:   "High",
		Skills:    []string{"Lifting", "Teamwork"},
		StartTime: now.Add(24 * time.Hour),
	}
	foodDrive := domain.Event{
		ID:        "2",
		Name:      "Food Drive",
		Location:  "Houston",
		Urgency:   "Low",
		Skills:    []string{"Organizing"},
		StartTime: now.Add(-48 * time.Hour),
	}
	noDate := domain.Event{
		ID:       "3",
		Name:     "Park Painting",
		Location: "Houston",
		Urgency:  "Medium",
	}
	all := []domain.Event{beachCleanup, foodDrive, noDate}

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "no filter keeps order",
			filter: Filter{},
			want:   []string{"1", "2", "3"},
		},
		{
			name:   "search matches name case-insensitive",
			filter: Filter{Search: "beach"},
			want:   []string{"1"},
		},
		{
			name:   "search matches skills",
			filter: Filter{Search: "organizing"},
			want:   []string{"2"},
		},
		{
			name:   "search matches location",
			filter: Filter{Search: "houston"},
			want:   []string{"2", "3"},
		},
		{
			name:   "location filter",
			filter: Filter{Location: "galveston"},
			want:   []string{"1"},
		},
		{
			name:   "urgency all is a no-op",
			filter: Filter{Urgency: UrgencyAll},
			want:   []string{"1", "2", "3"},
		},
		{
			name:   "urgency exact",
			filter: Filter{Urgency: "high"},
			want:   []string{"1"},
		},
		{
			name:   "upcoming excludes past and undated",
			filter: Filter{Date: DateUpcoming},
			want:   []string{"1"},
		},
		{
			name:   "combined filters AND together",
			filter: Filter{Search: "houston", Urgency: "Low"},
			want:   []string{"2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(all, tt.filter, now)
			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("Apply() ids = %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestApplyDateWindows(t *testing.T) {
	// Wednesday noon, so the week runs Sunday the 10th through Saturday the 16th
	now := time.Date(2024, time.March, 13, 12, 0, 0, 0, time.UTC)
	event := func(start time.Time) domain.Event {
		return domain.Event{ID: "e", StartTime: start}
	}
	tests := []struct {
		name   string
		window string
		start  time.Time
		want   bool
	}{
		{
			name:   "today matches same calendar day",
			window: DateToday,
			start:  time.Date(2024, time.March, 13, 23, 59, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "today excludes tomorrow midnight",
			window: DateToday,
			start:  time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "week start sunday midnight is included",
			window: DateThisWeek,
			start:  time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "moment before week start is excluded",
			window: DateThisWeek,
			start:  time.Date(2024, time.March, 9, 23, 59, 59, 0, time.UTC),
			want:   false,
		},
		{
			name:   "saturday night is included",
			window: DateThisWeek,
			start:  time.Date(2024, time.March, 16, 23, 59, 59, 0, time.UTC),
			want:   true,
		},
		{
			name:   "next sunday midnight is excluded",
			window: DateThisWeek,
			start:  time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "upcoming excludes now itself",
			window: DateUpcoming,
			start:  now,
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply([]domain.Event{event(tt.start)}, Filter{Date: tt.window}, now)
			if (len(got) == 1) != tt.want {
				t.Errorf("Apply() matched = %v, want %v", len(got) == 1, tt.want)
			}
		})
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want time.Time
	}{
		{
			name: "wednesday rolls back to sunday",
			t:    time.Date(2024, time.March, 13, 12, 30, 0, 0, time.UTC),
			want: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday is its own week start",
			t:    time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "rolls back across month boundary",
			t:    time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC),
			want: time.Date(2024, time.April, 28, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.t); !got.Equal(tt.want) {
				t.Errorf("WeekStart() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	list := func(n int) []domain.Event {
		events := make([]domain.Event, 0, n)
		for i := 0; i < n; i++ {
			events = append(events, domain.Event{ID: strconv.Itoa(i + 1)})
		}
		return events
	}
	tests := []struct {
		name       string
		total      int
		number     int
		wantLen    int
		wantNumber int
		wantPages  int
		wantFrom   int
		wantTo     int
	}{
		{
			name:       "empty list yields one empty page",
			total:      0,
			number:     1,
			wantLen:    0,
			wantNumber: 1,
			wantPages:  1,
			wantFrom:   0,
			wantTo:     0,
		},
		{
			name:       "exactly one page",
			total:      9,
			number:     1,
			wantLen:    9,
			wantNumber: 1,
			wantPages:  1,
			wantFrom:   1,
			wantTo:     9,
		},
		{
			name:       "tenth item starts page two",
			total:      10,
			number:     2,
			wantLen:    1,
			wantNumber: 2,
			wantPages:  2,
			wantFrom:   10,
			wantTo:     10,
		},
		{
			name:       "out of range clamps to last page",
			total:      10,
			number:     99,
			wantLen:    1,
			wantNumber: 2,
			wantPages:  2,
			wantFrom:   10,
			wantTo:     10,
		},
		{
			name:       "zero clamps to first page",
			total:      20,
			number:     0,
			wantLen:    9,
			wantNumber: 1,
			wantPages:  3,
			wantFrom:   1,
			wantTo:     9,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(list(tt.total), tt.number)
			if len(got.Items) != tt.wantLen {
				t.Errorf("len(Items) = %d, want %d", len(got.Items), tt.wantLen)
			}
			if got.Number != tt.wantNumber {
				t.Errorf("Number = %d, want %d", got.Number, tt.wantNumber)
			}
			if got.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.wantPages)
			}
			if got.From != tt.wantFrom || got.To != tt.wantTo {
				t.Errorf("From-To = %d-%d, want %d-%d", got.From, got.To, tt.wantFrom, tt.wantTo)
			}
			if got.Total != tt.total {
				t.Errorf("Total = %d, want %d", got.Total, tt.total)
			}
		})
	}
}

func TestPaginatePartitions(t *testing.T) {
	events := make([]domain.Event, 0, 25)
	for i := 0; i < 25; i++ {
		events = append(events, domain.Event{ID: strconv.Itoa(i)})
	}
	var seen []string
	page := Paginate(events, 1)
	for {
		for _, e := range page.Items {
			seen = append(seen, e.ID)
		}
		if !page.HasNext() {
			break
		}
		page = Paginate(events, page.Next())
	}
	if len(seen) != len(events) {
		t.Fatalf("walking all pages visited %d items, want %d", len(seen), len(events))
	}
	for i, id := range seen {
		if id != events[i].ID {
			t.Fatalf("item %d = %s, want %s", i, id, events[i].ID)
		}
	}
}

func TestUrgencies(t *testing.T) {
	got := Urgencies([]domain.Event{
		{Urgency: "Low"},
		{Urgency: "High"},
		{Urgency: "Low"},
		{Urgency: ""},
		{Urgency: "Medium"},
	})
	want := []string{"High", "Low", "Medium"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Urgencies() = %v, want %v", got, want)
	}
}
