package events

import (
	"sort"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"volunteerhub/internal/domain"
	"volunteerhub/internal/normalize"
)

// PageSize is the fixed number of event cards per page.
const PageSize = 9

const (
	DateAny      = "any"
	DateUpcoming = "upcoming"
	DateToday    = "today"
	DateThisWeek = "this_week"

	UrgencyAll = "all"
)

// Filter is the browse-events filter state. Empty values (and "all"/"any"
// for the select filters) are no-ops for their criterion; active criteria
// compose with AND.
type Filter struct {
	Search   string
	Location string
	Urgency  string
	Date     string
}

// Apply returns the ordered subsequence of list matching every active
// criterion. The source slice is never mutated. Date windows are computed
// against now in its own location.
func Apply(list []domain.Event, f Filter, now time.Time) []domain.Event {
	filtered := make([]domain.Event, 0, len(list))
	for _, event := range list {
		if f.Search != "" && !matchesSearch(event, f.Search) {
			continue
		}
		if f.Location != "" && !normalize.Contains(event.Location, f.Location) {
			continue
		}
		if f.Urgency != "" && f.Urgency != UrgencyAll && !normalize.Equal(event.Urgency, f.Urgency) {
			continue
		}
		if !matchesDate(event, f.Date, now) {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered
}

func matchesSearch(event domain.Event, term string) bool {
	return normalize.Contains(event.Name, term) ||
		normalize.Contains(strings.Join(event.Skills, ", "), term) ||
		normalize.Contains(event.Location, term)
}

func matchesDate(event domain.Event, window string, now time.Time) bool {
	if window == "" || window == DateAny {
		return true
	}
	// events with an unparseable start time never match a date window
	if event.StartTime.IsZero() {
		return false
	}
	start := event.StartTime
	switch window {
	case DateUpcoming:
		return start.After(now)
	case DateToday:
		y1, m1, d1 := start.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case DateThisWeek:
		weekStart := WeekStart(now)
		weekEnd := weekStart.AddDate(0, 0, 7)
		return !start.Before(weekStart) && start.Before(weekEnd)
	}
	return true
}

// WeekStart returns the most recent Sunday at local midnight relative to t.
func WeekStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()-int(t.Weekday()), 0, 0, 0, 0, t.Location())
}

// Page is one fixed-size slice of a filtered list plus the metadata the
// pagination controls need.
type Page struct {
	Items      []domain.Event
	Number     int
	TotalPages int
	// From/To are the 1-based display range, "0 to 0 of 0" when empty.
	From  int
	To    int
	Total int
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.TotalPages }
func (p Page) Prev() int     { return p.Number - 1 }
func (p Page) Next() int     { return p.Number + 1 }

// Paginate slices the filtered list into page number. Out-of-range numbers
// clamp into [1, TotalPages]; an empty list yields one empty page.
func Paginate(list []domain.Event, number int) Page {
	totalPages := (len(list) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}
	start := (number - 1) * PageSize
	end := start + PageSize
	if end > len(list) {
		end = len(list)
	}
	page := Page{
		Items:      list[start:end],
		Number:     number,
		TotalPages: totalPages,
		To:         end,
		Total:      len(list),
	}
	if len(list) > 0 {
		page.From = start + 1
	}
	return page
}

// Urgencies enumerates the urgency labels observed in list, sorted, for the
// filter facet. Labels are free-form backend data, not an enum.
func Urgencies(list []domain.Event) []string {
	set := mapset.NewSet[string]()
	for _, event := range list {
		if event.Urgency != "" {
			set.Add(event.Urgency)
		}
	}
	urgencies := set.ToSlice()
	sort.Strings(urgencies)
	return urgencies
}
