package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"volunteerhub/internal/backend"
	"volunteerhub/internal/cache/mem"
	"volunteerhub/internal/domain"
)

func testService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return New(backend.New(server.URL, log), mem.New(), log)
}

func okHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/volunteer-dashboard/calendar/"):
			w.Write([]byte(`{"calendarData": [{"event_id": 1, "event_name": "Cleanup", "date": "2024-06-01"}]}`))
		case strings.HasPrefix(r.URL.Path, "/volunteer-dashboard/enrolled-events/"):
			w.Write([]byte(`{"events": [{"event_id": 1, "event_name": "Cleanup", "event_status": "Upcoming"}]}`))
		case strings.HasPrefix(r.URL.Path, "/volunteer-dashboard/browse-events/"):
			w.Write([]byte(`{"events": [{"event_id": 1, "event_name": "Cleanup"}, {"event_id": 2, "event_name": "Food Drive"}]}`))
		case strings.HasPrefix(r.URL.Path, "/volunteer-dashboard/browse-enroll/"):
			w.Write([]byte(`{"message": "ok"}`))
		case strings.HasPrefix(r.URL.Path, "/volunteer-dashboard/"):
			w.Write([]byte(`{"nextEvent": [{"event_id": 1, "event_name": "Cleanup"}]}`))
		case strings.HasPrefix(r.URL.Path, "/api/match/"):
			w.Write([]byte(`[{"id": 2, "title": "Food Drive"}]`))
		case strings.HasPrefix(r.URL.Path, "/notifications/"):
			w.Write([]byte(`{"notifications": [{"id": 1, "message": "general", "created_at": "2024-05-01T10:00:00"}]}`))
		case strings.HasPrefix(r.URL.Path, "/vr-notifications/"):
			w.Write([]byte(`[{"id": 2, "message": "request", "created_at": "2024-05-02T10:00:00"}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestLoadAllSections(t *testing.T) {
	s := testService(t, okHandler(t))
	d, errs := s.Load(context.Background(), "7", false)
	if len(errs) != 0 {
		t.Fatalf("Load() errs = %v", errs)
	}
	if d.NextEvent == nil || d.NextEvent.Name != "Cleanup" {
		t.Errorf("NextEvent = %+v", d.NextEvent)
	}
	if len(d.Suggested) != 1 || len(d.Calendar) != 1 || len(d.Enrolled) != 1 || len(d.Browse) != 2 {
		t.Errorf("sections = %d/%d/%d/%d", len(d.Suggested), len(d.Calendar), len(d.Enrolled), len(d.Browse))
	}
	if len(d.Notifications) != 2 || d.Notifications[0].Message != "request" {
		t.Errorf("Notifications = %+v", d.Notifications)
	}
}

func TestLoadPartialFailure(t *testing.T) {
	ok := okHandler(t)
	s := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/match/") {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "matcher down"}`))
			return
		}
		ok(w, r)
	}))
	d, errs := s.Load(context.Background(), "7", false)
	if len(errs) != 1 {
		t.Fatalf("Load() errs = %v, want exactly one", errs)
	}
	if len(d.Suggested) != 0 {
		t.Errorf("failed section should stay empty, got %+v", d.Suggested)
	}
	if d.NextEvent == nil || len(d.Browse) != 2 || len(d.Notifications) != 2 {
		t.Error("healthy sections should still be populated")
	}
}

func TestLoadUsesCache(t *testing.T) {
	var calls int
	ok := okHandler(t)
	s := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		ok(w, r)
	}))
	if _, errs := s.Load(context.Background(), "7", false); len(errs) != 0 {
		t.Fatalf("first Load() errs = %v", errs)
	}
	firstCalls := calls
	if _, errs := s.Load(context.Background(), "7", false); len(errs) != 0 {
		t.Fatalf("second Load() errs = %v", errs)
	}
	if calls != firstCalls {
		t.Errorf("cached Load() hit the backend (%d -> %d calls)", firstCalls, calls)
	}
	if _, errs := s.Load(context.Background(), "7", true); len(errs) != 0 {
		t.Fatalf("refresh Load() errs = %v", errs)
	}
	if calls == firstCalls {
		t.Error("refresh should refetch")
	}
}

func TestEnrollPatchesCacheOnlyOnSuccess(t *testing.T) {
	var failEnroll bool
	ok := okHandler(t)
	s := testService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/volunteer-dashboard/browse-enroll/") && failEnroll {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message": "already enrolled"}`))
			return
		}
		ok(w, r)
	}))
	if _, errs := s.Load(context.Background(), "7", false); len(errs) != 0 {
		t.Fatal("seed load failed")
	}

	failEnroll = true
	if err := s.Enroll(context.Background(), "7", "2"); err == nil {
		t.Fatal("Enroll() should surface the backend rejection")
	}
	d, _ := s.Load(context.Background(), "7", false)
	for _, e := range d.Browse {
		if e.ID == "2" && e.Enrolled() {
			t.Fatal("rejected enrollment must not patch the cache")
		}
	}

	failEnroll = false
	if err := s.Enroll(context.Background(), "7", "2"); err != nil {
		t.Fatalf("Enroll() error = %v", err)
	}
	d, _ = s.Load(context.Background(), "7", false)
	var found bool
	for _, e := range d.Browse {
		if e.ID == "2" {
			found = true
			if !e.Enrolled() {
				t.Error("acknowledged enrollment should patch the cached event")
			}
		}
	}
	if !found {
		t.Fatal("event 2 missing from cached browse list")
	}
}

func TestMerge(t *testing.T) {
	t1 := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2024, time.May, 2, 10, 0, 0, 0, time.UTC)
	general := []domain.Notification{
		{ID: "g1", CreatedAt: t1, Source: domain.SourceGeneral},
		{ID: "g2", Source: domain.SourceGeneral}, // no timestamp
	}
	requests := []domain.Notification{
		{ID: "r1", CreatedAt: t2, Source: domain.SourceRequest},
		{ID: "r2", CreatedAt: t1, Source: domain.SourceRequest},
	}
	got := Merge(general, requests)
	wantOrder := []string{"r1", "g1", "r2", "g2"}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d notifications, want %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestMergeDeterministicTies(t *testing.T) {
	t1 := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	general := []domain.Notification{{ID: "b", CreatedAt: t1, Source: domain.SourceGeneral}}
	requests := []domain.Notification{{ID: "a", CreatedAt: t1, Source: domain.SourceRequest}}
	first := Merge(general, requests)
	second := Merge(requests, general)
	if len(first) != 2 || len(second) != 2 {
		t.Fatal("merge lost records")
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("tie order depends on argument order: %v vs %v", first[i].ID, second[i].ID)
		}
	}
}
