package dashboard

import (
	"context"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"volunteerhub/internal/backend"
	"volunteerhub/internal/cache/mem"
	"volunteerhub/internal/domain"
)

// Service loads and caches per-user dashboard snapshots. The six sources
// are fetched concurrently; a failed source is logged and leaves its field
// empty without failing the others.
type Service struct {
	client *backend.Client
	cache  *mem.Cache
	log    *logrus.Entry
}

func New(client *backend.Client, cache *mem.Cache, l *logrus.Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		log:    l.WithFields(map[string]interface{}{"from": "dashboard"}),
	}
}

// Load returns the user's snapshot, reusing the cached one unless refresh
// is set. The returned errors are the individual source failures, already
// logged; the snapshot is usable regardless.
func (s *Service) Load(ctx context.Context, userID string, refresh bool) (domain.Dashboard, []error) {
	if !refresh {
		if d, ok := s.cache.Get(userID); ok {
			return d, nil
		}
	}
	d, errs := s.fetchAll(ctx, userID)
	s.cache.Update(userID, d)
	return d, errs
}

func (s *Service) fetchAll(ctx context.Context, userID string) (domain.Dashboard, []error) {
	var (
		d    domain.Dashboard
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)
	fail := func(section string, err error) {
		s.log.WithError(err).WithField("section", section).Error("dashboard fetch failed")
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	// each goroutine writes only its own field of d
	wg.Add(6)
	go func() {
		defer wg.Done()
		next, err := s.client.NextEvent(ctx, userID)
		if err != nil {
			fail("next-event", err)
			return
		}
		d.NextEvent = next
	}()
	go func() {
		defer wg.Done()
		matches, err := s.client.Matches(ctx, userID)
		if err != nil {
			fail("matches", err)
			return
		}
		d.Suggested = matches
	}()
	go func() {
		defer wg.Done()
		notifications, err := s.CombinedNotifications(ctx, userID)
		if err != nil {
			fail("notifications", err)
			return
		}
		d.Notifications = notifications
	}()
	go func() {
		defer wg.Done()
		calendar, err := s.client.Calendar(ctx, userID)
		if err != nil {
			fail("calendar", err)
			return
		}
		d.Calendar = calendar
	}()
	go func() {
		defer wg.Done()
		enrolled, err := s.client.EnrolledEvents(ctx, userID)
		if err != nil {
			fail("enrolled-events", err)
			return
		}
		d.Enrolled = enrolled
	}()
	go func() {
		defer wg.Done()
		browse, err := s.client.BrowseEvents(ctx, userID)
		if err != nil {
			fail("browse-events", err)
			return
		}
		d.Browse = browse
	}()
	wg.Wait()
	return d, errs
}

// CombinedNotifications fetches both notification feeds and merges them
// into one display ordering. No deduplication across feeds.
func (s *Service) CombinedNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	general, err := s.client.Notifications(ctx, userID)
	if err != nil {
		return nil, err
	}
	requests, err := s.client.RequestNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Merge(general, requests), nil
}

// Merge concatenates the two feeds and sorts descending by creation time.
// Records without a usable timestamp (zero time) sort last; ties break by
// source tag then id so the order is deterministic.
func Merge(general, requests []domain.Notification) []domain.Notification {
	merged := make([]domain.Notification, 0, len(general)+len(requests))
	merged = append(merged, general...)
	merged = append(merged, requests...)
	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].CreatedAt.After(merged[j].CreatedAt)
		}
		if merged[i].Source != merged[j].Source {
			return merged[i].Source < merged[j].Source
		}
		return merged[i].ID < merged[j].ID
	})
	return merged
}

// Enroll signs the user up and, only after the backend acknowledged,
// patches the cached event lists. A failure leaves every local copy as it
// was.
func (s *Service) Enroll(ctx context.Context, userID, eventID string) error {
	if err := s.client.Enroll(ctx, userID, eventID); err != nil {
		return err
	}
	s.cache.MarkEnrolled(userID, eventID)
	return nil
}

// Invalidate drops the cached snapshot so the next Load refetches.
func (s *Service) Invalidate(userID string) {
	s.cache.Invalidate(userID)
}
