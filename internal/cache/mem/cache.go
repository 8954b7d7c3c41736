package mem

import (
	"sync"

	"volunteerhub/internal/domain"
)

// Cache holds each user's last loaded dashboard snapshot. Pages reuse the
// snapshot between renders (filtering and pagination are in-memory); the
// refresh contract and enroll acknowledgments go through here.
type Cache struct {
	mu        sync.RWMutex
	dashboard map[string]domain.Dashboard
}

func New() *Cache {
	return &Cache{
		dashboard: make(map[string]domain.Dashboard),
	}
}

func (c *Cache) Update(userID string, d domain.Dashboard) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dashboard[userID] = d
}

func (c *Cache) Get(userID string) (domain.Dashboard, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.dashboard[userID]
	return d, ok
}

func (c *Cache) Invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.dashboard, userID)
}

// MarkEnrolled patches the event's status to enrolled in every cached copy
// of the user's event lists. Only called after the backend acknowledged the
// enrollment; only the status field of the targeted event changes.
func (c *Cache) MarkEnrolled(userID, eventID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := c.dashboard[userID]
	if !ok {
		return
	}
	d.Browse = patchStatus(d.Browse, eventID)
	d.Enrolled = patchStatus(d.Enrolled, eventID)
	c.dashboard[userID] = d
}

func patchStatus(list []domain.Event, eventID string) []domain.Event {
	patched := make([]domain.Event, len(list))
	copy(patched, list)
	for i := range patched {
		if patched[i].ID == eventID {
			patched[i].Status = domain.StatusUpcoming
		}
	}
	return patched
}
