package tgbot

import (
	"sort"
	"sync"
	"testing"

	botmodel "volunteerhub/bot/model"
)

func TestSubscriptions(t *testing.T) {
	s := newSubs()
	if got := s.GetUserIDs(botmodel.NewNotification); len(got) != 0 {
		t.Errorf("GetUserIDs() = %v, want empty", got)
	}
	s.Add(botmodel.NewNotification, 1)
	s.Add(botmodel.NewNotification, 2)
	s.Add(botmodel.NewNotification, 2)
	got := s.GetUserIDs(botmodel.NewNotification)
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	want := []int64{1, 2}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("GetUserIDs() = %v, want %v", got, want)
	}
	s.Remove(botmodel.NewNotification, 1)
	if got := s.GetUserIDs(botmodel.NewNotification); len(got) != 1 || got[0] != 2 {
		t.Errorf("GetUserIDs() after Remove = %v, want [2]", got)
	}
}

func TestSubscriptionsUnknownType(t *testing.T) {
	s := newSubs()
	s.Add(botmodel.EventType("bogus"), 1)
	s.Remove(botmodel.EventType("bogus"), 1)
	if got := s.GetUserIDs(botmodel.EventType("bogus")); got != nil {
		t.Errorf("GetUserIDs(bogus) = %v, want nil", got)
	}
}

// The update loop adds subscribers while the notifier goroutine lists
// them, so the two must be safe to run concurrently.
func TestSubscriptionsConcurrent(t *testing.T) {
	s := newSubs()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := int64(0); i < 1000; i++ {
			s.Add(botmodel.NewNotification, i)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.GetUserIDs(botmodel.NewNotification)
		}
	}()
	wg.Wait()
	if got := len(s.GetUserIDs(botmodel.NewNotification)); got != 1000 {
		t.Errorf("got %d subscribers, want 1000", got)
	}
}
