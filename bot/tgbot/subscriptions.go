package tgbot

import (
	mapset "github.com/deckarep/golang-set/v2"

	botmodel "volunteerhub/bot/model"
)

type subscriptions struct {
	// m holds a set per event type. The sets are created once here and
	// never replaced, so the map itself stays read-only after newSubs
	// and the notifier goroutine can look up sets without locking.
	m map[botmodel.EventType]mapset.Set[int64]
}

func newSubs() subscriptions {
	m := map[botmodel.EventType]mapset.Set[int64]{
		botmodel.NewNotification: mapset.NewSet[int64](),
	}
	return subscriptions{
		m: m,
	}
}

func (s *subscriptions) Add(t botmodel.EventType, userID int64) {
	if s.m[t] == nil {
		return
	}
	s.m[t].Add(userID)
}

func (s *subscriptions) Remove(t botmodel.EventType, userID int64) {
	if s.m[t] == nil {
		return
	}
	s.m[t].Remove(userID)
}

func (s *subscriptions) GetUserIDs(t botmodel.EventType) []int64 {
	if s.m[t] == nil {
		return nil
	}
	return s.m[t].ToSlice()
}
