package tgbot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	botmodel "volunteerhub/bot/model"
	"volunteerhub/internal/backend"
)

type fakeSender struct {
	texts []string
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.texts = append(f.texts, msg.Text)
	}
	return tgbotapi.Message{}, nil
}

type fakeBotStorage struct {
	user       botmodel.User
	notifiedAt time.Time
}

func (f *fakeBotStorage) NewUser(user botmodel.User) (botmodel.User, error) { return user, nil }
func (f *fakeBotStorage) GetUser(id int64) (botmodel.User, error)          { return f.user, nil }
func (f *fakeBotStorage) Log(user botmodel.User, msg string) error         { return nil }
func (f *fakeBotStorage) LinkVolunteer(user botmodel.User, volunteerID string) error {
	return nil
}
func (f *fakeBotStorage) Subscribe(user botmodel.User) error       { return nil }
func (f *fakeBotStorage) Unsubscribe(user botmodel.User) error     { return nil }
func (f *fakeBotStorage) ListSubscribed() ([]botmodel.User, error) { return nil, nil }
func (f *fakeBotStorage) MarkNotified(user botmodel.User, at time.Time) error {
	f.notifiedAt = at
	return nil
}

func notifierBot(t *testing.T, storage *fakeBotStorage, handler http.Handler) (*Bot, *fakeSender) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	sender := &fakeSender{}
	b := &Bot{
		sender:     sender,
		botStorage: storage,
		client:     backend.New(server.URL, log),
		log:        log.WithField("name", "tg_bot"),
		subs:       newSubs(),
	}
	b.subs.Add(botmodel.NewNotification, storage.user.ID)
	return b, sender
}

// Both notification feeds reach a subscribed chat, newest first.
func TestNotifySubscribersBothFeeds(t *testing.T) {
	storage := &fakeBotStorage{
		user: botmodel.User{ID: 10, VolunteerID: "7", Subscribed: true},
	}
	b, sender := notifierBot(t, storage, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/notifications/7":
			w.Write([]byte(`{"notifications": [{"id": 1, "message": "general news", "created_at": "2024-05-01T10:00:00"}]}`))
		case "/vr-notifications/7":
			w.Write([]byte(`[{"id": 2, "message": "please help", "created_at": "2024-05-02T10:00:00"}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	b.notifySubscribers(context.Background())

	want := []string{"please help", "general news"}
	if len(sender.texts) != len(want) || sender.texts[0] != want[0] || sender.texts[1] != want[1] {
		t.Errorf("sent = %v, want %v", sender.texts, want)
	}
	wantAt := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	if !storage.notifiedAt.Equal(wantAt) {
		t.Errorf("MarkNotified at %v, want %v", storage.notifiedAt, wantAt)
	}
}

// A failing request feed must not block the general one.
func TestNotifySubscribersRequestFeedDown(t *testing.T) {
	storage := &fakeBotStorage{
		user: botmodel.User{ID: 10, VolunteerID: "7", Subscribed: true},
	}
	b, sender := notifierBot(t, storage, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/notifications/7":
			w.Write([]byte(`{"notifications": [{"id": 1, "message": "general news", "created_at": "2024-05-01T10:00:00"}]}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	b.notifySubscribers(context.Background())

	if len(sender.texts) != 1 || sender.texts[0] != "general news" {
		t.Errorf("sent = %v, want [general news]", sender.texts)
	}
}

// Unlinked chats and already-seen notifications are skipped.
func TestNotifySubscribersSkips(t *testing.T) {
	storage := &fakeBotStorage{
		user: botmodel.User{
			ID:             10,
			VolunteerID:    "7",
			Subscribed:     true,
			LastNotifiedAt: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
		},
	}
	b, sender := notifierBot(t, storage, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/notifications/7":
			w.Write([]byte(`{"notifications": [{"id": 1, "message": "old", "created_at": "2024-05-01T10:00:00"}, {"id": 3, "message": "undated"}]}`))
		case "/vr-notifications/7":
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	b.notifySubscribers(context.Background())
	if len(sender.texts) != 0 {
		t.Errorf("sent = %v, want none", sender.texts)
	}
	if !storage.notifiedAt.IsZero() {
		t.Errorf("MarkNotified called at %v, want untouched", storage.notifiedAt)
	}
}
