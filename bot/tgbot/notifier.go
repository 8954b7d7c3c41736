package tgbot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	botmodel "volunteerhub/bot/model"
	"volunteerhub/internal/dashboard"
)

// pollNotifications pushes new backend notifications to subscribed chats.
// Notifications without a timestamp are never pushed, they would repeat on
// every poll.
func (b *Bot) pollNotifications(ctx context.Context) {
	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.notifySubscribers(ctx)
		}
	}
}

func (b *Bot) notifySubscribers(ctx context.Context) {
	for _, userID := range b.subs.GetUserIDs(botmodel.NewNotification) {
		user, err := b.botStorage.GetUser(userID)
		if err != nil {
			b.log.WithError(err).WithField("user_id", userID).Error("load subscriber")
			continue
		}
		if !user.Linked() {
			continue
		}
		b.notifyUser(ctx, user)
	}
}

func (b *Bot) notifyUser(ctx context.Context, user botmodel.User) {
	log := b.log.WithField("user_id", user.ID)
	general, err := b.client.Notifications(ctx, user.VolunteerID)
	if err != nil {
		log.WithError(err).Error("fetch notifications")
		return
	}
	// the request feed failing should not block the general one
	requests, err := b.client.RequestNotifications(ctx, user.VolunteerID)
	if err != nil {
		log.WithError(err).Error("fetch request notifications")
	}
	notifications := dashboard.Merge(general, requests)
	latest := user.LastNotifiedAt
	for _, n := range notifications {
		if n.CreatedAt.IsZero() || !n.CreatedAt.After(user.LastNotifiedAt) {
			continue
		}
		msg := tgbotapi.NewMessage(user.ID, n.Message)
		if _, err := b.sender.Send(msg); err != nil {
			log.WithError(err).Error("send notification")
			return
		}
		if n.CreatedAt.After(latest) {
			latest = n.CreatedAt
		}
	}
	if latest.After(user.LastNotifiedAt) {
		if err := b.botStorage.MarkNotified(user, latest); err != nil {
			log.WithError(err).Error("mark notified")
		}
	}
}
