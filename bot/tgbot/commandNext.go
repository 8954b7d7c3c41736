package tgbot

import (
	"context"
	"time"

	"volunteerhub/bot/model"
	"volunteerhub/internal/backend"
)

const commandTimeout = 15 * time.Second

type NextCommand struct {
	client *backend.Client
}

func (c *NextCommand) Run(user model.User, _ string) (string, error) {
	if !user.Linked() {
		return "Link your volunteer account first: /link <account id>", nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	event, err := c.client.NextEvent(ctx, user.VolunteerID)
	if err != nil {
		return "", err
	}
	if event == nil {
		return "No upcoming events", nil
	}
	text := "Next event: " + event.Name
	if !event.StartTime.IsZero() {
		text += " on " + event.StartTime.Format("Jan 2, 2006 3:04 PM")
	}
	if event.Location != "" {
		text += ", " + event.Location
	}
	return text, nil
}

func (c *NextCommand) Help() string {
	return "Shows your next enrolled event"
}
