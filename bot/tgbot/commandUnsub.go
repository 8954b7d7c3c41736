package tgbot

import (
	"volunteerhub/bot/botstorage"
	"volunteerhub/bot/model"
)

type UnsubCommand struct {
	botStorage botstorage.BotStorage
	unsub      func(int64)
}

func (c *UnsubCommand) Run(user model.User, _ string) (string, error) {
	err := c.botStorage.Unsubscribe(user)
	if err != nil {
		return "", err
	}
	c.unsub(user.ID)
	return "Unsubscribed, to get notifications again: /sub", nil
}

func (c *UnsubCommand) Help() string {
	return "Unsubscribes from volunteer notifications"
}
