package tgbot

import (
	"volunteerhub/bot/botstorage"
	"volunteerhub/bot/model"
)

type SubCommand struct {
	botStorage botstorage.BotStorage
	sub        func(int64)
}

func (c *SubCommand) Run(user model.User, _ string) (string, error) {
	if !user.Linked() {
		return "Link your volunteer account first: /link <account id>", nil
	}
	err := c.botStorage.Subscribe(user)
	if err != nil {
		return "", err
	}
	c.sub(user.ID)
	return "Subscribed, to stop notifications: /unsub", nil
}

func (c *SubCommand) Help() string {
	return "Subscribes to new volunteer notifications"
}
