package tgbot

import (
	"strings"

	"volunteerhub/bot/botstorage"
	"volunteerhub/bot/model"
)

type LinkCommand struct {
	botStorage botstorage.BotStorage
}

func (c *LinkCommand) Run(user model.User, args string) (string, error) {
	volunteerID := strings.TrimSpace(args)
	if volunteerID == "" {
		if user.Linked() {
			return "Linked volunteer account: " + user.VolunteerID, nil
		}
		return "Send /link and your volunteer account id to connect it", nil
	}
	err := c.botStorage.LinkVolunteer(user, volunteerID)
	if err != nil {
		return "", err
	}
	return "Volunteer account " + volunteerID + " linked, now you can use /next and /matches", nil
}

func (c *LinkCommand) Help() string {
	return "Connects your volunteer account: /link <account id>"
}
