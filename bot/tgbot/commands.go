package tgbot

import (
	"volunteerhub/bot/botstorage"
	"volunteerhub/bot/model"
	"volunteerhub/internal/backend"
)

type Command interface {
	Run(user model.User, args string) (string, error)
	Help() string
}

type Commands struct {
	list map[string]Command
}

func NewCommands(
	client *backend.Client,
	bs botstorage.BotStorage,
	subFn func(id int64),
	unsubFn func(id int64),
) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"link": &LinkCommand{
				botStorage: bs,
			},
			"next": &NextCommand{
				client: client,
			},
			"matches": &MatchesCommand{
				client: client,
			},
			"sub": &SubCommand{
				botStorage: bs,
				sub:        subFn,
			},
			"unsub": &UnsubCommand{
				botStorage: bs,
				unsub:      unsubFn,
			},
		},
	}
	hc.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(user model.User, cmd string, args string) (string, error) {
	for s, command := range uc.list {
		if cmd == s {
			return command.Run(user, args)
		}
	}
	return "", ErrBadRequest
}
