package tgbot

import (
	"sort"
	"strings"

	"volunteerhub/bot/model"
)

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Run(_ model.User, args string) (string, error) {
	for s, command := range c.commands {
		if args == s {
			return command.Help(), nil
		}
	}
	names := make([]string, 0, len(c.commands))
	for commandName := range c.commands {
		names = append(names, commandName)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, commandName := range names {
		b.WriteString("/")
		b.WriteString(commandName)
		b.WriteString("\n")
	}
	b.WriteString("For details: /help and a command name")
	return b.String(), nil
}

func (c *HelpCommand) Help() string {
	return "Lists available commands"
}
