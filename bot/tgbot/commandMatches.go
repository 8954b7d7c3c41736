package tgbot

import (
	"context"
	"strings"

	"volunteerhub/bot/model"
	"volunteerhub/internal/backend"
)

type MatchesCommand struct {
	client *backend.Client
}

func (c *MatchesCommand) Run(user model.User, _ string) (string, error) {
	if !user.Linked() {
		return "Link your volunteer account first: /link <account id>", nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	matches, err := c.client.Matches(ctx, user.VolunteerID)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "No matching events found, update the skills on your profile", nil
	}
	var b strings.Builder
	b.WriteString("Events matching your skills:\n")
	for _, m := range matches {
		b.WriteString("- ")
		b.WriteString(m.Title)
		if m.Location != "" {
			b.WriteString(" (")
			b.WriteString(m.Location)
			b.WriteString(")")
		}
		if len(m.MatchedSkills) > 0 {
			b.WriteString(": ")
			b.WriteString(strings.Join(m.MatchedSkills, ", "))
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (c *MatchesCommand) Help() string {
	return "Shows open events that match your profile skills"
}
