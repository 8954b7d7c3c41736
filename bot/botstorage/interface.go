package botstorage

import (
	"time"

	"volunteerhub/bot/model"
)

type BotStorage interface {
	NewUser(user model.User) (model.User, error)
	GetUser(id int64) (model.User, error)
	Log(user model.User, msg string) error

	LinkVolunteer(user model.User, volunteerID string) error
	Subscribe(user model.User) error
	Unsubscribe(user model.User) error
	ListSubscribed() ([]model.User, error)
	MarkNotified(user model.User, at time.Time) error
}
