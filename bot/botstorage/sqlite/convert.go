package sqlite

import (
	"time"

	dbmodel "volunteerhub/bot/gen/model"
	"volunteerhub/bot/model"
)

func convertUserFromDomain(user model.User) dbmodel.Users {
	var lastNotified *time.Time
	if !user.LastNotifiedAt.IsZero() {
		t := user.LastNotifiedAt
		lastNotified = &t
	}
	return dbmodel.Users{
		ID:             user.ID,
		FirstName:      user.FirstName,
		Username:       user.Username,
		VolunteerID:    user.VolunteerID,
		Subscribed:     user.Subscribed,
		LastNotifiedAt: lastNotified,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

func convertUserToDomain(user dbmodel.Users) model.User {
	converted := model.User{
		ID:          user.ID,
		FirstName:   user.FirstName,
		Username:    user.Username,
		VolunteerID: user.VolunteerID,
		Subscribed:  user.Subscribed,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
	if user.LastNotifiedAt != nil {
		converted.LastNotifiedAt = *user.LastNotifiedAt
	}
	return converted
}
