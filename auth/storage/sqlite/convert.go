package sqlite

import (
	"github.com/google/uuid"

	"volunteerhub/auth/gen/model"
	"volunteerhub/auth/users"
)

func convertSessionFromDomain(session users.Session) model.Sessions {
	return model.Sessions{
		ID:              session.ID.String(),
		UserID:          session.User.ID,
		Role:            session.User.Role,
		FullName:        session.User.FullName,
		ProfileComplete: session.User.ProfileComplete,
		CreatedAt:       session.CreatedAt,
		ExpiresAt:       session.ExpiresAt,
	}
}

func convertSessionToDomain(session model.Sessions) (users.Session, error) {
	id, err := uuid.Parse(session.ID)
	if err != nil {
		return users.Session{}, err
	}
	return users.Session{
		ID: id,
		User: users.User{
			ID:              session.UserID,
			Role:            session.Role,
			FullName:        session.FullName,
			ProfileComplete: session.ProfileComplete,
			LoggedInAt:      session.CreatedAt,
		},
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
