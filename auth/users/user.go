package users

import "time"

const (
	RoleAdmin     = "admin"
	RoleVolunteer = "volunteer"
)

// User is the session descriptor handed out by the backend on login.
// A non-empty ID means the session counts as authenticated.
type User struct {
	ID              string
	Role            string
	FullName        string
	ProfileComplete bool
	LoggedInAt      time.Time
}

func (u User) IsZero() bool {
	return u.ID == ""
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
