package backend

import (
	"context"
	"time"

	"volunteerhub/auth/users"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserID          flexID   `json:"userId"`
	Role            string   `json:"role"`
	FullName        string   `json:"fullName"`
	FullNameSnake   string   `json:"full_name"`
	Name            string   `json:"name"`
	ProfileComplete flexBool `json:"profileComplete"`
}

// Login authenticates against the backend and returns the normalized
// session descriptor. Non-2xx responses come back as *StatusError with the
// backend's message when one was sent.
func (c *Client) Login(ctx context.Context, email, password string) (users.User, error) {
	var resp loginResponse
	err := c.post(ctx, "/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return users.User{}, err
	}
	fullName := coalesce(resp.FullName, resp.FullNameSnake, resp.Name)
	if fullName == "" {
		c.log.WithField("user_id", string(resp.UserID)).Debug("login response without a name field")
	}
	return users.User{
		ID:              string(resp.UserID),
		Role:            resp.Role,
		FullName:        fullName,
		ProfileComplete: bool(resp.ProfileComplete),
		LoggedInAt:      time.Now(),
	}, nil
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a backend account. The backend rejects duplicates; the
// returned *StatusError message is shown to the user as is.
func (c *Client) Register(ctx context.Context, email, password string) error {
	return c.post(ctx, "/register", registerRequest{Email: email, Password: password}, nil)
}
