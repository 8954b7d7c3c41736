package backend

import (
	"context"

	"volunteerhub/internal/domain"
)

// Notifications returns the general feed, tagged with SourceGeneral.
func (c *Client) Notifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	var resp struct {
		Notifications []rawNotification `json:"notifications"`
	}
	err := c.get(ctx, "/notifications/"+userID, &resp)
	if err != nil {
		return nil, err
	}
	notifications := make([]domain.Notification, 0, len(resp.Notifications))
	for _, r := range resp.Notifications {
		notifications = append(notifications, c.convertNotification(r, domain.SourceGeneral))
	}
	return notifications, nil
}

// RequestNotifications returns the volunteer-request feed, tagged with
// SourceRequest. The backend sends this one as a bare array.
func (c *Client) RequestNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	var resp []rawNotification
	err := c.get(ctx, "/vr-notifications/"+userID, &resp)
	if err != nil {
		return nil, err
	}
	notifications := make([]domain.Notification, 0, len(resp))
	for _, r := range resp {
		notifications = append(notifications, c.convertNotification(r, domain.SourceRequest))
	}
	return notifications, nil
}
