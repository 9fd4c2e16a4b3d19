package domain

import "time"

// NotificationTTL is the fixed lifetime of every advisory notification.
const NotificationTTL = 4 * time.Second

// Notification is an ephemeral, self-expiring advisory event. Delivery is
// best-effort: no persistence, no retry, and no consumer may assume receipt.
type Notification struct {
	ID           string
	Title        string
	Body         string
	IssuedAt     time.Time
	ExpiresAfter time.Duration
}

// ExpiresAt returns the instant after which the notification is stale.
func (n Notification) ExpiresAt() time.Time {
	return n.IssuedAt.Add(n.ExpiresAfter)
}
