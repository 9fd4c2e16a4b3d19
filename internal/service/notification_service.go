package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/constituent-office/internal/domain"
	"github.com/spec-kit/constituent-office/internal/events"
)

// NotificationService turns domain events into ephemeral advisory
// notifications. Everything here is fire-and-forget: notifications carry a
// fixed four-second lifetime, are never persisted, and a publish failure
// is logged and dropped.
type NotificationService struct {
	redis   *redis.Client
	channel string
	logger  *zap.Logger
}

// NewNotificationService constructs the emitter. A nil redis client keeps
// notifications log-only.
func NewNotificationService(client *redis.Client, channel string, logger *zap.Logger) *NotificationService {
	return &NotificationService{redis: client, channel: channel, logger: logger}
}

// Register subscribes the emitter to every event type it translates.
func (s *NotificationService) Register(dispatcher events.Dispatcher) {
	dispatcher.Subscribe(events.EventComplaintCreated, s.handle)
	dispatcher.Subscribe(events.EventComplaintStatusChanged, s.handle)
	dispatcher.Subscribe(events.EventComplaintMessageAdded, s.handle)
	dispatcher.Subscribe(events.EventTeamMessageSent, s.handle)
	dispatcher.Subscribe(events.EventActorLoggedIn, s.handle)
}

func (s *NotificationService) handle(ctx context.Context, event events.Event) error {
	notification := s.build(event)
	if notification == nil {
		return nil
	}

	s.logger.Info("notification issued",
		zap.String("notification_id", notification.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("title", notification.Title),
		zap.Time("expires_at", notification.ExpiresAt()),
	)

	s.publish(ctx, notification)
	return nil
}

// build maps one event to one notification. Unknown event types produce
// nothing.
func (s *NotificationService) build(event events.Event) *domain.Notification {
	var title, body string

	switch payload := event.Payload.(type) {
	case events.ComplaintCreatedPayload:
		title = "New complaint received"
		body = fmt.Sprintf("%s filed %q under %s", event.Actor.Name, payload.Title, payload.Category)
	case events.StatusChangedPayload:
		title = "Complaint status updated"
		body = fmt.Sprintf("%s moved a complaint from %s to %s", event.Actor.Name, payload.OldStatus, payload.NewStatus)
	case events.MessageAddedPayload:
		title = "New message on complaint"
		body = fmt.Sprintf("%s wrote: %s", event.Actor.Name, payload.TextPreview)
	case events.TeamMessageSentPayload:
		title = "Team message"
		body = fmt.Sprintf("%s in %s: %s", event.Actor.Name, payload.Channel, payload.TextPreview)
	case events.ActorLoggedInPayload:
		title = "Welcome back"
		body = fmt.Sprintf("Welcome back, %s", payload.FullName)
	default:
		return nil
	}

	return &domain.Notification{
		ID:           uuid.NewString(),
		Title:        title,
		Body:         body,
		IssuedAt:     event.Timestamp,
		ExpiresAfter: domain.NotificationTTL,
	}
}

// publish pushes the notification to the advisory pub/sub channel.
// Best-effort: errors are logged and swallowed, and the payload is
// published with a TTL-derived deadline so slow consumers can discard
// stale entries themselves.
func (s *NotificationService) publish(ctx context.Context, notification *domain.Notification) {
	if s.redis == nil {
		return
	}

	payload, err := json.Marshal(map[string]any{
		"id":         notification.ID,
		"title":      notification.Title,
		"body":       notification.Body,
		"issued_at":  notification.IssuedAt.Format(time.RFC3339Nano),
		"expires_at": notification.ExpiresAt().Format(time.RFC3339Nano),
	})
	if err != nil {
		s.logger.Warn("notification payload marshal failed", zap.Error(err))
		return
	}

	if err := s.redis.Publish(ctx, s.channel, payload).Err(); err != nil {
		s.logger.Warn("notification publish failed",
			zap.String("channel", s.channel),
			zap.Error(err),
		)
	}
}
