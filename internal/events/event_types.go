package events

import (
	"time"

	"github.com/spec-kit/constituent-office/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventComplaintCreated       EventType = "complaint_created"
	EventComplaintStatusChanged EventType = "complaint_status_changed"
	EventComplaintMessageAdded  EventType = "complaint_message_added"
	EventTeamMessageSent        EventType = "team_message_sent"
	EventActorLoggedIn          EventType = "actor_logged_in"
)

// Actor identifies who triggered an event.
type Actor struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	ComplaintID string      `json:"complaint_id,omitempty"`
	Actor       Actor       `json:"actor"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// ComplaintCreatedPayload payload.
type ComplaintCreatedPayload struct {
	Title    string          `json:"title"`
	Category domain.Category `json:"category"`
	Area     domain.Area     `json:"area"`
}

// StatusChangedPayload payload.
type StatusChangedPayload struct {
	OldStatus domain.Status `json:"old_status"`
	NewStatus domain.Status `json:"new_status"`
}

// MessageAddedPayload payload.
type MessageAddedPayload struct {
	MessageID   string               `json:"message_id"`
	Origin      domain.MessageOrigin `json:"origin"`
	TextPreview string               `json:"text_preview"`
}

// TeamMessageSentPayload payload.
type TeamMessageSentPayload struct {
	Channel     domain.ChannelAddress `json:"channel"`
	MessageID   string                `json:"message_id"`
	TextPreview string                `json:"text_preview"`
}

// ActorLoggedInPayload payload.
type ActorLoggedInPayload struct {
	FullName string `json:"full_name"`
}
