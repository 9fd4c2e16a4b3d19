package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/constituent-office/internal/domain"
	"github.com/spec-kit/constituent-office/internal/events"
	"github.com/spec-kit/constituent-office/internal/repository"
	apperrors "github.com/spec-kit/constituent-office/pkg/util"
)

// TeamChatService routes internal office messages across the team-channel
// address space: one shared GLOBAL channel and one PRIVATE_<staffId> pair
// channel per staff member.
type TeamChatService struct {
	messages   repository.TeamMessageRepository
	actors     repository.ActorRepository
	dispatcher events.Dispatcher
}

// NewTeamChatService constructs the service.
func NewTeamChatService(messages repository.TeamMessageRepository, actors repository.ActorRepository, dispatcher events.Dispatcher) *TeamChatService {
	return &TeamChatService{messages: messages, actors: actors, dispatcher: dispatcher}
}

// Channels lists the addresses the actor may read or write: staff get
// GLOBAL plus their own pair channel; the supervisor can address every
// active staff member individually.
func (s *TeamChatService) Channels(ctx context.Context, actor *domain.Actor) ([]domain.ChannelAddress, error) {
	switch actor.Role {
	case domain.RoleStaff:
		return []domain.ChannelAddress{domain.ChannelGlobal, domain.PrivateChannel(actor.ID)}, nil
	case domain.RoleSupervisor:
		staff, err := s.actors.ListByRole(ctx, domain.RoleStaff)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		channels := []domain.ChannelAddress{domain.ChannelGlobal}
		for _, member := range staff {
			if member.Active {
				channels = append(channels, domain.PrivateChannel(member.ID))
			}
		}
		return channels, nil
	}
	return nil, apperrors.NewForbidden("team channels are staff-only")
}

// Send appends a message to one channel. No cross-address delivery: the
// message belongs to exactly the addressed channel.
func (s *TeamChatService) Send(ctx context.Context, actor *domain.Actor, channel domain.ChannelAddress, text string) (*domain.TeamMessage, error) {
	if !channel.Valid() {
		return nil, apperrors.NewValidationError("unknown channel address", map[string]any{"channel": channel})
	}
	if !channel.AccessibleBy(actor) {
		return nil, apperrors.NewForbidden("channel outside your membership")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidationError("message text required", nil)
	}

	msg := &domain.TeamMessage{
		SenderID:   actor.ID,
		SenderName: actor.FullName,
		Channel:    channel,
		Text:       text,
	}
	if err := s.messages.Append(ctx, msg); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventTeamMessageSent,
			Actor:     eventActor(actor),
			Timestamp: time.Now(),
			Payload: events.TeamMessageSentPayload{
				Channel:     channel,
				MessageID:   msg.ID,
				TextPreview: textPreview(msg.Text, 120),
			},
		})
	}
	return msg, nil
}

// History returns the channel's messages in append order.
func (s *TeamChatService) History(ctx context.Context, actor *domain.Actor, channel domain.ChannelAddress) ([]domain.TeamMessage, error) {
	if !channel.Valid() {
		return nil, apperrors.NewValidationError("unknown channel address", map[string]any{"channel": channel})
	}
	if !channel.AccessibleBy(actor) {
		return nil, apperrors.NewForbidden("channel outside your membership")
	}
	msgs, err := s.messages.ListByChannel(ctx, channel)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return msgs, nil
}
