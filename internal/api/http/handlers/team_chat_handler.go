package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/constituent-office/internal/api/dto"
	"github.com/spec-kit/constituent-office/internal/auth"
	"github.com/spec-kit/constituent-office/internal/domain"
	"github.com/spec-kit/constituent-office/internal/service"
	apperrors "github.com/spec-kit/constituent-office/pkg/util"
)

// TeamChatHandler exposes the internal office messaging endpoints.
type TeamChatHandler struct {
	service *service.TeamChatService
}

// NewTeamChatHandler constructs handler.
func NewTeamChatHandler(chatService *service.TeamChatService) *TeamChatHandler {
	return &TeamChatHandler{service: chatService}
}

// Channels GET /team/channels.
func (h *TeamChatHandler) Channels(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	channels, err := h.service.Channels(c.Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": channels})
}

// Send POST /team/channels/:channel/messages.
func (h *TeamChatHandler) Send(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.SendTeamMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	msg, err := h.service.Send(c.Context(), actor, domain.ChannelAddress(c.Params("channel")), req.Text)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": teamMessageResponse(msg)})
}

// History GET /team/channels/:channel/messages.
func (h *TeamChatHandler) History(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	channel := domain.ChannelAddress(c.Params("channel"))
	msgs, err := h.service.History(c.Context(), actor, channel)
	if err != nil {
		return err
	}
	items := make([]dto.TeamMessageResponse, 0, len(msgs))
	for i := range msgs {
		items = append(items, teamMessageResponse(&msgs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func teamMessageResponse(msg *domain.TeamMessage) dto.TeamMessageResponse {
	return dto.TeamMessageResponse{
		ID:         msg.ID,
		SenderID:   msg.SenderID,
		SenderName: msg.SenderName,
		Channel:    msg.Channel,
		Text:       msg.Text,
		CreatedAt:  msg.CreatedAt,
	}
}
