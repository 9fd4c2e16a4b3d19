package dto

import (
	"time"

	"github.com/spec-kit/constituent-office/internal/domain"
)

// SendTeamMessageRequest payload. The channel comes from the route.
type SendTeamMessageRequest struct {
	Text string `json:"text"`
}

// TeamMessageResponse represents one channel entry.
type TeamMessageResponse struct {
	ID         string                `json:"id"`
	SenderID   string                `json:"sender_id"`
	SenderName string                `json:"sender_name"`
	Channel    domain.ChannelAddress `json:"channel"`
	Text       string                `json:"text"`
	CreatedAt  time.Time             `json:"created_at"`
}
