package dto

import (
	"time"

	"github.com/spec-kit/constituent-office/internal/domain"
)

// CreateComplaintRequest payload.
type CreateComplaintRequest struct {
	Title       string          `json:"title"`
	Category    domain.Category `json:"category"`
	Description string          `json:"description"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status domain.Status `json:"status"`
}

// CreateMessageRequest payload.
type CreateMessageRequest struct {
	Text string `json:"text"`
}

// RefineReplyRequest payload.
type RefineReplyRequest struct {
	Draft string `json:"draft"`
}

// RefineReplyResponse carries the rewritten draft.
type RefineReplyResponse struct {
	Reply string `json:"reply"`
}

// ComplaintSummary response.
type ComplaintSummary struct {
	ID            string          `json:"id"`
	SubmitterName string          `json:"submitter_name"`
	Title         string          `json:"title"`
	Category      domain.Category `json:"category"`
	Status        domain.Status   `json:"status"`
	Area          domain.Area     `json:"area"`
	CreatedAt     time.Time       `json:"created_at"`
	ResolvedAt    *time.Time      `json:"resolved_at"`
}

// ComplaintDetailResponse provides the full record with its thread.
type ComplaintDetailResponse struct {
	ID             string            `json:"id"`
	SubmitterID    string            `json:"submitter_id"`
	SubmitterName  string            `json:"submitter_name"`
	SubmitterPhone string            `json:"submitter_phone"`
	Title          string            `json:"title"`
	Category       domain.Category   `json:"category"`
	Description    string            `json:"description"`
	Status         domain.Status     `json:"status"`
	Area           domain.Area       `json:"area"`
	Address        string            `json:"address"`
	AISummary      string            `json:"ai_summary,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	ResolvedAt     *time.Time        `json:"resolved_at"`
	Thread         []MessageResponse `json:"thread"`
}

// MessageResponse represents one thread entry.
type MessageResponse struct {
	ID         string               `json:"id"`
	SenderID   string               `json:"sender_id"`
	SenderName string               `json:"sender_name"`
	Text       string               `json:"text"`
	Origin     domain.MessageOrigin `json:"origin"`
	CreatedAt  time.Time            `json:"created_at"`
}
