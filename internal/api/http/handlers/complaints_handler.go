package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/constituent-office/internal/api/dto"
	"github.com/spec-kit/constituent-office/internal/auth"
	"github.com/spec-kit/constituent-office/internal/domain"
	"github.com/spec-kit/constituent-office/internal/service"
	apperrors "github.com/spec-kit/constituent-office/pkg/util"
)

// ComplaintsHandler exposes the complaint lifecycle endpoints.
type ComplaintsHandler struct {
	service *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaintService *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{service: complaintService}
}

// Create POST /complaints.
func (h *ComplaintsHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	complaint, err := h.service.Create(c.Context(), actor, service.ComplaintCreateInput{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": complaintDetail(complaint)})
}

// List GET /complaints.
func (h *ComplaintsHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	criteria := service.QueryCriteria{
		Search:   c.Query("search"),
		Status:   domain.Status(c.Query("status")),
		Category: domain.Category(c.Query("category")),
	}
	complaints, err := h.service.Query(c.Context(), actor, criteria)
	if err != nil {
		return err
	}
	items := make([]dto.ComplaintSummary, 0, len(complaints))
	for i := range complaints {
		items = append(items, complaintSummary(&complaints[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /complaints/:id.
func (h *ComplaintsHandler) Get(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	complaint, err := h.service.Get(c.Context(), actor, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": complaintDetail(complaint)})
}

// UpdateStatus PATCH /complaints/:id/status.
func (h *ComplaintsHandler) UpdateStatus(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	complaint, err := h.service.SetStatus(c.Context(), actor, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": complaintDetail(complaint)})
}

// AddMessage POST /complaints/:id/messages.
func (h *ComplaintsHandler) AddMessage(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	msg, err := h.service.AppendMessage(c.Context(), actor, c.Params("id"), req.Text)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": messageResponse(msg)})
}

// RefineReply POST /complaints/:id/refine.
func (h *ComplaintsHandler) RefineReply(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.RefineReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	reply, err := h.service.RefineReply(c.Context(), actor, c.Params("id"), req.Draft)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.RefineReplyResponse{Reply: reply}})
}

func complaintSummary(complaint *domain.Complaint) dto.ComplaintSummary {
	return dto.ComplaintSummary{
		ID:            complaint.ID,
		SubmitterName: complaint.SubmitterName,
		Title:         complaint.Title,
		Category:      complaint.Category,
		Status:        complaint.Status,
		Area:          complaint.Area,
		CreatedAt:     complaint.CreatedAt,
		ResolvedAt:    complaint.ResolvedAt,
	}
}

func complaintDetail(complaint *domain.Complaint) dto.ComplaintDetailResponse {
	thread := make([]dto.MessageResponse, 0, len(complaint.Thread))
	for i := range complaint.Thread {
		thread = append(thread, messageResponse(&complaint.Thread[i]))
	}
	return dto.ComplaintDetailResponse{
		ID:             complaint.ID,
		SubmitterID:    complaint.SubmitterID,
		SubmitterName:  complaint.SubmitterName,
		SubmitterPhone: complaint.SubmitterPhone,
		Title:          complaint.Title,
		Category:       complaint.Category,
		Description:    complaint.Description,
		Status:         complaint.Status,
		Area:           complaint.Area,
		Address:        complaint.Address,
		AISummary:      complaint.AISummary,
		CreatedAt:      complaint.CreatedAt,
		ResolvedAt:     complaint.ResolvedAt,
		Thread:         thread,
	}
}

func messageResponse(msg *domain.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:         msg.ID,
		SenderID:   msg.SenderID,
		SenderName: msg.SenderName,
		Text:       msg.Text,
		Origin:     msg.Origin,
		CreatedAt:  msg.CreatedAt,
	}
}
