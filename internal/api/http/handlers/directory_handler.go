package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/constituent-office/internal/api/dto"
	"github.com/spec-kit/constituent-office/internal/auth"
	"github.com/spec-kit/constituent-office/internal/domain"
	"github.com/spec-kit/constituent-office/internal/service"
	apperrors "github.com/spec-kit/constituent-office/pkg/util"
)

// DirectoryHandler exposes the supervisor's roster management endpoints.
type DirectoryHandler struct {
	service *service.DirectoryService
}

// NewDirectoryHandler constructs handler.
func NewDirectoryHandler(directoryService *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: directoryService}
}

// List GET /staff.
func (h *DirectoryHandler) List(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	staff, err := h.service.ListStaff(c.Context(), actor)
	if err != nil {
		return err
	}
	items := make([]dto.ActorResponse, 0, len(staff))
	for i := range staff {
		items = append(items, actorResponse(&staff[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /staff.
func (h *DirectoryHandler) Create(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	member, err := h.service.CreateStaff(c.Context(), actor, service.StaffInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Scope:       req.Scope,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": actorResponse(member)})
}

// Rescope PATCH /staff/:id/scope.
func (h *DirectoryHandler) Rescope(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.RescopeStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	member, err := h.service.Rescope(c.Context(), actor, c.Params("id"), req.Scope)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": actorResponse(member)})
}

// Deactivate DELETE /staff/:id.
func (h *DirectoryHandler) Deactivate(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.service.Deactivate(c.Context(), actor, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func actorResponse(actor *domain.Actor) dto.ActorResponse {
	return dto.ActorResponse{
		ID:          actor.ID,
		FullName:    actor.FullName,
		PhoneNumber: actor.PhoneNumber,
		Role:        actor.Role,
		Scope:       actor.CategoryScope,
		Area:        actor.Area,
		Address:     actor.Address,
		Active:      actor.Active,
		CreatedAt:   actor.CreatedAt,
	}
}
