package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/constituent-office/internal/auth"
	"github.com/spec-kit/constituent-office/internal/domain"
	"github.com/spec-kit/constituent-office/internal/repository"
	apperrors "github.com/spec-kit/constituent-office/pkg/util"
)

// DirectoryService manages the office roster. All operations are
// supervisor-only; staff accounts are soft-deactivated, never deleted,
// so complaints keep valid author references.
type DirectoryService struct {
	actors     repository.ActorRepository
	bcryptCost int
}

// StaffInput describes a new or rescoped staff member.
type StaffInput struct {
	FullName    string
	PhoneNumber string
	Password    string
	Scope       []domain.Category
}

// NewDirectoryService constructs the service.
func NewDirectoryService(actors repository.ActorRepository, bcryptCost int) *DirectoryService {
	return &DirectoryService{actors: actors, bcryptCost: bcryptCost}
}

// ListStaff returns every staff account, active and deactivated.
func (s *DirectoryService) ListStaff(ctx context.Context, actor *domain.Actor) ([]domain.Actor, error) {
	if actor.Role != domain.RoleSupervisor {
		return nil, apperrors.NewForbidden("supervisor access required")
	}
	staff, err := s.actors.ListByRole(ctx, domain.RoleStaff)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}

// CreateStaff provisions a staff account with a category scope. The ALL
// sentinel grants full visibility; otherwise each entry must be a real
// category.
func (s *DirectoryService) CreateStaff(ctx context.Context, actor *domain.Actor, input StaffInput) (*domain.Actor, error) {
	if actor.Role != domain.RoleSupervisor {
		return nil, apperrors.NewForbidden("supervisor access required")
	}
	fullName := strings.TrimSpace(input.FullName)
	phone := strings.TrimSpace(input.PhoneNumber)
	if fullName == "" || phone == "" || input.Password == "" {
		return nil, apperrors.NewValidationError("full name, phone number and password required", nil)
	}
	if err := validateScope(input.Scope); err != nil {
		return nil, err
	}

	if existing, err := s.actors.GetByPhone(ctx, phone); err == nil && existing != nil {
		return nil, apperrors.NewConflict("phone number already registered", map[string]any{"phone_number": phone})
	} else if err != nil && err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	member := &domain.Actor{
		FullName:      fullName,
		PhoneNumber:   phone,
		PasswordHash:  hash,
		Role:          domain.RoleStaff,
		CategoryScope: input.Scope,
		Area:          domain.AreaQanatarCenter,
		Active:        true,
	}
	if err := s.actors.Create(ctx, member); err != nil {
		return nil, apperrors.MapError(err)
	}
	return member, nil
}

// Rescope replaces a staff member's category scope.
func (s *DirectoryService) Rescope(ctx context.Context, actor *domain.Actor, staffID string, scope []domain.Category) (*domain.Actor, error) {
	if actor.Role != domain.RoleSupervisor {
		return nil, apperrors.NewForbidden("supervisor access required")
	}
	if err := validateScope(scope); err != nil {
		return nil, err
	}

	member, err := s.staffMember(ctx, staffID)
	if err != nil {
		return nil, err
	}
	member.CategoryScope = scope
	if err := s.actors.Update(ctx, member); err != nil {
		return nil, apperrors.MapError(err)
	}
	return member, nil
}

// Deactivate soft-disables a staff account. The row stays so complaint
// threads keep their author names; tokens stop working at the next
// middleware check.
func (s *DirectoryService) Deactivate(ctx context.Context, actor *domain.Actor, staffID string) error {
	if actor.Role != domain.RoleSupervisor {
		return apperrors.NewForbidden("supervisor access required")
	}
	member, err := s.staffMember(ctx, staffID)
	if err != nil {
		return err
	}
	if !member.Active {
		return nil
	}
	member.Active = false
	if err := s.actors.Update(ctx, member); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (s *DirectoryService) staffMember(ctx context.Context, staffID string) (*domain.Actor, error) {
	member, err := s.actors.GetByID(ctx, staffID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("staff member", map[string]any{"id": staffID})
		}
		return nil, apperrors.MapError(err)
	}
	if member.Role != domain.RoleStaff {
		return nil, apperrors.NewNotFound("staff member", map[string]any{"id": staffID})
	}
	return member, nil
}

func validateScope(scope []domain.Category) error {
	if len(scope) == 0 {
		return apperrors.NewValidationError("category scope required", nil)
	}
	for _, c := range scope {
		if c != domain.CategoryAll && !c.Valid() {
			return apperrors.NewValidationError("unknown category in scope", map[string]any{"category": c})
		}
	}
	return nil
}
