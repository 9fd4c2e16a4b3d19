package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/constituent-office/internal/auth"
	"github.com/spec-kit/constituent-office/internal/domain"
	"github.com/spec-kit/constituent-office/internal/events"
	"github.com/spec-kit/constituent-office/internal/repository"
	apperrors "github.com/spec-kit/constituent-office/pkg/util"
)

// AuthService handles citizen self-registration, credential login and
// password changes. Phone number is the login identity.
type AuthService struct {
	actors     repository.ActorRepository
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies bundles collaborators for the auth service.
type AuthDependencies struct {
	ActorRepo  repository.ActorRepository
	Tokens     *auth.TokenManager
	Dispatcher events.Dispatcher
	BcryptCost int
}

// RegisterInput is the citizen self-registration payload.
type RegisterInput struct {
	FullName    string
	PhoneNumber string
	Password    string
	Area        domain.Area
	Address     string
}

// Session is the result of a successful login or registration.
type Session struct {
	Actor     *domain.Actor
	Token     string
	ExpiresAt time.Time
}

// NewAuthService constructs the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		actors:     deps.ActorRepo,
		tokens:     deps.Tokens,
		dispatcher: deps.Dispatcher,
		bcryptCost: deps.BcryptCost,
	}
}

// Register creates a citizen account and opens a session for it.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	fullName := strings.TrimSpace(input.FullName)
	phone := strings.TrimSpace(input.PhoneNumber)
	if fullName == "" || phone == "" || input.Password == "" {
		return nil, apperrors.NewValidationError("full name, phone number and password required", nil)
	}
	if !input.Area.Valid() {
		return nil, apperrors.NewValidationError("unknown area", map[string]any{"area": input.Area})
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

	actor := &domain.Actor{
		FullName:     fullName,
		PhoneNumber:  phone,
		PasswordHash: hash,
		Role:         domain.RoleCitizen,
		Area:         input.Area,
		Address:      strings.TrimSpace(input.Address),
		Active:       true,
	}
	if err := s.actors.Create(ctx, actor); err != nil {
		return nil, apperrors.MapError(err)
	}
	return s.openSession(ctx, actor)
}

// Login verifies phone and password. Deactivated accounts are rejected
// with the same message as a bad password to avoid probing.
func (s *AuthService) Login(ctx context.Context, phone, password string) (*Session, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || password == "" {
		return nil, apperrors.NewValidationError("phone number and password required", nil)
	}

	actor, err := s.actors.GetByPhone(ctx, phone)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, apperrors.MapError(err)
	}
	if !actor.Active {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := auth.ComparePassword(actor.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	return s.openSession(ctx, actor)
}

// ChangePassword rotates the caller's own password after verifying the
// current one.
func (s *AuthService) ChangePassword(ctx context.Context, actor *domain.Actor, current, next string) error {
	if next == "" {
		return apperrors.NewValidationError("new password required", nil)
	}
	if err := auth.ComparePassword(actor.PasswordHash, current); err != nil {
		return apperrors.NewUnauthorized("current password does not match")
	}

	hash, err := auth.HashPassword(next, s.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}
	actor.PasswordHash = hash
	if err := s.actors.Update(ctx, actor); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (s *AuthService) openSession(ctx context.Context, actor *domain.Actor) (*Session, error) {
	token, expiresAt, err := s.tokens.GenerateToken(actor.ID, actor.Role)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventActorLoggedIn,
			Actor:     eventActor(actor),
			Timestamp: time.Now(),
			Payload:   events.ActorLoggedInPayload{FullName: actor.FullName},
		})
	}
	return &Session{Actor: actor, Token: token, ExpiresAt: expiresAt}, nil
}
