package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/constituent-office/internal/assistant"
	"github.com/spec-kit/constituent-office/internal/domain"
	"github.com/spec-kit/constituent-office/internal/events"
	"github.com/spec-kit/constituent-office/internal/repository"
	apperrors "github.com/spec-kit/constituent-office/pkg/util"
)

// Sender identity used for assistant-originated thread messages.
const (
	assistantSenderID   = "assistant"
	assistantSenderName = "Reception Assistant"
)

// ComplaintService owns complaint records, their status transitions and
// their correspondence threads.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	assistant  assistant.Service
	dispatcher events.Dispatcher

	// Writes to one complaint are serialized per id so a status change
	// and a message append cannot race into a lost update.
	locks sync.Map
}

// ComplaintDependencies bundles collaborators for the complaint service.
type ComplaintDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	Assistant     assistant.Service
	Dispatcher    events.Dispatcher
}

// ComplaintCreateInput describes the submission payload.
type ComplaintCreateInput struct {
	Title       string
	Category    domain.Category
	Description string
}

// NewComplaintService constructs the service.
func NewComplaintService(deps ComplaintDependencies) *ComplaintService {
	return &ComplaintService{
		complaints: deps.ComplaintRepo,
		assistant:  deps.Assistant,
		dispatcher: deps.Dispatcher,
	}
}

// Create registers a new complaint for the submitting citizen. The thread
// opens with one assistant-drafted welcome message; a collaborator failure
// degrades to the fixed fallback and never fails the operation.
func (s *ComplaintService) Create(ctx context.Context, submitter *domain.Actor, input ComplaintCreateInput) (*domain.Complaint, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return nil, apperrors.NewValidationError("title and description required", nil)
	}
	if !input.Category.Valid() {
		return nil, apperrors.NewValidationError("unknown category", map[string]any{"category": input.Category})
	}

	area := submitter.Area
	if !area.Valid() {
		area = domain.AreaQanatarCenter
	}

	complaint := &domain.Complaint{
		SubmitterID:    submitter.ID,
		SubmitterName:  submitter.FullName,
		SubmitterPhone: submitter.PhoneNumber,
		Title:          title,
		Category:       input.Category,
		Description:    description,
		Status:         domain.StatusPending,
		Area:           area,
		Address:        submitter.Address,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, apperrors.MapError(err)
	}

	welcome := &domain.Message{
		SenderID:   assistantSenderID,
		SenderName: assistantSenderName,
		Text:       s.assistant.WelcomeMessage(ctx, submitter.FullName, title),
		Origin:     domain.OriginAIAssisted,
	}
	if err := s.complaints.AppendMessage(ctx, complaint.ID, welcome); err != nil {
		return nil, apperrors.MapError(err)
	}
	complaint.Thread = append(complaint.Thread, *welcome)

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintCreated,
		ComplaintID: complaint.ID,
		Actor:       eventActor(submitter),
		Payload: events.ComplaintCreatedPayload{
			Title:    complaint.Title,
			Category: complaint.Category,
			Area:     complaint.Area,
		},
	})
	return complaint, nil
}

// SetStatus moves a complaint to any member of the status vocabulary.
// Citizens are read/append-only and may never mutate status; re-opening a
// resolved or rejected complaint is permitted.
func (s *ComplaintService) SetStatus(ctx context.Context, actor *domain.Actor, complaintID string, newStatus domain.Status) (*domain.Complaint, error) {
	if actor.Role == domain.RoleCitizen {
		return nil, apperrors.NewForbidden("citizens cannot change complaint status")
	}
	if !newStatus.Valid() {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": newStatus})
	}

	unlock := s.lock(complaintID)
	defer unlock()

	complaint, err := s.visibleComplaint(ctx, actor, complaintID)
	if err != nil {
		return nil, err
	}

	oldStatus := complaint.Status
	complaint.Status = newStatus
	if newStatus == domain.StatusResolved {
		now := time.Now()
		complaint.ResolvedAt = &now
	} else {
		complaint.ResolvedAt = nil
	}
	if err := s.complaints.Update(ctx, complaint); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintStatusChanged,
		ComplaintID: complaint.ID,
		Actor:       eventActor(actor),
		Payload: events.StatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return complaint, nil
}

// AppendMessage adds one correspondence entry. Any actor whose visible set
// covers the complaint may append.
func (s *ComplaintService) AppendMessage(ctx context.Context, actor *domain.Actor, complaintID, text string) (*domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidationError("message text required", nil)
	}

	unlock := s.lock(complaintID)
	defer unlock()

	complaint, err := s.visibleComplaint(ctx, actor, complaintID)
	if err != nil {
		return nil, err
	}

	msg := &domain.Message{
		SenderID:   actor.ID,
		SenderName: actor.FullName,
		Text:       text,
		Origin:     domain.OriginHuman,
	}
	if err := s.complaints.AppendMessage(ctx, complaint.ID, msg); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintMessageAdded,
		ComplaintID: complaint.ID,
		Actor:       eventActor(actor),
		Payload: events.MessageAddedPayload{
			MessageID:   msg.ID,
			Origin:      msg.Origin,
			TextPreview: textPreview(msg.Text, 120),
		},
	})
	return msg, nil
}

// Get loads one complaint with its thread, gated by visibility. The first
// time a non-citizen opens a complaint an automatic summary is produced
// and stored; the summarize call degrades to its fallback silently.
func (s *ComplaintService) Get(ctx context.Context, actor *domain.Actor, complaintID string) (*domain.Complaint, error) {
	complaint, err := s.visibleComplaint(ctx, actor, complaintID)
	if err != nil {
		return nil, err
	}

	if actor.Role != domain.RoleCitizen && complaint.AISummary == "" {
		complaint.AISummary = s.assistant.Summarize(ctx, complaint.Description)
		if err := s.complaints.Update(ctx, complaint); err != nil {
			return nil, apperrors.MapError(err)
		}
	}
	return complaint, nil
}

// Query returns the actor's visible set narrowed by the criteria, newest
// first. It reads one snapshot of the collection, so repeated calls with
// identical inputs yield identical ordered output.
func (s *ComplaintService) Query(ctx context.Context, actor *domain.Actor, criteria QueryCriteria) ([]domain.Complaint, error) {
	all, err := s.complaints.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return FilterComplaints(actor, all, criteria), nil
}

// RefineReply rewrites a staff draft into a formal reply via the
// collaborator. The fallback is the draft itself.
func (s *ComplaintService) RefineReply(ctx context.Context, actor *domain.Actor, complaintID, draft string) (string, error) {
	if actor.Role == domain.RoleCitizen {
		return "", apperrors.NewForbidden("staff access required")
	}
	if strings.TrimSpace(draft) == "" {
		return "", apperrors.NewValidationError("draft required", nil)
	}
	complaint, err := s.visibleComplaint(ctx, actor, complaintID)
	if err != nil {
		return "", err
	}
	return s.assistant.Refine(ctx, draft, assistant.ReplyContext{
		CitizenName:          complaint.SubmitterName,
		ComplaintTitle:       complaint.Title,
		ComplaintDescription: complaint.Description,
	}), nil
}

func (s *ComplaintService) visibleComplaint(ctx context.Context, actor *domain.Actor, complaintID string) (*domain.Complaint, error) {
	complaint, err := s.complaints.GetByID(ctx, complaintID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"id": complaintID})
		}
		return nil, apperrors.MapError(err)
	}
	if !actor.CanSee(complaint) {
		return nil, apperrors.NewForbidden("complaint outside your scope")
	}
	return complaint, nil
}

func (s *ComplaintService) lock(complaintID string) func() {
	val, _ := s.locks.LoadOrStore(complaintID, &sync.Mutex{})
	mu := val.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *ComplaintService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func eventActor(actor *domain.Actor) events.Actor {
	return events.Actor{
		ID:   actor.ID,
		Name: actor.FullName,
		Role: actor.Role,
	}
}

func textPreview(text string, max int) string {
	text = strings.TrimSpace(text)
	if len(text) <= max {
		return text
	}
	if max <= 3 {
		return text[:max]
	}
	return text[:max-3] + "..."
}
