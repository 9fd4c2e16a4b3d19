package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/constituent-office/internal/assistant"
	"github.com/spec-kit/constituent-office/internal/domain"
	"github.com/spec-kit/constituent-office/internal/events"
)

// memComplaintRepo is an in-memory ComplaintRepository for service tests.
type memComplaintRepo struct {
	mu       sync.Mutex
	order    []string
	records  map[string]domain.Complaint
	messages map[string][]domain.Message
}

func newMemComplaintRepo() *memComplaintRepo {
	return &memComplaintRepo{
		records:  make(map[string]domain.Complaint),
		messages: make(map[string][]domain.Message),
	}
}

func (r *memComplaintRepo) Create(_ context.Context, complaint *domain.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if complaint.ID == "" {
		complaint.ID = uuid.NewString()
	}
	if complaint.CreatedAt.IsZero() {
		complaint.CreatedAt = time.Now()
	}
	r.order = append(r.order, complaint.ID)
	r.records[complaint.ID] = *complaint
	return nil
}

func (r *memComplaintRepo) Update(_ context.Context, complaint *domain.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.records[complaint.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Status = complaint.Status
	stored.AISummary = complaint.AISummary
	stored.ResolvedAt = complaint.ResolvedAt
	r.records[complaint.ID] = stored
	return nil
}

func (r *memComplaintRepo) GetByID(_ context.Context, id string) (*domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	stored.Thread = append([]domain.Message(nil), r.messages[id]...)
	return &stored, nil
}

func (r *memComplaintRepo) ListAll(_ context.Context) ([]domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Complaint, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out, nil
}

func (r *memComplaintRepo) AppendMessage(_ context.Context, complaintID string, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[complaintID]; !ok {
		return pgx.ErrNoRows
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	r.messages[complaintID] = append(r.messages[complaintID], *msg)
	return nil
}

func (r *memComplaintRepo) ListMessages(_ context.Context, complaintID string) ([]domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Message(nil), r.messages[complaintID]...), nil
}

// memActorRepo is an in-memory ActorRepository.
type memActorRepo struct {
	mu      sync.Mutex
	order   []string
	records map[string]domain.Actor
}

func newMemActorRepo() *memActorRepo {
	return &memActorRepo{records: make(map[string]domain.Actor)}
}

func (r *memActorRepo) Create(_ context.Context, actor *domain.Actor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if actor.ID == "" {
		actor.ID = uuid.NewString()
	}
	actor.CreatedAt = time.Now()
	actor.UpdatedAt = actor.CreatedAt
	r.order = append(r.order, actor.ID)
	r.records[actor.ID] = *actor
	return nil
}

func (r *memActorRepo) Update(_ context.Context, actor *domain.Actor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[actor.ID]; !ok {
		return pgx.ErrNoRows
	}
	actor.UpdatedAt = time.Now()
	r.records[actor.ID] = *actor
	return nil
}

func (r *memActorRepo) GetByID(_ context.Context, id string) (*domain.Actor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.records[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &stored, nil
}

func (r *memActorRepo) GetByPhone(_ context.Context, phone string) (*domain.Actor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		if r.records[id].PhoneNumber == phone {
			stored := r.records[id]
			return &stored, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memActorRepo) ListByRole(_ context.Context, role domain.Role) ([]domain.Actor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Actor
	for _, id := range r.order {
		if r.records[id].Role == role {
			out = append(out, r.records[id])
		}
	}
	return out, nil
}

// memTeamMessageRepo is an in-memory TeamMessageRepository.
type memTeamMessageRepo struct {
	mu       sync.Mutex
	channels map[domain.ChannelAddress][]domain.TeamMessage
}

func newMemTeamMessageRepo() *memTeamMessageRepo {
	return &memTeamMessageRepo{channels: make(map[domain.ChannelAddress][]domain.TeamMessage)}
}

func (r *memTeamMessageRepo) Append(_ context.Context, msg *domain.TeamMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	r.channels[msg.Channel] = append(r.channels[msg.Channel], *msg)
	return nil
}

func (r *memTeamMessageRepo) ListByChannel(_ context.Context, channel domain.ChannelAddress) ([]domain.TeamMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.TeamMessage(nil), r.channels[channel]...), nil
}

// stubAssistant returns canned collaborator output.
type stubAssistant struct {
	summary string
	welcome string
	refined string
}

func (s stubAssistant) Summarize(context.Context, string) string {
	if s.summary == "" {
		return assistant.SummaryFallback
	}
	return s.summary
}

func (s stubAssistant) WelcomeMessage(context.Context, string, string) string {
	if s.welcome == "" {
		return assistant.WelcomeFallback
	}
	return s.welcome
}

func (s stubAssistant) Refine(_ context.Context, draft string, _ assistant.ReplyContext) string {
	if s.refined == "" {
		return draft
	}
	return s.refined
}

// recordingDispatcher captures published events and still fans out to
// subscribers.
type recordingDispatcher struct {
	mu        sync.Mutex
	published []events.Event
	listeners map[events.EventType][]events.EventHandler
}

func newRecordingDispatcher() *recordingDispatcher {
	return &recordingDispatcher{listeners: make(map[events.EventType][]events.EventHandler)}
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.mu.Lock()
	d.published = append(d.published, event)
	handlers := append([]events.EventHandler(nil), d.listeners[event.Type]...)
	d.mu.Unlock()
	for _, handler := range handlers {
		_ = handler(ctx, event)
	}
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], handler)
}

func (d *recordingDispatcher) byType(eventType events.EventType) []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []events.Event
	for _, e := range d.published {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

func citizen(id, name string) *domain.Actor {
	return &domain.Actor{
		ID:       id,
		FullName: name,
		Role:     domain.RoleCitizen,
		Area:     domain.AreaQanatarCenter,
		Active:   true,
	}
}

func staff(id, name string, scope ...domain.Category) *domain.Actor {
	return &domain.Actor{
		ID:            id,
		FullName:      name,
		Role:          domain.RoleStaff,
		CategoryScope: scope,
		Active:        true,
	}
}

func supervisor(id string) *domain.Actor {
	return &domain.Actor{
		ID:       id,
		FullName: "Office Supervisor",
		Role:     domain.RoleSupervisor,
		Active:   true,
	}
}
