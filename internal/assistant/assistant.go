// Package assistant isolates the external text-generation collaborator
// behind a narrow interface. Every call either returns usable text or a
// deterministic fallback; no failure ever propagates into the core.
package assistant

import "context"

// Fallback strings substituted whenever the collaborator fails, times out
// or is disabled. Refine falls back to the caller's own draft.
const (
	SummaryFallback = "Automatic summary unavailable."
	WelcomeFallback = "Thank you for contacting us. Your complaint has been received."
)

// ReplyContext carries the complaint details a refined reply addresses.
type ReplyContext struct {
	CitizenName          string
	ComplaintTitle       string
	ComplaintDescription string
}

// Service is the text-generation collaborator consumed by the lifecycle
// manager. Implementations must never return an error: a failed call
// degrades to the documented fallback string.
type Service interface {
	// Summarize condenses a complaint description into one sentence.
	Summarize(ctx context.Context, text string) string
	// WelcomeMessage drafts a short receipt confirmation for a citizen.
	WelcomeMessage(ctx context.Context, citizenName, complaintTitle string) string
	// Refine rewrites a staff draft into a formal reply.
	Refine(ctx context.Context, draft string, reply ReplyContext) string
}

// Disabled is the no-op collaborator used when no API key is configured.
type Disabled struct{}

func (Disabled) Summarize(context.Context, string) string { return SummaryFallback }

func (Disabled) WelcomeMessage(context.Context, string, string) string { return WelcomeFallback }

func (Disabled) Refine(_ context.Context, draft string, _ ReplyContext) string { return draft }
