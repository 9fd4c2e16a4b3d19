package assistant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/spec-kit/constituent-office/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(config.AssistantConfig{
		BaseURL:        server.URL,
		APIKey:         "test-key",
		Model:          "test-model",
		TimeoutSeconds: 2,
	}, zaptest.NewLogger(t))
}

func TestClientReturnsGeneratedText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "test-model")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Short summary."}]}}]}`))
	})

	assert.Equal(t, "Short summary.", client.Summarize(context.Background(), "long description"))
}

func TestClientFallsBackOnServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	assert.Equal(t, SummaryFallback, client.Summarize(context.Background(), "text"))
	assert.Equal(t, WelcomeFallback, client.WelcomeMessage(context.Background(), "Mona", "Title"))
	assert.Equal(t, "my draft", client.Refine(context.Background(), "my draft", ReplyContext{}))
}

func TestClientFallsBackOnEmptyCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	assert.Equal(t, SummaryFallback, client.Summarize(context.Background(), "text"))
}

func TestClientFallsBackOnGarbage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	assert.Equal(t, SummaryFallback, client.Summarize(context.Background(), "text"))
}

func TestNewWithoutAPIKeyIsDisabled(t *testing.T) {
	client := New(config.AssistantConfig{}, zaptest.NewLogger(t))

	assert.IsType(t, Disabled{}, client)
	assert.Equal(t, SummaryFallback, client.Summarize(context.Background(), "text"))
	assert.Equal(t, "draft", client.Refine(context.Background(), "draft", ReplyContext{}))
}
