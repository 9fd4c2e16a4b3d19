package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/constituent-office/internal/config"
)

// Client calls a generative-language HTTP endpoint. Each call is bounded by
// the configured timeout; timeout is treated identically to failure.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
	logger  *zap.Logger
}

// New builds the collaborator from config. With no API key it returns the
// Disabled no-op implementation.
func New(cfg config.AssistantConfig, logger *zap.Logger) Service {
	if cfg.APIKey == "" {
		logger.Warn("assistant API key not configured; using fallbacks")
		return Disabled{}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		http:    &http.Client{Timeout: cfg.Timeout()},
		logger:  logger,
	}
}

func (c *Client) Summarize(ctx context.Context, text string) string {
	prompt := fmt.Sprintf(
		"As a technical aide in the representative's office, summarize this complaint in one very short, direct sentence capturing the core request.\n\nComplaint: %s",
		text)
	return c.generate(ctx, prompt, SummaryFallback)
}

func (c *Client) WelcomeMessage(ctx context.Context, citizenName, complaintTitle string) string {
	prompt := fmt.Sprintf(
		"Compose a very short, direct welcome message for citizen %s about their complaint '%s', confirming receipt and the office's attention. Keep it brief and warm.",
		citizenName, complaintTitle)
	return c.generate(ctx, prompt, WelcomeFallback)
}

func (c *Client) Refine(ctx context.Context, draft string, reply ReplyContext) string {
	prompt := fmt.Sprintf(
		"As the official aide of the representative's office, rewrite the staff draft below into a concise, formal final reply addressed to citizen %s regarding '%s'. Keep only the essential information and close politely. Staff draft: %s",
		reply.CitizenName, reply.ComplaintTitle, draft)
	return c.generate(ctx, prompt, draft)
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generate performs one bounded collaborator call and never fails: any
// error path returns the fallback.
func (c *Client) generate(ctx context.Context, prompt, fallback string) string {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return fallback
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fallback
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("assistant call failed", zap.Error(err))
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("assistant call rejected", zap.Int("status", resp.StatusCode))
		return fallback
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.logger.Warn("assistant response unreadable", zap.Error(err))
		return fallback
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return fallback
	}
	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return fallback
	}
	return text
}
