package aiprovider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/asketsystem/lifebook/internal/platform/logger"
)

// ErrGenerationFailed is the single error surfaced for any transport or
// provider failure. Callers are not told why; the creative-content path is
// best-effort and must not leak provider internals.
var ErrGenerationFailed = errors.New("failed to generate AI content")

// Client is the egress point to the chat-completion provider.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration

	// HTTPClient overrides the default transport; used by tests.
	HTTPClient *http.Client
}

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultModel   = "google/gemma-3-4b-it:free"
	defaultTimeout = 2 * time.Minute

	maxTokens   = 1000
	temperature = 0.7

	refererHeader = "https://lifebook.app"
	titleHeader   = "LifeBook AI Service"
)

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("provider API key is required")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &client{
		log:        log.With("service", "AIProviderClient"),
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete issues one chat-completion request. The system message, when
// present, precedes the user message. No retries: a failed generation falls
// back at the formatter layer instead.
func (c *client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	messages := make([]chatMessage, 0, 2)
	if strings.TrimSpace(systemPrompt) != "" {
		messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: userPrompt})

	body := chatRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		c.log.Error("Encoding chat request failed", "error", err)
		return "", ErrGenerationFailed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", &buf)
	if err != nil {
		c.log.Error("Building chat request failed", "error", err)
		return "", ErrGenerationFailed
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", refererHeader)
	req.Header.Set("X-Title", titleHeader)

	res, err := c.httpClient.Do(req)
	if err != nil {
		// Deliberately not wrapping: transport errors can echo the request
		// URL and must never reach the caller.
		c.log.Warn("Chat completion request failed", "model", c.model)
		return "", ErrGenerationFailed
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		c.log.Warn("Reading chat completion response failed", "model", c.model)
		return "", ErrGenerationFailed
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		c.log.Warn("Chat completion rejected", "model", c.model, "status", res.StatusCode)
		return "", ErrGenerationFailed
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		c.log.Warn("Decoding chat completion response failed", "model", c.model)
		return "", ErrGenerationFailed
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "No response generated", nil
	}
	return out.Choices[0].Message.Content, nil
}
