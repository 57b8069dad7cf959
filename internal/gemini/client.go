// Package gemini is the AI orchestration layer: it builds language-specific
// prompts, calls the Gemini generateContent API, validates and clamps the
// structured responses, retries transient failures, and degrades to local
// fallbacks when the service is unusable. Callers never see a raw API
// failure; every operation resolves to usable text or analysis.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/adityawrm/mindbloom-backend/internal/config"
	"github.com/adityawrm/mindbloom-backend/internal/sentiment"
)

// Locale supplies the process-wide request context every call needs: the
// active display language and the API key (user override or env default).
type Locale interface {
	Language() string
	APIKey() string
}

// Client talks to the Gemini generateContent endpoint.
type Client struct {
	baseURL string
	model   string
	http    *http.Client
	locale  Locale
	log     *zap.Logger

	// backoffInitial is the first retry delay for the advice request;
	// tests shrink it.
	backoffInitial time.Duration
	// rng feeds fallback emotion synthesis; nil means the package default.
	rng sentiment.Rand
}

// NewClient builds a client from configuration. The base URL is
// configurable so tests can point it at a local server.
func NewClient(cfg config.GeminiConfig, locale Locale, log *zap.Logger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		model:          cfg.Model,
		http:           &http.Client{Timeout: cfg.Timeout},
		locale:         locale,
		log:            log,
		backoffInitial: time.Second,
	}
}

type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []requestPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// apiError preserves the HTTP status so the retry policy can distinguish a
// temporarily unavailable service from a permanent failure.
type apiError struct {
	status int
	body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("gemini api error: status %d: %s", e.status, e.body)
}

func retryable(err error) bool {
	if apiErr, ok := err.(*apiError); ok {
		return apiErr.status == http.StatusServiceUnavailable
	}
	return false
}

// generate sends one prompt and returns the first candidate's text.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	body, err := json.Marshal(generateRequest{
		Contents: []requestContent{{Parts: []requestPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-goog-api-key", c.locale.APIKey())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &apiError{status: resp.StatusCode, body: string(respBody)}
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode error: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// stripFences removes an optional markdown code-fence wrapper (with or
// without a json tag) around a model response.
func stripFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, "```json"))
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, "```"))
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, "```"))
	}
	return cleaned
}
