package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Client calls the external ai-service for achievement suggestions and
// resume scoring. The rendering core never touches this client; it only
// consumes the resolved text the host passes in.
type Client struct {
	BaseURL         string
	HTTP            *http.Client
	DefaultLanguage string
}

func NewClient(baseURL, defaultLanguage string) *Client {
	if baseURL == "" {
		baseURL = "http://ai-service:8000"
	}
	return &Client{
		BaseURL:         baseURL,
		HTTP:            &http.Client{Timeout: 60 * time.Second},
		DefaultLanguage: defaultLanguage,
	}
}

// ErrPremiumRequired signals that the caller's plan does not cover the
// requested AI feature (HTTP 403 from the service).
var ErrPremiumRequired = errors.New("ai: premium plan required")

// RateLimitError signals an HTTP 429 from the service, carrying the
// suggested wait before retrying.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("ai: rate limited, retry after %s", e.RetryAfter)
}

// Suggestion is one AI-proposed achievement or project description.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ChecklistItem is one line of the scoring checklist.
type ChecklistItem struct {
	Label  string `json:"label"`
	Passed bool   `json:"passed"`
	Hint   string `json:"hint,omitempty"`
}

// Score is the structured result of scoring a generated resume.
type Score struct {
	Total     int             `json:"total"`
	Checklist []ChecklistItem `json:"checklist"`
}

// SuggestAchievements asks the service for achievement suggestions for the
// given profession, taking existing projects into account so suggestions
// don't duplicate them.
func (c *Client) SuggestAchievements(ctx context.Context, profession string, existingProjects []string, language string) ([]Suggestion, error) {
	if language == "" {
		language = c.DefaultLanguage
	}
	body, err := json.Marshal(map[string]interface{}{
		"profession": profession,
		"projects":   existingProjects,
		"language":   language,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.doPostWithRetry(ctx, "/v1/suggestions", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := serviceError(resp); err != nil {
		return nil, err
	}

	var out struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("ai: decode suggestions: %w", err)
	}
	return out.Suggestions, nil
}

// ScoreResume submits a resume payload and returns the service's checklist
// score.
func (c *Client) ScoreResume(ctx context.Context, resume map[string]interface{}) (*Score, error) {
	body, err := json.Marshal(map[string]interface{}{"resume": resume})
	if err != nil {
		return nil, err
	}

	resp, err := c.doPostWithRetry(ctx, "/v1/score", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := serviceError(resp); err != nil {
		return nil, err
	}

	var out Score
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("ai: decode score: %w", err)
	}
	return &out, nil
}

// serviceError maps the service's error statuses onto the client's error
// taxonomy. Rate limits and premium gates are not retried here; they are
// surfaced for the caller to present to the user.
func serviceError(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		retry := 30 * time.Second
		if v := resp.Header.Get("Retry-After"); v != "" {
			if secs, err := strconv.Atoi(v); err == nil {
				retry = time.Duration(secs) * time.Second
			}
		}
		return &RateLimitError{RetryAfter: retry}
	case resp.StatusCode == http.StatusForbidden:
		return ErrPremiumRequired
	case resp.StatusCode >= 400:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("ai: service returned %d: %s", resp.StatusCode, string(b))
	}
	return nil
}

// doPostWithRetry performs an HTTP POST to the given path with retry and
// backoff on transport failures. HTTP-level errors are returned to the
// caller untouched.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		// exponential backoff before retrying
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}
