// Package scoreapi is the client for the optional third-party resume scoring
// service. Different deployments of the service name the score field
// differently; the client accepts all known spellings and validates the
// response shape before trusting it. Callers are expected to fall back to
// local keyword scoring when this client errors.
package scoreapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/xeipuuv/gojsonschema"
)

// DefaultTimeout is the default request timeout for the scoring service.
const DefaultTimeout = 30 * time.Second

// responseSchema accepts any object carrying at least one numeric score
// under a known field name.
const responseSchema = `{
	"type": "object",
	"anyOf": [
		{"required": ["score"], "properties": {"score": {"type": "number"}}},
		{"required": ["rscore"], "properties": {"rscore": {"type": "number"}}},
		{"required": ["resumeScore"], "properties": {"resumeScore": {"type": "number"}}},
		{"required": ["ResumeScore"], "properties": {"ResumeScore": {"type": "number"}}}
	]
}`

// scoreFields is the extraction priority order for the score value.
var scoreFields = []string{"score", "rscore", "resumeScore", "ResumeScore"}

// Config holds the scoring service settings. It is passed in explicitly;
// there is no process-wide credential state.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Error represents a failure talking to the scoring service.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("score API error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("score API error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client calls the external scoring service.
type Client struct {
	cfg    Config
	client *http.Client
	schema *gojsonschema.Schema
}

// New creates a scoring client from config.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("score API base URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(responseSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile response schema: %w", err)
	}

	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		schema: schema,
	}, nil
}

// scoreRequest is the payload sent to the scoring service.
type scoreRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
	Email          string `json:"email"`
}

// Score submits one candidate and returns the numeric score. Any transport
// failure, non-2xx status, or unusable body is returned as *Error.
func (c *Client) Score(ctx context.Context, resumeText, jobDescription, email string) (float64, error) {
	payload, err := json.Marshal(scoreRequest{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		Email:          email,
	})
	if err != nil {
		return 0, &Error{URL: c.cfg.BaseURL, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return 0, &Error{URL: c.cfg.BaseURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, &Error{URL: c.cfg.BaseURL, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, &Error{URL: c.cfg.BaseURL, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, &Error{
			URL:     c.cfg.BaseURL,
			Message: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	return c.extractScore(body)
}

// extractScore validates the body shape and pulls the score out of the first
// known field present.
func (c *Client) extractScore(body []byte) (float64, error) {
	result, err := c.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return 0, &Error{URL: c.cfg.BaseURL, Message: "unparseable response body", Cause: err}
	}
	if !result.Valid() {
		return 0, &Error{URL: c.cfg.BaseURL, Message: "response carries no numeric score field"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return 0, &Error{URL: c.cfg.BaseURL, Message: "unparseable response body", Cause: err}
	}

	for _, name := range scoreFields {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		var score float64
		if err := json.Unmarshal(raw, &score); err != nil {
			continue
		}
		return score, nil
	}

	return 0, &Error{URL: c.cfg.BaseURL, Message: "response carries no numeric score field"}
}
