package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrUnreachable wraps transport failures: refused connections, DNS errors,
	// cancelled contexts.
	ErrUnreachable = errors.New("backend not reachable")
	// ErrMalformedResponse wraps bodies that are not a JSON object.
	ErrMalformedResponse = errors.New("malformed backend response")
)

const (
	commandPath = "/command"
	voicePath   = "/voice"
	resumePath  = "/resume"

	requestIDHeader = "X-Request-ID"
	userAgent       = "AIPROS-Console/1.0"
)

// Client talks to the AIPROS command backend over JSON/HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client rooted at baseURL. No timeout is applied beyond
// the context passed to each call.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Command posts {"text": text} to /command.
func (c *Client) Command(ctx context.Context, text string) (*CommandResponse, error) {
	var resp CommandResponse
	if err := c.post(ctx, commandPath, CommandRequest{Text: text}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Voice asks the backend to capture one utterance from its microphone.
func (c *Client) Voice(ctx context.Context) (*VoiceResponse, error) {
	var resp VoiceResponse
	if err := c.post(ctx, voicePath, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Resume answers a needs_confirmation reply with the user's choice.
func (c *Client) Resume(ctx context.Context, choice string, data map[string]any) (*CommandResponse, error) {
	if data == nil {
		data = map[string]any{}
	}
	var resp CommandResponse
	if err := c.post(ctx, resumePath, ResumeRequest{Choice: choice, Data: data}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", path, err)
	}

	requestID := uuid.NewString()
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(requestIDHeader, requestID)

	log := c.logger.With(zap.String("path", path), zap.String("request_id", requestID))
	log.Debug("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("failed to read response", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	// The body is decoded whatever the HTTP status is; the status field
	// decides how the reply is shown.
	if !bytes.HasPrefix(bytes.TrimSpace(respBody), []byte("{")) {
		log.Warn("response is not a JSON object", zap.Int("http_status", resp.StatusCode))
		return fmt.Errorf("%w (HTTP %d): not a JSON object", ErrMalformedResponse, resp.StatusCode)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		log.Warn("failed to decode response", zap.Int("http_status", resp.StatusCode), zap.Error(err))
		return fmt.Errorf("%w (HTTP %d): %v", ErrMalformedResponse, resp.StatusCode, err)
	}

	log.Debug("received response", zap.Int("http_status", resp.StatusCode))
	return nil
}
