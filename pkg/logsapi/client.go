package logsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client is the HTTP wrapper for the LookingGlass log REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Options tunes the client. The zero value means no timeout and no pacing.
type Options struct {
	Timeout         time.Duration
	RateLimitPerSec float64
	Burst           int
	HTTPClient      *http.Client // overrides Timeout when set
}

// NewClient creates a new log API client for baseURL, e.g. "http://127.0.0.1:8080".
func NewClient(baseURL string, opt Options) *Client {
	httpClient := opt.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opt.Timeout}
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opt.RateLimitPerSec > 0 {
		burst := opt.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opt.RateLimitPerSec), burst)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		limiter:    limiter,
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListLogs fetches the full collection via GET /api/logs, in server order.
func (c *Client) ListLogs(ctx context.Context) ([]Log, error) {
	_, body, err := c.send(ctx, http.MethodGet, logsPath, nil)
	if err != nil {
		return nil, err
	}

	var logs []Log
	if err := json.Unmarshal(body, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode logs list response: %w", err)
	}
	return logs, nil
}

// GetLog fetches a single log via GET /api/logs/{id}.
func (c *Client) GetLog(ctx context.Context, id string) (*Log, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	_, body, err := c.send(ctx, http.MethodGet, logPath(id), nil)
	if err != nil {
		return nil, err
	}

	var l Log
	if err := json.Unmarshal(body, &l); err != nil {
		return nil, fmt.Errorf("failed to decode log get response: %w", err)
	}
	return &l, nil
}

// CreateLog creates a log via POST /api/logs. A successful call never fails
// because of the response body; the body shape is reported in CreateResult.Kind.
func (c *Client) CreateLog(ctx context.Context, req LogRequest) (CreateResult, error) {
	status, body, err := c.send(ctx, http.MethodPost, logsPath, req)
	if err != nil {
		return CreateResult{}, err
	}

	l, kind := decodeLog(body)
	return CreateResult{Kind: kind, Log: l, StatusCode: status}, nil
}

// UpdateLog replaces a log via PUT /api/logs/{id}. The returned Log is nil
// unless the server echoed a decodable entry.
func (c *Client) UpdateLog(ctx context.Context, id string, req LogRequest) (*Log, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	_, body, err := c.send(ctx, http.MethodPut, logPath(id), req)
	if err != nil {
		return nil, err
	}

	l, _ := decodeLog(body)
	return l, nil
}

// DeleteLog removes a log via DELETE /api/logs/{id}.
func (c *Client) DeleteLog(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	_, _, err := c.send(ctx, http.MethodDelete, logPath(id), nil)
	return err
}

// Info fetches the API description via GET /api/.
func (c *Client) Info(ctx context.Context) (*Info, error) {
	_, body, err := c.send(ctx, http.MethodGet, infoPath, nil)
	if err != nil {
		return nil, err
	}

	var info Info
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to decode info response: %w", err)
	}
	return &info, nil
}

// send performs one request and returns the status and full body of a 2xx
// response. Non-2xx responses become *APIError.
func (c *Client) send(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, fmt.Errorf("failed to wait for request slot: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to call logs API %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, nil, &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}
	}
	return resp.StatusCode, body, nil
}

// decodeLog interprets a mutation response body. A body that is JSON but
// carries no id can't be placed in a collection and counts as undecodable.
func decodeLog(body []byte) (*Log, CreateKind) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, CreatedEmptyBody
	}

	var l Log
	if err := json.Unmarshal(body, &l); err != nil || l.ID == "" {
		return nil, CreatedUndecodable
	}
	return &l, CreatedWithBody
}

// errorMessage extracts a human readable message from a failed response body.
func errorMessage(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Error != "" {
			return eb.Error
		}
		if eb.Message != "" {
			return eb.Message
		}
	}

	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return string(body)
}

func logPath(id string) string {
	return logsPath + "/" + url.PathEscape(id)
}
