// Package remote is the production storage backend: a thin client for the
// hosted record-store service. Records live in per-entity tables whose
// custom fields carry a "_c" suffix; this package owns the bidirectional
// translation between those storage names and the domain model.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/studytrack/studytrack-api/internal/repository"
	appErrors "github.com/studytrack/studytrack-api/pkg/errors"
)

// Config points the client at a record-store deployment.
type Config struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// Client issues authenticated record-store requests. All calls honor
// context cancellation, so an abandoned page load stops its fetches.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient constructs a record-store client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := cfg.Client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    httpClient,
		logger:  logger,
	}
}

// Stores exposes the client through the shared storage contract.
func (c *Client) Stores() repository.Stores {
	return repository.Stores{
		Courses:     &CourseStore{client: c},
		Assignments: &AssignmentStore{client: c},
		Grades:      &GradeStore{client: c},
	}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) list(ctx context.Context, table string, out interface{}) error {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/api/records/%s", table), nil, out)
}

func (c *Client) get(ctx context.Context, table string, id int, out interface{}) error {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/api/records/%s/%d", table, id), nil, out)
}

func (c *Client) create(ctx context.Context, table string, fields, out interface{}) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/records/%s", table), fields, out)
}

func (c *Client) update(ctx context.Context, table string, id int, fields, out interface{}) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/records/%s/%d", table, id), fields, out)
}

func (c *Client) remove(ctx context.Context, table string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/records/%s/%d", table, id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode record payload")
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build record request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport failures are surfaced as typed errors on every
		// operation, list included, so callers can distinguish a dead
		// backend from an empty collection.
		return appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, appErrors.ErrUnavailable.Message)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "read record response")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.statusError(method, path, resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "decode record envelope")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "decode record data")
	}
	return nil
}

func (c *Client) statusError(method, path string, status int, raw []byte) error {
	message := ""
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error != nil {
		message = env.Error.Message
	}

	c.logger.Warn("record store error",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
	)

	switch {
	case status == http.StatusNotFound:
		return appErrors.Clone(appErrors.ErrNotFound, message)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return appErrors.Clone(appErrors.ErrValidation, message)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return appErrors.Clone(appErrors.ErrUnauthorized, message)
	case status >= http.StatusInternalServerError:
		return appErrors.Clone(appErrors.ErrUnavailable, message)
	default:
		return appErrors.New(appErrors.ErrInternal.Code, status, fmt.Sprintf("record store returned %d", status))
	}
}
