// Package client is a Go consumer of the dashboard API: a thin typed HTTP
// client plus the paginated table controller the list screens are built on.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"adminboard/internal/listing"
)

// Row is one record of a list response. List screens render heterogeneous
// resources, so rows stay schemaless on the client.
type Row map[string]any

// FailureKind classifies API failures the way the screens react to them:
// auth failures force a sign-out, everything else is retryable inline.
type FailureKind int

const (
	FailureInternal FailureKind = iota
	FailureInvalidToken
	FailureTokenExpired
	FailureUserNotFound
	FailureValidation
	FailureTimeout
)

// APIError is a decoded failure envelope.
type APIError struct {
	Kind   FailureKind
	Code   string
	Fields map[string]string
}

func (e *APIError) Error() string {
	switch e.Kind {
	case FailureInvalidToken:
		return "api: invalid token"
	case FailureTokenExpired:
		return "api: token expired"
	case FailureUserNotFound:
		return "api: user not found"
	case FailureValidation:
		return fmt.Sprintf("api: validation failed (%d fields)", len(e.Fields))
	case FailureTimeout:
		return "api: request timed out"
	default:
		return "api: " + e.Code
	}
}

// AuthFailure reports whether the failure invalidates the session.
func (e *APIError) AuthFailure() bool {
	return e.Kind == FailureInvalidToken || e.Kind == FailureTokenExpired
}

// Client calls the dashboard API.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListResult is one page of rows plus the page count for the active filter.
type ListResult struct {
	Rows       []Row
	TotalPages int
}

type envelope struct {
	Result     bool            `json:"result"`
	Message    json.RawMessage `json:"message"`
	TotalPages int             `json:"totalPages"`
	Error      *struct {
		Code string `json:"code"`
	} `json:"error"`
}

// List fetches one page of a resource. resource is the list path, e.g.
// "master-data/countries".
func (c *Client) List(ctx context.Context, resource string, p listing.Params) (ListResult, error) {
	var env envelope
	if err := c.do(ctx, http.MethodPost, "/api/"+resource+"/list", p, &env); err != nil {
		return ListResult{}, err
	}
	if !env.Result {
		return ListResult{}, decodeFailure(env)
	}

	var rows []Row
	if err := json.Unmarshal(env.Message, &rows); err != nil {
		return ListResult{}, &APIError{Kind: FailureInternal, Code: "badResponse"}
	}
	return ListResult{Rows: rows, TotalPages: env.TotalPages}, nil
}

// SoftDelete marks one record deleted. Repeating the call for the same id is
// a successful no-op server side.
func (c *Client) SoftDelete(ctx context.Context, resource string, id int64) error {
	var env envelope
	if err := c.do(ctx, http.MethodPut, "/api/"+resource, map[string]int64{"id": id}, &env); err != nil {
		return err
	}
	if !env.Result {
		return decodeFailure(env)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return &APIError{Kind: FailureTimeout}
		}
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{Kind: FailureInternal, Code: fmt.Sprintf("http %d", resp.StatusCode)}
	}
	return json.Unmarshal(raw, out)
}

// decodeFailure maps the failure envelope shapes onto the error taxonomy.
func decodeFailure(env envelope) error {
	if env.Error != nil {
		return &APIError{Kind: FailureInternal, Code: env.Error.Code}
	}

	var msg map[string]json.RawMessage
	if err := json.Unmarshal(env.Message, &msg); err != nil {
		return &APIError{Kind: FailureInternal, Code: "badResponse"}
	}

	if _, ok := msg["invalidToken"]; ok {
		return &APIError{Kind: FailureInvalidToken}
	}
	if _, ok := msg["userNotFound"]; ok {
		return &APIError{Kind: FailureUserNotFound}
	}
	if raw, ok := msg["roleError"]; ok {
		var role struct {
			Name string `json:"name"`
		}
		_ = json.Unmarshal(raw, &role)
		if role.Name == "TokenExpiredError" {
			return &APIError{Kind: FailureTokenExpired}
		}
		return &APIError{Kind: FailureInternal, Code: role.Name}
	}

	// Remaining shape is the per-field validation map.
	fields := map[string]string{}
	for k, raw := range msg {
		var v string
		if json.Unmarshal(raw, &v) == nil {
			fields[k] = v
		}
	}
	return &APIError{Kind: FailureValidation, Fields: fields}
}
