// Package client provides a typed HTTP client for the user registry API.
package client

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
)

// User is the API representation of a user record.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UserPatch carries the fields to change in a partial update. Nil fields are
// left out of the request body entirely.
type UserPatch struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Description)
	}
	return fmt.Sprintf("api error %d (%s)", e.StatusCode, e.Code)
}

// IsNotFound reports whether the error is a 404 API error.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// IsConflict reports whether the error is a 409 API error.
func IsConflict(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusConflict
}

// Client talks to a user registry server.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health checks the public health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health/", nil, nil)
}

// CreateUser registers a new user.
func (c *Client) CreateUser(ctx context.Context, u User) (*User, error) {
	var created User
	if err := c.do(ctx, http.MethodPost, "/users/", u, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// GetUser fetches a user by national ID.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, c.userPath(id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers fetches all users, ordered by ID.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/users/", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListUserIDs fetches the IDs of all users, ordered ascending.
func (c *Client) ListUserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := c.do(ctx, http.MethodGet, "/users/ids/", nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// ReplaceUser overwrites every mutable field of a user. The ID in u, if set,
// must match id.
func (c *Client) ReplaceUser(ctx context.Context, id string, u User) (*User, error) {
	var replaced User
	if err := c.do(ctx, http.MethodPut, c.userPath(id), u, &replaced); err != nil {
		return nil, err
	}
	return &replaced, nil
}

// PatchUser applies a partial update to a user.
func (c *Client) PatchUser(ctx context.Context, id string, patch UserPatch) (*User, error) {
	var patched User
	if err := c.do(ctx, http.MethodPatch, c.userPath(id), patch, &patched); err != nil {
		return nil, err
	}
	return &patched, nil
}

// DeleteUser removes a user by national ID.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.userPath(id), nil, nil)
}

func (c *Client) userPath(id string) string {
	return "/users/" + url.PathEscape(id) + "/"
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var envelope struct {
		Code        string `json:"error"`
		Description string `json:"error_description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		apiErr.Code = envelope.Code
		apiErr.Description = envelope.Description
	}
	return apiErr
}
