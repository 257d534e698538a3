package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// TestContext carries shared state between scenario steps: the server under
// test, the bearer token, and the last HTTP exchange.
type TestContext struct {
	baseURL    string
	token      string
	httpClient *http.Client

	lastStatus int
	lastBody   []byte
}

// NewTestContext builds a context from the environment. E2E_BASE_URL points
// at a running server; E2E_TOKEN supplies a bearer token when the server has
// auth enabled.
func NewTestContext() *TestContext {
	baseURL := os.Getenv("E2E_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &TestContext{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      os.Getenv("E2E_TOKEN"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Reset clears per-scenario state.
func (tc *TestContext) Reset() {
	tc.lastStatus = 0
	tc.lastBody = nil
}

// Do performs a request against the server and records the response.
func (tc *TestContext) Do(method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, tc.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.token != "" {
		req.Header.Set("Authorization", "Bearer "+tc.token)
	}

	resp, err := tc.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	tc.lastStatus = resp.StatusCode
	tc.lastBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	return nil
}

// GET performs a GET request.
func (tc *TestContext) GET(path string) error {
	return tc.Do(http.MethodGet, path, nil)
}

// POST performs a POST request with a JSON body.
func (tc *TestContext) POST(path string, body any) error {
	return tc.Do(http.MethodPost, path, body)
}

// LastStatus returns the status code of the last response.
func (tc *TestContext) LastStatus() int {
	return tc.lastStatus
}

// LastBody returns the raw body of the last response.
func (tc *TestContext) LastBody() []byte {
	return tc.lastBody
}

// GetResponseField returns a top-level field from the last JSON response.
func (tc *TestContext) GetResponseField(field string) (any, error) {
	var payload map[string]any
	if err := json.Unmarshal(tc.lastBody, &payload); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}
	value, ok := payload[field]
	if !ok {
		return nil, fmt.Errorf("field %q not found in response %s", field, tc.lastBody)
	}
	return value, nil
}
