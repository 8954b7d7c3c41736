package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the team fallback used when no base URL is configured.
const DefaultBaseURL = "https://cosc-4353-backend.vercel.app"

// Client talks to the volunteer-management backend. All responses are
// normalized into canonical domain records at this boundary; callers never
// see the backend's wire shapes.
type Client struct {
	http    *http.Client
	baseURL string
	log     *logrus.Entry
}

func New(baseURL string, l *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     l.WithFields(map[string]interface{}{"from": "backend-client"}),
	}
}

// StatusError is a non-2xx backend response. Message carries the backend's
// {message} field when the body was decodable JSON.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("backend: status %d", e.Code)
}

func (c *Client) get(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, dest)
}

func (c *Client) post(ctx context.Context, path string, body interface{}, dest interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, dest)
}

func (c *Client) do(req *http.Request, dest interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := StatusError{Code: resp.StatusCode}
		var body struct {
			Message string `json:"message"`
		}
		// non-JSON error bodies are tolerated, the status code is enough
		if err := json.Unmarshal(data, &body); err == nil {
			statusErr.Message = body.Message
		}
		return &statusErr
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%s %s: decode: %w", req.Method, req.URL.Path, err)
	}
	return nil
}
