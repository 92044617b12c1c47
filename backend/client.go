// Package backend is the client for the company REST API. Every piece of
// data shown by the site or the dashboard lives behind this API; local
// state elsewhere in the app is only the last known server state.
package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIError carries the backend status code and the server-provided
// message when one was present in the response body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.StatusCode)
}

// IsUnauthorized reports whether err is a 401 from the backend. Callers
// use it to send the admin back to the login page.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// Client talks to the company REST API. A zero token means unauthenticated
// public calls; WithToken derives an authenticated client for admin calls.
type Client struct {
	http  *resty.Client
	token string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
	}
}

// WithToken returns a copy of the client that sends the bearer token
func (c *Client) WithToken(token string) *Client {
	return &Client{http: c.http, token: token}
}

// do performs one request and returns the raw body. Non-2xx responses
// become an *APIError with the server message when the body carries one.
func (c *Client) do(method, path string, payload interface{}) ([]byte, error) {
	req := c.http.R()
	if c.token != "" {
		req.SetHeader("Authorization", "Bearer "+c.token)
	}
	if payload != nil {
		req.SetBody(payload)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Message:    serverMessage(resp.Body()),
		}
	}
	return resp.Body(), nil
}

// serverMessage pulls the human-readable message out of an error body.
// Backends here answer with either {"message": ...} or {"msg": ...}.
func serverMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Msg != "" {
			return envelope.Msg
		}
	}
	return "request failed"
}

// decodeList accepts either a bare JSON array or an array nested under a
// "data" key. Anything else is an error so the caller can fall back to an
// empty collection.
func decodeList[T any](body []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(body, &items); err == nil {
		return items, nil
	}

	var envelope struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}
	return nil, fmt.Errorf("backend: unexpected list shape: %s", truncate(body))
}

// decodeOne accepts a bare JSON object or an object under a "data" key.
// The envelope is checked first: a bare decode of an enveloped body would
// succeed and hand back a zero record.
func decodeOne[T any](body []byte) (T, error) {
	var envelope struct {
		Data *T `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return *envelope.Data, nil
	}

	var item T
	if err := json.Unmarshal(body, &item); err == nil {
		return item, nil
	}
	var zero T
	return zero, fmt.Errorf("backend: unexpected record shape: %s", truncate(body))
}

func truncate(body []byte) string {
	if len(body) > 120 {
		return string(body[:120]) + "..."
	}
	return string(body)
}

func getList[T any](c *Client, path string) ([]T, error) {
	body, err := c.do(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[T](body)
}

func getOne[T any](c *Client, path string) (T, error) {
	body, err := c.do(http.MethodGet, path, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeOne[T](body)
}

func postOne[T any](c *Client, path string, payload interface{}) (T, error) {
	body, err := c.do(http.MethodPost, path, payload)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeOne[T](body)
}

func putOne[T any](c *Client, path string, payload interface{}) (T, error) {
	body, err := c.do(http.MethodPut, path, payload)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeOne[T](body)
}
