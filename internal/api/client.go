// Package api is the HTTP access layer for the wedding backend.
//
// It wraps outbound calls with the configured base URL, bearer-token
// injection, and the JSON content type. There are no retries and no timeout
// policy here: a transport failure propagates as a failed operation, and
// status-code branching lives in the typed call sites, not in Do.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultRole is sent with every register request, matching the backend's
// self-service signup policy.
const DefaultRole = "Family"

// Client performs calls against a single backend endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the given base URL (no trailing slash).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// Do performs a single call. It injects "Authorization: Bearer <token>" when
// token is non-empty and always sets the JSON content type. The raw response
// is returned for the caller to interpret.
func (c *Client) Do(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rid := uuid.NewString()[:8]
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		slog.Warn("api request failed", "id", rid, "method", method, "path", path, "err", err)
		return nil, err
	}
	slog.Debug("api request", "id", rid, "method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))
	return resp, nil
}

// Login exchanges credentials for a token. A server rejection surfaces as an
// AuthError carrying the server-provided message.
func (c *Client) Login(ctx context.Context, email, password string) (Auth, error) {
	resp, err := c.Do(ctx, http.MethodPost, "/api/auth/login", "", loginRequest{Email: email, Password: password})
	if err != nil {
		return Auth{}, err
	}
	defer resp.Body.Close()
	if !success(resp) {
		msg := bodyText(resp)
		if msg == "" {
			msg = "Login failed"
		}
		return Auth{}, &AuthError{Message: msg}
	}
	var auth Auth
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return Auth{}, &LoadError{Op: "login", Err: err}
	}
	return auth, nil
}

// Register creates an account with the fixed default role. The backend may
// reject with either a JSON list of field errors or a {message} object.
func (c *Client) Register(ctx context.Context, email, password, displayName string) (Auth, error) {
	body := registerRequest{Email: email, Password: password, DisplayName: displayName, Role: DefaultRole}
	resp, err := c.Do(ctx, http.MethodPost, "/api/auth/register", "", body)
	if err != nil {
		return Auth{}, err
	}
	defer resp.Body.Close()
	if !success(resp) {
		return Auth{}, registerFailure(resp)
	}
	var auth Auth
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return Auth{}, &LoadError{Op: "register", Err: err}
	}
	return auth, nil
}

// Days lists the wedding days in server order.
func (c *Client) Days(ctx context.Context, token string) ([]WeddingDay, error) {
	var days []WeddingDay
	if err := c.getJSON(ctx, token, "/api/wedding/days", "load days", &days); err != nil {
		return nil, err
	}
	return days, nil
}

// DayCategories fetches the categories of one day.
func (c *Client) DayCategories(ctx context.Context, token string, dayID int64) (DayCategories, error) {
	var dc DayCategories
	path := fmt.Sprintf("/api/wedding/days/%d/categories", dayID)
	if err := c.getJSON(ctx, token, path, "load categories", &dc); err != nil {
		return DayCategories{}, err
	}
	return dc, nil
}

// DayItems fetches the items of one day.
func (c *Client) DayItems(ctx context.Context, token string, dayID int64) ([]WeddingItem, error) {
	var items []WeddingItem
	path := fmt.Sprintf("/api/wedding/days/%d/items", dayID)
	if err := c.getJSON(ctx, token, path, "load items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem creates an item inside the request's day and category.
func (c *Client) CreateItem(ctx context.Context, token string, req CreateItemRequest) (WeddingItem, error) {
	return c.writeItem(ctx, token, http.MethodPost, "/api/wedding/items", req)
}

// UpdateItem updates an item in place by id.
func (c *Client) UpdateItem(ctx context.Context, token string, id int64, req UpdateItemRequest) (WeddingItem, error) {
	return c.writeItem(ctx, token, http.MethodPut, fmt.Sprintf("/api/wedding/items/%d", id), req)
}

// DeleteItem deletes an item by id.
func (c *Client) DeleteItem(ctx context.Context, token string, id int64) error {
	resp, err := c.Do(ctx, http.MethodDelete, fmt.Sprintf("/api/wedding/items/%d", id), token, nil)
	if err != nil {
		return &LoadError{Op: "delete item", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if !success(resp) {
		return &LoadError{Op: "delete item", Status: resp.StatusCode, Err: textErr(resp)}
	}
	return nil
}

func (c *Client) writeItem(ctx context.Context, token, method, path string, body any) (WeddingItem, error) {
	resp, err := c.Do(ctx, method, path, token, body)
	if err != nil {
		return WeddingItem{}, &LoadError{Op: "save item", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return WeddingItem{}, ErrUnauthorized
	}
	if !success(resp) {
		msg := bodyText(resp)
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return WeddingItem{}, &ValidationError{Messages: []string{msg}}
	}
	var item WeddingItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return WeddingItem{}, &LoadError{Op: "save item", Err: err}
	}
	return item, nil
}

func (c *Client) getJSON(ctx context.Context, token, path, op string, out any) error {
	resp, err := c.Do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return &LoadError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if !success(resp) {
		return &LoadError{Op: op, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &LoadError{Op: op, Err: err}
	}
	return nil
}

// registerFailure maps the register error shape: a JSON array of field
// messages becomes a ValidationError, a {message} object an AuthError.
func registerFailure(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var payload any
	if json.Unmarshal(data, &payload) == nil {
		switch v := payload.(type) {
		case []any:
			msgs := make([]string, 0, len(v))
			for _, m := range v {
				switch t := m.(type) {
				case string:
					msgs = append(msgs, t)
				case map[string]any:
					if d, ok := t["description"].(string); ok && d != "" {
						msgs = append(msgs, d)
						continue
					}
					msgs = append(msgs, fmt.Sprint(t))
				default:
					msgs = append(msgs, fmt.Sprint(t))
				}
			}
			return &ValidationError{Messages: msgs}
		case map[string]any:
			if m, ok := v["message"].(string); ok && m != "" {
				return &AuthError{Message: m}
			}
		}
	}
	if msg := strings.TrimSpace(string(data)); msg != "" {
		return &AuthError{Message: msg}
	}
	return &AuthError{Message: "Register failed"}
}

func success(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func bodyText(resp *http.Response) string {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	return strings.TrimSpace(string(data))
}

func textErr(resp *http.Response) error {
	if msg := bodyText(resp); msg != "" {
		return errors.New(msg)
	}
	return nil
}
