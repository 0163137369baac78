// Package api implements the HTTP client used by the CLI to talk to the
// PromoBoard server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Promotion mirrors the server's promotion payload.
type Promotion struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	FullPrice  float64 `json:"full_price"`
	PromoPrice float64 `json:"promo_price"`
	Location   string  `json:"location"`
}

// Client is a thin wrapper over net/http bound to one server base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client for the given base URL, e.g. "http://127.0.0.1:3000".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// apiError is the server's unified error payload.
type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Register creates an account on the server.
func (c *Client) Register(ctx context.Context, username, password, role string) error {
	body := map[string]string{"username": username, "password": password, "role": role}
	return c.do(ctx, http.MethodPost, "/register", "", body, nil)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", "", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// ListPromotions returns all promotions.
func (c *Client) ListPromotions(ctx context.Context, token string) ([]Promotion, error) {
	var result []Promotion
	if err := c.do(ctx, http.MethodGet, "/promotions", token, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// AddPromotion creates a promotion and returns it with the assigned ID.
func (c *Client) AddPromotion(ctx context.Context, token string, p Promotion) (Promotion, error) {
	var created Promotion
	if err := c.do(ctx, http.MethodPost, "/promotions", token, p, &created); err != nil {
		return Promotion{}, err
	}
	return created, nil
}

// GetPromotion returns a single promotion by ID.
func (c *Client) GetPromotion(ctx context.Context, token string, id int64) (Promotion, error) {
	var p Promotion
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/promotions/%d", id), token, nil, &p); err != nil {
		return Promotion{}, err
	}
	return p, nil
}

// DeletePromotion removes a promotion by ID.
func (c *Client) DeletePromotion(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/promotions/%d", id), token, nil, nil)
}

// do performs one request: marshals body when present, sets the bearer
// header when a token is given, and decodes either the expected response or
// the server's error payload.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("server: %s (%s)", apiErr.Error.Message, apiErr.Error.Code)
		}
		return fmt.Errorf("server: unexpected status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
