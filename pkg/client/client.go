// Package client is a Go client for the games catalog HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// maxBodySize caps how much of a response the client reads.
const maxBodySize = 8 << 20

// Game is a catalog record as the API returns it.
type Game struct {
	ID       int64    `json:"id"`
	Title    string   `json:"titulo"`
	Platform string   `json:"plataforma"`
	Genre    string   `json:"genero"`
	Year     *int     `json:"ano,omitempty"`
	Rating   *float64 `json:"nota,omitempty"`
}

// GameInput is a create or update payload. Nil fields are not sent, so on
// update they keep their stored value.
type GameInput struct {
	Title    *string  `json:"titulo,omitempty"`
	Platform *string  `json:"plataforma,omitempty"`
	Genre    *string  `json:"genero,omitempty"`
	Year     *int     `json:"ano,omitempty"`
	Rating   *float64 `json:"nota,omitempty"`
}

// Health is the body of GET /health.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// Client calls the catalog API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a Client for the API at baseURL, e.g. http://localhost:3000.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListGames returns every game, most recently created first.
func (c *Client) ListGames(ctx context.Context) ([]Game, error) {
	var games []Game
	if err := c.do(ctx, http.MethodGet, "/games", nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// GetGame returns one game.
func (c *Client) GetGame(ctx context.Context, id int64) (*Game, error) {
	var game Game
	if err := c.do(ctx, http.MethodGet, gamePath(id), nil, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// CreateGame stores a new game and returns it with its assigned id.
func (c *Client) CreateGame(ctx context.Context, in GameInput) (*Game, error) {
	var game Game
	if err := c.do(ctx, http.MethodPost, "/games", in, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// UpdateGame changes the fields set in in and returns the updated game.
func (c *Client) UpdateGame(ctx context.Context, id int64, in GameInput) (*Game, error) {
	var game Game
	if err := c.do(ctx, http.MethodPut, gamePath(id), in, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// DeleteGame removes a game.
func (c *Client) DeleteGame(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, gamePath(id), nil, nil)
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func gamePath(id int64) string {
	return "/games/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, body, target interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp.StatusCode, data)
	}
	if resp.StatusCode == http.StatusNoContent || target == nil {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError prefers the "error" field, then the joined "errors" list.
func decodeAPIError(status int, data []byte) *APIError {
	var body struct {
		Error  string   `json:"error"`
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return &APIError{StatusCode: status, Message: "Erro desconhecido"}
	}

	apiErr := &APIError{StatusCode: status, Errors: body.Errors}
	switch {
	case body.Error != "":
		apiErr.Message = body.Error
	case len(body.Errors) > 0:
		apiErr.Message = strings.Join(body.Errors, ", ")
	default:
		apiErr.Message = "Erro na requisição"
	}
	return apiErr
}
