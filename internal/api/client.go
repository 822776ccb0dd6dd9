// Package api is the HTTP access layer for the users REST backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/hashicorp/go-cleanhttp"

	"usersadmin/internal/model"
)

// UsersPath is the collection path of the users resource.
const UsersPath = "/api/v1/users"

const jsonContentType = "application/json"

var (
	// ErrUserIDPresent is returned by Create when the user already carries an id.
	ErrUserIDPresent = errors.New("user to create must not carry user_id")
	// ErrUserIDMissing is returned by Update when the user has no id.
	ErrUserIDMissing = errors.New("user to update must carry user_id")
)

// Response is the envelope with its data decoded into T.
type Response[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// Client performs one HTTP call per operation. It never retries and sets no
// timeout of its own.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for baseURL. A nil httpClient selects a pooled
// cleanhttp client.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = cleanhttp.DefaultPooledClient()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// List fetches every user.
func (c *Client) List(ctx context.Context) (*Response[[]model.User], error) {
	var resp Response[[]model.User]
	if err := c.do(ctx, http.MethodGet, UsersPath, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Get fetches one user. Data is nil when the backend omitted it.
func (c *Client) Get(ctx context.Context, id int) (*Response[*model.User], error) {
	var resp Response[*model.User]
	if err := c.do(ctx, http.MethodGet, userPath(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Create posts a new user. The user must not carry an id.
func (c *Client) Create(ctx context.Context, user model.User) (*Response[*model.User], error) {
	if user.UserID != 0 {
		return nil, ErrUserIDPresent
	}
	var resp Response[*model.User]
	if err := c.do(ctx, http.MethodPost, UsersPath, user, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Update replaces an existing user identified by user.UserID.
func (c *Client) Update(ctx context.Context, user model.User) (*Response[*model.User], error) {
	if user.UserID == 0 {
		return nil, ErrUserIDMissing
	}
	var resp Response[*model.User]
	if err := c.do(ctx, http.MethodPut, UsersPath, user, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete removes the user with the given id.
func (c *Client) Delete(ctx context.Context, id int) (*Response[json.RawMessage], error) {
	var resp Response[json.RawMessage]
	if err := c.do(ctx, http.MethodDelete, userPath(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func userPath(id int) string {
	return UsersPath + "/" + strconv.Itoa(id)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", jsonContentType)
	if body != nil {
		req.Header.Set("Content-Type", jsonContentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, raw)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
