package ereft

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

// API is the surface of the listings backend this client exposes.
// It is implemented by *Client and by test fakes.
type API interface {
	FetchProperty(ctx context.Context, id string) (*Property, error)
	FetchProperties(ctx context.Context, page int) (*PropertyPage, error)
	AddFavorite(ctx context.Context, token, id string) error
	RemoveFavorite(ctx context.Context, token, id string) error
	DeleteProperty(ctx context.Context, token, id string) error
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the Ereft listings HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL        = "http://127.0.0.1:8000"
	defaultUserAgent      = "gojo/0.1"
	defaultRequestTimeout = 10 * time.Second
)

// NewClient builds a Client for the given base URL. An empty baseURL or a
// zero timeout falls back to the defaults.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// APIError carries the status code and the backend's detail message for a
// non-2xx response.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Detail) != "" {
		return e.Detail
	}
	return fmt.Sprintf("api returned status %d", e.StatusCode)
}

// FetchProperty retrieves one listing record. The read is unauthenticated.
func (c *Client) FetchProperty(ctx context.Context, id string) (*Property, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Property
	if err := c.do(ctx, http.MethodGet, "/api/listings/properties/"+id+"/", "", nil, &payload); err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &payload, nil
}

// FetchProperties retrieves one page of the listing collection. Page numbers
// start at 1; zero requests the first page.
func (c *Client) FetchProperties(ctx context.Context, page int) (*PropertyPage, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/api/listings/properties/"}
	if page > 1 {
		values := url.Values{}
		values.Set("page", fmt.Sprintf("%d", page))
		rel.RawQuery = values.Encode()
	}
	var payload PropertyPage
	if err := c.doURL(ctx, http.MethodGet, rel, "", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AddFavorite marks a listing as favorited for the token's user.
func (c *Client) AddFavorite(ctx context.Context, token, id string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	body := struct {
		Property string `json:"property"`
	}{Property: id}
	return c.do(ctx, http.MethodPost, "/api/listings/favorites/", token, body, nil)
}

// RemoveFavorite clears a listing's favorite mark for the token's user.
func (c *Client) RemoveFavorite(ctx context.Context, token, id string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, "/api/listings/favorites/"+id+"/", token, nil, nil)
}

// DeleteProperty removes a listing. The backend re-validates ownership; the
// client only supplies the credential.
func (c *Client) DeleteProperty(ctx context.Context, token, id string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, "/api/listings/properties/"+id+"/", token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, token, body, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, token string, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeAPIError extracts the DRF-style {"detail": "..."} body when present.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Detail = strings.TrimSpace(body.Detail)
	}
	return apiErr
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
