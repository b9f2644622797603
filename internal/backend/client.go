package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"qrlinx/internal/config"
	"qrlinx/internal/metrics"
	"qrlinx/internal/model"

	"github.com/rs/zerolog/log"
)

var (
	// ErrAnalyticsNotFound is returned when the backend has no analytics for a hash
	ErrAnalyticsNotFound = errors.New("analytics not found")
	// ErrMalformedResponse is returned when a success body cannot be decoded
	ErrMalformedResponse = errors.New("malformed backend response")
)

// maxBodySize bounds how much of a response body is read
const maxBodySize = 8 << 20

// APIError is a non-2xx answer from the backend
type APIError struct {
	Endpoint string
	Status   int
	Detail   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.Status, e.Detail)
}

// Client talks to the link, QR and analytics backend
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new backend client. Requests are bounded by the
// configured timeout and never retried.
func NewClient(cfg *config.BackendConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// NewClientWithHTTP creates a client around an existing http.Client
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// RedirectURL returns the public redirect target of a short hash
func (c *Client) RedirectURL(shortHash string) string {
	return c.baseURL + "/" + shortHash
}

// Shorten handles POST /shorten_url
func (c *Client) Shorten(ctx context.Context, originalURL, ownerID string) (*model.ShortenResponse, error) {
	var resp model.ShortenResponse
	err := c.postJSON(ctx, "/shorten_url", model.ShortenRequest{Link: originalURL, UserID: ownerID}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.ShortHash == "" || resp.ShortURL == "" {
		return nil, fmt.Errorf("/shorten_url: %w: missing short_hash or short_url", ErrMalformedResponse)
	}
	if resp.OriginalURL == "" {
		resp.OriginalURL = originalURL
	}
	return &resp, nil
}

// CreateQRCode handles POST /create_qrcode
func (c *Client) CreateQRCode(ctx context.Context, link string) (*model.QRCodeResponse, error) {
	var resp model.QRCodeResponse
	if err := c.postJSON(ctx, "/create_qrcode", model.QRCodeRequest{Link: link}, &resp); err != nil {
		return nil, err
	}
	if resp.QRCodeBase64 == "" {
		return nil, fmt.Errorf("/create_qrcode: %w: missing qrcode_base64", ErrMalformedResponse)
	}
	return &resp, nil
}

func (c *Client) postJSON(ctx context.Context, endpoint string, in, out interface{}) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveBackend(endpoint, start, err) }()

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("Backend request failed")
		return fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%s: failed to read response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Endpoint: endpoint, Status: resp.StatusCode, Detail: detailOf(raw, resp.StatusCode)}
		log.Warn().Str("endpoint", endpoint).Int("status", resp.StatusCode).Str("detail", apiErr.Detail).Msg("Backend rejected request")
		return apiErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: %w: %v", endpoint, ErrMalformedResponse, err)
	}
	return nil
}

// detailOf extracts the human-readable detail of an error body.
// FastAPI validation errors carry a list instead of a string.
func detailOf(raw []byte, status int) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && len(body.Detail) > 0 {
		var s string
		if err := json.Unmarshal(body.Detail, &s); err == nil && s != "" {
			return s
		}
		var items []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(body.Detail, &items); err == nil && len(items) > 0 {
			msgs := make([]string, 0, len(items))
			for _, it := range items {
				msgs = append(msgs, it.Msg)
			}
			return strings.Join(msgs, "; ")
		}
	}
	return http.StatusText(status)
}
