package usage

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

	"github.com/rs/zerolog"

	"github.com/yog-patel/home-designer-ai-app/internal/domain"
	"github.com/yog-patel/home-designer-ai-app/internal/entitlement"
)

// ErrMissingBaseURL indicates the client was configured without an endpoint.
var ErrMissingBaseURL = errors.New("usage: base url is required")

const (
	actionCheck     = "check"
	actionIncrement = "increment"

	defaultTimeout = 10 * time.Second
)

// Options configures the check-usage client.
type Options struct {
	BaseURL        string
	APIKey         string
	HTTPClient     *http.Client
	Logger         *zerolog.Logger
	RequestTimeout time.Duration
}

// Client calls the remote check-usage function that owns the authoritative
// usage counters.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

type usageRequest struct {
	UserID string `json:"userId"`
	Action string `json:"action"`
}

type usageResponse struct {
	Allowed          *bool  `json:"allowed,omitempty"`
	DesignsGenerated int    `json:"designs_generated"`
	Remaining        int    `json:"remaining"`
	Error            string `json:"error,omitempty"`
}

// NewClient constructs a client with sane defaults.
func NewClient(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(opts.APIKey),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Check asks whether the user may consume a free use. The service's explicit
// over-quota signal (HTTP 402) surfaces as domain.ErrQuotaExceeded; every
// other failure is returned as-is so callers can treat it as transient.
func (c *Client) Check(ctx context.Context, userID string) (bool, error) {
	resp, err := c.call(ctx, usageRequest{UserID: userID, Action: actionCheck})
	if err != nil {
		return false, err
	}
	if resp.Allowed == nil {
		return true, nil
	}
	return *resp.Allowed, nil
}

// Increment reports one consumed generation and returns the authoritative
// counters after the increment.
func (c *Client) Increment(ctx context.Context, userID string) (entitlement.Counters, error) {
	resp, err := c.call(ctx, usageRequest{UserID: userID, Action: actionIncrement})
	if err != nil {
		return entitlement.Counters{}, err
	}
	return entitlement.Counters{
		DesignsGenerated: resp.DesignsGenerated,
		Remaining:        resp.Remaining,
	}, nil
}

func (c *Client) call(ctx context.Context, payload usageRequest) (*usageResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("usage: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/check-usage", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("usage: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("usage: %s call: %w", payload.Action, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("usage: read response: %w", err)
	}

	if res.StatusCode == http.StatusPaymentRequired {
		return nil, fmt.Errorf("%w: free tier exhausted", domain.ErrQuotaExceeded)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		c.logger.Debug().Int("status", res.StatusCode).Str("action", payload.Action).Msg("usage call failed")
		return nil, fmt.Errorf("usage: %s returned status %d", payload.Action, res.StatusCode)
	}

	var decoded usageResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("usage: decode response: %w", err)
	}
	return &decoded, nil
}

var _ entitlement.Client = (*Client)(nil)
