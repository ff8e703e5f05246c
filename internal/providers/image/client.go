package image

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
)

// ErrMissingBaseURL indicates the client was configured without an endpoint.
var ErrMissingBaseURL = errors.New("image: base url is required")

const defaultTimeout = 120 * time.Second

// Options configures the generate-design client.
type Options struct {
	BaseURL        string
	APIKey         string
	HTTPClient     *http.Client
	Logger         *zerolog.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls to the remote design-generation service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger
}

type generateRequest struct {
	UserID         string `json:"userId"`
	ImageURL       string `json:"imageUrl"`
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negativePrompt"`
	RoomType       string `json:"roomType,omitempty"`
	Style          string `json:"style,omitempty"`
	Palette        string `json:"palette,omitempty"`
}

type generateResponse struct {
	ImageURL string `json:"imageUrl"`
	DesignID string `json:"designId"`
	Code     string `json:"code,omitempty"`
	Error    string `json:"error,omitempty"`
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

// Generate submits the assembled request to the remote model. The service's
// late over-quota signal (HTTP 402 or a free_tier code) still surfaces as
// domain.ErrQuotaExceeded, since the authoritative counter can lag the
// entitlement check performed earlier in the run.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	body, err := json.Marshal(generateRequest{
		UserID:         req.UserID,
		ImageURL:       req.ImageURL,
		Prompt:         req.Prompt,
		NegativePrompt: req.NegativePrompt,
		RoomType:       req.RoomType,
		Style:          req.Style,
		Palette:        req.Palette,
	})
	if err != nil {
		return nil, fmt.Errorf("image: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate-design", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("image: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if req.RequestID != "" {
		httpReq.Header.Set("X-Request-ID", req.RequestID)
	}

	start := time.Now()
	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("image: generate call: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("image: read response: %w", err)
	}

	var decoded generateResponse
	if len(raw) > 0 {
		// Tolerate undecodable bodies; status handling below decides the outcome.
		_ = json.Unmarshal(raw, &decoded)
	}

	if res.StatusCode == http.StatusPaymentRequired || isQuotaCode(decoded.Code) {
		return nil, fmt.Errorf("%w: free tier exhausted", domain.ErrQuotaExceeded)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg := strings.TrimSpace(decoded.Error)
		if msg == "" {
			msg = http.StatusText(res.StatusCode)
		}
		return nil, fmt.Errorf("image: generate returned status %d: %s", res.StatusCode, msg)
	}
	if strings.TrimSpace(decoded.ImageURL) == "" {
		return nil, errors.New("image: generate returned no image url")
	}

	c.logger.Debug().
		Str("design_id", decoded.DesignID).
		Dur("elapsed", time.Since(start)).
		Msg("design generated")

	return &GenerateResult{ImageURL: decoded.ImageURL, DesignID: decoded.DesignID}, nil
}

func isQuotaCode(code string) bool {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "free_tier_exhausted", "quota_exceeded", "payment_required":
		return true
	}
	return false
}

var _ Generator = (*Client)(nil)
