package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultUploadTimeout = 60 * time.Second

// BucketClient uploads assets to a remote object-store bucket over HTTP and
// derives public URLs the generation service can fetch from.
type BucketClient struct {
	baseURL    string
	bucket     string
	apiKey     string
	httpClient *http.Client
}

// BucketOptions configures a BucketClient.
type BucketOptions struct {
	BaseURL        string
	Bucket         string
	APIKey         string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

// NewBucketClient constructs a client for the configured bucket.
func NewBucketClient(opts BucketOptions) (*BucketClient, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("storage: base url is required")
	}
	bucket := strings.Trim(strings.TrimSpace(opts.Bucket), "/")
	if bucket == "" {
		return nil, errors.New("storage: bucket is required")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = defaultUploadTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &BucketClient{
		baseURL:    baseURL,
		bucket:     bucket,
		apiKey:     strings.TrimSpace(opts.APIKey),
		httpClient: httpClient,
	}, nil
}

// Upload stores the bytes at the given key and returns the public URL.
func (c *BucketClient) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", errors.New("storage: no data to upload")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	target := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, cleanKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("storage: build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: upload: %w", err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 1<<20))

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("storage: upload returned status %d", res.StatusCode)
	}
	return c.PublicURL(cleanKey), nil
}

// PublicURL returns the unauthenticated download URL for a stored key.
func (c *BucketClient) PublicURL(key string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, c.bucket, key)
}

var _ Uploader = (*BucketClient)(nil)
