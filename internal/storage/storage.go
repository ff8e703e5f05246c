package storage

import "context"

// Uploader persists raw image bytes and returns a durable, publicly
// reachable URL for them. Keys are slash-separated paths scoped per user,
// e.g. "designs/<user>/<timestamp>.jpg".
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
