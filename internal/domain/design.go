package domain

import (
	"strings"
	"time"

	"github.com/yog-patel/home-designer-ai-app/internal/catalog"
)

// SourceImage is the user-supplied photo of the space. It either carries raw
// bytes that still need to be uploaded, or a durable URL from a prior upload.
type SourceImage struct {
	URL  string
	Data []byte
	MIME string
}

// IsZero reports whether no image has been provided yet.
func (s SourceImage) IsZero() bool {
	return len(s.Data) == 0 && strings.TrimSpace(s.URL) == ""
}

// NeedsUpload reports whether the image exists only as raw local bytes.
func (s SourceImage) NeedsUpload() bool {
	return len(s.Data) > 0
}

// DesignRequest collects the wizard inputs for one generation attempt. Which
// fields are required is determined entirely by DesignType.
type DesignRequest struct {
	DesignType   catalog.DesignType
	Source       SourceImage
	AreaID       string
	StyleID      string
	PaletteID    string
	PaintColorID string
	CustomPrompt string
}

// Reset clears every field so the wizard can start over.
func (r *DesignRequest) Reset() {
	*r = DesignRequest{}
}

// GenerationResult is produced exactly once per successful orchestrator run.
type GenerationResult struct {
	DesignID     string
	UserID       string
	ImageURL     string
	DesignType   catalog.DesignType
	AreaID       string
	StyleID      string
	PaletteID    string
	PaintColorID string
	Prompt       string
	CreatedAt    time.Time
}

// Design is a persisted gallery entry for a previously generated result.
type Design struct {
	ID           string
	UserID       string
	DesignType   catalog.DesignType
	AreaID       string
	StyleID      string
	PaletteID    string
	PaintColorID string
	Prompt       string
	ImageURL     string
	CreatedAt    time.Time
}
