package image

import "context"

// GenerateRequest carries everything the remote design-generation service
// needs: the prompt pair plus the structured selections it keeps for
// server-side bookkeeping.
type GenerateRequest struct {
	UserID         string
	ImageURL       string
	Prompt         string
	NegativePrompt string
	RoomType       string
	Style          string
	Palette        string
	RequestID      string
}

// GenerateResult is the normalized response from the generation service.
type GenerateResult struct {
	ImageURL string
	DesignID string
}

// Generator is the contract implemented by the remote generation client.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}
