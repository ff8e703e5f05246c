package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/yog-patel/home-designer-ai-app/internal/adapter/repo"
	"github.com/yog-patel/home-designer-ai-app/internal/catalog"
	"github.com/yog-patel/home-designer-ai-app/internal/domain"
	"github.com/yog-patel/home-designer-ai-app/internal/middleware"
)

type generateRequest struct {
	DesignType   string `json:"design_type"`
	AreaID       string `json:"area_id,omitempty"`
	StyleID      string `json:"style_id,omitempty"`
	PaletteID    string `json:"palette_id,omitempty"`
	PaintColorID string `json:"paint_color_id,omitempty"`
	CustomPrompt string `json:"custom_prompt,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	// ImageData accepts either plain base64 or a data URL.
	ImageData string `json:"image_data,omitempty"`
	ImageMIME string `json:"image_mime,omitempty"`
}

type designResponse struct {
	DesignID     string    `json:"design_id"`
	UserID       string    `json:"user_id"`
	ImageURL     string    `json:"image_url"`
	DesignType   string    `json:"design_type"`
	AreaID       string    `json:"area_id,omitempty"`
	StyleID      string    `json:"style_id,omitempty"`
	PaletteID    string    `json:"palette_id,omitempty"`
	PaintColorID string    `json:"paint_color_id,omitempty"`
	Prompt       string    `json:"prompt,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// GenerateDesign runs one full generation attempt.
func (a *App) GenerateDesign(w http.ResponseWriter, r *http.Request) {
	var in generateRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid_json", "malformed request body")
		return
	}

	designType, ok := catalog.ParseDesignType(in.DesignType)
	if !ok {
		a.writeError(w, http.StatusBadRequest, "invalid_request", "unknown design type")
		return
	}

	source, err := decodeSource(in)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	userID, err := a.userID(r)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	req := domain.DesignRequest{
		DesignType:   designType,
		Source:       source,
		AreaID:       in.AreaID,
		StyleID:      in.StyleID,
		PaletteID:    in.PaletteID,
		PaintColorID: in.PaintColorID,
		CustomPrompt: in.CustomPrompt,
	}

	start := time.Now()
	result, err := a.Generator.GenerateAs(r.Context(), userID, req)
	a.recordEvent(r, userID, designType, err == nil, time.Since(start))
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, toDesignResponse(result))
}

func toDesignResponse(res *domain.GenerationResult) designResponse {
	return designResponse{
		DesignID:     res.DesignID,
		UserID:       res.UserID,
		ImageURL:     res.ImageURL,
		DesignType:   string(res.DesignType),
		AreaID:       res.AreaID,
		StyleID:      res.StyleID,
		PaletteID:    res.PaletteID,
		PaintColorID: res.PaintColorID,
		Prompt:       res.Prompt,
		CreatedAt:    res.CreatedAt,
	}
}

func decodeSource(in generateRequest) (domain.SourceImage, error) {
	if in.ImageData == "" {
		return domain.SourceImage{URL: in.ImageURL}, nil
	}

	raw := in.ImageData
	mime := in.ImageMIME
	if strings.HasPrefix(raw, "data:") {
		header, payload, ok := strings.Cut(raw, ",")
		if !ok {
			return domain.SourceImage{}, domain.ErrInvalidRequest
		}
		raw = payload
		header = strings.TrimPrefix(header, "data:")
		if m, _, found := strings.Cut(header, ";"); found && mime == "" {
			mime = m
		}
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return domain.SourceImage{}, domain.ErrInvalidRequest
	}
	return domain.SourceImage{Data: data, MIME: mime}, nil
}

func (a *App) recordEvent(r *http.Request, userID string, designType catalog.DesignType, success bool, elapsed time.Duration) {
	if a.Events == nil {
		return
	}
	event := repo.UsageEvent{
		UserID:    userID,
		RequestID: middleware.GetRequestID(r.Context()),
		EventType: "design_generated",
		Success:   success,
		LatencyMS: int(elapsed.Milliseconds()),
		Country:   middleware.GetCountry(r.Context()),
		Locale:    middleware.GetLocale(r.Context()),
		Properties: map[string]any{
			"design_type": string(designType),
		},
	}
	if err := a.Events.Insert(r.Context(), event); err != nil {
		a.Logger.Warn().Err(err).Msg("failed to record usage event")
	}
}

// ListDesigns returns the user's gallery, newest first.
func (a *App) ListDesigns(w http.ResponseWriter, r *http.Request) {
	if a.Designs == nil {
		a.writeError(w, http.StatusNotImplemented, "gallery_disabled", "gallery is not configured")
		return
	}

	userID, err := a.userID(r)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	designs, err := a.Designs.ListByUser(r.Context(), userID, limit)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	out := make([]designResponse, 0, len(designs))
	for _, d := range designs {
		out = append(out, designResponse{
			DesignID:     d.ID,
			UserID:       d.UserID,
			ImageURL:     d.ImageURL,
			DesignType:   string(d.DesignType),
			AreaID:       d.AreaID,
			StyleID:      d.StyleID,
			PaletteID:    d.PaletteID,
			PaintColorID: d.PaintColorID,
			Prompt:       d.Prompt,
			CreatedAt:    d.CreatedAt,
		})
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"designs": out})
}

// GetDesign returns a single gallery entry owned by the user.
func (a *App) GetDesign(w http.ResponseWriter, r *http.Request) {
	if a.Designs == nil {
		a.writeError(w, http.StatusNotImplemented, "gallery_disabled", "gallery is not configured")
		return
	}

	userID, err := a.userID(r)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	design, err := a.Designs.GetByID(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, designResponse{
		DesignID:     design.ID,
		UserID:       design.UserID,
		ImageURL:     design.ImageURL,
		DesignType:   string(design.DesignType),
		AreaID:       design.AreaID,
		StyleID:      design.StyleID,
		PaletteID:    design.PaletteID,
		PaintColorID: design.PaintColorID,
		Prompt:       design.Prompt,
		CreatedAt:    design.CreatedAt,
	})
}

// DeleteDesign removes a gallery entry owned by the user.
func (a *App) DeleteDesign(w http.ResponseWriter, r *http.Request) {
	if a.Designs == nil {
		a.writeError(w, http.StatusNotImplemented, "gallery_disabled", "gallery is not configured")
		return
	}

	userID, err := a.userID(r)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	if err := a.Designs.Delete(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		a.writeDomainError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
