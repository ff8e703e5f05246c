package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/yog-patel/home-designer-ai-app/internal/adapter/repo"
	"github.com/yog-patel/home-designer-ai-app/internal/domain"
)

// GenerationService runs the full generation pipeline for a user.
type GenerationService interface {
	GenerateAs(ctx context.Context, userID string, req domain.DesignRequest) (*domain.GenerationResult, error)
}

// EntitlementService exposes the usage and premium state handlers need.
type EntitlementService interface {
	Identity(ctx context.Context) (string, error)
	State(ctx context.Context, userID string) domain.EntitlementState
	Remaining(ctx context.Context, userID string) (int, bool)
	PremiumEffective(ctx context.Context, userID string) bool
	Reset(ctx context.Context, userID string) error
}

// UsageEventRecorder appends analytics events. May be nil when analytics are
// not configured.
type UsageEventRecorder interface {
	Insert(ctx context.Context, event repo.UsageEvent) error
}

// App bundles the dependencies shared by all HTTP handlers.
type App struct {
	Logger      zerolog.Logger
	Generator   GenerationService
	Entitlement EntitlementService
	Designs     domain.DesignRepository
	Events      UsageEventRecorder
}

func (a *App) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (a *App) writeError(w http.ResponseWriter, status int, code, message string) {
	a.writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// writeDomainError maps domain sentinel errors onto HTTP statuses.
func (a *App) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		a.writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, domain.ErrQuotaExceeded):
		a.writeError(w, http.StatusPaymentRequired, "quota_exceeded", "free design quota exhausted")
	case errors.Is(err, domain.ErrNotFound):
		a.writeError(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, domain.ErrUploadFailed):
		a.writeError(w, http.StatusBadGateway, "upload_failed", "failed to store source image")
	case errors.Is(err, domain.ErrGenerationFailed):
		a.writeError(w, http.StatusBadGateway, "generation_failed", "design generation failed")
	case errors.Is(err, domain.ErrIdentityUnavailable):
		a.writeError(w, http.StatusInternalServerError, "identity_unavailable", "could not resolve user identity")
	default:
		a.writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// userID resolves the acting user: an explicit X-User-ID header wins,
// otherwise the locally persisted identity is used.
func (a *App) userID(r *http.Request) (string, error) {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id, nil
	}
	return a.Entitlement.Identity(r.Context())
}
