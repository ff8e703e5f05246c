package handlers

import (
	"net/http"
	"time"

	"github.com/yog-patel/home-designer-ai-app/internal/domain"
)

type usageResponse struct {
	UserID           string     `json:"user_id"`
	DesignsGenerated int        `json:"designs_generated"`
	FreeQuota        int        `json:"free_quota"`
	Remaining        int        `json:"remaining"`
	Unlimited        bool       `json:"unlimited"`
	Premium          bool       `json:"premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at,omitempty"`
}

// GetUsage reports the user's cached usage counters and premium status.
func (a *App) GetUsage(w http.ResponseWriter, r *http.Request) {
	userID, err := a.userID(r)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	state := a.Entitlement.State(r.Context(), userID)
	remaining, unlimited := a.Entitlement.Remaining(r.Context(), userID)

	a.writeJSON(w, http.StatusOK, usageResponse{
		UserID:           userID,
		DesignsGenerated: state.DesignsGenerated,
		FreeQuota:        domain.FreeQuota,
		Remaining:        remaining,
		Unlimited:        unlimited,
		Premium:          a.Entitlement.PremiumEffective(r.Context(), userID),
		PremiumExpiresAt: state.PremiumExpiresAt,
	})
}

// ResetUsage clears the user's identity and cached usage.
func (a *App) ResetUsage(w http.ResponseWriter, r *http.Request) {
	userID, err := a.userID(r)
	if err != nil {
		a.writeDomainError(w, err)
		return
	}

	if err := a.Entitlement.Reset(r.Context(), userID); err != nil {
		a.writeDomainError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
