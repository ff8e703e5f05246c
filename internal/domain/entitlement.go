package domain

import "time"

// FreeQuota is the number of free generations before premium is required.
const FreeQuota = 3

// EntitlementState is the locally cached copy of a user's usage counters and
// premium status. The remote counter is authoritative whenever reachable; this
// copy is the fallback of record when it is not.
type EntitlementState struct {
	UserID           string     `json:"user_id"`
	DesignsGenerated int        `json:"designs_generated"`
	Premium          bool       `json:"is_premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// PremiumActive applies the expiry-overrides-flag rule: a stored premium flag
// counts for nothing once PremiumExpiresAt lies in the past.
func (s EntitlementState) PremiumActive(now time.Time) bool {
	if !s.Premium {
		return false
	}
	if s.PremiumExpiresAt != nil && now.After(*s.PremiumExpiresAt) {
		return false
	}
	return true
}

// Remaining returns the free uses left. The second return value is true when
// the user is effectively premium and usage is unlimited.
func (s EntitlementState) Remaining(now time.Time) (int, bool) {
	if s.PremiumActive(now) {
		return 0, true
	}
	left := FreeQuota - s.DesignsGenerated
	if left < 0 {
		left = 0
	}
	return left, false
}

// Exhausted reports whether a non-premium user has spent the free quota.
func (s EntitlementState) Exhausted(now time.Time) bool {
	left, unlimited := s.Remaining(now)
	return !unlimited && left == 0
}
