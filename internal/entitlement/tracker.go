package entitlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yog-patel/home-designer-ai-app/internal/domain"
)

// Counters are the authoritative usage numbers returned by the remote
// increment operation.
type Counters struct {
	DesignsGenerated int
	Remaining        int
}

// Client is the remote usage authority. Check must return a
// domain.ErrQuotaExceeded-wrapped error for the service's explicit over-quota
// signal; any other error is treated as transient.
type Client interface {
	Check(ctx context.Context, userID string) (bool, error)
	Increment(ctx context.Context, userID string) (Counters, error)
}

// Decision is the outcome of an entitlement check.
type Decision struct {
	Allowed bool
	// Degraded is true when the remote authority was unreachable and the
	// decision came from the local cache instead.
	Degraded bool
}

// Tracker reconciles the locally cached usage counters with the remote
// authoritative ones. The remote service wins whenever it is reachable; the
// local cache is the fallback of record when it is not.
type Tracker struct {
	store  Store
	client Client
	logger zerolog.Logger
	now    func() time.Time
}

// NewTracker wires the tracker to its local store and remote client.
func NewTracker(store Store, client Client, logger zerolog.Logger) *Tracker {
	return &Tracker{
		store:  store,
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the tracker's clock, for tests.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// Identity returns the persisted user identity, minting and persisting a new
// one when none exists yet.
func (t *Tracker) Identity(ctx context.Context) (string, error) {
	id, err := t.store.Identity(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrIdentityUnavailable, err)
	}
	if id != "" {
		return id, nil
	}
	id = uuid.NewString()
	if err := t.store.SetIdentity(ctx, id); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrIdentityUnavailable, err)
	}
	return id, nil
}

// CheckAllowed asks the remote authority whether the user may consume a free
// use. An explicit over-quota answer denies regardless of the local cache.
// Any other remote failure degrades to the cached state: a user with free
// uses left (or active premium) stays allowed through backend outages.
func (t *Tracker) CheckAllowed(ctx context.Context, userID string) Decision {
	allowed, err := t.client.Check(ctx, userID)
	if err == nil {
		return Decision{Allowed: allowed}
	}
	if errors.Is(err, domain.ErrQuotaExceeded) {
		return Decision{Allowed: false}
	}

	t.logger.Warn().Err(err).Str("user_id", userID).Msg("usage check unreachable, falling back to local cache")
	state := t.cachedState(ctx, userID)
	remaining, unlimited := state.Remaining(t.now())
	return Decision{Allowed: unlimited || remaining > 0, Degraded: true}
}

// RecordSuccessfulUse reports a consumed generation to the remote authority
// and overwrites the local cache with the counters it returns. The call is
// best-effort: on failure the cached state is returned unchanged along with
// the error, and the divergence heals on the next successful reconciliation.
func (t *Tracker) RecordSuccessfulUse(ctx context.Context, userID string) (domain.EntitlementState, error) {
	cached := t.cachedState(ctx, userID)
	counters, err := t.client.Increment(ctx, userID)
	if err != nil {
		t.logger.Warn().Err(err).Str("user_id", userID).Msg("usage increment failed, local cache may under-count")
		return cached, err
	}

	state := domain.EntitlementState{
		UserID:           userID,
		DesignsGenerated: counters.DesignsGenerated,
		Premium:          cached.Premium,
		PremiumExpiresAt: cached.PremiumExpiresAt,
		UpdatedAt:        t.now(),
	}
	if err := t.store.SetSnapshot(ctx, state); err != nil {
		t.logger.Error().Err(err).Str("user_id", userID).Msg("failed to persist usage snapshot")
	}
	return state, nil
}

// State returns the cached entitlement state for the user, defaulting to a
// fresh zero-usage state when nothing is cached yet.
func (t *Tracker) State(ctx context.Context, userID string) domain.EntitlementState {
	return t.cachedState(ctx, userID)
}

// Remaining evaluates the free-uses invariant over the cached state.
func (t *Tracker) Remaining(ctx context.Context, userID string) (int, bool) {
	return t.cachedState(ctx, userID).Remaining(t.now())
}

// PremiumEffective applies the expiry-overrides-flag rule to the cached state.
func (t *Tracker) PremiumEffective(ctx context.Context, userID string) bool {
	return t.cachedState(ctx, userID).PremiumActive(t.now())
}

// Reset clears the identity and cached usage. Only explicit user-initiated
// data resets call this.
func (t *Tracker) Reset(ctx context.Context, userID string) error {
	return t.store.Clear(ctx, userID)
}

func (t *Tracker) cachedState(ctx context.Context, userID string) domain.EntitlementState {
	state, ok, err := t.store.Snapshot(ctx, userID)
	if err != nil {
		t.logger.Error().Err(err).Str("user_id", userID).Msg("failed to read usage snapshot")
	}
	if !ok || err != nil {
		return domain.EntitlementState{UserID: userID}
	}
	return state
}
