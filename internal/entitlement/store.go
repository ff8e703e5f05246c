package entitlement

import (
	"context"
	"sync"

	"github.com/yog-patel/home-designer-ai-app/internal/domain"
)

// Store is the local persistence collaborator for the entitlement cache. It
// holds the installed client's identity and a usage snapshot per user. Local
// persistence is assumed always available; implementations return errors only
// for genuinely broken backends.
type Store interface {
	Identity(ctx context.Context) (string, error)
	SetIdentity(ctx context.Context, id string) error
	Snapshot(ctx context.Context, userID string) (domain.EntitlementState, bool, error)
	SetSnapshot(ctx context.Context, state domain.EntitlementState) error
	Clear(ctx context.Context, userID string) error
}

// MemoryStore keeps the cache in process memory. It backs tests and
// single-process deployments without Redis.
type MemoryStore struct {
	mu        sync.Mutex
	identity  string
	snapshots map[string]domain.EntitlementState
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string]domain.EntitlementState)}
}

func (s *MemoryStore) Identity(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity, nil
}

func (s *MemoryStore) SetIdentity(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = id
	return nil
}

func (s *MemoryStore) Snapshot(ctx context.Context, userID string) (domain.EntitlementState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.snapshots[userID]
	return state, ok, nil
}

func (s *MemoryStore) SetSnapshot(ctx context.Context, state domain.EntitlementState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[state.UserID] = state
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == userID {
		s.identity = ""
	}
	delete(s.snapshots, userID)
	return nil
}

var _ Store = (*MemoryStore)(nil)
