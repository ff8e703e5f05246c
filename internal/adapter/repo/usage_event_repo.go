package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yog-patel/home-designer-ai-app/internal/infra"
	"github.com/yog-patel/home-designer-ai-app/internal/sqlinline"
)

// UsageEvent is one recorded generation attempt for analytics.
type UsageEvent struct {
	UserID     string
	RequestID  string
	EventType  string
	Success    bool
	LatencyMS  int
	Country    string
	Locale     string
	Properties map[string]any
}

// UsageEventRepositoryPG appends usage events to PostgreSQL.
type UsageEventRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewUsageEventRepository creates a new UsageEventRepositoryPG.
func NewUsageEventRepository(sql infra.SQLExecutor) *UsageEventRepositoryPG {
	return &UsageEventRepositoryPG{sql: sql}
}

// Insert records one event. Properties default to an empty JSON object.
func (r *UsageEventRepositoryPG) Insert(ctx context.Context, event UsageEvent) error {
	props := event.Properties
	if props == nil {
		props = map[string]any{}
	}
	raw, err := json.Marshal(props)
	if err != nil {
		return fmt.Errorf("encode usage event properties: %w", err)
	}
	_, err = r.sql.Exec(ctx, sqlinline.QInsertUsageEvent,
		event.UserID,
		event.RequestID,
		event.EventType,
		event.Success,
		event.LatencyMS,
		event.Country,
		event.Locale,
		raw,
	)
	if err != nil {
		return fmt.Errorf("insert usage event: %w", err)
	}
	return nil
}
