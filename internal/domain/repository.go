package domain

import "context"

// DesignRepository persists the gallery of generated designs.
type DesignRepository interface {
	Save(ctx context.Context, design *Design) error
	ListByUser(ctx context.Context, userID string, limit int) ([]Design, error)
	GetByID(ctx context.Context, id, userID string) (*Design, error)
	Delete(ctx context.Context, id, userID string) error
}
