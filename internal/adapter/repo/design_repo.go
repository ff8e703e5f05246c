package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yog-patel/home-designer-ai-app/internal/catalog"
	"github.com/yog-patel/home-designer-ai-app/internal/domain"
	"github.com/yog-patel/home-designer-ai-app/internal/infra"
	"github.com/yog-patel/home-designer-ai-app/internal/sqlinline"
)

// DesignRepositoryPG implements domain.DesignRepository backed by PostgreSQL.
type DesignRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewDesignRepository creates a new DesignRepositoryPG.
func NewDesignRepository(sql infra.SQLExecutor) *DesignRepositoryPG {
	return &DesignRepositoryPG{sql: sql}
}

// Save inserts a gallery entry for a generated design.
func (r *DesignRepositoryPG) Save(ctx context.Context, design *domain.Design) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertDesign,
		design.ID,
		design.UserID,
		string(design.DesignType),
		design.AreaID,
		design.StyleID,
		design.PaletteID,
		design.PaintColorID,
		design.Prompt,
		design.ImageURL,
		design.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert design: %w", err)
	}
	return nil
}

// ListByUser returns the user's most recent designs, newest first.
func (r *DesignRepositoryPG) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Design, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.sql.Query(ctx, sqlinline.QListDesignsByUser, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	defer rows.Close()

	var designs []domain.Design
	for rows.Next() {
		d, err := scanDesign(rows)
		if err != nil {
			return nil, err
		}
		designs = append(designs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	return designs, nil
}

// GetByID fetches one design scoped to its owner.
func (r *DesignRepositoryPG) GetByID(ctx context.Context, id, userID string) (*domain.Design, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectDesignByID, id, userID)
	return scanDesign(row)
}

// Delete removes a design scoped to its owner.
func (r *DesignRepositoryPG) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QDeleteDesign, id, userID)
	if err != nil {
		return fmt.Errorf("delete design: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanDesign(row pgx.Row) (*domain.Design, error) {
	var d domain.Design
	var designType string
	err := row.Scan(&d.ID, &d.UserID, &designType, &d.AreaID, &d.StyleID, &d.PaletteID, &d.PaintColorID, &d.Prompt, &d.ImageURL, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan design: %w", err)
	}
	if t, ok := catalog.ParseDesignType(designType); ok {
		d.DesignType = t
	} else {
		d.DesignType = catalog.DesignType(designType)
	}
	return &d, nil
}

var _ domain.DesignRepository = (*DesignRepositoryPG)(nil)
