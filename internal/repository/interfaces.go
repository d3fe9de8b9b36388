package repository

import (
	"context"

	"github.com/Ateeq-afk/sahara/internal/domain"
)

// EstimateRepo persists saved estimates and their phase breakdowns.
type EstimateRepo interface {
	Create(ctx context.Context, e *domain.Estimate) error
	GetByID(ctx context.Context, id string) (*domain.Estimate, error)
	// FindByPrefix resolves a full ID or a unique ID prefix (e.g. the
	// 8-character display ID).
	FindByPrefix(ctx context.Context, prefix string) (*domain.Estimate, error)
	// List returns the newest estimates first, without phase rows.
	List(ctx context.Context, limit int) ([]*domain.Estimate, error)
	Delete(ctx context.Context, id string) error
}
