package service

import (
	"context"
	"io"

	"github.com/Ateeq-afk/sahara/internal/domain"
	"github.com/Ateeq-afk/sahara/internal/scheduler"
	"github.com/Ateeq-afk/sahara/internal/template"
)

type EstimateService interface {
	// Estimate computes a schedule without persisting it.
	Estimate(ctx context.Context, spec domain.ProjectSpecification) (*domain.Schedule, error)
	Compare(ctx context.Context, spec domain.ProjectSpecification) ([]scheduler.Comparison, error)
	// Save estimates spec and stores the result under a new ID.
	Save(ctx context.Context, label string, spec domain.ProjectSpecification) (*domain.Estimate, error)
	// Get and Delete accept a full ID or a unique prefix of one.
	Get(ctx context.Context, id string) (*domain.Estimate, error)
	List(ctx context.Context, limit int) ([]*domain.Estimate, error)
	Delete(ctx context.Context, id string) error

	// Catalog is the phase catalog schedules are laid out with.
	Catalog() *template.Catalog
	// ForVariant returns a service over the built-in catalog for v that
	// shares this service's store. An empty v, or a v whose built-in is
	// already active, returns the receiver. A custom catalog is replaced
	// even when it declares the same variant.
	ForVariant(v domain.Variant) (EstimateService, error)
}

type ExportService interface {
	Export(ctx context.Context, est *domain.Estimate, format ExportFormat, w io.Writer) error
	ExportXLSX(ctx context.Context, est *domain.Estimate, w io.Writer) error
	ExportJSON(ctx context.Context, est *domain.Estimate, w io.Writer) error
}
