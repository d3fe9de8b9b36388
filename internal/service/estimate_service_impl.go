package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Ateeq-afk/sahara/internal/db"
	"github.com/Ateeq-afk/sahara/internal/domain"
	"github.com/Ateeq-afk/sahara/internal/repository"
	"github.com/Ateeq-afk/sahara/internal/scheduler"
	"github.com/Ateeq-afk/sahara/internal/template"
	"github.com/google/uuid"
)

type estimateService struct {
	engine    *scheduler.Engine
	estimates repository.EstimateRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
	now       func() time.Time
}

func NewEstimateService(
	engine *scheduler.Engine,
	estimates repository.EstimateRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) EstimateService {
	if engine == nil {
		engine = scheduler.New(nil)
	}
	return &estimateService{
		engine:    engine,
		estimates: estimates,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *estimateService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func specFields(spec domain.ProjectSpecification) map[string]any {
	return map[string]any{
		"project_type": string(spec.ProjectType),
		"area_sq_ft":   spec.AreaSqFt,
		"complexity":   string(spec.Complexity),
	}
}

func (s *estimateService) Estimate(ctx context.Context, spec domain.ProjectSpecification) (sched *domain.Schedule, err error) {
	startedAt := time.Now()
	fields := specFields(spec)
	defer func() { s.observe(ctx, "estimate", startedAt, fields, err) }()

	sched, err = s.engine.Estimate(spec)
	if err != nil {
		return nil, err
	}
	fields["total_weeks"] = sched.TotalWeeks
	fields["seasonal_weeks"] = sched.SeasonalWeeks
	return sched, nil
}

func (s *estimateService) Compare(ctx context.Context, spec domain.ProjectSpecification) (out []scheduler.Comparison, err error) {
	startedAt := time.Now()
	fields := specFields(spec)
	delete(fields, "complexity")
	defer func() { s.observe(ctx, "compare", startedAt, fields, err) }()

	return s.engine.Compare(spec)
}

func (s *estimateService) Save(ctx context.Context, label string, spec domain.ProjectSpecification) (est *domain.Estimate, err error) {
	startedAt := time.Now()
	fields := specFields(spec)
	defer func() { s.observe(ctx, "save-estimate", startedAt, fields, err) }()

	var sched *domain.Schedule
	sched, err = s.engine.Estimate(spec)
	if err != nil {
		return nil, err
	}

	est = &domain.Estimate{
		ID:        uuid.New().String(),
		Label:     strings.TrimSpace(label),
		Spec:      spec,
		Schedule:  *sched,
		CreatedAt: s.now().Truncate(time.Second),
	}
	est.Spec.StartDate = sched.StartDate
	fields["estimate_id"] = est.ID
	fields["phase_count"] = len(sched.Phases)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteEstimateRepo(tx).Create(ctx, est); err != nil {
			return fmt.Errorf("saving estimate: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return est, nil
}

func (s *estimateService) Get(ctx context.Context, id string) (*domain.Estimate, error) {
	return s.estimates.FindByPrefix(ctx, id)
}

func (s *estimateService) List(ctx context.Context, limit int) ([]*domain.Estimate, error) {
	return s.estimates.List(ctx, limit)
}

func (s *estimateService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"estimate_id": id}
	defer func() { s.observe(ctx, "delete-estimate", startedAt, fields, err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteEstimateRepo(tx)
		est, err := repo.FindByPrefix(ctx, id)
		if err != nil {
			return err
		}
		fields["estimate_id"] = est.ID
		return repo.Delete(ctx, est.ID)
	})
}

func (s *estimateService) Catalog() *template.Catalog {
	return s.engine.Catalog()
}

func (s *estimateService) ForVariant(v domain.Variant) (EstimateService, error) {
	if v == "" {
		return s, nil
	}
	catalog, err := template.ForVariant(v)
	if err != nil {
		return nil, err
	}
	if catalog.ID == s.engine.Catalog().ID {
		return s, nil
	}
	clone := *s
	clone.engine = scheduler.New(catalog)
	return &clone, nil
}
