package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/Ateeq-afk/sahara/internal/db"
	"github.com/Ateeq-afk/sahara/internal/repository"
	"github.com/Ateeq-afk/sahara/internal/scheduler"
	"github.com/Ateeq-afk/sahara/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func newTestEstimateService(t *testing.T, observers ...UseCaseObserver) (EstimateService, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	svc := NewEstimateService(
		scheduler.New(nil),
		repository.NewSQLiteEstimateRepo(database),
		db.NewUnitOfWork(database),
		observers...,
	)
	return svc, database
}
