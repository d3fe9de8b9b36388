package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/Ateeq-afk/sahara/internal/db"
)

// FailOnNthExecUoW wraps a real UnitOfWork and makes the Nth ExecContext
// inside the transaction return Err, so rollback paths of multi-write
// operations can be tested. Counting starts at 1; reads are not counted.
type FailOnNthExecUoW struct {
	Inner  db.UnitOfWork
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return u.Inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failOnNthExec{DBTX: tx, failOn: u.FailOn, err: u.Err})
	})
}

type failOnNthExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.count.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
