package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ateeq-afk/sahara/internal/db"
	"github.com/Ateeq-afk/sahara/internal/domain"
)

// SQLiteEstimateRepo implements EstimateRepo on SQLite.
type SQLiteEstimateRepo struct {
	db db.DBTX
}

// NewSQLiteEstimateRepo creates a repo over conn, which may be a *sql.DB or
// a transaction.
func NewSQLiteEstimateRepo(conn db.DBTX) *SQLiteEstimateRepo {
	return &SQLiteEstimateRepo{db: conn}
}

const estimateColumns = `id, label, project_type, area_sq_ft, complexity, start_date, fast_track,
	seasonal_buffer, variant, size_category, total_weeks, total_months, seasonal_weeks, end_date, created_at`

// Create inserts the estimate row followed by one row per phase. Callers
// that need atomicity run it inside a UnitOfWork.
func (r *SQLiteEstimateRepo) Create(ctx context.Context, e *domain.Estimate) error {
	query := `INSERT INTO estimates (` + estimateColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	s := e.Schedule
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Label,
		string(e.Spec.ProjectType),
		e.Spec.AreaSqFt,
		string(e.Spec.Complexity),
		s.StartDate.Format(dateLayout),
		boolToInt(e.Spec.FastTrack),
		boolToInt(e.Spec.SeasonalBufferEnabled),
		string(s.Variant),
		string(s.SizeCategory),
		s.TotalWeeks,
		s.TotalMonths,
		s.SeasonalWeeks,
		s.EndDate.Format(dateLayout),
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting estimate: %w", err)
	}

	for i, p := range s.Phases {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO estimate_phases (estimate_id, position, name, duration_weeks, start_week, end_week)
			VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID, i, p.Name, p.DurationWeeks, p.StartWeek, p.EndWeek,
		)
		if err != nil {
			return fmt.Errorf("inserting phase %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteEstimateRepo) GetByID(ctx context.Context, id string) (*domain.Estimate, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+estimateColumns+` FROM estimates WHERE id = ?`, id)
	e, err := scanEstimate(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadPhases(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *SQLiteEstimateRepo) FindByPrefix(ctx context.Context, prefix string) (*domain.Estimate, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, domain.ErrEstimateNotFound
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM estimates WHERE id = ? OR id LIKE ? ESCAPE '\' ORDER BY id LIMIT 2`,
		prefix, escapeLike(prefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("resolving estimate id: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning estimate id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating estimate ids: %w", err)
	}

	switch {
	case len(ids) == 0:
		return nil, domain.ErrEstimateNotFound
	case len(ids) > 1 && ids[0] != prefix:
		return nil, fmt.Errorf("estimate id %q is ambiguous", prefix)
	}
	return r.GetByID(ctx, ids[0])
}

func (r *SQLiteEstimateRepo) List(ctx context.Context, limit int) ([]*domain.Estimate, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+estimateColumns+` FROM estimates ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing estimates: %w", err)
	}
	defer rows.Close()

	var out []*domain.Estimate
	for rows.Next() {
		e, err := scanEstimate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating estimates: %w", err)
	}
	return out, nil
}

// Delete removes an estimate; its phases go with it via ON DELETE CASCADE.
func (r *SQLiteEstimateRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM estimates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting estimate: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting estimate: %w", err)
	}
	if n == 0 {
		return domain.ErrEstimateNotFound
	}
	return nil
}

func (r *SQLiteEstimateRepo) loadPhases(ctx context.Context, e *domain.Estimate) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, duration_weeks, start_week, end_week FROM estimate_phases
		WHERE estimate_id = ? ORDER BY position`, e.ID)
	if err != nil {
		return fmt.Errorf("loading phases: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.PhaseResult
		if err := rows.Scan(&p.Name, &p.DurationWeeks, &p.StartWeek, &p.EndWeek); err != nil {
			return fmt.Errorf("scanning phase: %w", err)
		}
		e.Schedule.Phases = append(e.Schedule.Phases, p)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating phases: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEstimate(row rowScanner) (*domain.Estimate, error) {
	var e domain.Estimate
	var projectType, complexity, variant, sizeCategory string
	var startStr, endStr, createdStr string
	var fastTrack, seasonalBuffer int

	err := row.Scan(
		&e.ID, &e.Label, &projectType, &e.Spec.AreaSqFt, &complexity,
		&startStr, &fastTrack, &seasonalBuffer, &variant, &sizeCategory,
		&e.Schedule.TotalWeeks, &e.Schedule.TotalMonths, &e.Schedule.SeasonalWeeks,
		&endStr, &createdStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEstimateNotFound
		}
		return nil, fmt.Errorf("scanning estimate: %w", err)
	}

	e.Spec.ProjectType = domain.ProjectType(projectType)
	e.Spec.Complexity = domain.Complexity(complexity)
	e.Spec.FastTrack = intToBool(fastTrack)
	e.Spec.SeasonalBufferEnabled = intToBool(seasonalBuffer)
	e.Schedule.Variant = domain.Variant(variant)
	e.Schedule.SizeCategory = domain.SizeCategory(sizeCategory)
	e.Schedule.SeasonalImpact = e.Schedule.SeasonalWeeks > 0

	if e.Spec.StartDate, err = parseDate("start_date", startStr); err != nil {
		return nil, err
	}
	e.Schedule.StartDate = e.Spec.StartDate
	if e.Schedule.EndDate, err = parseDate("end_date", endStr); err != nil {
		return nil, err
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &e, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
