package scheduler

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Ateeq-afk/sahara/internal/domain"
	"github.com/Ateeq-afk/sahara/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func baseSpec() domain.ProjectSpecification {
	return domain.ProjectSpecification{
		ProjectType: domain.ProjectConstruction,
		AreaSqFt:    2500,
		Complexity:  domain.ComplexityStandard,
		StartDate:   date(2024, 1, 1),
	}
}

func durations(s *domain.Schedule) []int {
	out := make([]int, len(s.Phases))
	for i, p := range s.Phases {
		out[i] = p.DurationWeeks
	}
	return out
}

func TestEstimate_MediumStandardConstruction(t *testing.T) {
	sched, err := Estimate(baseSpec())
	require.NoError(t, err)

	// Each phase is its median rounded up: 4, 1.5, 4, 8, 3, 4, 5, 1.5.
	assert.Equal(t, []int{4, 2, 4, 8, 3, 4, 5, 2}, durations(sched))
	assert.Equal(t, 32, sched.TotalWeeks)
	assert.Equal(t, 8, sched.TotalMonths)
	assert.Equal(t, domain.SizeMedium, sched.SizeCategory)
	assert.Equal(t, domain.VariantDetailed, sched.Variant)
	assert.Equal(t, date(2024, 1, 1), sched.StartDate)
	assert.Equal(t, date(2024, 8, 12), sched.EndDate)
	assert.False(t, sched.SeasonalImpact)
	assert.Zero(t, sched.SeasonalWeeks)

	assert.Equal(t, "Design & Approvals", sched.Phases[0].Name)
	assert.Equal(t, "Final Inspection & Handover", sched.Phases[len(sched.Phases)-1].Name)
}

func TestEstimate_FastTrack(t *testing.T) {
	spec := baseSpec()
	spec.FastTrack = true

	sched, err := Estimate(spec)
	require.NoError(t, err)

	// 8×0.8 = 6.4 → 7 and 5×0.8 = 4.0 → 4; everything else rounds back
	// up to its standard value.
	assert.Equal(t, []int{4, 2, 4, 7, 3, 4, 4, 2}, durations(sched))
	assert.Equal(t, 30, sched.TotalWeeks)
	assert.Equal(t, 7, sched.TotalMonths)
	assert.Equal(t, date(2024, 7, 29), sched.EndDate)
}

func TestEstimate_SeasonalBufferAcrossMonsoon(t *testing.T) {
	spec := baseSpec()
	spec.AreaSqFt = 1000
	spec.Complexity = domain.ComplexitySimple
	spec.StartDate = date(2024, 4, 1)
	spec.SeasonalBufferEnabled = true

	sched, err := Estimate(spec)
	require.NoError(t, err)

	// 23 pre-buffer weeks from 1 April; 14 weekly steps land in Jun–Sep,
	// ceil(14 × 0.3) = 5 extra weeks.
	assert.Equal(t, 23, sched.PhaseWeeks())
	assert.True(t, sched.SeasonalImpact)
	assert.Equal(t, 5, sched.SeasonalWeeks)
	assert.Equal(t, 28, sched.TotalWeeks)
	assert.Equal(t, 7, sched.TotalMonths)
	assert.Equal(t, date(2024, 10, 14), sched.EndDate)

	// The buffer is a trailing adjustment, not a phase.
	last := sched.Phases[len(sched.Phases)-1]
	assert.Equal(t, 23, last.EndWeek)
	assert.Len(t, sched.Phases, 8)
}

func TestEstimate_SeasonalBufferOutsideMonsoon(t *testing.T) {
	spec := baseSpec()
	spec.StartDate = date(2024, 10, 1)
	spec.SeasonalBufferEnabled = true

	sched, err := Estimate(spec)
	require.NoError(t, err)

	// 32 weeks from October ends in May: no step touches Jun–Sep.
	assert.False(t, sched.SeasonalImpact)
	assert.Equal(t, 32, sched.TotalWeeks)
}

func TestEstimate_SeasonalBufferNotRecursive(t *testing.T) {
	spec := baseSpec()
	spec.StartDate = date(2024, 1, 1)
	spec.SeasonalBufferEnabled = true

	sched, err := Estimate(spec)
	require.NoError(t, err)

	// Pre-buffer window Jan 1 → Aug 12 has 10 monsoon steps → +3 weeks.
	// The extended tail (Aug 12 → Sep 2) sits in the monsoon too but is
	// not counted again.
	assert.Equal(t, 3, sched.SeasonalWeeks)
	assert.Equal(t, 35, sched.TotalWeeks)
	assert.Equal(t, date(2024, 9, 2), sched.EndDate)
}

func TestEstimate_SeasonalIgnoredForNonConstruction(t *testing.T) {
	for _, pt := range []domain.ProjectType{domain.ProjectInterior, domain.ProjectRenovation} {
		t.Run(string(pt), func(t *testing.T) {
			spec := baseSpec()
			spec.ProjectType = pt
			spec.StartDate = date(2024, 4, 1)
			spec.SeasonalBufferEnabled = true

			sched, err := Estimate(spec)
			require.NoError(t, err)
			assert.False(t, sched.SeasonalImpact)
			assert.Zero(t, sched.SeasonalWeeks)
			assert.Equal(t, sched.PhaseWeeks(), sched.TotalWeeks)
		})
	}
}

func TestEstimate_InteriorAndRenovation(t *testing.T) {
	spec := baseSpec()
	spec.ProjectType = domain.ProjectInterior
	sched, err := Estimate(spec)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 3, 3, 4, 2, 1}, durations(sched))
	assert.Equal(t, 17, sched.TotalWeeks)

	spec = baseSpec()
	spec.ProjectType = domain.ProjectRenovation
	spec.AreaSqFt = 7000
	spec.Complexity = domain.ComplexityComplex
	sched, err = Estimate(spec)
	require.NoError(t, err)
	assert.Equal(t, domain.SizeXLarge, sched.SizeCategory)
	assert.Equal(t, []int{3, 3, 6, 5, 6, 2}, durations(sched))
	assert.Equal(t, 25, sched.TotalWeeks)
}

func TestEstimate_MinimumOneWeekPerPhase(t *testing.T) {
	spec := baseSpec()
	spec.ProjectType = domain.ProjectInterior
	spec.AreaSqFt = 500
	spec.Complexity = domain.ComplexitySimple
	spec.FastTrack = true

	sched, err := Estimate(spec)
	require.NoError(t, err)
	for _, p := range sched.Phases {
		assert.GreaterOrEqual(t, p.DurationWeeks, 1, "phase %s", p.Name)
	}
	assert.Equal(t, 11, sched.TotalWeeks)
}

func TestEstimate_CompactVariant(t *testing.T) {
	engine, err := NewForVariant(domain.VariantCompact)
	require.NoError(t, err)

	sched, err := engine.Estimate(baseSpec())
	require.NoError(t, err)
	assert.Equal(t, domain.VariantCompact, sched.Variant)
	assert.Equal(t, []int{4, 4, 10, 5, 7}, durations(sched))
	assert.Equal(t, 30, sched.TotalWeeks)
}

func TestNewForVariant_Unknown(t *testing.T) {
	_, err := NewForVariant("brief")
	assert.Error(t, err)
}

func TestEstimate_CustomCatalog(t *testing.T) {
	phase := []domain.PhaseTemplate{
		{Name: "Dig", MinWeeks: 1, MaxWeeks: 3},
		{Name: "Pour", MinWeeks: 2, MaxWeeks: 2},
	}
	engine := New(&template.Catalog{
		ID:      "custom",
		Name:    "Custom",
		Variant: domain.VariantDetailed,
		Phases: map[domain.ProjectType][]domain.PhaseTemplate{
			domain.ProjectConstruction: phase,
		},
	})

	sched, err := engine.Estimate(baseSpec())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, durations(sched))

	spec := baseSpec()
	spec.ProjectType = domain.ProjectInterior
	_, err = engine.Estimate(spec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no phases for interior")
}

func TestEstimate_RejectsOversizedPhase(t *testing.T) {
	phase := []domain.PhaseTemplate{{Name: "Forever", MinWeeks: 1e9, MaxWeeks: 1e9}}
	engine := New(&template.Catalog{
		ID:      "oversized",
		Name:    "Oversized",
		Variant: domain.VariantDetailed,
		Phases: map[domain.ProjectType][]domain.PhaseTemplate{
			domain.ProjectConstruction: phase,
		},
	})

	spec := baseSpec()
	spec.SeasonalBufferEnabled = true

	done := make(chan error, 1)
	go func() {
		_, err := engine.Estimate(spec)
		done <- err
	}()
	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), `phase "Forever": max_weeks must be at most 104`)
	case <-time.After(time.Second):
		t.Fatal("estimate over an oversized catalog did not return")
	}
}

func TestEstimate_LongestAllowedPhaseStaysBounded(t *testing.T) {
	phase := []domain.PhaseTemplate{{Name: "Slow", MinWeeks: template.MaxPhaseWeeks, MaxWeeks: template.MaxPhaseWeeks}}
	engine := New(&template.Catalog{
		ID:      "slow",
		Name:    "Slow",
		Variant: domain.VariantDetailed,
		Phases: map[domain.ProjectType][]domain.PhaseTemplate{
			domain.ProjectConstruction: phase,
		},
	})

	spec := baseSpec()
	spec.AreaSqFt = 9000
	spec.Complexity = domain.ComplexityComplex
	spec.SeasonalBufferEnabled = true

	sched, err := engine.Estimate(spec)
	require.NoError(t, err)
	// 104 × 1.3 × 1.5 = 202.8 → 203 weeks, plus the monsoon buffer.
	assert.Equal(t, 203, sched.Phases[0].DurationWeeks)
	assert.Greater(t, sched.SeasonalWeeks, 0)
	assert.Less(t, sched.TotalWeeks, 300)
}

func TestEstimate_InvalidSpecification(t *testing.T) {
	spec := baseSpec()
	spec.AreaSqFt = 0

	sched, err := Estimate(spec)
	assert.Nil(t, sched)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidSpecification))

	var specErr *domain.InvalidSpecificationError
	require.ErrorAs(t, err, &specErr)
	assert.Equal(t, "areaSqFt", specErr.Field)

	spec = baseSpec()
	spec.Complexity = "heroic"
	_, err = Estimate(spec)
	require.ErrorAs(t, err, &specErr)
	assert.Equal(t, "complexity", specErr.Field)
}

func TestEstimate_PastStartDateAccepted(t *testing.T) {
	spec := baseSpec()
	spec.StartDate = date(2001, 3, 5)

	sched, err := Estimate(spec)
	require.NoError(t, err)
	assert.Equal(t, spec.StartDate.AddDate(0, 0, 7*sched.TotalWeeks), sched.EndDate)
}

func TestEstimate_TruncatesStartToMidnight(t *testing.T) {
	spec := baseSpec()
	spec.StartDate = time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)

	sched, err := Estimate(spec)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 1), sched.StartDate)
	assert.Equal(t, date(2024, 8, 12), sched.EndDate)
}

func TestEstimate_DoesNotShareState(t *testing.T) {
	first, err := Estimate(baseSpec())
	require.NoError(t, err)
	first.Phases[0].DurationWeeks = 99

	second, err := Estimate(baseSpec())
	require.NoError(t, err)
	assert.Equal(t, 4, second.Phases[0].DurationWeeks)
	assert.Equal(t, 3.0, template.Detailed().Phases[domain.ProjectConstruction][0].MinWeeks)
}

func TestEstimate_ConcurrentCallers(t *testing.T) {
	want, err := Estimate(baseSpec())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*domain.Schedule, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Estimate(baseSpec())
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, want, got, "caller %d", i)
	}
}

func TestCompare_OrderedByComplexity(t *testing.T) {
	cmp, err := New(nil).Compare(baseSpec())
	require.NoError(t, err)
	require.Len(t, cmp, 3)

	assert.Equal(t, domain.ComplexitySimple, cmp[0].Complexity)
	assert.Equal(t, 30, cmp[0].Schedule.TotalWeeks)
	assert.Equal(t, domain.ComplexityStandard, cmp[1].Complexity)
	assert.Equal(t, 32, cmp[1].Schedule.TotalWeeks)
	assert.Equal(t, domain.ComplexityComplex, cmp[2].Complexity)
	assert.Equal(t, 44, cmp[2].Schedule.TotalWeeks)
}

func TestCompare_InvalidSpec(t *testing.T) {
	spec := baseSpec()
	spec.ProjectType = "shed"
	_, err := New(nil).Compare(spec)
	assert.ErrorIs(t, err, domain.ErrInvalidSpecification)
}

func TestEngineFactors(t *testing.T) {
	spec := baseSpec()
	spec.AreaSqFt = 4000
	spec.Complexity = domain.ComplexityComplex
	spec.FastTrack = true

	f, err := New(nil).Factors(spec)
	require.NoError(t, err)
	assert.Equal(t, 1.3, f.Complexity)
	assert.Equal(t, domain.SizeLarge, f.SizeCategory)
	assert.Equal(t, 1.2, f.Size)
	assert.Equal(t, 0.8, f.FastTrack)
	assert.InDelta(t, 1.248, f.Combined, 1e-9)

	spec.AreaSqFt = -1
	_, err = New(nil).Factors(spec)
	assert.ErrorIs(t, err, domain.ErrInvalidSpecification)
}
