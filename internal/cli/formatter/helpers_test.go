package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences so assertions are
// terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestWeeksAndMonths(t *testing.T) {
	assert.Equal(t, "1 week", Weeks(1))
	assert.Equal(t, "32 weeks", Weeks(32))
	assert.Equal(t, "0 weeks", Weeks(0))
	assert.Equal(t, "1 month", Months(1))
	assert.Equal(t, "8 months", Months(8))
}

func TestArea(t *testing.T) {
	assert.Equal(t, "2500 sq ft", Area(2500))
	assert.Equal(t, "1499.5 sq ft", Area(1499.5))
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "12 Aug 2024", HumanDate(time.Date(2024, 8, 12, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "--", HumanDate(time.Time{}))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "550e8400", stripANSI(TruncID("550e8400-e29b-41d4-a716-446655440000")))
	assert.Equal(t, "abc", stripANSI(TruncID("abc")))
}

func TestRenderBox_Title(t *testing.T) {
	out := stripANSI(RenderBox("summary", "body"))
	assert.Contains(t, out, "SUMMARY")
	assert.Contains(t, out, "body")
	assert.True(t, strings.HasPrefix(out, "╭"))
}

func TestRenderTableRight_AlignsNumbers(t *testing.T) {
	out := stripANSI(RenderTableRight(
		[]string{"NAME", "WEEKS"},
		[][]string{{"Foundation", "4"}, {"Roofing", "12"}},
		1,
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "Foundation      4", lines[2])
	assert.Equal(t, "Roofing        12", lines[3])
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}
