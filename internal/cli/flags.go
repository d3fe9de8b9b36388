package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// dateValue is a pflag.Value holding a YYYY-MM-DD date.
type dateValue struct {
	t *time.Time
}

var _ pflag.Value = dateValue{}

func newDateValue(p *time.Time) dateValue {
	return dateValue{t: p}
}

func (d dateValue) String() string {
	if d.t == nil || d.t.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

func (d dateValue) Set(s string) error {
	t, err := parseDate(s)
	if err != nil {
		return err
	}
	*d.t = t
	return nil
}

func (d dateValue) Type() string { return "date" }

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return t, nil
}

// anyChanged reports whether any of the named flags was set on the
// command line.
func anyChanged(fs *pflag.FlagSet, names ...string) bool {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	found := false
	fs.Visit(func(f *pflag.Flag) {
		if want[f.Name] {
			found = true
		}
	})
	return found
}
