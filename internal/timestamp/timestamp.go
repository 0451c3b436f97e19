// Package timestamp converts the ISO-8601-like wallclock strings used in
// flight records and timestamp query literals into UTC epoch seconds.
package timestamp

import (
	"fmt"
	"strings"
	"time"
)

const layout = "2006-01-02T15:04:05"

// Parse converts s, a local wallclock string of the form
// YYYY-MM-DDTHH:MM:SS with an optional (ignored) fractional-second suffix,
// into UTC epoch seconds.
func Parse(s string) (int64, error) {
	trimmed := stripFraction(s)

	t, err := time.Parse(layout, trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}

	return t.Unix(), nil
}

// stripFraction removes a trailing ".nnn" fractional-seconds component,
// if present, since spec requires it be tolerated and ignored.
func stripFraction(s string) string {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s
	}
	return s[:dot]
}
