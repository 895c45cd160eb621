package generate

import (
	"fmt"
	"strconv"
	"time"
)

// Layouts shared by all generators. Dates and times are carried as strings
// end to end because corrupted records may hold unparsable values.
const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04:05"
	dateTimeLayout = "2006-01-02 15:04:05"
	expiryLayout   = "01/06"
)

// dateFormats are the layouts ParseDate tries, in order. Upstream records
// normally use the first; corrupted ones may carry any of the rest.
var dateFormats = []string{
	dateLayout,
	dateTimeLayout,
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
}

// ParseDate parses a date string against the known layouts. The error return
// makes the fallback an explicit branch at each call site: generators that
// must tolerate corrupted upstream values map the failure to a safe default
// instead of propagating it.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// SafeFloat coerces a possibly-corrupted value to float64, falling back to
// def for nil, absent, or non-numeric input. Bad-data injection routinely
// leaves strings or nils where numbers are expected; later-stage generators
// must consume those records without failing the run.
func SafeFloat(v any, def float64) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case string:
		if f, err := strconv.ParseFloat(x, 64); err == nil {
			return f
		}
	}
	return def
}

// SafeInt coerces a possibly-corrupted value to int with a default.
// Floats are truncated.
func SafeInt(v any, def int) int {
	switch x := v.(type) {
	case int:
		return x
	case int64:
		return int(x)
	case float64:
		return int(x)
	case string:
		if n, err := strconv.Atoi(x); err == nil {
			return n
		}
	}
	return def
}

// SafeString coerces a value to string with a default for nil or absent
// input. Non-string scalars are formatted.
func SafeString(v any, def string) string {
	switch x := v.(type) {
	case nil:
		return def
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
