package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// Normalize canonicalizes a scalar into a comparison-safe key: nil
// becomes the empty string, anything else is stringified, every run of
// whitespace (including non-breaking space) collapsed to a single ASCII
// space, trimmed, and lower-cased. It is idempotent and never fails.
// All case/whitespace-insensitive comparisons in the package (filtering,
// grouping, status tokens, uniqueness) go through it.
func Normalize(value any) string {
	if value == nil {
		return ""
	}
	s := stringify(value)
	// strings.Fields splits on unicode.IsSpace, which covers NBSP and
	// friends, and drops leading/trailing runs for free.
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
