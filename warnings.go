package fusegrid

import (
	"fmt"
	"strings"
)

// Warning reports a non-fatal problem encountered while processing a
// document. A failing collaborator call degrades the affected page rather
// than aborting the run; the warning records what was skipped.
type Warning struct {
	// Page is the zero-based page index the warning applies to, or -1 for
	// document-scoped warnings.
	Page int

	// Op names the operation that degraded, such as "raster", "detect",
	// "extract", or "fuse".
	Op string

	// Message describes what went wrong.
	Message string
}

// String returns a human-readable form of the warning.
func (w Warning) String() string {
	if w.Page < 0 {
		return fmt.Sprintf("%s: %s", w.Op, w.Message)
	}
	return fmt.Sprintf("page %d: %s: %s", w.Page, w.Op, w.Message)
}

// warnf builds a page-scoped warning.
func warnf(page int, op, format string, args ...any) Warning {
	return Warning{Page: page, Op: op, Message: fmt.Sprintf(format, args...)}
}

// FormatWarnings joins warnings into a single newline-separated string for
// display or logging. It returns "" for an empty slice.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
