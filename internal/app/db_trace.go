package app

import (
	"regexp"
	"strings"
)

// Span attributes have provider-side size limits; long statements get cut.
const tracedQueryLimit = 512

var whitespaceRun = regexp.MustCompile(`\s+`)

// formatDBQueryForTrace collapses whitespace so a multi-line statement reads
// as one line in the trace viewer, truncating past the attribute limit.
func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	flat := whitespaceRun.ReplaceAllString(query, " ")
	if len(flat) > tracedQueryLimit {
		return flat[:tracedQueryLimit] + "..."
	}
	return flat
}
