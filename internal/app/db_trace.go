package app

import (
	"regexp"
	"strings"
)

// Queries recorded on spans are collapsed to one line and capped so large
// batch statements do not bloat trace storage.
const tracedQueryLimit = 512

var collapseWhitespace = regexp.MustCompile(`\s+`)

func formatDBQueryForTrace(query string) string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return trimmed
	}

	flat := collapseWhitespace.ReplaceAllString(trimmed, " ")
	if len(flat) > tracedQueryLimit {
		return flat[:tracedQueryLimit] + "..."
	}

	return flat
}
