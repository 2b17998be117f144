package app

import (
	"regexp"
	"strings"
)

const maxTracedQueryLength = 512

var (
	sqlLineComment = regexp.MustCompile(`--[^\n]*`)
	sqlWhitespace  = regexp.MustCompile(`\s+`)
)

// formatDBQueryForTrace renders a statement as a single line for span
// attributes. Arguments are bound separately and never appear here.
func formatDBQueryForTrace(query string) string {
	query = sqlLineComment.ReplaceAllString(query, " ")
	query = strings.TrimSpace(sqlWhitespace.ReplaceAllString(query, " "))
	if len(query) > maxTracedQueryLength {
		return query[:maxTracedQueryLength] + "..."
	}
	return query
}
