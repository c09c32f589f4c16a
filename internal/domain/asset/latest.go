package asset

import (
	"strings"
	"time"
)

var eventDateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseEventDate accepts the date shapes the offline clients have
// historically produced. A second false return means the value is
// absent or malformed and must not take part in latest-selection.
func ParseEventDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Latest picks the most-recently-dated row. date extracts the
// category's designated timestamp; a row with an empty one falls back
// to createdAt, while a row whose timestamp is present but malformed
// is excluded from the selection outright. A tie on identical
// timestamps keeps whichever row came first; that nondeterminism is
// accepted.
func Latest[T any](rows []T, date func(T) string, createdAt func(T) string) (T, bool) {
	var best T
	var bestAt time.Time
	found := false
	for _, row := range rows {
		var at time.Time
		var ok bool
		if raw := strings.TrimSpace(date(row)); raw != "" {
			at, ok = ParseEventDate(raw)
		} else if createdAt != nil {
			at, ok = ParseEventDate(createdAt(row))
		}
		if !ok {
			continue
		}
		if !found || at.After(bestAt) {
			best = row
			bestAt = at
			found = true
		}
	}
	return best, found
}
