package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate parses an ISO-8601 date or any of the common human formats found
// in historical rosters ("Jan 2, 2024", "02/01/2024", ...).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	return dateparse.ParseAny(s)
}

// Overlaps reports whether two inclusive date intervals intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}
