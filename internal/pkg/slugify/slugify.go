// Package slugify derives URL slugs from titles the same way the admin UI
// always has: lower-case, ASCII letters and digits only, whitespace collapsed
// to hyphens. Non-ASCII characters (including Arabic) are stripped, so a
// purely Arabic title yields an empty base slug.
package slugify

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	nonAlnum   = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Make derives a slug from a title. Deterministic; collision handling is the
// database's uniqueness constraint, not ours.
func Make(title string) string {
	s := strings.ToLower(title)
	s = nonAlnum.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = whitespace.ReplaceAllString(s, "-")
	return s
}

// MakeUnique derives a slug and appends a millisecond timestamp suffix.
// Used by CSV import, where many rows may share a title within one batch.
func MakeUnique(title string, now time.Time) string {
	base := Make(title)
	suffix := strconv.FormatInt(now.UnixMilli(), 10)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
