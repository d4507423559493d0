package models

import (
	gosimpleslug "github.com/gosimple/slug"
)

// Slugify derives the URL-safe identifier for an item from its display name:
// lowercase, runs of non-alphanumerics collapsed to single hyphens, no
// leading or trailing hyphens. Deterministic and idempotent —
// Slugify(Slugify(x)) == Slugify(x).
func Slugify(name string) string {
	return gosimpleslug.Make(name)
}
