package utils

import "github.com/gosimple/slug"

// Slugify derives the URL identifier for a display name: lowercase,
// non-alphanumeric runs collapsed to single hyphens, edges trimmed.
// Collisions are not auto-suffixed here; the scoped unique index
// rejects the insert and the caller reports the conflict.
func Slugify(name string) string {
	return slug.Make(name)
}
