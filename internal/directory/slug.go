package directory

import "strings"

// GroupIDPrefix tags group identifiers in the public API.
const GroupIDPrefix = "grp_"

// Slugify lowercases text, collapses every run of characters outside
// [a-z0-9] into a single hyphen, and trims leading and trailing hyphens.
// Non-ASCII letters are treated as separators.
func Slugify(text string) string {
	lower := strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(lower))
	pendingHyphen := false
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteByte(c)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
