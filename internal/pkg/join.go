package pkg

import "strings"

// JoinOr - joins items for a prompt, e.g. "1, 2, or 3".
// The serial comma is written when there are three or more items.
func JoinOr(items []string, separator, finalWord string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + finalWord + " " + items[1]
	}

	head := strings.Join(items[:len(items)-1], separator)

	return head + separator + finalWord + " " + items[len(items)-1]
}
