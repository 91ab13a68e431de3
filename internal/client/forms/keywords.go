package forms

import "strings"

// NormalizeList splits a comma-separated string, trims every entry and drops
// empty ones. It is idempotent over its own output joined back with commas.
//
//	NormalizeList("a, b ,, c") == []string{"a", "b", "c"}
func NormalizeList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList is the inverse used when hydrating a draft from a fetched gig.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
