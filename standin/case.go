package standin

import (
	"strings"
	"unicode"
)

// snakeCase converts a Go field name to the key it also answers to, so that
// "APIKey" matches "api_key" and "MaxConns2" matches "max_conns_2".
func snakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(runes) + len(runes)/2)

	for i, r := range runes {
		if i > 0 && wordBoundary(runes, i) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func wordBoundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	switch {
	case cur == '_' || prev == '_':
		return false
	case unicode.IsUpper(cur):
		nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
		return unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower)
	case unicode.IsDigit(cur):
		return !unicode.IsDigit(prev)
	}
	return false
}
