package rolling

import "unicode"

func lower(r rune) rune {
	return unicode.ToLower(r)
}
