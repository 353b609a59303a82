package render

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caseClass classifies a trigger occurrence per spec §4.4 step 9: inspect
// its first two alphabetic characters.
type caseClass int

const (
	caseNone        caseClass = iota // leave body untouched
	caseCapitalized                  // first-alpha upper, second-alpha lower
	caseAllUpper                     // first two alphas both upper
)

func classify(trigger string) caseClass {
	var alphas []rune
	for _, r := range trigger {
		if unicode.IsLetter(r) {
			alphas = append(alphas, r)
			if len(alphas) == 2 {
				break
			}
		}
	}
	switch len(alphas) {
	case 0:
		return caseNone
	case 1:
		if unicode.IsUpper(alphas[0]) {
			return caseCapitalized
		}
		return caseNone
	default:
		if unicode.IsUpper(alphas[0]) && unicode.IsUpper(alphas[1]) {
			return caseAllUpper
		}
		if unicode.IsUpper(alphas[0]) && unicode.IsLower(alphas[1]) {
			return caseCapitalized
		}
		return caseNone
	}
}

var upperCaser = cases.Upper(language.Und)

// applyCasing propagates the trigger's typed case onto body, per spec §4.4
// step 9. Full-body uppercasing goes through golang.org/x/text/cases so
// that multi-rune case foldings (e.g. German ß → SS) are handled correctly;
// capitalizing just the first rune does not need a locale-aware transform.
func applyCasing(body string, class caseClass) string {
	switch class {
	case caseAllUpper:
		return upperCaser.String(body)
	case caseCapitalized:
		for i, r := range body {
			rest := body[i+len(string(r)):]
			return string(unicode.ToUpper(r)) + rest
		}
		return body
	default:
		return body
	}
}
