package render

import (
	"strings"

	"github.com/rivo/uniseg"
)

// cursorHintMarker is the literal token a match body uses to place the
// cursor somewhere other than the end of the injected text.
const cursorHintMarker = "$|$"

// extractCursorHint finds the marker, removes it, and returns the body
// without it plus how many ArrowLeft presses the Action middleware must
// emit afterward to land the cursor where the marker was (spec §4.4 step
// 10). Counting is grapheme-cluster aware (github.com/rivo/uniseg) so that
// multi-rune user-perceived characters around the marker don't throw the
// back-count off by one, the same concern the matcher's trigger-char
// counting has.
func extractCursorHint(body string) (string, int, bool) {
	idx := strings.Index(body, cursorHintMarker)
	if idx < 0 {
		return body, 0, false
	}
	prefix := body[:idx]
	withoutMarker := prefix + body[idx+len(cursorHintMarker):]
	backCount := graphemeCount(withoutMarker) - graphemeCount(prefix)
	return withoutMarker, backCount, true
}

func graphemeCount(s string) int {
	g := uniseg.NewGraphemes(s)
	n := 0
	for g.Next() {
		n++
	}
	return n
}
