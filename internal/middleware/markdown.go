package middleware

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/espanso/espanso-core/internal/event"
)

// Markdown is stage 12: it converts MarkdownInject into HtmlInject. A
// parser panic (goldmark's AST walkers can panic on pathological input)
// is recovered and turned into NOOP rather than crashing the chain (spec
// §4.2 step 12).
type Markdown struct {
	md goldmark.Markdown
}

func NewMarkdown() *Markdown {
	return &Markdown{md: goldmark.New()}
}

func (*Markdown) Name() string { return "Markdown" }

func (m *Markdown) Next(ev event.Event, _ Dispatch) (result event.Type) {
	mi, ok := ev.Type.(event.MarkdownInject)
	if !ok {
		return ev.Type
	}

	defer func() {
		if r := recover(); r != nil {
			result = event.NOOP{}
		}
	}()

	var buf bytes.Buffer
	if err := m.md.Convert([]byte(mi.Markdown), &buf); err != nil {
		return event.NOOP{}
	}

	return event.HtmlInject{HTML: unwrapParagraph(buf.String()), Fallback: mi.Markdown}
}

// unwrapParagraph strips a single surrounding <p>...</p> that goldmark adds
// around a one-paragraph document, since the injected HTML is spliced
// inline into existing text, not placed in its own block.
func unwrapParagraph(html string) string {
	html = strings.TrimSuffix(html, "\n")
	if strings.HasPrefix(html, "<p>") && strings.HasSuffix(html, "</p>") &&
		strings.Count(html, "<p>") == 1 {
		return strings.TrimSuffix(strings.TrimPrefix(html, "<p>"), "</p>")
	}
	return html
}
