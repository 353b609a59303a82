package yamlstore

import (
	"strings"
	"testing"

	"github.com/espanso/espanso-core/internal/event"
)

func TestDumpJSON_TextEffect(t *testing.T) {
	m := event.Match{
		ID:    1,
		Cause: event.TriggerCause{Triggers: []string{":sig"}},
		Effect: event.TextEffect{
			Replace: "Best regards",
			Format:  event.FormatPlain,
		},
	}
	doc, err := DumpJSON(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{`"id":1`, `"cause":{"type":"trigger"`, `"effect":{"type":"text"`, "Best regards"} {
		if !strings.Contains(doc, want) {
			t.Fatalf("doc %q missing %q", doc, want)
		}
	}
}

func TestDumpJSON_ImageEffect(t *testing.T) {
	m := event.Match{ID: 2, Cause: event.NoCause{}, Effect: event.ImageEffect{Path: "/x.png"}}
	doc, err := DumpJSON(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(doc, `"path":"/x.png"`) {
		t.Fatalf("doc %q missing path", doc)
	}
}
