package yamlstore

import (
	"testing"

	"github.com/espanso/espanso-core/internal/event"
)

func TestDecodeMatch_TriggerAndReplace(t *testing.T) {
	m, err := decodeMatch(1, yamlMatch{
		Trigger: ":sig",
		Replace: "Best regards",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cause, ok := m.Cause.(event.TriggerCause)
	if !ok {
		t.Fatalf("got cause %T, want TriggerCause", m.Cause)
	}
	if len(cause.Triggers) != 1 || cause.Triggers[0] != ":sig" {
		t.Fatalf("got triggers %v", cause.Triggers)
	}
	effect, ok := m.Effect.(event.TextEffect)
	if !ok {
		t.Fatalf("got effect %T, want TextEffect", m.Effect)
	}
	if effect.Replace != "Best regards" {
		t.Fatalf("got replace %q", effect.Replace)
	}
}

func TestDecodeMatch_TriggersListWins(t *testing.T) {
	m, err := decodeMatch(1, yamlMatch{Triggers: []string{":a", ":b"}, Replace: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cause := m.Cause.(event.TriggerCause)
	if len(cause.Triggers) != 2 {
		t.Fatalf("got %v", cause.Triggers)
	}
}

func TestDecodeMatch_Regex(t *testing.T) {
	m, err := decodeMatch(1, yamlMatch{Regex: `\d+`, Replace: "num"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cause, ok := m.Cause.(event.RegexCause)
	if !ok || cause.Pattern != `\d+` {
		t.Fatalf("got cause %#v", m.Cause)
	}
}

func TestDecodeMatch_NoCauseIsInvocationOnly(t *testing.T) {
	m, err := decodeMatch(1, yamlMatch{Replace: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := m.Cause.(event.NoCause); !ok {
		t.Fatalf("got cause %T, want NoCause", m.Cause)
	}
}

func TestDecodeMatch_Image(t *testing.T) {
	m, err := decodeMatch(1, yamlMatch{Trigger: ":logo", Image: "/tmp/logo.png"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	effect, ok := m.Effect.(event.ImageEffect)
	if !ok || effect.Path != "/tmp/logo.png" {
		t.Fatalf("got effect %#v", m.Effect)
	}
}

func TestDecodeMatch_NoEffectErrors(t *testing.T) {
	_, err := decodeMatch(1, yamlMatch{Trigger: ":x"})
	if err == nil {
		t.Fatalf("expected error for match with no effect")
	}
}

func TestDecodeMatch_VariablesAndParams(t *testing.T) {
	m, err := decodeMatch(1, yamlMatch{
		Trigger: ":d",
		Replace: "{{now}}",
		Vars: []yamlVariable{
			{
				Name: "now",
				Type: "date",
				Params: map[string]any{
					"format": "%Y-%m-%d",
					"offset": float64(3),
					"utc":    true,
					"tags":   []any{"a", "b"},
					"nested": map[string]any{"k": "v"},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	effect := m.Effect.(event.TextEffect)
	if len(effect.Vars) != 1 {
		t.Fatalf("got %d vars, want 1", len(effect.Vars))
	}
	v := effect.Vars[0]
	if v.VarType != "date" {
		t.Fatalf("got type %q", v.VarType)
	}
	if v.Params["format"].Str != "%Y-%m-%d" {
		t.Fatalf("got format %#v", v.Params["format"])
	}
	if v.Params["offset"].Num != 3 {
		t.Fatalf("got offset %#v", v.Params["offset"])
	}
	if !v.Params["utc"].Bool {
		t.Fatalf("got utc %#v", v.Params["utc"])
	}
	if len(v.Params["tags"].List) != 2 {
		t.Fatalf("got tags %#v", v.Params["tags"])
	}
	if v.Params["nested"].Map["k"].Str != "v" {
		t.Fatalf("got nested %#v", v.Params["nested"])
	}
}

func TestDecodeFormat(t *testing.T) {
	cases := map[string]event.Format{
		"":         event.FormatPlain,
		"html":     event.FormatHTML,
		"markdown": event.FormatMarkdown,
		"bogus":    event.FormatPlain,
	}
	for in, want := range cases {
		if got := decodeFormat(in); got != want {
			t.Errorf("decodeFormat(%q) = %v, want %v", in, got, want)
		}
	}
}
