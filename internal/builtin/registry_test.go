package builtin

import (
	"errors"
	"testing"

	"github.com/espanso/espanso-core/internal/event"
)

func TestNewRegistry_IndexesByID(t *testing.T) {
	matches := Catalog(SearchOptions{HasTrigger: true, Trigger: ":s"})
	reg, err := NewRegistry(matches)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Count() != len(matches) {
		t.Fatalf("got count %d, want %d", reg.Count(), len(matches))
	}
	bi, ok := reg.Lookup(idExit)
	if !ok {
		t.Fatalf("expected exit entry to resolve")
	}
	if bi.Label != "Exit espanso" {
		t.Fatalf("got label %q", bi.Label)
	}
}

func TestNewRegistry_RejectsDuplicateIDs(t *testing.T) {
	dup := []BuiltIn{
		{ID: idExit, Label: "a"},
		{ID: idExit, Label: "b"},
	}
	_, err := NewRegistry(dup)
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("got %v, want ErrDuplicateID", err)
	}
}

func TestRegistry_LookupMissingID(t *testing.T) {
	reg, err := NewRegistry(Catalog(SearchOptions{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := reg.Lookup(event.MatchID(42)); ok {
		t.Fatalf("expected miss for non-builtin id")
	}
}
