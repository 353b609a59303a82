package termsim

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/espanso/espanso-core/internal/event"
)

func newTestDriver(t *testing.T) *Driver {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(40, 10)
	d := &Driver{screen: screen}
	t.Cleanup(screen.Fini)
	return d
}

func TestDriver_InjectText_AppendsToBuffer(t *testing.T) {
	d := newTestDriver(t)
	if err := d.InjectText("hello", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Buffer() != "hello" {
		t.Fatalf("got buffer %q", d.Buffer())
	}
}

func TestDriver_InjectText_InsertsAtCursor(t *testing.T) {
	d := newTestDriver(t)
	_ = d.InjectText("hello", 0)
	d.cursor = 0
	_ = d.InjectText("X", 0)
	if d.Buffer() != "Xhello" {
		t.Fatalf("got buffer %q", d.Buffer())
	}
}

func TestDriver_InjectKeys_Backspace(t *testing.T) {
	d := newTestDriver(t)
	_ = d.InjectText("hello", 0)
	if err := d.InjectKeys([]event.Key{event.KeyBackspace}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Buffer() != "hell" {
		t.Fatalf("got buffer %q", d.Buffer())
	}
}
