package termsim

import (
	"github.com/gdamore/tcell/v2"

	"github.com/espanso/espanso-core/internal/event"
	"github.com/espanso/espanso-core/internal/funnel"
	"github.com/espanso/espanso-core/internal/state"
)

// Detector polls Driver's screen and translates tcell events into raw
// event.Type values, the same role a real X11/Win32/Cocoa key-capture
// driver plays. It also feeds a state.ModifierTracker directly from
// tcell's reported modifier mask — a real signal, unlike
// state.TermModifierSource's byte-sniffing fallback for environments
// without a library that already decodes modifiers for you.
type Detector struct {
	driver   *Driver
	out      chan event.Type
	modifier *state.ModifierTracker
	done     chan struct{}
}

// NewDetector builds a Detector over driver. modifier may be nil if the
// caller has no use for modifier-state tracking (e.g. DelayForModifierRelease
// is wired with state.NoModifierProvider instead).
func NewDetector(driver *Driver, modifier *state.ModifierTracker) *Detector {
	return &Detector{
		driver:   driver,
		out:      make(chan event.Type, 64),
		modifier: modifier,
		done:     make(chan struct{}),
	}
}

// Source exposes the detector as a funnel.Source.
func (d *Detector) Source() funnel.Source {
	return funnel.Source{Name: "termsim-keyboard", C: d.out}
}

// Run polls the screen until Stop is called or the screen is finalized,
// emitting one event.Type per poll. It is meant to run on its own
// goroutine; the funnel consumes from Source() on the engine goroutine.
func (d *Detector) Run() {
	for {
		select {
		case <-d.done:
			close(d.out)
			return
		default:
		}

		ev := d.driver.Screen().PollEvent()
		if ev == nil {
			close(d.out)
			return
		}

		switch e := ev.(type) {
		case *tcell.EventKey:
			if d.modifier != nil && e.Modifiers() != tcell.ModNone {
				d.modifier.Observe()
			}
			d.out <- convertKeyEvent(e)
		case *tcell.EventMouse:
			if btn, ok := convertMouseButton(e.Buttons()); ok {
				d.out <- event.Mouse{Button: btn, Status: event.Pressed}
			}
		}
	}
}

// Stop asks Run to return after its next poll wakes up.
func (d *Detector) Stop() {
	close(d.done)
}

func convertKeyEvent(e *tcell.EventKey) event.Type {
	key, structural := convertKey(e.Key())
	if !structural {
		return event.Keyboard{
			Key:      event.Key(""),
			Value:    string(e.Rune()),
			HasValue: true,
			Status:   event.Pressed,
		}
	}
	return event.Keyboard{
		Key:    key,
		Status: event.Pressed,
	}
}

func convertKey(k tcell.Key) (event.Key, bool) {
	switch k {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return event.KeyBackspace, true
	case tcell.KeyLeft:
		return event.KeyLeftArrow, true
	case tcell.KeyRight:
		return event.KeyRightArrow, true
	case tcell.KeyUp:
		return event.KeyUpArrow, true
	case tcell.KeyDown:
		return event.KeyDownArrow, true
	case tcell.KeyHome:
		return event.KeyHome, true
	case tcell.KeyEnd:
		return event.KeyEnd, true
	case tcell.KeyPgUp:
		return event.KeyPageUp, true
	case tcell.KeyPgDn:
		return event.KeyPageDown, true
	case tcell.KeyEscape:
		return event.KeyEscape, true
	case tcell.KeyTab:
		return event.KeyTab, true
	case tcell.KeyEnter:
		return event.KeyEnter, true
	default:
		return "", false
	}
}

func convertMouseButton(b tcell.ButtonMask) (event.MouseButton, bool) {
	switch {
	case b&tcell.Button1 != 0:
		return event.MouseLeft, true
	case b&tcell.Button2 != 0:
		return event.MouseMiddle, true
	case b&tcell.Button3 != 0:
		return event.MouseRight, true
	default:
		return "", false
	}
}
