package middleware

import (
	"github.com/espanso/espanso-core/internal/event"
	"github.com/espanso/espanso-core/internal/middleware/altcode"
)

// AltCodeSynthesizer is stage 5: it accumulates numpad digits typed while
// Alt is held (the Windows Alt-code convention), and on Alt release
// resolves the sequence via internal/middleware/altcode and emits a
// TextInject of the single synthesized character (spec §4.2 step 5). The
// middleware is platform-agnostic, and cmd/espansod wires it into the
// chain on every platform, so Alt+numpad sequences are synthesized on
// non-Windows platforms as well.
type AltCodeSynthesizer struct {
	altDown bool
	digits  []int
}

func NewAltCodeSynthesizer() *AltCodeSynthesizer {
	return &AltCodeSynthesizer{}
}

func (*AltCodeSynthesizer) Name() string { return "AltCodeSynthesizer" }

func (m *AltCodeSynthesizer) Next(ev event.Event, _ Dispatch) event.Type {
	k, ok := ev.Type.(event.Keyboard)
	if !ok {
		return ev.Type
	}

	if k.Key == event.KeyAlt {
		if k.Status == event.Pressed {
			m.altDown = true
			m.digits = m.digits[:0]
			return k
		}
		// Alt released: resolve whatever was accumulated, if anything.
		wasDown := m.altDown
		m.altDown = false
		digits := m.digits
		m.digits = nil
		if !wasDown || len(digits) == 0 {
			return k
		}
		r, resolved := altcode.Resolve(digits)
		if !resolved {
			return k
		}
		return event.TextInject{Text: string(r)}
	}

	if m.altDown {
		if d, isDigit := k.Key.NumpadDigit(); isDigit && k.Status == event.Pressed {
			m.digits = append(m.digits, d)
			return event.NOOP{}
		}
	}

	return k
}
