package event

// KeyStatus is whether a key/button transitioned down or up.
type KeyStatus int

const (
	Pressed KeyStatus = iota
	Released
)

func (s KeyStatus) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// KeyVariant distinguishes left/right variants of modifier keys (e.g. left
// Shift vs right Shift) where the platform driver can tell them apart.
type KeyVariant int

const (
	VariantNone KeyVariant = iota
	VariantLeft
	VariantRight
)

// Key identifies a physical key independent of the character it produces.
// The matcher and the middleware chain reason about Key for structural
// decisions (Backspace, arrow keys, modifiers); the character it produced,
// if any, travels separately as Value.
type Key string

// Keys of structural significance to the core. Platform drivers may report
// many more keys; anything not listed here is treated as an ordinary
// character-producing key.
const (
	KeyBackspace  Key = "Backspace"
	KeyLeftArrow  Key = "LeftArrow"
	KeyRightArrow Key = "RightArrow"
	KeyUpArrow    Key = "UpArrow"
	KeyDownArrow  Key = "DownArrow"
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
	KeyPageUp     Key = "PageUp"
	KeyPageDown   Key = "PageDown"
	KeyEscape     Key = "Escape"
	KeyTab        Key = "Tab"
	KeyEnter      Key = "Enter"
	KeySpace      Key = "Space"

	KeyAlt      Key = "Alt"
	KeyShift    Key = "Shift"
	KeyCapsLock Key = "CapsLock"
	KeyMeta     Key = "Meta"
	KeyNumLock  Key = "NumLock"
	KeyControl  Key = "Control"

	KeyNumpad0 Key = "Numpad0"
	KeyNumpad1 Key = "Numpad1"
	KeyNumpad2 Key = "Numpad2"
	KeyNumpad3 Key = "Numpad3"
	KeyNumpad4 Key = "Numpad4"
	KeyNumpad5 Key = "Numpad5"
	KeyNumpad6 Key = "Numpad6"
	KeyNumpad7 Key = "Numpad7"
	KeyNumpad8 Key = "Numpad8"
	KeyNumpad9 Key = "Numpad9"
)

// NumpadDigit reports the decimal digit a numpad key produces and whether k
// is a numpad digit key at all. Only numpad digits participate in Windows
// Alt-code sequences; the top-row digit keys do not.
func (k Key) NumpadDigit() (int, bool) {
	switch k {
	case KeyNumpad0:
		return 0, true
	case KeyNumpad1:
		return 1, true
	case KeyNumpad2:
		return 2, true
	case KeyNumpad3:
		return 3, true
	case KeyNumpad4:
		return 4, true
	case KeyNumpad5:
		return 5, true
	case KeyNumpad6:
		return 6, true
	case KeyNumpad7:
		return 7, true
	case KeyNumpad8:
		return 8, true
	case KeyNumpad9:
		return 9, true
	default:
		return 0, false
	}
}

// MouseButton identifies which mouse button produced a Mouse event.
type MouseButton string

const (
	MouseLeft   MouseButton = "left"
	MouseRight  MouseButton = "right"
	MouseMiddle MouseButton = "middle"
)

// IsModifier reports whether k is one of the modifier keys that the matcher
// and the Disable middleware must never treat as an ordinary keystroke.
func (k Key) IsModifier() bool {
	switch k {
	case KeyAlt, KeyShift, KeyCapsLock, KeyMeta, KeyNumLock, KeyControl:
		return true
	default:
		return false
	}
}

// IsInvalidating reports whether k is one of the keys that, per spec §3/§4.3,
// clears the matcher's entire key-history deque because the buffer can no
// longer be trusted to reflect what the user actually typed.
func (k Key) IsInvalidating() bool {
	switch k {
	case KeyLeftArrow, KeyRightArrow, KeyUpArrow, KeyDownArrow,
		KeyHome, KeyEnd, KeyPageUp, KeyPageDown, KeyEscape:
		return true
	default:
		return false
	}
}
