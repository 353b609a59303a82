package matcher

import "github.com/espanso/espanso-core/internal/event"

// Platform selects the modifier-skip rule applied to ordinary keystrokes
// (spec §4.3): a key typed while a "word-processing" modifier is held is
// passed through untouched rather than fed to the sub-matchers, because the
// application underneath is almost certainly performing its own command
// rather than literal text entry.
type Platform int

const (
	PlatformLinux Platform = iota
	PlatformMacOS
	PlatformWindows
)

// modifierSkip reports whether a non-modifier keystroke should bypass
// matching entirely given the currently held-down modifiers.
func modifierSkip(p Platform, down map[event.Key]bool) bool {
	switch p {
	case PlatformMacOS:
		return down[event.KeyMeta]
	case PlatformLinux:
		return down[event.KeyAlt] || down[event.KeyMeta]
	default: // PlatformWindows never skips
		return false
	}
}

// isLinuxFunctionCode reports whether code falls in the X11 keysym range
// reserved for function/media keys, which carry no printable character and
// are never of interest to the matcher on Linux. Platform drivers on other
// OSes do not populate Code with keysyms, so this check is a no-op there.
func isLinuxFunctionCode(p Platform, code uint32) bool {
	return p == PlatformLinux && code >= 0xff50 && code <= 0xffff
}
