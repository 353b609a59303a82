//go:build linux

package state

import (
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TermModifierSource feeds a ModifierTracker from raw terminal bytes: a
// byte in the C0 control range (0x01-0x1A, excluding tab/newline/carriage
// return) means Ctrl is held for whatever key produced it, and every 0x1B
// byte is taken as an Alt chord. Bytes are inspected one at a time, so an
// ESC that starts a CSI/SS3 sequence (an arrow key, say) or a plain Escape
// press is recorded as a modifier signal too.
type TermModifierSource struct {
	tracker *ModifierTracker
}

// NewTermModifierSource wires src to report into tracker.
func NewTermModifierSource(tracker *ModifierTracker) *TermModifierSource {
	return &TermModifierSource{tracker: tracker}
}

// ObserveByte inspects one raw input byte and records a modifier signal on
// the wrapped tracker if it looks Ctrl- or Alt-chorded.
func (s *TermModifierSource) ObserveByte(b byte) {
	if isCtrlChord(b) || b == 0x1B {
		s.tracker.Observe()
	}
}

func isCtrlChord(b byte) bool {
	switch b {
	case '\t', '\n', '\r':
		return false
	}
	return b >= 0x01 && b <= 0x1A
}

// RawModeAvailable reports whether fd is a terminal that can be put into
// raw/cbreak mode, the precondition for seeing unbuffered control bytes at
// all rather than the line-edited, modifier-stripped runes the kernel tty
// line discipline would otherwise deliver.
func RawModeAvailable(fd int) bool {
	if !term.IsTerminal(fd) {
		return false
	}
	_, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	return err == nil
}
