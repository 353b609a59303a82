//go:build !linux

package state

import "golang.org/x/term"

// RawModeAvailable reports whether fd is a terminal at all. Platforms
// other than Linux get this coarser check; TermModifierSource's
// byte-level Ctrl/Alt heuristic is Linux-only for now since it was
// grounded on the same ioctl termsim uses there.
func RawModeAvailable(fd int) bool {
	return term.IsTerminal(fd)
}
