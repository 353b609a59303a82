// Package matchtype holds the types shared between internal/matcher and its
// sub-matcher implementations (internal/matcher/rolling,
// internal/matcher/regexm), so that the sub-matcher packages need not import
// internal/matcher itself.
package matchtype

// Input is the atom fed to a SubMatcher on each of-interest keystroke: a
// produced character, or a virtual separator (a configured separator
// character, or event.MatchInjected synthesized as a boundary).
type Input interface {
	isMatcherInput()
}

// CharInput is one typed character.
type CharInput struct {
	Char rune
}

func (CharInput) isMatcherInput() {}

// SeparatorInput marks a word boundary. Literal is the separator text,
// empty for a synthesized VirtualSeparator.
type SeparatorInput struct {
	Literal string
}

func (SeparatorInput) isMatcherInput() {}

// DetectedMatch mirrors event.DetectedMatch; redeclared here so the matching
// algorithms stay decoupled from the event model.
type DetectedMatch struct {
	ID             int32
	Trigger        string
	LeftSeparator  string
	RightSeparator string
	Args           map[string]string
}

// SubMatcher is the contract each matching algorithm (rolling trie, regex)
// implements. Process receives its own opaque prior state (nil at start of
// buffer or after history truncation) and the current atom, and returns its
// next opaque state plus any matches that fired as a result of this atom.
// Implementations must be pure functions of (prevState, input): the history
// deque, not the sub-matcher, owns time travel.
type SubMatcher interface {
	Process(prevState any, input Input) (nextState any, matches []DetectedMatch)
}
