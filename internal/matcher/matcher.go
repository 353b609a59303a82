package matcher

import (
	"github.com/espanso/espanso-core/internal/event"
	"github.com/espanso/espanso-core/internal/matcher/matchtype"
	"github.com/espanso/espanso-core/internal/matcher/regexm"
	"github.com/espanso/espanso-core/internal/matcher/rolling"
)

// Option configures a Matcher during construction.
type Option func(*Matcher)

// WithMaxHistory overrides DefaultMaxHistorySize.
func WithMaxHistory(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.history = newHistory(n)
		}
	}
}

// WithPlatform sets the modifier-skip platform rule (default PlatformLinux).
func WithPlatform(p Platform) Option {
	return func(m *Matcher) {
		m.platform = p
	}
}

// Matcher classifies incoming events, maintains the bounded snapshot
// history, and fans each of-interest atom out to every configured
// SubMatcher, per spec §4.3.
type Matcher struct {
	subs     []matchtype.SubMatcher
	history  *history
	platform Platform
	down     map[event.Key]bool
}

// New builds a Matcher over the given rolling trie and regex patterns,
// compiled from the match set at startup.
func New(matches []event.Match, opts ...Option) (*Matcher, error) {
	tree := rolling.NewTree()
	regexPatterns := make(map[int32]string)
	for _, mt := range matches {
		switch c := mt.Cause.(type) {
		case event.TriggerCause:
			for _, trig := range c.Triggers {
				tree.Insert(int32(mt.ID), trig, c.PropagateCase, c.LeftWord, c.RightWord)
			}
		case event.RegexCause:
			regexPatterns[int32(mt.ID)] = c.Pattern
		}
	}
	regexSub, err := regexm.New(regexPatterns, 0)
	if err != nil {
		return nil, err
	}

	m := &Matcher{
		subs:    []matchtype.SubMatcher{rolling.New(tree), regexSub},
		history: newHistory(DefaultMaxHistorySize),
		down:    make(map[event.Key]bool),
	}
	for _, opt := range opts {
		opt(m)
	}
	if len(m.subs) == 0 {
		return nil, ErrNoSubMatchers
	}
	return m, nil
}

// Handle processes one raw event and returns the matches detected this step,
// if any. Most events (modifier presses, key releases, events the matcher
// doesn't classify as of interest) return ok=false with no side effect on
// history beyond modifier-state bookkeeping.
func (m *Matcher) Handle(t event.Type) (matches []event.DetectedMatch, ok bool) {
	switch e := t.(type) {
	case event.Keyboard:
		return m.handleKeyboard(e)
	case event.Mouse:
		if e.Status == event.Pressed {
			m.history.Clear()
		}
		return nil, false
	case event.MatchInjected:
		return m.step(matchtype.SeparatorInput{})
	default:
		return nil, false
	}
}

func (m *Matcher) handleKeyboard(e event.Keyboard) ([]event.DetectedMatch, bool) {
	if e.Key.IsModifier() {
		if e.Status == event.Pressed {
			m.down[e.Key] = true
		} else {
			delete(m.down, e.Key)
		}
		return nil, false
	}
	if e.Status != event.Pressed {
		return nil, false
	}
	if isLinuxFunctionCode(m.platform, e.Code) {
		return nil, false
	}
	if e.Key == event.KeyBackspace {
		m.history.PopNewest()
		return nil, false
	}
	if modifierSkip(m.platform, m.down) {
		return nil, false
	}
	if e.Key.IsInvalidating() {
		m.history.Clear()
		return nil, false
	}

	in, known := inputFor(e)
	if !known {
		return nil, false
	}
	return m.step(in)
}

// inputFor converts a classified keystroke into the atom fed to sub-matchers.
func inputFor(e event.Keyboard) (matchtype.Input, bool) {
	if e.HasValue && len(e.Value) > 0 {
		r := []rune(e.Value)[0]
		if rolling.IsWordSeparator(r) {
			return matchtype.SeparatorInput{Literal: e.Value}, true
		}
		return matchtype.CharInput{Char: r}, true
	}
	switch e.Key {
	case event.KeyEnter:
		return matchtype.SeparatorInput{Literal: "\n"}, true
	case event.KeyTab:
		return matchtype.SeparatorInput{Literal: "\t"}, true
	default:
		return nil, false
	}
}

// step runs one atom through every sub-matcher against the latest snapshot,
// pushes the resulting snapshot, and unions the detected matches.
func (m *Matcher) step(in matchtype.Input) ([]event.DetectedMatch, bool) {
	prev := m.history.Latest()
	next := make(snapshot, len(m.subs))
	seen := make(map[int32]bool)
	var all []event.DetectedMatch

	for i, sub := range m.subs {
		var priorState any
		if prev != nil {
			priorState = prev[i]
		}
		ns, results := sub.Process(priorState, in)
		next[i] = ns
		for _, r := range results {
			if seen[r.ID] {
				continue
			}
			seen[r.ID] = true
			all = append(all, event.DetectedMatch{
				ID:             event.MatchID(r.ID),
				Trigger:        r.Trigger,
				LeftSeparator:  r.LeftSeparator,
				RightSeparator: r.RightSeparator,
				Args:           r.Args,
			})
		}
	}

	m.history.Push(next)
	if len(all) == 0 {
		return nil, false
	}
	return all, true
}
