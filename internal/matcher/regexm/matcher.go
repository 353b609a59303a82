package regexm

import (
	"regexp"

	"github.com/espanso/espanso-core/internal/matcher/matchtype"
)

// DefaultMaxWindow bounds how many trailing characters the sliding window
// retains, matching the original implementation's max_buffer_size.
const DefaultMaxWindow = 30

type compiled struct {
	id  int32
	re  *regexp.Regexp
	raw string
}

// Matcher implements matchtype.SubMatcher over a set of compiled regexes.
type Matcher struct {
	patterns  []compiled
	maxWindow int
}

// New compiles patterns (id -> regex source) into a Matcher. Each pattern is
// anchored at the end of the window: a match only fires when it reaches
// exactly the current input position, not some earlier point in the buffer.
func New(patterns map[int32]string, maxWindow int) (*Matcher, error) {
	if maxWindow <= 0 {
		maxWindow = DefaultMaxWindow
	}
	m := &Matcher{maxWindow: maxWindow}
	for id, pattern := range patterns {
		re, err := regexp.Compile(pattern + "$")
		if err != nil {
			return nil, err
		}
		m.patterns = append(m.patterns, compiled{id: id, re: re, raw: pattern})
	}
	return m, nil
}

// State is the regex matcher's opaque per-snapshot state: the trailing
// window of typed characters.
type State struct {
	window []rune
}

func (m *Matcher) Process(prevState any, input matchtype.Input) (any, []matchtype.DetectedMatch) {
	prev, _ := prevState.(State)

	var appended []rune
	switch in := input.(type) {
	case matchtype.CharInput:
		appended = []rune{in.Char}
	case matchtype.SeparatorInput:
		appended = []rune(in.Literal)
	}

	window := append(append([]rune{}, prev.window...), appended...)
	if len(window) > m.maxWindow {
		window = window[len(window)-m.maxWindow:]
	}

	var results []matchtype.DetectedMatch
	buf := string(window)
	for _, p := range m.patterns {
		idx := p.re.FindStringSubmatchIndex(buf)
		if idx == nil {
			continue
		}
		start, end := idx[0], idx[1]
		if end != len(buf) {
			continue
		}
		args := namedGroups(p.re, buf, idx)
		results = append(results, matchtype.DetectedMatch{
			ID:      p.id,
			Trigger: buf[start:end],
			Args:    args,
		})
	}

	return State{window: window}, results
}

func namedGroups(re *regexp.Regexp, buf string, idx []int) map[string]string {
	names := re.SubexpNames()
	args := make(map[string]string)
	for i, name := range names {
		if name == "" || i*2+1 >= len(idx) {
			continue
		}
		s, e := idx[i*2], idx[i*2+1]
		if s < 0 || e < 0 {
			continue
		}
		args[name] = buf[s:e]
	}
	return args
}
