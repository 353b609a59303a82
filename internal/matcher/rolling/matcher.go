package rolling

import "github.com/espanso/espanso-core/internal/matcher/matchtype"

// cursor is one in-flight trigger attempt: node is the trie position reached
// so far, text is the literal characters matched (for case propagation and
// for reporting DetectedMatch.Trigger), and leftSep/hasLeftSep record the
// separator occurrence that preceded this cursor's start, if its start was
// gated on a boundary.
type cursor struct {
	node       *node
	text       []rune
	leftSep    string
	hasLeftSep bool
}

// pending is a match whose trigger text is complete but which still needs a
// trailing separator atom to satisfy RightWord before it may fire.
type pending struct {
	id         int32
	trigger    string
	leftSep    string
	hasLeftSep bool
}

// State is the rolling matcher's opaque per-snapshot state.
type State struct {
	cursors    []cursor
	pending    []pending
	atBoundary bool // true if the *next* atom starts at a word boundary
	lastSepLit string
	hasLastSep bool
}

// Matcher implements matchtype.SubMatcher over a compiled Tree.
type Matcher struct {
	tree *Tree
}

func New(tree *Tree) *Matcher {
	return &Matcher{tree: tree}
}

func (m *Matcher) initialState() State {
	// Start-of-buffer counts as an implicit left boundary (spec §4.2): a
	// trigger requiring LeftWord can fire as the very first thing typed.
	return State{atBoundary: true}
}

func (m *Matcher) Process(prevState any, input matchtype.Input) (any, []matchtype.DetectedMatch) {
	prev, ok := prevState.(State)
	if !ok {
		prev = m.initialState()
	}

	var results []matchtype.DetectedMatch

	sep, isSep := input.(matchtype.SeparatorInput)
	if isSep {
		for _, p := range prev.pending {
			results = append(results, matchtype.DetectedMatch{
				ID:             p.id,
				Trigger:        p.trigger,
				LeftSeparator:  p.leftSep,
				RightSeparator: sep.Literal,
			})
		}
	}

	var nextCursors []cursor
	var nextPending []pending

	advance := func(c cursor) {
		children := m.matchingChildren(c.node, input)
		for _, ch := range children {
			nc := cursor{
				node:       ch.n,
				text:       append(append([]rune{}, c.text...), ch.r),
				leftSep:    c.leftSep,
				hasLeftSep: c.hasLeftSep,
			}
			for _, t := range ch.n.terminals {
				if t.needRightBoundary {
					nextPending = append(nextPending, pending{
						id:         t.id,
						trigger:    string(nc.text),
						leftSep:    nc.leftSep,
						hasLeftSep: nc.hasLeftSep,
					})
				} else {
					results = append(results, matchtype.DetectedMatch{
						ID:            t.id,
						Trigger:       string(nc.text),
						LeftSeparator: nc.leftSep,
					})
				}
			}
			nextCursors = append(nextCursors, nc)
		}
	}

	for _, c := range prev.cursors {
		advance(c)
	}
	// Every position is a valid start for a LeftWord=false trigger.
	advance(cursor{node: m.tree.Root})
	// Boundary-gated triggers only start right after a word boundary.
	if prev.atBoundary {
		sepLit, has := prev.lastSepLit, prev.hasLastSep
		advance(cursor{node: m.tree.BoundaryRoot, leftSep: sepLit, hasLeftSep: has})
	}

	next := State{
		cursors:    nextCursors,
		pending:    nextPending,
		atBoundary: isSep,
	}
	if isSep {
		next.lastSepLit, next.hasLastSep = sep.Literal, true
	}

	return next, results
}

type matchedChild struct {
	n *node
	r rune
}

// matchingChildren returns every child edge of n that the current atom
// satisfies: a char input can match both an exact-case edge and a folded
// edge at once; a separator input never advances a character cursor (word
// separators are boundary gates, not trigger characters).
func (m *Matcher) matchingChildren(n *node, input matchtype.Input) []matchedChild {
	ch, ok := input.(matchtype.CharInput)
	if !ok {
		return nil
	}
	var out []matchedChild
	if c := n.child(edgeKey{rune: ch.Char, fold: false}); c != nil {
		out = append(out, matchedChild{n: c, r: ch.Char})
	}
	foldKey := edgeKey{rune: lower(ch.Char), fold: true}
	if c := n.child(foldKey); c != nil {
		out = append(out, matchedChild{n: c, r: ch.Char})
	}
	return out
}
