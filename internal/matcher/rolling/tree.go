package rolling

import "unicode"

// edgeKey identifies one outgoing edge of a node. A node may have both
// {rune: 'h', fold: false} and {rune: 'h', fold: true} as distinct children
// at once, letting case-sensitive and case-insensitive triggers share a
// prefix without interfering with each other.
type edgeKey struct {
	rune rune
	fold bool
}

// terminal marks that reaching this node completes trigger text for a
// configured match.
type terminal struct {
	id                int32
	needRightBoundary bool
}

type node struct {
	children  map[edgeKey]*node
	terminals []terminal
}

func newNode() *node {
	return &node{children: make(map[edgeKey]*node)}
}

func (n *node) child(k edgeKey) *node {
	return n.children[k]
}

func (n *node) ensureChild(k edgeKey) *node {
	if c, ok := n.children[k]; ok {
		return c
	}
	c := newNode()
	n.children[k] = c
	return c
}

// Tree is a compiled set of TriggerCause triggers. Two logical entry points
// share the same underlying nodes transitively: Root (reachable from any
// input position) and BoundaryRoot (reachable only when the preceding atom
// was a word boundary).
type Tree struct {
	Root         *node
	BoundaryRoot *node
}

func NewTree() *Tree {
	return &Tree{Root: newNode(), BoundaryRoot: newNode()}
}

// Insert compiles one trigger string into the tree under the given match id.
// caseInsensitive inserts folded edges (matches regardless of typed case);
// leftWord/rightWord gate which root the trigger hangs from and whether
// completion requires a following separator atom.
func (t *Tree) Insert(id int32, trigger string, caseInsensitive, leftWord, rightWord bool) {
	start := t.Root
	if leftWord {
		start = t.BoundaryRoot
	}
	cur := start
	runes := []rune(trigger)
	for _, r := range runes {
		key := edgeKey{rune: r, fold: caseInsensitive}
		if caseInsensitive {
			key.rune = unicode.ToLower(r)
		}
		cur = cur.ensureChild(key)
	}
	cur.terminals = append(cur.terminals, terminal{id: id, needRightBoundary: rightWord})
}

// IsWordSeparator reports whether r is treated as a word boundary character.
// This mirrors the original implementation's default separator set: ASCII
// whitespace and common punctuation, plus any other Unicode space/punct rune.
func IsWordSeparator(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}
