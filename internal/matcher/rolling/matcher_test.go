package rolling

import (
	"testing"

	"github.com/espanso/espanso-core/internal/matcher/matchtype"
)

func typeString(t *testing.T, m *Matcher, state any, s string) (any, []matchtype.DetectedMatch) {
	t.Helper()
	var all []matchtype.DetectedMatch
	for _, r := range s {
		var got []matchtype.DetectedMatch
		state, got = m.Process(state, matchtype.CharInput{Char: r})
		all = append(all, got...)
	}
	return state, all
}

func TestRolling_SimpleTrigger(t *testing.T) {
	tree := NewTree()
	tree.Insert(1, "hi", false, false, false)
	m := New(tree)

	_, matches := typeString(t, m, nil, ":hi")
	if len(matches) != 1 || matches[0].ID != 1 || matches[0].Trigger != "hi" {
		t.Fatalf("expected one match for 'hi', got %#v", matches)
	}
}

func TestRolling_LeftWordRequiresBoundary(t *testing.T) {
	tree := NewTree()
	tree.Insert(1, "hi", false, true, false)
	m := New(tree)

	_, matches := typeString(t, m, nil, "ahi")
	if len(matches) != 0 {
		t.Fatalf("expected no match without left boundary, got %#v", matches)
	}

	state, _ := typeString(t, m, nil, "a")
	state, _ = m.Process(state, matchtype.SeparatorInput{Literal: " "})
	_, matches = typeString(t, m, state, "hi")
	if len(matches) != 1 {
		t.Fatalf("expected match right after boundary, got %#v", matches)
	}
}

func TestRolling_RightWordWaitsForSeparator(t *testing.T) {
	tree := NewTree()
	tree.Insert(1, "hi", false, false, true)
	m := New(tree)

	state, matches := typeString(t, m, nil, "hi")
	if len(matches) != 0 {
		t.Fatalf("expected no match before trailing separator, got %#v", matches)
	}
	_, matches = m.Process(state, matchtype.SeparatorInput{Literal: " "})
	if len(matches) != 1 || matches[0].RightSeparator != " " {
		t.Fatalf("expected match on trailing separator, got %#v", matches)
	}
}

func TestRolling_CaseInsensitiveFold(t *testing.T) {
	tree := NewTree()
	tree.Insert(1, "hi", true, false, false)
	m := New(tree)

	_, matches := typeString(t, m, nil, "HI")
	if len(matches) != 1 || matches[0].Trigger != "HI" {
		t.Fatalf("expected fold match preserving literal case, got %#v", matches)
	}
}

func TestRolling_SharedPrefixBothCases(t *testing.T) {
	tree := NewTree()
	tree.Insert(1, "Hi", false, false, false)
	tree.Insert(2, "hi", true, false, false)
	m := New(tree)

	_, matches := typeString(t, m, nil, "Hi")
	if len(matches) != 2 {
		t.Fatalf("expected both the exact and folded trigger to fire, got %#v", matches)
	}
}
