package altcode

import "testing"

func TestResolve_BareSequenceUsesCP437(t *testing.T) {
	r, ok := Resolve([]int{1, 3, 0})
	if !ok || r != 'é' {
		t.Fatalf("expected 'é', got %q (ok=%v)", r, ok)
	}
}

func TestResolve_LeadingZeroUsesCP1252(t *testing.T) {
	r, ok := Resolve([]int{0, 2, 3, 3})
	if !ok || r != 'é' {
		t.Fatalf("expected 'e with acute', got %q (ok=%v)", r, ok)
	}
}

func TestResolve_LargeValueIsDirectCodePoint(t *testing.T) {
	r, ok := Resolve([]int{9, 7, 3, 1})
	if !ok || r != rune(9731) {
		t.Fatalf("expected snowman U+2603, got %q (ok=%v)", r, ok)
	}
}

func TestResolve_EmptySequenceFails(t *testing.T) {
	if _, ok := Resolve(nil); ok {
		t.Fatalf("expected empty sequence to fail")
	}
}
