package model

import "testing"

func TestBlockMergeNormal_CollapsesWhitespace(t *testing.T) {
	b := NewBlock(0, NewPrefix())

	b.Merge("Hello \n\t world", WhiteSpaceNormal)

	if got, want := b.Content(), "Hello world"; got != want {
		t.Errorf("Content() = %q, want %q", got, want)
	}
	if b.Idx != 11 {
		t.Errorf("Idx = %d, want 11", b.Idx)
	}
}

func TestBlockMergeNormal_CollapsesAcrossMerges(t *testing.T) {
	b := NewBlock(0, NewPrefix())

	b.Merge("Hello ", WhiteSpaceNormal)
	b.Merge(" world", WhiteSpaceNormal)

	if got, want := b.Content(), "Hello world"; got != want {
		t.Errorf("Content() = %q, want %q", got, want)
	}
}

func TestBlockMergeNormal_WhitespaceOnlyIsDropped(t *testing.T) {
	b := NewBlock(0, NewPrefix())

	b.Merge("  \n\t ", WhiteSpaceNormal)

	if !b.IsEmpty() {
		t.Errorf("IsEmpty() = false after whitespace-only merge, want true")
	}
	if b.Idx != 0 {
		t.Errorf("Idx = %d, want 0", b.Idx)
	}
}

func TestBlockMergePre_PreservesWhitespace(t *testing.T) {
	b := NewBlock(0, NewPrefix())

	b.Merge("a\n  b\tc", WhiteSpacePre)

	if got, want := b.Content(), "a\n  b\tc"; got != want {
		t.Errorf("Content() = %q, want %q", got, want)
	}
}

func TestBlockMergePre_IndentsContinuationLines(t *testing.T) {
	p := NewPrefix()
	p.Register(2, "")
	b := NewBlock(0, p)

	b.Merge("a\nb", WhiteSpacePre)

	if got, want := b.Content(), "  a\n  b"; got != want {
		t.Errorf("Content() = %q, want %q", got, want)
	}
}

func TestBlockContent_TrimsTrailingCollapsibleSpace(t *testing.T) {
	b := NewBlock(0, NewPrefix())

	b.Merge("word ", WhiteSpaceNormal)

	if got, want := b.Content(), "word"; got != want {
		t.Errorf("Content() = %q, want %q", got, want)
	}
	if b.Idx != 4 {
		t.Errorf("Idx = %d after trimming, want 4", b.Idx)
	}
}

func TestBlockNext_AdvancesIndexForLineBreak(t *testing.T) {
	b := NewBlock(0, NewPrefix())
	b.Merge("ab", WhiteSpaceNormal)

	next := b.Next()

	if next.Idx != 3 {
		t.Errorf("Next().Idx = %d, want 3 (content plus newline)", next.Idx)
	}
	if !next.IsEmpty() {
		t.Error("Next() should start empty")
	}
}

func TestBlockIdx_CountsRunes(t *testing.T) {
	b := NewBlock(0, NewPrefix())

	b.Merge("äöü", WhiteSpaceNormal)

	if b.Idx != 3 {
		t.Errorf("Idx = %d for three runes, want 3", b.Idx)
	}
}
