package model

import "testing"

func TestRefine_InheritsDisplayNone(t *testing.T) {
	parent := &Element{Tag: "div", Display: DisplayNone}
	child := &Element{Tag: "p", Display: DisplayBlock, MarginBefore: 1}

	got := parent.Refine(child)

	if got.Display != DisplayNone {
		t.Errorf("Display = %v, want none", got.Display)
	}
}

func TestRefine_DisplayNoneIsSticky(t *testing.T) {
	parent := &Element{Tag: "div", Display: DisplayNone}
	child := parent.Refine(&Element{Tag: "p", Display: DisplayBlock})
	grandchild := child.Refine(&Element{Tag: "b", Display: DisplayInline})

	if grandchild.Display != DisplayNone {
		t.Errorf("grandchild Display = %v, want none", grandchild.Display)
	}
}

func TestRefine_InheritsWhitespace(t *testing.T) {
	parent := &Element{Tag: "pre", Display: DisplayBlock, Whitespace: WhiteSpacePre}
	child := parent.Refine(&Element{Tag: "span"})

	if child.Whitespace != WhiteSpacePre {
		t.Errorf("Whitespace = %v, want pre", child.Whitespace)
	}
}

func TestRefine_OwnWhitespaceWins(t *testing.T) {
	parent := &Element{Tag: "pre", Display: DisplayBlock, Whitespace: WhiteSpacePre}
	child := parent.Refine(&Element{Tag: "code", Whitespace: WhiteSpaceNormal})

	if child.Whitespace != WhiteSpaceNormal {
		t.Errorf("Whitespace = %v, want normal", child.Whitespace)
	}
}

func TestRefine_SuppressesWhitespaceAffixesInPre(t *testing.T) {
	parent := &Element{Tag: "pre", Display: DisplayBlock, Whitespace: WhiteSpacePre}
	child := parent.Refine(&Element{Tag: "span", Prefix: " ", Suffix: "\t", LimitWhitespaceAffixes: true})

	if child.Prefix != "" || child.Suffix != "" {
		t.Errorf("affixes = %q, %q, want both empty", child.Prefix, child.Suffix)
	}
}

func TestRefine_KeepsNonWhitespaceAffixesInPre(t *testing.T) {
	parent := &Element{Tag: "pre", Display: DisplayBlock, Whitespace: WhiteSpacePre}
	child := parent.Refine(&Element{Tag: "q", Prefix: `"`, Suffix: `"`, LimitWhitespaceAffixes: true})

	if child.Prefix != `"` || child.Suffix != `"` {
		t.Errorf("affixes = %q, %q, want quotes kept", child.Prefix, child.Suffix)
	}
}

func TestRefine_CarriesPreviousMarginAfter(t *testing.T) {
	parent := &Element{Tag: "div", Display: DisplayBlock, MarginAfter: 2}
	child := parent.Refine(&Element{Tag: "p", Display: DisplayBlock})

	if child.PreviousMarginAfter != 2 {
		t.Errorf("PreviousMarginAfter = %d, want 2", child.PreviousMarginAfter)
	}
}

func TestRefine_NoMarginCarryForInlineParent(t *testing.T) {
	parent := &Element{Tag: "span", MarginAfter: 2}
	child := parent.Refine(&Element{Tag: "p", Display: DisplayBlock})

	if child.PreviousMarginAfter != 0 {
		t.Errorf("PreviousMarginAfter = %d, want 0", child.PreviousMarginAfter)
	}
}

func TestElementWrite_AppliesAffixes(t *testing.T) {
	c := NewCanvas()
	e := &Element{Tag: "q", Prefix: `"`, Suffix: `"`, Whitespace: WhiteSpaceNormal, Canvas: c}

	e.Write("quote")

	if got, want := c.Text(), `"quote"`; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestElementWrite_SuppressedWhenNone(t *testing.T) {
	c := NewCanvas()
	e := &Element{Tag: "script", Display: DisplayNone, Canvas: c}

	e.Write("var x = 1;")

	if got := c.Text(); got != "" {
		t.Errorf("Text() = %q, want empty for display:none", got)
	}
}

func TestClone_IndependentLabels(t *testing.T) {
	orig := &Element{Tag: "b", Labels: []string{"x"}}
	cl := orig.Clone()
	cl.Labels = append(cl.Labels, "y")

	if len(orig.Labels) != 1 {
		t.Errorf("original labels grew to %d, want 1", len(orig.Labels))
	}
}
