package model

import "strings"

// Element describes how a single HTML element is rendered: its display
// strategy, vertical margins, indentation, whitespace handling, affixes
// inserted around its text, table cell alignment, and any annotation
// labels attached to it.
//
// Elements are refined against their parent's effective style before use;
// see Refine.
type Element struct {
	// Canvas is the output target for this element's content. Table
	// handling replaces it with a private canvas so that cell content is
	// buffered independently of the surrounding document.
	Canvas *Canvas

	Tag    string
	Prefix string
	Suffix string

	Display       Display
	MarginBefore  int
	MarginAfter   int
	PaddingInline int

	// ListBullet is the bullet or ordinal string rendered at the start of
	// the element's first line. Assigned per list item during traversal.
	ListBullet string

	Whitespace             WhiteSpace
	LimitWhitespaceAffixes bool

	Align  HorizontalAlignment
	Valign VerticalAlignment

	// PreviousMarginAfter carries the closing margin of the immediately
	// preceding block so that adjacent margins collapse to their maximum.
	PreviousMarginAfter int

	// Labels are the annotation labels applied to text written within
	// this element.
	Labels []string
}

// DefaultElement returns the universal default style applied to unknown
// tags: inline display, no margins, no padding, inherited whitespace.
func DefaultElement() *Element {
	return &Element{Tag: "default"}
}

// Clone returns a copy of the element that can be mutated independently.
func (e *Element) Clone() *Element {
	c := *e
	if len(e.Labels) > 0 {
		c.Labels = append([]string(nil), e.Labels...)
	}
	return &c
}

// Refine computes the effective style of the child element own within the
// context of the parent element e:
//
//   - display:none is inherited and terminates refinement, so an invisible
//     element can never resurface descendant content;
//   - an unset whitespace policy inherits the parent's;
//   - whitespace-only affixes are dropped inside preformatted regions when
//     the element limits whitespace affixes;
//   - the parent's closing margin is carried over for margin collapsing
//     when both elements are blocks.
//
// The child adopts the parent's canvas.
func (e *Element) Refine(own *Element) *Element {
	own.Canvas = e.Canvas

	if e.Display == DisplayNone {
		own.Display = DisplayNone
		return own
	}

	if own.Whitespace == WhiteSpaceDefault {
		own.Whitespace = e.Whitespace
	}

	if own.LimitWhitespaceAffixes && e.Whitespace == WhiteSpacePre {
		if isOnlySpace(own.Prefix) {
			own.Prefix = ""
		}
		if isOnlySpace(own.Suffix) {
			own.Suffix = ""
		}
	}

	if own.Display == DisplayBlock && e.Display == DisplayBlock {
		own.PreviousMarginAfter = e.MarginAfter
	}
	return own
}

// Write writes the element's text content, wrapped in its affixes.
// Invisible elements and empty text are ignored.
func (e *Element) Write(text string) {
	if text == "" || e.Display == DisplayNone {
		return
	}
	e.Canvas.Write(e, e.Prefix+text+e.Suffix, WhiteSpaceDefault)
}

// WriteTail writes text that follows the element's closing tag but belongs
// to this element's rendering context.
func (e *Element) WriteTail(text string) {
	e.Write(text)
}

// WriteVerbatim writes preformatted text to the canvas, opening and
// closing a block around it if the element is a block.
func (e *Element) WriteVerbatim(text string) {
	if text == "" {
		return
	}
	if e.Display == DisplayBlock {
		e.Canvas.OpenBlock(e)
	}
	e.Canvas.Write(e, text, WhiteSpacePre)
	if e.Display == DisplayBlock {
		e.Canvas.CloseBlock(e)
	}
}

func isOnlySpace(s string) bool {
	return s != "" && strings.TrimSpace(s) == ""
}
