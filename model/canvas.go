package model

import (
	"html"
	"strings"
	"unicode/utf8"
)

// initialMargin is large enough that no required margin can exceed it, so
// no blank lines are ever emitted before the first content.
const initialMargin = 1000

// Canvas assembles the text output. It maintains the block currently
// being written, the list of committed blocks, the running margin used
// for collapsing the vertical margins of adjacent block elements, and the
// annotation spans recorded while tags open and close.
type Canvas struct {
	// Annotations holds the completed annotation spans, in tag-close
	// order.
	Annotations []Annotation

	margin int
	block  *Block
	blocks []string
	open   map[*Element]int
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{
		margin: initialMargin,
		block:  NewBlock(0, NewPrefix()),
		open:   make(map[*Element]int),
	}
}

// OpenTag registers that the given element was opened. Elements carrying
// annotation labels remember the current committed index so the span can
// be closed later; block elements open a block.
func (c *Canvas) OpenTag(e *Element) {
	if len(e.Labels) > 0 {
		c.open[e] = c.block.Idx
	}
	if e.Display == DisplayBlock {
		c.OpenBlock(e)
	}
}

// OpenBlock flushes pending inline content, registers the element's
// indentation and bullet, and writes the block's top margin. The number
// of blank lines emitted is the difference between the required margin
// and the margin already present, never the sum of adjacent margins.
func (c *Canvas) OpenBlock(e *Element) {
	c.flushInline()
	c.block.prefix.Register(e.PaddingInline, e.ListBullet)

	required := e.PreviousMarginAfter
	if e.MarginBefore > required {
		required = e.MarginBefore
	}
	if required > c.margin {
		newlines := required - c.margin
		c.block.Idx += newlines
		c.blocks = append(c.blocks, strings.Repeat("\n", newlines-1))
		c.margin = required
	}
}

// Write merges text into the current block. A WhiteSpaceDefault override
// falls back to the element's whitespace policy.
func (c *Canvas) Write(e *Element, text string, ws WhiteSpace) {
	if ws == WhiteSpaceDefault {
		ws = e.Whitespace
	}
	c.block.Merge(text, ws)
}

// CloseTag registers that the given element was closed. Block elements
// flush pending content, pop their prefix entry and write their bottom
// margin. If the element opened an annotation span and content was
// written since, one Annotation per label is emitted; empty spans are
// discarded.
func (c *Canvas) CloseTag(e *Element) {
	if e.Display == DisplayBlock {
		c.flushInline()
		c.block.prefix.RemoveLast()
		c.CloseBlock(e)
	}

	start, ok := c.open[e]
	if !ok {
		return
	}
	delete(c.open, e)
	if start == c.block.Idx {
		return
	}
	for _, label := range e.Labels {
		c.Annotations = append(c.Annotations, Annotation{Start: start, End: c.block.Idx, Label: label})
	}
}

// CloseBlock writes the element's bottom margin, subject to the same
// collapsing rule as OpenBlock.
func (c *Canvas) CloseBlock(e *Element) {
	if e.MarginAfter > c.margin {
		newlines := e.MarginAfter - c.margin
		c.block.Idx += newlines
		c.blocks = append(c.blocks, strings.Repeat("\n", newlines-1))
		c.margin = e.MarginAfter
	}
}

// WriteNewline forces a line break. If no inline content was pending, an
// explicitly empty block is committed so that the blank line renders.
func (c *Canvas) WriteNewline() {
	if !c.flushInline() {
		c.blocks = append(c.blocks, "")
		c.block = c.block.Next()
	}
}

// Text flushes pending content and returns the rendered document with
// HTML character references decoded. Newlines that the bottom margin of
// the last block would leave at the end of the document are dropped, and
// annotation spans reaching into them are clamped to the trimmed length.
func (c *Canvas) Text() string {
	c.flushInline()
	text := strings.TrimRight(strings.Join(c.blocks, "\n"), "\n")
	c.clampAnnotations(utf8.RuneCountInString(text))
	return html.UnescapeString(text)
}

// clampAnnotations restricts recorded spans to the first limit runes.
// Spans that fall entirely beyond the limit are discarded.
func (c *Canvas) clampAnnotations(limit int) {
	kept := c.Annotations[:0]
	for _, a := range c.Annotations {
		if a.Start >= limit {
			continue
		}
		if a.End > limit {
			a.End = limit
		}
		kept = append(kept, a)
	}
	c.Annotations = kept
}

// Index returns the rune index of the next character to be committed.
func (c *Canvas) Index() int {
	return c.block.Idx
}

// LeftMargin returns the width of the current line's indentation.
func (c *Canvas) LeftMargin() int {
	return c.block.prefix.CurrentPadding()
}

// flushInline commits the current block if it holds content and resets
// the running margin. It reports whether anything was committed.
func (c *Canvas) flushInline() bool {
	if c.block.IsEmpty() {
		return false
	}
	c.blocks = append(c.blocks, c.block.Content())
	c.block = c.block.Next()
	c.margin = 0
	return true
}
