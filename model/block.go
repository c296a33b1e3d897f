package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Block is the run of text that will become the next line (or lines, for
// preformatted content) of the output. Idx counts the runes committed to
// the canvas so far and anchors annotation offsets.
type Block struct {
	Idx int

	prefix      *Prefix
	content     string
	collapsible bool
}

// NewBlock returns an empty block starting at the given rune index.
func NewBlock(idx int, prefix *Prefix) *Block {
	return &Block{Idx: idx, prefix: prefix, collapsible: true}
}

// Merge adds text to the block under the given whitespace policy.
func (b *Block) Merge(text string, ws WhiteSpace) {
	if ws == WhiteSpacePre {
		b.mergePre(text)
	} else {
		b.mergeNormal(text)
	}
}

// mergeNormal collapses runs of whitespace into single spaces. A
// whitespace at the end of the merged content and one at the start of the
// incoming text collapse into a single space.
func (b *Block) mergeNormal(text string) {
	var sb strings.Builder
	for _, r := range text {
		if !unicode.IsSpace(r) {
			sb.WriteRune(r)
			b.collapsible = false
		} else if !b.collapsible {
			sb.WriteByte(' ')
			b.collapsible = true
		}
	}
	if sb.Len() == 0 {
		return
	}
	merged := sb.String()
	if b.content == "" {
		merged = b.prefix.First() + merged
	}
	b.Idx += utf8.RuneCountInString(merged)
	b.content += merged
}

// mergePre preserves the text verbatim, indenting continuation lines with
// the current padding.
func (b *Block) mergePre(text string) {
	text = b.prefix.First() + strings.ReplaceAll(text, "\n", "\n"+b.prefix.Rest())
	b.Idx += utf8.RuneCountInString(text)
	b.content += text
	b.collapsible = false
}

// Content returns the block's text with a single trailing collapsible
// space removed. Removing the space also rolls back the committed index.
func (b *Block) Content() string {
	if !b.collapsible {
		return b.content
	}
	if strings.HasSuffix(b.content, " ") {
		b.content = b.content[:len(b.content)-1]
		b.Idx--
	}
	return b.content
}

// IsEmpty reports whether the block holds no renderable content.
func (b *Block) IsEmpty() bool {
	return len(b.Content()) == 0
}

// Next returns the block that follows b on the canvas. The rune index
// advances by one to account for the newline that joins the two blocks,
// and the shared prefix becomes available again for the new line.
func (b *Block) Next() *Block {
	b.prefix.consumed = false
	return NewBlock(b.Idx+1, b.prefix)
}
