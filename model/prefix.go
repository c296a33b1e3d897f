package model

import (
	"strings"
	"unicode/utf8"
)

// Prefix manages the indentation and bullets rendered at the start of
// lines within nested blocks. Each open block that carries indentation
// registers an entry; the rendered prefix is the accumulated padding with
// the innermost pending bullet substituted into its tail end on the first
// line only.
type Prefix struct {
	padding  int
	paddings []int
	bullets  []string
	consumed bool
}

// NewPrefix returns an empty prefix stack.
func NewPrefix() *Prefix {
	return &Prefix{}
}

// Register pushes a block's indentation width and optional bullet.
func (p *Prefix) Register(paddingInline int, bullet string) {
	p.padding += paddingInline
	p.paddings = append(p.paddings, paddingInline)
	p.bullets = append(p.bullets, bullet)
}

// RemoveLast pops the most recently registered entry. Popping an empty
// prefix is a no-op, which tolerates unbalanced markup.
func (p *Prefix) RemoveLast() {
	n := len(p.paddings)
	if n == 0 {
		return
	}
	p.padding -= p.paddings[n-1]
	p.paddings = p.paddings[:n-1]
	p.bullets = p.bullets[:n-1]
}

// popNextBullet consumes the innermost pending bullet, if any.
func (p *Prefix) popNextBullet() string {
	for i := len(p.bullets) - 1; i >= 0; i-- {
		if p.bullets[i] != "" {
			b := p.bullets[i]
			p.bullets[i] = ""
			return b
		}
	}
	return ""
}

// First returns the prefix for the first line of a block: the current
// padding with the pending bullet substituted for its tail. The prefix is
// consumed on use; further calls within the same line return "".
//
// A bullet wider than the accumulated padding renders flush left.
func (p *Prefix) First() string {
	if p.consumed {
		return ""
	}
	p.consumed = true
	bullet := p.popNextBullet()
	pad := p.padding - utf8.RuneCountInString(bullet)
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + bullet
}

// Rest returns the prefix for continuation lines within a block.
func (p *Prefix) Rest() string {
	return strings.Repeat(" ", p.padding)
}

// CurrentPadding returns the width of the active indentation.
func (p *Prefix) CurrentPadding() int {
	return p.padding
}
