// Package engine walks a parsed HTML tree depth-first and renders it onto
// a canvas, dispatching tag-specific behavior for lists, links, images,
// line breaks and tables.
package engine

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/scripta/attribute"
	"github.com/tsawler/scripta/model"
	"github.com/tsawler/scripta/styles"
)

// ulBullets are cycled through by nesting depth for unordered lists.
var ulBullets = [...]string{"* ", "+ ", "o ", "- "}

// Config controls a conversion.
type Config struct {
	// Profile maps tag names to default style elements. Defaults to
	// styles.Relaxed.
	Profile map[string]*model.Element

	// Attributes post-processes element attributes. Defaults to
	// attribute.NewHandler.
	Attributes *attribute.Handler

	// DisplayImages renders [alt-or-title] placeholders for images.
	DisplayImages bool

	// DeduplicateCaptions suppresses an image placeholder that exactly
	// repeats the previous one.
	DeduplicateCaptions bool

	// DisplayLinks renders anchors as [text](href).
	DisplayLinks bool

	// DisplayAnchors falls back to the anchor's name attribute when no
	// href target is shown.
	DisplayAnchors bool
}

func (c *Config) parseLinks() bool {
	return c.DisplayLinks || c.DisplayAnchors
}

// listContext tracks one open ul/ol level.
type listContext struct {
	ordered bool
	next    int    // next ordinal for ordered lists
	bullet  string // bullet glyph for unordered lists
}

// Engine translates one parsed HTML tree into text and annotations. An
// Engine is single-use and confined to one goroutine; create one per
// conversion.
type Engine struct {
	cfg    Config
	canvas *model.Canvas

	tags        []*model.Element // style stack
	tables      []*model.Table   // open-table stack
	lists       []listContext
	listLevel   int
	lastCaption string
	linkTarget  string
}

// New returns an engine for the given configuration, filling in defaults
// for the style profile and attribute handler.
func New(cfg Config) *Engine {
	if cfg.Profile == nil {
		cfg.Profile = styles.Relaxed()
	}
	if cfg.Attributes == nil {
		cfg.Attributes = attribute.NewHandler()
	}
	return &Engine{cfg: cfg}
}

// Convert renders the tree rooted at node and returns the text and the
// annotation spans over it.
func (e *Engine) Convert(node *html.Node) (string, []model.Annotation) {
	e.canvas = model.NewCanvas()

	base := e.styleFor("body")
	if base.Whitespace == model.WhiteSpaceDefault {
		base.Whitespace = model.WhiteSpaceNormal
	}
	base.Canvas = e.canvas
	e.tags = e.tags[:0]
	e.tags = append(e.tags, base)

	e.walk(node)
	return e.canvas.Text(), e.canvas.Annotations
}

// walk visits a node and its subtree in document order. Text nodes are
// written in the context of the innermost open element, which also covers
// tail text following a closed sibling. Comments, doctypes and other
// non-element nodes are skipped entirely.
func (e *Engine) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		e.top().Write(n.Data)

	case html.ElementNode:
		e.startTag(n)
		cur := e.top()
		cur.Canvas.OpenTag(cur)

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			e.walk(c)
		}

		e.endTag(n.Data)
		prev := e.pop()
		prev.Canvas.CloseTag(prev)

	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			e.walk(c)
		}
	}
}

// startTag resolves the element's effective style and runs its start
// handler, if any.
func (e *Engine) startTag(n *html.Node) {
	own := e.styleFor(n.Data)
	own.Tag = n.Data
	own = e.cfg.Attributes.Apply(n.Attr, own)
	cur := e.top().Refine(own)
	e.tags = append(e.tags, cur)

	switch n.Data {
	case "table":
		e.startTable()
	case "tr":
		e.startRow()
	case "td", "th":
		e.startCell()
	case "ul":
		e.startUnorderedList()
	case "ol":
		e.startOrderedList()
	case "li":
		e.startListItem()
	case "br":
		if cur.Display != model.DisplayNone {
			cur.Canvas.WriteNewline()
		}
	case "a":
		if e.cfg.parseLinks() {
			e.startAnchor(n.Attr)
		}
	case "img":
		if e.cfg.DisplayImages {
			e.startImage(n.Attr)
		}
	}
}

func (e *Engine) endTag(tag string) {
	switch tag {
	case "table":
		e.endTable()
	case "ul", "ol":
		e.endList()
	case "td", "th":
		e.endCell()
	case "a":
		if e.cfg.parseLinks() {
			e.endAnchor()
		}
	}
}

// styleFor returns a mutable copy of the profile entry for tag, or the
// universal default for unknown tags.
func (e *Engine) styleFor(tag string) *model.Element {
	if el, ok := e.cfg.Profile[tag]; ok {
		return el.Clone()
	}
	return model.DefaultElement()
}

func (e *Engine) top() *model.Element {
	return e.tags[len(e.tags)-1]
}

func (e *Engine) pop() *model.Element {
	el := e.tags[len(e.tags)-1]
	e.tags = e.tags[:len(e.tags)-1]
	return el
}

// Lists.

func (e *Engine) startUnorderedList() {
	e.listLevel++
	e.lists = append(e.lists, listContext{bullet: bulletFor(e.listLevel - 1)})
}

func (e *Engine) startOrderedList() {
	e.listLevel++
	e.lists = append(e.lists, listContext{ordered: true, next: 1})
}

func (e *Engine) endList() {
	if len(e.lists) == 0 {
		return
	}
	e.listLevel--
	e.lists = e.lists[:len(e.lists)-1]
}

// startListItem assigns the current bullet or ordinal to the list item.
// A stray li outside any list gets the default bullet.
func (e *Engine) startListItem() {
	cur := e.top()
	if len(e.lists) == 0 {
		cur.ListBullet = ulBullets[0]
		return
	}
	ctx := &e.lists[len(e.lists)-1]
	if ctx.ordered {
		cur.ListBullet = fmt.Sprintf("%d. ", ctx.next)
		ctx.next++
	} else {
		cur.ListBullet = ctx.bullet
	}
}

func bulletFor(level int) string {
	return ulBullets[level%len(ulBullets)]
}

// Links and images.

func (e *Engine) startAnchor(attrs []html.Attribute) {
	e.linkTarget = ""
	if e.cfg.DisplayLinks {
		e.linkTarget = attrValue(attrs, "href")
	}
	if e.cfg.DisplayAnchors && e.linkTarget == "" {
		e.linkTarget = attrValue(attrs, "name")
	}
	if e.linkTarget != "" {
		e.top().Write("[")
	}
}

func (e *Engine) endAnchor() {
	if e.linkTarget != "" {
		e.top().Write("](" + e.linkTarget + ")")
	}
}

func (e *Engine) startImage(attrs []html.Attribute) {
	text := attrValue(attrs, "alt")
	if text == "" {
		text = attrValue(attrs, "title")
	}
	if text == "" {
		return
	}
	if e.cfg.DeduplicateCaptions && text == e.lastCaption {
		return
	}
	e.top().Write("[" + text + "]")
	e.lastCaption = text
}

func attrValue(attrs []html.Attribute, key string) string {
	for _, a := range attrs {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Tables.

func (e *Engine) currentTable() *model.Table {
	if len(e.tables) == 0 {
		return nil
	}
	return e.tables[len(e.tables)-1]
}

// startTable redirects the table element to a fresh private canvas so
// that everything written until the closing tag is buffered outside the
// main document stream.
func (e *Engine) startTable() {
	e.top().Canvas = model.NewCanvas()
	e.tables = append(e.tables, model.NewTable())
}

// startRow opens a new row, implicitly closing a cell that was left open.
// Row operations outside a table are no-ops.
func (e *Engine) startRow() {
	t := e.currentTable()
	if t == nil {
		return
	}
	if t.CellOpen {
		e.endCell()
	}
	t.AddRow()
}

// startCell opens a new cell bound to a fresh private canvas, implicitly
// closing a cell that was left open. Cell operations outside a table are
// no-ops.
func (e *Engine) startCell() {
	t := e.currentTable()
	if t == nil {
		return
	}
	if t.CellOpen {
		e.endCell()
	}
	cur := e.top()
	cell := model.NewCell(cur.Align, cur.Valign)
	cur.Canvas = cell.Canvas
	t.AddCell(cell)
	t.CellOpen = true
}

func (e *Engine) endCell() {
	t := e.currentTable()
	if t == nil || !t.CellOpen {
		return
	}
	t.CellOpen = false
	cur := e.top()
	cur.Canvas.CloseTag(cur)
}

// endTable closes any still-open cell, renders the buffered grid and
// splices it into the parent canvas. Stray text the table element itself
// accumulated outside row markup is flushed as a preceding paragraph.
// Annotation spans recorded inside cells are translated to the parent's
// coordinate space; labels on the table element itself span the whole
// inserted block.
func (e *Engine) endTable() {
	t := e.currentTable()
	if t == nil {
		return
	}
	if t.CellOpen {
		e.endCell()
	}
	e.tables = e.tables[:len(e.tables)-1]

	tableEl := e.top()
	parent := e.tags[len(e.tags)-2]
	if tableEl.Display == model.DisplayNone {
		return
	}

	if stray := strings.TrimSpace(tableEl.Canvas.Text()); stray != "" {
		parent.Write(stray)
		parent.Canvas.WriteNewline()
	}

	startIdx := parent.Canvas.Index()
	parent.WriteVerbatim(t.Text())

	if len(tableEl.Labels) > 0 {
		endIdx := parent.Canvas.Index()
		if endIdx > startIdx {
			for _, label := range tableEl.Labels {
				parent.Canvas.Annotations = append(parent.Canvas.Annotations,
					model.Annotation{Start: startIdx, End: endIdx, Label: label})
			}
		}
	}
	parent.Canvas.Annotations = append(parent.Canvas.Annotations, t.Annotations(startIdx)...)
}
