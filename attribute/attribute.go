// Package attribute post-processes HTML attributes into style refinements:
// align/valign attributes, inline style declarations, and any
// attribute-driven annotation rules merged in at configuration time.
package attribute

import (
	"golang.org/x/net/html"

	"github.com/tsawler/scripta/model"
)

// Func refines an element based on one attribute value.
type Func func(value string, el *model.Element)

// Handler dispatches attribute values to the functions registered for the
// attribute name. Multiple functions may be registered per attribute;
// they run in registration order.
type Handler struct {
	handlers map[string][]Func
}

// NewHandler returns a handler with the built-in attribute support:
// style, align and valign.
func NewHandler() *Handler {
	h := &Handler{handlers: make(map[string][]Func)}
	h.Register("style", applyStyle)
	h.Register("align", applyAlign)
	h.Register("valign", applyVAlign)
	return h
}

// Register adds a function for the given attribute name.
func (h *Handler) Register(attr string, fn Func) {
	h.handlers[attr] = append(h.handlers[attr], fn)
}

// Apply runs all registered functions against the element, in document
// attribute order, and returns the element.
func (h *Handler) Apply(attrs []html.Attribute, el *model.Element) *model.Element {
	for _, a := range attrs {
		for _, fn := range h.handlers[a.Key] {
			fn(a.Val, el)
		}
	}
	return el
}

func applyAlign(value string, el *model.Element) {
	switch value {
	case "left":
		el.Align = model.AlignLeft
	case "center":
		el.Align = model.AlignCenter
	case "right":
		el.Align = model.AlignRight
	}
}

func applyVAlign(value string, el *model.Element) {
	switch value {
	case "top":
		el.Valign = model.VAlignTop
	case "middle":
		el.Valign = model.VAlignMiddle
	case "bottom":
		el.Valign = model.VAlignBottom
	}
}
