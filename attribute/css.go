package attribute

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/tsawler/scripta/model"
)

// applyStyle parses an inline style attribute as a CSS declaration list
// and applies the subset of properties relevant for text rendering.
// Unknown properties and malformed declarations are ignored; an inline
// style must never abort a conversion.
func applyStyle(value string, el *model.Element) {
	p := css.NewParser(parse.NewInput(strings.NewReader(value)), true)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			var sb strings.Builder
			for _, tok := range p.Values() {
				sb.Write(tok.Data)
			}
			applyDeclaration(string(data), strings.TrimSpace(sb.String()), el)
		}
	}
}

func applyDeclaration(property, value string, el *model.Element) {
	switch strings.ToLower(property) {
	case "display":
		switch strings.ToLower(value) {
		case "none":
			el.Display = model.DisplayNone
		case "block":
			el.Display = model.DisplayBlock
		case "inline":
			el.Display = model.DisplayInline
		}
	case "white-space":
		switch strings.ToLower(value) {
		case "normal":
			el.Whitespace = model.WhiteSpaceNormal
		case "pre", "pre-wrap", "pre-line":
			el.Whitespace = model.WhiteSpacePre
		case "nowrap":
			el.Whitespace = model.WhiteSpaceNoWrap
		}
	case "margin-top":
		el.MarginBefore = emLength(value)
	case "margin-bottom":
		el.MarginAfter = emLength(value)
	case "padding-left":
		el.PaddingInline = emLength(value)
	case "text-align":
		applyAlign(strings.ToLower(value), el)
	case "vertical-align":
		applyVAlign(strings.ToLower(value), el)
	}
}

var lengthRe = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)\s*([a-z%]*)`)

// emLength converts a CSS length to blank-line or indentation units.
// Lengths are interpreted in em; pixel values assume 8px per character.
// Margins and paddings are non-negative, so negative lengths clamp to 0.
func emLength(value string) int {
	m := lengthRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(value)))
	if m == nil {
		return 0
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	if m[2] == "px" {
		f /= 8
	}
	n := int(math.Round(f))
	if n < 0 {
		return 0
	}
	return n
}
