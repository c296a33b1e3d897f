// Package styles provides the built-in style profiles that map HTML tag
// names to their default rendering elements. Unknown tags fall back to
// model.DefaultElement.
package styles

import "github.com/tsawler/scripta/model"

// Strict returns the strict profile: only margins and paddings that
// follow the HTML standard, with no cosmetic extras. The returned map is
// freshly allocated and safe to mutate.
func Strict() map[string]*model.Element {
	p := map[string]*model.Element{
		"body": {Tag: "body", Whitespace: model.WhiteSpaceNormal},

		"head":   hidden("head"),
		"link":   hidden("link"),
		"meta":   hidden("meta"),
		"script": hidden("script"),
		"title":  hidden("title"),
		"style":  hidden("style"),

		"p":      block("p", 1, 1),
		"figure": block("figure", 1, 1),
		"h1":     block("h1", 1, 1),
		"h2":     block("h2", 1, 1),
		"h3":     block("h3", 1, 1),
		"h4":     block("h4", 1, 1),
		"h5":     block("h5", 1, 1),
		"h6":     block("h6", 1, 1),

		"ul": {Tag: "ul", Display: model.DisplayBlock, PaddingInline: 2},
		"ol": {Tag: "ol", Display: model.DisplayBlock, PaddingInline: 2},
		"li": block("li", 0, 0),

		"address":    block("address", 0, 0),
		"article":    block("article", 0, 0),
		"aside":      block("aside", 0, 0),
		"div":        block("div", 0, 0),
		"footer":     block("footer", 0, 0),
		"header":     block("header", 0, 0),
		"hgroup":     block("hgroup", 0, 0),
		"main":       block("main", 0, 0),
		"nav":        block("nav", 0, 0),
		"section":    block("section", 0, 0),
		"figcaption": block("figcaption", 0, 0),

		"blockquote": {Tag: "blockquote", Display: model.DisplayBlock, MarginBefore: 1, MarginAfter: 1, PaddingInline: 2},

		"pre": {Tag: "pre", Display: model.DisplayBlock, MarginBefore: 1, MarginAfter: 1, Whitespace: model.WhiteSpacePre},

		"q": {Tag: "q", Prefix: `"`, Suffix: `"`},
	}
	return p
}

// Relaxed returns the default profile: the strict profile plus div
// indentation and padded spans, which reads better for real-world pages.
// The returned map is freshly allocated and safe to mutate.
func Relaxed() map[string]*model.Element {
	p := Strict()
	p["div"] = &model.Element{Tag: "div", Display: model.DisplayBlock, PaddingInline: 2}
	p["span"] = &model.Element{Tag: "span", Prefix: " ", Suffix: " ", LimitWhitespaceAffixes: true}
	return p
}

func block(tag string, marginBefore, marginAfter int) *model.Element {
	return &model.Element{
		Tag:          tag,
		Display:      model.DisplayBlock,
		MarginBefore: marginBefore,
		MarginAfter:  marginAfter,
	}
}

func hidden(tag string) *model.Element {
	return &model.Element{Tag: tag, Display: model.DisplayNone}
}
