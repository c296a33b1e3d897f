// Package scripta converts HTML documents to plain text while preserving
// the page's visual structure: block and inline flow, collapsed vertical
// margins, nested list bullets and indentation, table grids, and link and
// image placeholders. Alongside the text it can produce annotations:
// labeled rune-offset spans driven by a configurable tag/attribute
// mapping.
//
// Basic usage:
//
//	text, err := scripta.FromString("<b>Hello</b> world").Text()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	result, err := scripta.Open("page.html").
//	    DisplayLinks().
//	    DisplayImages().
//	    Annotate(map[string][]string{"h1": {"heading"}}).
//	    Convert()
//
// For advanced use cases, the lower-level engine and model packages are
// also available.
package scripta

import (
	"io"
)

// Open opens an HTML file for conversion. The file's character set is
// detected from its content and converted to UTF-8 before parsing.
//
// Example:
//
//	text, err := scripta.Open("page.html").Text()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates a Converter reading HTML from r. Character set
// detection is applied as for Open.
func FromReader(r io.Reader) *Converter {
	return &Converter{
		reader:  r,
		options: defaultOptions(),
	}
}

// FromString creates a Converter for an HTML string. The string is
// assumed to be UTF-8.
func FromString(html string) *Converter {
	return &Converter{
		source:    html,
		hasSource: true,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	text := scripta.Must(scripta.FromString(html).Text())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
