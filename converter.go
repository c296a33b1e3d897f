package scripta

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/tsawler/scripta/annotation"
	"github.com/tsawler/scripta/attribute"
	"github.com/tsawler/scripta/engine"
	"github.com/tsawler/scripta/model"
	"github.com/tsawler/scripta/styles"
)

// Converter provides fluent configuration for one conversion. Option
// methods return a new Converter with the option applied, leaving the
// receiver unchanged; terminal operations (Text, Annotations, Convert)
// parse the input and run the conversion.
type Converter struct {
	filename  string
	reader    io.Reader
	source    string
	hasSource bool

	options convertOptions
}

// Result holds the outcome of a conversion: the rendered text and the
// annotation spans over it.
type Result struct {
	Text        string
	Annotations []model.Annotation
}

// clone returns a copy of the Converter, so option methods never mutate
// the receiver they were called on.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename:  c.filename,
		reader:    c.reader,
		source:    c.source,
		hasSource: c.hasSource,
		options:   c.options.clone(),
	}
}

// Profile selects a custom style profile mapping tag names to default
// elements. See the styles package for the built-in profiles.
func (c *Converter) Profile(profile map[string]*model.Element) *Converter {
	newConv := c.clone()
	newConv.options.profile = profile
	return newConv
}

// StrictProfile selects the strict built-in style profile instead of the
// default relaxed one.
func (c *Converter) StrictProfile() *Converter {
	newConv := c.clone()
	newConv.options.profile = styles.Strict()
	return newConv
}

// DisplayLinks renders anchors as [text](href).
func (c *Converter) DisplayLinks() *Converter {
	newConv := c.clone()
	newConv.options.displayLinks = true
	return newConv
}

// DisplayAnchors renders an anchor's name attribute as its target when no
// href target is displayed.
func (c *Converter) DisplayAnchors() *Converter {
	newConv := c.clone()
	newConv.options.displayAnchors = true
	return newConv
}

// DisplayImages renders images as [alt-or-title] placeholders.
func (c *Converter) DisplayImages() *Converter {
	newConv := c.clone()
	newConv.options.displayImages = true
	return newConv
}

// DeduplicateCaptions suppresses an image placeholder that exactly
// repeats the previous one.
func (c *Converter) DeduplicateCaptions() *Converter {
	newConv := c.clone()
	newConv.options.deduplicateCaptions = true
	return newConv
}

// Annotate adds an annotation mapping in the declarative selector format
// documented in the annotation package. Malformed selectors surface as an
// error from the terminal operation.
func (c *Converter) Annotate(mapping map[string][]string) *Converter {
	newConv := c.clone()
	newConv.options.annotations = mapping
	return newConv
}

// Text converts the input and returns the rendered text.
func (c *Converter) Text() (string, error) {
	res, err := c.Convert()
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// Annotations converts the input and returns the annotation spans.
func (c *Converter) Annotations() ([]model.Annotation, error) {
	res, err := c.Convert()
	if err != nil {
		return nil, err
	}
	return res.Annotations, nil
}

// Convert parses the input and returns the rendered text together with
// its annotations.
func (c *Converter) Convert() (*Result, error) {
	cfg, err := c.engineConfig()
	if err != nil {
		return nil, err
	}

	root, err := c.parse()
	if err != nil {
		return nil, err
	}

	text, anns := engine.New(cfg).Convert(root)
	return &Result{Text: text, Annotations: anns}, nil
}

// parse obtains the document tree from whichever source the Converter
// was created with.
func (c *Converter) parse() (*html.Node, error) {
	if c.hasSource {
		root, err := html.Parse(strings.NewReader(c.source))
		if err != nil {
			return nil, fmt.Errorf("parsing HTML: %w", err)
		}
		return root, nil
	}

	r := c.reader
	if c.filename != "" {
		f, err := os.Open(c.filename)
		if err != nil {
			return nil, fmt.Errorf("opening file: %w", err)
		}
		defer f.Close()
		r = f
	}
	if r == nil {
		return nil, fmt.Errorf("no input: converter has neither file, reader nor source")
	}

	decoded, err := charset.NewReader(r, "")
	if err != nil {
		return nil, fmt.Errorf("detecting character set: %w", err)
	}
	root, err := html.Parse(decoded)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return root, nil
}

// engineConfig assembles the engine configuration: the style profile,
// optionally enriched by the annotation mapping, and the attribute
// handler with any attribute-level annotation rules registered.
func (c *Converter) engineConfig() (engine.Config, error) {
	profile := c.options.profile
	if profile == nil {
		profile = styles.Relaxed()
	}

	handler := attribute.NewHandler()
	if c.options.annotations != nil {
		m, err := annotation.New(profile, c.options.annotations)
		if err != nil {
			return engine.Config{}, fmt.Errorf("loading annotation mapping: %w", err)
		}
		profile = m.Profile
		for _, rule := range m.Rules {
			handler.Register(rule.Attr, rule.Apply)
		}
	}

	return engine.Config{
		Profile:             profile,
		Attributes:          handler,
		DisplayImages:       c.options.displayImages,
		DeduplicateCaptions: c.options.deduplicateCaptions,
		DisplayLinks:        c.options.displayLinks,
		DisplayAnchors:      c.options.displayAnchors,
	}, nil
}
