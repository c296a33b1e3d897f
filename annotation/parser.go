// Package annotation loads declarative annotation mappings. A mapping
// associates selectors with the labels applied to matching elements:
//
//	{
//	    "h1": ["heading"],
//	    "b": ["emphasis"],
//	    "div#class=toc": ["table-of-contents"],
//	    "#class=short-description": ["description"]
//	}
//
// Tags are referenced by name; attributes by #attr with an optional
// =value selector. A rule without a tag applies to every element carrying
// the attribute. Tag-only rules merge their labels into the style
// profile; attribute rules are matched against attribute values during
// traversal, where a value selector matches any whitespace-separated
// token of the attribute value.
package annotation

import (
	"fmt"
	"strings"

	"github.com/tsawler/scripta/model"
)

// Rule applies labels to elements whose tag and attribute value match.
type Rule struct {
	Labels []string

	// Attr is the attribute the rule listens on.
	Attr string

	// MatchTag restricts the rule to one tag name; empty matches any tag.
	MatchTag string

	// MatchValue must appear among the whitespace-separated tokens of the
	// attribute value; empty matches any value.
	MatchValue string
}

// Apply adds the rule's labels to the element if the rule matches the
// given attribute value. Its signature matches attribute.Func so rules
// can be registered as attribute handlers.
func (r *Rule) Apply(value string, el *model.Element) {
	if r.MatchTag != "" && r.MatchTag != el.Tag {
		return
	}
	if r.MatchValue != "" && !containsToken(value, r.MatchValue) {
		return
	}
	el.Labels = append(el.Labels, r.Labels...)
}

func (r *Rule) String() string {
	return fmt.Sprintf("<rule %s#%s=%s>", orAny(r.MatchTag), orAny(r.Attr), orAny(r.MatchValue))
}

func orAny(s string) string {
	if s == "" {
		return "{any}"
	}
	return s
}

// Model is the result of loading an annotation mapping: a style profile
// enriched with the tag-level labels, plus the attribute-level rules.
type Model struct {
	Profile map[string]*model.Element
	Rules   []*Rule
}

// New parses the mapping against a copy of the given style profile.
// Malformed selector keys fail fast here, before any traversal runs.
func New(profile map[string]*model.Element, mapping map[string][]string) (*Model, error) {
	merged := make(map[string]*model.Element, len(profile))
	for tag, el := range profile {
		merged[tag] = el.Clone()
	}

	m := &Model{Profile: merged}
	for key, labels := range mapping {
		if key == "" {
			return nil, fmt.Errorf("invalid annotation selector %q: empty", key)
		}
		if strings.Count(key, "#") > 1 {
			return nil, fmt.Errorf("invalid annotation selector %q: more than one attribute", key)
		}

		tag, attrSpec, hasAttr := strings.Cut(key, "#")
		if !hasAttr {
			el, ok := merged[tag]
			if !ok {
				el = model.DefaultElement()
				el.Tag = tag
				merged[tag] = el
			}
			el.Labels = append(el.Labels, labels...)
			continue
		}

		attr, value, _ := strings.Cut(attrSpec, "=")
		if attr == "" {
			return nil, fmt.Errorf("invalid annotation selector %q: missing attribute name", key)
		}
		m.Rules = append(m.Rules, &Rule{
			Labels:     append([]string(nil), labels...),
			Attr:       attr,
			MatchTag:   tag,
			MatchValue: value,
		})
	}
	return m, nil
}

func containsToken(value, token string) bool {
	for _, t := range strings.Fields(value) {
		if t == token {
			return true
		}
	}
	return false
}
