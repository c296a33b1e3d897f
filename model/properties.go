package model

// Display determines how an element participates in the text flow.
type Display int

const (
	// DisplayInline content flows within the current line.
	DisplayInline Display = iota
	// DisplayBlock content occupies its own vertical extent and
	// contributes margins before and after.
	DisplayBlock
	// DisplayNone content is suppressed entirely, including all
	// descendant content.
	DisplayNone
)

func (d Display) String() string {
	switch d {
	case DisplayBlock:
		return "block"
	case DisplayNone:
		return "none"
	}
	return "inline"
}

// WhiteSpace is the policy for handling literal whitespace in text content.
type WhiteSpace int

const (
	// WhiteSpaceDefault means no explicit policy; the parent's policy is
	// inherited during style refinement.
	WhiteSpaceDefault WhiteSpace = iota
	// WhiteSpaceNormal collapses runs of whitespace into a single space.
	WhiteSpaceNormal
	// WhiteSpacePre preserves whitespace and line breaks verbatim.
	WhiteSpacePre
	// WhiteSpaceNoWrap collapses whitespace but forbids line wrapping.
	WhiteSpaceNoWrap
)

func (w WhiteSpace) String() string {
	switch w {
	case WhiteSpaceNormal:
		return "normal"
	case WhiteSpacePre:
		return "pre"
	case WhiteSpaceNoWrap:
		return "nowrap"
	}
	return "default"
}

// HorizontalAlignment positions cell content within a table column.
type HorizontalAlignment int

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
)

// VerticalAlignment positions cell content within a table row.
// The zero value is middle alignment, matching the HTML default for
// table cells.
type VerticalAlignment int

const (
	VAlignMiddle VerticalAlignment = iota
	VAlignTop
	VAlignBottom
)
