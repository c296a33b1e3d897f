package styles

import (
	"testing"

	"github.com/tsawler/scripta/model"
)

func TestStrict_HidesDocumentMetadata(t *testing.T) {
	p := Strict()
	for _, tag := range []string{"head", "script", "style", "title", "meta", "link"} {
		el, ok := p[tag]
		if !ok {
			t.Errorf("%s missing from strict profile", tag)
			continue
		}
		if el.Display != model.DisplayNone {
			t.Errorf("%s Display = %v, want none", tag, el.Display)
		}
	}
}

func TestStrict_HeadingsCarryMargins(t *testing.T) {
	p := Strict()
	h1 := p["h1"]
	if h1.Display != model.DisplayBlock || h1.MarginBefore != 1 || h1.MarginAfter != 1 {
		t.Errorf("h1 = %+v, want block with margins 1/1", h1)
	}
}

func TestStrict_ListsIndent(t *testing.T) {
	p := Strict()
	if p["ul"].PaddingInline != 2 {
		t.Errorf("ul PaddingInline = %d, want 2", p["ul"].PaddingInline)
	}
	if p["li"].Display != model.DisplayBlock {
		t.Errorf("li Display = %v, want block", p["li"].Display)
	}
}

func TestRelaxed_ExtendsStrict(t *testing.T) {
	p := Relaxed()
	if p["div"].PaddingInline != 2 {
		t.Errorf("relaxed div PaddingInline = %d, want 2", p["div"].PaddingInline)
	}
	span := p["span"]
	if span == nil || !span.LimitWhitespaceAffixes {
		t.Errorf("relaxed span = %+v, want whitespace-limited affixes", span)
	}
	if _, ok := Strict()["span"]; ok {
		t.Error("strict profile should not style span")
	}
}

func TestProfiles_FreshCopies(t *testing.T) {
	a := Strict()
	a["p"].MarginBefore = 99

	if Strict()["p"].MarginBefore == 99 {
		t.Error("profiles share state between calls")
	}
}
