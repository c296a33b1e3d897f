package scripta_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/scripta"
	"github.com/tsawler/scripta/model"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"inline flow", "<b>Hello</b> world", "Hello world"},
		{"heading margin", "<html><body><h1>Title</h1>Hello world</body></html>", "Title\n\nHello world"},
		{"list bullets", "<ul><li>A</li><li>B</li></ul>", "* A\n* B"},
		{"table grid", "<table><tr><td>a</td><td>long</td></tr><tr><td>wide</td><td>b</td></tr></table>", "a     long\nwide  b   "},
		{"hidden content", `<span style="display: none">gone</span>kept`, "kept"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scripta.FromString(tt.html).Text()
			if err != nil {
				t.Fatalf("Text: %v", err)
			}
			if got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromReader(t *testing.T) {
	got, err := scripta.FromReader(strings.NewReader("<p>from a reader</p>")).Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if want := "from a reader"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte("<h1>File</h1>body"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := scripta.Open(path).Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if want := "File\n\nbody"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := scripta.Open(filepath.Join(t.TempDir(), "nope.html")).Text()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDisplayLinks(t *testing.T) {
	src := `<a href="https://example.com">go</a>`

	plain, err := scripta.FromString(src).Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if want := "go"; plain != want {
		t.Errorf("without DisplayLinks: text = %q, want %q", plain, want)
	}

	linked, err := scripta.FromString(src).DisplayLinks().Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if want := "[go](https://example.com)"; linked != want {
		t.Errorf("with DisplayLinks: text = %q, want %q", linked, want)
	}
}

func TestDisplayImages(t *testing.T) {
	got, err := scripta.FromString(`<img alt="a diagram">`).DisplayImages().Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if want := "[a diagram]"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestStrictProfile(t *testing.T) {
	// the relaxed profile renders div as an indented block, the strict
	// profile keeps it flush with its siblings
	src := "<div>a</div><div>b</div>"

	relaxed, err := scripta.FromString(src).Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if want := "  a\n  b"; relaxed != want {
		t.Errorf("relaxed: text = %q, want %q", relaxed, want)
	}

	strict, err := scripta.FromString(src).StrictProfile().Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if want := "a\nb"; strict != want {
		t.Errorf("strict: text = %q, want %q", strict, want)
	}
}

func TestAnnotate(t *testing.T) {
	res, err := scripta.FromString("<h1>Chapter</h1>rest").
		Annotate(map[string][]string{"h1": {"heading"}}).
		Convert()
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if want := "Chapter\n\nrest"; res.Text != want {
		t.Errorf("text = %q, want %q", res.Text, want)
	}
	// the span includes the heading's bottom margin, mirroring the index
	// at which the enclosing block was closed
	want := []model.Annotation{{Start: 0, End: 9, Label: "heading"}}
	if len(res.Annotations) != 1 || res.Annotations[0] != want[0] {
		t.Errorf("annotations = %+v, want %+v", res.Annotations, want)
	}
}

func TestAnnotate_AttributeSelector(t *testing.T) {
	anns, err := scripta.FromString(`<span class="name">Ada</span>`).
		Annotate(map[string][]string{"span#class=name": {"person"}}).
		Annotations()
	if err != nil {
		t.Fatalf("Annotations: %v", err)
	}

	if len(anns) != 1 || anns[0].Label != "person" {
		t.Fatalf("annotations = %+v, want one person span", anns)
	}
}

func TestAnnotate_MalformedSelector(t *testing.T) {
	selectors := []string{"", "a#b#c", "a#"}
	for _, sel := range selectors {
		_, err := scripta.FromString("<p>x</p>").
			Annotate(map[string][]string{sel: {"label"}}).
			Text()
		if err == nil {
			t.Errorf("selector %q: expected error", sel)
		}
	}
}

func TestConvert_NoInput(t *testing.T) {
	_, err := scripta.FromReader(nil).Text()
	if err == nil {
		t.Fatal("expected error when no input is configured")
	}
}

func TestMust(t *testing.T) {
	got := scripta.Must(scripta.FromString("<p>ok</p>").Text())
	if got != "ok" {
		t.Errorf("text = %q, want %q", got, "ok")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic from Must on error")
		}
	}()
	scripta.Must(scripta.FromReader(nil).Text())
}

func TestOptionMethodsDoNotMutateReceiver(t *testing.T) {
	base := scripta.FromString(`<a href="https://example.com">go</a>`)
	linked := base.DisplayLinks()

	got, err := base.Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if want := "go"; got != want {
		t.Errorf("base converter: text = %q, want %q", got, want)
	}

	got, err = linked.Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if want := "[go](https://example.com)"; got != want {
		t.Errorf("derived converter: text = %q, want %q", got, want)
	}
}
