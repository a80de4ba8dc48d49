package palette

import (
	"strings"
	"testing"

	"github.com/chazu/formwright/pkg/form"
)

// ---------------------------------------------------------------------------
// Synthesis
// ---------------------------------------------------------------------------

func TestNewSynthesizesKnownKinds(t *testing.T) {
	p := Default()

	c := p.New("email_input")
	if c.Kind != form.KindEmailInput {
		t.Errorf("kind = %q", c.Kind)
	}
	if c.ID == "" {
		t.Error("missing id")
	}
	if c.Label != "Email" || c.Placeholder != "name@example.com" {
		t.Errorf("defaults not applied: %+v", c)
	}
	if !strings.HasPrefix(c.FieldName, "field_") {
		t.Errorf("fieldName = %q, want field_ prefix", c.FieldName)
	}
}

func TestNewUnknownTypeFallsBackToDefaultLeaf(t *testing.T) {
	p := Default()

	c := p.New("hologram")
	if c.Kind != form.DefaultKind {
		t.Errorf("kind = %q, want %q", c.Kind, form.DefaultKind)
	}
	if c.Label == "" {
		t.Error("fallback should still carry the default label")
	}
}

func TestNewChoiceKindsGetOptionSets(t *testing.T) {
	p := Default()

	sel := p.New("select")
	if len(sel.Options) != 3 {
		t.Fatalf("select options = %d, want 3", len(sel.Options))
	}
	seen := make(map[string]bool)
	for _, o := range sel.Options {
		if o.ID == "" || seen[o.ID] {
			t.Errorf("option ids must be fresh and unique, got %q", o.ID)
		}
		seen[o.ID] = true
	}

	// Two synthesized components never share option ids.
	other := p.New("select")
	for _, o := range other.Options {
		if seen[o.ID] {
			t.Error("option id reused across synthesized components")
		}
	}
}

func TestNewIDsAreUnique(t *testing.T) {
	p := Default()
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		c := p.New("text_input")
		if seen[c.ID] {
			t.Fatalf("duplicate id %q", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestNewContainerHasEmptyChildren(t *testing.T) {
	p := Default()
	col := p.New("column")
	if col.Children == nil || len(col.Children) != 0 {
		t.Errorf("column children = %v, want empty non-nil", col.Children)
	}
	if col.FieldName != "" {
		t.Errorf("containers should not get field names, got %q", col.FieldName)
	}
}

// ---------------------------------------------------------------------------
// Catalog + YAML overlay
// ---------------------------------------------------------------------------

func TestCatalogExcludesRows(t *testing.T) {
	for _, d := range Default().Catalog() {
		if d.Kind == form.KindRow {
			t.Error("rows must not be palette items")
		}
	}
}

func TestLoadOverlayReplacesDefaults(t *testing.T) {
	p := Default()
	overlay := `
components:
  - kind: text_input
    label: Short Answer
    placeholder: Type here
`
	if err := p.Load(strings.NewReader(overlay)); err != nil {
		t.Fatalf("load: %v", err)
	}

	c := p.New("text_input")
	if c.Label != "Short Answer" || c.Placeholder != "Type here" {
		t.Errorf("overlay not applied: %+v", c)
	}
	// Other entries are untouched.
	if got := p.New("email_input").Label; got != "Email" {
		t.Errorf("unrelated entry changed: %q", got)
	}
}

func TestLoadOverlayRejectsUnknownKind(t *testing.T) {
	p := Default()
	overlay := "components:\n  - kind: hologram\n    label: Nope\n"
	if err := p.Load(strings.NewReader(overlay)); err == nil {
		t.Fatal("expected an error for an unknown kind")
	}
	// The failed overlay must not have touched the catalog.
	if got := p.New("text_input").Label; got != "Text Field" {
		t.Errorf("catalog changed after failed overlay: %q", got)
	}
}

func TestLoadOverlayRejectsBadYAML(t *testing.T) {
	p := Default()
	if err := p.Load(strings.NewReader("{not yaml")); err == nil {
		t.Fatal("expected a parse error")
	}
}
