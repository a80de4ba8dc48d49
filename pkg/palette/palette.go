// Package palette holds the catalog of component types a form can be
// built from, and synthesizes fresh component nodes for palette drops.
package palette

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/chazu/formwright/pkg/form"
)

// Definition describes one palette entry: the defaults a freshly dropped
// component of that kind starts with.
type Definition struct {
	Kind        form.Kind `yaml:"kind" json:"kind"`
	Label       string    `yaml:"label" json:"label"`
	Placeholder string    `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Options     []string  `yaml:"options,omitempty" json:"options,omitempty"`
}

// Palette is an ordered catalog of definitions keyed by kind.
type Palette struct {
	order []form.Kind
	defs  map[form.Kind]Definition
}

// builtins are the stock palette entries, in canvas-palette order.
var builtins = []Definition{
	{Kind: form.KindTextInput, Label: "Text Field", Placeholder: "Enter text"},
	{Kind: form.KindTextarea, Label: "Text Area", Placeholder: "Enter a longer answer"},
	{Kind: form.KindEmailInput, Label: "Email", Placeholder: "name@example.com"},
	{Kind: form.KindNumberInput, Label: "Number", Placeholder: "0"},
	{Kind: form.KindSelect, Label: "Dropdown", Options: []string{"Option 1", "Option 2", "Option 3"}},
	{Kind: form.KindCheckbox, Label: "Checkboxes", Options: []string{"Option 1", "Option 2"}},
	{Kind: form.KindRadio, Label: "Multiple Choice", Options: []string{"Option 1", "Option 2"}},
	{Kind: form.KindDatePicker, Label: "Date"},
	{Kind: form.KindHeading, Label: "Heading"},
	{Kind: form.KindParagraph, Label: "Paragraph"},
	// Rows are not palette items: they only come from the row lifecycle,
	// which creates them around side-by-side drops.
	{Kind: form.KindColumn, Label: "Column"},
}

// Default returns a palette populated with the stock catalog.
func Default() *Palette {
	p := &Palette{defs: make(map[form.Kind]Definition)}
	for _, d := range builtins {
		p.order = append(p.order, d.Kind)
		p.defs[d.Kind] = d
	}
	return p
}

// Catalog returns the definitions in palette order.
func (p *Palette) Catalog() []Definition {
	out := make([]Definition, 0, len(p.order))
	for _, k := range p.order {
		out = append(out, p.defs[k])
	}
	return out
}

// Load overlays catalog entries from a YAML document of the shape:
//
//	components:
//	  - kind: text_input
//	    label: Short Answer
//	    placeholder: Type here
//
// Entries for known kinds replace their defaults; unknown kinds are
// rejected so a typo in the overlay file surfaces instead of silently
// minting an unrenderable component type.
func (p *Palette) Load(r io.Reader) error {
	var doc struct {
		Components []Definition `yaml:"components"`
	}
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("palette: parsing overlay: %w", err)
	}
	for _, d := range doc.Components {
		if !d.Kind.Valid() {
			return fmt.Errorf("palette: overlay names unknown kind %q", d.Kind)
		}
	}
	for _, d := range doc.Components {
		if _, known := p.defs[d.Kind]; !known {
			p.order = append(p.order, d.Kind)
		}
		p.defs[d.Kind] = d
	}
	return nil
}

// New synthesizes a fresh component for the given palette type. An
// unrecognized type falls back to the default leaf kind rather than
// failing the drop. Field-bearing kinds get a generated field name;
// choice kinds get their default option set with fresh option ids.
func (p *Palette) New(componentType string) *form.Component {
	kind := form.Kind(componentType)
	def, ok := p.defs[kind]
	if !ok || !kind.Valid() {
		kind = form.DefaultKind
		def = p.defs[kind]
	}

	c := &form.Component{
		ID:          form.NewID(),
		Kind:        kind,
		Label:       def.Label,
		Placeholder: def.Placeholder,
	}
	switch {
	case kind.IsContainer():
		c.Children = []*form.Component{}
	default:
		c.FieldName = fmt.Sprintf("field_%s", form.ShortID())
	}
	for _, label := range def.Options {
		c.Options = append(c.Options, form.Option{
			ID:    form.NewID(),
			Label: label,
			Value: label,
		})
	}
	return c
}
