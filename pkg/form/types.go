package form

// Kind identifies a component variant. Leaf kinds render as form fields
// or static text; container kinds hold an ordered sequence of children.
type Kind string

const (
	KindTextInput   Kind = "text_input"
	KindTextarea    Kind = "textarea"
	KindEmailInput  Kind = "email_input"
	KindNumberInput Kind = "number_input"
	KindSelect      Kind = "select"
	KindCheckbox    Kind = "checkbox"
	KindRadio       Kind = "radio"
	KindDatePicker  Kind = "date_picker"
	KindHeading     Kind = "heading"
	KindParagraph   Kind = "paragraph"
	KindRow         Kind = "row"
	KindColumn      Kind = "column"
)

// DefaultKind is the leaf kind substituted when a palette drop carries an
// unrecognized component type.
const DefaultKind = KindTextInput

// RowCapacity is the maximum number of children a row container holds.
const RowCapacity = 4

// IsContainer reports whether the kind carries children.
func (k Kind) IsContainer() bool {
	return k == KindRow || k == KindColumn
}

// Valid reports whether the kind is one of the known variants.
func (k Kind) Valid() bool {
	switch k {
	case KindTextInput, KindTextarea, KindEmailInput, KindNumberInput,
		KindSelect, KindCheckbox, KindRadio, KindDatePicker,
		KindHeading, KindParagraph, KindRow, KindColumn:
		return true
	}
	return false
}

// Option is a single choice entry for select/radio/checkbox components.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Validation carries the variant-specific validation rule of a field.
// It is opaque to the tree engine: carried along during moves and clones,
// never interpreted.
type Validation struct {
	Pattern string   `json:"pattern,omitempty"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Component is a single node of the form tree. Children is non-nil only
// for container kinds; an empty child list on a row is a transient state
// resolved by dissolution before a mutation returns.
type Component struct {
	ID          string       `json:"id"`
	Kind        Kind         `json:"kind"`
	Label       string       `json:"label,omitempty"`
	FieldName   string       `json:"fieldName,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
	Required    bool         `json:"required,omitempty"`
	Options     []Option     `json:"options,omitempty"`
	Validation  *Validation  `json:"validation,omitempty"`
	Children    []*Component `json:"children,omitempty"`
}

// IsRow reports whether the component is a row container.
func (c *Component) IsRow() bool {
	return c != nil && c.Kind == KindRow
}

// IsContainer reports whether the component can hold children.
func (c *Component) IsContainer() bool {
	return c != nil && c.Kind.IsContainer()
}

// Tree is the ordered root sequence of a single form page.
type Tree []*Component

// Patch describes a partial update to a component's own fields. Nil
// pointers leave the corresponding field untouched; a non-nil Options or
// Validation replaces the previous value wholesale.
type Patch struct {
	Label       *string     `json:"label,omitempty"`
	FieldName   *string     `json:"fieldName,omitempty"`
	Placeholder *string     `json:"placeholder,omitempty"`
	Required    *bool       `json:"required,omitempty"`
	Options     []Option    `json:"options,omitempty"`
	Validation  *Validation `json:"validation,omitempty"`
}
