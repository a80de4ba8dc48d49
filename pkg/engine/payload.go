package engine

import "github.com/chazu/formwright/pkg/form"

// Payload identifies what is being dragged. The union is closed: a drop
// either introduces a fresh component from the palette or relocates one
// already on the canvas.
type Payload interface {
	payload()
}

// NewItem is a palette drag. A fresh component of ComponentType is
// synthesized at drop time; unknown types fall back to the default kind.
type NewItem struct {
	ComponentType string
}

// ExistingItem is a canvas drag relocating a component that is already
// part of the document. Node carries the component itself for payloads
// that cannot be resolved by id in the current tree; OriginContainerID
// names the container the drag started in, when it started in one.
type ExistingItem struct {
	SourceID          string
	Node              *form.Component
	OriginContainerID string
}

func (NewItem) payload()      {}
func (ExistingItem) payload() {}
