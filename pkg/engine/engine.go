// Package engine realizes drop intents against a form tree. It combines
// the drop-zone classification with the tree primitives and the row
// lifecycle: side-by-side drops create or extend row containers, removals
// dissolve rows that stop grouping, and every structural rejection comes
// back as a result value rather than an error.
package engine

import (
	"github.com/chazu/formwright/pkg/dropzone"
	"github.com/chazu/formwright/pkg/form"
	"github.com/chazu/formwright/pkg/palette"
)

// Rejection reasons returned in DropResult.Reason. These are stable
// strings the UI surfaces directly.
const (
	ReasonRowFull      = "row is at capacity"
	ReasonRowVertical  = "rows reposition vertically only"
	ReasonCircular     = "circular placement"
	ReasonRowNested    = "rows cannot be nested"
	ReasonNotContainer = "target is not a container"
)

// DropResult is the outcome of applying a drop. On success SelectedID
// names the inserted or relocated component; on rejection Reason is set,
// SelectedID is empty, and Tree is the input tree unchanged.
type DropResult struct {
	Tree       form.Tree `json:"tree"`
	SelectedID string    `json:"selectedId,omitempty"`
	Reason     string    `json:"reason,omitempty"`
}

// Rejected reports whether the drop was refused.
func (r DropResult) Rejected() bool {
	return r.Reason != ""
}

// Engine applies drops against form trees. It holds the palette used to
// synthesize components for NewItem payloads and has no other state; all
// methods are pure with respect to the input tree.
type Engine struct {
	palette *palette.Palette
}

// New creates an engine. A nil palette uses the stock catalog.
func New(p *palette.Palette) *Engine {
	if p == nil {
		p = palette.Default()
	}
	return &Engine{palette: p}
}

// Palette returns the engine's catalog.
func (e *Engine) Palette() *palette.Palette {
	return e.palette
}

// ApplyDrop realizes a drop intent. The input tree is never modified.
//
// For ExistingItem payloads the source component is removed from its old
// location first (dissolving its old row if that removal degenerates it)
// and only then inserted, so the component is never present twice.
// Dropping a component onto itself is a no-op.
func (e *Engine) ApplyDrop(t form.Tree, p Payload, intent dropzone.Intent, targetID string) DropResult {
	switch pl := p.(type) {
	case NewItem:
		node := e.palette.New(pl.ComponentType)
		res := e.place(t, node, intent, targetID)
		if res.Rejected() {
			return DropResult{Tree: t, Reason: res.Reason}
		}
		return res

	case ExistingItem:
		if pl.SourceID != "" && pl.SourceID == targetID {
			return DropResult{Tree: t, SelectedID: pl.SourceID}
		}
		node := form.Find(t, pl.SourceID)
		if node == nil {
			node = pl.Node
		}
		if node == nil {
			return DropResult{Tree: t}
		}
		if targetID != "" && form.Contains(node, targetID) {
			return DropResult{Tree: t, Reason: ReasonCircular}
		}
		if node.IsRow() && (intent == dropzone.IntentLeft || intent == dropzone.IntentRight) {
			return DropResult{Tree: t, Reason: ReasonRowVertical}
		}
		working, removed := form.Remove(t, node.ID)
		if removed != nil {
			node = removed
		}
		res := e.place(working, node, intent, targetID)
		if res.Rejected() {
			// Rejection must leave the source where it was.
			return DropResult{Tree: t, Reason: res.Reason}
		}
		return res
	}
	return DropResult{Tree: t}
}

// place inserts node into tree per the intent. The target may have moved
// or vanished since classification (a dissolution triggered by the
// payload's own removal); an unresolvable target degrades to the root
// append fallback so a relocated component is never lost.
func (e *Engine) place(t form.Tree, node *form.Component, intent dropzone.Intent, targetID string) DropResult {
	target := form.Find(t, targetID)
	if intent == dropzone.IntentNone || target == nil {
		return appendRoot(t, node)
	}

	switch intent {
	case dropzone.IntentBefore, dropzone.IntentAfter:
		parent, _, _ := form.ParentOf(t, targetID)
		if parent.IsRow() {
			if node.IsRow() {
				return DropResult{Tree: t, Reason: ReasonRowNested}
			}
			if len(parent.Children) >= form.RowCapacity {
				return DropResult{Tree: t, Reason: ReasonRowFull}
			}
		}
		out, ok := form.InsertAdjacent(t, targetID, node, intent == dropzone.IntentAfter)
		if !ok {
			return appendRoot(t, node)
		}
		return DropResult{Tree: out, SelectedID: node.ID}

	case dropzone.IntentLeft, dropzone.IntentRight:
		return e.placeBeside(t, node, target, intent == dropzone.IntentRight)

	case dropzone.IntentInside:
		if !target.IsContainer() {
			return DropResult{Tree: t, Reason: ReasonNotContainer}
		}
		if target.IsRow() {
			if node.IsRow() {
				return DropResult{Tree: t, Reason: ReasonRowNested}
			}
			if len(target.Children) >= form.RowCapacity {
				return DropResult{Tree: t, Reason: ReasonRowFull}
			}
		}
		out, ok := form.AppendChild(t, targetID, node)
		if !ok {
			return appendRoot(t, node)
		}
		return DropResult{Tree: out, SelectedID: node.ID}
	}
	return appendRoot(t, node)
}

// placeBeside realizes a left/right intent: append into the target's row
// when it already sits in one, otherwise wrap target and node into a
// fresh row at the target's old position. The intent orders the pair.
func (e *Engine) placeBeside(t form.Tree, node *form.Component, target *form.Component, right bool) DropResult {
	if node.IsRow() {
		return DropResult{Tree: t, Reason: ReasonRowVertical}
	}
	if target.IsRow() {
		// A side-by-side drop against a row would wrap it in another row.
		return DropResult{Tree: t, Reason: ReasonRowNested}
	}

	parent, _, _ := form.ParentOf(t, target.ID)
	if parent.IsRow() {
		if len(parent.Children) >= form.RowCapacity {
			return DropResult{Tree: t, Reason: ReasonRowFull}
		}
		out, ok := form.InsertAdjacent(t, target.ID, node, right)
		if !ok {
			return appendRoot(t, node)
		}
		return DropResult{Tree: out, SelectedID: node.ID}
	}

	var row *form.Component
	if right {
		row = form.NewRow(target, node)
	} else {
		row = form.NewRow(node, target)
	}
	out, ok := form.ReplaceNode(t, target.ID, row)
	if !ok {
		return appendRoot(t, node)
	}
	return DropResult{Tree: out, SelectedID: node.ID}
}

func appendRoot(t form.Tree, node *form.Component) DropResult {
	out := make(form.Tree, 0, len(t)+1)
	out = append(out, t...)
	out = append(out, node)
	return DropResult{Tree: out, SelectedID: node.ID}
}
