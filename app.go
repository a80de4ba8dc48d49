package main

import (
	"context"
	"strings"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/chazu/formwright/pkg/document"
	"github.com/chazu/formwright/pkg/dropzone"
	"github.com/chazu/formwright/pkg/engine"
	"github.com/chazu/formwright/pkg/form"
	"github.com/chazu/formwright/pkg/history"
	"github.com/chazu/formwright/pkg/palette"
)

// App is the Wails backend. It owns a single editing session — the pages,
// the selection, and the undo history — and exposes the engine operations
// to the frontend via bindings. The frontend does the rendering and the
// pointer plumbing; every drop decision is made here.
type App struct {
	ctx context.Context

	mu       sync.Mutex
	engine   *engine.Engine
	pages    []document.Page
	active   int
	selected string
	history  *history.History
}

// StateData is the JSON-serializable session state sent to the frontend.
type StateData struct {
	Pages      []document.Page `json:"pages"`
	ActivePage int             `json:"activePage"`
	SelectedID string          `json:"selectedId"`
	CanUndo    bool            `json:"canUndo"`
	CanRedo    bool            `json:"canRedo"`
}

// DropData is the result of a drop binding: the new state, or the old
// state plus the rejection reason.
type DropData struct {
	State  StateData `json:"state"`
	Reason string    `json:"reason,omitempty"`
}

// PayloadData is the drag payload shape sent by the frontend.
type PayloadData struct {
	Kind              string          `json:"kind"` // "newItem" | "existingItem"
	ComponentType     string          `json:"componentType,omitempty"`
	SourceID          string          `json:"sourceId,omitempty"`
	Node              *form.Component `json:"node,omitempty"`
	OriginContainerID string          `json:"originContainerId,omitempty"`
}

// ImportData reports an import attempt. On failure Error is set and State
// is the untouched prior session.
type ImportData struct {
	State StateData `json:"state"`
	Error string    `json:"error,omitempty"`
}

// ExportData carries the serialized document text.
type ExportData struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// NewApp creates an App with one empty page and the baseline history
// entry recorded.
func NewApp() *App {
	a := &App{
		engine: engine.New(nil),
		pages: []document.Page{{
			ID:         form.NewID(),
			Title:      "Page 1",
			Components: form.Tree{},
		}},
		history: history.New(history.DefaultCapacity),
	}
	a.history.Record(a.snapshot())
	return a
}

// startup is called by Wails on app startup. The context is saved so
// runtime events can be emitted later.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

func (a *App) snapshot() history.State {
	return history.State{
		Pages:      a.pages,
		ActivePage: a.active,
		SelectedID: a.selected,
	}
}

func (a *App) restore(s history.State) {
	a.pages = s.Pages
	a.active = s.ActivePage
	a.selected = s.SelectedID
	if a.active < 0 || a.active >= len(a.pages) {
		a.active = 0
	}
}

// commit records the current state after a completed mutation.
func (a *App) commit() {
	a.history.Record(a.snapshot())
}

func (a *App) stateData() StateData {
	return StateData{
		Pages:      a.pages,
		ActivePage: a.active,
		SelectedID: a.selected,
		CanUndo:    a.history.CanUndo(),
		CanRedo:    a.history.CanRedo(),
	}
}

func (a *App) emit(event string, data ...interface{}) {
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, event, data...)
	}
}

// GetState returns the current session state.
func (a *App) GetState() StateData {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stateData()
}

// Catalog returns the palette entries for the component tray.
func (a *App) Catalog() []palette.Definition {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine.Palette().Catalog()
}

// LoadPalette overlays custom catalog entries from YAML text. The current
// catalog is kept untouched when the overlay fails to parse.
func (a *App) LoadPalette(yamlText string) ImportData {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.engine.Palette().Load(strings.NewReader(yamlText)); err != nil {
		return ImportData{State: a.stateData(), Error: err.Error()}
	}
	return ImportData{State: a.stateData()}
}

// ClassifyDrop maps a pointer sample over a canvas element to a drop
// intent. This is the hover preview: it is read-only and idempotent.
func (a *App) ClassifyDrop(p dropzone.Pointer, r dropzone.Rect, targetID string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	target := form.Find(a.pages[a.active].Components, targetID)
	if target == nil {
		return string(dropzone.IntentNone)
	}
	return string(dropzone.Classify(p, r, target.IsRow()))
}

// ApplyDrop commits a drop against the active page. Rejections come back
// in DropData.Reason with the session unchanged.
func (a *App) ApplyDrop(payload PayloadData, intent string, targetID string) DropData {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.applyDropLocked(payload.toEngine(), dropzone.Intent(intent), targetID)
}

// AddComponent appends a fresh component of the given type to the active
// page, the palette double-click path.
func (a *App) AddComponent(componentType string) DropData {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.applyDropLocked(engine.NewItem{ComponentType: componentType}, dropzone.IntentNone, "")
}

func (a *App) applyDropLocked(p engine.Payload, intent dropzone.Intent, targetID string) DropData {
	tree := a.pages[a.active].Components
	res := a.engine.ApplyDrop(tree, p, intent, targetID)
	if res.Rejected() {
		a.emit("drop:rejected", res.Reason)
		return DropData{State: a.stateData(), Reason: res.Reason}
	}
	if sameOrder(tree, res.Tree) {
		// Self-drops and unknown sources change nothing; keep history clean.
		if res.SelectedID != "" {
			a.selected = res.SelectedID
		}
		return DropData{State: a.stateData()}
	}
	a.pages[a.active].Components = res.Tree
	a.selected = res.SelectedID
	a.commit()
	return DropData{State: a.stateData()}
}

func (p PayloadData) toEngine() engine.Payload {
	if p.Kind == "existingItem" {
		return engine.ExistingItem{
			SourceID:          p.SourceID,
			Node:              p.Node,
			OriginContainerID: p.OriginContainerID,
		}
	}
	return engine.NewItem{ComponentType: p.ComponentType}
}

// UpdateComponent patches a component's own fields on the active page.
// Unknown ids are a no-op and record nothing.
func (a *App) UpdateComponent(id string, patch form.Patch) StateData {
	a.mu.Lock()
	defer a.mu.Unlock()
	tree := a.pages[a.active].Components
	if form.Find(tree, id) == nil {
		return a.stateData()
	}
	a.pages[a.active].Components = form.Update(tree, id, patch)
	a.commit()
	return a.stateData()
}

// RemoveComponent deletes a component at whatever depth it occurs,
// dissolving its row if the removal degenerates it.
func (a *App) RemoveComponent(id string) StateData {
	a.mu.Lock()
	defer a.mu.Unlock()
	tree, removed := form.Remove(a.pages[a.active].Components, id)
	if removed == nil {
		return a.stateData()
	}
	a.pages[a.active].Components = tree
	if a.selected == id {
		a.selected = ""
	}
	a.commit()
	return a.stateData()
}

// DuplicateComponent clones a component (fresh ids throughout, "(Copy)"
// label) and inserts the clone right after the original. Duplicating
// inside a full row is rejected like any other insertion.
func (a *App) DuplicateComponent(id string) DropData {
	a.mu.Lock()
	defer a.mu.Unlock()
	tree := a.pages[a.active].Components
	node := form.Find(tree, id)
	if node == nil {
		return DropData{State: a.stateData()}
	}
	if parent, _, _ := form.ParentOf(tree, id); parent.IsRow() && len(parent.Children) >= form.RowCapacity {
		a.emit("drop:rejected", engine.ReasonRowFull)
		return DropData{State: a.stateData(), Reason: engine.ReasonRowFull}
	}
	clone := form.CloneComponent(node)
	out, ok := form.InsertAdjacent(tree, id, clone, true)
	if !ok {
		return DropData{State: a.stateData()}
	}
	a.pages[a.active].Components = out
	a.selected = clone.ID
	a.commit()
	return DropData{State: a.stateData()}
}

// MoveComponent reorders the active page's top-level sequence.
func (a *App) MoveComponent(from, to int) StateData {
	a.mu.Lock()
	defer a.mu.Unlock()
	tree := a.pages[a.active].Components
	moved := form.MoveWithinSiblings(tree, from, to)
	if len(moved) == len(tree) && sameOrder(tree, moved) {
		return a.stateData()
	}
	a.pages[a.active].Components = moved
	a.commit()
	return a.stateData()
}

func sameOrder(a, b form.Tree) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SelectComponent updates the selection. Selection changes are not
// history entries on their own; they ride along with the next snapshot.
func (a *App) SelectComponent(id string) StateData {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selected = id
	return a.stateData()
}

// ValidateTree checks the active page against the structural invariants.
func (a *App) ValidateTree() []form.Violation {
	a.mu.Lock()
	defer a.mu.Unlock()
	return form.Check(a.pages[a.active].Components)
}

// Undo rolls the session back one recorded state.
func (a *App) Undo() StateData {
	a.mu.Lock()
	defer a.mu.Unlock()
	if s, ok := a.history.Undo(); ok {
		a.restore(s)
	}
	return a.stateData()
}

// Redo replays a state undone by Undo.
func (a *App) Redo() StateData {
	a.mu.Lock()
	defer a.mu.Unlock()
	if s, ok := a.history.Redo(); ok {
		a.restore(s)
	}
	return a.stateData()
}

// AddPage appends a page and makes it active.
func (a *App) AddPage(title string) StateData {
	a.mu.Lock()
	defer a.mu.Unlock()
	if title == "" {
		title = "Untitled Page"
	}
	a.pages = append(a.pages, document.Page{
		ID:         form.NewID(),
		Title:      title,
		Components: form.Tree{},
	})
	a.active = len(a.pages) - 1
	a.selected = ""
	a.commit()
	return a.stateData()
}

// RemovePage deletes a page by id. The last remaining page cannot be
// removed; unknown ids are a no-op.
func (a *App) RemovePage(id string) StateData {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.pages) <= 1 {
		return a.stateData()
	}
	for i, p := range a.pages {
		if p.ID != id {
			continue
		}
		a.pages = append(a.pages[:i], a.pages[i+1:]...)
		// Keep the active index pointing at the same page when an
		// earlier one goes; removing the active page itself falls back
		// to its predecessor.
		if i <= a.active && a.active > 0 {
			a.active--
		}
		a.selected = ""
		a.commit()
		break
	}
	return a.stateData()
}

// RenamePage retitles a page by id.
func (a *App) RenamePage(id, title string) StateData {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, p := range a.pages {
		if p.ID == id && p.Title != title {
			a.pages[i].Title = title
			a.commit()
			break
		}
	}
	return a.stateData()
}

// SetActivePage switches the canvas to another page.
func (a *App) SetActivePage(index int) StateData {
	a.mu.Lock()
	defer a.mu.Unlock()
	if index >= 0 && index < len(a.pages) {
		a.active = index
		a.selected = ""
	}
	return a.stateData()
}

// ExportDocument serializes the whole session to the multipage format.
func (a *App) ExportDocument(templateName string) ExportData {
	a.mu.Lock()
	defer a.mu.Unlock()
	text, err := document.Export(templateName, a.pages)
	if err != nil {
		return ExportData{Error: err.Error()}
	}
	return ExportData{Text: text}
}

// ImportDocument replaces the session with a parsed document. A failed
// parse leaves the session exactly as it was.
func (a *App) ImportDocument(text string) ImportData {
	a.mu.Lock()
	defer a.mu.Unlock()
	doc, err := document.Import(text)
	if err != nil {
		return ImportData{State: a.stateData(), Error: err.Error()}
	}
	a.pages = doc.Pages
	a.active = 0
	a.selected = ""
	a.commit()
	a.emit("document:imported", doc.TemplateName)
	return ImportData{State: a.stateData()}
}
