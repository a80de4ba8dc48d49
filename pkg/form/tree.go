package form

// Tree mutation primitives. All operations are pure: the input tree is
// never modified, and the returned tree shares untouched subtrees with
// the input (path copying). Operations given an unknown id return the
// original tree unchanged.

// shallowCopy duplicates the component itself. Children and Options are
// shared with the original and must be replaced, not mutated, by callers.
func (c *Component) shallowCopy() *Component {
	d := *c
	return &d
}

// Find returns the component with the given id, or nil. Traversal is
// depth-first and keeps a visited-id set so a corrupted tree with
// duplicate or cyclic structure terminates instead of recursing forever.
func Find(t Tree, id string) *Component {
	if id == "" {
		return nil
	}
	return findIn(t, id, make(map[string]bool))
}

func findIn(list []*Component, id string, seen map[string]bool) *Component {
	for _, c := range list {
		if c == nil || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		if c.ID == id {
			return c
		}
		if found := findIn(c.Children, id, seen); found != nil {
			return found
		}
	}
	return nil
}

// Contains reports whether id names root itself or any of its descendants.
func Contains(root *Component, id string) bool {
	if root == nil {
		return false
	}
	return Find(Tree{root}, id) != nil
}

// ParentOf locates the collection holding id. It returns the containing
// component (nil when id sits in the root sequence) and the index of id
// within that collection. ok is false when id is absent.
func ParentOf(t Tree, id string) (parent *Component, index int, ok bool) {
	return parentIn(t, nil, id, make(map[string]bool))
}

func parentIn(list []*Component, owner *Component, id string, seen map[string]bool) (*Component, int, bool) {
	for i, c := range list {
		if c == nil || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		if c.ID == id {
			return owner, i, true
		}
	}
	for _, c := range list {
		if c == nil || len(c.Children) == 0 {
			continue
		}
		if p, i, ok := parentIn(c.Children, c, id, seen); ok {
			return p, i, ok
		}
	}
	return nil, 0, false
}

// Update applies the patch to the component with the given id and returns
// the new tree. The patched component is a copy; the original is untouched.
func Update(t Tree, id string, p Patch) Tree {
	out, _ := updateIn(t, id, p)
	return out
}

func updateIn(list []*Component, id string, p Patch) ([]*Component, bool) {
	for i, c := range list {
		if c == nil {
			continue
		}
		if c.ID == id {
			out := copySlice(list)
			out[i] = p.applyTo(c)
			return out, true
		}
	}
	for i, c := range list {
		if c == nil || len(c.Children) == 0 {
			continue
		}
		kids, ok := updateIn(c.Children, id, p)
		if !ok {
			continue
		}
		repl := c.shallowCopy()
		repl.Children = kids
		out := copySlice(list)
		out[i] = repl
		return out, true
	}
	return list, false
}

func (p Patch) applyTo(c *Component) *Component {
	d := c.shallowCopy()
	if p.Label != nil {
		d.Label = *p.Label
	}
	if p.FieldName != nil {
		d.FieldName = *p.FieldName
	}
	if p.Placeholder != nil {
		d.Placeholder = *p.Placeholder
	}
	if p.Required != nil {
		d.Required = *p.Required
	}
	if p.Options != nil {
		d.Options = p.Options
	}
	if p.Validation != nil {
		d.Validation = p.Validation
	}
	return d
}

// Remove deletes the component with the given id at whatever depth it
// occurs and returns the new tree plus the removed component (nil when
// the id was not found). When the removal empties or degenerates a row
// container, dissolution is applied within the same call so the returned
// tree never holds a row with fewer than two children.
func Remove(t Tree, id string) (Tree, *Component) {
	out, removed, _ := removeIn(t, id)
	return out, removed
}

func removeIn(list []*Component, id string) ([]*Component, *Component, bool) {
	for i, c := range list {
		if c == nil || c.ID != id {
			continue
		}
		out := make([]*Component, 0, len(list)-1)
		out = append(out, list[:i]...)
		out = append(out, list[i+1:]...)
		return out, c, true
	}
	for i, c := range list {
		if c == nil || len(c.Children) == 0 {
			continue
		}
		kids, removed, ok := removeIn(c.Children, id)
		if !ok {
			continue
		}
		out := copySlice(list)
		repl := c.shallowCopy()
		repl.Children = kids
		if collapsed, gone := dissolveRow(repl); gone {
			out = append(out[:i], out[i+1:]...)
		} else {
			out[i] = collapsed
		}
		return out, removed, true
	}
	return list, nil, false
}

// MoveWithinSiblings reorders the top-level sequence, moving the entry at
// from to position to. Out-of-range indexes are a no-op. Reordering inside
// a container is done by applying the same primitive to that container's
// children and replacing them via Update-style path copying.
func MoveWithinSiblings(t Tree, from, to int) Tree {
	if from < 0 || from >= len(t) || to < 0 || to >= len(t) || from == to {
		return t
	}
	out := copySlice(t)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	rest := make([]*Component, 0, len(t))
	rest = append(rest, out[:to]...)
	rest = append(rest, moved)
	rest = append(rest, out[to:]...)
	return rest
}

// InsertAdjacent places node immediately before (after=false) or after
// (after=true) the target, in whatever collection the target lives in.
// ok is false and the tree is returned unchanged when the target is
// absent. No row checks are applied here; callers enforce capacity and
// nesting before inserting.
func InsertAdjacent(t Tree, targetID string, node *Component, after bool) (Tree, bool) {
	return insertAdjIn(t, targetID, node, after)
}

func insertAdjIn(list []*Component, targetID string, node *Component, after bool) ([]*Component, bool) {
	for i, c := range list {
		if c == nil || c.ID != targetID {
			continue
		}
		at := i
		if after {
			at = i + 1
		}
		out := make([]*Component, 0, len(list)+1)
		out = append(out, list[:at]...)
		out = append(out, node)
		out = append(out, list[at:]...)
		return out, true
	}
	for i, c := range list {
		if c == nil || len(c.Children) == 0 {
			continue
		}
		kids, ok := insertAdjIn(c.Children, targetID, node, after)
		if !ok {
			continue
		}
		repl := c.shallowCopy()
		repl.Children = kids
		out := copySlice(list)
		out[i] = repl
		return out, true
	}
	return list, false
}

// AppendChild appends node to the children of the container with the
// given id. ok is false when the container is absent or not a container.
func AppendChild(t Tree, containerID string, node *Component) (Tree, bool) {
	return appendChildIn(t, containerID, node)
}

func appendChildIn(list []*Component, containerID string, node *Component) ([]*Component, bool) {
	for i, c := range list {
		if c == nil || c.ID != containerID {
			continue
		}
		if !c.IsContainer() {
			return list, false
		}
		repl := c.shallowCopy()
		kids := make([]*Component, 0, len(c.Children)+1)
		kids = append(kids, c.Children...)
		repl.Children = append(kids, node)
		out := copySlice(list)
		out[i] = repl
		return out, true
	}
	for i, c := range list {
		if c == nil || len(c.Children) == 0 {
			continue
		}
		kids, ok := appendChildIn(c.Children, containerID, node)
		if !ok {
			continue
		}
		repl := c.shallowCopy()
		repl.Children = kids
		out := copySlice(list)
		out[i] = repl
		return out, true
	}
	return list, false
}

// ReplaceNode swaps the component with the given id for repl, keeping its
// position. ok is false when the id is absent.
func ReplaceNode(t Tree, id string, repl *Component) (Tree, bool) {
	return replaceIn(t, id, repl)
}

func replaceIn(list []*Component, id string, repl *Component) ([]*Component, bool) {
	for i, c := range list {
		if c == nil || c.ID != id {
			continue
		}
		out := copySlice(list)
		out[i] = repl
		return out, true
	}
	for i, c := range list {
		if c == nil || len(c.Children) == 0 {
			continue
		}
		kids, ok := replaceIn(c.Children, id, repl)
		if !ok {
			continue
		}
		parent := c.shallowCopy()
		parent.Children = kids
		out := copySlice(list)
		out[i] = parent
		return out, true
	}
	return list, false
}

func copySlice(list []*Component) []*Component {
	out := make([]*Component, len(list))
	copy(out, list)
	return out
}
