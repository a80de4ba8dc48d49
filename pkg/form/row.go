package form

// Row lifecycle. Rows group 2-4 components side by side; a row observed
// with fewer than two children no longer groups anything and is folded
// away. Dissolution runs inside the same mutation that shrank the row,
// so callers never see the degenerate state.

// dissolveRow resolves a possibly-degenerate row. It returns the
// component to keep at the row's position and gone=true when the row had
// no children left and should be deleted outright. Non-rows and healthy
// rows are returned as-is.
func dissolveRow(c *Component) (keep *Component, gone bool) {
	if !c.IsRow() || len(c.Children) >= 2 {
		return c, false
	}
	if len(c.Children) == 0 {
		return nil, true
	}
	return c.Children[0], false
}

// Dissolve applies the dissolution check to the container with the given
// id: a row with no children is deleted from its parent collection, a row
// with one child is replaced in place by that child. Unknown ids and
// healthy containers return the tree unchanged.
func Dissolve(t Tree, containerID string) Tree {
	out, _ := dissolveIn(t, containerID)
	return out
}

func dissolveIn(list []*Component, containerID string) ([]*Component, bool) {
	for i, c := range list {
		if c == nil || c.ID != containerID {
			continue
		}
		keep, gone := dissolveRow(c)
		if gone {
			out := make([]*Component, 0, len(list)-1)
			out = append(out, list[:i]...)
			out = append(out, list[i+1:]...)
			return out, true
		}
		if keep == c {
			return list, true
		}
		out := copySlice(list)
		out[i] = keep
		return out, true
	}
	for i, c := range list {
		if c == nil || len(c.Children) == 0 {
			continue
		}
		kids, ok := dissolveIn(c.Children, containerID)
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

// NewRow wraps the given children in a fresh row container.
func NewRow(children ...*Component) *Component {
	return &Component{
		ID:       NewID(),
		Kind:     KindRow,
		Children: children,
	}
}
