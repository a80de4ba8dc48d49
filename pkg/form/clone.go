package form

// Copy returns a deep copy of the component with ids preserved. Used for
// history snapshots and document export, where the copy must stay
// equivalent to the original while being independently mutable.
func Copy(c *Component) *Component {
	if c == nil {
		return nil
	}
	d := *c
	if c.Options != nil {
		d.Options = make([]Option, len(c.Options))
		copy(d.Options, c.Options)
	}
	if c.Validation != nil {
		v := *c.Validation
		d.Validation = &v
	}
	if c.Children != nil {
		d.Children = make([]*Component, len(c.Children))
		for i, child := range c.Children {
			d.Children[i] = Copy(child)
		}
	}
	return &d
}

// CopyTree deep-copies a whole tree with ids preserved.
func CopyTree(t Tree) Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for i, c := range t {
		out[i] = Copy(c)
	}
	return out
}

// CloneComponent duplicates a component for re-insertion: every node in
// the subtree and every option entry gets a fresh id, and the top-level
// label gets the "(Copy)" suffix convention so duplicates are
// distinguishable on the canvas.
func CloneComponent(c *Component) *Component {
	clone := cloneFresh(c)
	if clone != nil && clone.Label != "" {
		clone.Label += " (Copy)"
	}
	return clone
}

func cloneFresh(c *Component) *Component {
	if c == nil {
		return nil
	}
	d := *c
	d.ID = NewID()
	if c.Options != nil {
		d.Options = make([]Option, len(c.Options))
		for i, opt := range c.Options {
			opt.ID = NewID()
			d.Options[i] = opt
		}
	}
	if c.Validation != nil {
		v := *c.Validation
		d.Validation = &v
	}
	if c.Children != nil {
		d.Children = make([]*Component, len(c.Children))
		for i, child := range c.Children {
			d.Children[i] = cloneFresh(child)
		}
	}
	return &d
}
