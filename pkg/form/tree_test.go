package form

import "testing"

// ---------------------------------------------------------------------------
// Fixture helpers
// ---------------------------------------------------------------------------

func leaf(id string) *Component {
	return &Component{ID: id, Kind: KindTextInput, Label: "Field " + id}
}

func row(id string, children ...*Component) *Component {
	return &Component{ID: id, Kind: KindRow, Children: children}
}

func column(id string, children ...*Component) *Component {
	return &Component{ID: id, Kind: KindColumn, Children: children}
}

func ids(t Tree) []string {
	out := make([]string, len(t))
	for i, c := range t {
		out[i] = c.ID
	}
	return out
}

func wantIDs(t *testing.T, got Tree, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d top-level components %v, want %d %v", len(got), ids(got), len(want), want)
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i].ID, want[i])
		}
	}
}

// ---------------------------------------------------------------------------
// Find
// ---------------------------------------------------------------------------

func TestFindAtDepth(t *testing.T) {
	tree := Tree{
		leaf("a"),
		column("col", row("r", leaf("x"), leaf("y"))),
	}

	for _, id := range []string{"a", "col", "r", "x", "y"} {
		if got := Find(tree, id); got == nil || got.ID != id {
			t.Errorf("Find(%q) = %v, want the node", id, got)
		}
	}
	if got := Find(tree, "missing"); got != nil {
		t.Errorf("Find(missing) = %v, want nil", got)
	}
	if got := Find(tree, ""); got != nil {
		t.Errorf("Find(\"\") = %v, want nil", got)
	}
}

func TestFindTerminatesOnCyclicTree(t *testing.T) {
	// Hand-corrupted tree: a container that contains itself. Find must
	// return nil instead of recursing forever.
	cyc := column("loop")
	cyc.Children = []*Component{cyc}
	tree := Tree{cyc, leaf("z")}

	if got := Find(tree, "missing"); got != nil {
		t.Errorf("Find on cyclic tree = %v, want nil", got)
	}
	if got := Find(tree, "z"); got == nil {
		t.Error("Find(z) on cyclic tree returned nil, want the node")
	}
}

// ---------------------------------------------------------------------------
// ParentOf
// ---------------------------------------------------------------------------

func TestParentOf(t *testing.T) {
	inner := row("r", leaf("x"), leaf("y"))
	tree := Tree{leaf("a"), column("col", inner)}

	parent, idx, ok := ParentOf(tree, "a")
	if !ok || parent != nil || idx != 0 {
		t.Errorf("ParentOf(a) = (%v, %d, %v), want root index 0", parent, idx, ok)
	}
	parent, idx, ok = ParentOf(tree, "y")
	if !ok || parent == nil || parent.ID != "r" || idx != 1 {
		t.Errorf("ParentOf(y) = (%v, %d, %v), want row r index 1", parent, idx, ok)
	}
	if _, _, ok = ParentOf(tree, "missing"); ok {
		t.Error("ParentOf(missing) reported ok")
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestUpdatePatchesFields(t *testing.T) {
	tree := Tree{column("col", row("r", leaf("x"), leaf("y")))}

	out := Update(tree, "y", Patch{
		Label:    strptr("Renamed"),
		Required: boolptr(true),
	})

	got := Find(out, "y")
	if got.Label != "Renamed" || !got.Required {
		t.Errorf("patched node = %+v, want Renamed/required", got)
	}
	// Untouched fields survive.
	if got.Kind != KindTextInput {
		t.Errorf("patch changed kind to %q", got.Kind)
	}
	// The input tree is unchanged.
	if orig := Find(tree, "y"); orig.Label != "Field y" || orig.Required {
		t.Errorf("input tree mutated: %+v", orig)
	}
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	tree := Tree{leaf("a")}
	out := Update(tree, "missing", Patch{Label: strptr("nope")})
	if len(out) != 1 || out[0] != tree[0] {
		t.Error("Update with unknown id should return the original tree")
	}
}

// ---------------------------------------------------------------------------
// Remove + dissolution
// ---------------------------------------------------------------------------

func TestRemoveTopLevel(t *testing.T) {
	tree := Tree{leaf("a"), leaf("b"), leaf("c")}
	out, removed := Remove(tree, "b")
	if removed == nil || removed.ID != "b" {
		t.Fatalf("removed = %v, want b", removed)
	}
	wantIDs(t, out, "a", "c")
	wantIDs(t, tree, "a", "b", "c") // input unchanged
}

func TestRemoveFromRowDissolvesToSurvivor(t *testing.T) {
	tree := Tree{leaf("a"), row("r", leaf("p"), leaf("q"))}

	out, removed := Remove(tree, "p")
	if removed == nil || removed.ID != "p" {
		t.Fatalf("removed = %v, want p", removed)
	}
	// The row wrapper is gone; q is promoted to the row's old position.
	wantIDs(t, out, "a", "q")
	if Find(out, "r") != nil {
		t.Error("row r should have dissolved")
	}
}

func TestRemoveFromDegenerateRowDeletesRow(t *testing.T) {
	// A row with a single child can only come from external construction;
	// any removal-triggering operation clears it out entirely.
	tree := Tree{row("r", leaf("only")), leaf("b")}

	out, removed := Remove(tree, "only")
	if removed == nil {
		t.Fatal("expected removal of the only child")
	}
	wantIDs(t, out, "b")
}

func TestRemoveKeepsHealthyRow(t *testing.T) {
	tree := Tree{row("r", leaf("x"), leaf("y"), leaf("z"))}

	out, _ := Remove(tree, "z")
	r := Find(out, "r")
	if r == nil || len(r.Children) != 2 {
		t.Fatalf("row should survive with 2 children, got %v", r)
	}
}

func TestRemoveInsideColumnRowDissolves(t *testing.T) {
	tree := Tree{column("col", row("r", leaf("x"), leaf("y")), leaf("tail"))}

	out, _ := Remove(tree, "x")
	col := Find(out, "col")
	if col == nil || len(col.Children) != 2 {
		t.Fatalf("column children = %v", col)
	}
	if col.Children[0].ID != "y" {
		t.Errorf("promoted child should hold the row's position, got %q", col.Children[0].ID)
	}
	if vs := Check(out); len(vs) != 0 {
		t.Errorf("invariant violations after removal: %v", vs)
	}
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	tree := Tree{leaf("a")}
	out, removed := Remove(tree, "missing")
	if removed != nil {
		t.Errorf("removed = %v, want nil", removed)
	}
	wantIDs(t, out, "a")
}

// ---------------------------------------------------------------------------
// MoveWithinSiblings
// ---------------------------------------------------------------------------

func TestMoveWithinSiblings(t *testing.T) {
	tree := Tree{leaf("a"), leaf("b"), leaf("c")}

	wantIDs(t, MoveWithinSiblings(tree, 0, 2), "b", "c", "a")
	wantIDs(t, MoveWithinSiblings(tree, 2, 0), "c", "a", "b")
	wantIDs(t, MoveWithinSiblings(tree, 1, 1), "a", "b", "c")
	wantIDs(t, MoveWithinSiblings(tree, -1, 2), "a", "b", "c")
	wantIDs(t, MoveWithinSiblings(tree, 0, 3), "a", "b", "c")
	wantIDs(t, tree, "a", "b", "c") // input unchanged
}

// ---------------------------------------------------------------------------
// InsertAdjacent / AppendChild / ReplaceNode
// ---------------------------------------------------------------------------

func TestInsertAdjacent(t *testing.T) {
	tree := Tree{leaf("a"), leaf("b")}

	out, ok := InsertAdjacent(tree, "b", leaf("n"), false)
	if !ok {
		t.Fatal("insert before b failed")
	}
	wantIDs(t, out, "a", "n", "b")

	out, ok = InsertAdjacent(tree, "a", leaf("n"), true)
	if !ok {
		t.Fatal("insert after a failed")
	}
	wantIDs(t, out, "a", "n", "b")

	if _, ok = InsertAdjacent(tree, "missing", leaf("n"), true); ok {
		t.Error("insert against missing target reported ok")
	}
}

func TestInsertAdjacentInsideRow(t *testing.T) {
	tree := Tree{row("r", leaf("x"), leaf("y"))}

	out, ok := InsertAdjacent(tree, "x", leaf("n"), true)
	if !ok {
		t.Fatal("insert after x failed")
	}
	r := Find(out, "r")
	if len(r.Children) != 3 || r.Children[1].ID != "n" {
		t.Errorf("row children = %v, want n adjacent to x", ids(r.Children))
	}
}

func TestAppendChild(t *testing.T) {
	tree := Tree{column("col", leaf("x"))}

	out, ok := AppendChild(tree, "col", leaf("n"))
	if !ok {
		t.Fatal("append to column failed")
	}
	col := Find(out, "col")
	if len(col.Children) != 2 || col.Children[1].ID != "n" {
		t.Errorf("column children = %v", ids(col.Children))
	}

	if _, ok = AppendChild(tree, "x", leaf("n")); ok {
		t.Error("append to a leaf reported ok")
	}
}

func TestReplaceNode(t *testing.T) {
	tree := Tree{leaf("a"), column("col", leaf("x"))}

	repl := row("r", leaf("x2"), leaf("n"))
	out, ok := ReplaceNode(tree, "x", repl)
	if !ok {
		t.Fatal("replace failed")
	}
	col := Find(out, "col")
	if len(col.Children) != 1 || col.Children[0].ID != "r" {
		t.Errorf("replacement not in place: %v", ids(col.Children))
	}
	if Find(tree, "r") != nil {
		t.Error("input tree mutated by ReplaceNode")
	}
}

// ---------------------------------------------------------------------------
// Dissolve (exported entry point)
// ---------------------------------------------------------------------------

func TestDissolve(t *testing.T) {
	single := Tree{row("r", leaf("only"))}
	out := Dissolve(single, "r")
	wantIDs(t, out, "only")

	empty := Tree{row("r"), leaf("b")}
	out = Dissolve(empty, "r")
	wantIDs(t, out, "b")

	healthy := Tree{row("r", leaf("x"), leaf("y"))}
	out = Dissolve(healthy, "r")
	if Find(out, "r") == nil {
		t.Error("healthy row should not dissolve")
	}

	unknown := Tree{leaf("a")}
	wantIDs(t, Dissolve(unknown, "missing"), "a")
}
