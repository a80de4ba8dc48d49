package form

import "fmt"

// Structural validation. The engine maintains these invariants on every
// mutation; Check exists so tests and tooling can verify a tree that
// arrived from outside (imports, hand-built fixtures).

// Violation codes.
const (
	CodeDuplicateID   = "duplicate-id"
	CodeUnknownKind   = "unknown-kind"
	CodeRowCapacity   = "row-capacity"
	CodeRowNested     = "row-nested"
	CodeRowDegenerate = "row-degenerate"
	CodeLeafChildren  = "leaf-children"
)

// Violation represents a single structural invariant failure.
type Violation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	NodeID  string `json:"nodeId,omitempty"`
}

func (v Violation) Error() string {
	if v.NodeID != "" {
		return fmt.Sprintf("%s: %s (node: %s)", v.Code, v.Message, v.NodeID)
	}
	return fmt.Sprintf("%s: %s", v.Code, v.Message)
}

// Check validates the structural invariants of a tree:
//   - every id is unique across the whole tree
//   - every kind is a known variant
//   - rows hold 2-4 children and are never nested inside another row
//   - only containers carry children
//
// The traversal reuses the visited-id guard, so a cyclic tree reports its
// duplicate ids instead of hanging.
func Check(t Tree) []Violation {
	var out []Violation
	seen := make(map[string]bool)
	checkIn(t, false, seen, &out)
	return out
}

func checkIn(list []*Component, inRow bool, seen map[string]bool, out *[]Violation) {
	for _, c := range list {
		if c == nil {
			continue
		}
		if seen[c.ID] {
			*out = append(*out, Violation{
				Code:    CodeDuplicateID,
				Message: "id appears more than once in the tree",
				NodeID:  c.ID,
			})
			continue // do not descend; this is how cycles terminate
		}
		seen[c.ID] = true

		if !c.Kind.Valid() {
			*out = append(*out, Violation{
				Code:    CodeUnknownKind,
				Message: fmt.Sprintf("unknown component kind %q", c.Kind),
				NodeID:  c.ID,
			})
		}
		if !c.IsContainer() && len(c.Children) > 0 {
			*out = append(*out, Violation{
				Code:    CodeLeafChildren,
				Message: fmt.Sprintf("leaf kind %q carries children", c.Kind),
				NodeID:  c.ID,
			})
		}
		if c.IsRow() {
			if inRow {
				*out = append(*out, Violation{
					Code:    CodeRowNested,
					Message: "row container nested inside another row",
					NodeID:  c.ID,
				})
			}
			if len(c.Children) > RowCapacity {
				*out = append(*out, Violation{
					Code:    CodeRowCapacity,
					Message: fmt.Sprintf("row holds %d children, capacity is %d", len(c.Children), RowCapacity),
					NodeID:  c.ID,
				})
			}
			if len(c.Children) < 2 {
				*out = append(*out, Violation{
					Code:    CodeRowDegenerate,
					Message: fmt.Sprintf("row holds %d children, dissolution should have removed it", len(c.Children)),
					NodeID:  c.ID,
				})
			}
		}
		checkIn(c.Children, inRow || c.IsRow(), seen, out)
	}
}
