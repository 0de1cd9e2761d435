// Package topology parses the cell/set membership description and
// builds the cells, named sets, and pairwise set-intersections that the
// rest of the solver operates on.
package topology

import (
	"fmt"
	"sort"
	"strings"
)

// Cell is a slot that holds at most one symbol. Membership is the list
// of set names this cell belongs to, sorted by name. Content and
// Possible are reset by the board on each `problem` call; Topology leaves
// them unallocated and board.Reset allocates them.
type Cell struct {
	Index      int
	Membership []string

	Content  int   // current symbol index; 0 means unassigned
	Possible []int // possible[v] counter per symbol index; v is legal iff 0
}

// Set is a named collection of cells that must contain distinct
// non-empty symbols. Membership is the ordered list of member cell
// indexes, in order of first appearance in the topology spec.
type Set struct {
	Name       string
	Membership []int

	Content []int // content[v] = count of member cells currently holding v
	Free    int   // number of member cells with Content == 0
}

// Topology is the parsed cell/set layout. It persists across problem
// loads; Topology itself never writes the mutable Content/Possible/Free
// fields, which board.BoardState and the engine own.
type Topology struct {
	Cells         []*Cell
	Sets          map[string]*Set
	SetNames      []string // sorted, for deterministic iteration
	Intersections map[string][]int
	LargestSet    int
}

func intersectionKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "," + b
}

// Parse builds a Topology from a whitespace-separated list of cell
// specs, each a comma-separated list of set names. Line breaks count as
// whitespace. It does not validate largest-set-vs-alphabet; that check
// happens when a problem is loaded, once the alphabet is known.
func Parse(spec string) (*Topology, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, fmt.Errorf("topology: empty specification")
	}
	t := &Topology{
		Cells:         make([]*Cell, 0, len(fields)),
		Sets:          make(map[string]*Set),
		Intersections: make(map[string][]int),
	}
	for cellIdx, field := range fields {
		names := strings.Split(field, ",")
		for i, n := range names {
			names[i] = strings.TrimSpace(n)
			if names[i] == "" {
				return nil, fmt.Errorf("topology: cell %d has an empty set name", cellIdx)
			}
		}
		sort.Strings(names)

		cell := &Cell{Index: cellIdx, Membership: names}
		t.Cells = append(t.Cells, cell)

		// Every pair of names already on this (sorted) cell shares this
		// cell, so it belongs in their intersection.
		for i := 0; i < len(names); i++ {
			for j := i + 1; j < len(names); j++ {
				key := intersectionKey(names[i], names[j])
				t.Intersections[key] = append(t.Intersections[key], cellIdx)
			}
		}

		for _, name := range names {
			set, ok := t.Sets[name]
			if !ok {
				set = &Set{Name: name}
				t.Sets[name] = set
				t.SetNames = append(t.SetNames, name)
			}
			set.Membership = append(set.Membership, cellIdx)
			if len(set.Membership) > t.LargestSet {
				t.LargestSet = len(set.Membership)
			}
		}
	}
	sort.Strings(t.SetNames)
	return t, nil
}

// SetsOf returns the sets a cell belongs to, in the cell's sorted
// membership order.
func (t *Topology) SetsOf(cell *Cell) []*Set {
	out := make([]*Set, len(cell.Membership))
	for i, name := range cell.Membership {
		out[i] = t.Sets[name]
	}
	return out
}

// IntersectionPairs returns, in deterministic (sorted) order, every pair
// of distinct set names that share at least one cell together with the
// shared cell indexes. Pairs sharing fewer than two cells carry no
// information for the B rule and are skipped by callers.
func (t *Topology) IntersectionPairs() []IntersectionPair {
	keys := make([]string, 0, len(t.Intersections))
	for k := range t.Intersections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]IntersectionPair, 0, len(keys))
	for _, k := range keys {
		a, b, _ := strings.Cut(k, ",")
		out = append(out, IntersectionPair{A: a, B: b, Cells: t.Intersections[k]})
	}
	return out
}

// IntersectionPair is a pair of set names that share one or more cells.
type IntersectionPair struct {
	A, B  string
	Cells []int
}
