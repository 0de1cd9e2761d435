package engine

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/exactcover/general/internal/topology"
)

const (
	minTupleSize = 2
	maxTupleSize = 4
)

// applyTuples implements the T rule (spec.md §4.4.4): naked and hidden
// tuples of order 2 through 4, enumerated lexicographically via
// gonum's combin.Combinations the way a classic subset-search over a
// small set of open cells is generated incrementally.
func (e *Engine) applyTuples() bool {
	for _, name := range e.Topo.SetNames {
		set := e.Topo.Sets[name]
		open := openCells(e.Topo, set)
		if len(open) == 0 {
			continue
		}
		contributed := e.contributedCounts(open)

		maxK := maxTupleSize
		if len(open) < maxK {
			maxK = len(open)
		}
		for k := minTupleSize; k <= maxK; k++ {
			combos := combin.Combinations(len(open), k)
			for _, combo := range combos {
				subset := make([]int, k)
				for i, idx := range combo {
					subset[i] = open[idx]
				}
				if pairs := e.tupleElimination(subset, open, contributed, k); len(pairs) > 0 {
					for _, p := range pairs {
						e.Topo.Cells[p.Cell].Possible[p.Value]++
					}
					e.Stack.Push(&Record{Kind: KindTuple, Pairs: pairs})
					return true
				}
			}
		}
	}
	return false
}

// openCells returns a set's unassigned members, in membership order.
func openCells(t *topology.Topology, set *topology.Set) []int {
	var out []int
	for _, ci := range set.Membership {
		if t.Cells[ci].Content == 0 {
			out = append(out, ci)
		}
	}
	return out
}

func (e *Engine) contributedCounts(open []int) []int {
	contributed := make([]int, e.alphabetLen)
	for _, ci := range open {
		cell := e.Topo.Cells[ci]
		for v := 1; v < e.alphabetLen; v++ {
			if cell.Possible[v] == 0 {
				contributed[v]++
			}
		}
	}
	return contributed
}

// tupleElimination evaluates one k-subset of a set's open cells against
// the naked/hidden tuple conditions and returns the eliminations it
// licenses, if any.
func (e *Engine) tupleElimination(subset, open, contributed []int, k int) []Elimination {
	tcontr := make([]int, e.alphabetLen)
	inSubset := make(map[int]bool, len(subset))
	for _, ci := range subset {
		inSubset[ci] = true
		cell := e.Topo.Cells[ci]
		for v := 1; v < e.alphabetLen; v++ {
			if cell.Possible[v] == 0 {
				tcontr[v]++
			}
		}
	}
	discrete := 0
	for v := 1; v < e.alphabetLen; v++ {
		if tcontr[v] > 0 {
			discrete++
		}
	}

	var out []Elimination
	switch {
	case discrete == k:
		// Naked tuple: these k cells' candidates are confined to k
		// values, so no other open cell in the set may offer them.
		for v := 1; v < e.alphabetLen; v++ {
			if tcontr[v] == 0 || contributed[v] <= tcontr[v] {
				continue
			}
			for _, ci := range open {
				if inSubset[ci] {
					continue
				}
				cell := e.Topo.Cells[ci]
				if cell.Possible[v] == 0 {
					out = append(out, Elimination{Cell: ci, Value: v})
				}
			}
		}
	case discrete > k:
		within := 0
		for v := 1; v < e.alphabetLen; v++ {
			if tcontr[v] > 0 && contributed[v] == tcontr[v] {
				within++
			}
		}
		if within < k {
			return nil
		}
		// Hidden tuple: k values are confined to these k cells, so the
		// cells may not also carry any other candidate.
		for v := 1; v < e.alphabetLen; v++ {
			if tcontr[v] == 0 || contributed[v] <= tcontr[v] {
				continue
			}
			for _, ci := range subset {
				cell := e.Topo.Cells[ci]
				if cell.Possible[v] == 0 {
					out = append(out, Elimination{Cell: ci, Value: v})
				}
			}
		}
	}
	return out
}
