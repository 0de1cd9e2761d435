package engine

import "github.com/exactcover/general/internal/topology"

// applyBoxClaim implements the B rule (spec.md §4.4.3): for every pair
// of sets sharing at least two cells, a value supplied from the
// intersection in only one of the two sets can be eliminated from the
// other set's cells outside the intersection.
func (e *Engine) applyBoxClaim() bool {
	for _, pair := range e.Topo.IntersectionPairs() {
		if len(pair.Cells) < 2 {
			continue
		}
		setA := e.Topo.Sets[pair.A]
		setB := e.Topo.Sets[pair.B]
		inI := make(map[int]bool, len(pair.Cells))
		for _, c := range pair.Cells {
			inI[c] = true
		}

		for v := 1; v < e.alphabetLen; v++ {
			if !e.suppliedBy(pair.Cells, v) {
				continue
			}
			outsideA := e.suppliedOutside(setA, inI, v)
			outsideB := e.suppliedOutside(setB, inI, v)
			if outsideA == outsideB {
				continue // supplied outside in both, or neither: no claim
			}
			other := setB
			if outsideA {
				other = setA
			}
			cells := e.eliminateOutside(other, inI, v)
			if len(cells) > 0 {
				for _, c := range cells {
					e.Topo.Cells[c].Possible[v]++
				}
				e.Stack.Push(&Record{Kind: KindBoxClaim, Cells: cells, Value: v})
				return true
			}
		}
	}
	return false
}

// suppliedBy reports whether any unassigned cell in the given set can
// still take v.
func (e *Engine) suppliedBy(cells []int, v int) bool {
	for _, ci := range cells {
		cell := e.Topo.Cells[ci]
		if cell.Content == 0 && cell.Possible[v] == 0 {
			return true
		}
	}
	return false
}

// suppliedOutside reports whether a set has an unassigned, v-capable
// cell outside the intersection membership set inI.
func (e *Engine) suppliedOutside(set *topology.Set, inI map[int]bool, v int) bool {
	for _, ci := range set.Membership {
		if inI[ci] {
			continue
		}
		cell := e.Topo.Cells[ci]
		if cell.Content == 0 && cell.Possible[v] == 0 {
			return true
		}
	}
	return false
}

// eliminateOutside collects the unassigned, still-v-capable cells of a
// set outside the intersection, so the caller can suppress v there.
func (e *Engine) eliminateOutside(set *topology.Set, inI map[int]bool, v int) []int {
	var out []int
	for _, ci := range set.Membership {
		if inI[ci] {
			continue
		}
		cell := e.Topo.Cells[ci]
		if cell.Content == 0 && cell.Possible[v] == 0 {
			out = append(out, ci)
		}
	}
	return out
}
