// Package board implements the reversible, incrementally-updated
// possibility bookkeeping that sits on top of a topology: assigning or
// clearing a cell's content updates every set it belongs to and every
// possibility counter those sets touch, in O(set size) time, and the
// same update undoes itself symmetrically.
package board

import (
	"fmt"

	"github.com/exactcover/general/internal/topology"
)

// BoardState owns the mutable half of a Topology: cell content, per-cell
// possibility counters, and per-set content/free counts. It is reset by
// Reset on every `problem` load; the Topology's shape (cells, sets,
// membership) is untouched.
type BoardState struct {
	Topo            *topology.Topology
	AlphabetLen     int
	CellsUnassigned int
}

// New wires a BoardState to a topology; call Reset before any Try.
func New(t *topology.Topology) *BoardState {
	return &BoardState{Topo: t}
}

// Reset reallocates every cell's Possible counter and every set's
// Content counter to alphabetLen entries, clears all assignments, and
// enforces invariant 1 (largest_set <= alphabetLen-1). It must be called
// once per `problem` load, before any givens are applied.
func (b *BoardState) Reset(alphabetLen int) error {
	if b.Topo.LargestSet > alphabetLen-1 {
		return fmt.Errorf("largest set has %d cells but only %d non-empty symbols are available", b.Topo.LargestSet, alphabetLen-1)
	}
	b.AlphabetLen = alphabetLen
	for _, c := range b.Topo.Cells {
		c.Content = 0
		c.Possible = make([]int, alphabetLen)
	}
	for _, s := range b.Topo.Sets {
		s.Content = make([]int, alphabetLen)
		s.Free = len(s.Membership)
	}
	b.CellsUnassigned = len(b.Topo.Cells)
	return nil
}

// Snapshot captures the full mutable state of every cell and set, for
// the "undo the whole stack returns to the post-problem state" property
// test (spec.md invariant 4).
type Snapshot struct {
	cellContent []int
	cellPoss    [][]int
	setContent  map[string][]int
	setFree     map[string]int
	unassigned  int
}

// Snapshot records the current mutable state for later comparison.
func (b *BoardState) Snapshot() Snapshot {
	s := Snapshot{
		cellContent: make([]int, len(b.Topo.Cells)),
		cellPoss:    make([][]int, len(b.Topo.Cells)),
		setContent:  make(map[string][]int, len(b.Topo.Sets)),
		setFree:     make(map[string]int, len(b.Topo.Sets)),
		unassigned:  b.CellsUnassigned,
	}
	for i, c := range b.Topo.Cells {
		s.cellContent[i] = c.Content
		poss := make([]int, len(c.Possible))
		copy(poss, c.Possible)
		s.cellPoss[i] = poss
	}
	for name, set := range b.Topo.Sets {
		content := make([]int, len(set.Content))
		copy(content, set.Content)
		s.setContent[name] = content
		s.setFree[name] = set.Free
	}
	return s
}

// Equal reports bitwise equality with another snapshot.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.unassigned != other.unassigned {
		return false
	}
	if len(s.cellContent) != len(other.cellContent) {
		return false
	}
	for i := range s.cellContent {
		if s.cellContent[i] != other.cellContent[i] {
			return false
		}
		if len(s.cellPoss[i]) != len(other.cellPoss[i]) {
			return false
		}
		for v := range s.cellPoss[i] {
			if s.cellPoss[i][v] != other.cellPoss[i][v] {
				return false
			}
		}
	}
	if len(s.setContent) != len(other.setContent) {
		return false
	}
	for name, content := range s.setContent {
		oc, ok := other.setContent[name]
		if !ok || len(oc) != len(content) {
			return false
		}
		for v := range content {
			if content[v] != oc[v] {
				return false
			}
		}
		if s.setFree[name] != other.setFree[name] {
			return false
		}
	}
	return true
}

// Try attempts to place newVal in the cell at cellIdx (0 clears it). It
// reports whether the placement succeeded; on failure (the symbol is
// already present in one of the cell's sets) the board is left
// completely unchanged and the caller must not push an undo record.
func (b *BoardState) Try(cellIdx, newVal int) bool {
	cell := b.Topo.Cells[cellIdx]
	old := cell.Content
	if newVal == old {
		return true
	}
	sets := b.Topo.SetsOf(cell)
	if newVal > 0 {
		for _, s := range sets {
			if s.Content[newVal] != 0 {
				return false
			}
		}
	}

	cell.Content = newVal
	if old == 0 && newVal != 0 {
		b.CellsUnassigned--
	} else if old != 0 && newVal == 0 {
		b.CellsUnassigned++
	}

	for _, s := range sets {
		s.Content[old]--
		if old > 0 {
			s.Free++
			for _, m := range s.Membership {
				b.Topo.Cells[m].Possible[old]--
			}
		}
		s.Content[newVal]++
		if newVal > 0 {
			s.Free--
			for _, m := range s.Membership {
				b.Topo.Cells[m].Possible[newVal]++
			}
		}
	}
	return true
}

// Untry clears a cell, exactly undoing whatever value it held. It is a
// thin, symmetrically-named wrapper over Try(cellIdx, 0): Try's
// bookkeeping is already fully reversible, so clearing is simply placing
// the empty symbol.
func (b *BoardState) Untry(cellIdx int) {
	b.Try(cellIdx, 0)
}

// IsPossible reports whether v remains a legal placement for the cell.
func (b *BoardState) IsPossible(cellIdx, v int) bool {
	return b.Topo.Cells[cellIdx].Possible[v] == 0
}

// PossibilityCount counts symbols still legal for an unassigned cell.
func (b *BoardState) PossibilityCount(cellIdx int) int {
	cell := b.Topo.Cells[cellIdx]
	n := 0
	for v := 1; v < b.AlphabetLen; v++ {
		if cell.Possible[v] == 0 {
			n++
		}
	}
	return n
}
