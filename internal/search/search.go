// Package search implements the depth-first fallback that drives
// exploration once the deductive fixpoint stalls: it picks the
// unassigned cell with fewest remaining possibilities and pushes a
// Choice record onto the same stack the constraint engine uses, so
// resuming after a reported solution explores the next one.
package search

import (
	"sort"

	"github.com/exactcover/general/internal/board"
	"github.com/exactcover/general/internal/engine"
	"github.com/exactcover/general/internal/topology"
)

// Search drives backtracking on top of a shared Engine/Stack/Board.
type Search struct {
	Board *board.BoardState
	Topo  *topology.Topology
	Eng   *engine.Engine

	alphabetLen  int
	iterationCap int // 0 disables

	// pushCount is the cumulative number of Choice pushes made since
	// the last ResetBudget, regardless of how many have since been
	// unwound by backtracking. spec.md §5 bounds iteration_limit on
	// total "?" pushes for a solution call, not live search depth.
	pushCount int
}

// New wires a Search to the same board/topology/stack the engine uses.
func New(b *board.BoardState, t *topology.Topology, alphabetLen int, e *engine.Engine, iterationCap int) *Search {
	return &Search{Board: b, Topo: t, Eng: e, alphabetLen: alphabetLen, iterationCap: iterationCap}
}

// ResetBudget clears the cumulative push counter. Callers invoke this
// once at the start of each Solution call so the iteration cap applies
// per call, not across the resumable solver's whole lifetime.
func (s *Search) ResetBudget() {
	s.pushCount = 0
}

// ErrTooHard is returned by Choose when the iteration cap is exceeded.
type ErrTooHard struct{}

func (ErrTooHard) Error() string { return "iteration limit exceeded" }

// Choose selects the unassigned cell with the fewest remaining
// possibilities (ties broken by cell index), picks its smallest legal
// candidate, applies it, and pushes a Choice record. It reports false
// if there are no unassigned cells left (the board is already
// complete) or the iteration cap was just exceeded.
func (s *Search) Choose() (bool, error) {
	if s.iterationCap > 0 && s.pushCount >= s.iterationCap {
		return false, ErrTooHard{}
	}
	order := s.sortedUnassigned()
	if len(order) == 0 {
		return false, nil
	}
	for idx, cell := range order {
		for v := 1; v < s.alphabetLen; v++ {
			if s.Topo.Cells[cell].Possible[v] == 0 {
				s.Board.Try(cell, v)
				s.pushCount++
				s.Eng.Stack.Push(&engine.Record{
					Kind:         engine.KindChoice,
					Cell:         cell,
					Value:        v,
					CellOrder:    order,
					CellOrderIdx: idx,
				})
				return true, nil
			}
		}
	}
	return false, nil
}

// sortedUnassigned returns every unassigned cell index, ascending by
// remaining possibility count, ties broken by cell index — the
// deterministic ordering spec.md §5 requires for reproducible traces.
func (s *Search) sortedUnassigned() []int {
	var cells []int
	for _, c := range s.Topo.Cells {
		if c.Content == 0 {
			cells = append(cells, c.Index)
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		ci, cj := s.Board.PossibilityCount(cells[i]), s.Board.PossibilityCount(cells[j])
		if ci != cj {
			return ci < cj
		}
		return cells[i] < cells[j]
	})
	return cells
}
