// Package engine implements the deductive rules (F, N, B, T) that prune
// possibilities and assign cells before a solve falls back to
// backtracking search, plus the undo-capable stack both share.
package engine

import (
	"github.com/exactcover/general/internal/board"
	"github.com/exactcover/general/internal/topology"
)

// Result reports what a fixpoint step did.
type Result int

const (
	// Stalled means no rule applied; control passes to backtrack search.
	Stalled Result = iota
	// Progressed means a rule assigned a cell or eliminated possibilities;
	// the caller should restart the fixpoint from F.
	Progressed
	// DeadEnd means the forced rule found a cell with no legal value;
	// the caller must backtrack.
	DeadEnd
)

// String names a Result for debug-level trace logging.
func (r Result) String() string {
	switch r {
	case Stalled:
		return "Stalled"
	case Progressed:
		return "Progressed"
	case DeadEnd:
		return "DeadEnd"
	default:
		return "Unknown"
	}
}

// Engine runs the F/N/B/T fixpoint loop over a board, pushing every
// applied rule onto a shared Stack.
type Engine struct {
	Board *board.BoardState
	Topo  *topology.Topology
	Stack *Stack

	alphabetLen int
}

// New wires an Engine to a board and the stack it shares with the
// backtracking search.
func New(b *board.BoardState, t *topology.Topology, alphabetLen int, s *Stack) *Engine {
	return &Engine{Board: b, Topo: t, Stack: s, alphabetLen: alphabetLen}
}

// Step applies the first rule (in F, N, B, T order) that makes
// progress, pushing its record. Callers should call Step repeatedly
// until it reports Stalled or DeadEnd.
func (e *Engine) Step() Result {
	if r := e.applyForced(); r != Stalled {
		return r
	}
	if e.applyNecessary() {
		return Progressed
	}
	if e.applyBoxClaim() {
		return Progressed
	}
	if e.applyTuples() {
		return Progressed
	}
	return Stalled
}

// RunToFixpoint calls Step until it stops making progress, returning
// the terminal Stalled or DeadEnd result.
func (e *Engine) RunToFixpoint() Result {
	for {
		r := e.Step()
		if r != Progressed {
			return r
		}
	}
}

// applyForced implements the F rule: the first unassigned cell (in
// index order) with exactly one legal value is assigned that value; the
// first with zero legal values aborts the scan as a DeadEnd.
func (e *Engine) applyForced() Result {
	for _, cell := range e.Topo.Cells {
		if cell.Content != 0 {
			continue
		}
		var only int
		count := 0
		for v := 1; v < e.alphabetLen; v++ {
			if cell.Possible[v] == 0 {
				count++
				only = v
				if count > 1 {
					break
				}
			}
		}
		switch count {
		case 0:
			return DeadEnd
		case 1:
			e.Board.Try(cell.Index, only)
			e.Stack.Push(&Record{Kind: KindForced, Cell: cell.Index, Value: only})
			return Progressed
		}
	}
	return Stalled
}

// applyNecessary implements the N rule: for each set (sorted by name)
// and each value, if exactly one unassigned member can still take that
// value, it must hold it.
func (e *Engine) applyNecessary() bool {
	for _, name := range e.Topo.SetNames {
		set := e.Topo.Sets[name]
		for v := 1; v < e.alphabetLen; v++ {
			if set.Content[v] != 0 {
				continue
			}
			only := -1
			count := 0
			for _, ci := range set.Membership {
				cell := e.Topo.Cells[ci]
				if cell.Content != 0 {
					continue
				}
				if cell.Possible[v] == 0 {
					count++
					only = ci
					if count > 1 {
						break
					}
				}
			}
			if count == 1 {
				e.Board.Try(only, v)
				e.Stack.Push(&Record{Kind: KindNecessary, Cell: only, Value: v})
				return true
			}
		}
	}
	return false
}
