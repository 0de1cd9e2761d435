package engine

// Remove reverses records from the top of the stack until it reaches a
// choice point it can resume, or the stack empties. This is
// spec.md §4.6's `_constraint_remove`: F/N/B/T records are fully
// undone and popped; a Choice record is first rolled back to its
// pre-trial state and then advanced to the next untried candidate
// (same cell, or the next cell in its saved order) — if that succeeds
// the (mutated) record stays on top and Remove returns true so the
// caller's fixpoint loop can resume from here. If a Choice record has
// no more candidates anywhere in its saved order, it too is popped and
// unwinding continues to the choice point below it.
func (e *Engine) Remove() bool {
	for {
		rec := e.Stack.Top()
		if rec == nil {
			return false
		}
		switch rec.Kind {
		case KindForced, KindNecessary:
			e.Board.Untry(rec.Cell)
			e.Stack.Pop()
		case KindBoxClaim:
			for _, c := range rec.Cells {
				e.Topo.Cells[c].Possible[rec.Value]--
			}
			e.Stack.Pop()
		case KindTuple:
			for _, p := range rec.Pairs {
				e.Topo.Cells[p.Cell].Possible[p.Value]--
			}
			e.Stack.Pop()
		case KindChoice:
			e.Board.Untry(rec.Cell)
			if e.advanceChoice(rec) {
				return true
			}
			e.Stack.Pop()
		}
	}
}

// advanceChoice tries the next candidate value for rec's current cell,
// or — once that cell's candidates are exhausted — the next cell in
// rec's saved order, starting again from the smallest candidate value.
// rec is mutated in place, and the Board.Try for the winning
// (cell, value) is applied here; the caller does not re-apply it.
func (e *Engine) advanceChoice(rec *Record) bool {
	for v := rec.Value + 1; v < e.alphabetLen; v++ {
		if e.Topo.Cells[rec.Cell].Possible[v] == 0 {
			e.Board.Try(rec.Cell, v)
			rec.Value = v
			return true
		}
	}
	for idx := rec.CellOrderIdx + 1; idx < len(rec.CellOrder); idx++ {
		cell := rec.CellOrder[idx]
		if e.Topo.Cells[cell].Content != 0 {
			continue
		}
		for v := 1; v < e.alphabetLen; v++ {
			if e.Topo.Cells[cell].Possible[v] == 0 {
				e.Board.Try(cell, v)
				rec.Cell = cell
				rec.Value = v
				rec.CellOrderIdx = idx
				return true
			}
		}
	}
	return false
}
