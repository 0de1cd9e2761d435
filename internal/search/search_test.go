package search

import (
	"testing"

	"github.com/exactcover/general/internal/board"
	"github.com/exactcover/general/internal/engine"
	"github.com/exactcover/general/internal/topology"
)

func newSearch(t *testing.T, spec string, alphabetLen, iterationCap int) (*topology.Topology, *board.BoardState, *engine.Engine, *Search) {
	t.Helper()
	topo, err := topology.Parse(spec)
	if err != nil {
		t.Fatalf("topology.Parse: %v", err)
	}
	b := board.New(topo)
	if err := b.Reset(alphabetLen); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	e := engine.New(b, topo, alphabetLen, &engine.Stack{})
	return topo, b, e, New(b, topo, alphabetLen, e, iterationCap)
}

func TestChoosePicksFewestCandidatesCell(t *testing.T) {
	topo, b, _, s := newSearch(t, "r0 r1 r2", 5, 0)
	// cell 0 has 2 remaining candidates, cell 1 has 1, cell 2 has 4: the
	// search must choose cell 1 first regardless of index order.
	for _, v := range []int{2, 3} {
		topo.Cells[0].Possible[v]++
	}
	for _, v := range []int{2, 3, 4} {
		topo.Cells[1].Possible[v]++
	}

	chose, err := s.Choose()
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if !chose {
		t.Fatal("Choose() = false, want true")
	}
	rec := s.Eng.Stack.Top()
	if rec.Kind != engine.KindChoice || rec.Cell != 1 {
		t.Fatalf("chose cell %d, want cell 1 (fewest candidates)", rec.Cell)
	}
	if b.Topo.Cells[1].Content != 1 {
		t.Fatalf("cell 1 Content = %d, want 1 (smallest legal candidate)", b.Topo.Cells[1].Content)
	}
}

func TestChooseReturnsFalseWhenBoardComplete(t *testing.T) {
	_, b, _, s := newSearch(t, "r0", 2, 0)
	b.Try(0, 1)
	chose, err := s.Choose()
	if err != nil {
		t.Fatalf("Choose: %v", err)
	}
	if chose {
		t.Fatal("Choose() = true on a fully assigned board, want false")
	}
}

func TestChooseReportsTooHardAtIterationCap(t *testing.T) {
	// two single-cell, unconnected sets with a cap of 1: the first
	// Choose succeeds, the second exceeds the cumulative push budget
	// even though the live stack still holds only one Choice record
	// each time (nothing has backtracked).
	_, _, _, s := newSearch(t, "r0 r1", 3, 1)
	chose, err := s.Choose()
	if err != nil || !chose {
		t.Fatalf("first Choose() = (%v, %v), want (true, nil)", chose, err)
	}
	_, err = s.Choose()
	if _, ok := err.(ErrTooHard); !ok {
		t.Fatalf("second Choose() err = %v (%T), want ErrTooHard", err, err)
	}
}

func TestChooseBudgetSurvivesBacktracking(t *testing.T) {
	// the cumulative push counter must not shrink when the live stack
	// does: two pushes followed by an unwind still counts as two
	// pushes against the cap.
	_, _, e, s := newSearch(t, "r0 r1", 3, 2)
	if _, err := s.Choose(); err != nil {
		t.Fatalf("first Choose(): %v", err)
	}
	if _, err := s.Choose(); err != nil {
		t.Fatalf("second Choose(): %v", err)
	}
	e.Stack.Pop()
	_, err := s.Choose()
	if _, ok := err.(ErrTooHard); !ok {
		t.Fatalf("Choose() after backtracking err = %v (%T), want ErrTooHard", err, err)
	}
}
