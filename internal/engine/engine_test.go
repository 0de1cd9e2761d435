package engine

import (
	"testing"

	"github.com/exactcover/general/internal/board"
	"github.com/exactcover/general/internal/topology"
)

func newEngine(t *testing.T, spec string, alphabetLen int) (*topology.Topology, *board.BoardState, *Engine) {
	t.Helper()
	topo, err := topology.Parse(spec)
	if err != nil {
		t.Fatalf("topology.Parse: %v", err)
	}
	b := board.New(topo)
	if err := b.Reset(alphabetLen); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return topo, b, New(b, topo, alphabetLen, &Stack{})
}

func TestApplyForcedAssignsSoleCandidate(t *testing.T) {
	// two cells sharing a row with value 2 blocked in both, so only one
	// non-empty symbol is open to them: cell 0 is forced to 1, after which
	// cell 1 has no legal value left and the next Step is a dead end.
	topo, _, e := newEngine(t, "r0 r0", 3)
	for _, ci := range []int{0, 1} {
		topo.Cells[ci].Possible[2]++
	}
	if r := e.Step(); r != Progressed {
		t.Fatalf("first Step() = %v, want Progressed", r)
	}
	if got := e.Stack.Top(); got.Kind != KindForced || got.Value != 1 {
		t.Fatalf("record = %+v, want Kind=F Value=1", got)
	}
	if r := e.Step(); r != DeadEnd {
		t.Fatalf("second Step() = %v, want DeadEnd", r)
	}
}

func TestApplyNecessaryHiddenSingle(t *testing.T) {
	topo, _, e := newEngine(t, "r0 r0 r0", 4)
	// value 3 is blocked everywhere in r0 except cell 0, even though cell
	// 0 still has other open candidates (so F alone would not fire).
	topo.Cells[1].Possible[3]++
	topo.Cells[2].Possible[3]++

	r := e.Step()
	if r != Progressed {
		t.Fatalf("Step() = %v, want Progressed", r)
	}
	rec := e.Stack.Top()
	if rec.Kind != KindNecessary || rec.Cell != 0 || rec.Value != 3 {
		t.Fatalf("record = %+v, want Kind=N Cell=0 Value=3", rec)
	}
}

func TestApplyBoxClaimEliminatesOutsideIntersection(t *testing.T) {
	// r0 = {0,1,4}, s0 = {0,1,2,3}; intersection {0,1}. Value 4 is blocked
	// in s0 outside the intersection (cells 2,3) but still open in r0's
	// cell outside the intersection (cell 4): the box claims the value
	// for the intersection and it must be eliminated from r0's cell 4.
	topo, _, e := newEngine(t, "r0,s0 r0,s0 s0 s0 r0", 5)
	topo.Cells[2].Possible[4]++
	topo.Cells[3].Possible[4]++

	r := e.Step()
	if r != Progressed {
		t.Fatalf("Step() = %v, want Progressed", r)
	}
	rec := e.Stack.Top()
	if rec.Kind != KindBoxClaim || rec.Value != 4 {
		t.Fatalf("record = %+v, want Kind=B Value=4", rec)
	}
	if len(rec.Cells) != 1 || rec.Cells[0] != 4 {
		t.Fatalf("eliminated cells = %v, want [4]", rec.Cells)
	}
	if topo.Cells[4].Possible[4] == 0 {
		t.Errorf("cell 4's possibility for 4 was not suppressed")
	}
}

func TestApplyTuplesNakedPair(t *testing.T) {
	// a 4-cell set, 4 symbols: cells 0,1 confined to {1,2} (a naked
	// pair), cells 2,3 fully open. The pair must be eliminated from 2,3.
	topo, _, e := newEngine(t, "r0 r0 r0 r0", 5)
	for _, ci := range []int{0, 1} {
		topo.Cells[ci].Possible[3]++
		topo.Cells[ci].Possible[4]++
	}

	r := e.Step()
	if r != Progressed {
		t.Fatalf("Step() = %v, want Progressed", r)
	}
	rec := e.Stack.Top()
	if rec.Kind != KindTuple {
		t.Fatalf("record kind = %v, want KindTuple", rec.Kind)
	}
	got := map[[2]int]bool{}
	for _, p := range rec.Pairs {
		got[[2]int{p.Cell, p.Value}] = true
	}
	for _, want := range [][2]int{{2, 1}, {2, 2}, {3, 1}, {3, 2}} {
		if !got[want] {
			t.Errorf("eliminations = %v, want to include (cell=%d value=%d)", rec.Pairs, want[0], want[1])
		}
	}
}

func TestRunToFixpointStopsAtStall(t *testing.T) {
	_, _, e := newEngine(t, "r0 r0 r0", 4)
	// nothing forces progress: every cell has every value open.
	if r := e.RunToFixpoint(); r != Stalled {
		t.Fatalf("RunToFixpoint() = %v, want Stalled", r)
	}
	if e.Stack.Len() != 0 {
		t.Errorf("Stack.Len() = %d, want 0 (no rule should have fired)", e.Stack.Len())
	}
}

func TestRunToFixpointChainsForcedAssignments(t *testing.T) {
	// three cells, one set, value 3 blocked in all of them so only two
	// non-empty symbols are open, and value 2 also blocked in cell 0: F
	// forces cell 0 to 1, then cell 1 to 2, and the third cell runs out.
	topo, _, e := newEngine(t, "r0 r0 r0", 4)
	for _, ci := range []int{0, 1, 2} {
		topo.Cells[ci].Possible[3]++
	}
	topo.Cells[0].Possible[2]++
	if r := e.RunToFixpoint(); r != DeadEnd {
		t.Fatalf("RunToFixpoint() = %v, want DeadEnd", r)
	}
}
