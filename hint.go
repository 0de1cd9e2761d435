package general

import (
	"errors"

	"github.com/exactcover/general/internal/engine"
)

// Hint applies at most one deductive rule (F before N before B before
// T) and reports the step it took, without running the full fixpoint
// loop or falling back to search. It lets a caller walk through a
// solve one logical deduction at a time instead of jumping straight to
// a finished Solution — the same "one concrete suggestion" shape as a
// puzzle UI's hint button, minus any UI of its own.
func (g *General) Hint() (Step, bool, error) {
	if !g.loaded {
		return Step{}, false, &UsageError{Cause: errHintBeforeProblem}
	}
	if g.b.CellsUnassigned == 0 {
		return Step{}, false, nil
	}
	before := g.eng.Stack.Len()
	result := g.eng.Step()
	if result == engine.DeadEnd {
		return Step{}, false, nil
	}
	if g.eng.Stack.Len() == before {
		return Step{}, false, nil
	}
	steps := g.eng.Stack.Steps()
	return steps[len(steps)-1], true, nil
}

var errHintBeforeProblem = errors.New("hint called before problem")
