package general

import (
	"strings"

	"github.com/exactcover/general/internal/engine"
)

// Step is a single applied-constraint record, as exposed to callers.
type Step = engine.Step

// Trace is the read-only view of the applied-constraint stack that
// produced the current state: its RunID ties it back to the
// Problem/Solution call that logged it.
type Trace struct {
	RunID string
	Steps []Step
}

// String renders each step space-joined, the §4.7 pretty-printed form.
func (t Trace) String() string {
	parts := make([]string, len(t.Steps))
	for i, s := range t.Steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// StepTrace returns the sequence of rules applied to reach the current
// state. Retracted records are absent; only rules still standing on
// the stack are shown.
func (g *General) StepTrace() Trace {
	if g.eng == nil {
		return Trace{}
	}
	return Trace{RunID: g.lastRunID, Steps: g.eng.Stack.Steps()}
}

// ConstraintsUsed renders the trace characters applied so far, e.g.
// "FN". A solve that reached Success appends a trailing "." (spec.md §8
// scenario 1); a solve still stalled mid-search does not.
func (g *General) ConstraintsUsed() string {
	if g.eng == nil {
		return ""
	}
	used := g.eng.Stack.ConstraintsUsed()
	if g.loaded && !g.exhausted && g.b != nil && g.b.CellsUnassigned == 0 {
		used += "."
	}
	return used
}
