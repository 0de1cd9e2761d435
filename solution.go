package general

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/exactcover/general/internal/board"
	"github.com/exactcover/general/internal/engine"
	"github.com/exactcover/general/internal/search"
	"github.com/exactcover/general/internal/symbol"
)

// Solution is resumable: each call returns the next solution, or
// NoSolution once the applied-constraint stack has been fully unwound.
// Calling it again after NoSolution short-circuits to the same status
// without re-searching (spec.md §4.6).
func (g *General) Solution() (string, Status, error) {
	return g.SolutionContext(context.Background())
}

// SolutionContext is Solution with an explicit context.
func (g *General) SolutionContext(ctx context.Context) (string, Status, error) {
	ctx, span := g.startSpan(ctx, "Solution")
	defer span.End()

	if !g.loaded {
		err := &UsageError{Cause: fmt.Errorf("solution called before problem")}
		span.SetStatus(codes.Error, err.Error())
		return "", 0, err
	}

	runID := g.newRunID()
	span.SetAttributes(attribute.String("run_id", runID))
	g.srch.ResetBudget()

	if g.exhausted {
		return "", NoSolution, nil
	}

	if g.eng.Stack.Len() > 0 {
		if !g.eng.Remove() {
			g.exhausted = true
			g.log.Info("solution", "run_id", runID, "status", NoSolution.String())
			return "", NoSolution, nil
		}
	}

	for {
		result := g.eng.RunToFixpoint()
		g.log.Debug("solution.fixpoint", "run_id", runID, "result", result.String(), "unassigned", g.b.CellsUnassigned)
		switch result {
		case engine.DeadEnd:
			if !g.eng.Remove() {
				g.exhausted = true
				g.log.Info("solution", "run_id", runID, "status", NoSolution.String())
				return "", NoSolution, nil
			}
			continue
		case engine.Stalled:
			if g.b.CellsUnassigned == 0 {
				return g.finish(runID)
			}
			chose, err := g.srch.Choose()
			if err != nil {
				if _, tooHard := err.(search.ErrTooHard); tooHard {
					span.SetAttributes(attribute.String("status", TooHard.String()))
					g.log.Warn("solution", "run_id", runID, "status", TooHard.String())
					return "", TooHard, nil
				}
				span.SetStatus(codes.Error, err.Error())
				return "", 0, err
			}
			if !chose {
				if !g.eng.Remove() {
					g.exhausted = true
					g.log.Info("solution", "run_id", runID, "status", NoSolution.String())
					return "", NoSolution, nil
				}
				continue
			}
			g.log.Debug("solution.choice", "run_id", runID, "stack_len", g.eng.Stack.Len())
		}
	}
}

func (g *General) finish(runID string) (string, Status, error) {
	ok, conflicts := board.Validate(g.b, g.maskFor)
	if !ok {
		err := &InternalError{Cause: fmt.Errorf("invariant violation after solve: %v", conflicts)}
		g.log.Error("solution", "run_id", runID, "err", err)
		return "", 0, err
	}
	out := g.render()
	g.log.Info("solution", "run_id", runID, "status", Success.String(), "choices", g.eng.Stack.ChoiceCount())
	return out, Success, nil
}

func (g *General) maskFor(cellIdx int) (symbol.AllowedSet, bool) {
	name, ok := g.cellMask[cellIdx]
	if !ok {
		return symbol.AllowedSet{}, false
	}
	set, ok := g.allowed.Lookup(name)
	return set, ok
}
