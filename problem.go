package general

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/exactcover/general/internal/board"
	"github.com/exactcover/general/internal/engine"
	"github.com/exactcover/general/internal/search"
	"github.com/exactcover/general/internal/symbol"
)

// Problem loads a whitespace-separated list of tokens, one per cell in
// topology order (spec.md §6.2), resetting the board and starting a
// fresh, empty applied-constraint stack. Symbols and a topology must
// already be configured.
func (g *General) Problem(s string) error {
	return g.ProblemContext(context.Background(), s)
}

// ProblemContext is Problem with an explicit context, used to carry the
// tracing span a caller may already have open.
func (g *General) ProblemContext(ctx context.Context, s string) error {
	ctx, span := g.startSpan(ctx, "Problem")
	defer span.End()

	runID := g.newRunID()
	span.SetAttributes(attribute.String("run_id", runID))

	if g.alphabet == nil || g.topo == nil {
		err := &UsageError{Cause: fmt.Errorf("symbols and topology must be set before problem")}
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	b := board.New(g.topo)
	if err := b.Reset(g.alphabet.Len()); err != nil {
		werr := &TopologyError{Cause: err}
		span.SetStatus(codes.Error, werr.Error())
		return werr
	}

	tokens, err := g.tokenize(s)
	if err != nil {
		werr := &ProblemError{Cause: err}
		span.SetStatus(codes.Error, werr.Error())
		return werr
	}
	if len(tokens) != len(g.topo.Cells) {
		err := &ProblemError{Cause: fmt.Errorf("expected %d cells, got %d", len(g.topo.Cells), len(tokens))}
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cellMask := make(map[int]string)
	for i, tok := range tokens {
		idx, isSymbol := g.alphabet.Lookup(tok)
		if isSymbol {
			if idx != 0 {
				if ok := b.Try(i, int(idx)); !ok {
					err := &ProblemError{Cause: fmt.Errorf("symbol %q repeated within a set at cell %d", tok, i)}
					span.SetStatus(codes.Error, err.Error())
					return err
				}
			}
			continue
		}
		if mask, isMask := g.allowed.Lookup(tok); isMask {
			cellMask[i] = mask.Name
			for v := 1; v < g.alphabet.Len(); v++ {
				if !mask.Allows(symbol.Index(v)) {
					g.topo.Cells[i].Possible[v]++
				}
			}
			continue
		}
		if g.alphabet.NeedsDelimiter() {
			err := &ProblemError{Cause: fmt.Errorf("unknown token %q at cell %d", tok, i)}
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		// Neither a symbol nor an allowed-set name, and no delimiter is
		// required: treat it as empty.
	}

	g.b = b
	g.cellMask = cellMask
	g.eng = engine.New(g.b, g.topo, g.alphabet.Len(), &engine.Stack{})
	g.srch = search.New(g.b, g.topo, g.alphabet.Len(), g.eng, g.iterationLimit)
	g.loaded = true
	g.exhausted = false

	span.SetAttributes(
		attribute.Int("cells", len(g.topo.Cells)),
		attribute.Int("unassigned", g.b.CellsUnassigned),
	)
	g.log.Info("problem", "run_id", runID, "cells", len(g.topo.Cells), "unassigned", g.b.CellsUnassigned, "name", g.name)
	return nil
}

// tokenize splits a problem string into one token per cell. When the
// alphabet and allowed-set names are all single characters,
// NeedsDelimiter is false and whitespace between cells is optional, so
// a run of contiguous non-space characters is split rune by rune.
func (g *General) tokenize(s string) ([]string, error) {
	if g.alphabet.NeedsDelimiter() {
		return strings.Fields(s), nil
	}
	fields := strings.Fields(s)
	var out []string
	for _, f := range fields {
		for _, r := range f {
			out = append(out, string(r))
		}
	}
	return out, nil
}
