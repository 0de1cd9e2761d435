// Package general implements an exact-cover-over-named-sets constraint
// solver in the shape of Sudoku and its many topological cousins: the
// caller supplies an alphabet, a topology (which cells belong to which
// sets), optional per-cell symbol restrictions, and a problem (givens);
// General deduces the rest with a sequence of named rules before
// falling back to depth-first search, and can explain every step it
// took to get there.
package general

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/exactcover/general/internal/board"
	"github.com/exactcover/general/internal/engine"
	"github.com/exactcover/general/internal/search"
	"github.com/exactcover/general/internal/symbol"
	"github.com/exactcover/general/internal/topology"
)

// General is the solver facade: the composition root wiring the
// alphabet, topology, board, constraint engine and backtracking search
// together behind the configuration surface described in spec.md §6.
type General struct {
	alphabet *symbol.Alphabet
	allowed  *symbol.AllowedSets
	topo     *topology.Topology

	b    *board.BoardState
	eng  *engine.Engine
	srch *search.Search

	columns         int
	outputDelimiter string
	iterationLimit  int
	name            string
	debug           int
	statusValue     Status

	cellMask  map[int]string
	loaded    bool
	exhausted bool
	lastRunID string

	log      *slog.Logger
	logLevel *slog.LevelVar
	tracer   trace.Tracer
}

// New returns a General with the defaults from spec.md §6.1: no output
// wrap, a single space between cells, no iteration cap.
func New() *General {
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelInfo)
	return &General{
		allowed:         symbol.NewAllowedSets(),
		outputDelimiter: " ",
		cellMask:        make(map[int]string),
		log:             slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})),
		logLevel:        lvl,
		tracer:          otel.Tracer("github.com/exactcover/general"),
	}
}

// SetLogger overrides the default slog logger used for Problem/Solution
// diagnostics. The `debug` attribute no longer has any effect on
// verbosity once a caller-supplied logger is in place — the caller
// owns that logger's level.
func (g *General) SetLogger(l *slog.Logger) {
	g.log = l
	g.logLevel = nil
}

// invalidateBoard drops the current board/engine/search session: a new
// Problem is required before the next Solution. Topology and symbols
// stay as configured.
func (g *General) invalidateBoard() {
	g.b = nil
	g.eng = nil
	g.srch = nil
	g.loaded = false
	g.exhausted = false
}

// Name returns the informational `name` attribute.
func (g *General) Name() string { return g.name }

// StatusValue returns the caller-settable `status_value` attribute.
func (g *General) StatusValue() Status { return g.statusValue }

// StatusText mirrors StatusValue as a human string (spec.md §6.4).
func (g *General) StatusText() string { return g.statusValue.String() }

// Columns returns the configured `columns` output-wrap width.
func (g *General) Columns() int { return g.columns }

func (g *General) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return g.tracer.Start(ctx, "general."+op)
}

func (g *General) newRunID() string {
	g.lastRunID = uuid.New().String()
	return g.lastRunID
}
