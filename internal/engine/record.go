package engine

import (
	"fmt"
	"strings"
)

// Kind tags a stack record with the rule that produced it. The byte
// values are the rule letters from spec.md §4.4 so that a record's
// Kind doubles as its trace character.
type Kind byte

const (
	KindForced    Kind = 'F'
	KindNecessary Kind = 'N'
	KindBoxClaim  Kind = 'B'
	KindTuple     Kind = 'T'
	KindChoice    Kind = '?'
)

// Elimination is a single (cell, value) possibility suppression, as
// produced by the B and T rules.
type Elimination struct {
	Cell  int
	Value int
}

// Record is a self-describing, reversible stack entry. Exactly the
// fields needed to undo the record are populated for its Kind; the
// rest are zero.
type Record struct {
	Kind Kind

	// F, N, Choice
	Cell  int
	Value int

	// B: cells whose Value possibility was suppressed
	Cells []int

	// T: every (cell, value) pair suppressed by this tuple application
	Pairs []Elimination

	// Choice only: the sorted-by-possibility-count cell order captured
	// when the choice point was created and the position within it this
	// record currently occupies. Values already tried are not stored: the
	// next candidate is searched upward from Value.
	CellOrder    []int
	CellOrderIdx int
}

// Step is the read-only, StepTrace-facing view of a Record: which rule
// fired, on which cell(s)/value. Values parallels Cells and is only
// populated for a Tuple step, since spec.md §4.4.4 allows a single T
// record to eliminate more than one distinct value across its cells;
// every other kind eliminates exactly one value shared by all Cells
// and carries it in Value instead.
type Step struct {
	Rule   byte
	Cells  []int
	Value  int
	Values []int
}

func stepOf(r *Record) Step {
	switch r.Kind {
	case KindForced, KindNecessary, KindChoice:
		return Step{Rule: byte(r.Kind), Cells: []int{r.Cell}, Value: r.Value}
	case KindBoxClaim:
		return Step{Rule: byte(r.Kind), Cells: append([]int(nil), r.Cells...), Value: r.Value}
	case KindTuple:
		cells := make([]int, len(r.Pairs))
		values := make([]int, len(r.Pairs))
		for i, p := range r.Pairs {
			cells[i] = p.Cell
			values[i] = p.Value
		}
		return Step{Rule: byte(r.Kind), Cells: cells, Values: values}
	}
	return Step{}
}

// String renders a step the way spec.md §4.7 describes: the rule
// letter followed by "[cell value]" for a single cell, or
// "[[cells...] value]" for a multi-cell elimination record sharing one
// value. A Tuple step instead pairs each cell with its own eliminated
// value, since §4.4.4 allows a naked/hidden tuple to eliminate more
// than one value in a single record.
func (s Step) String() string {
	if s.Rule == byte(KindTuple) {
		parts := make([]string, len(s.Cells))
		for i, c := range s.Cells {
			parts[i] = fmt.Sprintf("%d=%d", c, s.Values[i])
		}
		return fmt.Sprintf("%c[[%s]]", s.Rule, strings.Join(parts, " "))
	}
	if len(s.Cells) == 1 {
		return fmt.Sprintf("%c[%d %d]", s.Rule, s.Cells[0], s.Value)
	}
	parts := make([]string, len(s.Cells))
	for i, c := range s.Cells {
		parts[i] = fmt.Sprintf("%d", c)
	}
	return fmt.Sprintf("%c[[%s] %d]", s.Rule, strings.Join(parts, " "), s.Value)
}
