package board

import "github.com/exactcover/general/internal/symbol"

// Conflict identifies a cell that breaks a set-uniqueness or
// allowed-symbol-mask constraint.
type Conflict struct {
	Cell int
	Set  string
}

// Validate performs the soundness check described in spec.md §8: every
// set must hold each non-empty symbol at most once, and every cell
// tagged with an allowed-symbol-set name must hold a symbol that mask
// permits. It is a pure read of Topo's current Content fields — unlike
// Try it never mutates anything, which is why callers run it as a final
// check after a solve rather than during the search itself.
func Validate(b *BoardState, masks func(cellIdx int) (symbol.AllowedSet, bool)) (bool, []Conflict) {
	var conflicts []Conflict
	for _, name := range b.Topo.SetNames {
		set := b.Topo.Sets[name]
		for v := 1; v < len(set.Content); v++ {
			if set.Content[v] > 1 {
				conflicts = append(conflicts, Conflict{Set: name})
			}
		}
	}
	if masks != nil {
		for _, cell := range b.Topo.Cells {
			if cell.Content == 0 {
				continue
			}
			mask, ok := masks(cell.Index)
			if !ok {
				continue
			}
			if !mask.Allows(symbol.Index(cell.Content)) {
				conflicts = append(conflicts, Conflict{Cell: cell.Index, Set: mask.Name})
			}
		}
	}
	return len(conflicts) == 0, conflicts
}
