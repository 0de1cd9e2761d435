package general

import (
	"strings"

	"github.com/exactcover/general/internal/symbol"
)

// render formats the current board as the output-delimiter-joined,
// columns-wrapped string described in spec.md §6.3.
func (g *General) render() string {
	var b strings.Builder
	for i, cell := range g.topo.Cells {
		if i > 0 {
			if g.columns > 0 && i%g.columns == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteString(g.outputDelimiter)
			}
		}
		b.WriteString(g.alphabet.Token(symbol.Index(cell.Content)))
	}
	return b.String()
}
