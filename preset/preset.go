// Package preset generates topology and alphabet configuration strings
// for the handful of named puzzle shapes spec.md §6.1 calls out:
// standard Sudoku, Sudoku-X (with diagonals), brick (irregular
// rectangle) layouts, and Latin squares. Every function here is a pure
// string generator — it never touches a General; the core solver only
// ever consumes the topology/alphabet strings these produce.
package preset

import (
	"fmt"
	"strconv"
	"strings"
)

// Sudoku returns the topology, alphabet, and column width for an N²×N²
// grid with rows rK, columns cK, and N×N boxes sK.
func Sudoku(n int) (topo, alphabet string, columns int, err error) {
	if n < 1 {
		return "", "", 0, fmt.Errorf("sudoku: n must be >= 1, got %d", n)
	}
	size := n * n
	topo = standardTopology(n, size, nil)
	alphabet = numericAlphabet(size)
	return topo, alphabet, size, nil
}

// SudokuX is Sudoku plus the two main diagonals, named d0 and d1.
func SudokuX(n int) (topo, alphabet string, columns int, err error) {
	if n < 1 {
		return "", "", 0, fmt.Errorf("sudokux: n must be >= 1, got %d", n)
	}
	size := n * n
	topo = standardTopology(n, size, func(row, col int) []string {
		var extra []string
		if row == col {
			extra = append(extra, "d0")
		}
		if row+col == size-1 {
			extra = append(extra, "d1")
		}
		return extra
	})
	alphabet = numericAlphabet(size)
	return topo, alphabet, size, nil
}

// standardTopology builds the row/column/box topology for an n-box,
// size×size grid, optionally tagging a cell with extra set names.
func standardTopology(n, size int, extra func(row, col int) []string) string {
	var b strings.Builder
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			box := (row/n)*n + col/n
			names := []string{
				"r" + strconv.Itoa(row),
				"c" + strconv.Itoa(col),
				"s" + strconv.Itoa(box),
			}
			if extra != nil {
				names = append(names, extra(row, col)...)
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strings.Join(names, ","))
		}
	}
	return b.String()
}

// Brick returns the topology, alphabet, and column width for a
// size×size grid of rows, columns, and h×v rectangular regions. size
// must be divisible by both h and v.
func Brick(h, v, size int) (topo, alphabet string, columns int, err error) {
	if h < 1 || v < 1 || size < 1 {
		return "", "", 0, fmt.Errorf("brick: h, v, size must be positive, got (%d,%d,%d)", h, v, size)
	}
	if size%h != 0 || size%v != 0 {
		return "", "", 0, fmt.Errorf("brick: size %d must be divisible by both h=%d and v=%d", size, h, v)
	}
	regionsPerRow := size / h
	var b strings.Builder
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			region := (row/v)*regionsPerRow + col/h
			names := []string{
				"r" + strconv.Itoa(row),
				"c" + strconv.Itoa(col),
				"b" + strconv.Itoa(region),
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strings.Join(names, ","))
		}
	}
	return b.String(), numericAlphabet(size), size, nil
}

// Latin returns the topology and alphabet for an N×N Latin square: rows
// and columns only, no boxes, alphabet ".", "A", "B", ...
func Latin(n int) (topo, alphabet string, columns int, err error) {
	if n < 1 || n > 26 {
		return "", "", 0, fmt.Errorf("latin: n must be in 1..26, got %d", n)
	}
	var b strings.Builder
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "r%d,c%d", row, col)
		}
	}
	letters := make([]string, 0, n)
	for i := 0; i < n; i++ {
		letters = append(letters, string(rune('A'+i)))
	}
	return b.String(), ". " + strings.Join(letters, " "), n, nil
}

// numericAlphabet returns ". 1 2 3 ... size".
func numericAlphabet(size int) string {
	toks := make([]string, size+1)
	toks[0] = "."
	for i := 1; i <= size; i++ {
		toks[i] = strconv.Itoa(i)
	}
	return strings.Join(toks, " ")
}
