package general

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/exactcover/general/internal/symbol"
	"github.com/exactcover/general/internal/topology"
	"github.com/exactcover/general/preset"
)

// Set applies one named configuration attribute (spec.md §6.1). It
// leaves the receiver usable on error: earlier settings within a batch
// of Set calls remain applied, matching spec.md §7's error policy.
func (g *General) Set(name, value string) error {
	switch name {
	case "symbols":
		return g.setSymbols(value)
	case "topology":
		return g.setTopology(value)
	case "allowed_symbols":
		return g.setAllowedSymbols(value)
	case "columns":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &ConfigurationError{Attribute: name, Cause: err}
		}
		g.columns = n
		return nil
	case "output_delimiter":
		g.outputDelimiter = value
		return nil
	case "iteration_limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return &ConfigurationError{Attribute: name, Cause: fmt.Errorf("iteration_limit must be >= 0, got %q", value)}
		}
		g.iterationLimit = n
		return nil
	case "name":
		g.name = value
		return nil
	case "debug":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &ConfigurationError{Attribute: name, Cause: err}
		}
		g.debug = n
		if g.logLevel != nil {
			if n > 0 {
				g.logLevel.Set(slog.LevelDebug)
			} else {
				g.logLevel.Set(slog.LevelInfo)
			}
		}
		return nil
	case "status_value":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > 3 {
			return &ConfigurationError{Attribute: name, Cause: fmt.Errorf("status_value must be in 0..3, got %q", value)}
		}
		g.statusValue = Status(n)
		return nil
	case "sudoku":
		return g.applyPreset(name, func() (string, string, int, error) {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return "", "", 0, err
			}
			return preset.Sudoku(n)
		})
	case "sudokux":
		return g.applyPreset(name, func() (string, string, int, error) {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return "", "", 0, err
			}
			return preset.SudokuX(n)
		})
	case "brick":
		return g.applyPreset(name, func() (string, string, int, error) {
			h, v, size, err := parseBrickParams(value)
			if err != nil {
				return "", "", 0, err
			}
			return preset.Brick(h, v, size)
		})
	case "latin":
		return g.applyPreset(name, func() (string, string, int, error) {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return "", "", 0, err
			}
			return preset.Latin(n)
		})
	default:
		return &ConfigurationError{Attribute: name, Cause: fmt.Errorf("unknown attribute %q", name)}
	}
}

func (g *General) setSymbols(value string) error {
	a, err := symbol.Parse(value)
	if err != nil {
		return &ConfigurationError{Attribute: "symbols", Cause: err}
	}
	g.alphabet = a
	g.allowed = symbol.NewAllowedSets()
	g.invalidateBoard()
	return nil
}

func (g *General) setTopology(value string) error {
	t, err := topology.Parse(value)
	if err != nil {
		return &ConfigurationError{Attribute: "topology", Cause: err}
	}
	g.topo = t
	g.invalidateBoard()
	return nil
}

func (g *General) setAllowedSymbols(value string) error {
	if g.alphabet == nil {
		return &ConfigurationError{Attribute: "allowed_symbols", Cause: fmt.Errorf("symbols must be set first")}
	}
	if strings.TrimSpace(value) == "" {
		g.allowed.Clear()
		return nil
	}
	if err := g.allowed.ParseLines(value, g.alphabet); err != nil {
		return &ConfigurationError{Attribute: "allowed_symbols", Cause: err}
	}
	return nil
}

// applyPreset runs a preset generator and feeds its topology/alphabet
// output through setSymbols and setTopology, the same paths Set uses, so
// presets get exactly the same validation as a hand-written configuration.
func (g *General) applyPreset(name string, gen func() (topo, symbols string, columns int, err error)) error {
	topo, symbols, columns, err := gen()
	if err != nil {
		return &ConfigurationError{Attribute: name, Cause: err}
	}
	if err := g.setSymbols(symbols); err != nil {
		return err
	}
	if err := g.setTopology(topo); err != nil {
		return err
	}
	g.columns = columns
	return nil
}

func parseBrickParams(value string) (h, v, size int, err error) {
	value = strings.Trim(strings.TrimSpace(value), "()")
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("brick wants (h,v,size), got %q", value)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, fmt.Errorf("brick parameter %q is not an integer", p)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}
