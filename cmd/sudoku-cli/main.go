package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/exactcover/general"
)

// levelLogger mirrors the teacher's cmd/sudoku-web request logger setup:
// a single slog.TextHandler, level selectable from a flag.
func levelLogger(levelStr string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// buildSolver wires a General from the --preset/--preset-value pair
// (sudoku, sudokux, brick or latin), if given, and then from the
// repeatable --set name=value flags.
func buildSolver(logger *slog.Logger, sets []string, presetName, presetValue string) (*general.General, error) {
	g := general.New()
	g.SetLogger(logger)

	if presetName != "" {
		if err := g.Set(presetName, presetValue); err != nil {
			return nil, err
		}
	}
	for _, kv := range sets {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("--set wants name=value, got %q", kv)
		}
		if err := g.Set(name, value); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func main() {
	root := &cobra.Command{
		Use:   "sudoku-cli",
		Short: "Drive the exact-cover constraint solver from the command line",
	}

	var sets []string
	var presetName, presetValue, logLevel string
	addCommonFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringArrayVar(&sets, "set", nil, "name=value configuration attribute, repeatable")
		cmd.Flags().StringVar(&presetName, "preset", "", "preset attribute name: sudoku|sudokux|brick|latin")
		cmd.Flags().StringVar(&presetValue, "preset-value", "", "value for --preset")
		cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	}

	solveCmd := &cobra.Command{
		Use:   "solve [problem]",
		Short: "Load a problem string and print the first solution",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := levelLogger(logLevel)
			g, err := buildSolver(logger, sets, presetName, presetValue)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if err := g.Problem(args[0]); err != nil {
					return err
				}
			}
			out, status, err := g.Solution()
			if err != nil {
				return err
			}
			fmt.Println(status)
			if status == general.Success {
				fmt.Println(out)
			}
			return nil
		},
	}
	addCommonFlags(solveCmd)

	problemCmd := &cobra.Command{
		Use:   "problem <problem>",
		Short: "Load a problem string and print it back, unsolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := levelLogger(logLevel)
			g, err := buildSolver(logger, sets, presetName, presetValue)
			if err != nil {
				return err
			}
			if err := g.Problem(args[0]); err != nil {
				return err
			}
			fmt.Println(args[0])
			return nil
		},
	}
	addCommonFlags(problemCmd)

	presetCmd := &cobra.Command{
		Use:   "preset <name> <value>",
		Short: "Apply a preset attribute and print its columns value (topology and alphabet are not printed)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := general.New()
			if err := g.Set(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("columns=%d\n", g.Columns())
			return nil
		},
	}

	traceCmd := &cobra.Command{
		Use:   "trace <problem>",
		Short: "Solve a problem and print its step trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := levelLogger(logLevel)
			g, err := buildSolver(logger, sets, presetName, presetValue)
			if err != nil {
				return err
			}
			if err := g.Problem(args[0]); err != nil {
				return err
			}
			out, status, err := g.Solution()
			if err != nil {
				return err
			}
			fmt.Println(status)
			if status == general.Success {
				fmt.Println(out)
			}
			fmt.Println(g.StepTrace().String())
			fmt.Println(g.ConstraintsUsed())
			return nil
		},
	}
	addCommonFlags(traceCmd)

	root.AddCommand(solveCmd, problemCmd, presetCmd, traceCmd)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
