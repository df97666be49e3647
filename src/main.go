package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/eriklarko/logic-solver/src/config"
	"github.com/eriklarko/logic-solver/src/environment"
	"github.com/eriklarko/logic-solver/src/helpers"
	"github.com/eriklarko/logic-solver/src/solver"
	"github.com/eriklarko/logic-solver/src/tui"
)

func main() {
	var (
		statement  = flag.String("e", "", "evaluate this statement instead of reading a file")
		configPath = flag.String("config", "logic-solver.yaml", "path to the config file")
		treeOutput = flag.String("dot", "", "write the parsed tree to this file in graphviz format")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *treeOutput != "" {
		cfg.TreeOutput = *treeOutput
	}

	s := solver.New(cfg)

	switch {
	case *statement != "":
		runOnce(s, *statement)

	case flag.NArg() > 0:
		contents, err := helpers.ReadStatement(flag.Arg(0))
		if err != nil {
			slog.Error("failed to read statement file", "error", err)
			os.Exit(1)
		}
		runOnce(s, contents)

	case environment.IsInteractive():
		runREPL(s)

	default:
		contents, err := io.ReadAll(os.Stdin)
		if err != nil {
			slog.Error("failed to read statement from stdin", "error", err)
			os.Exit(1)
		}
		runOnce(s, strings.TrimSpace(string(contents)))
	}
}

func runOnce(s *solver.Solver, statement string) {
	result, err := s.Run(statement)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(result)
}

func runREPL(s *solver.Solver) {
	terminal := tui.New()
	s.SetTUI(terminal)

	for {
		statement, ok := terminal.ReadStatement("> ")
		if !ok {
			return
		}
		if statement == "" {
			continue
		}

		result, err := s.Run(statement)
		if err != nil {
			terminal.PrintError(err)
			continue
		}
		terminal.PrintResult(result)
	}
}
