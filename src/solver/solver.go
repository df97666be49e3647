// Package solver runs the whole pipeline for one statement: lexing, parsing,
// evaluation, plus the glue the core stages stay free of, like preset
// bindings from the config, the optional tree visualization, and asking the
// user about variables that ended up without a value.
package solver

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/eriklarko/logic-solver/src/config"
	"github.com/eriklarko/logic-solver/src/environment"
	"github.com/eriklarko/logic-solver/src/evaluator"
	"github.com/eriklarko/logic-solver/src/graphviz"
	"github.com/eriklarko/logic-solver/src/lexer"
	"github.com/eriklarko/logic-solver/src/parser"
	"github.com/eriklarko/logic-solver/src/tui"
)

type Solver struct {
	config *config.Config
	tui    *tui.TUI
}

func New(config *config.Config) *Solver {
	return &Solver{
		config: config,
		tui:    tui.New(),
	}
}

// SetTUI replaces the terminal used for interactive questions.
func (s *Solver) SetTUI(t *tui.TUI) {
	s.tui = t
}

// Run evaluates one statement and returns its truth value. Bindings from the
// config apply to variables the statement does not assign itself. When the
// run is interactive, variables that still have no value are asked for
// instead of failing the evaluation.
func (s *Solver) Run(statement string) (bool, error) {
	root, bindings, err := parser.Parse(lexer.New(statement))
	if err != nil {
		return false, fmt.Errorf("failed to parse statement: %w", err)
	}

	for name, value := range s.config.Bindings {
		if _, bound := bindings.Lookup(name); !bound {
			bindings[name] = value
		}
	}

	if s.config.TreeOutput != "" {
		// the visualization is a debugging aid, a failure here doesn't stop
		// the evaluation
		if err := graphviz.WriteFile(s.config.TreeOutput, root); err != nil {
			slog.Warn("failed to write tree visualization", "error", err)
		} else {
			slog.Debug("wrote tree visualization", "path", s.config.TreeOutput)
		}
	}

	result, err := evaluator.Evaluate(root, bindings)
	var errUndefined *evaluator.UndefinedVariableError
	for errors.As(err, &errUndefined) {
		if !environment.IsInteractive() {
			slog.Warn("statement references a variable with no value",
				"variable", errUndefined.Name,
				"hint", fmt.Sprintf("assign it with `%s := 1` before the expression, or add it to the config", errUndefined.Name),
			)
			return false, err
		}

		answer := s.tui.AskYesNo("Variable %s has no value. Should it be true? [y/N]: ", errUndefined.Name)
		bindings[errUndefined.Name] = answer
		result, err = evaluator.Evaluate(root, bindings)
	}
	if err != nil {
		return false, fmt.Errorf("failed to evaluate statement: %w", err)
	}

	return result, nil
}
