package solver_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/eriklarko/logic-solver/src/config"
	"github.com/eriklarko/logic-solver/src/environment"
	"github.com/eriklarko/logic-solver/src/evaluator"
	"github.com/eriklarko/logic-solver/src/solver"
	"github.com/eriklarko/logic-solver/src/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFullPipeline(t *testing.T) {
	s := solver.New(&config.Config{})

	tests := map[string]bool{
		"1 ^ 0 v 1":                      true,
		"~1 v 0":                         false,
		"p := 1 q := 0 p => q":           false,
		"p := 1 q := 0 r := 1 p ^ q ^ r": false,
	}
	for statement, expected := range tests {
		t.Run(statement, func(t *testing.T) {
			result, err := s.Run(statement)
			require.NoError(t, err)
			assert.Equal(t, expected, result)
		})
	}
}

func TestConfigBindings(t *testing.T) {
	s := solver.New(&config.Config{
		Bindings: map[string]bool{"p": true},
	})

	t.Run("preset fills in unassigned variables", func(t *testing.T) {
		result, err := s.Run("p ^ 1")
		require.NoError(t, err)
		assert.True(t, result)
	})

	t.Run("statement assignment wins over preset", func(t *testing.T) {
		result, err := s.Run("p := 0 p")
		require.NoError(t, err)
		assert.False(t, result)
	})
}

func TestUndefinedVariableWithoutTerminal(t *testing.T) {
	environment.ForceSetIsInteractive(false)
	s := solver.New(&config.Config{})

	_, err := s.Run("p v q")
	require.Error(t, err)

	var undefinedErr *evaluator.UndefinedVariableError
	assert.ErrorAs(t, err, &undefinedErr)
}

func TestUndefinedVariableAsksTheUser(t *testing.T) {
	environment.ForceSetIsInteractive(true)
	t.Cleanup(func() { environment.ForceSetIsInteractive(false) })

	var output bytes.Buffer
	terminal := tui.New()
	terminal.SetInput(strings.NewReader("y\nn\n"))
	terminal.SetOutput(&output)

	s := solver.New(&config.Config{})
	s.SetTUI(terminal)

	result, err := s.Run("p ^ ~q")
	require.NoError(t, err)

	assert.True(t, result)
	assert.Contains(t, output.String(), "Variable p has no value")
	assert.Contains(t, output.String(), "Variable q has no value")
}

func TestTreeOutput(t *testing.T) {
	path := t.TempDir() + "/tree.gv"
	s := solver.New(&config.Config{TreeOutput: path})

	_, err := s.Run("1 ^ 0")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `[label="And" shape="box"]`)
}

func TestParseErrorsPropagate(t *testing.T) {
	s := solver.New(&config.Config{})

	_, err := s.Run("1 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse statement")
}
