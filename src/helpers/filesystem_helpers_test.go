package helpers_test

import (
	"testing"

	"github.com/eriklarko/logic-solver/src/helpers"
	"github.com/eriklarko/logic-solver/src/helpers/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadStatement(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		path := testhelpers.CreateTempFileWithContents(t, "  p := 1 p ^ 0\n")

		statement, err := helpers.ReadStatement(path)
		require.NoError(t, err)

		assert.Equal(t, "p := 1 p ^ 0", statement)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := helpers.ReadStatement("no-such-file.txt")
		assert.Error(t, err)
	})
}
