package helpers

import (
	"fmt"
	"os"
	"strings"
)

// ReadStatement reads the statement to evaluate from the given file. The
// whole file is one statement; surrounding whitespace is ignored.
func ReadStatement(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read statement file %s: %w", path, err)
	}
	return strings.TrimSpace(string(content)), nil
}
