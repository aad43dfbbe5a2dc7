package cmd

import (
	"fmt"
	"io"
	"os"
)

// readStatementFile reads path, "-" reads stdin.
func readStatementFile(in io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read statement: %w", err)
	}
	return string(data), nil
}
