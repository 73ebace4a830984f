package cmd

import (
	"fmt"
	"strings"

	"github.com/juancwu/quiz-cli/config"
)

// ErrUnknownEndpoint represents an error when the requested endpoint is not in the table.
type ErrUnknownEndpoint struct {
	Name string
}

// Satisfy the error interface.
func (e ErrUnknownEndpoint) Error() string {
	names := config.Names()
	valid := make([]string, len(names))
	for i, n := range names {
		valid[i] = string(n)
	}
	return fmt.Sprintf("Unknown endpoint '%s'. Valid endpoints: %s", e.Name, strings.Join(valid, ", "))
}
