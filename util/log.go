package util

import (
	"io"

	"github.com/charmbracelet/log"
)

const LOG_PREFIX = "quiz"

// NewLogger creates a logger that writes to w. Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: LOG_PREFIX,
		Level:  lvl,
	})
}
