// Package seglog builds charmbracelet/log loggers with the defaults
// the rest of the package expects: text-formatted, no caller frame,
// prefixed by component name.
package seglog

import (
	"os"

	"github.com/charmbracelet/log"
)

// Default returns a logger at the process-wide log level, prefixed
// with component.
func Default(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig returns a logger with an explicit level and format,
// for callers that parsed log settings out of a config file.
func NewWithConfig(prefix string, level log.Level, reportTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportTimestamp: reportTimestamp,
		Formatter:       fmt,
	})
}
