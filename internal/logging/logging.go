// Package logging builds the hclog loggers used across cmsgen.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/sas-labs/cmsgen/internal/branding"
)

// New returns a logger writing to w at the named level. Unknown level names
// fall back to warn. A nil writer or the "off" level yields a silent logger.
func New(level string, w io.Writer) hclog.Logger {
	if w == nil {
		return Discard()
	}

	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Warn
	}
	if lvl == hclog.Off {
		return Discard()
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   branding.CLIName(),
		Output: w,
		Level:  lvl,
	})
}

// Discard returns a logger that drops everything.
func Discard() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   branding.CLIName(),
		Output: io.Discard,
		Level:  hclog.Off,
	})
}
