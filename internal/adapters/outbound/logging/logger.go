// Package logging adapts charmbracelet/log to domain.Logger.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Format selects how entries are rendered.
type Format string

const (
	FormatText   Format = "text"
	FormatLogfmt Format = "logfmt"
	FormatJSON   Format = "json"
)

// Options configures a Logger.
type Options struct {
	Verbose bool
	Format  Format
	Prefix  string
}

// Logger implements domain.Logger.
type Logger struct {
	l *log.Logger
}

// New creates a Logger writing to w. Verbose enables debug entries.
func New(w io.Writer, opts Options) (*Logger, error) {
	formatter, err := formatterFor(opts.Format)
	if err != nil {
		return nil, err
	}

	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}

	return &Logger{l: log.NewWithOptions(w, log.Options{
		Level:     level,
		Prefix:    opts.Prefix,
		Formatter: formatter,
	})}, nil
}

func formatterFor(f Format) (log.Formatter, error) {
	switch Format(strings.ToLower(string(f))) {
	case "", FormatText:
		return log.TextFormatter, nil
	case FormatLogfmt:
		return log.LogfmtFormatter, nil
	case FormatJSON:
		return log.JSONFormatter, nil
	}
	return 0, fmt.Errorf("unknown log format %q (valid: text, logfmt, json)", f)
}

func (g *Logger) Debug(msg string, keyvals ...any) { g.l.Debug(msg, keyvals...) }
func (g *Logger) Info(msg string, keyvals ...any)  { g.l.Info(msg, keyvals...) }
func (g *Logger) Warn(msg string, keyvals ...any)  { g.l.Warn(msg, keyvals...) }
func (g *Logger) Error(msg string, keyvals ...any) { g.l.Error(msg, keyvals...) }

func (g *Logger) DebugEnabled() bool { return g.l.GetLevel() <= log.DebugLevel }
