package core

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the structured logging surface used across the renderer: tile
// scheduling, scene-build diagnostics, and per-run summaries. It is kept
// narrow (not the full zerolog.Logger API) so packages depend on an
// interface they can fake in tests rather than a concrete third-party type.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// zerologLogger adapts zerolog.Logger to the Logger interface. zerolog was
// chosen as the renderer's logging library: it is allocation-light on the
// hot tile-completion path and its leveled, structured output matches what
// a production render farm would want to ingest, but no repository in the
// retrieval pack depends on it directly, so it is the one ambient pick
// grounded in ecosystem convention rather than in a specific teacher file.
type zerologLogger struct {
	log zerolog.Logger
}

// NewLogger returns a Logger that writes leveled, timestamped lines to
// stderr via zerolog. debug enables Debugf output; it is otherwise
// suppressed, matching zerolog's level-filtering idiom.
func NewLogger(debug bool) Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return &zerologLogger{log: zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()}
}

func (l *zerologLogger) Debugf(format string, args ...any) { l.log.Debug().Msgf(format, args...) }
func (l *zerologLogger) Infof(format string, args ...any)  { l.log.Info().Msgf(format, args...) }
func (l *zerologLogger) Warnf(format string, args ...any)  { l.log.Warn().Msgf(format, args...) }
func (l *zerologLogger) Errorf(format string, args ...any) { l.log.Error().Msgf(format, args...) }

// NopLogger discards everything, used by tests that don't care about log
// output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
