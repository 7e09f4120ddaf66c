package commands

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// zerologAdapter implements vendus.Logger on top of zerolog.
type zerologAdapter struct {
	logger zerolog.Logger
}

// newLogger writes console formatted logs to w. Verbose enables debug output,
// otherwise only warnings and errors are written.
func newLogger(w io.Writer, verbose bool) *zerologAdapter {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}

	return &zerologAdapter{
		logger: zerolog.New(output).Level(level).With().Timestamp().Logger(),
	}
}

func (l *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
