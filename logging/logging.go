package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a configured level name to a zerolog level. Unknown names
// fall back to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New returns a timestamped logger writing console-formatted lines to every
// writer. Only the first writer gets colours, the rest are meant for files.
func New(level string, writers ...io.Writer) zerolog.Logger {
	if len(writers) == 0 {
		return zerolog.Nop()
	}

	outs := make([]io.Writer, 0, len(writers))
	for i, w := range writers {
		outs = append(outs, zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    i > 0,
		})
	}

	return zerolog.New(zerolog.MultiLevelWriter(outs...)).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// LogFilePath builds a per-session log file path inside logsDir
func LogFilePath(logsDir, appName string, sessionStart time.Time) string {
	return filepath.Join(
		logsDir,
		fmt.Sprintf("%s.%s.log", appName, sessionStart.Format("20060102_150405")),
	)
}
