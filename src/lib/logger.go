package lib

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the process logger, replaced by InitLogger at startup
var Log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// InitLogger configures Log; development gets a console writer, everything else JSON
func InitLogger(level string, development bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if development {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	Log = zerolog.New(out).Level(lvl).With().
		Timestamp().
		Str("service", "linkedin-be").
		Logger()
	return Log
}
