package configs

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger. JSON to stderr, timestamped.
func NewLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
