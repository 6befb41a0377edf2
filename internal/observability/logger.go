package observability

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/vbanctl/internal/logging"
)

// InitLogger tags the process logger with the app name and installs it
// as the global logger. Writer, level, and timestamp shape come from
// the logging profile; this only layers the app field on top, so
// calling it after ConfigureRuntime does not reconfigure the sink.
func InitLogger(app string) zerolog.Logger {
	logging.ConfigureRuntime()
	logger := log.Logger.With().Str("app", app).Logger()
	log.Logger = logger
	return logger
}
