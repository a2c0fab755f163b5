package logging

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup configures the process-wide logrus logger. Unknown levels fall back
// to info.
func Setup(level, format string) {
	log.SetOutput(os.Stdout)

	switch format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.WithError(err).Warnf("[Logging] Invalid log level %q, using info", level)
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}
