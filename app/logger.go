package app

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

func InitLogger() {
	logLevel := strings.ToLower(Config.Logger.Level)
	log.Debug("[LOGGER] Initializing logger with level: ", logLevel)

	switch strings.ToLower(Config.Logger.Format) {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp: true,
		})
	}

	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Warn("[LOGGER] Unknown log level ", logLevel, ", using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	log.Info("[LOGGER] Logger initialized with level: ", level.String())
}
