package log

import (
	"os"

	"github.com/op/go-logging"
)

var Log = logging.MustGetLogger("")

var syslogFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.6s} ▶ %{message}`,
)
var stderrFormat = logging.MustStringFormatter(
	`%{color}gwtparse ▶ %{message}%{color:reset}`,
)

const LOG_LEVEL_ENV = "GWT_LOG_LEVEL"

//	LevelFromEnv returns the level named by GWT_LOG_LEVEL, or defaultLevel.
func LevelFromEnv(defaultLevel logging.Level) logging.Level {
	switch os.Getenv(LOG_LEVEL_ENV) {
	case "CRITICAL":
		return logging.CRITICAL
	case "ERROR":
		return logging.ERROR
	case "WARNING":
		return logging.WARNING
	case "NOTICE":
		return logging.NOTICE
	case "INFO":
		return logging.INFO
	case "DEBUG":
		return logging.DEBUG
	}
	return defaultLevel
}

func SetupLogging(prefix string, defaultLogLevel logging.Level, trySyslog bool) *logging.Logger {
	var backend logging.Backend
	if trySyslog {
		backend = getSyslogBackend(prefix)
	}
	if backend == nil {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
		logging.SetFormatter(stderrFormat)
	}
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(LevelFromEnv(defaultLogLevel), "")

	logging.SetBackend(leveled)
	return Log
}
