package grana

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It defaults to info level with a plain text
// formatter, and is reconfigured from the environment by ConfigureLog.
var Log = logrus.New()

// ConfigureLog applies LOG_LEVEL and APP_ENV to the shared logger.
// Unknown levels fall back to info. In production the output switches
// to JSON.
func ConfigureLog() {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
