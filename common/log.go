package common

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process logger. Diagnostics go to stderr so they never mix with
// what a command prints for the user.
var Log = NewLogger()

func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return log
}

// GetLoggerEntry returns a logger tagged with the module it is used from.
func GetLoggerEntry(module string) *logrus.Entry {
	return Log.WithField("module", module)
}

// SetLogLevel parses level ("debug", "info", ...) and applies it to Log.
func SetLogLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Log.SetLevel(lvl)
	return nil
}
