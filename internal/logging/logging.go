// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Setup sets the level by name ("debug", "info", ...) and the text
// formatter. An unknown level falls back to info and is reported.
func Setup(level string, out io.Writer) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if out != nil {
		logrus.SetOutput(out)
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.Warnf("Unknown LOG_LEVEL %q, using info", level)
		return
	}
	logrus.SetLevel(lvl)
}
