package helpers

import (
	"io"

	"github.com/sirupsen/logrus"
)

// SetupLogging routes logrus to w. Only warnings and errors are shown unless
// debug is set.
func SetupLogging(w io.Writer, debug bool) {
	logrus.SetOutput(w)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: !debug,
		FullTimestamp:    true,
	})
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}
