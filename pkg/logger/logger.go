package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns the command-line logger. Output goes to stderr so it never
// mixes with data written to stdout.
func New(verbose, quiet bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	switch {
	case quiet:
		l.SetLevel(logrus.WarnLevel)
	case verbose:
		l.SetLevel(logrus.DebugLevel)
	default:
		l.SetLevel(logrus.InfoLevel)
	}
	return l
}
