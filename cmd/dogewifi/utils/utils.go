package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

// ExitCode is what a failed command exits with: 255 when started
// by systemd, 1 otherwise.
func ExitCode() int {
	if IsSystemd() {
		return 255
	}
	return 1
}

func IsSystemd() bool {
	return os.Getenv("INVOCATION_ID") != ""
}

func NewLogger(level string, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: !IsSystemd()})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	if verbose {
		lvl = logrus.DebugLevel
	}
	log.SetLevel(lvl)
	return log
}
