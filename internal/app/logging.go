package app

import (
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"
)

// ConfigureLogging sets the level of every datakeep logger.
func ConfigureLogging(level string) error {
	if level == "" {
		return nil
	}
	if _, ok := loggo.ParseLevel(level); !ok {
		return errors.NotValidf("log level %q", level)
	}
	return loggo.ConfigureLoggers("datakeep=" + level)
}
