package parser

import (
	"github.com/sirupsen/logrus"
)

// Config tunes a normalization run. The zero value is ready to use.
type Config struct {
	// Logger receives the tokenizer's trace output and the tree
	// constructor's debug output. Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

func (c Config) logger() logrus.FieldLogger {
	if c.Logger == nil {
		return logrus.StandardLogger()
	}
	return c.Logger
}
