package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New builds the CLI logger. Output goes to w so stdout stays reserved for
// the generated table of contents. An unparsable level leaves the logger at
// warn and is returned as an error for the caller to report.
func New(level string, w io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05.000"})
	logger.SetLevel(logrus.WarnLevel)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logger, err
	}
	logger.SetLevel(parsed)
	return logger, nil
}

// Discard returns an entry that drops everything written to it
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}
