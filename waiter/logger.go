package waiter

import (
	"os"

	"github.com/sirupsen/logrus"
)

// LogChannel is the name given to the Waiter's log records
const LogChannel = "wait"

// Logger is the sink for the Waiter's log records. A logrus.FieldLogger
// satisfies this interface.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// debugLogger is implemented by those Loggers which can also report at
// debug level
type debugLogger interface {
	Debugf(format string, args ...any)
}

// NewLogger returns a logrus entry for the wait log channel writing to
// standard error at the given level
func NewLogger(level logrus.Level, formatter logrus.Formatter) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)

	if formatter != nil {
		l.SetFormatter(formatter)
	}

	return l.WithField("logger", LogChannel)
}
