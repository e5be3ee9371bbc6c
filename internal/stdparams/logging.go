package stdparams

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
	"github.com/sirupsen/logrus"

	"github.com/nickwells/waituntil/waiter"
)

const (
	// ParamGroupNameLogging is the group holding the logging parameters
	ParamGroupNameLogging = "cmd-logging"

	paramNameLogLevel  = "log-level"
	paramNameLogFormat = "log-format"

	// LogFormatText selects the logrus text formatter
	LogFormatText = "text"
	// LogFormatJSON selects the logrus JSON formatter
	LogFormatJSON = "json"
)

// LogConfig holds the settings used to construct the logger for the wait
// log channel
type LogConfig struct {
	Level  string
	Format string
}

// NewLogConfig returns a LogConfig with the default values set
func NewLogConfig() LogConfig {
	return LogConfig{
		Level:  logrus.InfoLevel.String(),
		Format: LogFormatText,
	}
}

// logLevels returns the allowed values for the log level
func logLevels() psetter.AllowedVals[string] {
	av := psetter.AllowedVals[string]{}
	for _, l := range logrus.AllLevels {
		av[l.String()] = "report messages at " + l.String() +
			" level and above"
	}

	return av
}

// AddLogParams adds the parameters controlling the wait log channel
func AddLogParams(lc *LogConfig) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(ParamGroupNameLogging,
			"how the progress of the wait is logged.")

		ps.Add(paramNameLogLevel,
			psetter.Enum[string]{
				Value:       &lc.Level,
				AllowedVals: logLevels(),
			},
			"the lowest level of log message to report",
			param.AltNames("log-lvl"),
			param.GroupName(ParamGroupNameLogging),
		)

		ps.Add(paramNameLogFormat,
			psetter.Enum[string]{
				Value: &lc.Format,
				AllowedVals: psetter.AllowedVals[string]{
					LogFormatText: "plain text, one message per line",
					LogFormatJSON: "one JSON object per message",
				},
			},
			"how the log messages should be formatted",
			param.AltNames("log-fmt"),
			param.GroupName(ParamGroupNameLogging),
		)

		return nil
	}
}

// Logger returns the logger described by the LogConfig. An unrecognised
// level is taken as info.
func (lc LogConfig) Logger() *logrus.Entry {
	level, err := logrus.ParseLevel(lc.Level)
	if err != nil {
		level = logrus.InfoLevel
	}

	var f logrus.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	if lc.Format == LogFormatJSON {
		f = &logrus.JSONFormatter{}
	}

	return waiter.NewLogger(level, f)
}
