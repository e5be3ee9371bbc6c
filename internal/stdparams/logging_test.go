package stdparams

import (
	"errors"
	"testing"

	"github.com/nickwells/errutil.mod/errutil"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/param.mod/v6/paramtest"
	"github.com/nickwells/testhelper.mod/v2/testhelper"
	"github.com/sirupsen/logrus"

	"github.com/nickwells/waituntil/waiter"
)

// cmpLogConfig compares the value with the expected value and returns
// an error if they differ
func cmpLogConfig(iVal, iExpVal any) error {
	val, ok := iVal.(*LogConfig)
	if !ok {
		return errors.New("Bad value: not a pointer to a LogConfig struct")
	}

	expVal, ok := iExpVal.(*LogConfig)
	if !ok {
		return errors.New(
			"Bad expected value: not a pointer to a LogConfig struct")
	}

	return testhelper.DiffVals(val, expVal)
}

// mkTestParser populates and returns a paramtest.Parser ready to be added to
// the testcases.
func mkTestParser(
	errs errutil.ErrMap, id testhelper.ID,
	lcSetter func(lc *LogConfig),
	args ...string,
) paramtest.Parser {
	actVal := NewLogConfig()
	ps := paramset.NewNoHelpNoExitNoErrRptOrPanic(AddLogParams(&actVal))

	expVal := NewLogConfig()
	if lcSetter != nil {
		lcSetter(&expVal)
	}

	return paramtest.Parser{
		ID:             id,
		ExpParseErrors: errs,
		Val:            &actVal,
		Ps:             ps,
		ExpVal:         &expVal,
		Args:           args,
		CheckFunc:      cmpLogConfig,
	}
}

func TestParseLogParams(t *testing.T) {
	testCases := []paramtest.Parser{}

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: no params, no change"),
			nil))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: log-level"),
			func(lc *LogConfig) { lc.Level = "debug" },
			"-"+paramNameLogLevel, "debug"))

	testCases = append(testCases,
		mkTestParser(nil, testhelper.MkID("good: log-format"),
			func(lc *LogConfig) { lc.Format = LogFormatJSON },
			"-log-fmt", LogFormatJSON))

	{
		parseErrs := errutil.ErrMap{}
		parseErrs.AddError(
			paramNameLogLevel,
			errors.New(`value is not allowed: "nonesuch"`+"\n"+
				"At: [command line]:"+
				` Supplied Parameter:2: "-log-level" "nonesuch"`))

		testCases = append(testCases,
			mkTestParser(parseErrs, testhelper.MkID("bad: log-level"),
				nil,
				"-"+paramNameLogLevel, "nonesuch"))
	}

	for _, tc := range testCases {
		_ = tc.Test(t)
	}
}

func TestLogger(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		lc          LogConfig
		expLevel    logrus.Level
		expJSONFmtr bool
	}{
		{
			ID:       testhelper.MkID("default"),
			lc:       NewLogConfig(),
			expLevel: logrus.InfoLevel,
		},
		{
			ID:          testhelper.MkID("debug, json"),
			lc:          LogConfig{Level: "debug", Format: LogFormatJSON},
			expLevel:    logrus.DebugLevel,
			expJSONFmtr: true,
		},
		{
			ID:       testhelper.MkID("bad level"),
			lc:       LogConfig{Level: "nonesuch", Format: LogFormatText},
			expLevel: logrus.InfoLevel,
		},
	}

	for _, tc := range testCases {
		entry := tc.lc.Logger()

		if entry.Logger.GetLevel() != tc.expLevel {
			t.Log(tc.IDStr())
			t.Log("\t: expected level: ", tc.expLevel)
			t.Log("\t:   actual level: ", entry.Logger.GetLevel())
			t.Errorf("\t: bad log level\n")
		}

		_, isJSON := entry.Logger.Formatter.(*logrus.JSONFormatter)
		if isJSON != tc.expJSONFmtr {
			t.Log(tc.IDStr())
			t.Errorf("\t: JSON formatter expected: %t", tc.expJSONFmtr)
		}

		if entry.Data["logger"] != waiter.LogChannel {
			t.Log(tc.IDStr())
			t.Errorf("\t: the log channel should be %q, got %v",
				waiter.LogChannel, entry.Data["logger"])
		}
	}
}
