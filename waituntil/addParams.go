package main

import (
	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/param.mod/v6/paction"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
)

const (
	paramGroupNameActions = "cmd-actions"
	paramGroupNameTime    = "cmd-time"

	paramNameUntil     = "until"
	paramNameMessage   = "message"
	paramNameRun       = "run"
	paramNameShowTime  = "show-time"
	paramNameFormat    = "format"
	paramNameDontSleep = "dont-sleep"
)

// addActionParams adds the parameters saying what to do on waking up
func addActionParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(paramGroupNameActions,
			"what to do when the waiting finishes.")

		ps.Add(paramNameMessage,
			psetter.String[string]{
				Value: &prog.msg,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"print this message when you wake up",
			param.AltNames("msg"),
			param.GroupName(paramGroupNameActions),
		)

		ps.Add(paramNameRun,
			psetter.String[string]{
				Value: &prog.afterSleepCmd,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"run the command in a subshell when you wake up",
			param.AltNames("do"),
			param.GroupName(paramGroupNameActions),
		)

		ps.Add(paramNameShowTime, psetter.Bool{Value: &prog.showTime},
			"show the target time when you wake up",
			param.GroupName(paramGroupNameActions),
		)

		ps.Add(paramNameFormat,
			psetter.String[string]{
				Value: &prog.showTimeFmt,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"the format to use when showing the time."+
				" Note that this format uses the Go programming language"+
				" time formatting specification."+
				" Setting this value forces the show-time flag on.",
			param.AltNames("fmt"),
			param.PostAction(paction.SetVal(&prog.showTime, true)),
			param.GroupName(paramGroupNameActions),
		)

		return nil
	}
}

// addParams adds the general program parameters to the PSet
func addParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.Add(paramNameDontSleep,
			psetter.Bool{Value: &prog.doSleep, Invert: true},
			"do everything except sleep - useful for testing the behaviour",
			param.Attrs(param.DontShowInStdUsage))

		return nil
	}
}

// addTimeParams adds the program parameters relating to specifying how
// long to wait for to the PSet
func addTimeParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(paramGroupNameTime, "specify how long to wait for.")

		ps.Add(paramNameUntil,
			psetter.String[string]{
				Value: &prog.untilStr,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"the time to wait until. This can be given in one of three"+
				" forms:"+
				"\n\n"+
				"a whole number of seconds from now, for instance: '120'"+
				"\n\n"+
				"a time of day, HH:MM:SS, for instance: '23:59:00'."+
				" Today's date is used."+
				"\n\n"+
				"a date and time, MM:DD:YY:HH:MM:SS, for instance:"+
				" '01:15:27:23:59:00'"+
				"\n\n"+
				"All the fields must be zero-padded and the hours are on"+
				" a 24-hour clock."+
				" The time may instead be given as the single"+
				" trailing argument after '"+param.DfltTerminalParam+"'",
			param.AltNames("u", "at"),
			param.GroupName(paramGroupNameTime),
		)

		// allow the time to be given as a trailing argument
		err := ps.SetRemHandler(param.NullRemHandler{})
		if err != nil {
			return err
		}

		return nil
	}
}
