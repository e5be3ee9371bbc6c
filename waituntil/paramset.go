package main

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/waituntil/internal/stdparams"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/nickwells/versionparams.mod/versionparams"
)

// makeParamSet generates the param set ready for parsing
func makeParamSet(prog *prog) *param.PSet {
	return paramset.NewOrPanic(
		verbose.AddParams,
		versionparams.AddParams,

		addParams(prog),
		addTimeParams(prog),
		addActionParams(prog),
		stdparams.AddLogParams(&prog.logCfg),

		addExamples,

		param.SetProgramDescription(
			"This will wait until a given time and then perform the"+
				" chosen actions."+
				"\n\n"+
				"The time can be given as a whole number of seconds"+
				" from now, as a time of day (HH:MM:SS) in which case"+
				" today's date is used, or as a full date and time"+
				" (MM:DD:YY:HH:MM:SS). All the fields must be zero-padded"+
				" and the hours are on a 24-hour clock. The local"+
				" timezone is used."+
				"\n\n"+
				"If the time cannot be understood or is not in the future"+
				" the problem is logged and the program exits with a"+
				" non-zero status without waiting."),
	)
}
