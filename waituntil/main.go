package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/nickwells/tempus.mod/tempus"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/nickwells/waituntil/internal/stdparams"
	"github.com/nickwells/waituntil/waiter"
)

// Created: Sat Oct 17 09:12:40 2026

// prog holds program parameters and status
type prog struct {
	untilStr string
	doSleep  bool

	afterSleepCmd string
	msg           string
	showTime      bool
	showTimeFmt   string

	logCfg stdparams.LogConfig
}

// newProg returns a new prog instance with the default values set
func newProg() *prog {
	return &prog{
		doSleep:     true,
		showTimeFmt: tempus.FormatTimestamp,
		logCfg:      stdparams.NewLogConfig(),
	}
}

// noSleepClock is a Clock which reports the system time but does not
// sleep
type noSleepClock struct {
	waiter.RealClock
}

// Sleep does nothing
func (noSleepClock) Sleep(time.Duration) {}

// clock returns the Clock to be used by the waiter
func (prog *prog) clock() waiter.Clock {
	if prog.doSleep {
		return waiter.RealClock{}
	}

	return noSleepClock{}
}

// timeSpec returns the text of the time to wait until. It may be given
// either by the parameter or as a single trailing argument but not both.
func (prog *prog) timeSpec(rem []string) (string, error) {
	if len(rem) > 1 {
		return "", fmt.Errorf("only one time may be given, found %d: %q",
			len(rem), rem)
	}

	if len(rem) == 1 {
		if prog.untilStr != "" {
			return "", fmt.Errorf(
				"the time has been given both by the %q parameter (%q)"+
					" and as a trailing argument (%q)",
				paramNameUntil, prog.untilStr, rem[0])
		}

		return rem[0], nil
	}

	if prog.untilStr == "" {
		return "", errors.New("no time to wait until has been given")
	}

	return prog.untilStr, nil
}

// run waits until the time given and then performs the actions. It
// returns the exit status of the program.
func (prog *prog) run(
	log waiter.Logger, c waiter.Clock, rem []string, out io.Writer,
) int {
	specStr, err := prog.timeSpec(rem)
	if err != nil {
		log.Errorf("%v", err)
		log.Errorf("exiting...")

		return 1
	}

	w := waiter.New(waiter.WithLogger(log), waiter.WithClock(c))

	res, err := w.WaitUntil(waiter.Text(specStr))
	if err != nil {
		log.Errorf("exiting...")

		return 1
	}

	if verbose.IsOn() {
		reportWait(out, res, c.Now())
	}

	return prog.action(res, out)
}

// reportWait prints details of the wait: how long it was, the target time
// and the time of waking
func reportWait(out io.Writer, res waiter.Result, woke time.Time) {
	format := "15:04:05.000000"
	fmt.Fprintf(out, "waited for: %s\n", res.Duration)
	fmt.Fprintf(out, "     until: %s\n", res.Target.Format(format))
	fmt.Fprintf(out, "   woke at: %s\n", woke.Format(format))
}

// action will perform the actions that should happen after waking up from
// the wait. It returns the exit status of the program.
func (prog *prog) action(res waiter.Result, out io.Writer) int {
	if len(prog.msg) > 0 {
		fmt.Fprintln(out, prog.msg)
	}

	if err := prog.runShellCmd(out); err != nil {
		fmt.Fprintln(out, "Command failed:", err)
		return 1
	}

	if prog.showTime {
		fmt.Fprintln(out, res.Target.Format(prog.showTimeFmt))
	}

	return 0
}

// runShellCmd will run the given command, if any, in a subshell. Any
// output is written to out and any error is returned.
func (prog *prog) runShellCmd(out io.Writer) error {
	if len(prog.afterSleepCmd) == 0 {
		return nil
	}

	cmdOut, err := exec.Command("/bin/bash", "-c",
		prog.afterSleepCmd).CombinedOutput()
	fmt.Fprint(out, string(cmdOut))

	return err
}

func main() {
	prog := newProg()
	ps := makeParamSet(prog)
	ps.Parse()

	os.Exit(prog.run(prog.logCfg.Logger(), prog.clock(), ps.Remainder(),
		os.Stdout))
}
