package main

import "github.com/nickwells/param.mod/v6/param"

// addExamples this will add examples to the usage message.
func addExamples(ps *param.PSet) error {
	ps.AddExample(`waituntil -until 90 -message "hello"`,
		"This will wait for 90 seconds and then print the message 'hello'")
	ps.AddExample(`waituntil -- 23:59:00`,
		"This will wait until one minute to midnight today. If it is"+
			" already later than that the program will report an error"+
			" and exit with a non-zero status.")
	ps.AddExample(
		`waituntil -at 01:15:27:06:30:00 -do "make release" -show-time`,
		"This will wait until 06:30 on the 15th of January 2027 and then"+
			" run 'make release' and print the time it woke up at.")
	ps.AddExample(
		`waituntil -u 300 -log-format json -log-level debug`,
		"This will wait for 5 minutes, reporting its progress as JSON")

	return nil
}
