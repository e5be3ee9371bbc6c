/*
Package waiter provides a Waiter which will block the calling goroutine
until some point in the future has been reached.

The point to wait until is given as a Spec which can be constructed from an
absolute time, from a number of seconds from now or from text. The text can
take one of three forms, all fields being zero-padded decimal numbers on a
24-hour clock:

	SS                 a whole number of seconds from now
	HH:MM:SS           a time of day, today's date is used
	MM:DD:YY:HH:MM:SS  a full date and time

Any problem with the Spec is logged and reported as a *FatalInputError; it
is for the caller to decide whether or not to carry on.
*/
package waiter
