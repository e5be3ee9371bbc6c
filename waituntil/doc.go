/*
The waituntil program will wait until a given time and then either exit or
else perform some specified actions. The time can be given as a number of
seconds to wait, as a time of day (HH:MM:SS) today or as a full date and time
(MM:DD:YY:HH:MM:SS). If the time is badly formed or is not in the future the
problem is logged and the program exits with a non-zero status without
waiting.
*/
package main
