package waiter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/nickwells/english.mod/english"
	"github.com/sirupsen/logrus"
)

const (
	// Layout is the layout of the full date and time: month, day, year,
	// hour, minute and second. It is the same as the strftime format
	// "%m:%d:%y:%H:%M:%S"
	Layout = "01:02:06:15:04:05"

	dateLayout = "01:02:06"
)

// maxSeconds is the largest number of seconds which can be held in a
// time.Duration
const maxSeconds = math.MaxInt64 / int64(time.Second)

// Result records the time that was waited until and how long the wait
// was calculated to be
type Result struct {
	Target   time.Time
	Duration time.Duration
}

// Waiter will block the calling goroutine until a given time. It holds no
// mutable state once constructed.
type Waiter struct {
	log    Logger
	clock  Clock
	layout string
}

// Option is used to configure a Waiter
type Option func(w *Waiter)

// WithLogger sets the Logger the Waiter reports to. A nil Logger is
// ignored.
func WithLogger(l Logger) Option {
	return func(w *Waiter) {
		if l != nil {
			w.log = l
		}
	}
}

// WithClock sets the Clock the Waiter uses to find the current time and to
// sleep. A nil Clock is ignored.
func WithClock(c Clock) Option {
	return func(w *Waiter) {
		if c != nil {
			w.clock = c
		}
	}
}

// New returns a Waiter configured by the options. By default it will use
// the system clock and a logrus logger writing to standard error.
func New(opts ...Option) *Waiter {
	w := &Waiter{
		clock:  RealClock{},
		layout: Layout,
	}

	for _, o := range opts {
		o(w)
	}

	if w.log == nil {
		w.log = NewLogger(logrus.InfoLevel, nil)
	}

	if dl, ok := w.log.(debugLogger); ok {
		dl.Debugf("%s logger instantiated", LogChannel)
	}

	return w
}

// Format returns the time formatted according to the full date and time
// layout
func (w *Waiter) Format(t time.Time) string {
	return t.Format(w.layout)
}

// ParseInstant parses the string according to the full date and time
// layout in the location of the Waiter's clock. A time in that location
// which is formatted by the Format method will parse back to the same time,
// truncated to the second.
func (w *Waiter) ParseInstant(s string) (time.Time, error) {
	return w.parse(s, s)
}

// parse parses the string according to the full date and time layout. Any
// error is reported against the input which may differ from the string
// parsed.
func (w *Waiter) parse(s, input string) (time.Time, error) {
	t, err := time.ParseInLocation(w.layout, s, w.clock.Now().Location())
	if err != nil {
		return t, &ParseError{
			Input:  input,
			Reason: "cannot convert to a date and time (" + w.layout + ")",
			Err:    err,
		}
	}

	return t, nil
}

// Resolve converts the Spec into a time which must be strictly in the
// future and calculates how long it is until then. It does not sleep.
//
// Any problem is logged and a *FatalInputError is returned. It wraps
// either a *ParseError or a *NotFutureError.
func (w *Waiter) Resolve(sp Spec) (Result, error) {
	target, err := w.target(sp)
	if err != nil {
		w.log.Errorf("%v", err)
		w.log.Errorf("invalid input, unable to calculate wait time")

		return Result{}, &FatalInputError{Spec: sp, Err: err}
	}

	d := target.Sub(w.clock.Now())
	if d < 0 {
		d = 0
	}

	return Result{Target: target, Duration: d}, nil
}

// WaitUntil resolves the Spec and then sleeps until the resulting time.
// If the Spec cannot be resolved it returns at once with the error from
// Resolve; the caller should not carry on as if the wait had happened.
func (w *Waiter) WaitUntil(sp Spec) (Result, error) {
	res, err := w.Resolve(sp)
	if err != nil {
		return res, err
	}

	w.log.Infof("pausing until %s, or %.3f seconds from now",
		res.Target.Format(time.DateTime), res.Duration.Seconds())

	w.clock.Sleep(res.Duration)

	return res, nil
}

// target returns the time that the Spec refers to
func (w *Waiter) target(sp Spec) (time.Time, error) {
	switch sp.kind {
	case KindInstant:
		return w.mustBeFuture(sp.instant)
	case KindSeconds:
		n, err := sp.secondsCount()
		if err != nil {
			return time.Time{}, err
		}

		now := w.clock.Now()
		t := now.Add(time.Duration(n) * time.Second)

		if n < 0 {
			return time.Time{}, &NotFutureError{Target: t, Now: now}
		}

		return t, nil
	case KindClock:
		today := w.clock.Now().Format(dateLayout)

		t, err := w.parse(today+fieldSep+sp.text, sp.text)
		if err != nil {
			return t, err
		}

		return w.mustBeFuture(t)
	case KindDateTime:
		t, err := w.ParseInstant(sp.text)
		if err != nil {
			return t, err
		}

		return w.mustBeFuture(t)
	}

	return time.Time{}, &ParseError{
		Input: sp.text,
		Reason: fmt.Sprintf("%d %s found, expected 1, %d or %d",
			sp.fields, english.Plural("field", sp.fields),
			clockFieldCount, dateTimeFieldCount),
	}
}

// mustBeFuture returns an error if the time is not strictly after the
// current time
func (w *Waiter) mustBeFuture(t time.Time) (time.Time, error) {
	now := w.clock.Now()
	if !t.After(now) {
		return time.Time{}, &NotFutureError{Target: t, Now: now}
	}

	return t, nil
}

// secondsCount converts the text of the Spec into a number of seconds
func (sp Spec) secondsCount() (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(sp.text), 10, 64)
	if err != nil {
		return 0, &ParseError{
			Input:  sp.text,
			Reason: "not a whole number of seconds",
			Err:    err,
		}
	}

	if n > maxSeconds || n < -maxSeconds {
		return 0, &ParseError{Input: sp.text, Reason: "too many seconds"}
	}

	return n, nil
}
