package waiter

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind records which of the supported shapes a Spec has
type Kind int

// These are the supported shapes of Spec. A Spec is KindMalformed if its
// text has a number of fields other than 1, 3 or 6.
const (
	KindMalformed Kind = iota
	KindInstant
	KindSeconds
	KindClock
	KindDateTime
)

const (
	fieldSep = ":"

	clockFieldCount    = 3
	dateTimeFieldCount = 6
)

// String returns a name for the Kind
func (k Kind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindInstant:
		return "instant"
	case KindSeconds:
		return "seconds"
	case KindClock:
		return "clock"
	case KindDateTime:
		return "date-time"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Spec describes the point in time to wait until. Construct one with
// Instant, Seconds, Text or SpecOf; the zero value is malformed.
type Spec struct {
	kind    Kind
	text    string
	instant time.Time
	fields  int
}

// Instant returns a Spec which resolves to the given time
func Instant(t time.Time) Spec {
	return Spec{kind: KindInstant, instant: t, text: t.Round(0).String()}
}

// Seconds returns a Spec which resolves to n seconds after the time it is
// resolved
func Seconds(n int64) Spec {
	return Spec{kind: KindSeconds, text: strconv.FormatInt(n, 10), fields: 1}
}

// Text classifies the string by the number of colon-separated fields it
// has. A single field is taken as a number of seconds but it is not
// converted until the Spec is resolved so that the error is reported along
// with any other problem.
func Text(s string) Spec {
	sp := Spec{text: s, fields: len(strings.Split(s, fieldSep))}

	switch sp.fields {
	case 1:
		sp.kind = KindSeconds
	case clockFieldCount:
		sp.kind = KindClock
	case dateTimeFieldCount:
		sp.kind = KindDateTime
	default:
		sp.kind = KindMalformed
	}

	return sp
}

// SpecOf classifies a loosely typed value. A time.Time gives an Instant,
// any Go integer gives Seconds and a string (or a fmt.Stringer) is
// classified as by Text. Any other type gives a *ParseError.
func SpecOf(v any) (Spec, error) {
	switch val := v.(type) {
	case Spec:
		return val, nil
	case time.Time:
		return Instant(val), nil
	case *time.Time:
		if val == nil {
			return Spec{}, &ParseError{Input: "<nil>", Reason: "nil time"}
		}

		return Instant(*val), nil
	case int:
		return Seconds(int64(val)), nil
	case int8:
		return Seconds(int64(val)), nil
	case int16:
		return Seconds(int64(val)), nil
	case int32:
		return Seconds(int64(val)), nil
	case int64:
		return Seconds(val), nil
	case uint:
		return unsignedSeconds(uint64(val))
	case uint8:
		return Seconds(int64(val)), nil
	case uint16:
		return Seconds(int64(val)), nil
	case uint32:
		return Seconds(int64(val)), nil
	case uint64:
		return unsignedSeconds(val)
	case string:
		return Text(val), nil
	case fmt.Stringer:
		return Text(val.String()), nil
	}

	return Spec{}, &ParseError{
		Input:  fmt.Sprintf("%v", v),
		Reason: fmt.Sprintf("unsupported type: %T", v),
	}
}

// unsignedSeconds converts the value into a Seconds Spec reporting an
// error if it will not fit
func unsignedSeconds(n uint64) (Spec, error) {
	if n > uint64(maxSeconds) {
		return Spec{}, &ParseError{
			Input:  strconv.FormatUint(n, 10),
			Reason: "too many seconds",
		}
	}

	return Seconds(int64(n)), nil
}

// Kind returns the shape of the Spec
func (sp Spec) Kind() Kind {
	return sp.kind
}

// String returns the Spec as it was given
func (sp Spec) String() string {
	return sp.text
}
