package analytics

import (
	"strconv"
	"strings"
	"time"
)

type DeadlineState int

const (
	DeadlineNone DeadlineState = iota
	DeadlineInvalid
	DeadlineExpired
	DeadlineActive
)

func (s DeadlineState) String() string {
	switch s {
	case DeadlineNone:
		return "none"
	case DeadlineInvalid:
		return "invalid"
	case DeadlineExpired:
		return "expired"
	case DeadlineActive:
		return "active"
	default:
		return "unknown"
	}
}

const dayMillis = int64(24 * time.Hour / time.Millisecond)

// Layouts tried in order after the epoch-millisecond form. Layouts without
// a zone are read in the caller's location.
var deadlineLayouts = []struct {
	layout string
	zoned  bool
}{
	{layout: "2/1/2006 15:04", zoned: false},
	{layout: "2/1/2006", zoned: false},
	{layout: time.RFC3339Nano, zoned: true},
	{layout: "2006-01-02T15:04:05.999999999", zoned: false},
	{layout: "2006-01-02T15:04", zoned: false},
	{layout: "2006-01-02 15:04:05", zoned: false},
	{layout: "2006-01-02", zoned: false},
}

// ParseDeadline resolves a stored deadline string. The state is DeadlineNone
// for blank input and DeadlineInvalid when no format matches; otherwise it is
// DeadlineActive and the returned time is meaningful.
func ParseDeadline(raw string, loc *time.Location) (time.Time, DeadlineState) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, DeadlineNone
	}
	if loc == nil {
		loc = time.UTC
	}

	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(ms).In(loc), DeadlineActive
	}

	for _, l := range deadlineLayouts {
		var (
			t   time.Time
			err error
		)
		if l.zoned {
			t, err = time.Parse(l.layout, raw)
		} else {
			t, err = time.ParseInLocation(l.layout, raw, loc)
		}
		if err == nil {
			return t, DeadlineActive
		}
	}
	return time.Time{}, DeadlineInvalid
}

// DaysRemaining returns the signed number of whole days from now until the
// deadline, rounded towards negative infinity. ok is false when the deadline
// is blank or cannot be parsed.
func DaysRemaining(raw string, now time.Time) (days int, ok bool) {
	d := EvaluateDeadline(raw, now)
	if d.State == DeadlineNone || d.State == DeadlineInvalid {
		return 0, false
	}
	return d.Days, true
}

type Deadline struct {
	State DeadlineState
	Days  int
}

func EvaluateDeadline(raw string, now time.Time) Deadline {
	at, state := ParseDeadline(raw, now.Location())
	if state != DeadlineActive {
		return Deadline{State: state}
	}

	diff := at.UnixMilli() - now.UnixMilli()
	days := diff / dayMillis
	if diff%dayMillis != 0 && diff < 0 {
		days--
	}

	if days < 0 {
		return Deadline{State: DeadlineExpired, Days: int(days)}
	}
	return Deadline{State: DeadlineActive, Days: int(days)}
}

func (d Deadline) Label() string {
	switch d.State {
	case DeadlineNone:
		return "No deadline"
	case DeadlineInvalid:
		return "Invalid date"
	case DeadlineExpired:
		return "Expired"
	}
	if d.Days == 1 {
		return "1 day left"
	}
	return strconv.Itoa(d.Days) + " days left"
}
