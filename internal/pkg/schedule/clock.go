package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidTimeFormat is returned when a clock time string does not match
// the 24-hour "HH:MM" shape used by the catalog feed.
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

var clockTimePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// TimeOfDay is a wall-clock time without a date or timezone. The campus
// schedule is single-timezone, so comparisons happen on minutes since
// midnight only.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseClockTime parses a 24-hour "HH:MM" string.
func ParseClockTime(raw string) (TimeOfDay, error) {
	if !clockTimePattern.MatchString(raw) {
		return TimeOfDay{}, ErrInvalidTimeFormat
	}
	hour, _ := strconv.Atoi(raw[:2])
	minute, _ := strconv.Atoi(raw[3:])
	if hour > 23 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeFormat
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// Minutes returns minutes since midnight, the total order for all comparisons.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

// String renders t back in the feed's 24-hour "HH:MM" shape.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// FormatTwelveHour renders t as "h:mm AM/PM". Hour 0 displays as 12 AM and
// hour 12 as 12 PM.
func (t TimeOfDay) FormatTwelveHour() string {
	period := "AM"
	if t.Hour >= 12 {
		period = "PM"
	}
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, period)
}

// IntervalsOverlap reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) share any minute. Touching endpoints do not count as overlap,
// so back-to-back meetings never collide.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart.Minutes() < bEnd.Minutes() && bStart.Minutes() < aEnd.Minutes()
}
