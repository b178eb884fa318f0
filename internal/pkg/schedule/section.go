package schedule

import (
	"errors"
	"strings"
)

// Weekday indexes the seven columns of the routine grid, Sunday first to
// match the campus week.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{
	"SUNDAY",
	"MONDAY",
	"TUESDAY",
	"WEDNESDAY",
	"THURSDAY",
	"FRIDAY",
	"SATURDAY",
}

var errUnknownWeekday = errors.New("unknown weekday")

func (d Weekday) String() string {
	if d < Sunday || d > Saturday {
		return "UNKNOWN"
	}
	return weekdayNames[d]
}

// ParseWeekday accepts the upper-case day names used by the catalog feed
// ("SUNDAY".."SATURDAY"), case-insensitively.
func ParseWeekday(raw string) (Weekday, error) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	for i, candidate := range weekdayNames {
		if candidate == name {
			return Weekday(i), nil
		}
	}
	return 0, errUnknownWeekday
}

// MeetingKind distinguishes class meetings from lab meetings; labs render
// differently and carry their own schedule list in the feed.
type MeetingKind int

const (
	MeetingClass MeetingKind = iota
	MeetingLab
)

func (k MeetingKind) String() string {
	if k == MeetingLab {
		return "LAB"
	}
	return "CLASS"
}

// MeetingInterval is one weekly meeting of a section. Start < End always
// holds for normalized meetings; records violating it are dropped during
// normalization.
type MeetingInterval struct {
	Day      Weekday
	Start    TimeOfDay
	End      TimeOfDay
	Kind     MeetingKind
	Location string
}

// Section is a normalized course section. It is read-only after
// normalization: every selection, projection and merge operation works on
// copies and never mutates a Section, so one catalog snapshot may back any
// number of concurrent selection sets.
type Section struct {
	SectionID        int
	CourseCode       string
	SectionLabel     string
	CreditValue      float64
	Capacity         int
	ConsumedSeats    int
	Meetings         []MeetingInterval
	FacultyLabel     string
	RoomLabel        string
	PrerequisiteExpr string
}

// MeetingsOn returns the section's meetings that fall on the given weekday,
// in feed order.
func (s Section) MeetingsOn(day Weekday) []MeetingInterval {
	var meetings []MeetingInterval
	for _, m := range s.Meetings {
		if m.Day == day {
			meetings = append(meetings, m)
		}
	}
	return meetings
}
