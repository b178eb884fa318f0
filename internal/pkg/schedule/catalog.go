package schedule

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is returned when a feed record is missing one of the
// load-bearing keys (sectionId, courseCode) every downstream component needs.
var ErrMalformedRecord = errors.New("catalog record missing sectionId or courseCode")

// FeedSchedule is one raw meeting entry from the catalog feed.
type FeedSchedule struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Room      string `json:"room,omitempty"`
}

// FeedSectionSchedule wraps the class meeting list the way the feed nests it.
type FeedSectionSchedule struct {
	ClassSchedules []FeedSchedule `json:"classSchedules"`
}

// FeedRecord mirrors one section object of the external catalog feed. The
// normalizer is the only reader of this shape.
type FeedRecord struct {
	SectionID           int                 `json:"sectionId"`
	CourseCode          string              `json:"courseCode"`
	SectionName         string              `json:"sectionName"`
	CourseCredit        float64             `json:"courseCredit"`
	Capacity            int                 `json:"capacity"`
	ConsumedSeat        int                 `json:"consumedSeat"`
	RoomName            string              `json:"roomName"`
	Faculties           string              `json:"faculties"`
	PrerequisiteCourses string              `json:"prerequisiteCourses"`
	SectionSchedule     FeedSectionSchedule `json:"sectionSchedule"`
	LabSchedules        []FeedSchedule      `json:"labSchedules"`
}

// MeetingWarning reports a single meeting that was dropped during
// normalization. Dropping a meeting never excludes the rest of an otherwise
// valid section.
type MeetingWarning struct {
	SectionID int
	Kind      MeetingKind
	Day       string
	StartTime string
	EndTime   string
	Reason    string
}

func (w MeetingWarning) String() string {
	return fmt.Sprintf("section %d: dropped %s meeting %s %s-%s: %s",
		w.SectionID, w.Kind, w.Day, w.StartTime, w.EndTime, w.Reason)
}

// NormalizeRecord converts a raw feed record into a Section. Missing
// sectionId or courseCode fails the whole record with ErrMalformedRecord.
// Individual meetings with an unknown day, an unparseable time, or
// start >= end are dropped and reported as warnings instead of failing the
// record. Optional display fields (faculty, room, prerequisites) are kept
// empty as-is; substituting "TBA" is the renderer's job.
func NormalizeRecord(rec FeedRecord) (Section, []MeetingWarning, error) {
	if rec.SectionID == 0 || rec.CourseCode == "" {
		return Section{}, nil, ErrMalformedRecord
	}

	section := Section{
		SectionID:        rec.SectionID,
		CourseCode:       rec.CourseCode,
		SectionLabel:     rec.SectionName,
		CreditValue:      rec.CourseCredit,
		Capacity:         rec.Capacity,
		ConsumedSeats:    rec.ConsumedSeat,
		FacultyLabel:     rec.Faculties,
		RoomLabel:        rec.RoomName,
		PrerequisiteExpr: rec.PrerequisiteCourses,
	}

	var warnings []MeetingWarning
	appendMeetings := func(entries []FeedSchedule, kind MeetingKind) {
		for _, entry := range entries {
			meeting, reason := normalizeMeeting(entry, kind)
			if reason != "" {
				warnings = append(warnings, MeetingWarning{
					SectionID: rec.SectionID,
					Kind:      kind,
					Day:       entry.Day,
					StartTime: entry.StartTime,
					EndTime:   entry.EndTime,
					Reason:    reason,
				})
				continue
			}
			section.Meetings = append(section.Meetings, meeting)
		}
	}
	appendMeetings(rec.SectionSchedule.ClassSchedules, MeetingClass)
	appendMeetings(rec.LabSchedules, MeetingLab)

	return section, warnings, nil
}

func normalizeMeeting(entry FeedSchedule, kind MeetingKind) (MeetingInterval, string) {
	day, err := ParseWeekday(entry.Day)
	if err != nil {
		return MeetingInterval{}, fmt.Sprintf("unknown day %q", entry.Day)
	}
	start, err := ParseClockTime(entry.StartTime)
	if err != nil {
		return MeetingInterval{}, fmt.Sprintf("bad start time %q", entry.StartTime)
	}
	end, err := ParseClockTime(entry.EndTime)
	if err != nil {
		return MeetingInterval{}, fmt.Sprintf("bad end time %q", entry.EndTime)
	}
	if !start.Before(end) {
		return MeetingInterval{}, "start is not before end"
	}
	return MeetingInterval{
		Day:      day,
		Start:    start,
		End:      end,
		Kind:     kind,
		Location: entry.Room,
	}, ""
}
