package models

import (
	"preplan-service/internal/pkg/schedule"
)

type CatalogMeeting struct {
	Day      string `bson:"day"`
	Start    string `bson:"start"`
	End      string `bson:"end"`
	Kind     string `bson:"kind"`
	Location string `bson:"location,omitempty"`
}

// CatalogSection is the persisted form of a normalized section. Meetings
// are stored pre-validated so reads never re-run feed normalization.
type CatalogSection struct {
	SectionID     int              `bson:"_id"`
	CourseCode    string           `bson:"courseCode"`
	SectionLabel  string           `bson:"sectionLabel"`
	CreditValue   float64          `bson:"creditValue"`
	Capacity      int              `bson:"capacity"`
	ConsumedSeats int              `bson:"consumedSeats"`
	FacultyLabel  string           `bson:"facultyLabel,omitempty"`
	RoomLabel     string           `bson:"roomLabel,omitempty"`
	Prerequisite  string           `bson:"prerequisite,omitempty"`
	Meetings      []CatalogMeeting `bson:"meetings"`
	TimeModel     `bson:",inline"`
}

func NewCatalogSection(section schedule.Section) CatalogSection {
	meetings := make([]CatalogMeeting, 0, len(section.Meetings))
	for _, meeting := range section.Meetings {
		meetings = append(meetings, CatalogMeeting{
			Day:      meeting.Day.String(),
			Start:    meeting.Start.String(),
			End:      meeting.End.String(),
			Kind:     meeting.Kind.String(),
			Location: meeting.Location,
		})
	}
	return CatalogSection{
		SectionID:     section.SectionID,
		CourseCode:    section.CourseCode,
		SectionLabel:  section.SectionLabel,
		CreditValue:   section.CreditValue,
		Capacity:      section.Capacity,
		ConsumedSeats: section.ConsumedSeats,
		FacultyLabel:  section.FacultyLabel,
		RoomLabel:     section.RoomLabel,
		Prerequisite:  section.PrerequisiteExpr,
		Meetings:      meetings,
	}
}

// ToScheduleSection rebuilds the engine section. Stored meetings were
// validated at ingest, so parse failures here mean a corrupted document
// and the meeting is skipped.
func (cs CatalogSection) ToScheduleSection() schedule.Section {
	meetings := make([]schedule.MeetingInterval, 0, len(cs.Meetings))
	for _, meeting := range cs.Meetings {
		day, err := schedule.ParseWeekday(meeting.Day)
		if err != nil {
			continue
		}
		start, err := schedule.ParseClockTime(meeting.Start)
		if err != nil {
			continue
		}
		end, err := schedule.ParseClockTime(meeting.End)
		if err != nil {
			continue
		}
		kind := schedule.MeetingClass
		if meeting.Kind == schedule.MeetingLab.String() {
			kind = schedule.MeetingLab
		}
		meetings = append(meetings, schedule.MeetingInterval{
			Day:      day,
			Start:    start,
			End:      end,
			Kind:     kind,
			Location: meeting.Location,
		})
	}
	return schedule.Section{
		SectionID:        cs.SectionID,
		CourseCode:       cs.CourseCode,
		SectionLabel:     cs.SectionLabel,
		CreditValue:      cs.CreditValue,
		Capacity:         cs.Capacity,
		ConsumedSeats:    cs.ConsumedSeats,
		Meetings:         meetings,
		FacultyLabel:     cs.FacultyLabel,
		RoomLabel:        cs.RoomLabel,
		PrerequisiteExpr: cs.Prerequisite,
	}
}
