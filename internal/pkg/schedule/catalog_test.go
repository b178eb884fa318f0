package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validFeedRecord() FeedRecord {
	return FeedRecord{
		SectionID:    95001,
		CourseCode:   "CSE220",
		SectionName:  "1",
		CourseCredit: 3,
		Capacity:     35,
		ConsumedSeat: 30,
		RoomName:     "09B-10C",
		Faculties:    "TAS",
		SectionSchedule: FeedSectionSchedule{
			ClassSchedules: []FeedSchedule{
				{Day: "MONDAY", StartTime: "08:00", EndTime: "09:20"},
				{Day: "WEDNESDAY", StartTime: "08:00", EndTime: "09:20"},
			},
		},
		LabSchedules: []FeedSchedule{
			{Day: "TUESDAY", StartTime: "14:00", EndTime: "16:50", Room: "10A-06L"},
		},
	}
}

func TestNormalizeRecord(t *testing.T) {
	t.Run("Full Record", func(t *testing.T) {
		section, warnings, err := NormalizeRecord(validFeedRecord())
		assert.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, 95001, section.SectionID)
		assert.Equal(t, "CSE220", section.CourseCode)
		assert.Len(t, section.Meetings, 3)
		assert.Equal(t, MeetingClass, section.Meetings[0].Kind)
		assert.Equal(t, MeetingLab, section.Meetings[2].Kind)
		assert.Equal(t, Tuesday, section.Meetings[2].Day)
		assert.Equal(t, "10A-06L", section.Meetings[2].Location)
	})

	t.Run("Missing Section ID Fails Record", func(t *testing.T) {
		rec := validFeedRecord()
		rec.SectionID = 0
		_, _, err := NormalizeRecord(rec)
		assert.ErrorIs(t, err, ErrMalformedRecord)
	})

	t.Run("Missing Course Code Fails Record", func(t *testing.T) {
		rec := validFeedRecord()
		rec.CourseCode = ""
		_, _, err := NormalizeRecord(rec)
		assert.ErrorIs(t, err, ErrMalformedRecord)
	})

	t.Run("Optional Fields Stay Empty", func(t *testing.T) {
		rec := validFeedRecord()
		rec.Faculties = ""
		rec.RoomName = ""
		rec.PrerequisiteCourses = ""
		section, _, err := NormalizeRecord(rec)
		assert.NoError(t, err)
		assert.Empty(t, section.FacultyLabel, "TBA substitution belongs to the renderer")
		assert.Empty(t, section.RoomLabel)
	})

	t.Run("Inverted Meeting Dropped With Warning", func(t *testing.T) {
		rec := validFeedRecord()
		rec.SectionSchedule.ClassSchedules[1] = FeedSchedule{Day: "WEDNESDAY", StartTime: "09:20", EndTime: "08:00"}
		section, warnings, err := NormalizeRecord(rec)
		assert.NoError(t, err, "one bad meeting must not exclude the section")
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0].Reason, "start is not before end")
		assert.Len(t, section.Meetings, 2)
	})

	t.Run("Zero Length Meeting Dropped", func(t *testing.T) {
		rec := validFeedRecord()
		rec.LabSchedules[0].EndTime = rec.LabSchedules[0].StartTime
		section, warnings, err := NormalizeRecord(rec)
		assert.NoError(t, err)
		assert.Len(t, warnings, 1)
		assert.Len(t, section.Meetings, 2)
	})

	t.Run("Bad Time Dropped With Warning", func(t *testing.T) {
		rec := validFeedRecord()
		rec.SectionSchedule.ClassSchedules[0].StartTime = "8 AM"
		section, warnings, err := NormalizeRecord(rec)
		assert.NoError(t, err)
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0].Reason, "bad start time")
		assert.Len(t, section.Meetings, 2)
	})

	t.Run("Unknown Day Dropped With Warning", func(t *testing.T) {
		rec := validFeedRecord()
		rec.LabSchedules[0].Day = "SOMEDAY"
		section, warnings, err := NormalizeRecord(rec)
		assert.NoError(t, err)
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0].Reason, "unknown day")
		assert.Len(t, section.Meetings, 2)
	})
}

func TestParseWeekday(t *testing.T) {
	t.Run("Feed Day Names", func(t *testing.T) {
		day, err := ParseWeekday("SUNDAY")
		assert.NoError(t, err)
		assert.Equal(t, Sunday, day)

		day, err = ParseWeekday("saturday")
		assert.NoError(t, err)
		assert.Equal(t, Saturday, day)

		day, err = ParseWeekday("  Monday ")
		assert.NoError(t, err)
		assert.Equal(t, Monday, day)
	})

	t.Run("Unknown Day", func(t *testing.T) {
		_, err := ParseWeekday("FUNDAY")
		assert.Error(t, err)
	})
}
