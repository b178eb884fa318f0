package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func classMeeting(day Weekday, startH, startM, endH, endM int) MeetingInterval {
	return MeetingInterval{
		Day:   day,
		Start: TimeOfDay{Hour: startH, Minute: startM},
		End:   TimeOfDay{Hour: endH, Minute: endM},
		Kind:  MeetingClass,
	}
}

func labMeeting(day Weekday, startH, startM, endH, endM int) MeetingInterval {
	m := classMeeting(day, startH, startM, endH, endM)
	m.Kind = MeetingLab
	return m
}

func testSection(id int, course, label string, credits float64, meetings ...MeetingInterval) Section {
	return Section{
		SectionID:    id,
		CourseCode:   course,
		SectionLabel: label,
		CreditValue:  credits,
		Meetings:     meetings,
	}
}

func TestCellOccupants(t *testing.T) {
	t.Run("Meeting Matching Slot Exactly", func(t *testing.T) {
		sections := []Section{
			testSection(1, "CSE220", "1", 3, classMeeting(Monday, 8, 0, 9, 20)),
		}
		occupants := CellOccupants(sections, Monday, 0)
		assert.Len(t, occupants, 1)
		assert.Equal(t, 1, occupants[0].Section.SectionID)
		assert.False(t, occupants[0].IsLab)
	})

	t.Run("Wrong Day Is Empty", func(t *testing.T) {
		sections := []Section{
			testSection(1, "CSE220", "1", 3, classMeeting(Monday, 8, 0, 9, 20)),
		}
		assert.Empty(t, CellOccupants(sections, Tuesday, 0))
	})

	t.Run("Meeting Spanning Two Slots Touches Both", func(t *testing.T) {
		// A three-hour lab 14:00-16:50 covers slots 4 and 5.
		sections := []Section{
			testSection(2, "CSE220", "1", 3, labMeeting(Tuesday, 14, 0, 16, 50)),
		}
		assert.Len(t, CellOccupants(sections, Tuesday, 4), 1)
		assert.Len(t, CellOccupants(sections, Tuesday, 5), 1)
		assert.Empty(t, CellOccupants(sections, Tuesday, 3))
		assert.Empty(t, CellOccupants(sections, Tuesday, 6))
	})

	t.Run("Meeting Starting Before Slot Still Counts", func(t *testing.T) {
		// Starts inside slot 0 but runs into slot 1; start-time-only
		// membership would miss the second slot.
		sections := []Section{
			testSection(3, "MAT215", "2", 3, classMeeting(Sunday, 9, 0, 10, 0)),
		}
		assert.Len(t, CellOccupants(sections, Sunday, 0), 1)
		assert.Len(t, CellOccupants(sections, Sunday, 1), 1)
	})

	t.Run("Meeting Ending At Slot Start Does Not Count", func(t *testing.T) {
		sections := []Section{
			testSection(4, "PHY111", "1", 3, classMeeting(Sunday, 8, 0, 9, 30)),
		}
		// Ends exactly at slot 1's start; half-open intervals keep it out.
		assert.Len(t, CellOccupants(sections, Sunday, 0), 1)
		assert.Empty(t, CellOccupants(sections, Sunday, 1))
	})

	t.Run("Lab Flag Follows Meeting Kind", func(t *testing.T) {
		sections := []Section{
			testSection(5, "CSE110", "1", 3,
				classMeeting(Monday, 8, 0, 9, 20),
				labMeeting(Monday, 11, 0, 12, 20),
			),
		}
		class := CellOccupants(sections, Monday, 0)
		lab := CellOccupants(sections, Monday, 2)
		assert.False(t, class[0].IsLab)
		assert.True(t, lab[0].IsLab)
	})

	t.Run("Out Of Range Slot", func(t *testing.T) {
		sections := []Section{
			testSection(1, "CSE220", "1", 3, classMeeting(Monday, 8, 0, 9, 20)),
		}
		assert.Empty(t, CellOccupants(sections, Monday, -1))
		assert.Empty(t, CellOccupants(sections, Monday, NumSlots))
	})
}

func TestSlotLabels(t *testing.T) {
	assert.Equal(t, "8:00 AM-9:20 AM", Slots[0].Label())
	assert.Equal(t, "12:30 PM-1:50 PM", Slots[3].Label())
	assert.Equal(t, "5:00 PM-6:20 PM", Slots[6].Label())
}

func TestConflicts(t *testing.T) {
	t.Run("Two Sections Same Cell", func(t *testing.T) {
		sections := []Section{
			testSection(1, "CSE220", "1", 3, classMeeting(Monday, 8, 0, 9, 20)),
			testSection(2, "CSE220", "2", 3, classMeeting(Monday, 8, 0, 9, 20)),
		}

		assert.True(t, CellHasConflict(sections, Monday, 0))

		conflicts := AllConflicts(sections)
		assert.Len(t, conflicts, 1)
		assert.Equal(t, Monday, conflicts[0].Day)
		assert.Equal(t, 0, conflicts[0].Slot)
		assert.Len(t, conflicts[0].Occupants, 2)
	})

	t.Run("Occupants Keep Insertion Order", func(t *testing.T) {
		sections := []Section{
			testSection(9, "ENG101", "5", 3, classMeeting(Thursday, 11, 0, 12, 20)),
			testSection(3, "HUM103", "1", 3, classMeeting(Thursday, 11, 0, 12, 20)),
		}
		conflicts := AllConflicts(sections)
		assert.Len(t, conflicts, 1)
		assert.Equal(t, 9, conflicts[0].Occupants[0].Section.SectionID)
		assert.Equal(t, 3, conflicts[0].Occupants[1].Section.SectionID)
	})

	t.Run("Back To Back Never Conflicts", func(t *testing.T) {
		sections := []Section{
			testSection(1, "CSE220", "1", 3, classMeeting(Monday, 8, 0, 9, 20)),
			testSection(2, "MAT110", "1", 3, classMeeting(Monday, 9, 20, 10, 50)),
		}
		assert.Empty(t, AllConflicts(sections))
	})

	t.Run("No Sections No Conflicts", func(t *testing.T) {
		assert.Empty(t, AllConflicts(nil))
		assert.False(t, CellHasConflict(nil, Sunday, 0))
	})
}
