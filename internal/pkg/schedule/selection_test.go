package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionSetTryAdd(t *testing.T) {
	cse220a := testSection(101, "CSE220", "1", 3, classMeeting(Monday, 8, 0, 9, 20))
	cse220b := testSection(102, "CSE220", "2", 3, classMeeting(Tuesday, 8, 0, 9, 20))
	mat215 := testSection(201, "MAT215", "1", 3, classMeeting(Wednesday, 8, 0, 9, 20))

	t.Run("Add Succeeds", func(t *testing.T) {
		var set SelectionSet
		set, rejection := set.TryAdd(cse220a)
		assert.Nil(t, rejection)
		assert.Equal(t, 3.0, set.TotalCredits())
		assert.True(t, set.Contains(101))
	})

	t.Run("Duplicate Section Rejected", func(t *testing.T) {
		var set SelectionSet
		set, _ = set.TryAdd(cse220a)
		next, rejection := set.TryAdd(cse220a)
		assert.NotNil(t, rejection)
		assert.Equal(t, RejectDuplicateSection, rejection.Reason)
		assert.Equal(t, set.Sections(), next.Sections(), "rejected add must leave the set unchanged")
	})

	t.Run("Duplicate Course Rejected", func(t *testing.T) {
		var set SelectionSet
		set, _ = set.TryAdd(cse220a)
		next, rejection := set.TryAdd(cse220b)
		assert.NotNil(t, rejection)
		assert.Equal(t, RejectDuplicateCourse, rejection.Reason)
		assert.Equal(t, 3.0, next.TotalCredits())
		assert.False(t, next.Contains(102), "no silent swap of sections")
	})

	t.Run("Duplicate Section Checked Before Duplicate Course", func(t *testing.T) {
		var set SelectionSet
		set, _ = set.TryAdd(cse220a)
		_, rejection := set.TryAdd(cse220a)
		assert.Equal(t, RejectDuplicateSection, rejection.Reason)
	})

	t.Run("Credit Cap Is Strict", func(t *testing.T) {
		var set SelectionSet
		courses := []string{"CSE220", "MAT215", "PHY111", "CHE101", "ENG102"}
		for i, course := range courses {
			var rejection *AddRejection
			set, rejection = set.TryAdd(testSection(300+i, course, "1", 3))
			assert.Nil(t, rejection)
		}
		assert.Equal(t, 15.0, set.TotalCredits())

		next, rejection := set.TryAdd(testSection(400, "BIO101", "1", 1))
		assert.NotNil(t, rejection)
		assert.Equal(t, RejectCreditCapExceeded, rejection.Reason)
		assert.Equal(t, "Cannot add more than 15 credits!", rejection.Message())
		assert.Equal(t, 15.0, next.TotalCredits())
	})

	t.Run("Exactly At Cap Succeeds", func(t *testing.T) {
		var set SelectionSet
		set, _ = set.TryAdd(testSection(500, "CSE220", "1", 12))
		next, rejection := set.TryAdd(testSection(501, "MAT215", "1", 3))
		assert.Nil(t, rejection)
		assert.Equal(t, 15.0, next.TotalCredits())
	})

	t.Run("Prereg Walkthrough", func(t *testing.T) {
		var set SelectionSet
		var rejection *AddRejection

		set, rejection = set.TryAdd(cse220a)
		assert.Nil(t, rejection)
		assert.Equal(t, 3.0, set.TotalCredits())

		set, rejection = set.TryAdd(mat215)
		assert.Nil(t, rejection)
		assert.Equal(t, 6.0, set.TotalCredits())

		mat215b := testSection(202, "MAT215", "2", 3)
		set, rejection = set.TryAdd(mat215b)
		assert.NotNil(t, rejection)
		assert.Equal(t, RejectDuplicateCourse, rejection.Reason)
		assert.Equal(t, 6.0, set.TotalCredits())

		for i, course := range []string{"PHY111", "CHE110", "ENG091"} {
			set, rejection = set.TryAdd(testSection(600+i, course, "1", 3))
			assert.Nil(t, rejection)
		}
		assert.Equal(t, 15.0, set.TotalCredits())

		_, rejection = set.TryAdd(testSection(700, "BIO101", "1", 3))
		assert.NotNil(t, rejection)
		assert.Equal(t, RejectCreditCapExceeded, rejection.Reason)
	})
}

func TestSelectionSetRemove(t *testing.T) {
	cse220 := testSection(101, "CSE220", "1", 3)
	mat215 := testSection(201, "MAT215", "1", 3)

	t.Run("Remove Restores Original Set", func(t *testing.T) {
		var set SelectionSet
		set, _ = set.TryAdd(cse220)

		added, rejection := set.TryAdd(mat215)
		assert.Nil(t, rejection)

		restored := added.Remove(mat215.SectionID)
		assert.Equal(t, set.Sections(), restored.Sections())
	})

	t.Run("Remove Absent Is No-Op", func(t *testing.T) {
		var set SelectionSet
		set, _ = set.TryAdd(cse220)
		assert.Equal(t, set.Sections(), set.Remove(999).Sections())
	})

	t.Run("Re-Add Moves To End", func(t *testing.T) {
		var set SelectionSet
		set, _ = set.TryAdd(cse220)
		set, _ = set.TryAdd(mat215)

		set = set.Remove(cse220.SectionID)
		set, rejection := set.TryAdd(cse220)
		assert.Nil(t, rejection)

		sections := set.Sections()
		assert.Equal(t, 201, sections[0].SectionID)
		assert.Equal(t, 101, sections[1].SectionID)
	})
}

func TestSelectionSetToggle(t *testing.T) {
	cse220 := testSection(101, "CSE220", "1", 3)

	t.Run("Toggle Adds When Absent", func(t *testing.T) {
		var set SelectionSet
		set, rejection := set.Toggle(cse220)
		assert.Nil(t, rejection)
		assert.True(t, set.Contains(101))
	})

	t.Run("Toggle Removes When Present", func(t *testing.T) {
		var set SelectionSet
		set, _ = set.TryAdd(cse220)
		set, rejection := set.Toggle(cse220)
		assert.Nil(t, rejection)
		assert.False(t, set.Contains(101))
	})

	t.Run("Toggle Surfaces Add Rejection", func(t *testing.T) {
		var set SelectionSet
		set, _ = set.TryAdd(cse220)
		_, rejection := set.Toggle(testSection(102, "CSE220", "2", 3))
		assert.NotNil(t, rejection)
		assert.Equal(t, RejectDuplicateCourse, rejection.Reason)
	})
}

func TestSelectionSetConflicts(t *testing.T) {
	t.Run("Two Sections Same Monday Slot", func(t *testing.T) {
		var set SelectionSet
		set, _ = set.TryAdd(testSection(101, "CSE220", "1", 3, classMeeting(Monday, 8, 0, 9, 20)))

		// Different course, same cell; the engine reports but never vetoes.
		set, rejection := set.TryAdd(testSection(102, "MAT110", "2", 3, classMeeting(Monday, 8, 0, 9, 20)))
		assert.Nil(t, rejection)

		assert.True(t, CellHasConflict(set.Sections(), Monday, 0))
		conflicts := set.Conflicts()
		assert.Len(t, conflicts, 1)
		assert.Equal(t, Monday, conflicts[0].Day)
		assert.Equal(t, 0, conflicts[0].Slot)
		assert.Len(t, conflicts[0].Occupants, 2)
	})
}
