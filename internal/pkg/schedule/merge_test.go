package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMergedView(t *testing.T) {
	cse220 := testSection(101, "CSE220", "1", 3, classMeeting(Monday, 8, 0, 9, 20))
	mat215 := testSection(201, "MAT215", "1", 3, classMeeting(Monday, 8, 0, 9, 20))

	t.Run("Shared Section Is Not Deduplicated", func(t *testing.T) {
		merged, err := BuildMergedView([]Contribution{
			{OwnerLabel: "Rafi", Sections: []Section{cse220}},
			{OwnerLabel: "Nusrat", Sections: []Section{cse220}},
		})
		assert.NoError(t, err)

		occupants := merged.CellOccupants(Monday, 0)
		assert.Len(t, occupants, 2, "both commitments must stay visible")
		assert.Equal(t, "Rafi", occupants[0].OwnerLabel)
		assert.Equal(t, "Nusrat", occupants[1].OwnerLabel)
		assert.NotEqual(t, occupants[0].OwnerColor, occupants[1].OwnerColor)
	})

	t.Run("Palette Colors Assigned By Contribution Order", func(t *testing.T) {
		contributions := make([]Contribution, 3)
		for i := range contributions {
			contributions[i] = Contribution{OwnerLabel: fmt.Sprintf("friend-%d", i)}
		}
		merged, err := BuildMergedView(contributions)
		assert.NoError(t, err)
		assert.Equal(t, ColorPalette[0], merged.Contributions[0].OwnerColor)
		assert.Equal(t, ColorPalette[1], merged.Contributions[1].OwnerColor)
		assert.Equal(t, ColorPalette[2], merged.Contributions[2].OwnerColor)
	})

	t.Run("Explicit Color Wins Over Palette", func(t *testing.T) {
		merged, err := BuildMergedView([]Contribution{
			{OwnerLabel: "Rafi", OwnerColor: "#000000"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "#000000", merged.Contributions[0].OwnerColor)
	})

	t.Run("Contributor Cap", func(t *testing.T) {
		contributions := make([]Contribution, MaxContributors+1)
		for i := range contributions {
			contributions[i] = Contribution{OwnerLabel: fmt.Sprintf("friend-%d", i)}
		}
		_, err := BuildMergedView(contributions)
		assert.ErrorIs(t, err, ErrTooManyContributors)

		_, err = BuildMergedView(contributions[:MaxContributors])
		assert.NoError(t, err)
	})

	t.Run("Merged Conflicts Use Unioned Sections", func(t *testing.T) {
		merged, err := BuildMergedView([]Contribution{
			{OwnerLabel: "Rafi", Sections: []Section{cse220}},
			{OwnerLabel: "Nusrat", Sections: []Section{mat215}},
		})
		assert.NoError(t, err)

		conflicts := merged.Conflicts()
		assert.Len(t, conflicts, 1)
		assert.Equal(t, Monday, conflicts[0].Day)
		assert.Equal(t, 0, conflicts[0].Slot)
	})
}

func TestResolveSectionIDs(t *testing.T) {
	catalog := []Section{
		testSection(101, "CSE220", "1", 3),
		testSection(201, "MAT215", "1", 3),
		testSection(301, "PHY111", "1", 3),
	}

	t.Run("All Present", func(t *testing.T) {
		sections, missing := ResolveSectionIDs(catalog, []int{301, 101})
		assert.Zero(t, missing)
		assert.Len(t, sections, 2)
		assert.Equal(t, 301, sections[0].SectionID, "resolution keeps the saved order")
		assert.Equal(t, 101, sections[1].SectionID)
	})

	t.Run("Stale Ids Dropped And Counted", func(t *testing.T) {
		sections, missing := ResolveSectionIDs(catalog, []int{101, 999, 888})
		assert.Equal(t, 2, missing)
		assert.Len(t, sections, 1)
	})

	t.Run("Empty Routine", func(t *testing.T) {
		sections, missing := ResolveSectionIDs(catalog, nil)
		assert.Zero(t, missing)
		assert.Empty(t, sections)
	})
}
