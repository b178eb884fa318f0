package routines

import (
	"preplan-service/internal/pkg/dto/responses"
	"preplan-service/internal/pkg/schedule"
)

func buildScheduleGrid(sections []schedule.Section, missing int) responses.ScheduleGrid {
	cells := make([]responses.ScheduleCell, 0, schedule.NumWeekdays*schedule.NumSlots)
	conflictCount := 0

	for day := schedule.Sunday; day <= schedule.Saturday; day++ {
		for slot := 0; slot < schedule.NumSlots; slot++ {
			occupants := schedule.CellOccupants(sections, day, slot)
			entries := make([]responses.ScheduleEntry, 0, len(occupants))
			for _, occupant := range occupants {
				entries = append(entries, responses.ScheduleEntry{
					SectionID:    occupant.Section.SectionID,
					CourseCode:   occupant.Section.CourseCode,
					SectionLabel: occupant.Section.SectionLabel,
					Room:         occupant.Meeting.Location,
					IsLab:        occupant.IsLab,
				})
			}
			conflict := len(entries) > 1
			if conflict {
				conflictCount++
			}
			cells = append(cells, responses.ScheduleCell{
				Day:       day.String(),
				Slot:      slot,
				SlotLabel: schedule.Slots[slot].Label(),
				Entries:   entries,
				Conflict:  conflict,
			})
		}
	}

	var totalCredits float64
	for _, section := range sections {
		totalCredits += section.CreditValue
	}

	return responses.ScheduleGrid{
		Cells:           cells,
		ConflictCount:   conflictCount,
		TotalCredits:    totalCredits,
		MissingSections: missing,
	}
}

func buildMergedScheduleGrid(view schedule.MergedView, missing int) responses.ScheduleGrid {
	cells := make([]responses.ScheduleCell, 0, schedule.NumWeekdays*schedule.NumSlots)
	conflictCount := 0

	for day := schedule.Sunday; day <= schedule.Saturday; day++ {
		for slot := 0; slot < schedule.NumSlots; slot++ {
			occupants := view.CellOccupants(day, slot)
			entries := make([]responses.ScheduleEntry, 0, len(occupants))
			for _, occupant := range occupants {
				entries = append(entries, responses.ScheduleEntry{
					SectionID:    occupant.Section.SectionID,
					CourseCode:   occupant.Section.CourseCode,
					SectionLabel: occupant.Section.SectionLabel,
					Room:         occupant.Meeting.Location,
					IsLab:        occupant.IsLab,
					OwnerLabel:   occupant.OwnerLabel,
					OwnerColor:   occupant.OwnerColor,
				})
			}
			conflict := len(entries) > 1
			if conflict {
				conflictCount++
			}
			cells = append(cells, responses.ScheduleCell{
				Day:       day.String(),
				Slot:      slot,
				SlotLabel: schedule.Slots[slot].Label(),
				Entries:   entries,
				Conflict:  conflict,
			})
		}
	}

	var totalCredits float64
	for _, section := range view.Sections() {
		totalCredits += section.CreditValue
	}

	return responses.ScheduleGrid{
		Cells:           cells,
		ConflictCount:   conflictCount,
		TotalCredits:    totalCredits,
		MissingSections: missing,
	}
}
