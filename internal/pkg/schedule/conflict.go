package schedule

// Conflict is one grid cell occupied by more than one meeting. Occupants keep
// the order the sections were added in ("first added, first shown"); nothing
// is sorted.
type Conflict struct {
	Day       Weekday
	Slot      int
	Occupants []Occupant
}

// CellHasConflict reports whether more than one meeting occupies the cell.
func CellHasConflict(sections []Section, day Weekday, slot int) bool {
	return len(CellOccupants(sections, day, slot)) > 1
}

// AllConflicts scans the whole grid and returns every conflicting cell.
// The engine only reports; whether a conflict blocks an add is the caller's
// policy.
func AllConflicts(sections []Section) []Conflict {
	var conflicts []Conflict
	for day := Sunday; day <= Saturday; day++ {
		for slot := 0; slot < NumSlots; slot++ {
			occupants := CellOccupants(sections, day, slot)
			if len(occupants) > 1 {
				conflicts = append(conflicts, Conflict{
					Day:       day,
					Slot:      slot,
					Occupants: occupants,
				})
			}
		}
	}
	return conflicts
}
