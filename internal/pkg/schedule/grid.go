package schedule

// The routine grid is fixed: seven weekdays by seven teaching slots. Slots
// are contiguous within a day but never overlap each other; the gaps between
// them (09:20-09:30 etc.) belong to no slot.
const (
	NumWeekdays = 7
	NumSlots    = 7
)

// Slot is one fixed time band of the grid.
type Slot struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Slots holds the campus-wide teaching bands, in display order.
var Slots = [NumSlots]Slot{
	{Start: TimeOfDay{Hour: 8, Minute: 0}, End: TimeOfDay{Hour: 9, Minute: 20}},
	{Start: TimeOfDay{Hour: 9, Minute: 30}, End: TimeOfDay{Hour: 10, Minute: 50}},
	{Start: TimeOfDay{Hour: 11, Minute: 0}, End: TimeOfDay{Hour: 12, Minute: 20}},
	{Start: TimeOfDay{Hour: 12, Minute: 30}, End: TimeOfDay{Hour: 13, Minute: 50}},
	{Start: TimeOfDay{Hour: 14, Minute: 0}, End: TimeOfDay{Hour: 15, Minute: 20}},
	{Start: TimeOfDay{Hour: 15, Minute: 30}, End: TimeOfDay{Hour: 16, Minute: 50}},
	{Start: TimeOfDay{Hour: 17, Minute: 0}, End: TimeOfDay{Hour: 18, Minute: 20}},
}

// Label renders the slot as "8:00 AM-9:20 AM" for table headers.
func (s Slot) Label() string {
	return s.Start.FormatTwelveHour() + "-" + s.End.FormatTwelveHour()
}

// Occupant is one (section, meeting) pair occupying a grid cell.
type Occupant struct {
	Section Section
	Meeting MeetingInterval
	IsLab   bool
}

// CellOccupants returns every meeting of the given sections that touches the
// cell (day, slot), in the order the sections were supplied. Membership uses
// full-interval overlap: a meeting that starts mid-slot or spans two slots is
// attributed to every slot it touches, not just the one containing its start
// time.
func CellOccupants(sections []Section, day Weekday, slot int) []Occupant {
	if slot < 0 || slot >= NumSlots {
		return nil
	}
	band := Slots[slot]

	var occupants []Occupant
	for _, section := range sections {
		for _, meeting := range section.MeetingsOn(day) {
			if !IntervalsOverlap(meeting.Start, meeting.End, band.Start, band.End) {
				continue
			}
			occupants = append(occupants, Occupant{
				Section: section,
				Meeting: meeting,
				IsLab:   meeting.Kind == MeetingLab,
			})
		}
	}
	return occupants
}
