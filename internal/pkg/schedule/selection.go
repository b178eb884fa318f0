package schedule

import "fmt"

// CreditCap is the hard upper bound on a selection's total credits.
const CreditCap = 15

// RejectionReason codes why TryAdd refused a section. The codes double as
// render keys for the UI's toast lookup table.
type RejectionReason string

const (
	RejectDuplicateSection  RejectionReason = "DuplicateSection"
	RejectDuplicateCourse   RejectionReason = "DuplicateCourse"
	RejectCreditCapExceeded RejectionReason = "CreditCapExceeded"
)

// AddRejection is the value-level outcome of a refused add. It is never
// raised as a panic; callers render it as user feedback.
type AddRejection struct {
	Reason  RejectionReason
	Section Section
}

// Message returns the user-facing text for the rejection.
func (r *AddRejection) Message() string {
	switch r.Reason {
	case RejectDuplicateSection:
		return "This section is already in your routine!"
	case RejectDuplicateCourse:
		return fmt.Sprintf("You already picked a section of %s. Remove it first!", r.Section.CourseCode)
	case RejectCreditCapExceeded:
		return fmt.Sprintf("Cannot add more than %d credits!", CreditCap)
	}
	return "Cannot add this section!"
}

// SelectionSet is a student's in-progress pick of sections. The zero value
// is an empty, ready-to-use set. All mutations return a new value; the
// receiver is never modified, so sets can be shared and replayed freely.
type SelectionSet struct {
	sections []Section
}

// Sections returns the picked sections in insertion order.
func (s SelectionSet) Sections() []Section {
	out := make([]Section, len(s.sections))
	copy(out, s.sections)
	return out
}

func (s SelectionSet) Len() int {
	return len(s.sections)
}

// TotalCredits sums the credit values of every picked section.
func (s SelectionSet) TotalCredits() float64 {
	var total float64
	for _, section := range s.sections {
		total += section.CreditValue
	}
	return total
}

// Contains reports whether the exact section is already picked.
func (s SelectionSet) Contains(sectionID int) bool {
	for _, section := range s.sections {
		if section.SectionID == sectionID {
			return true
		}
	}
	return false
}

// HasCourse reports whether any section of the course is already picked.
func (s SelectionSet) HasCourse(courseCode string) bool {
	for _, section := range s.sections {
		if section.CourseCode == courseCode {
			return true
		}
	}
	return false
}

// TryAdd attempts to append a section. Guards run in a fixed order:
// duplicate section, then duplicate course, then the credit cap. A different
// section of an already-picked course is never swapped in silently; callers
// must remove the old one explicitly. On rejection the original set is
// returned unchanged.
func (s SelectionSet) TryAdd(section Section) (SelectionSet, *AddRejection) {
	if s.Contains(section.SectionID) {
		return s, &AddRejection{Reason: RejectDuplicateSection, Section: section}
	}
	if s.HasCourse(section.CourseCode) {
		return s, &AddRejection{Reason: RejectDuplicateCourse, Section: section}
	}
	if s.TotalCredits()+section.CreditValue > CreditCap {
		return s, &AddRejection{Reason: RejectCreditCapExceeded, Section: section}
	}

	next := make([]Section, len(s.sections), len(s.sections)+1)
	copy(next, s.sections)
	next = append(next, section)
	return SelectionSet{sections: next}, nil
}

// Remove drops the section with the given id. Removal never fails; removing
// an absent id is a no-op. Removing and re-adding a section moves it to the
// end of the insertion order.
func (s SelectionSet) Remove(sectionID int) SelectionSet {
	next := make([]Section, 0, len(s.sections))
	for _, section := range s.sections {
		if section.SectionID == sectionID {
			continue
		}
		next = append(next, section)
	}
	return SelectionSet{sections: next}
}

// Toggle removes the section when present, otherwise tries to add it,
// surfacing TryAdd's outcome. This backs the "click again to remove" UI.
func (s SelectionSet) Toggle(section Section) (SelectionSet, *AddRejection) {
	if s.Contains(section.SectionID) {
		return s.Remove(section.SectionID), nil
	}
	return s.TryAdd(section)
}

// Conflicts reports every conflicting grid cell for the current selection.
func (s SelectionSet) Conflicts() []Conflict {
	return AllConflicts(s.sections)
}

// CellOccupants projects the current selection onto one grid cell.
func (s SelectionSet) CellOccupants(day Weekday, slot int) []Occupant {
	return CellOccupants(s.sections, day, slot)
}
