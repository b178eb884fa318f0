package schedule

import "errors"

// MaxContributors caps a merged view at ten routines. The UI enforces the
// same limit, but the engine guarantees it for every caller.
const MaxContributors = 10

// ErrTooManyContributors is returned when an eleventh contribution is added.
var ErrTooManyContributors = errors.New("merge supports at most 10 contributors")

// ColorPalette is the fixed ten-color cycle assigned to contributors that
// did not pick a color themselves. Indexing by contribution order keeps the
// coloring reproducible for a given input order.
var ColorPalette = [MaxContributors]string{
	"#3B82F6", // blue
	"#10B981", // green
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // purple
	"#EC4899", // pink
	"#14B8A6", // teal
	"#F97316", // orange
	"#06B6D4", // cyan
	"#84CC16", // lime
}

// Contribution is one person's routine feeding into a merged view.
type Contribution struct {
	OwnerLabel string
	OwnerColor string
	Sections   []Section
}

// TaggedOccupant is a grid occupant carrying its contributor's identity so
// the renderer can color-code simultaneous blocks.
type TaggedOccupant struct {
	Occupant
	OwnerLabel string
	OwnerColor string
}

// MergedView is a read-only render artifact combining several contributions.
// It has no mutation operations; rebuild it whenever any contributor's
// routine changes. Sections are deliberately not deduplicated across
// contributors: two friends picking the same section both show up, each
// under their own color, because the view exists to visualize each person's
// commitment.
type MergedView struct {
	Contributions []Contribution
}

// BuildMergedView validates the contributor cap and fills in palette colors
// for contributions without an explicit one.
func BuildMergedView(contributions []Contribution) (MergedView, error) {
	if len(contributions) > MaxContributors {
		return MergedView{}, ErrTooManyContributors
	}

	merged := MergedView{Contributions: make([]Contribution, len(contributions))}
	for i, contribution := range contributions {
		if contribution.OwnerColor == "" {
			contribution.OwnerColor = ColorPalette[i%len(ColorPalette)]
		}
		merged.Contributions[i] = contribution
	}
	return merged, nil
}

// Sections returns the union of all contributed sections, in contribution
// order then insertion order. Duplicates across contributors are kept.
func (v MergedView) Sections() []Section {
	var sections []Section
	for _, contribution := range v.Contributions {
		sections = append(sections, contribution.Sections...)
	}
	return sections
}

// CellOccupants projects the merged view onto one grid cell, tagging every
// occupant with its contributor.
func (v MergedView) CellOccupants(day Weekday, slot int) []TaggedOccupant {
	var tagged []TaggedOccupant
	for _, contribution := range v.Contributions {
		for _, occupant := range CellOccupants(contribution.Sections, day, slot) {
			tagged = append(tagged, TaggedOccupant{
				Occupant:   occupant,
				OwnerLabel: contribution.OwnerLabel,
				OwnerColor: contribution.OwnerColor,
			})
		}
	}
	return tagged
}

// Conflicts reports conflicting cells over the unioned section list.
func (v MergedView) Conflicts() []Conflict {
	return AllConflicts(v.Sections())
}

// ResolveSectionIDs intersects a saved routine's section ids with a catalog
// snapshot. Ids absent from the snapshot are dropped and counted; a stale
// reference is a warning for the caller, never a hard failure.
func ResolveSectionIDs(catalog []Section, ids []int) ([]Section, int) {
	byID := make(map[int]Section, len(catalog))
	for _, section := range catalog {
		byID[section.SectionID] = section
	}

	sections := make([]Section, 0, len(ids))
	missing := 0
	for _, id := range ids {
		section, ok := byID[id]
		if !ok {
			missing++
			continue
		}
		sections = append(sections, section)
	}
	return sections, missing
}
