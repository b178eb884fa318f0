package responses

type Routine struct {
	RoutineID    string  `json:"routine_id"`
	Name         string  `json:"name,omitempty"`
	SectionIDs   []int   `json:"section_ids"`
	Encoded      string  `json:"encoded"`
	TotalCredits float64 `json:"total_credits"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

// SharedRoutine is the anonymous view behind a shared routine link. It
// exposes the grid and share string but never the owner's account details.
type SharedRoutine struct {
	RoutineID  string       `json:"routine_id"`
	Name       string       `json:"name,omitempty"`
	SectionIDs []int        `json:"section_ids"`
	Encoded    string       `json:"encoded"`
	Grid       ScheduleGrid `json:"grid"`
}

type ScheduleEntry struct {
	SectionID    int    `json:"section_id"`
	CourseCode   string `json:"course_code"`
	SectionLabel string `json:"section_label"`
	Room         string `json:"room,omitempty"`
	IsLab        bool   `json:"is_lab"`
	OwnerLabel   string `json:"owner_label,omitempty"`
	OwnerColor   string `json:"owner_color,omitempty"`
}

type ScheduleCell struct {
	Day       string          `json:"day"`
	Slot      int             `json:"slot"`
	SlotLabel string          `json:"slot_label"`
	Entries   []ScheduleEntry `json:"entries"`
	Conflict  bool            `json:"conflict"`
}

type ScheduleGrid struct {
	Cells           []ScheduleCell `json:"cells"`
	ConflictCount   int            `json:"conflict_count"`
	TotalCredits    float64        `json:"total_credits"`
	MissingSections int            `json:"missing_sections"`
}

type SelectionPreview struct {
	Accepted        bool          `json:"accepted"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
	RejectionDetail string        `json:"rejection_detail,omitempty"`
	SectionIDs      []int         `json:"section_ids"`
	TotalCredits    float64       `json:"total_credits"`
	Grid            *ScheduleGrid `json:"grid,omitempty"`
}

type MergeContributorSummary struct {
	Label        string  `json:"label"`
	Color        string  `json:"color"`
	SectionCount int     `json:"section_count"`
	TotalCredits float64 `json:"total_credits"`
}

type MergedGrid struct {
	Contributors    []MergeContributorSummary `json:"contributors"`
	Grid            ScheduleGrid              `json:"grid"`
	MissingSections int                       `json:"missing_sections"`
}
