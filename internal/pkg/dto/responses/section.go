package responses

type SectionMeeting struct {
	Day      string `json:"day"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Kind     string `json:"kind"`
	Location string `json:"location,omitempty"`
}

type Section struct {
	SectionID     int              `json:"section_id"`
	CourseCode    string           `json:"course_code"`
	SectionLabel  string           `json:"section_label"`
	CreditValue   float64          `json:"credit_value"`
	Capacity      int              `json:"capacity"`
	ConsumedSeats int              `json:"consumed_seats"`
	SeatsLeft     int              `json:"seats_left"`
	FacultyLabel  string           `json:"faculty_label,omitempty"`
	RoomLabel     string           `json:"room_label,omitempty"`
	Prerequisite  string           `json:"prerequisite,omitempty"`
	Meetings      []SectionMeeting `json:"meetings"`
}

type CatalogRefresh struct {
	TotalRecords    int      `json:"total_records"`
	StoredSections  int      `json:"stored_sections"`
	SkippedRecords  int      `json:"skipped_records"`
	MeetingWarnings []string `json:"meeting_warnings,omitempty"`
	FetchedAt       string   `json:"fetched_at"`
}
