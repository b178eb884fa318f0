package requests

type SaveRoutine struct {
	Name       string `json:"name" validate:"omitempty,max=100"`
	SectionIDs []int  `json:"section_ids" validate:"required,min=1,dive,gt=0"`
}

type PreviewSelection struct {
	SectionIDs   []int `json:"section_ids" validate:"dive,gt=0"`
	AddSectionID int   `json:"add_section_id" validate:"omitempty,gt=0"`
}

// MergeContributor carries one friend's routine, either as a raw section id
// list or as the encoded share string produced by SaveRoutine.
type MergeContributor struct {
	Label      string `json:"label" validate:"required,max=100"`
	Color      string `json:"color" validate:"omitempty,hexcolor"`
	SectionIDs []int  `json:"section_ids" validate:"omitempty,dive,gt=0"`
	Encoded    string `json:"encoded" validate:"omitempty,base64"`
}

type MergeRoutines struct {
	Contributors []MergeContributor `json:"contributors" validate:"required,min=1,max=10,dive"`
}
