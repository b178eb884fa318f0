package requests

type CreateSwap struct {
	OfferSectionID int    `json:"offer_section_id" validate:"required,gt=0"`
	AskSectionIDs  []int  `json:"ask_section_ids" validate:"required,min=1,dive,gt=0"`
	Note           string `json:"note" validate:"omitempty,max=500"`
}

type UpdateSwapStatus struct {
	Status string `json:"status" validate:"required,swap_status"`
}
