package responses

type Swap struct {
	SwapID          string   `json:"swap_id"`
	AuthorEmail     string   `json:"author_email"`
	OfferSection    *Section `json:"offer_section,omitempty"`
	OfferSectionID  int      `json:"offer_section_id"`
	AskSectionIDs   []int    `json:"ask_section_ids"`
	Note            string   `json:"note,omitempty"`
	Status          string   `json:"status"`
	InterestedUsers []string `json:"interested_users,omitempty"`
	CreatedAt       string   `json:"created_at"`
}
