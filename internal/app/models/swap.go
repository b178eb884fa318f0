package models

type Swap struct {
	ID              string   `bson:"_id,omitempty"`
	AuthorID        string   `bson:"authorId"`
	AuthorEmail     string   `bson:"authorEmail"`
	OfferSectionID  int      `bson:"offerSectionId"`
	AskSectionIDs   []int    `bson:"askSectionIds"`
	Note            string   `bson:"note,omitempty"`
	Status          string   `bson:"status"`
	InterestedUsers []string `bson:"interestedUsers,omitempty"`
	TimeModel       `bson:",inline"`
}
