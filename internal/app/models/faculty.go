package models

type Faculty struct {
	ID        string `bson:"_id,omitempty"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	ImageURL  string `bson:"imageUrl,omitempty"`
	TimeModel `bson:",inline"`
}
