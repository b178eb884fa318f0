package models

// RoutineStr holds the shareable base64 wrapped JSON array of section ids,
// the same payload users paste to each other when merging schedules.
type Routine struct {
	ID         string `bson:"_id,omitempty"`
	UserID     string `bson:"userId"`
	Email      string `bson:"email"`
	Name       string `bson:"name,omitempty"`
	RoutineStr string `bson:"routineStr"`
	TimeModel  `bson:",inline"`
}
