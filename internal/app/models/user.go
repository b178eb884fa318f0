package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	Email     string `bson:"email"`
	FullName  string `bson:"fullName"`
	StudentID string `bson:"studentId,omitempty"`
	Password  string `bson:"password"`
	Role      string `bson:"role"`
	Active    bool   `bson:"active"`
	TimeModel `bson:",inline"`
}
