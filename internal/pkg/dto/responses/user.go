package responses

type UserProfile struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	StudentID string `json:"student_id,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}
