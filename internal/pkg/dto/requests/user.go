package requests

type UpdateProfile struct {
	FullName  string `json:"full_name" validate:"omitempty,min=2,max=100"`
	StudentID string `json:"student_id" validate:"omitempty,alphanum,max=20"`
}
