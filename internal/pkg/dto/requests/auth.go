package requests

type RegisterUser struct {
	Email          string `json:"email" validate:"required,email"`
	FullName       string `json:"full_name" validate:"required,min=2,max=100"`
	StudentID      string `json:"student_id" validate:"omitempty,alphanum,max=20"`
	Password       string `json:"password" validate:"required,password"`
	RetypePassword string `json:"retype_password" validate:"required"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
