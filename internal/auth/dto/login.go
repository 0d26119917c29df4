package dto

type LoginInput struct {
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

type UserOutput struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	User    UserOutput `json:"user"`
}
