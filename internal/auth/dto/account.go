package dto

type UpdateNameInput struct {
	FullName string `json:"full_name" validate:"required,min=2"`
}

type UpdatePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type ProfileOutput struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
