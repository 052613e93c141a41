package dto

type StudentVerifyDTO struct {
	Email     string `json:"email" binding:"required,email"`
	StudentID string `json:"student_id" binding:"required"`
}

type AdminLoginDTO struct {
	// Username also accepts the admin email.
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type UpdateProfileDTO struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}
