package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=3"`
	Role     string `json:"role" validate:"required,oneof=student teacher"`

	// Student fields, required when role=student
	Branch   string `json:"branch" validate:"required_if=Role student"`
	Year     int    `json:"year" validate:"required_if=Role student,omitempty,min=1,max=6"`
	Semester int    `json:"semester" validate:"required_if=Role student,omitempty,min=1,max=12"`
	RollNo   string `json:"roll_no" validate:"required_if=Role student"`

	// Teacher fields, required when role=teacher
	Department  string `json:"department" validate:"required_if=Role teacher"`
	Designation string `json:"designation" validate:"required_if=Role teacher"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	AvatarURL string    `json:"avatar_url,omitempty"`

	Branch   string `json:"branch,omitempty"`
	Year     int    `json:"year,omitempty"`
	Semester int    `json:"semester,omitempty"`
	RollNo   string `json:"roll_no,omitempty"`

	Department  string `json:"department,omitempty"`
	Designation string `json:"designation,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
