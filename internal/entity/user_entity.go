package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleStudent UserRole = "student"
	UserRoleTeacher UserRole = "teacher"
	UserRoleAdmin   UserRole = "admin"

	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

// User carries a role-conditional set of academic fields: branch/year/semester
// and rollNo are student fields, department/designation are teacher fields.
// The boundary validation (dto layer) enforces the per-role required sets.
type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Role         UserRole
	Status       UserStatus
	AvatarURL    *string

	// Student fields
	Branch   *string
	Year     *int
	Semester *int
	RollNo   *string

	// Teacher fields
	Department  *string
	Designation *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

func (u *User) CanPublishContent() bool {
	return u.Role == UserRoleTeacher || u.Role == UserRoleAdmin
}
