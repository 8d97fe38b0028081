package specification

import "gorm.io/gorm"

// ByEmail filters by exact email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByRollNo filters by exact roll number
type ByRollNo struct {
	RollNo string
}

func (s ByRollNo) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("roll_no = ?", s.RollNo)
}

// ByRole filters by user role
type ByRole struct {
	Role string
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}

// SearchUsers matches name or email, case-insensitive
type SearchUsers struct {
	Query string
}

func (s SearchUsers) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("full_name ILIKE ? OR email ILIKE ?", pattern, pattern)
}
