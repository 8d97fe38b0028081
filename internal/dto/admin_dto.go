package dto

import (
	"github.com/google/uuid"
)

// --- User management ---

type AdminUserListRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"search"`
	Role   string `query:"role"`
	Status string `query:"status"`
}

type AdminUserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Total int64          `json:"total"`
}

type UpdateUserStatusRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=active blocked"`
	Reason string `json:"reason,omitempty"`
}

// --- Content moderation ---

type RejectContentRequest struct {
	Id     uuid.UUID
	Reason string `json:"reason,omitempty"`
}

// --- Platform stats ---

type AdminStatsResponse struct {
	TotalUsers       int64 `json:"total_users"`
	TotalStudents    int64 `json:"total_students"`
	TotalTeachers    int64 `json:"total_teachers"`
	BlockedUsers     int64 `json:"blocked_users"`
	TotalContent     int64 `json:"total_content"`
	PendingContent   int64 `json:"pending_content"`
	TotalChats       int64 `json:"total_chats"`
	TotalMessages    int64 `json:"total_messages"`
	Announcements    int64 `json:"announcements"`
	RegistrationsNew int64 `json:"registrations_last_7d"`
}

// --- Log reading ---

type AdminLogListRequest struct {
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
	Level string `query:"level"`
}
