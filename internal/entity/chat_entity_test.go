package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func participant(role UserRole, active bool) *ChatParticipant {
	return &ChatParticipant{
		Id:       uuid.New(),
		UserId:   uuid.New(),
		Role:     role,
		IsActive: active,
	}
}

func TestValidateComposition(t *testing.T) {
	tests := []struct {
		name         string
		chatType     ChatType
		participants []*ChatParticipant
		wantErr      bool
	}{
		{
			name:     "two students ok",
			chatType: ChatTypeStudentStudent,
			participants: []*ChatParticipant{
				participant(UserRoleStudent, true),
				participant(UserRoleStudent, true),
			},
		},
		{
			name:     "single student not enough",
			chatType: ChatTypeStudentStudent,
			participants: []*ChatParticipant{
				participant(UserRoleStudent, true),
			},
			wantErr: true,
		},
		{
			name:     "teacher in student chat rejected",
			chatType: ChatTypeStudentStudent,
			participants: []*ChatParticipant{
				participant(UserRoleStudent, true),
				participant(UserRoleTeacher, true),
			},
			wantErr: true,
		},
		{
			name:     "student and teacher ok",
			chatType: ChatTypeStudentTeacher,
			participants: []*ChatParticipant{
				participant(UserRoleStudent, true),
				participant(UserRoleTeacher, true),
			},
		},
		{
			name:     "teacher chat without teacher rejected",
			chatType: ChatTypeStudentTeacher,
			participants: []*ChatParticipant{
				participant(UserRoleStudent, true),
				participant(UserRoleStudent, true),
			},
			wantErr: true,
		},
		{
			name:     "inactive teacher does not count",
			chatType: ChatTypeStudentTeacher,
			participants: []*ChatParticipant{
				participant(UserRoleStudent, true),
				participant(UserRoleTeacher, false),
			},
			wantErr: true,
		},
		{
			name:     "admin rejected in any chat",
			chatType: ChatTypeStudentTeacher,
			participants: []*ChatParticipant{
				participant(UserRoleStudent, true),
				participant(UserRoleTeacher, true),
				participant(UserRoleAdmin, true),
			},
			wantErr: true,
		},
		{
			name:     "unknown type rejected",
			chatType: ChatType("group"),
			participants: []*ChatParticipant{
				participant(UserRoleStudent, true),
				participant(UserRoleStudent, true),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComposition(tt.chatType, tt.participants)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateComposition() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSoftRemovalKeepsParticipantRow(t *testing.T) {
	p := participant(UserRoleStudent, true)
	other := participant(UserRoleStudent, true)
	chat := &Chat{
		Type:         ChatTypeStudentStudent,
		Participants: []*ChatParticipant{p, other},
	}

	now := time.Now()
	p.IsActive = false
	p.LeftAt = &now

	if chat.IsActiveParticipant(p.UserId) {
		t.Error("removed participant should not be active")
	}
	if chat.Participant(p.UserId) == nil {
		t.Error("removed participant row should survive for attribution")
	}

	ids := chat.ActiveParticipantIDs()
	if len(ids) != 1 || ids[0] != other.UserId {
		t.Errorf("expected only the remaining participant in fan-out targets, got %v", ids)
	}
}
