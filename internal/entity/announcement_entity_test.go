package entity

import (
	"testing"
	"time"
)

func student(branch string, year int) *User {
	return &User{Role: UserRoleStudent, Branch: &branch, Year: &year}
}

func TestAnnouncementTargetedAt(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name         string
		announcement Announcement
		user         *User
		want         bool
	}{
		{
			name:         "all reaches students",
			announcement: Announcement{Audience: AudienceAll},
			user:         student("CSE", 2),
			want:         true,
		},
		{
			name:         "all reaches teachers",
			announcement: Announcement{Audience: AudienceAll},
			user:         &User{Role: UserRoleTeacher},
			want:         true,
		},
		{
			name:         "students audience excludes teachers",
			announcement: Announcement{Audience: AudienceStudents},
			user:         &User{Role: UserRoleTeacher},
			want:         false,
		},
		{
			name:         "teachers audience excludes students",
			announcement: Announcement{Audience: AudienceTeachers},
			user:         student("CSE", 2),
			want:         false,
		},
		{
			name: "specific branch and year match",
			announcement: Announcement{
				Audience:       AudienceSpecific,
				TargetBranches: []string{"CSE", "ECE"},
				TargetYears:    []int{2, 3},
			},
			user: student("CSE", 2),
			want: true,
		},
		{
			name: "specific branch mismatch",
			announcement: Announcement{
				Audience:       AudienceSpecific,
				TargetBranches: []string{"ME"},
			},
			user: student("CSE", 2),
			want: false,
		},
		{
			name: "specific year mismatch",
			announcement: Announcement{
				Audience:    AudienceSpecific,
				TargetYears: []int{4},
			},
			user: student("CSE", 2),
			want: false,
		},
		{
			name: "empty target lists leave dimension unconstrained",
			announcement: Announcement{
				Audience: AudienceSpecific,
			},
			user: student("CSE", 2),
			want: true,
		},
		{
			name:         "expired hidden",
			announcement: Announcement{Audience: AudienceAll, ExpiresAt: &past},
			user:         student("CSE", 2),
			want:         false,
		},
		{
			name:         "future expiry still visible",
			announcement: Announcement{Audience: AudienceAll, ExpiresAt: &future},
			user:         student("CSE", 2),
			want:         true,
		},
		{
			name:         "admin sees targeted announcements",
			announcement: Announcement{Audience: AudienceStudents},
			user:         &User{Role: UserRoleAdmin},
			want:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.announcement.TargetedAt(tt.user, now); got != tt.want {
				t.Errorf("TargetedAt() = %v, want %v", got, tt.want)
			}
		})
	}
}
