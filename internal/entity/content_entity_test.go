package entity

import (
	"testing"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestContentVisibleTo(t *testing.T) {
	author := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name       string
		status     ContentStatus
		isApproved bool
		viewerRole UserRole
		viewerId   uuid.UUID
		want       bool
	}{
		{"published approved visible to stranger", ContentStatusPublished, true, UserRoleStudent, stranger, true},
		{"unapproved hidden from stranger", ContentStatusPublished, false, UserRoleStudent, stranger, false},
		{"draft hidden from stranger", ContentStatusDraft, false, UserRoleStudent, stranger, false},
		{"archived hidden from stranger", ContentStatusArchived, true, UserRoleStudent, stranger, false},
		{"author sees own draft", ContentStatusDraft, false, UserRoleTeacher, author, true},
		{"author sees own unapproved", ContentStatusPublished, false, UserRoleTeacher, author, true},
		{"admin sees everything", ContentStatusDraft, false, UserRoleAdmin, stranger, true},
		{"anonymous sees published approved", ContentStatusPublished, true, UserRoleStudent, uuid.Nil, true},
		{"anonymous blocked from draft", ContentStatusDraft, true, UserRoleStudent, uuid.Nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Content{
				AuthorId:   author,
				Status:     tt.status,
				IsApproved: tt.isApproved,
			}
			if got := c.VisibleTo(tt.viewerRole, tt.viewerId); got != tt.want {
				t.Errorf("VisibleTo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContentValidateSource(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		wantErr bool
	}{
		{"notes with file", Content{Type: ContentTypeNotes, FilePath: strPtr("/x/a.pdf")}, false},
		{"notes without file", Content{Type: ContentTypeNotes}, true},
		{"notes with url", Content{Type: ContentTypeNotes, FilePath: strPtr("/x/a.pdf"), VideoURL: strPtr("https://v")}, true},
		{"video with url", Content{Type: ContentTypeVideos, VideoURL: strPtr("https://v")}, false},
		{"video without url", Content{Type: ContentTypeVideos}, true},
		{"video with file", Content{Type: ContentTypeVideos, VideoURL: strPtr("https://v"), FilePath: strPtr("/x/a.mp4")}, true},
		{"pyqs with file", Content{Type: ContentTypePyqs, FilePath: strPtr("/x/2023.pdf")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.content.ValidateSource()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSource() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidContentType(t *testing.T) {
	for _, valid := range []string{"notes", "syllabus", "videos", "pyqs"} {
		if !ValidContentType(valid) {
			t.Errorf("expected %q to be valid", valid)
		}
	}
	for _, invalid := range []string{"", "video", "NOTES", "papers"} {
		if ValidContentType(invalid) {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}
