package serverutils

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"acadmix-be/internal/pkg/apperr"
)

func TestAllowedExtension(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		filename string
		want     bool
	}{
		{"pdf under contentFile", "contentFile", "notes.pdf", true},
		{"uppercase extension normalized", "contentFile", "SLIDES.PPTX", true},
		{"executable rejected", "contentFile", "setup.exe", false},
		{"image under profileImage", "profileImage", "me.png", true},
		{"pdf not a profile image", "profileImage", "cv.pdf", false},
		{"image attachment in chat", "chatFile", "diagram.jpg", true},
		{"unknown field rejected", "attachment", "notes.pdf", false},
		{"no extension rejected", "contentFile", "README", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllowedExtension(tt.field, tt.filename); got != tt.want {
				t.Errorf("AllowedExtension(%q, %q) = %v, want %v", tt.field, tt.filename, got, tt.want)
			}
		})
	}
}

func multipartBody(t *testing.T, field string, filenames ...string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, name := range filenames {
		part, err := w.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte("content")); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestSaveUploadRejectsTooManyFiles(t *testing.T) {
	dir := t.TempDir()

	var saveErr error
	app := fiber.New()
	app.Post("/upload", func(ctx *fiber.Ctx) error {
		file, err := ctx.FormFile("contentFile")
		if err != nil {
			return err
		}
		_, saveErr = SaveUpload(ctx, file, "contentFile", dir, 1<<20, 2)
		return ctx.SendStatus(fiber.StatusOK)
	})

	t.Run("over the cap", func(t *testing.T) {
		body, contentType := multipartBody(t, "contentFile", "a.pdf", "b.pdf", "c.pdf")
		req := httptest.NewRequest("POST", "/upload", body)
		req.Header.Set("Content-Type", contentType)
		if _, err := app.Test(req); err != nil {
			t.Fatalf("request failed: %v", err)
		}
		var appErr *apperr.Error
		if !errors.As(saveErr, &appErr) || appErr.Code != fiber.StatusBadRequest {
			t.Errorf("SaveUpload error = %v, want bad request", saveErr)
		}
	})

	t.Run("within the cap", func(t *testing.T) {
		body, contentType := multipartBody(t, "contentFile", "a.pdf")
		req := httptest.NewRequest("POST", "/upload", body)
		req.Header.Set("Content-Type", contentType)
		if _, err := app.Test(req); err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if saveErr != nil {
			t.Errorf("SaveUpload error = %v, want nil", saveErr)
		}
	})
}
