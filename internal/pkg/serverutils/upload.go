package serverutils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"acadmix-be/internal/pkg/apperr"
)

// Per-field extension allow-lists. Unknown form fields are rejected outright.
var allowedExtensions = map[string][]string{
	"profileImage": {".jpg", ".jpeg", ".png", ".webp"},
	"contentFile":  {".pdf", ".doc", ".docx", ".ppt", ".pptx", ".txt", ".zip"},
	"chatFile":     {".pdf", ".doc", ".docx", ".png", ".jpg", ".jpeg", ".txt", ".zip"},
}

// AllowedExtension reports whether a filename may be uploaded under the given
// multipart field.
func AllowedExtension(field, filename string) bool {
	exts, ok := allowedExtensions[field]
	if !ok {
		return false
	}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range exts {
		if ext == allowed {
			return true
		}
	}
	return false
}

// SavedFile describes an upload written to local storage.
type SavedFile struct {
	Path     string
	Name     string
	Size     int64
	MimeType string
}

// SaveUpload validates and stores one multipart file under dir. The stored
// name is a uuid with the original extension; the original name is kept for
// display only. Requests carrying more than maxFiles parts are rejected
// rather than having the extras silently dropped.
func SaveUpload(ctx *fiber.Ctx, file *multipart.FileHeader, field, dir string, maxBytes int64, maxFiles int) (*SavedFile, error) {
	if err := checkFileCount(ctx, maxFiles); err != nil {
		return nil, err
	}
	if file.Size > maxBytes {
		return nil, apperr.BadRequest(fmt.Sprintf("File exceeds the %d MB limit", maxBytes/(1<<20)))
	}
	if !AllowedExtension(field, file.Filename) {
		return nil, apperr.BadRequest(fmt.Sprintf("File type not allowed for %s", field))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	stored := filepath.Join(dir, field, uuid.NewString()+ext)
	if err := ctx.SaveFile(file, stored); err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	return &SavedFile{
		Path:     stored,
		Name:     file.Filename,
		Size:     file.Size,
		MimeType: file.Header.Get("Content-Type"),
	}, nil
}

func checkFileCount(ctx *fiber.Ctx, maxFiles int) error {
	if maxFiles <= 0 {
		return nil
	}
	form, err := ctx.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	total := 0
	for _, files := range form.File {
		total += len(files)
	}
	if total > maxFiles {
		return apperr.BadRequest(fmt.Sprintf("At most %d files per request", maxFiles))
	}
	return nil
}
