package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"miniblog/internal/domain"
)

// allowedExtensions is the fixed allow-set checked against the
// lowercased filename suffix.
var allowedExtensions = map[string]bool{
	"txt":  true,
	"pdf":  true,
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// Service writes uploaded files to local disk and records them.
// Uploads with the same sanitized name overwrite each other on disk
// while each keeps its own row; callers get no deduplication.
type Service struct {
	files   FileRepositoryInterface
	baseDir string // absolute or relative path to the uploads dir
}

func NewService(files FileRepositoryInterface, baseDir string) *Service {
	return &Service{files: files, baseDir: baseDir}
}

// Allowed reports whether the filename carries an accepted extension.
func Allowed(filename string) bool {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[i+1:])]
}

// Save validates the upload, writes the bytes under the storage root
// and records a File row. The stored path is relative to the static
// root so templates can link it directly.
func (s *Service) Save(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*domain.File, error) {
	if fileHeader == nil || fileHeader.Filename == "" {
		return nil, ErrNoFile
	}
	if !Allowed(fileHeader.Filename) {
		return nil, ErrTypeNotAllowed
	}

	name := SanitizeFilename(fileHeader.Filename)

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	absPath := filepath.Join(s.baseDir, name)
	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	f := &domain.File{
		Filename:   name,
		Path:       path.Join("uploads", name),
		UserID:     userID,
		UploadedAt: time.Now(),
	}

	if err := s.files.Create(ctx, f); err != nil {
		_ = os.Remove(absPath) // roll back the bytes on a failed insert
		return nil, fmt.Errorf("failed to save file record: %w", err)
	}

	return f, nil
}

func (s *Service) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*domain.File, error) {
	return s.files.ListRecentByUser(ctx, userID, limit)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.files.Count(ctx)
}

// SanitizeFilename strips directory components and maps anything
// outside [A-Za-z0-9._-] to '_'. Leading dots go too, so the result
// can neither traverse upwards nor hide itself.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
			r == '.' || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, name)
	name = strings.TrimLeft(name, ".")
	if name == "" {
		return "file"
	}
	return name
}
