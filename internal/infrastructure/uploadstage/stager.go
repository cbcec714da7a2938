package uploadstage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mikiasgoitom/Lectern/internal/domain/contract"
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
)

var (
	ErrFileTooLarge        = errors.New("file exceeds the maximum upload size")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

var (
	ImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}
	VideoExtensions = []string{".mp4", ".mov", ".webm", ".mkv"}
)

// DefaultFieldRules maps each upload form field to its accepted extensions.
func DefaultFieldRules() map[string][]string {
	return map[string][]string{
		"avatar":    ImageExtensions,
		"thumbnail": ImageExtensions,
		"lecture":   VideoExtensions,
	}
}

// DiskStager writes uploaded files under a local directory for the lifetime of a request.
type DiskStager struct {
	dir      string
	maxBytes int64
	rules    map[string][]string
	logger   *zap.Logger
}

var _ contract.IFileStager = (*DiskStager)(nil)

// NewDiskStager creates dir if needed. A field without rules accepts any extension.
func NewDiskStager(dir string, maxBytes int64, rules map[string][]string, logger *zap.Logger) (*DiskStager, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory cannot be empty")
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		logger.Error("Failed to create upload directory", zap.String("path", dir), zap.Error(err))
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &DiskStager{dir: dir, maxBytes: maxBytes, rules: rules, logger: logger}, nil
}

// Stage copies the multipart file to disk under a generated name.
func (s *DiskStager) Stage(field string, header *multipart.FileHeader) (*entity.StagedFile, error) {
	if header == nil {
		return nil, fmt.Errorf("fileHeader cannot be nil")
	}
	if s.maxBytes > 0 && header.Size > s.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, header.Size, s.maxBytes)
	}

	originalName := filepath.Base(header.Filename)
	ext := strings.ToLower(filepath.Ext(originalName))
	if !s.allowed(field, ext) {
		return nil, fmt.Errorf("%w: %q for field %s", ErrUnsupportedFileType, ext, field)
	}

	src, err := header.Open()
	if err != nil {
		s.logger.Error("Failed to open uploaded file", zap.Error(err))
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	destination := filepath.Join(s.dir, uuid.NewString()+ext)
	dst, err := os.Create(destination)
	if err != nil {
		s.logger.Error("Failed to create staged file", zap.String("path", destination), zap.Error(err))
		return nil, fmt.Errorf("failed to create file %s: %w", destination, err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(destination)
		s.logger.Error("Failed to copy uploaded file", zap.String("path", destination), zap.Error(err))
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	s.logger.Debug("File staged", zap.String("field", field), zap.String("path", destination))
	return &entity.StagedFile{
		Field:        field,
		OriginalName: originalName,
		Path:         destination,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         written,
	}, nil
}

// Remove deletes a staged file. A file that is already gone is not an error.
func (s *DiskStager) Remove(file *entity.StagedFile) error {
	if file == nil || file.Path == "" {
		return nil
	}
	clean := filepath.Clean(file.Path)
	if filepath.Dir(clean) != filepath.Clean(s.dir) {
		s.logger.Warn("Refusing to remove file outside the upload directory", zap.String("path", file.Path))
		return fmt.Errorf("invalid staged file path")
	}
	if err := os.Remove(clean); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", clean, err)
	}
	return nil
}

func (s *DiskStager) allowed(field, ext string) bool {
	exts, ok := s.rules[field]
	if !ok {
		return true
	}
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}
