package uploadstage

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
)

func setupStager(t *testing.T, maxBytes int64) *DiskStager {
	t.Helper()
	s, err := NewDiskStager(t.TempDir(), maxBytes, DefaultFieldRules(), zap.NewNop())
	require.NoError(t, err)
	return s
}

func newTestFileHeader(t *testing.T, fieldname, filename, content, contentType string) *multipart.FileHeader {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fieldname, filename))
	if contentType != "" {
		partHeader.Set("Content-Type", contentType)
	}

	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)

	files := form.File[fieldname]
	require.NotEmpty(t, files)
	return files[0]
}

func TestDiskStager_StageAndRemove(t *testing.T) {
	s := setupStager(t, 1024)
	fh := newTestFileHeader(t, "thumbnail", "cover.JPG", "image-bytes", "image/jpeg")

	staged, err := s.Stage("thumbnail", fh)
	require.NoError(t, err)

	assert.Equal(t, "thumbnail", staged.Field)
	assert.Equal(t, "cover.JPG", staged.OriginalName)
	assert.Equal(t, "image/jpeg", staged.ContentType)
	assert.Equal(t, int64(len("image-bytes")), staged.Size)
	assert.Equal(t, ".jpg", filepath.Ext(staged.Path))

	data, err := os.ReadFile(staged.Path)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	require.NoError(t, s.Remove(staged))
	_, err = os.Stat(staged.Path)
	assert.True(t, os.IsNotExist(err))

	// removing twice is fine
	assert.NoError(t, s.Remove(staged))
}

func TestDiskStager_RejectsWrongExtension(t *testing.T) {
	s := setupStager(t, 1024)
	fh := newTestFileHeader(t, "lecture", "notes.pdf", "pdf", "application/pdf")

	_, err := s.Stage("lecture", fh)
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestDiskStager_RejectsOversizedFile(t *testing.T) {
	s := setupStager(t, 4)
	fh := newTestFileHeader(t, "avatar", "me.png", "too many bytes", "image/png")

	_, err := s.Stage("avatar", fh)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestDiskStager_UnknownFieldAcceptsAnything(t *testing.T) {
	s := setupStager(t, 0)
	fh := newTestFileHeader(t, "attachment", "data.bin", "x", "")

	staged, err := s.Stage("attachment", fh)
	require.NoError(t, err)
	assert.NoError(t, s.Remove(staged))
}

func TestDiskStager_RemoveOutsideDirectory(t *testing.T) {
	s := setupStager(t, 0)
	err := s.Remove(&entity.StagedFile{Path: "/etc/passwd"})
	assert.Error(t, err)
}
