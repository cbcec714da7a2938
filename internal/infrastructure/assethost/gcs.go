package assethost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/mikiasgoitom/Lectern/internal/domain/contract"
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
)

// NewGCSClient creates a Google Cloud Storage client. If credsPath is empty, ADC is used.
func NewGCSClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

// GCSStore keeps uploaded media in a bucket. The object name is the asset's
// public id and the public object URL its secure url.
type GCSStore struct {
	client *storage.Client
	bucket string
	logger *zap.Logger
}

var _ contract.IAssetStore = (*GCSStore)(nil)

func NewGCSStore(client *storage.Client, bucket string, logger *zap.Logger) (*GCSStore, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, fmt.Errorf("asset bucket cannot be empty")
	}
	return &GCSStore{client: client, bucket: bucket, logger: logger}, nil
}

// Upload streams the staged file to <folder>/<kind>/<uuid><ext>.
func (s *GCSStore) Upload(ctx context.Context, file *entity.StagedFile, opts contract.UploadOptions) (*entity.Asset, error) {
	if file == nil {
		return nil, fmt.Errorf("no staged file to upload")
	}
	src, err := os.Open(file.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open staged file: %w", err)
	}
	defer src.Close()

	objectName := ObjectName(opts.Folder, opts.Kind, file.OriginalName)
	wc := s.client.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	wc.ContentType = contentType(file)
	wc.ChunkSize = opts.ChunkSize

	if _, err := io.Copy(wc, src); err != nil {
		_ = wc.Close()
		return nil, fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	if err := wc.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload of %s: %w", objectName, err)
	}

	s.logger.Info("Asset uploaded",
		zap.String("public_id", objectName),
		zap.String("kind", string(opts.Kind)),
		zap.Int64("size", file.Size),
	)
	return &entity.Asset{PublicID: objectName, SecureURL: PublicURL(s.bucket, objectName)}, nil
}

// Destroy deletes the object. A missing object counts as destroyed.
func (s *GCSStore) Destroy(ctx context.Context, publicID string, kind entity.AssetKind) error {
	if publicID == "" {
		return nil
	}
	err := s.client.Bucket(s.bucket).Object(publicID).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("failed to destroy %s asset %s: %w", kind, publicID, err)
	}
	s.logger.Info("Asset destroyed", zap.String("public_id", publicID), zap.String("kind", string(kind)))
	return nil
}

// ObjectName builds a unique object path under folder.
func ObjectName(folder string, kind entity.AssetKind, originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if kind == "" {
		kind = entity.AssetKindImage
	}
	return path.Join(strings.Trim(folder, "/"), string(kind), uuid.NewString()+ext)
}

// PublicURL builds a public URL for an object (assuming public read access or signed URLs)
func PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}

func contentType(file *entity.StagedFile) string {
	if file.ContentType != "" {
		return file.ContentType
	}
	return "application/octet-stream"
}
