package contract

import (
	"context"

	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
)

// UploadOptions controls where and how a staged file is stored remotely.
type UploadOptions struct {
	Folder string
	Kind   entity.AssetKind
	// ChunkSize is the resumable upload chunk size in bytes. Zero uploads in one request.
	ChunkSize int
}

// IAssetStore is the remote asset host.
type IAssetStore interface {
	Upload(ctx context.Context, file *entity.StagedFile, opts UploadOptions) (*entity.Asset, error)
	Destroy(ctx context.Context, publicID string, kind entity.AssetKind) error
}
