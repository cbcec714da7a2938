package usecase

import (
	"context"
	"time"

	"github.com/mikiasgoitom/Lectern/internal/domain/contract"
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Lectern/internal/usecase/contract"
)

// remoteAssets bounds every asset host call with a deadline.
type remoteAssets struct {
	store   contract.IAssetStore
	timeout time.Duration
	logger  usecasecontract.IAppLogger
}

func newRemoteAssets(store contract.IAssetStore, cfg usecasecontract.IConfigProvider, logger usecasecontract.IAppLogger) remoteAssets {
	timeout := cfg.GetAssetTimeout()
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return remoteAssets{store: store, timeout: timeout, logger: logger}
}

func (r remoteAssets) upload(ctx context.Context, file *entity.StagedFile, opts contract.UploadOptions) (*entity.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.store.Upload(ctx, file, opts)
}

func (r remoteAssets) destroy(ctx context.Context, publicID string, kind entity.AssetKind) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.store.Destroy(ctx, publicID, kind)
}

// discard destroys an asset whose database write did not happen. Failures are only logged.
func (r remoteAssets) discard(ctx context.Context, publicID string, kind entity.AssetKind) {
	if err := r.destroy(ctx, publicID, kind); err != nil {
		r.logger.Errorf("failed to destroy orphaned asset %s: %v", publicID, err)
	}
}
