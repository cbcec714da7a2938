package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Lectern/internal/domain/contract"
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
)

type stubAssetStore struct {
	failDestroy bool
}

func (s *stubAssetStore) Upload(ctx context.Context, file *entity.StagedFile, opts contract.UploadOptions) (*entity.Asset, error) {
	return &entity.Asset{PublicID: "lms/a.png", SecureURL: "https://cdn/a.png"}, nil
}

func (s *stubAssetStore) Destroy(ctx context.Context, publicID string, kind entity.AssetKind) error {
	if s.failDestroy {
		return errors.New("boom")
	}
	return nil
}

func TestNew_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}

func TestInstrumentedAssetStore(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)
	store := NewInstrumentedAssetStore(&stubAssetStore{failDestroy: true}, m)
	ctx := context.Background()

	asset, err := store.Upload(ctx, &entity.StagedFile{}, contract.UploadOptions{Kind: entity.AssetKindImage})
	require.NoError(t, err)
	assert.Equal(t, "lms/a.png", asset.PublicID)

	assert.Error(t, store.Destroy(ctx, "lms/a.png", entity.AssetKindVideo))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AssetOperations.WithLabelValues("upload", "image", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AssetOperations.WithLabelValues("destroy", "video", "error")))
}
