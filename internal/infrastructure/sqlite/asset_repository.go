package sqlite

import (
	"context"
	"fmt"

	"github.com/sendhur-traders/gst-invoice/internal/domain"
	"github.com/sendhur-traders/gst-invoice/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo stores signature and logo data URIs under their own keys.
type AssetRepo struct {
	kv repository.KeyValueStore
}

// NewAssetRepository builds the adapter over any key-value store.
func NewAssetRepository(kv repository.KeyValueStore) *AssetRepo {
	return &AssetRepo{kv: kv}
}

func assetKey(kind string) (string, error) {
	switch kind {
	case repository.AssetSignature:
		return repository.KeySignatureImage, nil
	case repository.AssetLogo:
		return repository.KeyCompanyLogo, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedAsset, kind)
	}
}

// Get returns "" when the asset is absent.
func (r *AssetRepo) Get(ctx context.Context, kind string) (string, error) {
	key, err := assetKey(kind)
	if err != nil {
		return "", err
	}
	raw, err := r.kv.Get(ctx, key)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (r *AssetRepo) Put(ctx context.Context, kind, dataURI string) error {
	key, err := assetKey(kind)
	if err != nil {
		return err
	}
	return r.kv.Put(ctx, key, []byte(dataURI))
}

func (r *AssetRepo) Delete(ctx context.Context, kind string) error {
	key, err := assetKey(kind)
	if err != nil {
		return err
	}
	return r.kv.Delete(ctx, key)
}
