package repository

import "context"

// Asset kinds accepted by AssetRepository.
const (
	AssetSignature = "signature"
	AssetLogo      = "logo"
)

// AssetRepository stores uploaded images as data URIs ("data:image/png;base64,...").
// Get returns "" when the asset was never uploaded.
type AssetRepository interface {
	Get(ctx context.Context, kind string) (string, error)
	Put(ctx context.Context, kind, dataURI string) error
	Delete(ctx context.Context, kind string) error
}
