package billing

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sendhur-traders/gst-invoice/internal/domain"
	"github.com/sendhur-traders/gst-invoice/internal/domain/repository"
	"github.com/sendhur-traders/gst-invoice/pkg/logger"
)

// AssetUseCase manages the signature image and the company logo.
type AssetUseCase struct {
	repo repository.AssetRepository
	log  *logger.Logger
}

// NewAssetUseCase builds the use case.
func NewAssetUseCase(repo repository.AssetRepository, log *logger.Logger) *AssetUseCase {
	return &AssetUseCase{repo: repo, log: log.Component("assets")}
}

func checkKind(kind string) error {
	if kind != repository.AssetSignature && kind != repository.AssetLogo {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedAsset, kind)
	}
	return nil
}

// Put stores an uploaded image and returns its data URI.
func (uc *AssetUseCase) Put(ctx context.Context, kind, contentType string, data []byte) (string, error) {
	if err := checkKind(kind); err != nil {
		return "", err
	}
	contentType = strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	if !strings.HasPrefix(contentType, "image/") || len(data) == 0 {
		return "", fmt.Errorf("%w: an image file is required", domain.ErrInvalidInput)
	}
	uri := EncodeDataURI(contentType, data)
	if err := uc.repo.Put(ctx, kind, uri); err != nil {
		return "", fmt.Errorf("store %s: %w", kind, err)
	}
	uc.log.Info().Str("kind", kind).Str("content_type", contentType).Int("bytes", len(data)).Msg("asset stored")
	return uri, nil
}

// Get returns the stored data URI, or domain.ErrNotFound.
func (uc *AssetUseCase) Get(ctx context.Context, kind string) (string, error) {
	if err := checkKind(kind); err != nil {
		return "", err
	}
	uri, err := uc.repo.Get(ctx, kind)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", kind, err)
	}
	if uri == "" {
		return "", domain.ErrNotFound
	}
	return uri, nil
}

// Delete removes the stored image.
func (uc *AssetUseCase) Delete(ctx context.Context, kind string) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, kind); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	return nil
}

// Load decodes both images for rendering. Missing or unreadable assets are left nil.
func (uc *AssetUseCase) Load(ctx context.Context) (InvoiceAssets, error) {
	var assets InvoiceAssets
	for kind, dst := range map[string]**Image{
		repository.AssetLogo:      &assets.Logo,
		repository.AssetSignature: &assets.Signature,
	} {
		uri, err := uc.repo.Get(ctx, kind)
		if err != nil {
			return InvoiceAssets{}, fmt.Errorf("load %s: %w", kind, err)
		}
		if uri == "" {
			continue
		}
		img, err := DecodeDataURI(uri)
		if err != nil {
			uc.log.Warn().Err(err).Str("kind", kind).Msg("skipping unreadable asset")
			continue
		}
		*dst = img
	}
	return assets, nil
}

// EncodeDataURI returns "data:<contentType>;base64,<data>".
func EncodeDataURI(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI parses a base64 data URI produced by EncodeDataURI.
func DecodeDataURI(uri string) (*Image, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, fmt.Errorf("%w: not a data URI", domain.ErrInvalidInput)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("%w: data URI without payload", domain.ErrInvalidInput)
	}
	contentType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return nil, fmt.Errorf("%w: data URI is not base64", domain.ErrInvalidInput)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return &Image{ContentType: contentType, Data: data}, nil
}
