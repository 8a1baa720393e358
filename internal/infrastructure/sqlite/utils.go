package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sendhur-traders/gst-invoice/internal/domain/repository"
)

// loadJSON decodes the blob under key into out. It reports false when the key is absent.
func loadJSON(ctx context.Context, kv repository.KeyValueStore, key string, out any) (bool, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// saveJSON replaces the blob under key with the encoding of v.
func saveJSON(ctx context.Context, kv repository.KeyValueStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Put(ctx, key, raw)
}
