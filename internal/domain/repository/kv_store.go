package repository

import "context"

// Keys of the local key-value store. Values are whole JSON (or data URI) blobs,
// replaced wholesale on every save.
const (
	KeyCachedCustomers      = "cachedCustomers"
	KeyCachedTransportation = "cachedTransportation"
	KeyInvoiceData          = "invoiceData"
	KeySignatureImage       = "signatureImage"
	KeyCompanyLogo          = "companyLogo"
)

// KeyValueStore is the local persistence port. Get returns (nil, nil) for a missing key.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
