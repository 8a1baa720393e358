package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendhur-traders/gst-invoice/internal/domain"
	"github.com/sendhur-traders/gst-invoice/internal/domain/entity"
	"github.com/sendhur-traders/gst-invoice/internal/domain/repository"
	"github.com/sendhur-traders/gst-invoice/internal/infrastructure/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "gstinvoice.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := sqlite.Open(context.Background(), "  ")
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Key-value store
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := sqlite.NewStore(openTestDB(t))

	got, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got, "a missing key reads as absent, not as an error")

	require.NoError(t, store.Put(ctx, "k", []byte(`[1]`)))
	require.NoError(t, store.Put(ctx, "k", []byte(`[1,2]`)))
	got, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got), "put replaces the whole value")

	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))
	got, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	db, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewStore(db).Put(ctx, repository.KeyCompanyLogo, []byte("data:image/png;base64,AA==")))
	require.NoError(t, db.Close())

	db, err = sqlite.Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	got, err := sqlite.NewStore(db).Get(ctx, repository.KeyCompanyLogo)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AA==", string(got))
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositories
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerCacheRepo_LoadSaveClear(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewCustomerCacheRepository(sqlite.NewStore(openTestDB(t)))

	list, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)

	want := []entity.Customer{
		{Name: "Acme", Address: "1 Main Rd", GSTIN: "33AAAAA0000A1Z5", State: "Tamilnadu", StateCode: "33"},
		{Name: "Globex", Address: "2 Side St"},
	}
	require.NoError(t, repo.Save(ctx, want))
	list, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, list)

	require.NoError(t, repo.Clear(ctx))
	list, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTransportationCacheRepo_LoadSave(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewTransportationCacheRepository(sqlite.NewStore(openTestDB(t)))

	want := []entity.Transportation{{VehicleNo: "TN30AB1234", TransportationMode: "Road", EWayBill: "EWB1"}}
	require.NoError(t, repo.Save(ctx, want))
	list, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, list)
}

func TestInvoiceSnapshotRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewInvoiceSnapshotRepository(sqlite.NewStore(openTestDB(t)))

	snap, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap)

	in := &entity.InvoiceSnapshot{
		InvoiceNumber: "INV-7",
		CustomerName:  "Acme",
		Items:         []entity.LineItem{{ID: "1", Weight: "2", Quantity: decimal.NewFromInt(3), Rate: decimal.NewFromInt(100), Amount: decimal.NewFromInt(600)}},
		GrandTotal:    decimal.NewFromInt(708),
		AmountInWords: "Seven Hundred Eight Rupees Only",
	}
	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "INV-7", out.InvoiceNumber)
	assert.True(t, out.GrandTotal.Equal(decimal.NewFromInt(708)))
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].Amount.Equal(decimal.NewFromInt(600)))

	require.NoError(t, repo.Clear(ctx))
	out, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestAssetRepo(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewAssetRepository(sqlite.NewStore(openTestDB(t)))

	got, err := repo.Get(ctx, repository.AssetSignature)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, repo.Put(ctx, repository.AssetSignature, "data:image/png;base64,AA=="))
	got, err = repo.Get(ctx, repository.AssetSignature)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AA==", got)

	logo, err := repo.Get(ctx, repository.AssetLogo)
	require.NoError(t, err)
	assert.Empty(t, logo, "signature and logo live under different keys")

	err = repo.Put(ctx, "banner", "x")
	assert.ErrorIs(t, err, domain.ErrUnsupportedAsset)
}
