package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.Equal(t, "gstinvoice.db", cfg.Store.Path)
	assert.Equal(t, "33", cfg.Company.StateCode)
	assert.Equal(t, "9", cfg.Invoice.CGSTPercent.String())
	assert.Equal(t, "9", cfg.Invoice.SGSTPercent.String())
	assert.Equal(t, "0", cfg.Invoice.IGSTPercent.String())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("INVOICE_IGST_PERCENT", "18")
	v.Set("COMPANY_NAME", "ACME SCRAP")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "18", cfg.Invoice.IGSTPercent.String())
	assert.Equal(t, "ACME SCRAP", cfg.Company.Name)
}

func TestFromViper_BadPercent(t *testing.T) {
	v := viper.New()
	v.Set("INVOICE_CGST_PERCENT", "nine")

	_, err := fromViper(v)
	assert.Error(t, err)
}
