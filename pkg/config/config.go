package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config groups the application settings (read through Viper from env and optional files).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Store   StoreConfig
	Company CompanyConfig
	Invoice InvoiceConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string
}

// HTTPConfig form backend listener. Loopback by default: single local user, no auth.
type HTTPConfig struct {
	Host     string
	Port     int
	DocsPath string // swagger.json served under /docs when the file exists
}

// Addr returns host:port.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig location of the local key-value file.
type StoreConfig struct {
	Path string
}

// CompanyConfig issuer identity printed on every invoice.
type CompanyConfig struct {
	Name      string
	Tagline   string
	Address   string
	GSTIN     string
	State     string
	StateCode string
	Phone     string
}

// InvoiceConfig default GST percentages of a new editing session.
type InvoiceConfig struct {
	CGSTPercent decimal.Decimal
	SGSTPercent decimal.Decimal
	IGSTPercent decimal.Decimal
}

// Load reads the configuration from environment variables (and optionally from files).
// Env vars win. Expected names: APP_ENV, HTTP_PORT, STORE_PATH, COMPANY_NAME, etc.
func Load() (*Config, error) {
	v := viper.New()

	// optional .env in the working directory
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	// or config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cgst, err := getDecimal(v, "INVOICE_CGST_PERCENT", "9")
	if err != nil {
		return nil, err
	}
	sgst, err := getDecimal(v, "INVOICE_SGST_PERCENT", "9")
	if err != nil {
		return nil, err
	}
	igst, err := getDecimal(v, "INVOICE_IGST_PERCENT", "0")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "gst-invoice"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:     getString(v, "HTTP_HOST", "127.0.0.1"),
			Port:     getInt(v, "HTTP_PORT", 8080),
			DocsPath: getString(v, "DOCS_PATH", "./docs/swagger.json"),
		},
		Store: StoreConfig{
			Path: getString(v, "STORE_PATH", "gstinvoice.db"),
		},
		Company: CompanyConfig{
			Name:      getString(v, "COMPANY_NAME", "SENDHUR TRADERS"),
			Tagline:   getString(v, "COMPANY_TAGLINE", "TRADING OF ALL KINDS OF SCRAPS"),
			Address:   getString(v, "COMPANY_ADDRESS", "Flat No: 4/725,Jai Nagar\nErumapalayam, SALEM - 636 015."),
			GSTIN:     getString(v, "COMPANY_GSTIN", "33CNKPM7002D1ZD"),
			State:     getString(v, "COMPANY_STATE", "Tamilnadu"),
			StateCode: getString(v, "COMPANY_STATE_CODE", "33"),
			Phone:     getString(v, "COMPANY_PHONE", "99443 79537\n70104 12349"),
		},
		Invoice: InvoiceConfig{
			CGSTPercent: cgst,
			SGSTPercent: sgst,
			IGSTPercent: igst,
		},
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getDecimal(v *viper.Viper, key, def string) (decimal.Decimal, error) {
	raw := def
	if v.IsSet(key) {
		raw = strings.TrimSpace(v.GetString(key))
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("config %s: %w", key, err)
	}
	return d, nil
}
