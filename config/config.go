package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	ListingGlob string `validate:"required"`
	DetailDir   string `validate:"required"`

	CSVOutputPath string `validate:"required"`
	MetricsPath   string
	ExportYear    string `validate:"omitempty,len=4,numeric"`
	FreshOrderIDs []string

	MaxConcurrency int `validate:"min=1,max=64"`
	RateLimitMs    int `validate:"min=0"`
	MaxRetries     int `validate:"min=1"`

	RenderWithBrowser bool
	ChromeBin         string

	LogLevel string `validate:"oneof=debug info warn error"`
}

// Load reads the .env file, resolves every key against the environment
// and defaults, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("LISTING_GLOB", "./pages/orders*.html")
	v.SetDefault("DETAIL_DIR", "./pages/details")
	v.SetDefault("CSV_OUTPUT_PATH", "")
	v.SetDefault("METRICS_PATH", "")
	v.SetDefault("EXPORT_YEAR", "")
	v.SetDefault("FRESH_ORDER_IDS", "")

	v.SetDefault("MAX_CONCURRENCY", 4)
	v.SetDefault("RATE_LIMIT_MS", 0)
	v.SetDefault("MAX_RETRIES", 3)

	v.SetDefault("RENDER_WITH_BROWSER", false)
	v.SetDefault("CHROME_BIN", "")
	v.SetDefault("LOG_LEVEL", "info")
	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ListingGlob:   v.GetString("LISTING_GLOB"),
		DetailDir:     v.GetString("DETAIL_DIR"),
		CSVOutputPath: v.GetString("CSV_OUTPUT_PATH"),
		MetricsPath:   v.GetString("METRICS_PATH"),
		ExportYear:    strings.TrimSpace(v.GetString("EXPORT_YEAR")),
		FreshOrderIDs: splitList(v.GetString("FRESH_ORDER_IDS")),

		MaxConcurrency: v.GetInt("MAX_CONCURRENCY"),
		RateLimitMs:    v.GetInt("RATE_LIMIT_MS"),
		MaxRetries:     v.GetInt("MAX_RETRIES"),

		RenderWithBrowser: v.GetBool("RENDER_WITH_BROWSER"),
		ChromeBin:         v.GetString("CHROME_BIN"),
		LogLevel:          strings.ToLower(v.GetString("LOG_LEVEL")),
	}

	if cfg.CSVOutputPath == "" {
		cfg.CSVOutputPath = DefaultOutputPath(cfg.ExportYear)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}
	return cfg, nil
}

// DefaultOutputPath names the CSV file after the exported year, if any.
func DefaultOutputPath(year string) string {
	if year == "" {
		return filepath.Join("output", "amazon_orders.csv")
	}
	return filepath.Join("output", "amazon_orders_"+year+".csv")
}

// IsFresh reports whether orderID was configured as a fresh order.
func (c *Config) IsFresh(orderID string) bool {
	for _, id := range c.FreshOrderIDs {
		if id == orderID {
			return true
		}
	}
	return false
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
