// Package config loads application configuration with viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/tillpad/tillpad/internal/tax"
)

// Config holds application configuration.
type Config struct {
	Tax TaxConfig
	UI  UIConfig
	Log LogConfig
}

// TaxConfig holds the per-group tax rates.
type TaxConfig struct {
	Food     float64
	Standard float64
	Alcohol  float64
	Zero     float64
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	Theme          string
}

// LogConfig holds log-file settings. Logging is off when Path is
// empty.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use
// prefix TILLPAD_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("tax.food", 0.05)
	v.SetDefault("tax.standard", 0.08)
	v.SetDefault("tax.alcohol", 0.12)
	v.SetDefault("tax.zero", 0.0)
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TILLPAD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tillpad"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TILLPAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Policy converts the configured rates into a tax policy.
func (t TaxConfig) Policy() tax.Policy {
	return tax.Policy{
		tax.Food:     decimal.NewFromFloat(t.Food),
		tax.Standard: decimal.NewFromFloat(t.Standard),
		tax.Alcohol:  decimal.NewFromFloat(t.Alcohol),
		tax.Zero:     decimal.NewFromFloat(t.Zero),
	}
}
