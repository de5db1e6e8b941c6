package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tillpad/tillpad/internal/tax"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TILLPAD_CONFIG", "")
	os.Unsetenv("TILLPAD_CONFIG")
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "$", c.UI.CurrencySymbol)
	require.Equal(t, "dark", c.UI.Theme)
	require.Equal(t, "info", c.Log.Level)
	require.Empty(t, c.Log.Path)
	require.InDelta(t, 0.08, c.Tax.Standard, 1e-9)
	require.InDelta(t, 0.05, c.Tax.Food, 1e-9)
}

func TestEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("TILLPAD_UI_CURRENCY_SYMBOL", "£")
	t.Setenv("TILLPAD_TAX_STANDARD", "0.2")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "£", c.UI.CurrencySymbol)
	require.InDelta(t, 0.2, c.Tax.Standard, 1e-9)
}

func TestConfigFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[ui]
currency_symbol = "€"
theme = "light"

[tax]
food = 0.07
`), 0o644))
	t.Setenv("TILLPAD_CONFIG", path)

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "€", c.UI.CurrencySymbol)
	require.Equal(t, "light", c.UI.Theme)
	require.InDelta(t, 0.07, c.Tax.Food, 1e-9)
	// Unset keys keep their defaults.
	require.InDelta(t, 0.08, c.Tax.Standard, 1e-9)
}

func TestTaxConfigPolicy(t *testing.T) {
	t.Parallel()

	p := TaxConfig{Food: 0.07, Standard: 0.2, Alcohol: 0.25, Zero: 0}.Policy()
	require.True(t, p.Rate(tax.Standard).Equal(decimal.NewFromFloat(0.2)))
	require.True(t, p.Rate(tax.Zero).IsZero())
}
