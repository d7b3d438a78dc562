package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.NotEmpty(t, cfg.Basket.Tickers)
	assert.Equal(t, "2024-01-01", cfg.Basket.StartDate)
	assert.Equal(t, "1d", cfg.Basket.Interval)
	assert.Equal(t, 4, cfg.Display.GridColumns)
	assert.Equal(t, "quarterly", cfg.Display.Period)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
basket:
  tickers: ["AAA", "BBB"]
  start_date: "2024-02-01"
  end_date: "2024-06-10"
display:
  grid_columns: 2
`), 0644))
	t.Setenv("BOARD_TICKERS", "CCC, DDD")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"CCC", "DDD"}, cfg.Basket.Tickers)
	assert.Equal(t, 2, cfg.Display.GridColumns)

	start, err := cfg.StartDate()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", start.Format("2006-01-02"))

	end, ok, err := cfg.EndDate()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2024-06-10", end.Format("2006-01-02"))
}

func TestValidate_Rejections(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.Basket.StartDate = "01-02-2024"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Basket.EndDate = "2023-01-01"
	assert.Error(t, cfg.Validate(), "end before start")

	cfg = base()
	cfg.Basket.Interval = "5m"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Display.GridColumns = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Basket.Tickers = []string{"AAA", " "}
	assert.Error(t, cfg.Validate())
}
