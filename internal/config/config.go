package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"StockBoard/internal/feed"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Basket struct {
		Tickers   []string `yaml:"tickers"`
		StartDate string   `yaml:"start_date"` // YYYY-MM-DD
		EndDate   string   `yaml:"end_date"`   // YYYY-MM-DD, empty = today (resolved in cmd)
		Interval  string   `yaml:"interval"`
	} `yaml:"basket"`
	Display struct {
		GridColumns int    `yaml:"grid_columns"`
		Period      string `yaml:"period"`
	} `yaml:"display"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"` // empty = one-shot run
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"` // empty = no snapshot cache
	} `yaml:"database"`
	Fetch struct {
		Retries int `yaml:"retries"`
	} `yaml:"fetch"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("BOARD_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("BOARD_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("BOARD_TICKERS"); v != "" {
		cfg.Basket.Tickers = nil
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				cfg.Basket.Tickers = append(cfg.Basket.Tickers, t)
			}
		}
	}
	if v := os.Getenv("BOARD_START_DATE"); v != "" {
		cfg.Basket.StartDate = v
	}
	if v := os.Getenv("BOARD_END_DATE"); v != "" {
		cfg.Basket.EndDate = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("FETCH_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Fetch.Retries = n
		}
	}

	// Defaults
	if len(cfg.Basket.Tickers) == 0 {
		cfg.Basket.Tickers = []string{
			"ITSA4.SA", "BBAS3.SA", "BBDC4.SA", "CSMG3.SA", "SAPR11.SA",
			"TAEE11.SA", "CMIG4.SA", "BBSE3.SA", "PSSA3.SA", "PETR4.SA",
		}
	}
	if cfg.Basket.StartDate == "" {
		cfg.Basket.StartDate = "2024-01-01"
	}
	if cfg.Basket.Interval == "" {
		cfg.Basket.Interval = string(feed.IntervalDaily)
	}
	if cfg.Display.GridColumns == 0 {
		cfg.Display.GridColumns = 4
	}
	if cfg.Display.Period == "" {
		cfg.Display.Period = "quarterly"
	}

	return cfg, nil
}

// StartDate parses the configured start date.
func (c *Config) StartDate() (time.Time, error) {
	return time.Parse("2006-01-02", c.Basket.StartDate)
}

// EndDate parses the configured end date; ok is false when unset.
func (c *Config) EndDate() (time.Time, bool, error) {
	if c.Basket.EndDate == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse("2006-01-02", c.Basket.EndDate)
	return t, err == nil, err
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if len(c.Basket.Tickers) == 0 {
		return fmt.Errorf("basket.tickers is required")
	}
	for _, t := range c.Basket.Tickers {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("basket.tickers contains an empty symbol")
		}
	}
	start, err := c.StartDate()
	if err != nil {
		return fmt.Errorf("basket.start_date: %w", err)
	}
	if end, ok, err := c.EndDate(); err != nil {
		return fmt.Errorf("basket.end_date: %w", err)
	} else if ok && end.Before(start) {
		return fmt.Errorf("basket.end_date before basket.start_date")
	}
	if _, err := feed.ParseInterval(c.Basket.Interval); err != nil {
		return fmt.Errorf("basket.interval: %w", err)
	}
	if c.Display.GridColumns < 1 {
		return fmt.Errorf("display.grid_columns must be at least 1")
	}
	if c.Fetch.Retries < 0 {
		return fmt.Errorf("fetch.retries must not be negative")
	}
	return nil
}
