package store

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"equity-desk/internal/pricesim"
	"equity-desk/internal/recommend"
	"equity-desk/internal/universe"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Universe        []string         `yaml:"universe"`
	BatchSize       int              `yaml:"batch_size"`
	Seed            int64            `yaml:"seed"`
	Recommendations recommend.Config `yaml:"recommendations"`
	Simulator       pricesim.Config  `yaml:"simulator"`
	Order           struct {
		DefaultQty int `yaml:"default_qty"`
	} `yaml:"order"`
	Risk struct {
		Capital         float64 `yaml:"capital"`
		PerTradeRiskPct float64 `yaml:"per_trade_risk_pct"`
	} `yaml:"risk"`
	Journal struct {
		Dir           string `yaml:"dir"`
		SQLitePath    string `yaml:"sqlite_path"`
		RetentionDays int    `yaml:"retention_days"`
	} `yaml:"journal"`
}

// DefaultConfig mirrors the desk's built-in behaviour: seven NSE names,
// batches of five, entries in [1000, 3000] and +-5% ticks.
func DefaultConfig() *Config {
	c := &Config{
		Universe:        universe.Equity(),
		BatchSize:       5,
		Recommendations: recommend.DefaultConfig(),
		Simulator:       pricesim.DefaultConfig(),
	}
	c.Order.DefaultQty = 1
	c.Risk.Capital = 100000
	c.Risk.PerTradeRiskPct = 25
	return c
}

func (c *Config) Validate() error {
	symbols := universe.Distinct(c.Universe)
	if len(symbols) == 0 {
		return errors.New("universe cannot be empty")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive, got %d", c.BatchSize)
	}
	if c.BatchSize > len(symbols) {
		return fmt.Errorf("batch_size %d exceeds the %d distinct universe symbols", c.BatchSize, len(symbols))
	}
	if err := c.Recommendations.Validate(); err != nil {
		return fmt.Errorf("recommendations: %w", err)
	}
	if err := c.Simulator.Validate(); err != nil {
		return fmt.Errorf("simulator: %w", err)
	}
	if c.Order.DefaultQty <= 0 {
		return fmt.Errorf("order.default_qty must be positive, got %d", c.Order.DefaultQty)
	}
	if c.Risk.Capital < 0 {
		return fmt.Errorf("risk.capital cannot be negative, got %.2f", c.Risk.Capital)
	}
	if c.Risk.PerTradeRiskPct < 0 || c.Risk.PerTradeRiskPct > 100 {
		return fmt.Errorf("risk.per_trade_risk_pct must be between 0-100, got %.2f", c.Risk.PerTradeRiskPct)
	}
	return nil
}

// LoadConfig overlays the YAML file at path on DefaultConfig, applies
// environment overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	if err := c.finish(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadOrDefault is LoadConfig, falling back to defaults when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	c, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		c = DefaultConfig()
		if err := c.finish(); err != nil {
			return nil, err
		}
		return c, nil
	}
	return c, err
}

func (c *Config) finish() error {
	if v := os.Getenv("TRADER_LOG_DIR"); v != "" {
		c.Journal.Dir = v
	}
	if v := os.Getenv("TRADER_LOG_RETENTION_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TRADER_LOG_RETENTION_DAYS: %w", err)
		}
		c.Journal.RetentionDays = n
	}
	if v := os.Getenv("DESK_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("DESK_SEED: %w", err)
		}
		c.Seed = n
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
