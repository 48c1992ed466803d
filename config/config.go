package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	Game     GameConfig     `yaml:"game"`
	Practice PracticeConfig `yaml:"practice"`
	Data     DataConfig     `yaml:"data"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
}

// GameConfig controls the guessing game.
type GameConfig struct {
	Cutoff    int      `yaml:"cutoff"`     // bars shown before the guess
	After     int      `yaml:"after"`      // bars revealed after the cutoff
	Symbols   []string `yaml:"symbols"`    // round draw pool
	ResetCron string   `yaml:"reset_cron"` // daily challenge reset schedule
}

// PracticeConfig controls the funded-practice mode.
type PracticeConfig struct {
	StartBalance float64  `yaml:"start_balance"`
	ProfitTarget float64  `yaml:"profit_target"`
	MaxDrawdown  float64  `yaml:"max_drawdown"` // negative
	DefaultBuy   float64  `yaml:"default_buy"`
	Symbols      []string `yaml:"symbols"`
}

// DataConfig controls the market data source and local cache.
type DataConfig struct {
	BaseURL      string   `yaml:"base_url"`
	APIKey       string   `yaml:"api_key"`
	CacheDir     string   `yaml:"cache_dir"`
	MaxNewPerDay int      `yaml:"max_new_per_day"` // Alpha Vantage free-tier cap
	Symbols      []string `yaml:"symbols"`         // full collection universe
}

// StorageConfig controls where user state is persisted.
type StorageConfig struct {
	DSN string `yaml:"dsn"` // SQLite file path, or ":memory:"
}

// LogConfig controls logging output.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load reads the YAML config and the .env file if present. Env vars override
// the YAML for the keys they cover. A missing config file yields defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		cfg.Data.APIKey = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

func setDefaults(cfg *Config) {
	if cfg.Game.Cutoff <= 0 {
		cfg.Game.Cutoff = 60
	}
	if cfg.Game.After <= 0 {
		cfg.Game.After = 30
	}
	if len(cfg.Game.Symbols) == 0 {
		cfg.Game.Symbols = defaultRoundPool()
	}
	if cfg.Game.ResetCron == "" {
		cfg.Game.ResetCron = "0 0 * * *"
	}

	if cfg.Practice.StartBalance <= 0 {
		cfg.Practice.StartBalance = 50000
	}
	if cfg.Practice.ProfitTarget <= 0 {
		cfg.Practice.ProfitTarget = 2500
	}
	if cfg.Practice.MaxDrawdown >= 0 {
		cfg.Practice.MaxDrawdown = -2500
	}
	if cfg.Practice.DefaultBuy <= 0 {
		cfg.Practice.DefaultBuy = 1000
	}
	if len(cfg.Practice.Symbols) == 0 {
		cfg.Practice.Symbols = []string{"AAPL", "MSFT", "GOOG", "AMZN", "META", "TSLA", "NVDA"}
	}

	if cfg.Data.CacheDir == "" {
		cfg.Data.CacheDir = "stock-data"
	}
	if cfg.Data.MaxNewPerDay <= 0 {
		cfg.Data.MaxNewPerDay = 25
	}
	if len(cfg.Data.Symbols) == 0 {
		cfg.Data.Symbols = defaultUniverse()
	}

	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "stockify.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

// defaultRoundPool is the 25-symbol subset rounds are drawn from.
func defaultRoundPool() []string {
	return []string{
		"AAPL", "MSFT", "GOOG", "AMZN", "META", "TSLA", "NVDA", "BRK.B", "JPM", "V",
		"UNH", "HD", "PG", "MA", "LLY", "XOM", "MRK", "AVGO", "COST", "ABBV",
		"PEP", "KO", "ADBE", "WMT", "BAC",
	}
}

// defaultUniverse is the 100-symbol collection list the fetch command walks.
func defaultUniverse() []string {
	return []string{
		"AAPL", "MSFT", "GOOG", "AMZN", "META", "TSLA", "NVDA", "BRK.B", "JPM", "V",
		"UNH", "HD", "PG", "MA", "LLY", "XOM", "MRK", "AVGO", "COST", "ABBV",
		"PEP", "KO", "ADBE", "WMT", "BAC", "MCD", "CVX", "ACN", "TMO", "ABT",
		"CSCO", "DHR", "LIN", "DIS", "VZ", "NFLX", "CRM", "NKE", "TXN", "NEE",
		"WFC", "INTC", "PM", "HON", "UNP", "BMY", "AMGN", "QCOM", "LOW", "MS",
		"ORCL", "MDT", "RTX", "IBM", "SBUX", "GE", "CAT", "GS", "BLK", "AMAT",
		"ISRG", "PLD", "NOW", "LMT", "T", "DE", "SPGI", "SYK", "ELV", "MDLZ",
		"ZTS", "CB", "ADI", "GILD", "MO", "MMC", "AXP", "C", "SCHW", "CI",
		"USB", "REGN", "ADP", "VRTX", "PNC", "SO", "CL", "DUK", "TGT", "BDX",
		"PGR", "SHW", "FISV", "ITW", "EW", "CSX", "FDX", "AON", "HUM", "BKNG",
	}
}
