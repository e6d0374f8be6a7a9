// Package config handles configuration loading for StockMood.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"     yaml:"api"`
	News    NewsConfig    `mapstructure:"news"    yaml:"news"`
	Prices  PricesConfig  `mapstructure:"prices"  yaml:"prices"`
	History HistoryConfig `mapstructure:"history" yaml:"history"`
	Cache   CacheConfig   `mapstructure:"cache"   yaml:"cache"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// NewsConfig holds news provider settings.
type NewsConfig struct {
	NewsAPIKey string   `mapstructure:"newsapi_key" yaml:"newsapi_key"`
	RSSFeeds   []string `mapstructure:"rss_feeds"   yaml:"rss_feeds"` // fallback market feeds
}

// PricesConfig holds price provider settings.
type PricesConfig struct {
	FMPKey string `mapstructure:"fmp_key" yaml:"fmp_key"`
}

// HistoryConfig holds historical sentiment store settings.
type HistoryConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// CacheConfig holds handler response cache TTLs, in seconds.
type CacheConfig struct {
	AnalyzeTTL     int `mapstructure:"analyze_ttl"      yaml:"analyze_ttl"`
	PriceTTL       int `mapstructure:"price_ttl"        yaml:"price_ttl"`
	GeneralNewsTTL int `mapstructure:"general_news_ttl" yaml:"general_news_ttl"`
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.stockmood/config.yaml (home directory)
//  3. /etc/stockmood/config.yaml (system)
//
// Environment variables override config file values.
// Format: STOCKMOOD_<SECTION>_<KEY>, e.g., STOCKMOOD_NEWS_NEWSAPI_KEY
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".stockmood"))
	v.AddConfigPath("/etc/stockmood")

	v.SetEnvPrefix("STOCKMOOD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file not required to exist; defaults + env vars suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("STOCKMOOD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 5000)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})

	v.SetDefault("history.file", "historical_sentiment_data.json")

	// Handler cache TTLs (seconds): analysis 15 min, prices 4 h, headlines 30 min.
	v.SetDefault("cache.analyze_ttl", 900)
	v.SetDefault("cache.price_ttl", 14400)
	v.SetDefault("cache.general_news_ttl", 1800)
}

// overrideFromEnv explicitly reads sensitive keys from environment
// variables. The unprefixed NEWS_API_KEY and FMP_API_KEY names are kept
// for compatibility with existing deployments.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv("STOCKMOOD_NEWS_NEWSAPI_KEY"); key != "" {
		cfg.News.NewsAPIKey = key
	} else if key := os.Getenv("NEWS_API_KEY"); key != "" {
		cfg.News.NewsAPIKey = key
	}
	if key := os.Getenv("STOCKMOOD_PRICES_FMP_KEY"); key != "" {
		cfg.Prices.FMPKey = key
	} else if key := os.Getenv("FMP_API_KEY"); key != "" {
		cfg.Prices.FMPKey = key
	}
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
