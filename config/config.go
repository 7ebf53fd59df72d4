package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Storage
	Storage StorageConfig

	// Upstream services
	OpenMeteo   OpenMeteoConfig
	Frankfurter FrankfurterConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

type StorageConfig struct {
	Dir string
}

type OpenMeteoConfig struct {
	GeocodingURL string
	ForecastURL  string
	Timeout      time.Duration
}

type FrankfurterConfig struct {
	URL     string
	Timeout time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Rate limiting
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = cfg.RateLimit.PerMinute
	}

	// Storage
	cfg.Storage.Dir = viper.GetString("storage.dir")

	// Upstream services
	cfg.OpenMeteo.GeocodingURL = viper.GetString("open_meteo.geocoding_url")
	cfg.OpenMeteo.ForecastURL = viper.GetString("open_meteo.forecast_url")
	cfg.OpenMeteo.Timeout = viper.GetDuration("open_meteo.timeout")
	cfg.Frankfurter.URL = viper.GetString("frankfurter.url")
	cfg.Frankfurter.Timeout = viper.GetDuration("frankfurter.timeout")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_minute", 120)
	viper.SetDefault("rate_limit.burst", 20)
	viper.SetDefault("storage.dir", "./data")
	viper.SetDefault("open_meteo.geocoding_url", "https://geocoding-api.open-meteo.com")
	viper.SetDefault("open_meteo.forecast_url", "https://api.open-meteo.com")
	viper.SetDefault("open_meteo.timeout", "10s")
	viper.SetDefault("frankfurter.url", "https://api.frankfurter.app")
	viper.SetDefault("frankfurter.timeout", "10s")
}
