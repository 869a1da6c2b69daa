package config

import (
	"fmt"
	"time"

	"dominionleague/internal/logger"
)

// This file defines the configuration structures used by viper_config.go
// The actual loading is handled by viper in viper_config.go

// Config is the configuration shared by the server and the scraper
type Config struct {
	Server  ServerSettings  `yaml:"server"`
	Storage StorageSettings `yaml:"storage"`
	Scraper ScraperSettings `yaml:"scraper"`
}

// ServerSettings contains HTTP server settings
type ServerSettings struct {
	Port            string        `yaml:"port"`
	Host            string        `yaml:"host"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	RequestTimeout  time.Duration `yaml:"requestTimeout"` // Timeout for HTTP requests (middleware)

	// Rate limiting (using golang.org/x/time/rate)
	RateLimit      float64 `yaml:"rateLimit"`      // requests per second
	RateLimitBurst int     `yaml:"rateLimitBurst"` // burst size
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxy bool `yaml:"trustProxy"`

	MaxRequestSize int64 `yaml:"maxRequestSize"`

	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`
}

// StorageSettings locates the scraped asset tree
type StorageSettings struct {
	Root string `yaml:"root"`
}

// ScraperSettings tunes the asset scraper
type ScraperSettings struct {
	Timeout      time.Duration `yaml:"timeout"`
	UserAgent    string        `yaml:"userAgent"`
	SkipExisting bool          `yaml:"skipExisting"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Port:            "", // Must be set via env
			Host:            "", // Must be set via env
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			RequestTimeout:  60 * time.Second,

			RateLimit:      10,
			RateLimitBurst: 20,

			MaxRequestSize: 1048576, // 1MB

			LogLevel:  "info",
			LogFormat: "text",
		},
		Storage: StorageSettings{
			Root: "scraped_data",
		},
		Scraper: ScraperSettings{
			Timeout:   30 * time.Second,
			UserAgent: "dominionleague-scraper/1.0",
		},
	}
}

// Validate checks if the configuration is valid for the HTTP server
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT environment variable must be set")
	}
	if c.Server.Host == "" {
		return fmt.Errorf("HOST environment variable must be set")
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("rateLimit cannot be negative")
	}
	if c.Server.RateLimit > 0 && c.Server.RateLimitBurst < 1 {
		return fmt.Errorf("rateLimitBurst must be at least 1 when rate limiting is enabled")
	}
	if c.Server.MaxRequestSize < 0 {
		return fmt.Errorf("maxRequestSize cannot be negative")
	}
	return c.validateShared()
}

// ValidateScraper checks the settings the scraper depends on
func (c *Config) ValidateScraper() error {
	return c.validateShared()
}

func (c *Config) validateShared() error {
	if c.Storage.Root == "" {
		return fmt.Errorf("storage root must be set")
	}
	if c.Scraper.Timeout <= 0 {
		return fmt.Errorf("scraper timeout must be positive")
	}
	if _, err := logger.ParseLevel(c.Server.LogLevel); err != nil {
		return err
	}
	if c.Server.LogFormat != logger.FormatText && c.Server.LogFormat != logger.FormatJSON {
		return fmt.Errorf("logFormat must be text or json, got %q", c.Server.LogFormat)
	}
	return nil
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}
