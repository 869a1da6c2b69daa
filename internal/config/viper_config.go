package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads the server configuration using Viper
// Priority order: Environment variables > Config file > Defaults
func LoadConfig(configPath string) (*Config, error) {
	cfg, err := load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadScraperConfig loads the same file as LoadConfig but does not require
// the HTTP listen address
func LoadScraperConfig(configPath string) (*Config, error) {
	cfg, err := load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateScraper(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func load(configPath string) (*Config, error) {
	v := newViper(configPath)

	// Try to read config file (it's optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// An explicit path that does not exist is treated like a missing file
			if !strings.Contains(err.Error(), "no such file or directory") {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return cfg, nil
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()

	v.SetConfigName("dominion")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/dominionleague")
	}

	// Enable environment variable binding
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// These allow both SERVER_PORT and PORT to work
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.host", "HOST")
	v.BindEnv("server.loglevel", "LOG_LEVEL")
	v.BindEnv("server.logformat", "LOG_FORMAT")
	v.BindEnv("server.ratelimit", "RATE_LIMIT")
	v.BindEnv("server.ratelimitburst", "RATE_LIMIT_BURST")
	v.BindEnv("server.maxrequestsize", "MAX_REQUEST_SIZE")
	v.BindEnv("server.trustproxy", "TRUST_PROXY")
	v.BindEnv("storage.root", "STORAGE_ROOT")
	v.BindEnv("scraper.useragent", "SCRAPER_USER_AGENT")
	v.BindEnv("scraper.skipexisting", "SCRAPER_SKIP_EXISTING")

	d := DefaultConfig()

	v.SetDefault("server.readtimeout", d.Server.ReadTimeout.String())
	v.SetDefault("server.writetimeout", d.Server.WriteTimeout.String())
	v.SetDefault("server.idletimeout", d.Server.IdleTimeout.String())
	v.SetDefault("server.shutdowntimeout", d.Server.ShutdownTimeout.String())
	v.SetDefault("server.requesttimeout", d.Server.RequestTimeout.String())

	v.SetDefault("server.ratelimit", d.Server.RateLimit)
	v.SetDefault("server.ratelimitburst", d.Server.RateLimitBurst)
	v.SetDefault("server.maxrequestsize", d.Server.MaxRequestSize)
	v.SetDefault("server.trustproxy", d.Server.TrustProxy)

	v.SetDefault("server.loglevel", d.Server.LogLevel)
	v.SetDefault("server.logformat", d.Server.LogFormat)

	v.SetDefault("storage.root", d.Storage.Root)

	v.SetDefault("scraper.timeout", d.Scraper.Timeout.String())
	v.SetDefault("scraper.useragent", d.Scraper.UserAgent)
	v.SetDefault("scraper.skipexisting", d.Scraper.SkipExisting)

	return v
}
