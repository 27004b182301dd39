// Package config provides configuration management using viper.
// It supports loading from YAML files and environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Discord  DiscordConfig  `mapstructure:"discord"`
	Database DatabaseConfig `mapstructure:"database"`
	Backend  BackendConfig  `mapstructure:"backend"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Ranks    RanksConfig    `mapstructure:"ranks"`
}

// DiscordConfig holds Discord connection and channel configuration.
type DiscordConfig struct {
	Token         string `mapstructure:"token"`
	ApplicationID string `mapstructure:"application_id"`
	GuildID       string `mapstructure:"guild_id"`

	// AdminRoleID gates the privileged /ranksadmin subcommands.
	AdminRoleID string `mapstructure:"admin_role_id"`

	// RanksChannels are the channels hosting a live leaderboard message.
	RanksChannels []string `mapstructure:"ranks_channels"`

	// ResultsChannel receives match-result announcements. Empty disables
	// result delivery; refreshes still run.
	ResultsChannel string `mapstructure:"results_channel"`
}

// DatabaseConfig holds the ranking store connection configuration.
type DatabaseConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	Name           string        `mapstructure:"name"`
	PoolSize       int           `mapstructure:"pool_size"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// BackendConfig holds the rating backend API configuration.
type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Secret  string        `mapstructure:"secret"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// HTTPConfig holds the inbound listener configuration.
type HTTPConfig struct {
	Addr string `mapstructure:"addr"`

	// WebhookSecret, when set, is required in the X-Api-Secret header of
	// inbound match-result notifications.
	WebhookSecret string `mapstructure:"webhook_secret"`
}

// RanksConfig holds leaderboard sync behavior.
type RanksConfig struct {
	// RefreshInterval is the period of the scheduled sync tick.
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`

	// LeaderboardSize caps the snapshot row count so the rendered document
	// stays under the Discord message size limit.
	LeaderboardSize int `mapstructure:"leaderboard_size"`

	// RecoveryScanLimit is how many recent messages to inspect per channel
	// when recovering the message cache at startup.
	RecoveryScanLimit int `mapstructure:"recovery_scan_limit"`

	// ConfirmTimeout is how long a destructive admin confirmation stays
	// clickable.
	ConfirmTimeout time.Duration `mapstructure:"confirm_timeout"`
}

// DSN returns the PostgreSQL connection string for the ranking store.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name,
	)
}

// Load reads configuration from file and environment variables.
// It looks for config.yaml in the given directory; every value can also be
// provided through the environment (DISCORD_TOKEN, DATABASE_HOST, ...).
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - env vars can provide all config
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Discord.Token == "" {
		return errors.New("discord token is required")
	}
	if len(c.Discord.RanksChannels) == 0 {
		return errors.New("at least one ranks channel is required")
	}
	return nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "rankhound")
	v.SetDefault("database.name", "rankings")
	v.SetDefault("database.pool_size", 10)
	v.SetDefault("database.connect_timeout", "10s")

	v.SetDefault("backend.base_url", "http://localhost:8090")
	v.SetDefault("backend.timeout", "15s")

	v.SetDefault("http.addr", ":8080")

	v.SetDefault("ranks.refresh_interval", "150s")
	v.SetDefault("ranks.leaderboard_size", 50)
	v.SetDefault("ranks.recovery_scan_limit", 50)
	v.SetDefault("ranks.confirm_timeout", "60s")
}
