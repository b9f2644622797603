package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Backend  BackendConfig  `mapstructure:"backend"`
	Supabase SupabaseConfig `mapstructure:"supabase"`
	Database DatabaseConfig `mapstructure:"database"`
	RocketMQ RocketMQConfig `mapstructure:"rocketmq"`
	Display  DisplayConfig  `mapstructure:"display"`
}

// ServerConfig represents the local dashboard server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// BackendConfig represents the link/QR/analytics backend
type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SupabaseConfig represents the auth provider configuration
type SupabaseConfig struct {
	URL       string `mapstructure:"url"`
	AnonKey   string `mapstructure:"anon_key"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

// SQLConfig represents the links store connection
type SQLConfig struct {
	Driver      string `mapstructure:"driver"`
	DSN         string `mapstructure:"dsn"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr       string        `mapstructure:"addr"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// RocketMQConfig represents RocketMQ configuration
type RocketMQConfig struct {
	NameServer string `mapstructure:"nameserver"`
	Topic      string `mapstructure:"topic"`
	Group      string `mapstructure:"group"`
}

// DisplayConfig controls how analytics are bucketed for presentation
type DisplayConfig struct {
	Timezone    string `mapstructure:"timezone"`
	RecentLimit int    `mapstructure:"recent_limit"`
}

// Location resolves the display timezone, falling back to local time.
func (d DisplayConfig) Location() *time.Location {
	if d.Timezone == "" || strings.EqualFold(d.Timezone, "local") {
		return time.Local
	}
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Load loads configuration from file. A missing file is not an error:
// defaults and QRLINX_* environment variables are enough to run.
func Load(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("QRLINX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand environment variables
	c.Database.Redis.Password = expandEnv(c.Database.Redis.Password)
	c.Database.SQL.DSN = expandEnv(c.Database.SQL.DSN)
	c.Supabase.URL = expandEnv(c.Supabase.URL)
	c.Supabase.AnonKey = expandEnv(c.Supabase.AnonKey)
	c.Supabase.JWTSecret = expandEnv(c.Supabase.JWTSecret)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the settings the client cannot run without
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	switch c.Database.SQL.Driver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported database.sql.driver %q", c.Database.SQL.Driver)
	}
	if c.Display.RecentLimit <= 0 {
		return fmt.Errorf("display.recent_limit must be positive")
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("backend.base_url", "http://127.0.0.1:8000")
	v.SetDefault("backend.timeout", 15*time.Second)
	v.SetDefault("supabase.url", "")
	v.SetDefault("supabase.anon_key", "")
	v.SetDefault("supabase.jwt_secret", "")
	v.SetDefault("database.sql.driver", "postgres")
	v.SetDefault("database.sql.dsn", "")
	v.SetDefault("database.sql.auto_migrate", false)
	v.SetDefault("database.redis.password", "")
	v.SetDefault("database.redis.db", 0)
	v.SetDefault("rocketmq.nameserver", "")
	v.SetDefault("database.redis.addr", "127.0.0.1:6379")
	v.SetDefault("database.redis.session_ttl", 7*24*time.Hour)
	v.SetDefault("rocketmq.topic", "link_events")
	v.SetDefault("rocketmq.group", "qrlinx_dashboard_group")
	v.SetDefault("display.timezone", "Local")
	v.SetDefault("display.recent_limit", 10)
}

// expandEnv expands environment variables in the string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	return s
}
