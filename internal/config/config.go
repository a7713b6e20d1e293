package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all application settings.
type Config struct {
	HTTP     HTTP     `mapstructure:"http"`
	Database Database `mapstructure:"database"`
	RabbitMQ RabbitMQ `mapstructure:"rabbitmq"`
	Auth     Auth     `mapstructure:"auth"`
	Dispatch Dispatch `mapstructure:"dispatch"`
}

type HTTP struct {
	APIPort      int `mapstructure:"api_port"`
	DispatchPort int `mapstructure:"dispatch_port"`
}

type Database struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxConns int    `mapstructure:"max_conns"`
}

type RabbitMQ struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	VHost    string `mapstructure:"vhost"`
}

type Auth struct {
	JWTSecret     string `mapstructure:"jwt_secret"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours"`
}

type Dispatch struct {
	RequireDriverOnConfirm bool `mapstructure:"require_driver_on_confirm"`
	RelayEnabled           bool `mapstructure:"relay_enabled"`
	HistoryLimit           int  `mapstructure:"history_limit"`
	DisplayWindowHours     int  `mapstructure:"display_window_hours"`
}

// Load reads the YAML config at path (env vars override file values).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("FUELMATE")
	v.AutomaticEnv()

	v.SetDefault("http.api_port", 5000)
	v.SetDefault("http.dispatch_port", 3000)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("rabbitmq.port", 5672)
	v.SetDefault("rabbitmq.vhost", "/")
	v.SetDefault("auth.token_ttl_hours", 24)
	v.SetDefault("dispatch.require_driver_on_confirm", true)
	v.SetDefault("dispatch.relay_enabled", true)
	v.SetDefault("dispatch.history_limit", 10)
	v.SetDefault("dispatch.display_window_hours", 24)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// ValidateAPI checks the settings the api service cannot run without.
func (c *Config) ValidateAPI() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required (or FUELMATE_AUTH_JWT_SECRET)")
	}
	if c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "" {
		return fmt.Errorf("database config incomplete")
	}
	return nil
}

// ValidateMQ checks the settings the relay and notifier cannot run without.
func (c *Config) ValidateMQ() error {
	if c.RabbitMQ.Host == "" || c.RabbitMQ.User == "" {
		return fmt.Errorf("rabbitmq config incomplete")
	}
	return nil
}
