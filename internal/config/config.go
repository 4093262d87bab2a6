package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type AuthConfig struct {
	AccessSecret string
	AccessTTL    string
	ResetTTL     string
}

type ContractsConfig struct {
	DefaultWarrantyDays int
}

type BillingConfig struct {
	DueDays int
}

type CEPConfig struct {
	BaseURL string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	Contracts   ContractsConfig
	Billing     BillingConfig
	CEP         CEPConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
			AccessTTL:    v.GetString("JWT_ACCESS_TTL"),
			ResetTTL:     v.GetString("JWT_RESET_TTL"),
		},
		Contracts: ContractsConfig{
			DefaultWarrantyDays: v.GetInt("CONTRACTS_DEFAULT_WARRANTY_DAYS"),
		},
		Billing: BillingConfig{
			DueDays: v.GetInt("BILLING_DUE_DAYS"),
		},
		CEP: CEPConfig{
			BaseURL: v.GetString("CEP_BASE_URL"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.Auth.AccessTTL == "" {
		cfg.Auth.AccessTTL = "24h"
	}
	if cfg.Auth.ResetTTL == "" {
		cfg.Auth.ResetTTL = "30m"
	}
	if cfg.Contracts.DefaultWarrantyDays == 0 {
		cfg.Contracts.DefaultWarrantyDays = 365
	}
	if cfg.Billing.DueDays == 0 {
		cfg.Billing.DueDays = 30
	}
	if cfg.CEP.BaseURL == "" {
		cfg.CEP.BaseURL = "https://viacep.com.br"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	return nil
}
