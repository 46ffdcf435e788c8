package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App      App      `yaml:"app"`
	HTTP     HTTP     `yaml:"http"`
	Log      Log      `yaml:"log"`
	Postgres Postgres `yaml:"postgres"`
	Pricing  Pricing  `yaml:"pricing"`
}

type App struct {
	Name    string `yaml:"name" env:"APP_NAME" env-default:"weighbridge-api"`
	Version string `yaml:"version" env:"APP_VERSION" env-default:"1.0.0"`
}

type HTTP struct {
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type Postgres struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"POSTGRES_USER" env-default:"user"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"password"`
	DBName   string `yaml:"dbname" env:"POSTGRES_DB" env-default:"weighbridge_db"`
	SSLMode  string `yaml:"sslmode" env:"POSTGRES_SSLMODE" env-default:"disable"`
}

type Pricing struct {
	// ResolveOnCreate makes ticket creation look up the active price for the
	// product when the operator does not supply one. When disabled, a missing
	// unit price is rejected instead.
	//
	// Defaulted in New() rather than via env-default: cleanenv re-applies the
	// tag default to a zero-valued field, which would reset an explicit yaml
	// false back to true.
	ResolveOnCreate bool `yaml:"resolve_on_create" env:"PRICING_RESOLVE_ON_CREATE"`
}

func New() (*Config, error) {
	cfg := &Config{}
	cfg.Pricing.ResolveOnCreate = true

	// ReadConfig applies env overrides on top of the file itself.
	if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
		// fallback to env vars if file not found
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
	}

	return cfg, nil
}
