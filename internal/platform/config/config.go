package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"

	// PathEnv names the optional YAML file read by Load when no path is given.
	PathEnv = "ARTJURY_CONFIG"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName   string        `yaml:"service_name" env:"SERVICE_NAME"`
	HTTPPort      string        `yaml:"http_port" env:"HTTP_PORT"`
	EnableSwagger bool          `yaml:"enable_swagger" env:"ENABLE_SWAGGER"`
	Store         StoreConfig   `yaml:"store"`
	Session       SessionConfig `yaml:"session"`
	Judging       JudgingConfig `yaml:"judging"`
}

type StoreConfig struct {
	Driver      string `yaml:"driver" env:"STORE_DRIVER"`
	PostgresDSN string `yaml:"postgres_dsn" env:"POSTGRES_DSN"`
}

type SessionConfig struct {
	Secret string        `yaml:"secret" env:"SESSION_SECRET"`
	TTL    time.Duration `yaml:"ttl" env:"SESSION_TTL"`
}

type JudgingConfig struct {
	MaxScore float64 `yaml:"max_score" env:"MAX_SCORE"`
	TopN     int     `yaml:"results_top_n" env:"RESULTS_TOP_N"`
}

func Defaults() Config {
	return Config{
		ServiceName:   "artjury",
		HTTPPort:      "8080",
		EnableSwagger: true,
		Store: StoreConfig{
			Driver: StoreMemory,
		},
		Session: SessionConfig{
			TTL: 12 * time.Hour,
		},
		Judging: JudgingConfig{
			MaxScore: 10,
			TopN:     10,
		},
	}
}

// Load applies defaults, then the YAML file at path (or $ARTJURY_CONFIG),
// then environment variables. An explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Defaults()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = strings.TrimSpace(os.Getenv(PathEnv))
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("decode config file %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory:
	case StorePostgres:
		if strings.TrimSpace(c.Store.PostgresDSN) == "" {
			return errors.New("config: postgres_dsn is required for the postgres store")
		}
	default:
		return fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	if strings.TrimSpace(c.Session.Secret) == "" {
		return errors.New("config: session secret is required")
	}
	if c.Session.TTL <= 0 {
		return errors.New("config: session ttl must be positive")
	}
	if c.Judging.MaxScore <= 0 {
		return errors.New("config: max_score must be positive")
	}
	if c.Judging.TopN <= 0 {
		return errors.New("config: results_top_n must be positive")
	}
	return nil
}
