package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort      = 8080
	defaultBaseURL   = "https://v6.db.transport.rest"
	defaultTimeoutMS = 30000
)

// Load reads the first readable config file, applies defaults and
// environment overrides, and validates the result. A missing config file is
// fine; defaults plus environment are enough to run.
func Load(paths ...string) (AppConfig, error) {
	_ = godotenv.Load()

	if len(paths) == 0 {
		paths = []string{"config.yml", "./config/config.yml"}
	}
	var cfg AppConfig
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, err
		}
		break
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = defaultBaseURL
	}
	if cfg.Upstream.TimeoutMS == 0 {
		cfg.Upstream.TimeoutMS = defaultTimeoutMS
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := envInt("PORT"); v > 0 {
		cfg.Server.Port = v
	}
	if v := os.Getenv("UPSTREAM_BASE_URL"); v != "" {
		cfg.Upstream.BaseURL = v
	}
	if v := envInt("UPSTREAM_TIMEOUT_MS"); v > 0 {
		cfg.Upstream.TimeoutMS = v
	}
}

func envInt(key string) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}
