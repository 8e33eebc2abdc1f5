// Package config loads service settings with three-layer priority:
// defaults (lowest), an optional YAML file, then environment variables
// (highest). A missing file or Redis/database URL is not an error — the
// service degrades to in-memory collaborators.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings holds everything the service needs at startup.
type Settings struct {
	AppName    string `yaml:"app_name"`
	AppVersion string `yaml:"app_version"`
	AppAddr    string `yaml:"app_addr"`
	APIPrefix  string `yaml:"api_prefix"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	RedisURL    string `yaml:"redis_url"`
	DatabaseURL string `yaml:"database_url"`

	CacheTTL     time.Duration `yaml:"cache_ttl"`
	RateLimitRPM int           `yaml:"rate_limit_rpm"`

	CORSOrigins []string `yaml:"cors_origins"`
}

// Defaults returns the baseline settings.
func Defaults() Settings {
	return Settings{
		AppName:      "voyageai",
		AppVersion:   "1.0.0",
		AppAddr:      ":8080",
		APIPrefix:    "/api/v1",
		LogLevel:     "INFO",
		CacheTTL:     15 * time.Minute,
		RateLimitRPM: 60,
		CORSOrigins:  []string{"*"},
	}
}

// Load assembles Settings from defaults, the YAML file named by
// CONFIG_FILE (or the path argument if non-empty), and environment
// variables, in that order.
func Load(path string) (Settings, error) {
	s := Defaults()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnv(&s)

	if s.RateLimitRPM <= 0 {
		s.RateLimitRPM = 60
	}
	if s.CacheTTL <= 0 {
		s.CacheTTL = 15 * time.Minute
	}
	return s, nil
}

func applyEnv(s *Settings) {
	setString(&s.AppName, "APP_NAME")
	setString(&s.AppVersion, "APP_VERSION")
	setString(&s.AppAddr, "APP_ADDR")
	setString(&s.APIPrefix, "API_PREFIX")
	setString(&s.LogLevel, "LOG_LEVEL")
	setString(&s.LogFormat, "LOG_FORMAT")
	setString(&s.RedisURL, "REDIS_URL")
	setString(&s.DatabaseURL, "DATABASE_URL")

	if v := strings.TrimSpace(os.Getenv("CACHE_TTL_SECONDS")); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			s.CacheTTL = time.Duration(secs) * time.Second
		}
	}
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_RPM")); v != "" {
		if rpm, err := strconv.Atoi(v); err == nil && rpm > 0 {
			s.RateLimitRPM = rpm
		}
	}
	if v := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		if len(origins) > 0 {
			s.CORSOrigins = origins
		}
	}
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
