package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string
	LogLevel   string

	SiteName   string
	AppVersion string

	DefaultGroupName   string
	DefaultDurationMin int

	MaxUploadMB     int
	MaxFiles        int
	ReadWorkers     int
	RateLimitPerMin int
	OutputFilename  string
	PrettyLogs      bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr: getEnv("LISTEN_ADDR", "127.0.0.1:8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		SiteName:   getEnv("SITE_NAME", "Otteluohjelman muunnin"),
		AppVersion: getEnv("APP_VERSION", "dev"),

		DefaultGroupName:   getEnv("DEFAULT_GROUP_NAME", "Joukkue"),
		DefaultDurationMin: getEnvInt("DEFAULT_DURATION_MIN", 75),

		MaxUploadMB:     getEnvInt("MAX_UPLOAD_MB", 20),
		MaxFiles:        getEnvInt("MAX_FILES", 10),
		ReadWorkers:     getEnvInt("READ_WORKERS", 4),
		RateLimitPerMin: getEnvInt("RATE_LIMIT_PER_MIN", 60),
		OutputFilename:  getEnv("OUTPUT_FILENAME", "tapahtumat.xlsx"),
		PrettyLogs:      getEnvBool("LOG_PRETTY", false),
	}

	if cfg.ReadWorkers <= 0 {
		cfg.ReadWorkers = 1
	}
	if cfg.MaxUploadMB <= 0 {
		return Config{}, fmt.Errorf("MAX_UPLOAD_MB must be positive, got %d", cfg.MaxUploadMB)
	}
	if cfg.MaxFiles <= 0 {
		return Config{}, fmt.Errorf("MAX_FILES must be positive, got %d", cfg.MaxFiles)
	}

	return cfg, nil
}

func (c Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
