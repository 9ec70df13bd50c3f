package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"airline_tycoon/internal/models"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Game      GameConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type StorageConfig struct {
	Path string
	// AutosaveDays is the number of simulated days between snapshots.
	AutosaveDays int
	// KeepSnapshots bounds how many snapshots are retained; 0 keeps all.
	KeepSnapshots int
}

type LoggingConfig struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	Burst             int
}

type GameConfig struct {
	Seed         int64
	AirportsCSV  string
	DefaultSpeed int
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using system environment variables")
	}

	cfg := load()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func load() *Config {
	return &Config{
		Server:    loadServerConfig(),
		Storage:   loadStorageConfig(),
		Logging:   loadLoggingConfig(),
		CORS:      loadCORSConfig(),
		RateLimit: loadRateLimitConfig(),
		Game:      loadGameConfig(),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func loadServerConfig() ServerConfig {
	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT_SECONDS", "15"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT_SECONDS", "15"))
	idleTimeout, _ := strconv.Atoi(getEnv("SERVER_IDLE_TIMEOUT_SECONDS", "60"))
	shutdownTimeout, _ := strconv.Atoi(getEnv("SERVER_SHUTDOWN_TIMEOUT_SECONDS", "10"))

	return ServerConfig{
		Port:            getEnv("PORT", "4000"),
		ReadTimeout:     time.Duration(readTimeout) * time.Second,
		WriteTimeout:    time.Duration(writeTimeout) * time.Second,
		IdleTimeout:     time.Duration(idleTimeout) * time.Second,
		ShutdownTimeout: time.Duration(shutdownTimeout) * time.Second,
	}
}

func loadStorageConfig() StorageConfig {
	autosave, _ := strconv.Atoi(getEnv("AUTOSAVE_DAYS", "30"))
	keep, _ := strconv.Atoi(getEnv("KEEP_SNAPSHOTS", "20"))

	return StorageConfig{
		Path:          getEnv("DB_PATH", "data/airline.db"),
		AutosaveDays:  autosave,
		KeepSnapshots: keep,
	}
}

func loadLoggingConfig() LoggingConfig {
	maxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE_MB", "64"))
	maxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE_DAYS", "14"))
	maxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "3"))

	return LoggingConfig{
		Level:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Format:     strings.ToLower(getEnv("LOG_FORMAT", "text")),
		File:       getEnv("LOG_FILE", ""),
		MaxSizeMB:  maxSize,
		MaxAgeDays: maxAge,
		MaxBackups: maxBackups,
	}
}

func loadCORSConfig() CORSConfig {
	var origins []string
	for _, o := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return CORSConfig{AllowedOrigins: origins}
}

func loadRateLimitConfig() RateLimitConfig {
	enabled := getEnv("RATE_LIMIT_ENABLED", "true") == "true"
	requestsPerSecond, _ := strconv.ParseFloat(getEnv("RATE_LIMIT_REQUESTS_PER_SECOND", "10"), 64)
	burst, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST_SIZE", "20"))

	return RateLimitConfig{
		Enabled:           enabled,
		RequestsPerSecond: requestsPerSecond,
		Burst:             burst,
	}
}

func loadGameConfig() GameConfig {
	seed, _ := strconv.ParseInt(getEnv("GAME_SEED", "0"), 10, 64)
	speed, _ := strconv.Atoi(getEnv("GAME_DEFAULT_SPEED", "0"))

	return GameConfig{
		Seed:         seed,
		AirportsCSV:  getEnv("AIRPORTS_CSV", ""),
		DefaultSpeed: speed,
	}
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("DB_PATH is required")
	}
	if c.Storage.AutosaveDays <= 0 {
		return fmt.Errorf("AUTOSAVE_DAYS must be positive, got %d", c.Storage.AutosaveDays)
	}
	if c.Storage.KeepSnapshots < 0 {
		return fmt.Errorf("KEEP_SNAPSHOTS must not be negative")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown LOG_LEVEL %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q", c.Logging.Format)
	}
	if !models.ValidSpeed(c.Game.DefaultSpeed) {
		return fmt.Errorf("unsupported GAME_DEFAULT_SPEED %d", c.Game.DefaultSpeed)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate limit needs a positive rate and burst")
	}
	return nil
}
