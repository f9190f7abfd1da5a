package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Log     LogConfig     `yaml:"log"`
	DB      DBConfig      `yaml:"db"`
	Redis   RedisConfig   `yaml:"redis"`
	GRPC    GRPCConfig    `yaml:"grpc"`
	Metrics MetricsConfig `yaml:"metrics"`
	Auth    AuthConfig    `yaml:"auth"`
	Wave    WaveConfig    `yaml:"wave"`
}

type AppConfig struct {
	ENV string `yaml:"env"`
}

type LogConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	Component string `yaml:"component"`
	Source    bool   `yaml:"source"`
	// SQL enables gorm statement logging.
	SQL bool `yaml:"sql"`
}

type DBConfig struct {
	// Driver is "mysql" (default) or "sqlite".
	Driver   string `yaml:"driver"`
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type GRPCConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type MetricsConfig struct {
	// Addr of the Prometheus listener; empty disables it.
	Addr string `yaml:"addr"`
}

type AuthConfig struct {
	// SessionSecret keys the MAC on session tokens issued by the identity service.
	SessionSecret string `yaml:"session_secret"`
	// SchedulerKeyHash is the bcrypt hash of the key the sweep scheduler presents.
	SchedulerKeyHash string `yaml:"scheduler_key_hash"`
}

// WaveConfig holds the handshake lifetimes and per-minute request limits.
type WaveConfig struct {
	BeaconTTL     time.Duration `yaml:"beacon_ttl"`
	PresenceTTL   time.Duration `yaml:"presence_ttl"`
	ChatTTL       time.Duration `yaml:"chat_ttl"`
	PendingTTL    time.Duration `yaml:"pending_ttl"`
	ResolveLimit  int           `yaml:"resolve_limit"`
	RotateLimit   int           `yaml:"rotate_limit"`
	ChatPageSize  int           `yaml:"chat_page_size"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// Defaults returns the configuration used when neither a file nor env vars say otherwise.
func Defaults() *Config {
	cfg := &Config{}
	cfg.App.ENV = "production"

	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Log.Component = "waved"

	cfg.DB.Driver = "mysql"
	cfg.DB.Host = "localhost"
	cfg.DB.Port = "3306"
	cfg.DB.User = "root"
	cfg.DB.Password = "root"
	cfg.DB.Name = "waveos"

	cfg.Redis.Addr = "localhost:6379"

	cfg.GRPC.Host = "127.0.0.1"
	cfg.GRPC.Port = "50051"

	cfg.Wave.BeaconTTL = time.Hour
	cfg.Wave.PresenceTTL = 15 * time.Minute
	cfg.Wave.ChatTTL = 5 * time.Minute
	cfg.Wave.PendingTTL = 24 * time.Hour
	cfg.Wave.ResolveLimit = 120
	cfg.Wave.RotateLimit = 10
	cfg.Wave.ChatPageSize = 20
	cfg.Wave.SweepInterval = time.Minute

	return cfg
}

// New builds the config from defaults overridden by environment variables.
func New() *Config {
	cfg := Defaults()
	applyEnv(cfg)
	finalize(cfg)
	return cfg
}

// Load reads an optional YAML file on top of the defaults, then applies env overrides.
// An empty path behaves like New.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	finalize(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise break the handshake rules at runtime.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("db.driver must be mysql or sqlite, got %q", c.DB.Driver)
	}
	if c.Wave.BeaconTTL <= 0 || c.Wave.PresenceTTL <= 0 || c.Wave.ChatTTL <= 0 || c.Wave.PendingTTL <= 0 {
		return fmt.Errorf("wave lifetimes must be positive")
	}
	if c.Wave.ChatPageSize <= 0 {
		return fmt.Errorf("wave.chat_page_size must be positive")
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.App.ENV = getEnvDefault("APP_ENV", cfg.App.ENV)

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", cfg.Log.Format)
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", cfg.Log.Component)
	if v, ok := os.LookupEnv("LOG_SOURCE"); ok {
		cfg.Log.Source = isTruthy(v)
	}
	if v, ok := os.LookupEnv("LOG_SQL"); ok {
		cfg.Log.SQL = isTruthy(v)
	}

	// Database
	cfg.DB.Driver = strings.ToLower(getEnvDefault("DB_DRIVER", cfg.DB.Driver))
	cfg.DB.DSN = getEnvDefault("DB_DSN", getEnvDefault("MYSQL_DSN", cfg.DB.DSN))
	cfg.DB.Host = getEnvDefault("DB_HOST", cfg.DB.Host)
	cfg.DB.Port = getEnvDefault("DB_PORT", cfg.DB.Port)
	cfg.DB.User = getEnvDefault("DB_USER", cfg.DB.User)
	cfg.DB.Password = getEnvDefault("DB_PASSWORD", cfg.DB.Password)
	cfg.DB.Name = getEnvDefault("DB_NAME", cfg.DB.Name)

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("REDIS_DB", cfg.Redis.DB)

	// gRPC
	cfg.GRPC.Host = getEnvDefault("GRPC_HOST", cfg.GRPC.Host)
	cfg.GRPC.Port = getEnvDefault("GRPC_PORT", cfg.GRPC.Port)

	cfg.Metrics.Addr = getEnvDefault("METRICS_ADDR", cfg.Metrics.Addr)

	// Auth
	cfg.Auth.SessionSecret = getEnvDefault("SESSION_SECRET", cfg.Auth.SessionSecret)
	cfg.Auth.SchedulerKeyHash = getEnvDefault("SCHEDULER_KEY_HASH", cfg.Auth.SchedulerKeyHash)

	// Wave lifetimes
	cfg.Wave.BeaconTTL = getEnvDuration("BEACON_TTL", cfg.Wave.BeaconTTL)
	cfg.Wave.PresenceTTL = getEnvDuration("PRESENCE_TTL", cfg.Wave.PresenceTTL)
	cfg.Wave.ChatTTL = getEnvDuration("CHAT_TTL", cfg.Wave.ChatTTL)
	cfg.Wave.PendingTTL = getEnvDuration("WAVE_PENDING_TTL", cfg.Wave.PendingTTL)
	cfg.Wave.ResolveLimit = getEnvInt("RESOLVE_RATE_LIMIT", cfg.Wave.ResolveLimit)
	cfg.Wave.RotateLimit = getEnvInt("ROTATE_RATE_LIMIT", cfg.Wave.RotateLimit)
	cfg.Wave.ChatPageSize = getEnvInt("CHAT_PAGE_SIZE", cfg.Wave.ChatPageSize)
	cfg.Wave.SweepInterval = getEnvDuration("SWEEP_INTERVAL", cfg.Wave.SweepInterval)
}

// finalize fills derived values, e.g. the MySQL DSN from its parts.
func finalize(cfg *Config) {
	if cfg.DB.DSN != "" {
		return
	}
	switch cfg.DB.Driver {
	case "sqlite":
		cfg.DB.DSN = "file:waveos.db?_busy_timeout=5000&_txlock=immediate"
	default:
		cfg.DB.DSN = fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
		)
	}
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
