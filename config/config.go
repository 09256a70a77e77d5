package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Upload   UploadConfig

	// Access
	Auth      AuthConfig
	RateLimit RateLimitConfig

	// Admin CLI
	Admin AdminConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CacheConfig struct {
	Prefix string
	TTL    time.Duration
}

type UploadConfig struct {
	Dir               string
	PublicPath        string
	MaxSizeBytes      int64
	AllowedExtensions []string
}

type AuthConfig struct {
	APIKeys []string
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	Burst          int
	MaxKeys        int
	KeyTTL         time.Duration
}

// AdminConfig is read by the admin CLI, not the server.
type AdminConfig struct {
	BaseURL    string
	APIKey     string
	TenantID   string
	UserID     string
	Timeout    time.Duration
	RetryCount int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Postgres.DSN = expandEnvVar(viper.GetString("postgres.dsn"))
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	cfg.Postgres.AutoMigrate = viper.GetBool("postgres.auto_migrate")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = expandEnvVar(viper.GetString("redis.password"))
	cfg.Redis.DB = viper.GetInt("redis.db")

	cfg.Cache.Prefix = viper.GetString("cache.prefix")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	cfg.Upload.Dir = viper.GetString("upload.dir")
	cfg.Upload.PublicPath = viper.GetString("upload.public_path")
	cfg.Upload.MaxSizeBytes = viper.GetInt64("upload.max_size_bytes")
	cfg.Upload.AllowedExtensions = splitList(viper.Get("upload.allowed_extensions"))

	// Access
	for _, key := range splitList(viper.Get("auth.api_keys")) {
		if key = expandEnvVar(key); key != "" {
			cfg.Auth.APIKeys = append(cfg.Auth.APIKeys, key)
		}
	}
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxKeys = viper.GetInt("rate_limit.max_keys")
	cfg.RateLimit.KeyTTL = viper.GetDuration("rate_limit.key_ttl")

	// Admin CLI
	cfg.Admin.BaseURL = viper.GetString("admin.base_url")
	cfg.Admin.APIKey = expandEnvVar(viper.GetString("admin.api_key"))
	cfg.Admin.TenantID = viper.GetString("admin.tenant_id")
	cfg.Admin.UserID = viper.GetString("admin.user_id")
	cfg.Admin.Timeout = viper.GetDuration("admin.timeout")
	cfg.Admin.RetryCount = viper.GetInt("admin.retry_count")

	return cfg, nil
}

// Validate checks what the API server cannot start without.
func (c *Config) Validate() error {
	if c.Postgres.DSN == "" {
		return fmt.Errorf("postgres.dsn is required")
	}
	if len(c.Auth.APIKeys) == 0 {
		return fmt.Errorf("auth.api_keys must contain at least one key")
	}
	if c.Upload.Dir == "" {
		return fmt.Errorf("upload.dir is required")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.max_open_conns", 20)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")
	viper.SetDefault("postgres.auto_migrate", true)

	viper.SetDefault("cache.prefix", "business-admin")
	viper.SetDefault("cache.ttl", "5m")

	viper.SetDefault("upload.dir", "./data/uploads")
	viper.SetDefault("upload.public_path", "/uploads")
	viper.SetDefault("upload.max_size_bytes", 5<<20)
	viper.SetDefault("upload.allowed_extensions", []string{".jpg", ".jpeg", ".png", ".gif", ".webp"})

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("rate_limit.burst", 20)
	viper.SetDefault("rate_limit.max_keys", 10000)
	viper.SetDefault("rate_limit.key_ttl", "10m")

	viper.SetDefault("admin.base_url", "http://localhost:8080")
	viper.SetDefault("admin.timeout", "15s")
	viper.SetDefault("admin.retry_count", 2)
}

// splitList accepts either a YAML list or a comma separated env value.
func splitList(raw any) []string {
	var parts []string
	switch v := raw.(type) {
	case []string:
		parts = v
	case []any:
		for _, p := range v {
			parts = append(parts, fmt.Sprint(p))
		}
	case string:
		parts = strings.Split(v, ",")
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}
