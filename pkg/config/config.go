package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Abraxas-365/campus/pkg/errx"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrRegistry = errx.NewRegistry("CONFIG")

var (
	CodeReadFailed = ErrRegistry.Register("READ_FAILED", errx.TypeInternal, 0, "Failed to read configuration")
	CodeInvalid    = ErrRegistry.Register("INVALID", errx.TypeValidation, 0, "Invalid configuration")
)

// unsafeJWTSecret is only used when JWT_SECRET is unset
const unsafeJWTSecret = "super-secret-key-please-change-me-in-production"

type Config struct {
	AppName      string             `mapstructure:"app_name"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Auth         AuthConfig         `mapstructure:"auth"`
	Log          LogConfig          `mapstructure:"log"`
	Applications ApplicationsConfig `mapstructure:"applications"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	AllowOrigins    string        `mapstructure:"allow_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN renders the lib/pq connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type AuthConfig struct {
	JWTSecret      string        `mapstructure:"jwt_secret"`
	Issuer         string        `mapstructure:"issuer"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
	CookieName     string        `mapstructure:"cookie_name"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ApplicationsConfig struct {
	// StrictTransitions enables the transition table on status updates
	StrictTransitions bool `mapstructure:"strict_transitions"`
}

// envBindings keeps the variable names deployments already use
var envBindings = map[string]string{
	"server.port":       "PORT",
	"database.host":     "DB_HOST",
	"database.port":     "DB_PORT",
	"database.user":     "DB_USER",
	"database.password": "DB_PASS",
	"database.name":     "DB_NAME",
	"database.sslmode":  "DB_SSLMODE",
	"redis.addr":        "REDIS_ADDR",
	"redis.password":    "REDIS_PASS",
	"redis.enabled":     "REDIS_ENABLED",
	"auth.jwt_secret":   "JWT_SECRET",
	"log.level":         "LOG_LEVEL",
	"log.format":        "LOG_FORMAT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "WOW-CAMPUS Applications API")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allow_origins", "*")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "campus")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.cache_ttl", 10*time.Minute)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "wowcampus")
	v.SetDefault("auth.access_token_ttl", 24*time.Hour)
	v.SetDefault("auth.cookie_name", "wowcampus_token")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("applications.strict_transitions", false)
}

// Load reads configuration from configPath (or the default search paths),
// a .env file in the working directory, and the environment.
func Load(configPath string) (*Config, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, ErrRegistry.NewWithCause(CodeReadFailed, err).WithDetail("key", key)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/campus")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Only an explicitly requested file is mandatory
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, ErrRegistry.NewWithCause(CodeReadFailed, err).WithDetail("path", configPath)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ErrRegistry.NewWithCause(CodeReadFailed, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that have no usable default
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return ErrRegistry.New(CodeInvalid).WithDetail("key", "server.port")
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return ErrRegistry.New(CodeInvalid).WithDetail("key", "auth.access_token_ttl")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return ErrRegistry.New(CodeInvalid).WithDetail("key", "redis.addr")
	}
	return nil
}

// UsesUnsafeSecret reports whether the JWT secret had to fall back to the built-in default.
// It fills the default in so callers can keep running in development.
func (c *Config) UsesUnsafeSecret() bool {
	if c.Auth.JWTSecret != "" {
		return false
	}
	c.Auth.JWTSecret = unsafeJWTSecret
	return true
}

// MustLoad is Load for main packages
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
