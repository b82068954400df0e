package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	STP       STPConfig       `mapstructure:"stp"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// STPConfig identifies the company towards STP and locates its signing key.
type STPConfig struct {
	Empresa              string        `mapstructure:"empresa"`
	BankCode             string        `mapstructure:"bank_code"`        // operating institution, 5 digits
	CuentaOrdenante      string        `mapstructure:"cuenta_ordenante"` // default originator CLABE, optional
	BaseURL              string        `mapstructure:"base_url"`
	PrivateKeyPath       string        `mapstructure:"private_key_path"`
	PrivateKeyPassphrase string        `mapstructure:"private_key_passphrase"`
	Timeout              time.Duration `mapstructure:"timeout"`
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	Password       string        `mapstructure:"password"`
	DB             int           `mapstructure:"db"`
	TrackingKeyTTL time.Duration `mapstructure:"tracking_key_ttl"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// RateLimitConfig caps requests per operator and endpoint group within Window.
// Zero limits fall back to the built-in defaults.
type RateLimitConfig struct {
	Window     time.Duration `mapstructure:"window"`
	Firma      int64         `mapstructure:"firma"`
	Submit     int64         `mapstructure:"submit"`
	Clasificar int64         `mapstructure:"clasificar"`
	Lookup     int64         `mapstructure:"lookup"`
}

// Limits returns the configured limit per endpoint group.
func (r RateLimitConfig) Limits() map[string]int64 {
	return map[string]int64{
		"firma":      r.Firma,
		"submit":     r.Submit,
		"clasificar": r.Clasificar,
		"lookup":     r.Lookup,
	}
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: STP_.
// Nested keys use underscore: STP_STP_EMPRESA, STP_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("stp.empresa", "")
	v.SetDefault("stp.bank_code", "90646")
	v.SetDefault("stp.cuenta_ordenante", "")
	v.SetDefault("stp.base_url", "https://demo.stpmex.com:7024/speiws/rest")
	v.SetDefault("stp.private_key_path", "")
	v.SetDefault("stp.private_key_passphrase", "")
	v.SetDefault("stp.timeout", "30s")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "stp_signer")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.tracking_key_ttl", "24h")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "12h")
	v.SetDefault("jwt.issuer", "stp-signer")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("rate_limit.window", "1m")
	v.SetDefault("rate_limit.firma", 120)
	v.SetDefault("rate_limit.submit", 60)
	v.SetDefault("rate_limit.clasificar", 300)
	v.SetDefault("rate_limit.lookup", 300)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// STP_STP_EMPRESA -> stp.empresa
	v.SetEnvPrefix("STP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The file is optional when env vars carry everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings every signing entrypoint needs.
func (c *Config) Validate() error {
	if c.STP.Empresa == "" {
		return fmt.Errorf("stp.empresa is required")
	}
	if c.STP.PrivateKeyPath == "" {
		return fmt.Errorf("stp.private_key_path is required")
	}
	return nil
}
