// Package config loads server configuration from YAML and environment variables.
package config

import "time"

// Storage backends.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config is the root server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Seal     SealConfig     `yaml:"seal"`
}

// ServerConfig holds gRPC and metrics listener settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"SERVER_ADDR"             env-default:":8443"`
	MetricsAddr     string        `yaml:"metrics_addr"     env:"SERVER_METRICS_ADDR"     env-default:":9090"`
	TLSCert         string        `yaml:"tls_cert"         env:"SERVER_TLS_CERT"`
	TLSKey          string        `yaml:"tls_key"          env:"SERVER_TLS_KEY"`
	Dev             bool          `yaml:"dev"              env:"SERVER_DEV"              env-default:"false"`
	RateLimitRPS    float64       `yaml:"rate_limit_rps"   env:"SERVER_RATE_LIMIT_RPS"   env-default:"20"`
	RateLimitBurst  int           `yaml:"rate_limit_burst" env:"SERVER_RATE_LIMIT_BURST" env-default:"40"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
	PurgeInterval   time.Duration `yaml:"purge_interval"   env:"SERVER_PURGE_INTERVAL"   env-default:"10m"`
}

// DatabaseConfig selects the storage backend.
type DatabaseConfig struct {
	Storage string `yaml:"storage" env:"DATABASE_STORAGE" env-default:"postgres"`
	DSN     string `yaml:"dsn"     env:"DATABASE_DSN"`
}

// AuthConfig holds sign-in and session token settings.
type AuthConfig struct {
	JWTKey    string        `yaml:"jwt_key"    env:"AUTH_JWT_KEY"    env-required:"true"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"5m"`
	Domain    string        `yaml:"domain"     env:"AUTH_DOMAIN"     env-default:"localhost"`
	ChainID   int64         `yaml:"chain_id"   env:"AUTH_CHAIN_ID"   env-default:"23295"`
	MaxAge    time.Duration `yaml:"max_age"    env:"AUTH_MAX_AGE"    env-default:"5m"`
	ClockSkew time.Duration `yaml:"clock_skew" env:"AUTH_CLOCK_SKEW" env-default:"30s"`

	LimiterWindow   time.Duration `yaml:"limiter_window"    env:"AUTH_LIMITER_WINDOW"    env-default:"15m"`
	LimiterMaxFails int           `yaml:"limiter_max_fails" env:"AUTH_LIMITER_MAX_FAILS" env-default:"5"`
	LimiterBlock    time.Duration `yaml:"limiter_block"     env:"AUTH_LIMITER_BLOCK"     env-default:"15m"`
}

// LedgerConfig names the privileged accounts.
type LedgerConfig struct {
	Admin   string `yaml:"admin"   env:"LEDGER_ADMIN"`
	Custody string `yaml:"custody" env:"LEDGER_CUSTODY" env-default:"0x000000000000000000000000000000000000C0DE"`
}

// SealConfig holds the secret the at-rest master key is derived from.
type SealConfig struct {
	Secret string `yaml:"secret" env:"SEAL_SECRET" env-required:"true"`
	Salt   string `yaml:"salt"   env:"SEAL_SALT"   env-required:"true"`
}
