package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

const (
	testJWTKey = "this-is-a-very-long-jwt-key-for-testing-32+"
	testAdmin  = "0x00000000000000000000000000000000000000A1"
)

func requiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("AUTH_JWT_KEY", testJWTKey)
	t.Setenv("SEAL_SECRET", "seal-secret")
	t.Setenv("SEAL_SALT", "seal-salt-123")
	t.Setenv("DATABASE_STORAGE", StorageMemory)
	t.Setenv("SERVER_DEV", "true")
}

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_EnvDefaults(t *testing.T) {
	requiredEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8443", cfg.Server.Addr)
	require.Equal(t, 5*time.Minute, cfg.Auth.TokenTTL)
	require.Equal(t, "localhost", cfg.Auth.Domain)
	require.Equal(t, int64(23295), cfg.Auth.ChainID)
	require.Equal(t, 5, cfg.Auth.LimiterMaxFails)
	require.Equal(t, common.Address{}, cfg.AdminAddress())
	require.Equal(t, common.HexToAddress("0x000000000000000000000000000000000000C0DE"), cfg.CustodyAddress())
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	requiredEnv(t)
	t.Setenv("AUTH_CHAIN_ID", "84532")

	path := writeYAML(t, `
server:
  addr: "127.0.0.1:9443"
  dev: true
database:
  storage: memory
auth:
  jwt_key: "`+testJWTKey+`"
  domain: "pay2alpha.example"
  chain_id: 1
  token_ttl: "1h"
ledger:
  admin: "`+testAdmin+`"
seal:
  secret: "s"
  salt: "salt-salt"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9443", cfg.Server.Addr)
	require.Equal(t, "pay2alpha.example", cfg.Auth.Domain)
	require.Equal(t, int64(84532), cfg.Auth.ChainID)
	require.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, common.HexToAddress(testAdmin), cfg.AdminAddress())
}

func TestLoad_MissingFile(t *testing.T) {
	requiredEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			Server:   ServerConfig{Dev: true},
			Database: DatabaseConfig{Storage: StoragePostgres, DSN: "postgres://u:p@localhost/p2a"},
			Auth: AuthConfig{
				JWTKey: testJWTKey, TokenTTL: time.Minute, Domain: "localhost",
				ChainID: 1, MaxAge: time.Minute, LimiterMaxFails: 3,
			},
			Ledger: LedgerConfig{Admin: testAdmin, Custody: "0x000000000000000000000000000000000000C0DE"},
			Seal:   SealConfig{Secret: "s", Salt: "salt-salt"},
		}
	}
	base := valid()
	require.NoError(t, base.Validate())

	cases := map[string]func(c *Config){
		"unknown storage":  func(c *Config) { c.Database.Storage = "sqlite" },
		"postgres no dsn":  func(c *Config) { c.Database.DSN = "" },
		"short jwt key":    func(c *Config) { c.Auth.JWTKey = "short" },
		"zero chain":       func(c *Config) { c.Auth.ChainID = 0 },
		"bad admin":        func(c *Config) { c.Ledger.Admin = "nope" },
		"custody is admin": func(c *Config) { c.Ledger.Custody = testAdmin },
		"custody is admin in lowercase": func(c *Config) {
			c.Ledger.Custody = strings.ToLower(testAdmin)
		},
		"short salt":       func(c *Config) { c.Seal.Salt = "x" },
		"half tls":         func(c *Config) { c.Server.TLSCert = "cert.pem" },
		"no tls in prod":   func(c *Config) { c.Server.Dev = false },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := valid()
			mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}
