package config

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

const (
	minJWTKeyLen   = 32
	minSealSaltLen = 8
)

// Validate checks cross-field rules; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Database.Storage {
	case StoragePostgres:
		if c.Database.DSN == "" {
			return errors.New("database.dsn is required for postgres storage")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("database.storage must be %q or %q (got %q)", StoragePostgres, StorageMemory, c.Database.Storage)
	}

	if len(c.Auth.JWTKey) < minJWTKeyLen {
		return fmt.Errorf("auth.jwt_key must be at least %d characters (got %d)", minJWTKeyLen, len(c.Auth.JWTKey))
	}
	if c.Auth.Domain == "" {
		return errors.New("auth.domain is required")
	}
	if c.Auth.ChainID <= 0 {
		return fmt.Errorf("auth.chain_id must be > 0 (got %d)", c.Auth.ChainID)
	}
	if c.Auth.TokenTTL <= 0 || c.Auth.MaxAge <= 0 {
		return errors.New("auth.token_ttl and auth.max_age must be > 0")
	}
	if c.Auth.LimiterMaxFails <= 0 {
		return fmt.Errorf("auth.limiter_max_fails must be > 0 (got %d)", c.Auth.LimiterMaxFails)
	}

	if c.Ledger.Admin != "" && !common.IsHexAddress(c.Ledger.Admin) {
		return fmt.Errorf("ledger.admin is not an address: %q", c.Ledger.Admin)
	}
	if !common.IsHexAddress(c.Ledger.Custody) {
		return fmt.Errorf("ledger.custody is not an address: %q", c.Ledger.Custody)
	}
	if common.HexToAddress(c.Ledger.Custody) == common.HexToAddress(c.Ledger.Admin) {
		return errors.New("ledger.custody must differ from ledger.admin")
	}

	if len(c.Seal.Salt) < minSealSaltLen {
		return fmt.Errorf("seal.salt must be at least %d characters", minSealSaltLen)
	}

	if (c.Server.TLSCert == "") != (c.Server.TLSKey == "") {
		return errors.New("server.tls_cert and server.tls_key must be set together")
	}
	if c.Server.TLSCert == "" && !c.Server.Dev {
		return errors.New("server.tls_cert is required unless server.dev is set")
	}
	return nil
}

// AdminAddress returns the configured administrator, or the zero address when unset.
func (c *Config) AdminAddress() common.Address {
	if c.Ledger.Admin == "" {
		return common.Address{}
	}
	return common.HexToAddress(c.Ledger.Admin)
}

// CustodyAddress returns the ledger custody account.
func (c *Config) CustodyAddress() common.Address {
	return common.HexToAddress(c.Ledger.Custody)
}
