// Package service contains the application services of the ledger, the record store
// and wallet sign-in.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/and161185/pay2alpha/internal/errs"
	"github.com/and161185/pay2alpha/internal/identity"
	"github.com/and161185/pay2alpha/internal/limiter"
	"github.com/and161185/pay2alpha/internal/model"
	"github.com/and161185/pay2alpha/internal/repository"
)

// tokenLeeway tolerates clock drift between issuer and verifier.
const tokenLeeway = 30 * time.Second

// AuthService signs callers in with a wallet signature and verifies session tokens.
type AuthService interface {
	// Login verifies a signed sign-in message and issues a session token for its address.
	Login(ctx context.Context, message, signature, ip string) (model.Tokens, common.Address, error)
	// Authenticate resolves a session token to the address it was issued for.
	Authenticate(token string) (model.Principal, error)
	// PurgeNonces drops consumed nonces whose messages can no longer be fresh.
	PurgeNonces(ctx context.Context) (int64, error)
}

// AuthConfig holds the sign-in policy.
type AuthConfig struct {
	SignKey   []byte
	TokenTTL  time.Duration
	Domain    string
	ChainID   int64
	MaxAge    time.Duration // oldest acceptable Issued At
	ClockSkew time.Duration // tolerated Issued At in the future
}

type AuthServiceImpl struct {
	store repository.Store
	lim   limiter.Limiter
	cfg   AuthConfig
	log   *zap.Logger
	now   func() time.Time
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(store repository.Store, lim limiter.Limiter, cfg AuthConfig, log *zap.Logger) *AuthServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthServiceImpl{store: store, lim: lim, cfg: cfg, log: log, now: time.Now}
}

// unparsedSubject keys the limiter for messages whose address could not be read.
const unparsedSubject = "malformed"

// Login applies rate limiting by (claimed address, ip) and authenticates the message.
func (s *AuthServiceImpl) Login(ctx context.Context, message, signature, ip string) (model.Tokens, common.Address, error) {
	ipHash := limiter.HashIP(ip)

	msg, perr := identity.ParseMessage(message)
	subject := unparsedSubject
	if perr == nil {
		subject = msg.Address.Hex()
	}

	allowed, _, err := s.lim.Allow(ctx, subject, ipHash)
	if err != nil {
		return model.Tokens{}, common.Address{}, err
	}
	if !allowed {
		return model.Tokens{}, common.Address{}, errs.ErrRateLimited
	}

	if err := s.verify(ctx, message, msg, perr, signature); err != nil {
		if blocked, _, ferr := s.lim.Failure(ctx, subject, ipHash); ferr == nil && blocked {
			s.log.Warn("login blocked", zap.String("subject", subject))
		}
		s.log.Info("login rejected", zap.String("subject", subject), zap.Error(err))
		return model.Tokens{}, common.Address{}, fmt.Errorf("login: %w", errs.ErrAuthenticationFailed)
	}

	// best-effort reset
	_ = s.lim.Success(ctx, subject, ipHash)

	tok, err := s.issue(msg.Address)
	if err != nil {
		return model.Tokens{}, common.Address{}, err
	}
	s.log.Info("login", zap.String("address", msg.Address.Hex()))
	return tok, msg.Address, nil
}

// verify runs the message checks in order; the nonce is burnt only for an otherwise valid message.
// The signature is recovered over the text as received, not a re-rendering of msg.
func (s *AuthServiceImpl) verify(ctx context.Context, text string, msg identity.Message, perr error, signature string) error {
	if perr != nil {
		return perr
	}
	if msg.Domain != s.cfg.Domain {
		return fmt.Errorf("domain %q", msg.Domain)
	}
	if msg.ChainID != s.cfg.ChainID {
		return fmt.Errorf("chain id %d", msg.ChainID)
	}
	if msg.Version != identity.Version {
		return fmt.Errorf("version %q", msg.Version)
	}

	now := s.now()
	if msg.IssuedAt.After(now.Add(s.cfg.ClockSkew)) {
		return errors.New("issued in the future")
	}
	if now.Sub(msg.IssuedAt) > s.cfg.MaxAge {
		return errors.New("message expired")
	}

	sig, err := identity.DecodeSignature(signature)
	if err != nil {
		return err
	}
	signer, err := identity.RecoverAddress(text, sig)
	if err != nil {
		return err
	}
	if signer != msg.Address {
		return errors.New("signer mismatch")
	}

	expires := msg.IssuedAt.Add(s.cfg.MaxAge + s.cfg.ClockSkew)
	return s.store.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		return r.Nonces.Consume(ctx, msg.Nonce, msg.Address, expires)
	})
}

// issue creates a signed HS256 JWT for the given address.
func (s *AuthServiceImpl) issue(addr common.Address) (model.Tokens, error) {
	jti, err := uuid.NewV4()
	if err != nil {
		return model.Tokens{}, err
	}
	now := s.now()
	exp := now.Add(s.cfg.TokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   addr.Hex(),
		Issuer:    s.cfg.Domain,
		ID:        jti.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.SignKey)
	if err != nil {
		return model.Tokens{}, err
	}
	return model.Tokens{AccessToken: signed, ExpiresAt: exp}, nil
}

// Authenticate verifies HS256, issuer and time claims; every defect is ErrAuthenticationFailed.
func (s *AuthServiceImpl) Authenticate(token string) (model.Principal, error) {
	if token == "" {
		return model.Principal{}, errs.ErrAuthenticationFailed
	}
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.cfg.SignKey, nil
	},
		jwt.WithLeeway(tokenLeeway),
		jwt.WithIssuer(s.cfg.Domain),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return model.Principal{}, errs.ErrAuthenticationFailed
	}
	if !common.IsHexAddress(claims.Subject) {
		return model.Principal{}, errs.ErrAuthenticationFailed
	}

	p := model.Principal{
		Address:   common.HexToAddress(claims.Subject),
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		p.IssuedAt = claims.IssuedAt.Time
	}
	return p, nil
}

// PurgeNonces deletes expired nonces.
func (s *AuthServiceImpl) PurgeNonces(ctx context.Context) (int64, error) {
	var n int64
	err := s.store.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		n, err = r.Nonces.Purge(ctx, s.now())
		return err
	})
	return n, err
}
