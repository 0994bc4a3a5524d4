package service

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/and161185/pay2alpha/internal/errs"
	"github.com/and161185/pay2alpha/internal/model"
	"github.com/and161185/pay2alpha/internal/repository"
)

// Authenticator resolves a session token to its principal.
type Authenticator interface {
	Authenticate(token string) (model.Principal, error)
}

// Entitled reports whether subject may read the secret of rec.
// The zero authority means no delegate is set.
func Entitled(rec model.ChatRecord, subject, authority common.Address) bool {
	switch {
	case rec.Client == model.AnyClient:
		return true
	case subject == rec.Client, subject == rec.Expert:
		return true
	case authority != (common.Address{}) && subject == authority:
		return true
	}
	return false
}

// Gate authorizes secret retrieval.
type Gate struct {
	store repository.Store
	auth  Authenticator
}

// NewGate constructs the access gate.
func NewGate(store repository.Store, auth Authenticator) *Gate {
	return &Gate{store: store, auth: auth}
}

// Check authenticates token and returns the sealed record when the subject is entitled.
// Record and authority are read in the same View.
func (g *Gate) Check(ctx context.Context, id int64, token string) (*model.SealedRecord, model.Principal, error) {
	p, err := g.auth.Authenticate(token)
	if err != nil {
		return nil, model.Principal{}, fmt.Errorf("secret %d: %w", id, errs.ErrAuthenticationFailed)
	}
	var (
		rec       *model.SealedRecord
		authority common.Address
	)
	err = g.store.View(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		if rec, err = r.Records.GetSealed(ctx, id); err != nil {
			return err
		}
		authority, err = r.Authority.Current(ctx)
		return err
	})
	if err != nil {
		return nil, p, fmt.Errorf("secret %d: %w", id, err)
	}
	if !Entitled(rec.ChatRecord, p.Address, authority) {
		return nil, p, fmt.Errorf("secret %d: %w", id, errs.ErrAccessDenied)
	}
	return rec, p, nil
}
