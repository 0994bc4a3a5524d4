package service

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/and161185/pay2alpha/internal/errs"
	"github.com/and161185/pay2alpha/internal/repository"
)

// AssetService exposes the payment asset: allowances for the ledger and a faucet.
type AssetService interface {
	// Approve sets how much the ledger custody may pull from owner.
	Approve(ctx context.Context, owner common.Address, amount int64) error
	// Mint credits funds to an account; administrator only.
	Mint(ctx context.Context, caller, to common.Address, amount int64) error
	Balance(ctx context.Context, addr common.Address) (int64, error)
	Allowance(ctx context.Context, owner common.Address) (int64, error)
}

type AssetServiceImpl struct {
	store   repository.Store
	custody common.Address
	admin   common.Address
	log     *zap.Logger
}

// NewAssetService constructs AssetService.
func NewAssetService(store repository.Store, custody, admin common.Address, log *zap.Logger) *AssetServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &AssetServiceImpl{store: store, custody: custody, admin: admin, log: log}
}

// Approve replaces the custody allowance.
func (s *AssetServiceImpl) Approve(ctx context.Context, owner common.Address, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("approve: %w", errs.ErrInvalidAmount)
	}
	err := s.store.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		return r.Assets.Approve(ctx, owner, s.custody, amount)
	})
	if err != nil {
		return err
	}
	s.log.Info("allowance set", zap.String("owner", owner.Hex()), zap.Int64("amount", amount))
	return nil
}

// Mint is the faucet.
func (s *AssetServiceImpl) Mint(ctx context.Context, caller, to common.Address, amount int64) error {
	if caller != s.admin || s.admin == (common.Address{}) {
		return fmt.Errorf("mint: %w", errs.ErrUnauthorized)
	}
	if amount <= 0 {
		return fmt.Errorf("mint: %w", errs.ErrInvalidAmount)
	}
	err := s.store.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		return r.Assets.Mint(ctx, to, amount)
	})
	if err != nil {
		return err
	}
	s.log.Info("minted", zap.String("to", to.Hex()), zap.Int64("amount", amount))
	return nil
}

// Balance returns an account balance.
func (s *AssetServiceImpl) Balance(ctx context.Context, addr common.Address) (int64, error) {
	var b int64
	err := s.store.View(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		b, err = r.Assets.Balance(ctx, addr)
		return err
	})
	return b, err
}

// Allowance returns the custody allowance over owner's funds.
func (s *AssetServiceImpl) Allowance(ctx context.Context, owner common.Address) (int64, error) {
	var a int64
	err := s.store.View(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		a, err = r.Assets.Allowance(ctx, owner, s.custody)
		return err
	})
	return a, err
}
