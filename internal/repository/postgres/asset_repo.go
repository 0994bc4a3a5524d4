package postgres

import (
	"context"
	"errors"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"

	"github.com/and161185/pay2alpha/internal/errs"
)

// AssetRepo implements AssetRepository with conditional updates, so a debit
// never drives a balance or allowance negative.
type AssetRepo struct{ q Querier }

// NewAssetRepo constructs a custodial asset repository.
func NewAssetRepo(q Querier) *AssetRepo { return &AssetRepo{q: q} }

// Balance returns the holder's balance.
func (r *AssetRepo) Balance(ctx context.Context, holder common.Address) (int64, error) {
	var b int64
	err := r.q.QueryRow(ctx, `SELECT balance FROM asset_balances WHERE holder=$1`, hexOf(holder)).Scan(&b)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return b, err
}

// Allowance returns the amount spender may pull from owner.
func (r *AssetRepo) Allowance(ctx context.Context, owner, spender common.Address) (int64, error) {
	const q = `SELECT amount FROM asset_allowances WHERE owner=$1 AND spender=$2`
	var a int64
	err := r.q.QueryRow(ctx, q, hexOf(owner), hexOf(spender)).Scan(&a)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return a, err
}

// Approve sets (not adds to) the allowance.
func (r *AssetRepo) Approve(ctx context.Context, owner, spender common.Address, amount int64) error {
	if amount < 0 {
		return errs.ErrInvalidAmount
	}
	const q = `
INSERT INTO asset_allowances (owner, spender, amount) VALUES ($1, $2, $3)
ON CONFLICT (owner, spender) DO UPDATE SET amount=EXCLUDED.amount`
	_, err := r.q.Exec(ctx, q, hexOf(owner), hexOf(spender), amount)
	return err
}

// Mint credits new funds.
func (r *AssetRepo) Mint(ctx context.Context, holder common.Address, amount int64) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	return r.credit(ctx, holder, amount)
}

// Transfer moves amount from one holder to another.
func (r *AssetRepo) Transfer(ctx context.Context, from, to common.Address, amount int64) error {
	if amount < 0 {
		return errs.ErrInvalidAmount
	}
	if amount == 0 {
		return nil
	}
	if err := r.lockBalances(ctx, from, to); err != nil {
		return err
	}
	if err := r.debit(ctx, from, amount); err != nil {
		return err
	}
	return r.credit(ctx, to, amount)
}

// TransferFrom spends spender's allowance over from and moves the funds.
func (r *AssetRepo) TransferFrom(ctx context.Context, spender, from, to common.Address, amount int64) error {
	if amount < 0 {
		return errs.ErrInvalidAmount
	}
	if amount == 0 {
		return nil
	}
	const spend = `
UPDATE asset_allowances SET amount = amount - $3
WHERE owner=$1 AND spender=$2 AND amount >= $3`
	tag, err := r.q.Exec(ctx, spend, hexOf(from), hexOf(spender), amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrInsufficientBalance
	}
	if err := r.lockBalances(ctx, from, to); err != nil {
		return err
	}
	if err := r.debit(ctx, from, amount); err != nil {
		return err
	}
	return r.credit(ctx, to, amount)
}

// lockBalances creates missing balance rows and locks all of them in address
// order, so two transfers over the same pair always queue instead of deadlocking.
func (r *AssetRepo) lockBalances(ctx context.Context, holders ...common.Address) error {
	keys := make([]string, 0, len(holders))
	for _, h := range holders {
		keys = append(keys, hexOf(h))
	}
	slices.Sort(keys)
	keys = slices.Compact(keys)

	const ensure = `
INSERT INTO asset_balances (holder, balance) SELECT h, 0 FROM unnest($1::text[]) AS h
ON CONFLICT (holder) DO NOTHING`
	if _, err := r.q.Exec(ctx, ensure, keys); err != nil {
		return err
	}
	const lock = `SELECT holder FROM asset_balances WHERE holder = ANY($1) ORDER BY holder FOR UPDATE`
	rows, err := r.q.Query(ctx, lock, keys)
	if err != nil {
		return err
	}
	rows.Close()
	return rows.Err()
}

func (r *AssetRepo) debit(ctx context.Context, holder common.Address, amount int64) error {
	const q = `UPDATE asset_balances SET balance = balance - $2 WHERE holder=$1 AND balance >= $2`
	tag, err := r.q.Exec(ctx, q, hexOf(holder), amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrInsufficientBalance
	}
	return nil
}

func (r *AssetRepo) credit(ctx context.Context, holder common.Address, amount int64) error {
	const q = `
INSERT INTO asset_balances (holder, balance) VALUES ($1, $2)
ON CONFLICT (holder) DO UPDATE SET balance = asset_balances.balance + EXCLUDED.balance`
	_, err := r.q.Exec(ctx, q, hexOf(holder), amount)
	if isOutOfRange(err) {
		return errs.ErrInvalidAmount
	}
	return err
}
