// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/and161185/pay2alpha/internal/model"
)

// Store runs units of work against one consistent view of all repositories.
type Store interface {
	// Atomic runs fn in a single transaction. Any error aborts every write made by fn.
	Atomic(ctx context.Context, fn func(ctx context.Context, r Repos) error) error
	// View runs fn against committed state; fn must not write.
	View(ctx context.Context, fn func(ctx context.Context, r Repos) error) error
}

// Repos groups the repositories bound to one unit of work.
type Repos struct {
	Experts   ExpertRepository
	Purchases PurchaseRepository
	Records   RecordRepository
	Authority AuthorityRepository
	Assets    AssetRepository
	Events    EventRepository
	Nonces    NonceRepository
}

// ExpertRepository stores expert profiles keyed by address.
type ExpertRepository interface {
	// Upsert inserts or updates the profile; registration order is kept on update.
	Upsert(ctx context.Context, p model.ExpertProfile) error
	// Get loads a profile or returns errs.ErrNotFound.
	Get(ctx context.Context, addr common.Address) (*model.ExpertProfile, error)
	// SetPrice updates the price or returns errs.ErrNotFound.
	SetPrice(ctx context.Context, addr common.Address, price int64) error
	// Count returns the number of registered experts.
	Count(ctx context.Context) (int64, error)
	// List returns profiles in registration order.
	List(ctx context.Context, offset, limit int64) ([]model.ExpertProfile, error)
}

// PurchaseRepository stores the append-only purchase ledger.
type PurchaseRepository interface {
	// Create assigns the next dense id and inserts the record.
	Create(ctx context.Context, rec model.PurchaseRecord) (model.PurchaseRecord, error)
	// Get loads a record or returns errs.ErrNotFound.
	Get(ctx context.Context, id int64) (*model.PurchaseRecord, error)
	// GetForUpdate loads and locks a record until the unit of work ends.
	GetForUpdate(ctx context.Context, id int64) (*model.PurchaseRecord, error)
	// SetConsumed stores the new consumed counter.
	SetConsumed(ctx context.Context, id, consumed int64) error
	// Count returns the number of records.
	Count(ctx context.Context) (int64, error)
	// List returns records matching the filter (client OR expert when both are set), by id.
	List(ctx context.Context, f model.RecordFilter) ([]model.PurchaseRecord, error)
}

// RecordRepository stores confidential chat records.
type RecordRepository interface {
	// NextID reserves the next dense record id.
	NextID(ctx context.Context) (int64, error)
	// Create inserts a record with a previously reserved id.
	Create(ctx context.Context, rec model.SealedRecord) error
	// Get loads a record without its secret or returns errs.ErrNotFound.
	Get(ctx context.Context, id int64) (*model.ChatRecord, error)
	// GetSealed loads a record with its sealed secret or returns errs.ErrNotFound.
	GetSealed(ctx context.Context, id int64) (*model.SealedRecord, error)
	// Count returns the number of records.
	Count(ctx context.Context) (int64, error)
	// List returns records matching the filter (client OR expert when both are set), by id.
	List(ctx context.Context, f model.RecordFilter) ([]model.ChatRecord, error)
}

// AuthorityRepository stores the delegated authority and its audit trail.
type AuthorityRepository interface {
	// Current returns the active authority, or the zero address when none is set.
	Current(ctx context.Context) (common.Address, error)
	// Append records a change; the newest change is the current authority.
	Append(ctx context.Context, ch model.AuthorityChange) (model.AuthorityChange, error)
	// History returns all changes, oldest first.
	History(ctx context.Context) ([]model.AuthorityChange, error)
}

// AssetRepository is the custodial balance ledger of the payment asset.
type AssetRepository interface {
	// Balance returns the holder's balance (0 for unknown holders).
	Balance(ctx context.Context, holder common.Address) (int64, error)
	// Allowance returns how much spender may pull from owner.
	Allowance(ctx context.Context, owner, spender common.Address) (int64, error)
	// Approve sets the allowance of spender over owner's funds.
	Approve(ctx context.Context, owner, spender common.Address, amount int64) error
	// Mint credits new funds to holder.
	Mint(ctx context.Context, holder common.Address, amount int64) error
	// Transfer moves funds; errs.ErrInsufficientBalance when from cannot cover amount.
	Transfer(ctx context.Context, from, to common.Address, amount int64) error
	// TransferFrom spends allowance and moves funds; errs.ErrInsufficientBalance on shortfall.
	TransferFrom(ctx context.Context, spender, from, to common.Address, amount int64) error
}

// EventRepository is the append-only observer feed.
type EventRepository interface {
	// Append stores an event and fills its id.
	Append(ctx context.Context, ev model.Event) (model.Event, error)
	// Since returns up to limit events with id > afterID, oldest first.
	Since(ctx context.Context, afterID int64, limit int) ([]model.Event, error)
}

// NonceRepository tracks consumed sign-in nonces until they expire.
type NonceRepository interface {
	// Consume marks nonce as used; errs.ErrAlreadyExists if it was used before.
	Consume(ctx context.Context, nonce string, addr common.Address, expiresAt time.Time) error
	// Purge deletes nonces that expired before now.
	Purge(ctx context.Context, now time.Time) (int64, error)
}
