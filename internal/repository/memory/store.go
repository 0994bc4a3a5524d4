// Package memory is an in-process storage backend for development and tests.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/and161185/pay2alpha/internal/model"
	"github.com/and161185/pay2alpha/internal/repository"
)

type allowanceKey struct{ owner, spender common.Address }

type nonceEntry struct {
	addr      common.Address
	expiresAt int64 // unix nanos
}

// state is the whole dataset. Atomic works on a copy and swaps it in on success.
type state struct {
	experts     map[common.Address]model.ExpertProfile
	expertOrder []common.Address
	purchases   []model.PurchaseRecord
	records     []model.SealedRecord
	reserved    int64 // next chat record id
	authority   []model.AuthorityChange
	balances    map[common.Address]int64
	allowances  map[allowanceKey]int64
	events      []model.Event
	nonces      map[string]nonceEntry
}

func newState() *state {
	return &state{
		experts:    make(map[common.Address]model.ExpertProfile),
		balances:   make(map[common.Address]int64),
		allowances: make(map[allowanceKey]int64),
		nonces:     make(map[string]nonceEntry),
	}
}

// clone copies containers; elements are values, so a shallow copy of each is enough.
// Sealed secrets are never mutated in place.
func (s *state) clone() *state {
	return &state{
		experts:     maps.Clone(s.experts),
		expertOrder: slices.Clone(s.expertOrder),
		purchases:   slices.Clone(s.purchases),
		records:     slices.Clone(s.records),
		reserved:    s.reserved,
		authority:   slices.Clone(s.authority),
		balances:    maps.Clone(s.balances),
		allowances:  maps.Clone(s.allowances),
		events:      slices.Clone(s.events),
		nonces:      maps.Clone(s.nonces),
	}
}

// Store implements repository.Store. Writers are serialized by a single lock.
type Store struct {
	mu sync.RWMutex
	st *state
}

var _ repository.Store = (*Store)(nil)

// NewStore returns an empty store.
func NewStore() *Store { return &Store{st: newState()} }

// Atomic runs fn against a private copy and publishes it only when fn succeeds.
func (s *Store) Atomic(ctx context.Context, fn func(ctx context.Context, r repository.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.st.clone()
	if err := fn(ctx, bind(work)); err != nil {
		return err
	}
	s.st = work
	return nil
}

// View runs fn against the committed state.
func (s *Store) View(ctx context.Context, fn func(ctx context.Context, r repository.Repos) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, bind(s.st))
}

func bind(st *state) repository.Repos {
	return repository.Repos{
		Experts:   expertRepo{st},
		Purchases: purchaseRepo{st},
		Records:   recordRepo{st},
		Authority: authorityRepo{st},
		Assets:    assetRepo{st},
		Events:    eventRepo{st},
		Nonces:    nonceRepo{st},
	}
}
