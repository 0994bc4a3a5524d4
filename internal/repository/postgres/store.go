package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/and161185/pay2alpha/internal/repository"
)

// Store implements repository.Store on top of a pool; each Atomic call is one transaction.
type Store struct{ db *DB }

var _ repository.Store = (*Store)(nil)

// NewStore constructs a transactional store.
func NewStore(db *DB) *Store { return &Store{db: db} }

// Atomic runs fn inside a read-committed transaction; row locks taken by the
// repositories serialize conflicting operations.
func (s *Store) Atomic(ctx context.Context, fn func(ctx context.Context, r repository.Repos) error) (err error) {
	tx, err := s.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()
	return fn(ctx, Bind(tx))
}

// View runs fn directly on the pool.
func (s *Store) View(ctx context.Context, fn func(ctx context.Context, r repository.Repos) error) error {
	return fn(ctx, Bind(s.db.Pool))
}

// Bind returns repositories that execute on q.
func Bind(q Querier) repository.Repos {
	return repository.Repos{
		Experts:   &ExpertRepo{q: q},
		Purchases: &PurchaseRepo{q: q},
		Records:   &RecordRepo{q: q},
		Authority: &AuthorityRepo{q: q},
		Assets:    &AssetRepo{q: q},
		Events:    &EventRepo{q: q},
		Nonces:    &NonceRepo{q: q},
	}
}
