package postgres

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/and161185/pay2alpha/internal/errs"
)

// NonceRepo implements NonceRepository using PostgreSQL.
type NonceRepo struct{ q Querier }

// NewNonceRepo constructs a nonce repository.
func NewNonceRepo(q Querier) *NonceRepo { return &NonceRepo{q: q} }

// Consume inserts the nonce unless it is already present.
func (r *NonceRepo) Consume(ctx context.Context, nonce string, addr common.Address, expiresAt time.Time) error {
	const q = `
INSERT INTO login_nonces (nonce, address, expires_at) VALUES ($1, $2, $3)
ON CONFLICT (nonce) DO NOTHING`
	tag, err := r.q.Exec(ctx, q, nonce, hexOf(addr), expiresAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrAlreadyExists
	}
	return nil
}

// Purge deletes expired nonces.
func (r *NonceRepo) Purge(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM login_nonces WHERE expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
