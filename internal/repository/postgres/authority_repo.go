package postgres

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"

	"github.com/and161185/pay2alpha/internal/model"
)

// AuthorityRepo implements AuthorityRepository using an append-only table.
type AuthorityRepo struct{ q Querier }

// NewAuthorityRepo constructs a delegated authority repository.
func NewAuthorityRepo(q Querier) *AuthorityRepo { return &AuthorityRepo{q: q} }

// Current returns the newest authority or the zero address.
func (r *AuthorityRepo) Current(ctx context.Context) (common.Address, error) {
	const q = `SELECT authority FROM delegated_authority ORDER BY id DESC LIMIT 1`
	var a string
	if err := r.q.QueryRow(ctx, q).Scan(&a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.Address{}, nil
		}
		return common.Address{}, err
	}
	return common.HexToAddress(a), nil
}

// Append inserts a change and returns it with its id.
func (r *AuthorityRepo) Append(ctx context.Context, ch model.AuthorityChange) (model.AuthorityChange, error) {
	const ins = `
INSERT INTO delegated_authority (authority, changed_by, changed_at)
VALUES ($1, $2, $3) RETURNING id`
	if err := r.q.QueryRow(ctx, ins, hexOf(ch.Authority), hexOf(ch.ChangedBy), ch.ChangedAt).Scan(&ch.ID); err != nil {
		return model.AuthorityChange{}, err
	}
	return ch, nil
}

// History returns the audit trail, oldest first.
func (r *AuthorityRepo) History(ctx context.Context) ([]model.AuthorityChange, error) {
	const q = `SELECT id, authority, changed_by, changed_at FROM delegated_authority ORDER BY id ASC`
	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.AuthorityChange
	for rows.Next() {
		var (
			ch       model.AuthorityChange
			auth, by string
		)
		if err := rows.Scan(&ch.ID, &auth, &by, &ch.ChangedAt); err != nil {
			return nil, err
		}
		ch.Authority = common.HexToAddress(auth)
		ch.ChangedBy = common.HexToAddress(by)
		out = append(out, ch)
	}
	return out, rows.Err()
}
