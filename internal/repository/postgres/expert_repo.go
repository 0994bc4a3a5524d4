package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"

	"github.com/and161185/pay2alpha/internal/errs"
	"github.com/and161185/pay2alpha/internal/model"
)

// ExpertRepo implements ExpertRepository using PostgreSQL.
type ExpertRepo struct{ q Querier }

// NewExpertRepo constructs an expert repository.
func NewExpertRepo(q Querier) *ExpertRepo { return &ExpertRepo{q: q} }

// Upsert inserts the profile or replaces name and price of an existing one.
func (r *ExpertRepo) Upsert(ctx context.Context, p model.ExpertProfile) error {
	const q = `
INSERT INTO experts (address, display_name, price_per_credit, registered_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (address) DO UPDATE
SET display_name=EXCLUDED.display_name, price_per_credit=EXCLUDED.price_per_credit, updated_at=now()`
	_, err := r.q.Exec(ctx, q, hexOf(p.Address), p.DisplayName, p.PricePerCredit, p.RegisteredAt)
	return err
}

// Get selects a profile by address.
func (r *ExpertRepo) Get(ctx context.Context, addr common.Address) (*model.ExpertProfile, error) {
	const q = `
SELECT address, display_name, price_per_credit, registered_at
FROM experts WHERE address=$1`
	p, err := scanExpert(r.q.QueryRow(ctx, q, hexOf(addr)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// SetPrice updates the price of an existing profile.
func (r *ExpertRepo) SetPrice(ctx context.Context, addr common.Address, price int64) error {
	const q = `UPDATE experts SET price_per_credit=$2, updated_at=now() WHERE address=$1`
	tag, err := r.q.Exec(ctx, q, hexOf(addr), price)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Count returns the number of experts.
func (r *ExpertRepo) Count(ctx context.Context) (int64, error) { return count(ctx, r.q, "experts") }

// List returns a page of profiles in registration order.
func (r *ExpertRepo) List(ctx context.Context, offset, limit int64) ([]model.ExpertProfile, error) {
	sql, args, err := psql.
		Select("address", "display_name", "price_per_credit", "registered_at").
		From("experts").
		OrderBy("seq ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ExpertProfile, 0, limit)
	for rows.Next() {
		p, err := scanExpert(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanExpert(row pgx.Row) (model.ExpertProfile, error) {
	var (
		addr string
		p    model.ExpertProfile
		ts   time.Time
	)
	if err := row.Scan(&addr, &p.DisplayName, &p.PricePerCredit, &ts); err != nil {
		return model.ExpertProfile{}, err
	}
	p.Address = common.HexToAddress(addr)
	p.RegisteredAt = ts
	return p, nil
}
