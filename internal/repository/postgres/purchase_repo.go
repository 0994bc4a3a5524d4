package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"

	"github.com/and161185/pay2alpha/internal/errs"
	"github.com/and161185/pay2alpha/internal/model"
)

// PurchaseRepo implements PurchaseRepository using PostgreSQL.
type PurchaseRepo struct{ q Querier }

// NewPurchaseRepo constructs a purchase repository.
func NewPurchaseRepo(q Querier) *PurchaseRepo { return &PurchaseRepo{q: q} }

const purchaseCols = `id, expert, client, total_amount_paid, credits_granted, credits_consumed, created_at`

// Create assigns the next id and inserts the record.
func (r *PurchaseRepo) Create(ctx context.Context, rec model.PurchaseRecord) (model.PurchaseRecord, error) {
	id, err := nextID(ctx, r.q, "purchase_records")
	if err != nil {
		return model.PurchaseRecord{}, err
	}
	const ins = `
INSERT INTO purchase_records (` + purchaseCols + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(ctx, ins, id, hexOf(rec.Expert), hexOf(rec.Client),
		rec.TotalAmountPaid, rec.CreditsGranted, rec.CreditsConsumed, rec.CreatedAt)
	if isUniqueViolation(err) {
		return model.PurchaseRecord{}, errs.ErrAlreadyExists
	}
	if err != nil {
		return model.PurchaseRecord{}, err
	}
	rec.ID = id
	return rec, nil
}

// Get selects a record by id.
func (r *PurchaseRepo) Get(ctx context.Context, id int64) (*model.PurchaseRecord, error) {
	return r.get(ctx, `SELECT `+purchaseCols+` FROM purchase_records WHERE id=$1`, id)
}

// GetForUpdate selects and row-locks a record by id.
func (r *PurchaseRepo) GetForUpdate(ctx context.Context, id int64) (*model.PurchaseRecord, error) {
	return r.get(ctx, `SELECT `+purchaseCols+` FROM purchase_records WHERE id=$1 FOR UPDATE`, id)
}

func (r *PurchaseRepo) get(ctx context.Context, q string, id int64) (*model.PurchaseRecord, error) {
	rec, err := scanPurchase(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// SetConsumed stores the consumed counter; the table CHECK rejects values above granted.
func (r *PurchaseRepo) SetConsumed(ctx context.Context, id, consumed int64) error {
	const upd = `UPDATE purchase_records SET credits_consumed=$2 WHERE id=$1`
	tag, err := r.q.Exec(ctx, upd, id, consumed)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Count returns the number of purchase records.
func (r *PurchaseRepo) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.q, "purchase_records")
}

// List returns records for a client and/or expert ordered by id.
func (r *PurchaseRepo) List(ctx context.Context, f model.RecordFilter) ([]model.PurchaseRecord, error) {
	qb := psql.Select(purchaseCols).From("purchase_records").OrderBy("id ASC")
	if w := partyFilter(f); w != nil {
		qb = qb.Where(w)
	}
	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PurchaseRecord
	for rows.Next() {
		rec, err := scanPurchase(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanPurchase(row pgx.Row) (model.PurchaseRecord, error) {
	var (
		rec            model.PurchaseRecord
		expert, client string
	)
	err := row.Scan(&rec.ID, &expert, &client, &rec.TotalAmountPaid,
		&rec.CreditsGranted, &rec.CreditsConsumed, &rec.CreatedAt)
	if err != nil {
		return model.PurchaseRecord{}, err
	}
	rec.Expert = common.HexToAddress(expert)
	rec.Client = common.HexToAddress(client)
	return rec, nil
}

// partyFilter matches expert OR client when both are given.
func partyFilter(f model.RecordFilter) sq.Sqlizer {
	var or sq.Or
	if f.Expert != nil {
		or = append(or, sq.Eq{"expert": hexOf(*f.Expert)})
	}
	if f.Client != nil {
		or = append(or, sq.Eq{"client": hexOf(*f.Client)})
	}
	if len(or) == 0 {
		return nil
	}
	return or
}
