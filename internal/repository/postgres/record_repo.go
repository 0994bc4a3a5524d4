package postgres

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"

	"github.com/and161185/pay2alpha/internal/errs"
	"github.com/and161185/pay2alpha/internal/model"
)

// RecordRepo implements RecordRepository using PostgreSQL.
type RecordRepo struct{ q Querier }

// NewRecordRepo constructs a chat record repository.
func NewRecordRepo(q Querier) *RecordRepo { return &RecordRepo{q: q} }

const recordCols = `id, expert, client, content_pointer, created_at`

// NextID reserves the next record id.
func (r *RecordRepo) NextID(ctx context.Context) (int64, error) {
	return nextID(ctx, r.q, "chat_records")
}

// Create inserts a sealed record.
func (r *RecordRepo) Create(ctx context.Context, rec model.SealedRecord) error {
	const ins = `
INSERT INTO chat_records (id, expert, client, content_pointer, sealed_secret, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, ins, rec.ID, hexOf(rec.Expert), hexOf(rec.Client),
		rec.ContentPointer, rec.SealedSecret, rec.CreatedAt)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Get selects a record without its secret.
func (r *RecordRepo) Get(ctx context.Context, id int64) (*model.ChatRecord, error) {
	rec, err := scanRecord(r.q.QueryRow(ctx, `SELECT `+recordCols+` FROM chat_records WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// GetSealed selects a record with its sealed secret.
func (r *RecordRepo) GetSealed(ctx context.Context, id int64) (*model.SealedRecord, error) {
	const q = `SELECT ` + recordCols + `, sealed_secret FROM chat_records WHERE id=$1`
	var (
		out            model.SealedRecord
		expert, client string
	)
	err := r.q.QueryRow(ctx, q, id).Scan(&out.ID, &expert, &client, &out.ContentPointer, &out.CreatedAt, &out.SealedSecret)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	out.Expert = common.HexToAddress(expert)
	out.Client = common.HexToAddress(client)
	return &out, nil
}

// Count returns the number of chat records.
func (r *RecordRepo) Count(ctx context.Context) (int64, error) { return count(ctx, r.q, "chat_records") }

// List returns records for an expert and/or client ordered by id.
func (r *RecordRepo) List(ctx context.Context, f model.RecordFilter) ([]model.ChatRecord, error) {
	qb := psql.Select(recordCols).From("chat_records").OrderBy("id ASC")
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

	var out []model.ChatRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanRecord(row pgx.Row) (model.ChatRecord, error) {
	var (
		rec            model.ChatRecord
		expert, client string
	)
	if err := row.Scan(&rec.ID, &expert, &client, &rec.ContentPointer, &rec.CreatedAt); err != nil {
		return model.ChatRecord{}, err
	}
	rec.Expert = common.HexToAddress(expert)
	rec.Client = common.HexToAddress(client)
	return rec, nil
}
