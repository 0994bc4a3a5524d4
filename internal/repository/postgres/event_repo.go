package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ethereum/go-ethereum/common"

	"github.com/and161185/pay2alpha/internal/model"
)

// EventRepo implements EventRepository using PostgreSQL.
type EventRepo struct{ q Querier }

// NewEventRepo constructs an event repository.
func NewEventRepo(q Querier) *EventRepo { return &EventRepo{q: q} }

// Append inserts an event and returns it with its id.
func (r *EventRepo) Append(ctx context.Context, ev model.Event) (model.Event, error) {
	const ins = `
INSERT INTO ledger_events (kind, client, expert, record_id, credits, amount, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := r.q.QueryRow(ctx, ins, string(ev.Kind), hexOf(ev.Client), hexOf(ev.Expert),
		ev.RecordID, ev.Credits, ev.Amount, ev.CreatedAt).Scan(&ev.ID)
	if err != nil {
		return model.Event{}, err
	}
	return ev, nil
}

// Since returns events after the cursor.
func (r *EventRepo) Since(ctx context.Context, afterID int64, limit int) ([]model.Event, error) {
	sql, args, err := psql.
		Select("id", "kind", "client", "expert", "record_id", "credits", "amount", "created_at").
		From("ledger_events").
		Where(sq.Gt{"id": afterID}).
		OrderBy("id ASC").
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

	var out []model.Event
	for rows.Next() {
		var (
			ev             model.Event
			kind           string
			client, expert string
		)
		if err := rows.Scan(&ev.ID, &kind, &client, &expert, &ev.RecordID, &ev.Credits, &ev.Amount, &ev.CreatedAt); err != nil {
			return nil, err
		}
		ev.Kind = model.EventKind(kind)
		ev.Client = common.HexToAddress(client)
		ev.Expert = common.HexToAddress(expert)
		out = append(out, ev)
	}
	return out, rows.Err()
}
