package memory

import (
	"context"
	"math"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/and161185/pay2alpha/internal/errs"
	"github.com/and161185/pay2alpha/internal/model"
)

type expertRepo struct{ st *state }

func (r expertRepo) Upsert(_ context.Context, p model.ExpertProfile) error {
	if old, ok := r.st.experts[p.Address]; ok {
		p.RegisteredAt = old.RegisteredAt
	} else {
		r.st.expertOrder = append(r.st.expertOrder, p.Address)
	}
	r.st.experts[p.Address] = p
	return nil
}

func (r expertRepo) Get(_ context.Context, addr common.Address) (*model.ExpertProfile, error) {
	p, ok := r.st.experts[addr]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &p, nil
}

func (r expertRepo) SetPrice(_ context.Context, addr common.Address, price int64) error {
	p, ok := r.st.experts[addr]
	if !ok {
		return errs.ErrNotFound
	}
	p.PricePerCredit = price
	r.st.experts[addr] = p
	return nil
}

func (r expertRepo) Count(context.Context) (int64, error) { return int64(len(r.st.expertOrder)), nil }

func (r expertRepo) List(_ context.Context, offset, limit int64) ([]model.ExpertProfile, error) {
	n := int64(len(r.st.expertOrder))
	if offset > n {
		offset = n
	}
	end := min(offset+limit, n)
	out := make([]model.ExpertProfile, 0, end-offset)
	for _, a := range r.st.expertOrder[offset:end] {
		out = append(out, r.st.experts[a])
	}
	return out, nil
}

type purchaseRepo struct{ st *state }

func (r purchaseRepo) Create(_ context.Context, rec model.PurchaseRecord) (model.PurchaseRecord, error) {
	rec.ID = int64(len(r.st.purchases))
	r.st.purchases = append(r.st.purchases, rec)
	return rec, nil
}

func (r purchaseRepo) Get(_ context.Context, id int64) (*model.PurchaseRecord, error) {
	if id < 0 || id >= int64(len(r.st.purchases)) {
		return nil, errs.ErrNotFound
	}
	rec := r.st.purchases[id]
	return &rec, nil
}

// GetForUpdate needs no extra locking: Atomic already holds the store lock.
func (r purchaseRepo) GetForUpdate(ctx context.Context, id int64) (*model.PurchaseRecord, error) {
	return r.Get(ctx, id)
}

func (r purchaseRepo) SetConsumed(_ context.Context, id, consumed int64) error {
	if id < 0 || id >= int64(len(r.st.purchases)) {
		return errs.ErrNotFound
	}
	if consumed < 0 || consumed > r.st.purchases[id].CreditsGranted {
		return errs.ErrInvalidAmount
	}
	r.st.purchases[id].CreditsConsumed = consumed
	return nil
}

func (r purchaseRepo) Count(context.Context) (int64, error) { return int64(len(r.st.purchases)), nil }

func (r purchaseRepo) List(_ context.Context, f model.RecordFilter) ([]model.PurchaseRecord, error) {
	var out []model.PurchaseRecord
	for _, rec := range r.st.purchases {
		if matchParty(f, rec.Expert, rec.Client) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// matchParty mirrors the SQL filter: expert OR client when both are set.
func matchParty(f model.RecordFilter, expert, client common.Address) bool {
	if f.Expert == nil && f.Client == nil {
		return true
	}
	return (f.Expert != nil && *f.Expert == expert) || (f.Client != nil && *f.Client == client)
}

type recordRepo struct{ st *state }

func (r recordRepo) NextID(context.Context) (int64, error) {
	id := r.st.reserved
	r.st.reserved++
	return id, nil
}

func (r recordRepo) Create(_ context.Context, rec model.SealedRecord) error {
	if rec.ID != int64(len(r.st.records)) {
		return errs.ErrAlreadyExists
	}
	rec.SealedSecret = append([]byte(nil), rec.SealedSecret...)
	r.st.records = append(r.st.records, rec)
	return nil
}

func (r recordRepo) Get(ctx context.Context, id int64) (*model.ChatRecord, error) {
	s, err := r.GetSealed(ctx, id)
	if err != nil {
		return nil, err
	}
	return &s.ChatRecord, nil
}

func (r recordRepo) GetSealed(_ context.Context, id int64) (*model.SealedRecord, error) {
	if id < 0 || id >= int64(len(r.st.records)) {
		return nil, errs.ErrNotFound
	}
	rec := r.st.records[id]
	rec.SealedSecret = append([]byte(nil), rec.SealedSecret...)
	return &rec, nil
}

func (r recordRepo) Count(context.Context) (int64, error) { return int64(len(r.st.records)), nil }

func (r recordRepo) List(_ context.Context, f model.RecordFilter) ([]model.ChatRecord, error) {
	var out []model.ChatRecord
	for _, rec := range r.st.records {
		if matchParty(f, rec.Expert, rec.Client) {
			out = append(out, rec.ChatRecord)
		}
	}
	return out, nil
}

type authorityRepo struct{ st *state }

func (r authorityRepo) Current(context.Context) (common.Address, error) {
	if len(r.st.authority) == 0 {
		return common.Address{}, nil
	}
	return r.st.authority[len(r.st.authority)-1].Authority, nil
}

func (r authorityRepo) Append(_ context.Context, ch model.AuthorityChange) (model.AuthorityChange, error) {
	ch.ID = int64(len(r.st.authority)) + 1
	r.st.authority = append(r.st.authority, ch)
	return ch, nil
}

func (r authorityRepo) History(context.Context) ([]model.AuthorityChange, error) {
	return append([]model.AuthorityChange(nil), r.st.authority...), nil
}

type assetRepo struct{ st *state }

func (r assetRepo) Balance(_ context.Context, holder common.Address) (int64, error) {
	return r.st.balances[holder], nil
}

func (r assetRepo) Allowance(_ context.Context, owner, spender common.Address) (int64, error) {
	return r.st.allowances[allowanceKey{owner, spender}], nil
}

func (r assetRepo) Approve(_ context.Context, owner, spender common.Address, amount int64) error {
	if amount < 0 {
		return errs.ErrInvalidAmount
	}
	r.st.allowances[allowanceKey{owner, spender}] = amount
	return nil
}

func (r assetRepo) Mint(_ context.Context, holder common.Address, amount int64) error {
	if amount <= 0 || r.st.balances[holder] > math.MaxInt64-amount {
		return errs.ErrInvalidAmount
	}
	r.st.balances[holder] += amount
	return nil
}

func (r assetRepo) Transfer(_ context.Context, from, to common.Address, amount int64) error {
	if amount < 0 {
		return errs.ErrInvalidAmount
	}
	if r.st.balances[from] < amount {
		return errs.ErrInsufficientBalance
	}
	if from != to && r.st.balances[to] > math.MaxInt64-amount {
		return errs.ErrInvalidAmount
	}
	r.st.balances[from] -= amount
	r.st.balances[to] += amount
	return nil
}

func (r assetRepo) TransferFrom(ctx context.Context, spender, from, to common.Address, amount int64) error {
	if amount < 0 {
		return errs.ErrInvalidAmount
	}
	k := allowanceKey{from, spender}
	if r.st.allowances[k] < amount {
		return errs.ErrInsufficientBalance
	}
	if err := r.Transfer(ctx, from, to, amount); err != nil {
		return err
	}
	r.st.allowances[k] -= amount
	return nil
}

type eventRepo struct{ st *state }

func (r eventRepo) Append(_ context.Context, ev model.Event) (model.Event, error) {
	ev.ID = int64(len(r.st.events)) + 1
	r.st.events = append(r.st.events, ev)
	return ev, nil
}

func (r eventRepo) Since(_ context.Context, afterID int64, limit int) ([]model.Event, error) {
	var out []model.Event
	for _, ev := range r.st.events {
		if ev.ID <= afterID {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, ev)
	}
	return out, nil
}

type nonceRepo struct{ st *state }

func (r nonceRepo) Consume(_ context.Context, nonce string, addr common.Address, expiresAt time.Time) error {
	if _, ok := r.st.nonces[nonce]; ok {
		return errs.ErrAlreadyExists
	}
	r.st.nonces[nonce] = nonceEntry{addr: addr, expiresAt: expiresAt.UnixNano()}
	return nil
}

func (r nonceRepo) Purge(_ context.Context, now time.Time) (int64, error) {
	var n int64
	cut := now.UnixNano()
	for k, e := range r.st.nonces {
		if e.expiresAt < cut {
			delete(r.st.nonces, k)
			n++
		}
	}
	return n, nil
}
