package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/and161185/pay2alpha/internal/amount"
	"github.com/and161185/pay2alpha/internal/errs"
	"github.com/and161185/pay2alpha/internal/model"
	"github.com/and161185/pay2alpha/internal/repository"
)

// MaxEventsPage caps one Events call.
const MaxEventsPage = 500

// Observer is notified of events after the unit of work that produced them committed.
type Observer interface {
	Observe(ev model.Event)
}

// LedgerService sells credits against an expert's price and settles them by claim or refund.
type LedgerService interface {
	// RegisterExpert creates or updates the caller's profile.
	RegisterExpert(ctx context.Context, caller common.Address, name string, price int64) error
	// SetPrice changes the caller's price for future purchases.
	SetPrice(ctx context.Context, caller common.Address, price int64) error
	// BuyCredits pays credits*price into custody and appends a purchase record.
	BuyCredits(ctx context.Context, caller, expert common.Address, credits int64) (model.PurchaseRecord, error)
	// ClaimCredits pays the expert the share of count credits and returns the payout.
	ClaimCredits(ctx context.Context, caller common.Address, id, count int64) (int64, error)
	// RefundCredits pays the client the share of count credits and returns the payout.
	RefundCredits(ctx context.Context, caller common.Address, id, count int64) (int64, error)

	Record(ctx context.Context, id int64) (*model.PurchaseRecord, error)
	RecordCount(ctx context.Context) (int64, error)
	Expert(ctx context.Context, addr common.Address) (*model.ExpertProfile, error)
	ExpertsCount(ctx context.Context) (int64, error)
	// GetExperts returns parallel slices for [offset, offset+limit) in registration order.
	GetExperts(ctx context.Context, offset, limit int64) ([]common.Address, []model.ExpertProfile, error)
	// RecordsOf lists purchase records where party is client or expert.
	RecordsOf(ctx context.Context, party common.Address) ([]model.PurchaseRecord, error)
	// Events returns committed events after the cursor.
	Events(ctx context.Context, afterID int64, limit int) ([]model.Event, error)
}

type LedgerServiceImpl struct {
	store   repository.Store
	custody common.Address
	log     *zap.Logger
	obs     Observer
	now     func() time.Time
}

// NewLedgerService constructs LedgerService; custody is the account holding escrowed funds.
func NewLedgerService(store repository.Store, custody common.Address, log *zap.Logger, obs Observer) *LedgerServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &LedgerServiceImpl{store: store, custody: custody, log: log, obs: obs, now: time.Now}
}

// RegisterExpert upserts the profile keyed by caller.
func (s *LedgerServiceImpl) RegisterExpert(ctx context.Context, caller common.Address, name string, price int64) error {
	if price <= 0 {
		return fmt.Errorf("register expert: %w", errs.ErrInvalidAmount)
	}
	err := s.store.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		return r.Experts.Upsert(ctx, model.ExpertProfile{
			Address:        caller,
			DisplayName:    name,
			PricePerCredit: price,
			RegisteredAt:   s.now(),
		})
	})
	if err != nil {
		return err
	}
	s.log.Info("expert registered", zap.String("expert", caller.Hex()), zap.Int64("price", price))
	return nil
}

// SetPrice updates the price of a registered expert.
func (s *LedgerServiceImpl) SetPrice(ctx context.Context, caller common.Address, price int64) error {
	if price <= 0 {
		return fmt.Errorf("set price: %w", errs.ErrInvalidAmount)
	}
	err := s.store.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		return r.Experts.SetPrice(ctx, caller, price)
	})
	if errors.Is(err, errs.ErrNotFound) {
		return fmt.Errorf("set price: %w", errs.ErrNotRegistered)
	}
	if err != nil {
		return err
	}
	s.log.Info("price changed", zap.String("expert", caller.Hex()), zap.Int64("price", price))
	return nil
}

// BuyCredits snapshots the current price into the record; later price changes never touch it.
func (s *LedgerServiceImpl) BuyCredits(ctx context.Context, caller, expert common.Address, credits int64) (model.PurchaseRecord, error) {
	if credits <= 0 {
		return model.PurchaseRecord{}, fmt.Errorf("buy credits: %w", errs.ErrInvalidAmount)
	}
	var (
		rec model.PurchaseRecord
		ev  model.Event
	)
	err := s.store.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		p, err := r.Experts.Get(ctx, expert)
		if errors.Is(err, errs.ErrNotFound) {
			return fmt.Errorf("buy credits: %w", errs.ErrNotRegistered)
		}
		if err != nil {
			return err
		}
		cost, err := amount.Cost(credits, p.PricePerCredit)
		if err != nil {
			return fmt.Errorf("buy credits: %w", err)
		}
		// payment first, then the record
		if err := r.Assets.TransferFrom(ctx, s.custody, caller, s.custody, cost); err != nil {
			return fmt.Errorf("buy credits: %w", err)
		}
		now := s.now()
		rec, err = r.Purchases.Create(ctx, model.PurchaseRecord{
			Expert:          expert,
			Client:          caller,
			TotalAmountPaid: cost,
			CreditsGranted:  credits,
			CreatedAt:       now,
		})
		if err != nil {
			return err
		}
		ev, err = r.Events.Append(ctx, model.Event{
			Kind:      model.EventPurchase,
			Client:    caller,
			Expert:    expert,
			RecordID:  rec.ID,
			Credits:   credits,
			Amount:    cost,
			CreatedAt: now,
		})
		return err
	})
	if err != nil {
		return model.PurchaseRecord{}, err
	}
	s.log.Info("credits purchased",
		zap.Int64("id", rec.ID),
		zap.String("client", caller.Hex()),
		zap.String("expert", expert.Hex()),
		zap.Int64("credits", credits),
		zap.Int64("cost", rec.TotalAmountPaid),
	)
	s.publish(ev)
	return rec, nil
}

// ClaimCredits pays the expert of the record.
func (s *LedgerServiceImpl) ClaimCredits(ctx context.Context, caller common.Address, id, count int64) (int64, error) {
	return s.settle(ctx, model.EventClaim, caller, id, count)
}

// RefundCredits pays the client of the record.
func (s *LedgerServiceImpl) RefundCredits(ctx context.Context, caller common.Address, id, count int64) (int64, error) {
	return s.settle(ctx, model.EventRefund, caller, id, count)
}

// settle consumes count credits of a record and pays their share to the entitled party.
// Claim and refund share one consumed counter, so together they never exceed granted.
func (s *LedgerServiceImpl) settle(ctx context.Context, kind model.EventKind, caller common.Address, id, count int64) (int64, error) {
	op := string(kind)
	if count <= 0 {
		return 0, fmt.Errorf("%s: %w", op, errs.ErrInvalidAmount)
	}
	var (
		payout int64
		ev     model.Event
	)
	err := s.store.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		rec, err := r.Purchases.GetForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		payee := rec.Expert
		if kind == model.EventRefund {
			payee = rec.Client
		}
		if caller != payee {
			return fmt.Errorf("%s: %w", op, errs.ErrUnauthorized)
		}
		if count > rec.Remaining() {
			return fmt.Errorf("%s: %w", op, errs.ErrInsufficientBalance)
		}
		payout, err = amount.Share(rec.TotalAmountPaid, count, rec.CreditsGranted)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if err := r.Purchases.SetConsumed(ctx, id, rec.CreditsConsumed+count); err != nil {
			return err
		}
		if err := r.Assets.Transfer(ctx, s.custody, payee, payout); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		ev = model.Event{
			Kind:      kind,
			RecordID:  id,
			Credits:   count,
			Amount:    payout,
			CreatedAt: s.now(),
		}
		if kind == model.EventClaim {
			ev.Expert = payee
		} else {
			ev.Client = payee
		}
		ev, err = r.Events.Append(ctx, ev)
		return err
	})
	if err != nil {
		return 0, err
	}
	s.log.Info("credits settled",
		zap.String("kind", op),
		zap.Int64("id", id),
		zap.String("payee", caller.Hex()),
		zap.Int64("credits", count),
		zap.Int64("payout", payout),
	)
	s.publish(ev)
	return payout, nil
}

func (s *LedgerServiceImpl) publish(ev model.Event) {
	if s.obs != nil {
		s.obs.Observe(ev)
	}
}

// Record returns a purchase record.
func (s *LedgerServiceImpl) Record(ctx context.Context, id int64) (*model.PurchaseRecord, error) {
	var out *model.PurchaseRecord
	err := s.store.View(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		out, err = r.Purchases.Get(ctx, id)
		return err
	})
	return out, err
}

// RecordCount returns the number of purchase records.
func (s *LedgerServiceImpl) RecordCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.store.View(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		n, err = r.Purchases.Count(ctx)
		return err
	})
	return n, err
}

// Expert returns a profile or ErrNotRegistered.
func (s *LedgerServiceImpl) Expert(ctx context.Context, addr common.Address) (*model.ExpertProfile, error) {
	var out *model.ExpertProfile
	err := s.store.View(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		out, err = r.Experts.Get(ctx, addr)
		return err
	})
	if errors.Is(err, errs.ErrNotFound) {
		return nil, fmt.Errorf("expert %s: %w", addr.Hex(), errs.ErrNotRegistered)
	}
	return out, err
}

// ExpertsCount returns the number of registered experts.
func (s *LedgerServiceImpl) ExpertsCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.store.View(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		n, err = r.Experts.Count(ctx)
		return err
	})
	return n, err
}

// GetExperts requires offset+limit <= ExpertsCount.
func (s *LedgerServiceImpl) GetExperts(ctx context.Context, offset, limit int64) ([]common.Address, []model.ExpertProfile, error) {
	if offset < 0 || limit < 0 {
		return nil, nil, fmt.Errorf("get experts: %w", errs.ErrInvalidAmount)
	}
	var page []model.ExpertProfile
	err := s.store.View(ctx, func(ctx context.Context, r repository.Repos) error {
		n, err := r.Experts.Count(ctx)
		if err != nil {
			return err
		}
		if offset > n || limit > n-offset {
			return fmt.Errorf("get experts: range offset %d limit %d beyond %d: %w", offset, limit, n, errs.ErrInvalidAmount)
		}
		if limit == 0 {
			return nil
		}
		page, err = r.Experts.List(ctx, offset, limit)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	addrs := make([]common.Address, len(page))
	for i := range page {
		addrs[i] = page[i].Address
	}
	if page == nil {
		page = []model.ExpertProfile{}
	}
	return addrs, page, nil
}

// RecordsOf lists purchase records of a client or expert.
func (s *LedgerServiceImpl) RecordsOf(ctx context.Context, party common.Address) ([]model.PurchaseRecord, error) {
	var out []model.PurchaseRecord
	err := s.store.View(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		out, err = r.Purchases.List(ctx, model.RecordFilter{Expert: &party, Client: &party})
		return err
	})
	return out, err
}

// Events pages through the event feed.
func (s *LedgerServiceImpl) Events(ctx context.Context, afterID int64, limit int) ([]model.Event, error) {
	if limit <= 0 || limit > MaxEventsPage {
		limit = MaxEventsPage
	}
	var out []model.Event
	err := s.store.View(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		out, err = r.Events.Since(ctx, afterID, limit)
		return err
	})
	return out, err
}
