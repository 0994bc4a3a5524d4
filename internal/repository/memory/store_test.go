package memory

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/and161185/pay2alpha/internal/errs"
	"github.com/and161185/pay2alpha/internal/model"
	"github.com/and161185/pay2alpha/internal/repository"
)

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000000A1")
	bob   = common.HexToAddress("0x00000000000000000000000000000000000000B0")
	vault = common.HexToAddress("0x000000000000000000000000000000000000C0DE")
)

func TestAtomic_RollsBackEveryWrite(t *testing.T) {
	t.Parallel()
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		return r.Assets.Mint(ctx, alice, 100)
	}))

	boom := errors.New("boom")
	err := s.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		require.NoError(t, r.Assets.Transfer(ctx, alice, vault, 40))
		_, err := r.Purchases.Create(ctx, model.PurchaseRecord{Expert: bob, Client: alice, CreditsGranted: 4})
		require.NoError(t, err)
		id, err := r.Records.NextID(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(0), id)
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.NoError(t, s.View(ctx, func(ctx context.Context, r repository.Repos) error {
		b, _ := r.Assets.Balance(ctx, alice)
		require.Equal(t, int64(100), b)
		n, _ := r.Purchases.Count(ctx)
		require.Zero(t, n)
		return nil
	}))
	require.NoError(t, s.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		id, _ := r.Records.NextID(ctx)
		require.Equal(t, int64(0), id, "aborted reservation must not leave a gap")
		return nil
	}))
}

func TestExperts_OrderAndUpsert(t *testing.T) {
	t.Parallel()
	s := NewStore()
	ctx := context.Background()
	t0 := time.Unix(1000, 0)

	require.NoError(t, s.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		require.NoError(t, r.Experts.Upsert(ctx, model.ExpertProfile{Address: alice, DisplayName: "A", PricePerCredit: 1, RegisteredAt: t0}))
		require.NoError(t, r.Experts.Upsert(ctx, model.ExpertProfile{Address: bob, DisplayName: "B", PricePerCredit: 2, RegisteredAt: t0}))
		return r.Experts.Upsert(ctx, model.ExpertProfile{Address: alice, DisplayName: "A2", PricePerCredit: 3, RegisteredAt: t0.Add(time.Hour)})
	}))

	require.NoError(t, s.View(ctx, func(ctx context.Context, r repository.Repos) error {
		n, _ := r.Experts.Count(ctx)
		require.Equal(t, int64(2), n)
		page, _ := r.Experts.List(ctx, 0, 2)
		require.Equal(t, "A2", page[0].DisplayName)
		require.Equal(t, t0, page[0].RegisteredAt)
		require.Equal(t, bob, page[1].Address)
		page, _ = r.Experts.List(ctx, 1, 1)
		require.Len(t, page, 1)
		require.Equal(t, bob, page[0].Address)
		page, _ = r.Experts.List(ctx, 5, 1)
		require.Empty(t, page)
		require.ErrorIs(t, r.Experts.SetPrice(ctx, vault, 1), errs.ErrNotFound)
		return nil
	}))
}

func TestAssets_TransferFromSpendsAllowance(t *testing.T) {
	t.Parallel()
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		require.NoError(t, r.Assets.Mint(ctx, alice, 50))
		require.ErrorIs(t, r.Assets.TransferFrom(ctx, vault, alice, vault, 10), errs.ErrInsufficientBalance)
		require.NoError(t, r.Assets.Approve(ctx, alice, vault, 80))
		require.ErrorIs(t, r.Assets.TransferFrom(ctx, vault, alice, vault, 60), errs.ErrInsufficientBalance)
		require.NoError(t, r.Assets.TransferFrom(ctx, vault, alice, vault, 30))

		a, _ := r.Assets.Allowance(ctx, alice, vault)
		require.Equal(t, int64(50), a)
		b, _ := r.Assets.Balance(ctx, vault)
		require.Equal(t, int64(30), b)
		require.ErrorIs(t, r.Assets.Mint(ctx, alice, 0), errs.ErrInvalidAmount)
		return nil
	}))
}

func TestAssets_RejectBalanceOverflow(t *testing.T) {
	t.Parallel()
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		require.NoError(t, r.Assets.Mint(ctx, alice, math.MaxInt64))
		require.NoError(t, r.Assets.Mint(ctx, bob, 1))
		require.ErrorIs(t, r.Assets.Mint(ctx, alice, 1), errs.ErrInvalidAmount)
		require.ErrorIs(t, r.Assets.Transfer(ctx, bob, alice, 1), errs.ErrInvalidAmount)
		require.NoError(t, r.Assets.Transfer(ctx, alice, alice, math.MaxInt64))

		a, _ := r.Assets.Balance(ctx, alice)
		require.Equal(t, int64(math.MaxInt64), a)
		b, _ := r.Assets.Balance(ctx, bob)
		require.Equal(t, int64(1), b)
		return nil
	}))
}

func TestPurchases_FilterAndConsumed(t *testing.T) {
	t.Parallel()
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		for _, p := range []model.PurchaseRecord{
			{Expert: bob, Client: alice, CreditsGranted: 5},
			{Expert: alice, Client: bob, CreditsGranted: 5},
			{Expert: bob, Client: vault, CreditsGranted: 5},
		} {
			if _, err := r.Purchases.Create(ctx, p); err != nil {
				return err
			}
		}
		return nil
	}))

	require.NoError(t, s.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		out, _ := r.Purchases.List(ctx, model.RecordFilter{Client: &alice, Expert: &alice})
		require.Len(t, out, 2)
		out, _ = r.Purchases.List(ctx, model.RecordFilter{Expert: &bob})
		require.Equal(t, []int64{0, 2}, []int64{out[0].ID, out[1].ID})

		require.ErrorIs(t, r.Purchases.SetConsumed(ctx, 0, 6), errs.ErrInvalidAmount)
		require.NoError(t, r.Purchases.SetConsumed(ctx, 0, 5))
		rec, _ := r.Purchases.GetForUpdate(ctx, 0)
		require.Zero(t, rec.Remaining())
		_, err := r.Purchases.Get(ctx, 3)
		require.ErrorIs(t, err, errs.ErrNotFound)
		return nil
	}))
}

func TestNonces_ConsumeAndPurge(t *testing.T) {
	t.Parallel()
	s := NewStore()
	ctx := context.Background()
	now := time.Unix(5000, 0)

	require.NoError(t, s.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		require.NoError(t, r.Nonces.Consume(ctx, "n1aaaaaa", alice, now.Add(-time.Second)))
		require.NoError(t, r.Nonces.Consume(ctx, "n2aaaaaa", alice, now.Add(time.Minute)))
		require.ErrorIs(t, r.Nonces.Consume(ctx, "n2aaaaaa", bob, now.Add(time.Minute)), errs.ErrAlreadyExists)
		n, _ := r.Nonces.Purge(ctx, now)
		require.Equal(t, int64(1), n)
		require.NoError(t, r.Nonces.Consume(ctx, "n1aaaaaa", alice, now.Add(time.Minute)))
		return nil
	}))
}

func TestAuthorityAndEvents(t *testing.T) {
	t.Parallel()
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		cur, _ := r.Authority.Current(ctx)
		require.Equal(t, common.Address{}, cur)
		_, _ = r.Authority.Append(ctx, model.AuthorityChange{Authority: bob, ChangedBy: alice})
		_, _ = r.Authority.Append(ctx, model.AuthorityChange{Authority: common.Address{}, ChangedBy: alice})
		cur, _ = r.Authority.Current(ctx)
		require.Equal(t, common.Address{}, cur)
		h, _ := r.Authority.History(ctx)
		require.Len(t, h, 2)

		for i := 0; i < 5; i++ {
			_, _ = r.Events.Append(ctx, model.Event{Kind: model.EventClaim, Credits: int64(i)})
		}
		page, _ := r.Events.Since(ctx, 2, 2)
		require.Len(t, page, 2)
		require.Equal(t, int64(3), page[0].ID)
		return nil
	}))
}

func TestAtomic_Serializes(t *testing.T) {
	t.Parallel()
	s := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
				return r.Assets.Mint(ctx, alice, 1)
			})
		}()
	}
	wg.Wait()

	require.NoError(t, s.View(ctx, func(ctx context.Context, r repository.Repos) error {
		b, _ := r.Assets.Balance(ctx, alice)
		require.Equal(t, int64(50), b)
		return nil
	}))
}
