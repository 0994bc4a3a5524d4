package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/and161185/pay2alpha/internal/errs"
	"github.com/and161185/pay2alpha/internal/model"
	"github.com/and161185/pay2alpha/internal/repository"
)

func TestRecords_ScenarioB(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	expert, client, third := newAccount(t), newAccount(t), newAccount(t)

	rec, err := e.records.CreateRecord(ctx, expert.addr, expert.addr, client.addr, "bafybeigdyrzt", []byte("S"))
	require.NoError(t, err)
	require.Equal(t, int64(0), rec.ID)

	secret, err := e.records.GetSecretKey(ctx, rec.ID, e.login(t, client))
	require.NoError(t, err)
	require.Equal(t, []byte("S"), secret)

	secret, err = e.records.GetSecretKey(ctx, rec.ID, e.login(t, third))
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	require.Nil(t, secret)

	// the author can always read back
	secret, err = e.records.GetSecretKey(ctx, rec.ID, e.login(t, expert))
	require.NoError(t, err)
	require.Equal(t, []byte("S"), secret)

	require.Len(t, e.obs.events, 1)
	require.Equal(t, model.EventRecordCreated, e.obs.events[0].Kind)
}

func TestRecords_ScenarioC(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	expert, client, rofl := newAccount(t), newAccount(t), newAccount(t)

	rec, err := e.records.CreateRecord(ctx, expert.addr, expert.addr, client.addr, "ptr", []byte("alpha"))
	require.NoError(t, err)
	tok := e.login(t, rofl)

	_, err = e.records.GetSecretKey(ctx, rec.ID, tok)
	require.ErrorIs(t, err, errs.ErrAccessDenied)

	require.NoError(t, e.records.SetRoflApp(ctx, e.admin.addr, rofl.addr))
	secret, err := e.records.GetSecretKey(ctx, rec.ID, tok)
	require.NoError(t, err)
	require.Equal(t, []byte("alpha"), secret)

	require.NoError(t, e.records.SetRoflApp(ctx, e.admin.addr, common.Address{}))
	_, err = e.records.GetSecretKey(ctx, rec.ID, tok)
	require.ErrorIs(t, err, errs.ErrAccessDenied)

	cur, err := e.records.RoflApp(ctx)
	require.NoError(t, err)
	require.Equal(t, common.Address{}, cur)
	hist, err := e.records.RoflAppHistory(ctx)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	require.Equal(t, rofl.addr, hist[0].Authority)
	require.Equal(t, e.admin.addr, hist[1].ChangedBy)

	require.ErrorIs(t, e.records.SetRoflApp(ctx, rofl.addr, rofl.addr), errs.ErrUnauthorized)
}

func TestRecords_AnyClient(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	expert, anyone := newAccount(t), newAccount(t)

	rec, err := e.records.CreateRecord(ctx, expert.addr, expert.addr, model.AnyClient, "ptr", []byte("open"))
	require.NoError(t, err)
	secret, err := e.records.GetSecretKey(ctx, rec.ID, e.login(t, anyone))
	require.NoError(t, err)
	require.Equal(t, []byte("open"), secret)

	// a token is still required
	_, err = e.records.GetSecretKey(ctx, rec.ID, "")
	require.ErrorIs(t, err, errs.ErrAuthenticationFailed)
}

func TestRecords_SelfAuthorship(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	expert, impostor, client := newAccount(t), newAccount(t), newAccount(t)

	_, err := e.records.CreateRecord(ctx, impostor.addr, expert.addr, client.addr, "ptr", []byte("s"))
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	_, err = e.records.CreateRecord(ctx, expert.addr, expert.addr, client.addr, "", []byte("s"))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = e.records.CreateRecord(ctx, expert.addr, expert.addr, client.addr, "ptr", nil)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = e.records.CreateRecord(ctx, expert.addr, expert.addr, client.addr, "ptr", make([]byte, MaxSecretLen+1))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	n, err := e.records.RecordCount(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Empty(t, e.obs.events)
}

func TestRecords_ReadsAndListing(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	a, b, c := newAccount(t), newAccount(t), newAccount(t)

	for _, in := range []struct{ expert, client account }{{a, b}, {b, c}, {a, c}} {
		_, err := e.records.CreateRecord(ctx, in.expert.addr, in.expert.addr, in.client.addr, "ptr", []byte("s"))
		require.NoError(t, err)
	}
	got, err := e.records.Record(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, b.addr, got.Expert)

	_, err = e.records.Record(ctx, 3)
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = e.records.GetSecretKey(ctx, 3, e.login(t, a))
	require.ErrorIs(t, err, errs.ErrNotFound)

	list, err := e.records.Records(ctx, model.RecordFilter{Expert: &a.addr})
	require.NoError(t, err)
	require.Len(t, list, 2)
	list, err = e.records.Records(ctx, model.RecordFilter{Client: &c.addr})
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, []int64{list[0].ID, list[1].ID})
}

func TestRecords_SealedAtRest(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	ctx := context.Background()
	expert, client := newAccount(t), newAccount(t)

	_, err := e.records.CreateRecord(ctx, expert.addr, expert.addr, client.addr, "ptr", []byte("plain secret"))
	require.NoError(t, err)

	var stored []byte
	require.NoError(t, e.store.View(ctx, func(ctx context.Context, r repository.Repos) error {
		s, err := r.Records.GetSealed(ctx, 0)
		if err != nil {
			return err
		}
		stored = s.SealedSecret
		return nil
	}))
	require.NotContains(t, string(stored), "plain secret")
}

func TestEntitled(t *testing.T) {
	t.Parallel()
	expert := common.HexToAddress("0x00000000000000000000000000000000000000E1")
	client := common.HexToAddress("0x00000000000000000000000000000000000000C1")
	rofl := common.HexToAddress("0x00000000000000000000000000000000000000F1")
	other := common.HexToAddress("0x00000000000000000000000000000000000000D1")
	rec := model.ChatRecord{Expert: expert, Client: client}

	cases := []struct {
		name      string
		rec       model.ChatRecord
		subject   common.Address
		authority common.Address
		want      bool
	}{
		{"client", rec, client, common.Address{}, true},
		{"expert", rec, expert, common.Address{}, true},
		{"authority", rec, rofl, rofl, true},
		{"stranger", rec, other, common.Address{}, false},
		{"stranger with other authority", rec, other, rofl, false},
		{"zero subject never matches cleared authority", rec, common.Address{}, common.Address{}, false},
		{"any client", model.ChatRecord{Expert: expert, Client: model.AnyClient}, other, common.Address{}, true},
	}
	for _, tc := range cases {
		if got := Entitled(tc.rec, tc.subject, tc.authority); got != tc.want {
			t.Errorf("%s: Entitled = %v, want %v", tc.name, got, tc.want)
		}
	}
}

type fakeAuth struct {
	p   model.Principal
	err error
}

func (f fakeAuth) Authenticate(string) (model.Principal, error) { return f.p, f.err }

func TestGate_AuthFailureHidesRecord(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	g := NewGate(e.store, fakeAuth{err: errors.New("expired")})

	// unknown id still reports authentication first
	_, _, err := g.Check(context.Background(), 99, "tok")
	require.ErrorIs(t, err, errs.ErrAuthenticationFailed)
}
