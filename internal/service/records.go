package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/and161185/pay2alpha/internal/errs"
	"github.com/and161185/pay2alpha/internal/model"
	"github.com/and161185/pay2alpha/internal/repository"
)

// MaxSecretLen bounds a stored secret.
const MaxSecretLen = 4096

// Sealer encrypts secrets bound to their record.
type Sealer interface {
	Seal(id int64, expert, client common.Address, secret []byte) ([]byte, error)
	Open(id int64, expert, client common.Address, blob []byte) ([]byte, error)
}

// RecordService stores confidential chat records and releases their secrets through the gate.
type RecordService interface {
	// CreateRecord appends a record authored by caller, who must be the expert.
	CreateRecord(ctx context.Context, caller, expert, client common.Address, pointer string, secret []byte) (model.ChatRecord, error)
	Record(ctx context.Context, id int64) (*model.ChatRecord, error)
	RecordCount(ctx context.Context) (int64, error)
	Records(ctx context.Context, f model.RecordFilter) ([]model.ChatRecord, error)
	// GetSecretKey returns the secret to an entitled token holder.
	GetSecretKey(ctx context.Context, id int64, token string) ([]byte, error)
	// SetRoflApp replaces the delegated authority; administrator only.
	SetRoflApp(ctx context.Context, caller, authority common.Address) error
	RoflApp(ctx context.Context) (common.Address, error)
	RoflAppHistory(ctx context.Context) ([]model.AuthorityChange, error)
}

type RecordServiceImpl struct {
	store  repository.Store
	gate   *Gate
	sealer Sealer
	admin  common.Address
	log    *zap.Logger
	obs    Observer
	now    func() time.Time
}

// NewRecordService constructs RecordService.
func NewRecordService(store repository.Store, gate *Gate, sealer Sealer, admin common.Address, log *zap.Logger, obs Observer) *RecordServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecordServiceImpl{store: store, gate: gate, sealer: sealer, admin: admin, log: log, obs: obs, now: time.Now}
}

// CreateRecord seals the secret under the reserved id and stores the record.
func (s *RecordServiceImpl) CreateRecord(ctx context.Context, caller, expert, client common.Address, pointer string, secret []byte) (model.ChatRecord, error) {
	if caller != expert {
		return model.ChatRecord{}, fmt.Errorf("create record: %w", errs.ErrUnauthorized)
	}
	if pointer == "" || len(secret) == 0 || len(secret) > MaxSecretLen {
		return model.ChatRecord{}, fmt.Errorf("create record: %w", errs.ErrInvalidArgument)
	}
	var (
		rec model.ChatRecord
		ev  model.Event
	)
	err := s.store.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		id, err := r.Records.NextID(ctx)
		if err != nil {
			return err
		}
		blob, err := s.sealer.Seal(id, expert, client, secret)
		if err != nil {
			return err
		}
		rec = model.ChatRecord{ID: id, Expert: expert, Client: client, ContentPointer: pointer, CreatedAt: s.now()}
		if err := r.Records.Create(ctx, model.SealedRecord{ChatRecord: rec, SealedSecret: blob}); err != nil {
			return err
		}
		ev, err = r.Events.Append(ctx, model.Event{
			Kind:      model.EventRecordCreated,
			Client:    client,
			Expert:    expert,
			RecordID:  id,
			CreatedAt: rec.CreatedAt,
		})
		return err
	})
	if err != nil {
		return model.ChatRecord{}, err
	}
	s.log.Info("record created",
		zap.Int64("id", rec.ID),
		zap.String("expert", expert.Hex()),
		zap.String("client", client.Hex()),
	)
	if s.obs != nil {
		s.obs.Observe(ev)
	}
	return rec, nil
}

// GetSecretKey opens the secret of a record the token holder is entitled to.
func (s *RecordServiceImpl) GetSecretKey(ctx context.Context, id int64, token string) ([]byte, error) {
	rec, _, err := s.gate.Check(ctx, id, token)
	if err != nil {
		return nil, err
	}
	secret, err := s.sealer.Open(rec.ID, rec.Expert, rec.Client, rec.SealedSecret)
	if err != nil {
		s.log.Error("sealed secret unreadable", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("secret %d: %w", id, err)
	}
	return secret, nil
}

// Record returns a record without its secret.
func (s *RecordServiceImpl) Record(ctx context.Context, id int64) (*model.ChatRecord, error) {
	var out *model.ChatRecord
	err := s.store.View(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		out, err = r.Records.Get(ctx, id)
		return err
	})
	return out, err
}

// RecordCount returns the number of records.
func (s *RecordServiceImpl) RecordCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.store.View(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		n, err = r.Records.Count(ctx)
		return err
	})
	return n, err
}

// Records lists records by expert and/or client.
func (s *RecordServiceImpl) Records(ctx context.Context, f model.RecordFilter) ([]model.ChatRecord, error) {
	var out []model.ChatRecord
	err := s.store.View(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		out, err = r.Records.List(ctx, f)
		return err
	})
	return out, err
}

// SetRoflApp appends an authority change; the zero address clears the delegate.
func (s *RecordServiceImpl) SetRoflApp(ctx context.Context, caller, authority common.Address) error {
	if caller != s.admin || s.admin == (common.Address{}) {
		return fmt.Errorf("set rofl app: %w", errs.ErrUnauthorized)
	}
	err := s.store.Atomic(ctx, func(ctx context.Context, r repository.Repos) error {
		_, err := r.Authority.Append(ctx, model.AuthorityChange{
			Authority: authority,
			ChangedBy: caller,
			ChangedAt: s.now(),
		})
		return err
	})
	if err != nil {
		return err
	}
	s.log.Info("delegated authority changed", zap.String("authority", authority.Hex()), zap.String("by", caller.Hex()))
	return nil
}

// RoflApp returns the current delegated authority.
func (s *RecordServiceImpl) RoflApp(ctx context.Context) (common.Address, error) {
	var a common.Address
	err := s.store.View(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		a, err = r.Authority.Current(ctx)
		return err
	})
	return a, err
}

// RoflAppHistory returns the authority audit trail.
func (s *RecordServiceImpl) RoflAppHistory(ctx context.Context) ([]model.AuthorityChange, error) {
	var out []model.AuthorityChange
	err := s.store.View(ctx, func(ctx context.Context, r repository.Repos) error {
		var err error
		out, err = r.Authority.History(ctx)
		return err
	})
	return out, err
}
