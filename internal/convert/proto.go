// Package convert maps domain models to the protobuf messages of the v1 API and back.
package convert

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/pay2alpha/gen/go/pay2alpha/v1"
	"github.com/and161185/pay2alpha/internal/errs"
	"github.com/and161185/pay2alpha/internal/identity"
	"github.com/and161185/pay2alpha/internal/model"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// optional renders the zero address as an empty string.
func optional(a common.Address) string {
	if a == (common.Address{}) {
		return ""
	}
	return a.Hex()
}

// --- addresses ---

// FromProtoAddress parses a required address.
func FromProtoAddress(field, s string) (common.Address, error) {
	a, err := identity.ParseAddress(s)
	if err != nil {
		return common.Address{}, fmt.Errorf("%s: %v: %w", field, err, errs.ErrInvalidArgument)
	}
	return a, nil
}

// FromProtoOptionalAddress returns nil for an empty string.
func FromProtoOptionalAddress(field, s string) (*common.Address, error) {
	if s == "" {
		return nil, nil
	}
	a, err := FromProtoAddress(field, s)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// --- experts ---

// ToProtoExpert converts a profile.
func ToProtoExpert(p model.ExpertProfile) *pb.ExpertProfile {
	return &pb.ExpertProfile{
		Address:        p.Address.Hex(),
		DisplayName:    p.DisplayName,
		PricePerCredit: p.PricePerCredit,
		RegisteredAt:   ts(p.RegisteredAt),
	}
}

// ToProtoExperts converts profiles and their parallel address list.
func ToProtoExperts(addrs []common.Address, ps []model.ExpertProfile) *pb.GetExpertsResponse {
	out := &pb.GetExpertsResponse{
		Addresses: make([]string, 0, len(addrs)),
		Profiles:  make([]*pb.ExpertProfile, 0, len(ps)),
	}
	for _, a := range addrs {
		out.Addresses = append(out.Addresses, a.Hex())
	}
	for _, p := range ps {
		out.Profiles = append(out.Profiles, ToProtoExpert(p))
	}
	return out
}

// --- purchase records ---

// ToProtoPurchase converts a purchase record.
func ToProtoPurchase(r model.PurchaseRecord) *pb.PurchaseRecord {
	return &pb.PurchaseRecord{
		Id:              r.ID,
		Expert:          r.Expert.Hex(),
		Client:          r.Client.Hex(),
		TotalAmountPaid: r.TotalAmountPaid,
		CreditsGranted:  r.CreditsGranted,
		CreditsConsumed: r.CreditsConsumed,
		CreatedAt:       ts(r.CreatedAt),
	}
}

// ToProtoPurchases converts a list.
func ToProtoPurchases(rs []model.PurchaseRecord) []*pb.PurchaseRecord {
	out := make([]*pb.PurchaseRecord, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToProtoPurchase(r))
	}
	return out
}

// --- chat records ---

// ToProtoRecord converts a chat record. The secret is never part of it.
func ToProtoRecord(r model.ChatRecord) *pb.ChatRecord {
	return &pb.ChatRecord{
		Id:             r.ID,
		Expert:         r.Expert.Hex(),
		Client:         r.Client.Hex(),
		ContentPointer: r.ContentPointer,
		CreatedAt:      ts(r.CreatedAt),
	}
}

// ToProtoRecords converts a list.
func ToProtoRecords(rs []model.ChatRecord) []*pb.ChatRecord {
	out := make([]*pb.ChatRecord, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToProtoRecord(r))
	}
	return out
}

// FromProtoFilter parses optional expert/client filters.
func FromProtoFilter(in *pb.ListRecordsRequest) (model.RecordFilter, error) {
	e, err := FromProtoOptionalAddress("expert", in.GetExpert())
	if err != nil {
		return model.RecordFilter{}, err
	}
	c, err := FromProtoOptionalAddress("client", in.GetClient())
	if err != nil {
		return model.RecordFilter{}, err
	}
	return model.RecordFilter{Expert: e, Client: c}, nil
}

// --- authority, events ---

// ToProtoAuthorityChanges converts the audit trail.
func ToProtoAuthorityChanges(cs []model.AuthorityChange) []*pb.AuthorityChange {
	out := make([]*pb.AuthorityChange, 0, len(cs))
	for _, c := range cs {
		out = append(out, &pb.AuthorityChange{
			Id:        c.ID,
			Authority: c.Authority.Hex(),
			ChangedBy: c.ChangedBy.Hex(),
			ChangedAt: ts(c.ChangedAt),
		})
	}
	return out
}

// ToProtoEvents converts feed entries; unset parties are omitted.
func ToProtoEvents(evs []model.Event) []*pb.Event {
	out := make([]*pb.Event, 0, len(evs))
	for _, e := range evs {
		pe := &pb.Event{
			Id:        e.ID,
			Kind:      string(e.Kind),
			Expert:    optional(e.Expert),
			Client:    optional(e.Client),
			RecordId:  e.RecordID,
			Credits:   e.Credits,
			Amount:    e.Amount,
			CreatedAt: ts(e.CreatedAt),
		}
		// "any client" is meaningful on record_created
		if e.Kind == model.EventRecordCreated {
			pe.Client = e.Client.Hex()
		}
		out = append(out, pe)
	}
	return out
}
