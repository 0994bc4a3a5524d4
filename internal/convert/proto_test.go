package convert

import (
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"

	pb "github.com/and161185/pay2alpha/gen/go/pay2alpha/v1"
	"github.com/and161185/pay2alpha/internal/errs"
	"github.com/and161185/pay2alpha/internal/model"
)

var (
	expert = common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	client = common.HexToAddress("0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359")
)

func TestFromProtoAddress(t *testing.T) {
	t.Parallel()

	a, err := FromProtoAddress("expert", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	if err != nil || a != expert {
		t.Fatalf("lowercase hex: %v %s", err, a.Hex())
	}
	for _, bad := range []string{"", "0x1234", "alice", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAedFF"} {
		if _, err := FromProtoAddress("expert", bad); !errors.Is(err, errs.ErrInvalidArgument) {
			t.Fatalf("%q: want ErrInvalidArgument, got %v", bad, err)
		}
	}

	p, err := FromProtoOptionalAddress("client", "")
	if err != nil || p != nil {
		t.Fatalf("empty optional must be nil: %v %v", p, err)
	}
}

func TestFromProtoFilter(t *testing.T) {
	t.Parallel()

	f, err := FromProtoFilter(&pb.ListRecordsRequest{Expert: expert.Hex()})
	if err != nil {
		t.Fatal(err)
	}
	if f.Expert == nil || *f.Expert != expert || f.Client != nil {
		t.Fatalf("bad filter: %+v", f)
	}
	if _, err := FromProtoFilter(&pb.ListRecordsRequest{Client: "nope"}); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
	f, err = FromProtoFilter(nil)
	if err != nil || f.Expert != nil || f.Client != nil {
		t.Fatalf("nil request is an empty filter: %+v %v", f, err)
	}
}

func TestToProtoRecordsAndPurchases(t *testing.T) {
	t.Parallel()
	now := time.Now()

	ps := ToProtoPurchases([]model.PurchaseRecord{{ID: 3, Expert: expert, Client: client, TotalAmountPaid: 9, CreditsGranted: 3, CreditsConsumed: 1, CreatedAt: now}})
	if len(ps) != 1 || ps[0].GetExpert() != expert.Hex() || ps[0].GetCreditsConsumed() != 1 || !ps[0].GetCreatedAt().AsTime().Equal(now) {
		t.Fatalf("purchase mismatch: %v", ps)
	}
	if got := ToProtoPurchases(nil); got == nil || len(got) != 0 {
		t.Fatalf("nil list must become empty slice")
	}

	rs := ToProtoRecords([]model.ChatRecord{{ID: 1, Expert: expert, Client: model.AnyClient, ContentPointer: "cid"}})
	if rs[0].GetClient() != (common.Address{}).Hex() || rs[0].GetContentPointer() != "cid" {
		t.Fatalf("record mismatch: %v", rs[0])
	}
	if rs[0].GetCreatedAt() != nil {
		t.Fatalf("zero time must stay unset: %v", rs[0].GetCreatedAt())
	}
}

func TestToProtoExperts(t *testing.T) {
	t.Parallel()

	out := ToProtoExperts([]common.Address{expert}, []model.ExpertProfile{{Address: expert, DisplayName: "E", PricePerCredit: 2}})
	if len(out.GetAddresses()) != 1 || out.GetAddresses()[0] != expert.Hex() || out.GetProfiles()[0].GetDisplayName() != "E" {
		t.Fatalf("experts mismatch: %v", out)
	}
}

func TestToProtoEvents(t *testing.T) {
	t.Parallel()

	out := ToProtoEvents([]model.Event{
		{ID: 1, Kind: model.EventClaim, Expert: expert, RecordID: 0, Credits: 3, Amount: 3},
		{ID: 2, Kind: model.EventRecordCreated, Expert: expert, Client: model.AnyClient, RecordID: 0},
	})
	if out[0].GetClient() != "" || out[0].GetExpert() != expert.Hex() {
		t.Fatalf("claim parties: %v", out[0])
	}
	if out[1].GetClient() != (common.Address{}).Hex() {
		t.Fatalf("record_created keeps any-client: %v", out[1])
	}
}
