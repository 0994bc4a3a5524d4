// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// AnyClient is the sentinel client of a chat record that any authenticated caller may read.
var AnyClient = common.Address{}

// Tokens collects an issued session token.
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time // access token expiry (for diagnostics)
}

// Principal is an authenticated caller resolved from a session token.
type Principal struct {
	Address   common.Address
	TokenID   string // jti
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ExpertProfile is a registered seller of credits.
type ExpertProfile struct {
	Address        common.Address // identity key
	DisplayName    string
	PricePerCredit int64 // smallest currency unit, > 0
	RegisteredAt   time.Time
}

// PurchaseRecord is one buy-credits entry of the append-only ledger.
type PurchaseRecord struct {
	ID              int64 // dense, starts at 0
	Expert          common.Address
	Client          common.Address
	TotalAmountPaid int64 // frozen at creation: credits * price at purchase time
	CreditsGranted  int64
	CreditsConsumed int64 // claimed + refunded, never above CreditsGranted
	CreatedAt       time.Time
}

// Remaining returns the credits that can still be claimed or refunded.
func (r PurchaseRecord) Remaining() int64 { return r.CreditsGranted - r.CreditsConsumed }

// ChatRecord is a confidential record as visible without the secret.
type ChatRecord struct {
	ID             int64 // dense, starts at 0
	Expert         common.Address
	Client         common.Address // AnyClient means "any client"
	ContentPointer string         // opaque (e.g. IPFS CID)
	CreatedAt      time.Time
}

// SealedRecord is a chat record together with its encrypted secret.
type SealedRecord struct {
	ChatRecord
	SealedSecret []byte // AEAD blob, never leaves the store layer unopened
}

// RecordFilter narrows chat/purchase record listings; nil fields match anything.
type RecordFilter struct {
	Expert *common.Address
	Client *common.Address
}

// AuthorityChange is one entry of the delegated authority audit trail.
type AuthorityChange struct {
	ID        int64
	Authority common.Address // zero address means cleared
	ChangedBy common.Address
	ChangedAt time.Time
}

// EventKind names an externally observable state change.
type EventKind string

// Event kinds. Secret reveals deliberately have none.
const (
	EventPurchase      EventKind = "purchase"
	EventClaim         EventKind = "claim"
	EventRefund        EventKind = "refund"
	EventRecordCreated EventKind = "record_created"
)

// Event is an entry of the observer feed.
type Event struct {
	ID        int64
	Kind      EventKind
	Client    common.Address // purchase, refund, record_created
	Expert    common.Address // purchase, claim, record_created
	RecordID  int64          // purchase record id, or chat record id for record_created
	Credits   int64
	Amount    int64 // cost for purchase, payout for claim/refund
	CreatedAt time.Time
}
