// Package grpcserver exposes the Pay2Alpha gRPC API handlers.
package grpcserver

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/pay2alpha/gen/go/pay2alpha/v1"
	"github.com/and161185/pay2alpha/internal/convert"
	"github.com/and161185/pay2alpha/internal/errs"
	"github.com/and161185/pay2alpha/internal/service"
)

// PublicMethods need no session token.
var PublicMethods = []string{
	pb.Pay2Alpha_Login_FullMethodName,
	pb.Pay2Alpha_GetExpert_FullMethodName,
	pb.Pay2Alpha_ExpertsCount_FullMethodName,
	pb.Pay2Alpha_GetExperts_FullMethodName,
	pb.Pay2Alpha_GetPurchaseRecord_FullMethodName,
	pb.Pay2Alpha_PurchaseRecordCount_FullMethodName,
	pb.Pay2Alpha_ListPurchaseRecords_FullMethodName,
	pb.Pay2Alpha_Balance_FullMethodName,
	pb.Pay2Alpha_GetRecord_FullMethodName,
	pb.Pay2Alpha_RecordCount_FullMethodName,
	pb.Pay2Alpha_ListRecords_FullMethodName,
	pb.Pay2Alpha_GetRoflApp_FullMethodName,
	pb.Pay2Alpha_ListRoflAppHistory_FullMethodName,
	pb.Pay2Alpha_ListEvents_FullMethodName,
	// the gate checks the token itself
	pb.Pay2Alpha_GetSecretKey_FullMethodName,
}

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedPay2AlphaServer
	auth    service.AuthService
	ledger  service.LedgerService
	assets  service.AssetService
	records service.RecordService
}

// New constructs a gRPC server with injected services.
func New(auth service.AuthService, ledger service.LedgerService, assets service.AssetService, records service.RecordService) *Server {
	return &Server{auth: auth, ledger: ledger, assets: assets, records: records}
}

// toStatus maps domain sentinels to gRPC codes. Unknown errors become Internal
// without leaking their text.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrNotRegistered):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, errs.ErrUnauthorized), errors.Is(err, errs.ErrAccessDenied):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, errs.ErrInsufficientBalance):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, errs.ErrInvalidAmount), errors.Is(err, errs.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errs.ErrAuthenticationFailed):
		return status.Error(codes.Unauthenticated, "authentication failed")
	case errors.Is(err, errs.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, "rate limited")
	}
	return status.Error(codes.Internal, "internal")
}

// caller returns the principal set by AuthUnary.
func caller(ctx context.Context) (common.Address, error) {
	p, ok := PrincipalFromCtx(ctx)
	if !ok {
		return common.Address{}, status.Error(codes.Unauthenticated, "no auth")
	}
	return p.Address, nil
}

// --- Auth ---

// Login verifies a signed sign-in message and issues a session token.
func (s *Server) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	if req.GetMessage() == "" || req.GetSignature() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty message/signature")
	}
	tok, addr, err := s.auth.Login(ctx, req.GetMessage(), req.GetSignature(), peerHost(ctx))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.LoginResponse{
		AccessToken: tok.AccessToken,
		ExpiresAt:   timestamppb.New(tok.ExpiresAt),
		Address:     addr.Hex(),
	}, nil
}

// --- Experts ---

func (s *Server) RegisterExpert(ctx context.Context, req *pb.RegisterExpertRequest) (*pb.Empty, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.RegisterExpert(ctx, who, req.GetDisplayName(), req.GetPricePerCredit()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) SetPrice(ctx context.Context, req *pb.SetPriceRequest) (*pb.Empty, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.SetPrice(ctx, who, req.GetPricePerCredit()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) GetExpert(ctx context.Context, req *pb.GetExpertRequest) (*pb.GetExpertResponse, error) {
	addr, err := convert.FromProtoAddress("address", req.GetAddress())
	if err != nil {
		return nil, toStatus(err)
	}
	p, err := s.ledger.Expert(ctx, addr)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetExpertResponse{Expert: convert.ToProtoExpert(*p)}, nil
}

func (s *Server) ExpertsCount(ctx context.Context, _ *pb.Empty) (*pb.CountResponse, error) {
	n, err := s.ledger.ExpertsCount(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CountResponse{Count: n}, nil
}

// GetExperts pages through experts in registration order.
func (s *Server) GetExperts(ctx context.Context, req *pb.GetExpertsRequest) (*pb.GetExpertsResponse, error) {
	addrs, ps, err := s.ledger.GetExperts(ctx, req.GetOffset(), req.GetLimit())
	if err != nil {
		return nil, toStatus(err)
	}
	return convert.ToProtoExperts(addrs, ps), nil
}

// --- Purchases ---

func (s *Server) BuyCredits(ctx context.Context, req *pb.BuyCreditsRequest) (*pb.PurchaseRecordResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	expert, err := convert.FromProtoAddress("expert", req.GetExpert())
	if err != nil {
		return nil, toStatus(err)
	}
	rec, err := s.ledger.BuyCredits(ctx, who, expert, req.GetCredits())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.PurchaseRecordResponse{Record: convert.ToProtoPurchase(rec)}, nil
}

func (s *Server) ClaimCredits(ctx context.Context, req *pb.SettleRequest) (*pb.SettleResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	payout, err := s.ledger.ClaimCredits(ctx, who, req.GetId(), req.GetCount())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SettleResponse{Payout: payout}, nil
}

func (s *Server) RefundCredits(ctx context.Context, req *pb.SettleRequest) (*pb.SettleResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	payout, err := s.ledger.RefundCredits(ctx, who, req.GetId(), req.GetCount())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SettleResponse{Payout: payout}, nil
}

func (s *Server) GetPurchaseRecord(ctx context.Context, req *pb.GetPurchaseRecordRequest) (*pb.PurchaseRecordResponse, error) {
	rec, err := s.ledger.Record(ctx, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.PurchaseRecordResponse{Record: convert.ToProtoPurchase(*rec)}, nil
}

func (s *Server) PurchaseRecordCount(ctx context.Context, _ *pb.Empty) (*pb.CountResponse, error) {
	n, err := s.ledger.RecordCount(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CountResponse{Count: n}, nil
}

// ListPurchaseRecords returns records where party is the client or the expert.
func (s *Server) ListPurchaseRecords(ctx context.Context, req *pb.ListPurchaseRecordsRequest) (*pb.ListPurchaseRecordsResponse, error) {
	party, err := convert.FromProtoAddress("party", req.GetParty())
	if err != nil {
		return nil, toStatus(err)
	}
	rs, err := s.ledger.RecordsOf(ctx, party)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListPurchaseRecordsResponse{Records: convert.ToProtoPurchases(rs)}, nil
}

func (s *Server) ListEvents(ctx context.Context, req *pb.ListEventsRequest) (*pb.ListEventsResponse, error) {
	evs, err := s.ledger.Events(ctx, req.GetAfterId(), int(req.GetLimit()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListEventsResponse{Events: convert.ToProtoEvents(evs)}, nil
}

// --- Asset ---

// Balance reports the holder's funds and the allowance granted to the ledger.
func (s *Server) Balance(ctx context.Context, req *pb.BalanceRequest) (*pb.BalanceResponse, error) {
	addr, err := convert.FromProtoAddress("address", req.GetAddress())
	if err != nil {
		return nil, toStatus(err)
	}
	bal, err := s.assets.Balance(ctx, addr)
	if err != nil {
		return nil, toStatus(err)
	}
	allow, err := s.assets.Allowance(ctx, addr)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.BalanceResponse{Balance: bal, Allowance: allow}, nil
}

func (s *Server) Approve(ctx context.Context, req *pb.ApproveRequest) (*pb.Empty, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.assets.Approve(ctx, who, req.GetAmount()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) Mint(ctx context.Context, req *pb.MintRequest) (*pb.Empty, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	to, err := convert.FromProtoAddress("to", req.GetTo())
	if err != nil {
		return nil, toStatus(err)
	}
	if err := s.assets.Mint(ctx, who, to, req.GetAmount()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

// --- Records ---

// CreateRecord stores a confidential record; the expert defaults to the caller.
func (s *Server) CreateRecord(ctx context.Context, req *pb.CreateRecordRequest) (*pb.RecordResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	expert := who
	if req.GetExpert() != "" {
		if expert, err = convert.FromProtoAddress("expert", req.GetExpert()); err != nil {
			return nil, toStatus(err)
		}
	}
	client, err := convert.FromProtoAddress("client", req.GetClient())
	if err != nil {
		return nil, toStatus(err)
	}
	rec, err := s.records.CreateRecord(ctx, who, expert, client, req.GetContentPointer(), req.GetSecret())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RecordResponse{Record: convert.ToProtoRecord(rec)}, nil
}

func (s *Server) GetRecord(ctx context.Context, req *pb.GetRecordRequest) (*pb.RecordResponse, error) {
	rec, err := s.records.Record(ctx, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RecordResponse{Record: convert.ToProtoRecord(*rec)}, nil
}

func (s *Server) RecordCount(ctx context.Context, _ *pb.Empty) (*pb.CountResponse, error) {
	n, err := s.records.RecordCount(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.CountResponse{Count: n}, nil
}

func (s *Server) ListRecords(ctx context.Context, req *pb.ListRecordsRequest) (*pb.ListRecordsResponse, error) {
	f, err := convert.FromProtoFilter(req)
	if err != nil {
		return nil, toStatus(err)
	}
	rs, err := s.records.Records(ctx, f)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListRecordsResponse{Records: convert.ToProtoRecords(rs)}, nil
}

// GetSecretKey reveals a record secret. The token comes from the request,
// or from the bearer header when the request carries none.
func (s *Server) GetSecretKey(ctx context.Context, req *pb.GetSecretKeyRequest) (*pb.GetSecretKeyResponse, error) {
	tok := req.GetToken()
	if tok == "" {
		var err error
		if tok, err = bearerTokenFromMD(ctx); err != nil {
			return nil, status.Error(codes.Unauthenticated, "no auth")
		}
	}
	secret, err := s.records.GetSecretKey(ctx, req.GetId(), tok)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetSecretKeyResponse{Secret: secret}, nil
}

// --- Authority ---

func (s *Server) SetRoflApp(ctx context.Context, req *pb.SetRoflAppRequest) (*pb.Empty, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	// the zero address clears the delegate
	addr, err := convert.FromProtoAddress("address", req.GetAddress())
	if err != nil {
		return nil, toStatus(err)
	}
	if err := s.records.SetRoflApp(ctx, who, addr); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) GetRoflApp(ctx context.Context, _ *pb.Empty) (*pb.RoflAppResponse, error) {
	a, err := s.records.RoflApp(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RoflAppResponse{Address: a.Hex()}, nil
}

func (s *Server) ListRoflAppHistory(ctx context.Context, _ *pb.Empty) (*pb.RoflAppHistoryResponse, error) {
	cs, err := s.records.RoflAppHistory(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RoflAppHistoryResponse{Changes: convert.ToProtoAuthorityChanges(cs)}, nil
}
