package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"google.golang.org/grpc"

	pb "github.com/and161185/pay2alpha/gen/go/pay2alpha/v1"
	"github.com/and161185/pay2alpha/internal/identity"
)

var errUnknownCommand = errors.New("unknown command")

// app runs one subcommand against a dialed server.
type app struct {
	out  io.Writer
	dial func(ctx context.Context, bearer string) (*grpc.ClientConn, error)
	now  func() time.Time
}

// client dials the server, attaching the saved session token when authed is set.
func (a *app) client(ctx context.Context, authed bool) (pb.Pay2AlphaClient, func(), error) {
	var bearer string
	if authed {
		tf, err := loadToken()
		if err != nil {
			return nil, nil, err
		}
		bearer = tf.AccessToken
	}
	cc, err := a.dial(ctx, bearer)
	if err != nil {
		return nil, nil, err
	}
	return pb.NewPay2AlphaClient(cc), func() { _ = cc.Close() }, nil
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "version":
		fmt.Fprintf(a.out, "p2a %s (%s)\n", version, buildDate)
		return nil
	case "keygen":
		return a.keygen()
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "set-price":
		return a.setPrice(ctx, args)
	case "buy":
		return a.buy(ctx, args)
	case "claim", "refund":
		return a.settle(ctx, cmd, args)
	case "purchase":
		return a.purchase(ctx, args)
	case "experts":
		return a.experts(ctx, args)
	case "approve":
		return a.approve(ctx, args)
	case "mint":
		return a.mint(ctx, args)
	case "balance":
		return a.balance(ctx, args)
	case "create-record":
		return a.createRecord(ctx, args)
	case "record":
		return a.record(ctx, args)
	case "secret":
		return a.secret(ctx, args)
	case "set-rofl-app":
		return a.setRoflApp(ctx, args)
	case "rofl-app":
		return a.roflApp(ctx, args)
	case "events":
		return a.events(ctx, args)
	}
	return fmt.Errorf("%w: %q", errUnknownCommand, cmd)
}

// ---- identity ----

func (a *app) keygen() error {
	k, err := ethcrypto.GenerateKey()
	if err != nil {
		return err
	}
	printJSON(a.out, map[string]string{
		"address":     identity.AddressOf(k).Hex(),
		"private_key": hexutil.Encode(ethcrypto.FromECDSA(k)),
	})
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	keyHex := fs.String("key", "", "private key (hex)")
	domain := fs.String("domain", "localhost", "sign-in domain")
	chainID := fs.Int64("chain-id", 23295, "chain id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	key, err := loadKey(*keyHex)
	if err != nil {
		return err
	}
	nonce, err := identity.NewNonce()
	if err != nil {
		return err
	}
	text := identity.NewMessage(*domain, identity.AddressOf(key), *chainID, nonce, a.now()).String()
	sig, err := identity.SignMessage(key, text)
	if err != nil {
		return err
	}

	cli, done, err := a.client(ctx, false)
	if err != nil {
		return err
	}
	defer done()
	resp, err := cli.Login(ctx, &pb.LoginRequest{Message: text, Signature: hexutil.Encode(sig)})
	if err != nil {
		return err
	}
	exp := resp.GetExpiresAt().AsTime()
	if err := saveToken(tokenFile{AccessToken: resp.GetAccessToken(), Address: resp.GetAddress(), ExpiresAt: exp}); err != nil {
		return err
	}
	printJSON(a.out, map[string]any{"address": resp.GetAddress(), "expires_at": exp})
	return nil
}

// ---- experts & purchases ----

func (a *app) register(ctx context.Context, args []string) error {
	fs := newFlagSet("register")
	name := fs.String("name", "", "display name")
	price := fs.Int64("price", 0, "price per credit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cli, done, err := a.client(ctx, true)
	if err != nil {
		return err
	}
	defer done()
	if _, err := cli.RegisterExpert(ctx, &pb.RegisterExpertRequest{DisplayName: *name, PricePerCredit: *price}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "ok")
	return nil
}

func (a *app) setPrice(ctx context.Context, args []string) error {
	fs := newFlagSet("set-price")
	price := fs.Int64("price", 0, "price per credit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cli, done, err := a.client(ctx, true)
	if err != nil {
		return err
	}
	defer done()
	if _, err := cli.SetPrice(ctx, &pb.SetPriceRequest{PricePerCredit: *price}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "ok")
	return nil
}

func (a *app) buy(ctx context.Context, args []string) error {
	fs := newFlagSet("buy")
	expert := fs.String("expert", "", "expert address")
	credits := fs.Int64("credits", 0, "credits to buy")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *expert == "" {
		return errors.New("need -expert")
	}
	cli, done, err := a.client(ctx, true)
	if err != nil {
		return err
	}
	defer done()
	resp, err := cli.BuyCredits(ctx, &pb.BuyCreditsRequest{Expert: *expert, Credits: *credits})
	if err != nil {
		return err
	}
	printProto(a.out, resp.GetRecord())
	return nil
}

// settle claims (expert) or refunds (client) credits of one purchase.
func (a *app) settle(ctx context.Context, cmd string, args []string) error {
	fs := newFlagSet(cmd)
	id := fs.Int64("id", -1, "purchase record id")
	count := fs.Int64("count", 0, "credits")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id < 0 {
		return errors.New("need -id")
	}
	cli, done, err := a.client(ctx, true)
	if err != nil {
		return err
	}
	defer done()
	req := &pb.SettleRequest{Id: *id, Count: *count}
	var resp *pb.SettleResponse
	if cmd == "claim" {
		resp, err = cli.ClaimCredits(ctx, req)
	} else {
		resp, err = cli.RefundCredits(ctx, req)
	}
	if err != nil {
		return err
	}
	printProto(a.out, resp)
	return nil
}

func (a *app) purchase(ctx context.Context, args []string) error {
	fs := newFlagSet("purchase")
	id := fs.Int64("id", -1, "purchase record id")
	party := fs.String("party", "", "list records of this client or expert")
	count := fs.Bool("count", false, "print the number of records")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cli, done, err := a.client(ctx, false)
	if err != nil {
		return err
	}
	defer done()

	switch {
	case *count:
		resp, err := cli.PurchaseRecordCount(ctx, &pb.Empty{})
		if err != nil {
			return err
		}
		printProto(a.out, resp)
	case *party != "":
		resp, err := cli.ListPurchaseRecords(ctx, &pb.ListPurchaseRecordsRequest{Party: *party})
		if err != nil {
			return err
		}
		printProto(a.out, resp)
	case *id >= 0:
		resp, err := cli.GetPurchaseRecord(ctx, &pb.GetPurchaseRecordRequest{Id: *id})
		if err != nil {
			return err
		}
		printProto(a.out, resp.GetRecord())
	default:
		return errors.New("need -id, -party or -count")
	}
	return nil
}

// experts prints one profile, or a page; without -limit the page runs to the end.
func (a *app) experts(ctx context.Context, args []string) error {
	fs := newFlagSet("experts")
	addr := fs.String("address", "", "expert address")
	offset := fs.Int64("offset", 0, "page offset")
	limit := fs.Int64("limit", 0, "page size (0: all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cli, done, err := a.client(ctx, false)
	if err != nil {
		return err
	}
	defer done()

	if *addr != "" {
		resp, err := cli.GetExpert(ctx, &pb.GetExpertRequest{Address: *addr})
		if err != nil {
			return err
		}
		printProto(a.out, resp.GetExpert())
		return nil
	}
	if *limit == 0 {
		n, err := cli.ExpertsCount(ctx, &pb.Empty{})
		if err != nil {
			return err
		}
		*limit = max(n.GetCount()-*offset, 0)
	}
	resp, err := cli.GetExperts(ctx, &pb.GetExpertsRequest{Offset: *offset, Limit: *limit})
	if err != nil {
		return err
	}
	printProto(a.out, resp)
	return nil
}

// ---- asset ----

func (a *app) approve(ctx context.Context, args []string) error {
	fs := newFlagSet("approve")
	amount := fs.Int64("amount", 0, "allowance for the ledger")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cli, done, err := a.client(ctx, true)
	if err != nil {
		return err
	}
	defer done()
	if _, err := cli.Approve(ctx, &pb.ApproveRequest{Amount: *amount}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "ok")
	return nil
}

func (a *app) mint(ctx context.Context, args []string) error {
	fs := newFlagSet("mint")
	to := fs.String("to", "", "recipient address")
	amount := fs.Int64("amount", 0, "amount")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cli, done, err := a.client(ctx, true)
	if err != nil {
		return err
	}
	defer done()
	if _, err := cli.Mint(ctx, &pb.MintRequest{To: *to, Amount: *amount}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "ok")
	return nil
}

// balance defaults to the address of the saved session.
func (a *app) balance(ctx context.Context, args []string) error {
	fs := newFlagSet("balance")
	addr := fs.String("address", "", "holder (default: logged-in address)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *addr == "" {
		tf, err := loadToken()
		if err != nil {
			return errors.New("need -address or login")
		}
		*addr = tf.Address
	}
	cli, done, err := a.client(ctx, false)
	if err != nil {
		return err
	}
	defer done()
	resp, err := cli.Balance(ctx, &pb.BalanceRequest{Address: *addr})
	if err != nil {
		return err
	}
	printProto(a.out, resp)
	return nil
}

// ---- records ----

func (a *app) createRecord(ctx context.Context, args []string) error {
	fs := newFlagSet("create-record")
	expert := fs.String("expert", "", "expert (default: caller)")
	client := fs.String("client", "", "client address (zero address: any client)")
	pointer := fs.String("pointer", "", "content pointer (e.g. IPFS CID)")
	secret := fs.String("secret", "", "secret")
	secretFile := fs.String("secret-file", "", "secret file ('-'=stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *client == "" || *pointer == "" {
		return errors.New("need -client and -pointer")
	}
	data := []byte(*secret)
	if *secretFile != "" {
		var err error
		if data, err = readAll(*secretFile); err != nil {
			return err
		}
	}
	cli, done, err := a.client(ctx, true)
	if err != nil {
		return err
	}
	defer done()
	resp, err := cli.CreateRecord(ctx, &pb.CreateRecordRequest{
		Expert: *expert, Client: *client, ContentPointer: *pointer, Secret: data,
	})
	if err != nil {
		return err
	}
	printProto(a.out, resp.GetRecord())
	return nil
}

func (a *app) record(ctx context.Context, args []string) error {
	fs := newFlagSet("record")
	id := fs.Int64("id", -1, "record id")
	expert := fs.String("expert", "", "filter by expert")
	client := fs.String("client", "", "filter by client")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cli, done, err := a.client(ctx, false)
	if err != nil {
		return err
	}
	defer done()
	if *id >= 0 {
		resp, err := cli.GetRecord(ctx, &pb.GetRecordRequest{Id: *id})
		if err != nil {
			return err
		}
		printProto(a.out, resp.GetRecord())
		return nil
	}
	resp, err := cli.ListRecords(ctx, &pb.ListRecordsRequest{Expert: *expert, Client: *client})
	if err != nil {
		return err
	}
	printProto(a.out, resp)
	return nil
}

// secret writes the revealed secret to -out or stdout, without a trailing newline.
func (a *app) secret(ctx context.Context, args []string) error {
	fs := newFlagSet("secret")
	id := fs.Int64("id", -1, "record id")
	outPath := fs.String("out", "", "write to file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id < 0 {
		return errors.New("need -id")
	}
	tf, err := loadToken()
	if err != nil {
		return err
	}
	cli, done, err := a.client(ctx, false)
	if err != nil {
		return err
	}
	defer done()
	resp, err := cli.GetSecretKey(ctx, &pb.GetSecretKeyRequest{Id: *id, Token: tf.AccessToken})
	if err != nil {
		return err
	}
	if *outPath != "" {
		return os.WriteFile(*outPath, resp.GetSecret(), 0o600)
	}
	_, err = a.out.Write(resp.GetSecret())
	return err
}

func (a *app) setRoflApp(ctx context.Context, args []string) error {
	fs := newFlagSet("set-rofl-app")
	addr := fs.String("address", "", "authority address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cli, done, err := a.client(ctx, true)
	if err != nil {
		return err
	}
	defer done()
	if _, err := cli.SetRoflApp(ctx, &pb.SetRoflAppRequest{Address: *addr}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "ok")
	return nil
}

func (a *app) roflApp(ctx context.Context, args []string) error {
	fs := newFlagSet("rofl-app")
	history := fs.Bool("history", false, "print the audit trail")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cli, done, err := a.client(ctx, false)
	if err != nil {
		return err
	}
	defer done()
	if *history {
		resp, err := cli.ListRoflAppHistory(ctx, &pb.Empty{})
		if err != nil {
			return err
		}
		printProto(a.out, resp)
		return nil
	}
	resp, err := cli.GetRoflApp(ctx, &pb.Empty{})
	if err != nil {
		return err
	}
	printProto(a.out, resp)
	return nil
}

func (a *app) events(ctx context.Context, args []string) error {
	fs := newFlagSet("events")
	after := fs.Int64("after", 0, "only events with a greater id")
	limit := fs.Int("limit", 100, "max events")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cli, done, err := a.client(ctx, false)
	if err != nil {
		return err
	}
	defer done()
	resp, err := cli.ListEvents(ctx, &pb.ListEventsRequest{AfterId: *after, Limit: int32(*limit)})
	if err != nil {
		return err
	}
	printProto(a.out, resp)
	return nil
}
