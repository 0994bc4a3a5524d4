// Command p2a is a CLI client for the Pay2Alpha service.
package main

import (
	"context"
	"crypto/ecdsa"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	insecurecreds "google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/and161185/pay2alpha/internal/identity"
)

// ---- config/token store ----

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	Address     string    `json:"address"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "pay2alpha")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pay2alpha")
}

func tokenPath() string { return filepath.Join(cfgDir(), "token.json") }

func saveToken(tf tokenFile) error {
	if err := os.MkdirAll(cfgDir(), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(tokenPath(), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tf)
}

func loadToken() (tokenFile, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return tokenFile{}, err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return tokenFile{}, err
	}
	if tf.AccessToken == "" || time.Now().After(tf.ExpiresAt) {
		return tokenFile{}, errors.New("no valid token (login required)")
	}
	return tf, nil
}

// loadKey reads the signing key from the flag value or P2A_PRIVATE_KEY.
func loadKey(flagVal string) (*ecdsa.PrivateKey, error) {
	v := flagVal
	if v == "" {
		v = os.Getenv("P2A_PRIVATE_KEY")
	}
	if v == "" {
		return nil, errors.New("need -key or P2A_PRIVATE_KEY")
	}
	return identity.LoadKey(v)
}

// ---- grpc dial ----

type bearerCreds struct {
	token  string
	secure bool
}

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return b.secure }

func loadTLS(caPath string, insecure bool) (credentials.TransportCredentials, error) {
	if insecure {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

// dialer returns a dial func for addr. plaintext talks to a dev server without TLS.
func dialer(addr, caPath string, insecure, plaintext bool) func(ctx context.Context, bearer string) (*grpc.ClientConn, error) {
	return func(ctx context.Context, bearer string) (*grpc.ClientConn, error) {
		var creds credentials.TransportCredentials
		if plaintext {
			creds = insecurecreds.NewCredentials()
		} else {
			var err error
			if creds, err = loadTLS(caPath, insecure); err != nil {
				return nil, err
			}
		}
		opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
		if bearer != "" {
			opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: bearer, secure: !plaintext}))
		}
		//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
		return grpc.DialContext(ctx, addr, opts...)
	}
}

// ---- utils ----

func readAll(p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(p)
}

func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

var protoOut = protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true, EmitUnpopulated: true}

// printProto renders API messages with their proto field names.
func printProto(w io.Writer, m proto.Message) {
	b, err := protoOut.Marshal(m)
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		return
	}
	_, _ = w.Write(append(b, '\n'))
}

func usage() {
	fmt.Fprintf(os.Stderr, `p2a CLI
Usage:
  p2a -addr HOST:PORT [-cacert file | -insecure | -plaintext] <cmd> [args]

Commands:
  version
  keygen                                              (prints a fresh key)
  login          [-key hex] [-domain d] [-chain-id n] (saves token)
  register       -name <display name> -price <n>
  set-price      -price <n>
  buy            -expert <addr> -credits <n>
  claim          -id <n> -count <n>
  refund         -id <n> -count <n>
  purchase       -id <n> | -party <addr> | -count
  experts        [-address <addr>] [-offset n -limit n]
  approve        -amount <n>
  mint           -to <addr> -amount <n>
  balance        [-address <addr>]
  create-record  -client <addr> -pointer <cid> (-secret s | -secret-file f) [-expert <addr>]
  record         -id <n> | [-expert <addr>] [-client <addr>]
  secret         -id <n> [-out file]
  set-rofl-app   -address <addr>                      (zero address clears)
  rofl-app       [-history]
  events         [-after n] [-limit n]

The signing key may also come from P2A_PRIVATE_KEY.
`)
	os.Exit(2)
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

// main dispatches subcommands and configures TLS/auth for RPC calls.
func main() {
	// global flags
	addr := flag.String("addr", "localhost:8443", "server addr")
	caPath := flag.String("cacert", "", "CA cert (PEM)")
	insecure := flag.Bool("insecure", false, "skip cert verify (dev)")
	plaintext := flag.Bool("plaintext", false, "no TLS (dev server)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a := &app{out: os.Stdout, dial: dialer(*addr, *caPath, *insecure, *plaintext), now: time.Now}
	if err := a.run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		if errors.Is(err, errUnknownCommand) {
			usage()
		}
		fail(err)
	}
}

func fail(err error) {
	if s, ok := status.FromError(err); ok {
		fmt.Fprintf(os.Stderr, "rpc error: code=%s msg=%s\n", s.Code(), s.Message())
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
