// Command ecoscan is a CLI client for the EcoScan service. It keeps the
// identity token in an encrypted local store, queues captures taken while
// offline, and mirrors points and locations for offline reads.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/ecoscan/gen/go/ecoscan/v1"
	"github.com/and161185/ecoscan/internal/config"
	"github.com/and161185/ecoscan/internal/connectivity"
	"github.com/and161185/ecoscan/internal/credstore"
	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/identity"
	"github.com/and161185/ecoscan/internal/mirror"
	"github.com/and161185/ecoscan/internal/pending"
)

// PassphraseEnv overrides the interactive passphrase prompt.
const PassphraseEnv = config.EnvPrefix + "PASSPHRASE"

// ---- grpc dial ----

type bearerCreds struct {
	token  string
	secure bool
}

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return b.secure }

func loadTLS(caPath string, skipVerify bool) (credentials.TransportCredentials, error) {
	if skipVerify {
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

type dialFunc func(ctx context.Context, bearer string) (io.Closer, pb.EcoScanClient, error)

func grpcDialer(cfg *config.Client) dialFunc {
	return func(ctx context.Context, bearer string) (io.Closer, pb.EcoScanClient, error) {
		var creds credentials.TransportCredentials
		if cfg.Plain {
			creds = insecure.NewCredentials()
		} else {
			c, err := loadTLS(cfg.CACert, cfg.Insecure)
			if err != nil {
				return nil, nil, err
			}
			creds = c
		}
		opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
		if bearer != "" {
			opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: bearer, secure: !cfg.Plain}))
		}
		//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
		cc, err := grpc.DialContext(ctx, cfg.Addr, opts...)
		if err != nil {
			return nil, nil, err
		}
		return cc, pb.NewEcoScanClient(cc), nil
	}
}

// ---- app ----

type app struct {
	cfg        *config.Client
	log        *zap.Logger
	out        io.Writer
	dial       dialFunc
	passphrase func() ([]byte, error)
	online     func(ctx context.Context) bool
	now        func() time.Time
}

func newApp(cfg *config.Client, log *zap.Logger) *app {
	return &app{
		cfg:        cfg,
		log:        log,
		out:        os.Stdout,
		dial:       grpcDialer(cfg),
		passphrase: promptPassphrase,
		online: func(ctx context.Context) bool {
			o := connectivity.NewOracle(false)
			return connectivity.NewProbe(o, cfg.Addr, 0, 3*time.Second, log).Check(ctx)
		},
		now: time.Now,
	}
}

func promptPassphrase() ([]byte, error) {
	if v, ok := os.LookupEnv(PassphraseEnv); ok && v != "" {
		return []byte(v), nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("no terminal; set %s", PassphraseEnv)
	}
	fmt.Fprint(os.Stderr, "passphrase: ")
	p, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	return p, err
}

func (a *app) creds() (*credstore.Store, error) {
	p, err := a.passphrase()
	if err != nil {
		return nil, err
	}
	st, err := credstore.Open(a.cfg.CredDir(), p)
	if errors.Is(err, errs.ErrUnauthorized) {
		return nil, errors.New("wrong passphrase")
	}
	return st, err
}

// session returns a still valid token and the user it belongs to.
func (a *app) session() (token, email string, err error) {
	if !credstore.Exists(a.cfg.CredDir()) {
		return "", "", errors.New("not logged in")
	}
	st, err := a.creds()
	if err != nil {
		return "", "", err
	}
	token, err = st.LoadToken()
	if errors.Is(err, errs.ErrNotFound) {
		return "", "", errors.New("not logged in")
	}
	if err != nil {
		return "", "", err
	}
	claims, err := identity.Inspect(token)
	if err != nil {
		return "", "", err
	}
	if claims.ExpiresAt != nil && a.now().After(claims.ExpiresAt.Time) {
		return "", "", errors.New("token expired (login required)")
	}
	return token, claims.Email, nil
}

func (a *app) mirror(ctx context.Context) (*mirror.Mirror, error) {
	if err := os.MkdirAll(a.cfg.DataDir, 0o700); err != nil {
		return nil, err
	}
	return mirror.Open(ctx, a.cfg.MirrorPath(), a.log)
}

func (a *app) pending() *pending.Store { return pending.New(a.cfg.PendingDir(), a.log) }

func (a *app) printJSON(v any) {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `ecoscan CLI
Usage:
  ecoscan [-addr HOST:PORT] [-cacert file | -insecure | -plaintext] [-data dir] <cmd> [args]

Commands:
  version
  login      -dev -email <e> [-name <n>] [-city <c>]    (dev token signed with -dev-key)
  login      -token <jwt|-> [-city <c>]
  logout
  whoami
  types
  scan       -file <image|->                          (queued locally when offline)
  pending
  retry
  rm         -file <name>
  points
  locations  [-type <waste type>]
`)
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration and dispatches the subcommand.
func main() {
	env, err := config.Environment(".env")
	if err != nil {
		fail(err)
	}
	cfg, args, err := config.LoadClient(os.Args[1:], env)
	if err != nil {
		fail(err)
	}
	if len(args) < 1 {
		usage(os.Stderr)
		os.Exit(2)
	}

	logger, _ := zap.NewDevelopment(zap.IncreaseLevel(zap.WarnLevel))
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err := newApp(cfg, logger).run(ctx, args); err != nil {
		if errors.Is(err, errUsage) {
			usage(os.Stderr)
			os.Exit(2)
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
