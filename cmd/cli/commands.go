package main

import (
	"context"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	u "github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/ecoscan/gen/go/ecoscan/v1"
	"github.com/and161185/ecoscan/internal/convert"
	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/identity"
	"github.com/and161185/ecoscan/internal/ledger"
	"github.com/and161185/ecoscan/internal/mirror"
	"github.com/and161185/ecoscan/internal/model"
)

// devTokenTTL bounds tokens minted by "login -dev".
const devTokenTTL = 24 * time.Hour

var errUsage = errors.New("usage")

func (a *app) run(ctx context.Context, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "version":
		fmt.Fprintf(a.out, "ecoscan %s (%s)\n", version, buildDate)
		return nil
	case "login":
		return a.cmdLogin(ctx, rest)
	case "logout":
		return a.cmdLogout(ctx)
	case "whoami":
		return a.cmdWhoami()
	case "types":
		return a.cmdTypes(ctx)
	case "scan":
		return a.cmdScan(ctx, rest)
	case "pending":
		a.printJSON(a.pending().ListPending())
		return nil
	case "retry":
		return a.cmdRetry(ctx)
	case "rm":
		return a.cmdRm(rest)
	case "points":
		return a.cmdPoints(ctx)
	case "locations":
		return a.cmdLocations(ctx, rest)
	default:
		return errUsage
	}
}

func readImage(p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(p)
}

// cmdLogin stores an identity token and registers the profile with the server.
func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	dev := fs.Bool("dev", false, "mint a dev token with -dev-key")
	tokFlag := fs.String("token", "", "ID token ('-'=stdin)")
	email := fs.String("email", "", "email (dev)")
	name := fs.String("name", "", "display name (dev)")
	city := fs.String("city", "", "city")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var token string
	switch {
	case *dev:
		if a.cfg.DevKey == "" {
			return errors.New("login -dev needs -dev-key")
		}
		if !strings.Contains(*email, "@") {
			return errors.New("need -email")
		}
		p := model.Profile{
			Subject:       "dev|" + *email,
			Email:         *email,
			EmailVerified: true,
			Name:          *name,
			UpdatedAt:     a.now(),
		}
		t, _, err := identity.Issue([]byte(a.cfg.DevKey), p, devTokenTTL)
		if err != nil {
			return err
		}
		token = t
	case *tokFlag == "-":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		token = strings.TrimSpace(string(b))
	case *tokFlag != "":
		token = *tokFlag
	default:
		return errors.New("need -dev or -token")
	}

	claims, err := identity.Inspect(token)
	if err != nil {
		return fmt.Errorf("token: %w", err)
	}

	st, err := a.creds()
	if err != nil {
		return err
	}
	if err := st.SaveToken(token); err != nil {
		return err
	}
	prof := claims.Profile()
	prof.City = *city
	if err := st.SaveProfile(prof); err != nil {
		return err
	}

	conn, cli, err := a.dial(ctx, token)
	if err != nil {
		return err
	}
	defer conn.Close()
	resp, err := cli.SaveProfile(ctx, &pb.SaveProfileRequest{City: *city})
	if err != nil {
		// the local session stays usable; the server copy is refreshed on the next login
		a.log.Warn("save profile", zap.Error(err))
	} else if resp.Profile != nil {
		_ = st.SaveProfile(convert.FromWireProfile(resp.Profile))
	}

	fmt.Fprintf(a.out, "logged in as %s\n", claims.Email)
	return nil
}

// cmdLogout drops the stored token, profile and mirrored data.
func (a *app) cmdLogout(ctx context.Context) error {
	st, err := a.creds()
	if err != nil {
		return err
	}
	if err := st.DeleteToken(); err != nil {
		return err
	}
	if err := st.DeleteProfile(); err != nil {
		return err
	}
	m, err := a.mirror(ctx)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "ok")
	return nil
}

func (a *app) cmdWhoami() error {
	st, err := a.creds()
	if err != nil {
		return err
	}
	p, err := st.LoadProfile()
	if errors.Is(err, errs.ErrNotFound) {
		return errors.New("not logged in")
	}
	if err != nil {
		return err
	}
	a.printJSON(p)
	return nil
}

func (a *app) cmdTypes(ctx context.Context) error {
	token, _, err := a.session()
	if err != nil {
		return err
	}
	conn, cli, err := a.dial(ctx, token)
	if err != nil {
		return err
	}
	defer conn.Close()
	resp, err := cli.ListTypes(ctx, &pb.ListTypesRequest{})
	if err != nil {
		return err
	}
	a.printJSON(resp.Types)
	return nil
}

// scanReport is what scan and retry print per image.
type scanReport struct {
	File     string            `json:"file,omitempty"`
	Outcome  model.OutcomeKind `json:"outcome"`
	Type     string            `json:"type,omitempty"`
	Guidance string            `json:"guidance,omitempty"`
	Credited bool              `json:"credited,omitempty"`
	Total    int               `json:"total,omitempty"`
	Queued   string            `json:"queued,omitempty"`
	Error    string            `json:"error,omitempty"`
	Elapsed  string            `json:"elapsed,omitempty"`
	Points   *model.UserPoints `json:"-"`
}

// submit sends one image. It reports offline_interrupted when the server
// cannot be reached, so the caller can keep the capture.
func (a *app) submit(ctx context.Context, cli pb.EcoScanClient, image []byte) (scanReport, error) {
	id, err := u.NewV4()
	if err != nil {
		return scanReport{}, err
	}
	resp, err := cli.Scan(ctx, &pb.ScanRequest{
		ScanId:      id.String(),
		ImageBase64: base64.StdEncoding.EncodeToString(image),
	})
	if status.Code(err) == codes.Unavailable {
		return scanReport{Outcome: model.OutcomeOfflineInterrupted}, nil
	}
	if err != nil {
		return scanReport{}, err
	}
	o := convert.FromWireScan(resp)
	r := scanReport{
		Outcome:  o.Kind,
		Guidance: o.Guidance,
		Credited: resp.GetCredited(),
		Elapsed:  o.Elapsed.String(),
	}
	if o.Type != nil {
		r.Type = o.Type.Name
	}
	if resp.Points != nil {
		p := convert.FromWirePoints(resp.Points)
		r.Points = &p
		r.Total = p.Total
	}
	return r, nil
}

func (a *app) remember(ctx context.Context, p *model.UserPoints) {
	if p == nil {
		return
	}
	m, err := a.mirror(ctx)
	if err != nil {
		a.log.Warn("mirror", zap.Error(err))
		return
	}
	defer m.Close()
	if err := m.PutPoints(ctx, *p); err != nil {
		a.log.Warn("mirror points", zap.Error(err))
	}
}

// cmdScan classifies one image, or queues it when the server is unreachable.
func (a *app) cmdScan(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	file := fs.String("file", "", "image file ('-'=stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("need -file")
	}
	image, err := readImage(*file)
	if err != nil {
		return err
	}
	token, _, err := a.session()
	if err != nil {
		return err
	}

	rep := scanReport{Outcome: model.OutcomeOfflineInterrupted}
	if a.online(ctx) {
		conn, cli, err := a.dial(ctx, token)
		if err != nil {
			return err
		}
		defer conn.Close()
		rep, err = a.submit(ctx, cli, image)
		if err != nil {
			return err
		}
	}

	if rep.Outcome == model.OutcomeOfflineInterrupted {
		pc, err := a.pending().SaveLocally(image)
		if err != nil {
			rep.Error = err.Error()
		} else {
			rep.Queued = pc.FileName
		}
	}
	a.remember(ctx, rep.Points)
	a.printJSON(rep)
	return nil
}

// cmdRetry resubmits queued captures. A capture is dropped once the server
// has produced any outcome for it other than offline_interrupted.
func (a *app) cmdRetry(ctx context.Context) error {
	store := a.pending()
	list := store.ListPending()
	if len(list) == 0 {
		a.printJSON([]scanReport{})
		return nil
	}
	token, _, err := a.session()
	if err != nil {
		return err
	}
	if !a.online(ctx) {
		return errs.ErrOffline
	}
	conn, cli, err := a.dial(ctx, token)
	if err != nil {
		return err
	}
	defer conn.Close()

	out := make([]scanReport, 0, len(list))
	var last *model.UserPoints
	for _, pc := range list {
		img, err := store.Load(pc.FileName)
		if err != nil {
			out = append(out, scanReport{File: pc.FileName, Error: err.Error()})
			continue
		}
		rep, err := a.submit(ctx, cli, img)
		rep.File = pc.FileName
		if err != nil {
			rep.Error = err.Error()
			out = append(out, rep)
			continue
		}
		if rep.Outcome != model.OutcomeOfflineInterrupted {
			store.DeleteLocally(pc.FileName)
		}
		if rep.Points != nil {
			last = rep.Points
		}
		out = append(out, rep)
	}
	a.remember(ctx, last)
	a.printJSON(out)
	return nil
}

func (a *app) cmdRm(args []string) error {
	fs := flag.NewFlagSet("rm", flag.ContinueOnError)
	file := fs.String("file", "", "pending capture name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("need -file")
	}
	a.pending().DeleteLocally(*file)
	fmt.Fprintln(a.out, "ok")
	return nil
}

type pointsView struct {
	Source     mirror.Source    `json:"source"`
	Points     model.UserPoints `json:"points"`
	Streak     int              `json:"streak"`
	UniqueDays int              `json:"unique_days"`
}

// cmdPoints prints the mirrored scoreboard first, then the server's.
func (a *app) cmdPoints(ctx context.Context) error {
	token, email, err := a.session()
	if err != nil {
		return err
	}
	m, err := a.mirror(ctx)
	if err != nil {
		return err
	}
	defer m.Close()

	r := mirror.Reader[model.Scoreboard]{
		Load: func(ctx context.Context) (model.Scoreboard, error) {
			p, _, err := m.Points(ctx, email)
			if err != nil {
				return model.Scoreboard{}, err
			}
			return ledger.Scoreboard(*p), nil
		},
		Fetch: func(ctx context.Context) (model.Scoreboard, error) {
			conn, cli, err := a.dial(ctx, token)
			if err != nil {
				return model.Scoreboard{}, err
			}
			defer conn.Close()
			resp, err := cli.GetPoints(ctx, &pb.GetPointsRequest{})
			if err != nil {
				return model.Scoreboard{}, err
			}
			return model.Scoreboard{
				Points:     convert.FromWirePoints(resp.Points),
				Streak:     int(resp.Streak),
				UniqueDays: int(resp.UniqueDays),
			}, nil
		},
		Save: func(ctx context.Context, sb model.Scoreboard) error {
			return m.PutPoints(ctx, sb.Points)
		},
	}
	return mirror.CacheThenNetwork(ctx, r, func(sb model.Scoreboard, src mirror.Source) {
		a.printJSON(pointsView{Source: src, Points: sb.Points, Streak: sb.Streak, UniqueDays: sb.UniqueDays})
	})
}

type locationsView struct {
	Source    mirror.Source           `json:"source"`
	Locations []model.CollectionPoint `json:"locations"`
}

// cmdLocations prints mirrored collection points first, then the server's.
func (a *app) cmdLocations(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("locations", flag.ContinueOnError)
	typ := fs.String("type", "", "waste type filter")
	if err := fs.Parse(args); err != nil {
		return err
	}
	token, _, err := a.session()
	if err != nil {
		return err
	}
	m, err := a.mirror(ctx)
	if err != nil {
		return err
	}
	defer m.Close()

	r := mirror.Reader[[]model.CollectionPoint]{
		Load: func(ctx context.Context) ([]model.CollectionPoint, error) {
			return m.Locations(ctx, *typ)
		},
		Fetch: func(ctx context.Context) ([]model.CollectionPoint, error) {
			conn, cli, err := a.dial(ctx, token)
			if err != nil {
				return nil, err
			}
			defer conn.Close()
			resp, err := cli.ListLocations(ctx, &pb.ListLocationsRequest{WasteType: *typ})
			if err != nil {
				return nil, err
			}
			return convert.FromWireLocations(resp.Locations), nil
		},
		Save: func(ctx context.Context, pts []model.CollectionPoint) error {
			return m.PutLocations(ctx, *typ, pts)
		},
	}
	return mirror.CacheThenNetwork(ctx, r, func(pts []model.CollectionPoint, src mirror.Source) {
		a.printJSON(locationsView{Source: src, Locations: pts})
	})
}
