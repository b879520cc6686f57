package limiter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/************ fake pgx ************/
type fakeRow struct{ scan func(dest ...any) error }

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

type fakePool struct {
	qrErr         error
	qrBlockedTill *time.Time
	qrHitsRet     int

	lastExecSQL  string
	lastExecArgs []any
	execErr      error
}

func (f *fakePool) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastExecSQL = sql
	f.lastExecArgs = args
	return pgconn.CommandTag{}, f.execErr
}

func (f *fakePool) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	switch {
	case strings.Contains(sql, "SELECT blocked_until"):
		return fakeRow{scan: func(dest ...any) error {
			if f.qrErr != nil {
				return f.qrErr
			}
			if f.qrBlockedTill != nil {
				*(dest[0].(*time.Time)) = *f.qrBlockedTill
			} else {
				*(dest[0].(*time.Time)) = time.Time{} // 'epoch'
			}
			return nil
		}}
	case strings.Contains(sql, "RETURNING hits"):
		return fakeRow{scan: func(dest ...any) error {
			if f.qrErr != nil {
				return f.qrErr
			}
			*(dest[0].(*int)) = f.qrHitsRet
			return nil
		}}
	default:
		return fakeRow{scan: func(...any) error { return errors.New("unexpected query") }}
	}
}

func TestAllow_NoRow_Allows(t *testing.T) {
	fp := &fakePool{qrErr: pgx.ErrNoRows}
	l := NewPG(fp, time.Hour, 30, 15*time.Minute)

	ok, dur, err := l.Allow(context.Background(), "a@b.c")
	if err != nil || !ok || dur != 0 {
		t.Fatalf("Allow no-row: ok=%v dur=%v err=%v", ok, dur, err)
	}
}

func TestAllow_BlockedUntilFuture(t *testing.T) {
	fut := time.Now().Add(10 * time.Minute)
	fp := &fakePool{qrBlockedTill: &fut}
	l := NewPG(fp, time.Hour, 30, 15*time.Minute)

	ok, dur, err := l.Allow(context.Background(), "a@b.c")
	if err != nil || ok || dur <= 0 {
		t.Fatalf("Allow blocked: ok=%v dur=%v err=%v", ok, dur, err)
	}
}

func TestAllow_PastOrEpoch_Allows(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	fp := &fakePool{qrBlockedTill: &past}
	l := NewPG(fp, time.Hour, 30, 15*time.Minute)

	ok, dur, err := l.Allow(context.Background(), "a@b.c")
	if err != nil || !ok || dur != 0 {
		t.Fatalf("Allow past: ok=%v dur=%v err=%v", ok, dur, err)
	}
}

func TestAllow_DBError_Propagates(t *testing.T) {
	fp := &fakePool{qrErr: errors.New("db boom")}
	l := NewPG(fp, time.Hour, 30, 15*time.Minute)

	ok, _, err := l.Allow(context.Background(), "a@b.c")
	if err == nil || ok {
		t.Fatalf("want error propagate, got ok=%v err=%v", ok, err)
	}
}

func TestHit_BelowQuota_NoBlock(t *testing.T) {
	fp := &fakePool{qrHitsRet: 2}
	l := NewPG(fp, time.Hour, 30, 15*time.Minute)

	blocked, dur, err := l.Hit(context.Background(), "a@b.c")
	if err != nil || blocked || dur != 0 {
		t.Fatalf("Hit no block: blocked=%v dur=%v err=%v", blocked, dur, err)
	}
	if fp.lastExecSQL != "" {
		t.Fatalf("no exec expected below quota, got %s", fp.lastExecSQL)
	}
}

func TestHit_BlocksAtQuota(t *testing.T) {
	fp := &fakePool{qrHitsRet: 30}
	l := NewPG(fp, time.Hour, 30, 10*time.Minute)

	blocked, dur, err := l.Hit(context.Background(), "a@b.c")
	if err != nil || !blocked || dur != 10*time.Minute {
		t.Fatalf("Hit block: blocked=%v dur=%v err=%v", blocked, dur, err)
	}
	if !strings.Contains(fp.lastExecSQL, "UPDATE scan_limiter SET blocked_until") {
		t.Fatalf("must update blocked_until, exec=%s", fp.lastExecSQL)
	}
	if fp.lastExecArgs[0] != "a@b.c" {
		t.Fatalf("unexpected args: %v", fp.lastExecArgs)
	}
}

func TestHit_DBErrorOnReturning(t *testing.T) {
	fp := &fakePool{qrErr: errors.New("query error")}
	l := NewPG(fp, time.Hour, 30, 10*time.Minute)

	if _, _, err := l.Hit(context.Background(), "a@b.c"); err == nil {
		t.Fatalf("want error from returning hits")
	}
}

func TestNop(t *testing.T) {
	var l Limiter = Nop{}
	ok, _, err := l.Allow(context.Background(), "x")
	if !ok || err != nil {
		t.Fatalf("nop must allow")
	}
	blocked, _, _ := l.Hit(context.Background(), "x")
	if blocked {
		t.Fatalf("nop must not block")
	}
}
