package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/protobuf/encoding/protojson"

	pb "github.com/and161185/ecoscan/gen/go/ecoscan/v1"
	"github.com/and161185/ecoscan/internal/connectivity"
	"github.com/and161185/ecoscan/internal/identity"
	"github.com/and161185/ecoscan/internal/model"
)

var key = []byte("k")

type fakeDB struct{ err error }

func (f *fakeDB) Ping(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("ping without deadline")
	}
	return f.err
}

func newTestServer(t *testing.T, up connectivity.Signal) (*httptest.Server, *Hub) {
	t.Helper()
	return newTestServerDB(t, up, nil)
}

func newTestServerDB(t *testing.T, up connectivity.Signal, db Pinger) (*httptest.Server, *Hub) {
	t.Helper()
	log := zaptest.NewLogger(t)
	hub := NewHub(log)
	srv := httptest.NewServer(NewRouter(Deps{Hub: hub, Verifier: identity.NewVerifier(key), Upstream: up, DB: db, Log: log}))
	t.Cleanup(srv.Close)
	return srv, hub
}

func TestHealthAndReady(t *testing.T) {
	o := connectivity.NewOracle(true)
	srv, _ := newTestServer(t, o)

	res, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, err = http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	o.Set(false)
	res, err = http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
}

func TestReady_DatabaseDown(t *testing.T) {
	db := &fakeDB{}
	srv, _ := newTestServerDB(t, connectivity.NewOracle(true), db)

	res, err := http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	db.err = errors.New("connection refused")
	res, err = http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
}

func TestLive_RejectsBadToken(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/points/live"

	_, res, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	_, res, err = websocket.DefaultDialer.Dial(wsURL+"?token=garbage", nil)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestLive_PushesPoints(t *testing.T) {
	srv, hub := newTestServer(t, nil)
	tok, _, err := identity.Issue(key, model.Profile{Subject: "s", Email: "a@b.c"}, time.Hour)
	require.NoError(t, err)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/points/live?token=" + tok
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Connected("a@b.c") == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Notify("someone@else", model.UserPoints{UserID: "someone@else", Total: 1})
	hub.Notify("a@b.c", model.UserPoints{UserID: "a@b.c", Total: 150, History: []model.HistoryEntry{{Date: "2025-01-03", Points: 50}}})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var got pb.UserPoints
	require.NoError(t, protojson.Unmarshal(msg, &got))
	assert.Equal(t, "a@b.c", got.GetUserId())
	assert.EqualValues(t, 150, got.GetTotal())
	require.Len(t, got.GetHistory(), 1)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Connected("a@b.c") == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_NotifyDoesNotBlockOnSlowSocket(t *testing.T) {
	hub := NewHub(zaptest.NewLogger(t))
	// no writer drains this queue
	c := &client{userID: "a@b.c", send: make(chan []byte, 1)}
	hub.register(c)

	done := make(chan struct{})
	go func() {
		hub.Notify("a@b.c", model.UserPoints{UserID: "a@b.c", Total: 50})
		hub.Notify("a@b.c", model.UserPoints{UserID: "a@b.c", Total: 100})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a socket that is not reading")
	}

	assert.Equal(t, 0, hub.Connected("a@b.c"))
	msg, ok := <-c.send
	require.True(t, ok)
	assert.Contains(t, string(msg), "50")
	_, ok = <-c.send
	assert.False(t, ok, "queue of a dropped socket is closed")

	// a late unregister from the read loop is a no-op
	hub.unregister(c)
}
