// Package httpapi serves the plain HTTP side of the server: health checks
// and the live points websocket.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/and161185/ecoscan/internal/connectivity"
	"github.com/and161185/ecoscan/internal/identity"
)

const (
	pingEvery = 25 * time.Second
	pingDB    = 2 * time.Second
)

// Pinger checks a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps bundles what the router needs.
type Deps struct {
	Hub      *Hub
	Verifier *identity.Verifier
	// Upstream reports classifier reachability for /readyz. Nil means always ready.
	Upstream connectivity.Signal
	// DB is pinged by /readyz. Nil skips the check.
	DB       Pinger
	Log      *zap.Logger
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// NewRouter builds the HTTP routes.
func NewRouter(d Deps) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if d.DB != nil {
			ctx, cancel := context.WithTimeout(req.Context(), pingDB)
			err := d.DB.Ping(ctx)
			cancel()
			if err != nil {
				d.Log.Warn("readyz: db ping", zap.Error(err))
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "database unreachable"})
				return
			}
		}
		if d.Upstream != nil && !d.Upstream.Reachable() {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "classifier unreachable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/v1/points/live", d.live).Methods(http.MethodGet)
	return r
}

func (d Deps) live(w http.ResponseWriter, r *http.Request) {
	tok := r.URL.Query().Get("token")
	if tok == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}
	claims, err := d.Verifier.Verify(tok)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		d.Log.Debug("ws upgrade", zap.Error(err))
		return
	}
	c := newClient(claims.Email, conn)
	d.Hub.register(c)
	go c.writeLoop(pingEvery)

	// the read loop ends on client close or error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			d.Hub.unregister(c)
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
