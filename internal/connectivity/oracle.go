// Package connectivity tracks network reachability and fans transitions out to subscribers.
package connectivity

import (
	"context"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Signal is the read side of the oracle consumed by the scan pipeline.
type Signal interface {
	// Reachable reports the current value.
	Reachable() bool
	// Subscribe returns a channel receiving every subsequent transition and a cancel func.
	Subscribe() (<-chan bool, func())
}

// Oracle holds the current reachability value. Only the current value is kept.
type Oracle struct {
	mu        sync.Mutex
	reachable bool
	subs      map[int]chan bool
	nextID    int
}

// NewOracle constructs an oracle with the given initial value.
func NewOracle(initial bool) *Oracle {
	return &Oracle{reachable: initial, subs: make(map[int]chan bool)}
}

// Reachable reports the current value.
func (o *Oracle) Reachable() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.reachable
}

// Set updates the value and notifies subscribers on change.
func (o *Oracle) Set(v bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.reachable == v {
		return
	}
	o.reachable = v
	for _, ch := range o.subs {
		// subscribers that fall behind drop the oldest pending value
		select {
		case ch <- v:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- v
		}
	}
}

// Subscribe registers a listener. The returned cancel func is idempotent.
func (o *Oracle) Subscribe() (<-chan bool, func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.nextID
	o.nextID++
	ch := make(chan bool, 4)
	o.subs[id] = ch
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.subs, id)
			o.mu.Unlock()
		})
	}
}

// Dialer abstracts the TCP dial used by Probe.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Probe periodically dials addr and feeds the result into an oracle.
type Probe struct {
	oracle   *Oracle
	addr     string
	interval time.Duration
	timeout  time.Duration
	dialer   Dialer
	log      *zap.Logger
}

// NewProbe constructs a TCP reachability probe.
func NewProbe(o *Oracle, addr string, interval, timeout time.Duration, log *zap.Logger) *Probe {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Probe{oracle: o, addr: addr, interval: interval, timeout: timeout, dialer: &net.Dialer{}, log: log}
}

// WithDialer replaces the dialer (tests).
func (p *Probe) WithDialer(d Dialer) *Probe {
	p.dialer = d
	return p
}

// Check dials once and updates the oracle.
func (p *Probe) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	conn, err := p.dialer.DialContext(ctx, "tcp", p.addr)
	ok := err == nil
	if ok {
		_ = conn.Close()
	}
	if ok != p.oracle.Reachable() {
		p.log.Info("connectivity changed", zap.String("addr", p.addr), zap.Bool("reachable", ok), zap.Error(err))
	}
	p.oracle.Set(ok)
	return ok
}

// Run checks immediately and then every interval until ctx is done.
func (p *Probe) Run(ctx context.Context) {
	p.Check(ctx)
	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.Check(ctx)
		}
	}
}
