// Package pipeline runs the two-stage scan: waste type identification, then
// disposal guidance, bounded by a watchdog and aware of connectivity loss.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/and161185/ecoscan/internal/catalog"
	"github.com/and161185/ecoscan/internal/classifier"
	"github.com/and161185/ecoscan/internal/connectivity"
	"github.com/and161185/ecoscan/internal/model"
)

// DefaultTimeout is the watchdog limit for a whole scan.
const DefaultTimeout = 20 * time.Second

// NoResponse replaces guidance when the second call returns nothing.
const NoResponse = "No response"

// State is a pipeline state.
type State string

const (
	StateIdle             State = "idle"
	StateAwaitingType     State = "awaiting_type"
	StateAwaitingGuidance State = "awaiting_guidance"
	StateDone             State = "done"
)

// Pipeline orchestrates classification calls for one scan at a time per Run call.
// It is safe to call Run concurrently; runs share no state.
type Pipeline struct {
	cls       classifier.Classifier
	cat       *catalog.Catalog
	net       connectivity.Signal
	log       *zap.Logger
	timeout   time.Duration
	maxTokens int
	after     func(time.Duration) <-chan time.Time
	now       func() time.Time
	observe   func(State)
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithTimeout overrides the watchdog limit.
func WithTimeout(d time.Duration) Option { return func(p *Pipeline) { p.timeout = d } }

// WithClock replaces the timer and clock (tests simulate the watchdog with it).
func WithClock(after func(time.Duration) <-chan time.Time, now func() time.Time) Option {
	return func(p *Pipeline) { p.after, p.now = after, now }
}

// WithObserver registers a callback invoked on every state change.
func WithObserver(fn func(State)) Option { return func(p *Pipeline) { p.observe = fn } }

// WithMaxTokens sets the reply cap for both calls.
func WithMaxTokens(n int) Option { return func(p *Pipeline) { p.maxTokens = n } }

// New constructs a pipeline.
func New(cls classifier.Classifier, cat *catalog.Catalog, net connectivity.Signal, log *zap.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		cls:       cls,
		cat:       cat,
		net:       net,
		log:       log,
		timeout:   DefaultTimeout,
		maxTokens: classifier.DefaultMaxTokens,
		after:     time.After,
		now:       time.Now,
		observe:   func(State) {},
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// run holds per-scan state.
type run struct {
	p        *Pipeline
	image    string
	start    time.Time
	watchdog <-chan time.Time
	netCh    <-chan bool
	lost     bool
}

// stop reasons for await
type stop int

const (
	stopResult stop = iota
	stopTimeout
)

// Run executes one scan and returns exactly one terminal outcome.
// In-flight calls are not cancelled when the watchdog fires; their results are dropped.
func (p *Pipeline) Run(ctx context.Context, imageBase64 string) model.ScanOutcome {
	r := &run{p: p, image: imageBase64, start: p.now()}
	p.observe(StateIdle)

	if !p.net.Reachable() {
		return r.finish(model.ScanOutcome{Kind: model.OutcomeOfflineInterrupted})
	}

	netCh, cancel := p.net.Subscribe()
	defer cancel()
	r.netCh = netCh
	r.watchdog = p.after(p.timeout)

	// stage 1: which catalog type
	p.observe(StateAwaitingType)
	res, why := r.await(ctx, classifier.TypePrompt(p.cat.Names()))
	if why == stopTimeout {
		return r.finish(model.ScanOutcome{Kind: model.OutcomeTimedOut})
	}
	if r.offline() {
		return r.finish(model.ScanOutcome{Kind: model.OutcomeOfflineInterrupted})
	}
	wt, ok := p.cat.Match(res.Text)
	if !res.OK || !ok {
		return r.finish(model.ScanOutcome{Kind: model.OutcomeNoMatch})
	}

	// stage 2: disposal guidance for the match
	p.observe(StateAwaitingGuidance)
	res, why = r.await(ctx, classifier.GuidancePrompt(wt.Name))
	if why == stopTimeout {
		return r.finish(model.ScanOutcome{Kind: model.OutcomeTimedOut})
	}
	if r.offline() {
		return r.finish(model.ScanOutcome{Kind: model.OutcomeOfflineInterrupted})
	}
	guidance := res.Text
	if !res.OK {
		guidance = NoResponse
	}
	return r.finish(model.ScanOutcome{Kind: model.OutcomeDetected, Type: &wt, Guidance: guidance})
}

// await issues one call and waits for its result, the watchdog, or ctx.
// Connectivity drops seen while waiting are remembered.
func (r *run) await(ctx context.Context, prompt string) (classifier.Result, stop) {
	resCh := make(chan classifier.Result, 1)
	req := classifier.Request{Prompt: prompt, ImageBase64: r.image, MaxTokens: r.p.maxTokens}
	callCtx := context.WithoutCancel(ctx)
	go func() { resCh <- r.p.cls.Classify(callCtx, req) }()

	netCh := r.netCh
	for {
		select {
		case res := <-resCh:
			r.drain(netCh)
			return res, stopResult
		case <-r.watchdog:
			return classifier.Absent, stopTimeout
		case <-ctx.Done():
			return classifier.Absent, stopTimeout
		case v, ok := <-netCh:
			if !ok {
				netCh = nil
				continue
			}
			if !v {
				r.lost = true
			}
		}
	}
}

// drain consumes transitions already queued when a result arrives.
func (r *run) drain(netCh <-chan bool) {
	for {
		select {
		case v, ok := <-netCh:
			if !ok {
				return
			}
			if !v {
				r.lost = true
			}
		default:
			return
		}
	}
}

func (r *run) offline() bool { return r.lost || !r.p.net.Reachable() }

func (r *run) finish(o model.ScanOutcome) model.ScanOutcome {
	o.Elapsed = r.p.now().Sub(r.start)
	r.p.observe(StateDone)
	fields := []zap.Field{zap.String("outcome", string(o.Kind)), zap.Duration("elapsed", o.Elapsed)}
	if o.Type != nil {
		fields = append(fields, zap.String("type", o.Type.Name))
	}
	r.p.log.Info("scan finished", fields...)
	return o
}
