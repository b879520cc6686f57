package pipeline

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/and161185/ecoscan/internal/catalog"
	"github.com/and161185/ecoscan/internal/classifier"
	"github.com/and161185/ecoscan/internal/connectivity"
	"github.com/and161185/ecoscan/internal/model"
)

// scripted returns queued results; a call with a non-nil gate blocks until the gate is closed.
type scripted struct {
	mu      sync.Mutex
	results []classifier.Result
	gates   []chan struct{}
	prompts []string
	started chan int
}

func newScripted(results ...classifier.Result) *scripted {
	return &scripted{results: results, gates: make([]chan struct{}, len(results)), started: make(chan int, 8)}
}

func (s *scripted) gate(i int) chan struct{} {
	s.gates[i] = make(chan struct{})
	return s.gates[i]
}

func (s *scripted) Classify(_ context.Context, req classifier.Request) classifier.Result {
	s.mu.Lock()
	i := len(s.prompts)
	s.prompts = append(s.prompts, req.Prompt)
	var g chan struct{}
	res := classifier.Absent
	if i < len(s.results) {
		g = s.gates[i]
		res = s.results[i]
	}
	s.mu.Unlock()
	s.started <- i
	if g != nil {
		<-g
	}
	return res
}

func (s *scripted) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

func answer(text string) classifier.Result { return classifier.Result{Text: text, OK: true} }

// fakeClock hands out a watchdog channel the test fires explicitly.
type fakeClock struct {
	mu    sync.Mutex
	now   time.Time
	fire  chan time.Time
	asked []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC), fire: make(chan time.Time, 1)}
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.asked = append(c.asked, d)
	return c.fire
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newPipeline(cls classifier.Classifier, o *connectivity.Oracle, clk *fakeClock, states *[]State) *Pipeline {
	var mu sync.Mutex
	return New(cls, catalog.Default, o, zap.NewNop(),
		WithClock(clk.After, clk.Now),
		WithObserver(func(s State) {
			mu.Lock()
			*states = append(*states, s)
			mu.Unlock()
		}),
	)
}

func TestRun_DetectedIssuesExactlyOneGuidanceCall(t *testing.T) {
	t.Parallel()
	cls := newScripted(answer("Plastic Bottle is likely what you are holding"), answer("Yellow bin. Rinse it first."))
	clk := newFakeClock()
	var states []State
	p := newPipeline(cls, connectivity.NewOracle(true), clk, &states)

	out := p.Run(context.Background(), "IMG")

	require.Equal(t, model.OutcomeDetected, out.Kind)
	require.True(t, out.Detected())
	require.Equal(t, "Plastic Bottle", out.Type.Name)
	require.Equal(t, "Yellow bin. Rinse it first.", out.Guidance)

	calls := cls.calls()
	require.Len(t, calls, 2)
	require.Contains(t, calls[0], "Plastic Bottle")
	require.True(t, strings.Contains(calls[1], "Plastic Bottle"))
	require.Equal(t, []State{StateIdle, StateAwaitingType, StateAwaitingGuidance, StateDone}, states)
	require.Equal(t, []time.Duration{DefaultTimeout}, clk.asked)
}

func TestRun_NoMatchSkipsSecondCall(t *testing.T) {
	t.Parallel()
	cls := newScripted(answer("I cannot tell"))
	var states []State
	p := newPipeline(cls, connectivity.NewOracle(true), newFakeClock(), &states)

	out := p.Run(context.Background(), "IMG")
	require.Equal(t, model.OutcomeNoMatch, out.Kind)
	require.Nil(t, out.Type)
	require.Len(t, cls.calls(), 1)
}

func TestRun_AbsentTypeResultIsNoMatch(t *testing.T) {
	t.Parallel()
	cls := newScripted(classifier.Absent)
	var states []State
	p := newPipeline(cls, connectivity.NewOracle(true), newFakeClock(), &states)

	require.Equal(t, model.OutcomeNoMatch, p.Run(context.Background(), "IMG").Kind)
	require.Len(t, cls.calls(), 1)
}

func TestRun_AbsentGuidanceStillDetected(t *testing.T) {
	t.Parallel()
	cls := newScripted(answer("Battery"), classifier.Absent)
	var states []State
	p := newPipeline(cls, connectivity.NewOracle(true), newFakeClock(), &states)

	out := p.Run(context.Background(), "IMG")
	require.Equal(t, model.OutcomeDetected, out.Kind)
	require.Equal(t, NoResponse, out.Guidance)
}

func TestRun_ConnectivityLostDuringFirstCall(t *testing.T) {
	t.Parallel()
	cls := newScripted(answer("Battery"), answer("never"))
	g := cls.gate(0)
	o := connectivity.NewOracle(true)
	var states []State
	p := newPipeline(cls, o, newFakeClock(), &states)

	done := make(chan model.ScanOutcome, 1)
	go func() { done <- p.Run(context.Background(), "IMG") }()

	<-cls.started
	o.Set(false)
	o.Set(true) // a flap still counts as lost
	close(g)

	out := <-done
	require.Equal(t, model.OutcomeOfflineInterrupted, out.Kind)
	require.Len(t, cls.calls(), 1)
}

func TestRun_ConnectivityLostDuringGuidance(t *testing.T) {
	t.Parallel()
	cls := newScripted(answer("Battery"), answer("Hazardous waste point."))
	g := cls.gate(1)
	o := connectivity.NewOracle(true)
	var states []State
	p := newPipeline(cls, o, newFakeClock(), &states)

	done := make(chan model.ScanOutcome, 1)
	go func() { done <- p.Run(context.Background(), "IMG") }()

	<-cls.started
	<-cls.started
	o.Set(false)
	close(g)

	require.Equal(t, model.OutcomeOfflineInterrupted, (<-done).Kind)
}

func TestRun_OfflineAtCaptureMakesNoCalls(t *testing.T) {
	t.Parallel()
	cls := newScripted(answer("Battery"))
	var states []State
	p := newPipeline(cls, connectivity.NewOracle(false), newFakeClock(), &states)

	require.Equal(t, model.OutcomeOfflineInterrupted, p.Run(context.Background(), "IMG").Kind)
	require.Empty(t, cls.calls())
}

func TestRun_WatchdogForcesTimeout(t *testing.T) {
	t.Parallel()
	cls := newScripted(answer("Battery"))
	g := cls.gate(0)
	clk := newFakeClock()
	var states []State
	p := newPipeline(cls, connectivity.NewOracle(true), clk, &states)

	done := make(chan model.ScanOutcome, 1)
	go func() { done <- p.Run(context.Background(), "IMG") }()

	<-cls.started
	clk.Advance(20 * time.Second)
	clk.fire <- clk.Now()

	out := <-done
	require.Equal(t, model.OutcomeTimedOut, out.Kind)
	require.Equal(t, 20*time.Second, out.Elapsed)

	// late completion of the abandoned call is ignored
	close(g)
	require.Len(t, cls.calls(), 1)
}

func TestRun_WatchdogDuringGuidance(t *testing.T) {
	t.Parallel()
	cls := newScripted(answer("Cardboard"), answer("Blue bin."))
	g := cls.gate(1)
	defer close(g)
	clk := newFakeClock()
	var states []State
	p := newPipeline(cls, connectivity.NewOracle(true), clk, &states)

	done := make(chan model.ScanOutcome, 1)
	go func() { done <- p.Run(context.Background(), "IMG") }()

	<-cls.started
	<-cls.started
	clk.fire <- clk.Now()

	require.Equal(t, model.OutcomeTimedOut, (<-done).Kind)
}

func TestRun_RealTimerTimeout(t *testing.T) {
	t.Parallel()
	cls := newScripted(answer("Battery"))
	g := cls.gate(0)
	defer close(g)
	p := New(cls, catalog.Default, connectivity.NewOracle(true), zap.NewNop(), WithTimeout(20*time.Millisecond))

	require.Equal(t, model.OutcomeTimedOut, p.Run(context.Background(), "IMG").Kind)
}
