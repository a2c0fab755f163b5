package subscription

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Gate counts subscribed buyers and holds back readers until the count
// reaches the quorum threshold.
type Gate struct {
	mu        sync.Mutex
	count     int
	threshold int
	// ready is closed while count >= threshold and replaced once the count
	// drops below it again.
	ready     chan struct{}
	listeners []func(ready bool)
}

// NewGate returns a gate for the given quorum. A threshold of zero or less
// disables gating.
func NewGate(threshold int) *Gate {
	if threshold < 0 {
		threshold = 0
	}
	g := &Gate{threshold: threshold, ready: make(chan struct{})}
	if threshold == 0 {
		close(g.ready)
	}

	return g
}

// OnChange registers fn to be called with the new readiness whenever the
// gate opens or closes. fn runs with the gate locked and must not call back
// into it.
func (g *Gate) OnChange(fn func(ready bool)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, fn)
}

// Subscribe reports whether this call brought the count to exactly the
// threshold, along with the count it produced.
func (g *Gate) Subscribe() (bool, int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.count++
	reached := g.count == g.threshold
	log.WithFields(log.Fields{"subscribers": g.count, "quorum": g.threshold}).Info("[Gate] Subscribed")
	if reached {
		close(g.ready)
		log.Info("[Gate] Quorum reached")
		g.notify(true)
	}

	return reached, g.count
}

// Unsubscribe lowers the count, never below zero, and returns the new count.
func (g *Gate) Unsubscribe() (bool, int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.count == 0 {
		return true, 0
	}
	g.count--
	log.WithFields(log.Fields{"subscribers": g.count, "quorum": g.threshold}).Info("[Gate] Unsubscribed")
	if g.count == g.threshold-1 {
		g.ready = make(chan struct{})
		log.Info("[Gate] Quorum lost")
		g.notify(false)
	}

	return true, g.count
}

// AwaitQuorum blocks until the quorum is met or ctx is done.
func (g *Gate) AwaitQuorum(ctx context.Context) error {
	g.mu.Lock()
	ready := g.ready
	g.mu.Unlock()

	select {
	case <-ready:
		return nil
	default:
	}

	log.WithField("quorum", g.threshold).Debug("[Gate] Waiting for quorum")
	select {
	case <-ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *Gate) Ready() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.count >= g.threshold
}

func (g *Gate) Count() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.count
}

func (g *Gate) Threshold() int {
	return g.threshold
}

func (g *Gate) notify(ready bool) {
	for _, fn := range g.listeners {
		fn(ready)
	}
}
