// Package health provides liveness and readiness checks with HTTP endpoints.
// Checks run periodically in the background; the endpoints report the last
// known result, so probes stay cheap even when checks are expensive.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// CheckFunc probes one dependency. A nil return means healthy.
type CheckFunc func(ctx context.Context) error

type check struct {
	name    string
	timeout time.Duration
	fn      CheckFunc

	mu      sync.RWMutex
	lastErr error
}

func (c *check) run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	err := c.fn(ctx)

	c.mu.Lock()
	c.lastErr = err
	c.mu.Unlock()
}

func (c *check) err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// Health runs registered checks on an interval and serves their results.
type Health struct {
	mu        sync.Mutex
	liveness  []*check
	readiness []*check
	ready     atomic.Bool
	stop      context.CancelFunc
	done      chan struct{}
}

// New creates an empty Health service. Register checks before calling Start.
func New() *Health {
	return &Health{}
}

// AddLivenessCheck registers a check for the liveness endpoint. A failing
// liveness check means the process should be restarted.
func (h *Health) AddLivenessCheck(name string, timeout time.Duration, fn CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.liveness = append(h.liveness, &check{name: name, timeout: timeout, fn: fn})
}

// AddReadinessCheck registers a check for the readiness endpoint. A failing
// readiness check means the process should not receive traffic.
func (h *Health) AddReadinessCheck(name string, timeout time.Duration, fn CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.readiness = append(h.readiness, &check{name: name, timeout: timeout, fn: fn})
}

// Start runs every registered check once before returning, so endpoints never
// observe unprobed state, and then on the given interval until Stop is called
// or ctx is cancelled.
func (h *Health) Start(ctx context.Context, interval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)
	h.stop = cancel
	h.done = make(chan struct{})

	h.mu.Lock()
	checks := make([]*check, 0, len(h.liveness)+len(h.readiness))
	checks = append(checks, h.liveness...)
	checks = append(checks, h.readiness...)
	h.mu.Unlock()

	for _, c := range checks {
		c.run(ctx)
	}

	go func() {
		defer close(h.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				for _, c := range checks {
					c.run(ctx)
				}
			}
		}
	}()
}

// Stop halts the background check loop.
func (h *Health) Stop() {
	if h.stop != nil {
		h.stop()
		<-h.done
	}
}

// SetReady flips the manual readiness gate. Readiness requires both the gate
// and every readiness check to pass; flipping it to false is how graceful
// shutdown drains traffic before the listener closes.
func (h *Health) SetReady(ready bool) {
	h.ready.Store(ready)
}

// IsReady reports the manual readiness gate.
func (h *Health) IsReady() bool {
	return h.ready.Load()
}

type statusResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// LiveEndpoint serves the liveness probe.
func (h *Health) LiveEndpoint(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	checks := h.liveness
	h.mu.Unlock()
	writeStatus(w, failures(checks))
}

// ReadyEndpoint serves the readiness probe.
func (h *Health) ReadyEndpoint(w http.ResponseWriter, _ *http.Request) {
	h.mu.Lock()
	checks := h.readiness
	h.mu.Unlock()

	failed := failures(checks)
	if !h.ready.Load() {
		failed = map[string]string{"ready": "readiness gate is down"}
	}
	writeStatus(w, failed)
}

func failures(checks []*check) map[string]string {
	var failed map[string]string
	for _, c := range checks {
		if err := c.err(); err != nil {
			if failed == nil {
				failed = make(map[string]string)
			}
			failed[c.name] = err.Error()
		}
	}
	return failed
}

func writeStatus(w http.ResponseWriter, failed map[string]string) {
	resp := statusResponse{Status: "ok"}
	code := http.StatusOK
	if len(failed) > 0 {
		resp.Status = "unavailable"
		resp.Checks = failed
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
