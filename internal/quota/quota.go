// Package quota limits how many messages an unauthenticated visitor may send.
package quota

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	app_errors "portfolio-ai/backend/internal/errors"
	"portfolio-ai/backend/internal/metrics"
	"portfolio-ai/backend/internal/storage"
)

// State of a guest's quota.
type State string

const (
	StateOpen    State = "OPEN"
	StateLimited State = "LIMITED"
)

const lockStripes = 64

// Decision is the result of checking a guest's counter against the limit.
type Decision struct {
	Allowed   bool   `json:"allowed"`
	Reason    string `json:"reason,omitempty"`
	Count     int    `json:"count"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
	State     State  `json:"state"`
	// ResetsAt is set when a time window is configured and running.
	ResetsAt *time.Time `json:"resetsAt,omitempty"`
}

// Err returns a *QuotaError for a rejected decision and nil otherwise.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &app_errors.QuotaError{Reason: d.Reason, Count: d.Count, Limit: d.Limit}
}

// Policy holds the limit and the optional window. Counters live in the
// visitor's ephemeral store under storage.KeyGuestMessageCount.
type Policy struct {
	max    int
	window time.Duration
	now    func() time.Time
	locks  [lockStripes]sync.Mutex
}

// NewPolicy returns a policy allowing max messages per window. A zero window
// never resets the counter on its own; only Reset does.
func NewPolicy(max int, window time.Duration) *Policy {
	return &Policy{max: max, window: window, now: time.Now}
}

// WithClock replaces the time source. Used by tests.
func (p *Policy) WithClock(now func() time.Time) *Policy {
	p.now = now
	return p
}

// Limit is the maximum number of accepted guest messages.
func (p *Policy) Limit() int { return p.max }

// Check reads the counter and compares it to the limit. It never writes.
func (p *Policy) Check(ctx context.Context, s storage.Store) Decision {
	return p.decide(p.current(ctx, s))
}

// RecordAccepted adds exactly one to the counter.
func (p *Policy) RecordAccepted(ctx context.Context, s storage.Store) (storage.GuestUsageCounter, error) {
	c := p.current(ctx, s)
	if c.Count == 0 || c.WindowStart.IsZero() {
		c.WindowStart = p.now().UTC()
	}
	c.Count++
	if !s.SetItem(ctx, storage.KeyGuestMessageCount, c) {
		return c, fmt.Errorf("%w: could not persist guest counter", app_errors.ErrStorageUnavailable)
	}
	return c, nil
}

// TryAcquire checks and records in one step, serialized per namespace, so two
// concurrent sends of one session cannot both take the last slot. A counter
// that cannot be persisted does not block the message.
func (p *Policy) TryAcquire(ctx context.Context, namespace string, s storage.Store) Decision {
	mu := p.lockFor(namespace)
	mu.Lock()
	defer mu.Unlock()

	d := p.Check(ctx, s)
	if !d.Allowed {
		metrics.QuotaRejectionsTotal.Inc()
		slog.Info("Guest message rejected", "namespace", namespace, "count", d.Count, "limit", d.Limit)
		return d
	}

	c, err := p.RecordAccepted(ctx, s)
	if err != nil {
		slog.Warn("Guest counter not updated, allowing message", "namespace", namespace, "error", err)
		return d
	}
	return p.decideAfterAccept(c)
}

// Reset clears the counter, returning a LIMITED guest to OPEN.
func (p *Policy) Reset(ctx context.Context, s storage.Store) {
	s.RemoveItem(ctx, storage.KeyGuestMessageCount)
}

// current returns the stored counter, or a fresh one if the window elapsed.
func (p *Policy) current(ctx context.Context, s storage.Store) storage.GuestUsageCounter {
	c := storage.Get(ctx, s, storage.KeyGuestMessageCount, storage.GuestUsageCounter{})
	if p.window > 0 && !c.WindowStart.IsZero() && !p.now().Before(c.WindowStart.Add(p.window)) {
		return storage.GuestUsageCounter{}
	}
	return c
}

func (p *Policy) decide(c storage.GuestUsageCounter) Decision {
	d := Decision{
		Allowed:   c.Count < p.max,
		Count:     c.Count,
		Limit:     p.max,
		Remaining: max(p.max-c.Count, 0),
		State:     StateOpen,
	}
	if p.window > 0 && !c.WindowStart.IsZero() {
		resetsAt := c.WindowStart.Add(p.window)
		d.ResetsAt = &resetsAt
	}
	if !d.Allowed {
		d.State = StateLimited
		d.Reason = fmt.Sprintf("Misafir modunda en fazla %d mesaj gönderebilirsiniz. Daha fazla konuşmak için giriş yapın.", p.max)
	}
	return d
}

// decideAfterAccept reports the accepted message as allowed and the state
// the counter is now in.
func (p *Policy) decideAfterAccept(c storage.GuestUsageCounter) Decision {
	d := p.decide(c)
	d.Allowed = true
	d.Reason = ""
	return d
}

func (p *Policy) lockFor(namespace string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(namespace))
	return &p.locks[h.Sum32()%lockStripes]
}
