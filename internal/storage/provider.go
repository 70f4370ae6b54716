package storage

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"portfolio-ai/backend/internal/metrics"
)

// Provider hands out namespaced stores over one substrate. The substrate is
// checked once, in NewProvider; every store it returns shares that result.
type Provider struct {
	name      string
	sub       Substrate
	available bool
	idleTTL   time.Duration

	mu       sync.Mutex
	fallback map[string]*InMemoryStore
}

// NewProvider checks sub and logs which variant the provider will hand out.
// idleTTL bounds how long an unused fallback namespace is kept; zero keeps
// fallback data for the life of the provider.
func NewProvider(ctx context.Context, name string, sub Substrate, idleTTL time.Duration) *Provider {
	p := &Provider{
		name:     name,
		sub:      sub,
		idleTTL:  idleTTL,
		fallback: make(map[string]*InMemoryStore),
	}

	if err := CheckAvailability(ctx, sub); err != nil {
		if sub == nil {
			slog.Info("No substrate configured, using in-memory store", "store", name)
		} else {
			slog.Warn("Storage substrate unavailable, using in-memory fallback", "store", name, "error", err)
		}
		metrics.StorageAvailable.WithLabelValues(name).Set(0)
		return p
	}

	p.available = true
	metrics.StorageAvailable.WithLabelValues(name).Set(1)
	slog.Info("Storage substrate ready", "store", name)
	return p
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string { return p.name }

// Available reports the cached availability result.
func (p *Provider) Available() bool { return p.available }

// Store returns the store for namespace.
func (p *Provider) Store(namespace string) Store {
	if p.available {
		return NewRealBackedStore(p.name, p.sub, namespace)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.evictIdleLocked()
	s, ok := p.fallback[namespace]
	if !ok {
		s = NewInMemoryStore(p.name)
		p.fallback[namespace] = s
	}
	return s
}

// Drop forgets a namespace entirely. For substrate-backed providers this is
// the same as clearing the namespace's store.
func (p *Provider) Drop(ctx context.Context, namespace string) bool {
	if p.available {
		return p.Store(namespace).Clear(ctx)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.fallback, namespace)
	return true
}

func (p *Provider) evictIdleLocked() {
	if p.idleTTL <= 0 {
		return
	}
	cutoff := time.Now().Add(-p.idleTTL)
	for ns, s := range p.fallback {
		if s.idleSince().Before(cutoff) {
			delete(p.fallback, ns)
		}
	}
}
