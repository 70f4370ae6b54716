package storage

import "context"

// Scope identifies whose data a request touches. VisitorID selects the
// durable namespace and SessionID the ephemeral one.
type Scope struct {
	VisitorID string
	SessionID string
}

func (s Scope) DurableNamespace() string   { return "visitor:" + s.VisitorID }
func (s Scope) EphemeralNamespace() string { return "session:" + s.SessionID }

// Stores pairs the durable and ephemeral providers of the application.
type Stores struct {
	Durable   *Provider
	Ephemeral *Provider
}

func NewStores(durable, ephemeral *Provider) *Stores {
	return &Stores{Durable: durable, Ephemeral: ephemeral}
}

// For returns the stores of one visitor and session.
func (s *Stores) For(scope Scope) *AppStore {
	return NewAppStore(
		s.Durable.Store(scope.DurableNamespace()),
		s.Ephemeral.Store(scope.EphemeralNamespace()),
	)
}

// Shared returns a durable store not tied to any visitor, such as the
// account registry.
func (s *Stores) Shared(namespace string) Store {
	return s.Durable.Store(namespace)
}

// EndSession drops everything held for the scope's session.
func (s *Stores) EndSession(ctx context.Context, scope Scope) bool {
	return s.Ephemeral.Drop(ctx, scope.EphemeralNamespace())
}

// Stats describes the stores of one scope.
type Stats struct {
	DurableAvailable   bool     `json:"durableAvailable"`
	EphemeralAvailable bool     `json:"ephemeralAvailable"`
	DurableKeys        []string `json:"durableKeys"`
	EphemeralKeys      []string `json:"ephemeralKeys"`
	DurableSize        int      `json:"durableSize"`
	EphemeralSize      int      `json:"ephemeralSize"`
}

func (s *Stores) Stats(ctx context.Context, scope Scope) Stats {
	app := s.For(scope)
	return Stats{
		DurableAvailable:   app.Durable.Available(),
		EphemeralAvailable: app.Ephemeral.Available(),
		DurableKeys:        app.Durable.Keys(ctx),
		EphemeralKeys:      app.Ephemeral.Keys(ctx),
		DurableSize:        app.Durable.Size(ctx),
		EphemeralSize:      app.Ephemeral.Size(ctx),
	}
}

// NewMemoryStores returns stores with no substrate at all. Useful for tests
// and for running without any backend.
func NewMemoryStores(ctx context.Context) *Stores {
	return NewStores(NewProvider(ctx, "durable", nil, 0), NewProvider(ctx, "ephemeral", nil, 0))
}
