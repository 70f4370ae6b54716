package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-ai/backend/internal/storage"
)

func TestStores_ScopesAreIsolated(t *testing.T) {
	ctx := context.Background()
	sub := newMapSubstrate()
	stores := storage.NewStores(
		storage.NewProvider(ctx, "durable", sub, 0),
		storage.NewProvider(ctx, "ephemeral", nil, 0),
	)

	a := storage.Scope{VisitorID: "a", SessionID: "s1"}
	b := storage.Scope{VisitorID: "b", SessionID: "s2"}

	require.True(t, stores.For(a).SetAuthToken(ctx, "tok_a"))
	require.True(t, stores.For(a).SetTemp(ctx, "step", "2"))

	assert.Equal(t, "tok_a", stores.For(a).AuthToken(ctx))
	assert.Equal(t, "", stores.For(b).AuthToken(ctx))

	_, found, _ := sub.Get(ctx, "visitor:a:auth_token")
	assert.True(t, found)

	assert.True(t, stores.EndSession(ctx, a))
	assert.Equal(t, "none", stores.For(a).Temp(ctx, "step", "none"))
	// Durable data survives the end of the session.
	assert.Equal(t, "tok_a", stores.For(a).AuthToken(ctx))
}

func TestStores_Stats(t *testing.T) {
	ctx := context.Background()
	stores := storage.NewMemoryStores(ctx)
	scope := storage.Scope{VisitorID: "v", SessionID: "s"}

	require.True(t, stores.For(scope).SetAuthToken(ctx, "tok"))
	require.True(t, stores.Shared("accounts").SetItem(ctx, "x", "y"))

	stats := stores.Stats(ctx, scope)
	assert.False(t, stats.DurableAvailable)
	assert.False(t, stats.EphemeralAvailable)
	assert.Equal(t, []string{storage.KeyAuthToken}, stats.DurableKeys)
	assert.Empty(t, stats.EphemeralKeys)
	assert.Equal(t, len("auth_token")+len("tok"), stats.DurableSize)
}
