package quota_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "portfolio-ai/backend/internal/errors"
	"portfolio-ai/backend/internal/quota"
	"portfolio-ai/backend/internal/storage"
)

func TestPolicy_CheckAndRecord(t *testing.T) {
	ctx := context.Background()
	s := storage.NewInMemoryStore("ephemeral")
	p := quota.NewPolicy(3, 0)

	d := p.Check(ctx, s)
	assert.True(t, d.Allowed)
	assert.Equal(t, quota.StateOpen, d.State)
	assert.Equal(t, 3, d.Remaining)
	assert.Empty(t, d.Reason)

	for i := 1; i <= 3; i++ {
		assert.True(t, p.Check(ctx, s).Allowed, "before message %d", i)
		c, err := p.RecordAccepted(ctx, s)
		require.NoError(t, err)
		assert.Equal(t, i, c.Count)
	}

	d = p.Check(ctx, s)
	assert.False(t, d.Allowed)
	assert.Equal(t, quota.StateLimited, d.State)
	assert.Equal(t, 0, d.Remaining)
	assert.NotEmpty(t, d.Reason)

	// A 4th record does not reopen the quota.
	_, err := p.RecordAccepted(ctx, s)
	require.NoError(t, err)
	assert.False(t, p.Check(ctx, s).Allowed)
}

func TestPolicy_CheckDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	s := storage.NewInMemoryStore("ephemeral")
	p := quota.NewPolicy(3, 0)

	for i := 0; i < 5; i++ {
		p.Check(ctx, s)
	}
	assert.False(t, s.HasItem(ctx, storage.KeyGuestMessageCount))
}

func TestPolicy_TryAcquire(t *testing.T) {
	ctx := context.Background()
	s := storage.NewInMemoryStore("ephemeral")
	p := quota.NewPolicy(3, 0)

	for i := 1; i <= 3; i++ {
		d := p.TryAcquire(ctx, "session:1", s)
		require.True(t, d.Allowed, "message %d", i)
		assert.Equal(t, i, d.Count)
		assert.NoError(t, d.Err())
	}

	d := p.TryAcquire(ctx, "session:1", s)
	assert.False(t, d.Allowed)
	assert.Equal(t, 3, d.Count)

	var qe *app_errors.QuotaError
	require.True(t, errors.As(d.Err(), &qe))
	assert.Equal(t, d.Reason, qe.Reason)
	assert.ErrorIs(t, d.Err(), app_errors.ErrQuotaExceeded)
}

func TestPolicy_TryAcquireConcurrent(t *testing.T) {
	ctx := context.Background()
	s := storage.NewInMemoryStore("ephemeral")
	p := quota.NewPolicy(3, 0)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if p.TryAcquire(ctx, "session:race", s).Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, allowed)
	assert.Equal(t, 3, storage.Get(ctx, s, storage.KeyGuestMessageCount, storage.GuestUsageCounter{}).Count)
}

func TestPolicy_Reset(t *testing.T) {
	ctx := context.Background()
	s := storage.NewInMemoryStore("ephemeral")
	p := quota.NewPolicy(1, 0)

	require.True(t, p.TryAcquire(ctx, "session:1", s).Allowed)
	require.False(t, p.Check(ctx, s).Allowed)

	p.Reset(ctx, s)

	d := p.Check(ctx, s)
	assert.True(t, d.Allowed)
	assert.Equal(t, quota.StateOpen, d.State)
}

func TestPolicy_Window(t *testing.T) {
	ctx := context.Background()
	s := storage.NewInMemoryStore("ephemeral")
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	p := quota.NewPolicy(2, time.Hour).WithClock(func() time.Time { return now })

	require.True(t, p.TryAcquire(ctx, "session:1", s).Allowed)
	now = now.Add(30 * time.Minute)
	require.True(t, p.TryAcquire(ctx, "session:1", s).Allowed)
	assert.False(t, p.TryAcquire(ctx, "session:1", s).Allowed)

	// The window opened at the first message, so it closes at 11:00.
	now = now.Add(30 * time.Minute)
	d := p.Check(ctx, s)
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.Count)

	d = p.TryAcquire(ctx, "session:1", s)
	require.True(t, d.Allowed)
	assert.Equal(t, 1, d.Count)
}

func TestPolicy_ZeroWindowNeverExpires(t *testing.T) {
	ctx := context.Background()
	s := storage.NewInMemoryStore("ephemeral")
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	p := quota.NewPolicy(1, 0).WithClock(func() time.Time { return now })

	require.True(t, p.TryAcquire(ctx, "session:1", s).Allowed)
	now = now.Add(365 * 24 * time.Hour)
	assert.False(t, p.Check(ctx, s).Allowed)
}
