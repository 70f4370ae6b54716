package app

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-ai/backend/internal/config"
	"portfolio-ai/backend/internal/service"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		AppPort:            8000,
		LogLevel:           "DEBUG",
		DatabasePath:       filepath.Join(t.TempDir(), "portfolio.db"),
		DurableBackend:     config.BackendSQLite,
		EphemeralBackend:   config.BackendMemory,
		MaxGuestMessages:   3,
		MaxMessageLength:   1000,
		ChatProvider:       config.ProviderLocal,
		ChatModelName:      "mock-gpt-4",
		CORSAllowedOrigins: []string{"*"},
	}
}

func TestNewApp(t *testing.T) {
	t.Run("SQLite durable store", func(t *testing.T) {
		app, err := NewApp(testConfig(t))
		require.NoError(t, err)
		require.NotNil(t, app)
		defer app.Close()

		assert.NotNil(t, app.DB)
		assert.Nil(t, app.Redis)
		assert.NotNil(t, app.Server)
		assert.Equal(t, ":8000", app.Server.Addr)
		assert.True(t, app.Stores.Durable.Available())
		assert.False(t, app.Stores.Ephemeral.Available())

		accounts := app.Stores.Shared("accounts")
		assert.True(t, accounts.HasItem(context.Background(), "email:"+service.DemoEmail))
	})

	t.Run("Serves the API", func(t *testing.T) {
		app, err := NewApp(testConfig(t))
		require.NoError(t, err)
		defer app.Close()

		rr := httptest.NewRecorder()
		app.Server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages",
			strings.NewReader(`{"content":"merhaba"}`)))
		assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	})

	t.Run("Memory only", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.DurableBackend = config.BackendMemory

		app, err := NewApp(cfg)
		require.NoError(t, err)
		defer app.Close()

		assert.Nil(t, app.DB)
		assert.False(t, app.Stores.Durable.Available())
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
