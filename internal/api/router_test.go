package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio-ai/backend/internal/api"
	"portfolio-ai/backend/internal/llm"
	"portfolio-ai/backend/internal/quota"
	"portfolio-ai/backend/internal/responder"
	"portfolio-ai/backend/internal/service"
	"portfolio-ai/backend/internal/storage"
)

func TestIdentity(t *testing.T) {
	var seen storage.Scope
	handler := api.Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = api.ScopeFrom(r.Context())
	}))

	t.Run("Generates missing ids", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen.VisitorID)
		assert.NoError(t, err)
		assert.NotEqual(t, seen.VisitorID, seen.SessionID)
		assert.Equal(t, seen.VisitorID, rr.Header().Get(api.VisitorIDHeader))
		assert.Equal(t, seen.SessionID, rr.Header().Get(api.SessionIDHeader))
	})

	t.Run("Keeps valid ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(api.VisitorIDHeader, testScope.VisitorID)
		req.Header.Set(api.SessionIDHeader, testScope.SessionID)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, testScope, seen)
	})

	t.Run("Replaces malformed ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(api.VisitorIDHeader, "../../etc")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.NotEqual(t, "../../etc", seen.VisitorID)
	})
}

func newTestRouter(t *testing.T) http.Handler {
	return newTestRouterWithOrigins(t, []string{"*"})
}

func newTestRouterWithOrigins(t *testing.T, origins []string) http.Handler {
	ctx := context.Background()
	stores := storage.NewMemoryStores(ctx)
	policy := quota.NewPolicy(3, 0)
	auth := service.NewAuthService(stores, policy, bcrypt.MinCost)
	require.NoError(t, auth.EnsureDemoAccount(ctx))
	local := llm.NewLocalProvider(responder.New(nil), "mock-gpt-4", 0)
	email := service.NewEmailService(stores, auth)

	return api.NewRouter(api.Handlers{
		Chat:      api.NewChatHandler(service.NewChatService(stores, local, policy, auth, 1000), email),
		Auth:      api.NewAuthHandler(auth),
		Site:      api.NewSiteHandler(service.NewPreferencesService(stores), service.NewFormService(stores), email, stores),
		Reply:     api.NewReplyHandler(local),
		Analytics: api.NewAnalyticsHandler(service.NewAnalyticsService(stores, auth)),
	}, origins)
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Health", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("Metrics", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "portfolio_http_requests_total")
	})

	t.Run("Reply endpoint is open to any origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"messages":[{"role":"user","content":"merhaba"}]}`))
		req.Header.Set("Origin", "https://example.org")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Temp values round trip", func(t *testing.T) {
		do := func(method, body string) *httptest.ResponseRecorder {
			var req *http.Request
			if body == "" {
				req = httptest.NewRequest(method, "/api/v1/temp/step", nil)
			} else {
				req = httptest.NewRequest(method, "/api/v1/temp/step", strings.NewReader(body))
			}
			req.Header.Set(api.VisitorIDHeader, testScope.VisitorID)
			req.Header.Set(api.SessionIDHeader, testScope.SessionID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			return rr
		}

		assert.Equal(t, http.StatusNotFound, do(http.MethodGet, "").Code)
		assert.Equal(t, http.StatusOK, do(http.MethodPut, `{"value":{"page":2}}`).Code)

		rr := do(http.MethodGet, "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"key":"step","value":{"page":2}}`, rr.Body.String())

		assert.Equal(t, http.StatusOK, do(http.MethodDelete, "").Code)
		assert.Equal(t, http.StatusNotFound, do(http.MethodGet, "").Code)
	})

	t.Run("Analytics track and stats", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analytics/events", strings.NewReader(`{"type":"page_view","page":"/"}`))
		req.Header.Set(api.VisitorIDHeader, testScope.VisitorID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		req = httptest.NewRequest(http.MethodGet, "/api/v1/analytics/stats", nil)
		req.Header.Set(api.VisitorIDHeader, testScope.VisitorID)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"total":1`)
	})

	t.Run("Guest conversation end to end", func(t *testing.T) {
		send := func(content string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", strings.NewReader(`{"content":"`+content+`"}`))
			req.Header.Set(api.VisitorIDHeader, testScope.VisitorID)
			req.Header.Set(api.SessionIDHeader, testScope.SessionID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			return rr
		}

		for i := 0; i < 3; i++ {
			rr := send("merhaba")
			require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
			assert.Equal(t, testScope.VisitorID, rr.Header().Get(api.VisitorIDHeader))
		}

		rr := send("fiyat")
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Contains(t, rr.Body.String(), "Misafir modunda en fazla 3 mesaj")

		req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/export", nil)
		req.Header.Set(api.VisitorIDHeader, testScope.VisitorID)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 3, strings.Count(rr.Body.String(), "Sen: "))
		assert.Equal(t, 3, strings.Count(rr.Body.String(), "\n\nAI: "))
		assert.True(t, strings.HasPrefix(rr.Body.String(), "Sen: merhaba\n\nAI: "))
	})
}

func TestRouter_CORS(t *testing.T) {
	router := newTestRouterWithOrigins(t, []string{"https://site.example"})

	t.Run("Reply endpoint ignores the configured origins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"messages":[{"role":"user","content":"merhaba"}]}`))
		req.Header.Set("Origin", "https://other.example")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Reply endpoint preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
		req.Header.Set("Origin", "https://other.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Site API keeps the configured origins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "https://other.example")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", "https://site.example")
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, "https://site.example", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}
