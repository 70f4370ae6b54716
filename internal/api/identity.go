package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"portfolio-ai/backend/internal/storage"
)

// Identity headers. Clients keep the visitor id across visits and the
// session id for one browsing session; both are echoed on every response.
const (
	VisitorIDHeader = "X-Visitor-ID"
	SessionIDHeader = "X-Session-ID"
)

type scopeKey struct{}

// Identity resolves the visitor and session ids of a request. Missing or
// malformed ids are replaced with fresh ones.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope := storage.Scope{
			VisitorID: idOrNew(r.Header.Get(VisitorIDHeader)),
			SessionID: idOrNew(r.Header.Get(SessionIDHeader)),
		}
		w.Header().Set(VisitorIDHeader, scope.VisitorID)
		w.Header().Set(SessionIDHeader, scope.SessionID)
		next.ServeHTTP(w, r.WithContext(WithScope(r.Context(), scope)))
	})
}

// WithScope stores scope in ctx.
func WithScope(ctx context.Context, scope storage.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

// ScopeFrom returns the scope set by Identity. Requests that bypassed the
// middleware get a throwaway scope so they never share data.
func ScopeFrom(ctx context.Context) storage.Scope {
	if scope, ok := ctx.Value(scopeKey{}).(storage.Scope); ok {
		return scope
	}
	return storage.Scope{VisitorID: uuid.NewString(), SessionID: uuid.NewString()}
}

func idOrNew(id string) string {
	if parsed, err := uuid.Parse(id); err == nil {
		return parsed.String()
	}
	return uuid.NewString()
}
