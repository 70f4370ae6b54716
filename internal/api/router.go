package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "portfolio-ai/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Chat      *ChatHandler
	Auth      *AuthHandler
	Site      *SiteHandler
	Reply     *ReplyHandler
	Analytics *AnalyticsHandler
}

// ReplyPath is the stateless reply endpoint. It is open to every origin
// whatever the site's CORS settings are.
const ReplyPath = "/api/chat"

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(h Handlers, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(Metrics)

	// CORS runs before routing so preflights reach it for every path.
	r.Use(corsByPath(allowedOrigins))

	// --- Public Routes ---
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Stateless reply endpoint. It answers OPTIONS and rejects other
	// methods itself, so it is registered for every method.
	r.HandleFunc(ReplyPath, h.Reply.HandleChat)

	// --- API Version 1 Routes ---
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(Identity)
		r.Use(middleware.Timeout(60 * time.Second))

		// --- Chat ---
		r.Post("/chat/messages", h.Chat.HandleSendMessage)
		r.Get("/chat/history", h.Chat.GetHistory)
		r.Delete("/chat/history", h.Chat.ClearHistory)
		r.Get("/chat/export", h.Chat.ExportHistory)
		r.Get("/chat/summary", h.Chat.GetSummary)
		r.Get("/chat/quota", h.Chat.GetQuota)
		r.Post("/chat/classify", h.Chat.HandleClassify)
		r.Post("/chat/transcript", h.Chat.HandleEmailTranscript)

		// --- Auth ---
		r.Post("/auth/sign-in", h.Auth.HandleSignIn)
		r.Post("/auth/sign-up", h.Auth.HandleSignUp)
		r.Post("/auth/sign-out", h.Auth.HandleSignOut)
		r.Get("/auth/me", h.Auth.GetCurrentUser)
		r.Put("/auth/me", h.Auth.UpdateProfile)

		// --- Site ---
		r.Get("/preferences", h.Site.GetPreferences)
		r.Put("/preferences", h.Site.UpdatePreferences)
		r.Get("/forms/{formID}", h.Site.GetFormDraft)
		r.Put("/forms/{formID}", h.Site.SaveFormDraft)
		r.Delete("/forms/{formID}", h.Site.ClearFormDraft)
		r.Get("/temp/{key}", h.Site.GetTempValue)
		r.Put("/temp/{key}", h.Site.SetTempValue)
		r.Delete("/temp/{key}", h.Site.ClearTempValue)
		r.Post("/contact", h.Site.HandleContact)
		r.Get("/outbox", h.Site.GetOutbox)
		r.Delete("/outbox", h.Site.ClearOutbox)
		r.Delete("/session", h.Site.EndSession)
		r.Get("/storage/stats", h.Site.GetStorageStats)

		// --- Analytics ---
		r.Post("/analytics/events", h.Analytics.HandleTrack)
		r.Get("/analytics/stats", h.Analytics.GetStats)
		r.Get("/analytics", h.Analytics.ExportData)
		r.Delete("/analytics", h.Analytics.ClearData)
	})

	return r
}

// corsByPath applies the configured origins to the site API and an
// allow-all policy to the reply endpoint.
func corsByPath(allowedOrigins []string) func(http.Handler) http.Handler {
	site := cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", VisitorIDHeader, SessionIDHeader},
		ExposedHeaders:   []string{VisitorIDHeader, SessionIDHeader, "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	})
	open := cors.AllowAll().Handler

	return func(next http.Handler) http.Handler {
		siteNext, openNext := site(next), open(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == ReplyPath {
				openNext.ServeHTTP(w, r)
				return
			}
			siteNext.ServeHTTP(w, r)
		})
	}
}
