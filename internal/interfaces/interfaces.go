package interfaces

import (
	"context"

	"portfolio-ai/backend/internal/model"
	"portfolio-ai/backend/internal/service"
	"portfolio-ai/backend/internal/storage"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows for
// decoupling (e.g., API layer from Service layer) and easier testing via mocking.

// ChatService defines the contract for the assistant conversation.
type ChatService interface {
	SendMessage(ctx context.Context, scope storage.Scope, req *service.SendMessageRequest) (*service.SendMessageResult, error)
	History(ctx context.Context, scope storage.Scope) []model.ChatMessage
	ClearHistory(ctx context.Context, scope storage.Scope)
	Export(ctx context.Context, scope storage.Scope) (filename, transcript string, err error)
	Summary(ctx context.Context, scope storage.Scope) model.ConversationSummary
	Quota(ctx context.Context, scope storage.Scope) service.QuotaStatus
	Classify(text string) service.ClassifyResult
}

// AuthService defines the contract for the mock identity provider.
type AuthService interface {
	SignIn(ctx context.Context, scope storage.Scope, req *service.SignInRequest) (*service.AuthResult, error)
	SignUp(ctx context.Context, scope storage.Scope, req *service.SignUpRequest) (*service.AuthResult, error)
	SignOut(ctx context.Context, scope storage.Scope)
	CurrentUser(ctx context.Context, scope storage.Scope) (*model.User, error)
	UpdateProfile(ctx context.Context, scope storage.Scope, req *service.UpdateProfileRequest) (*model.User, error)
}

// PreferencesService defines the contract for per-visitor settings.
type PreferencesService interface {
	Get(ctx context.Context, scope storage.Scope) model.Preferences
	Save(ctx context.Context, scope storage.Scope, prefs *model.Preferences) (*model.Preferences, error)
}

// FormService defines the contract for form drafts and session values.
type FormService interface {
	SaveDraft(ctx context.Context, scope storage.Scope, formID string, data map[string]any) error
	Draft(ctx context.Context, scope storage.Scope, formID string) (map[string]any, error)
	ClearDraft(ctx context.Context, scope storage.Scope, formID string)
	SetTemp(ctx context.Context, scope storage.Scope, key string, value any) error
	Temp(ctx context.Context, scope storage.Scope, key string) (any, error)
	ClearTemp(ctx context.Context, scope storage.Scope, key string)
}

// AnalyticsService defines the contract for visitor event tracking.
type AnalyticsService interface {
	Track(ctx context.Context, scope storage.Scope, req *service.TrackEventRequest) (*model.AnalyticsEvent, error)
	Stats(ctx context.Context, scope storage.Scope) model.EventStats
	Export(ctx context.Context, scope storage.Scope) model.AnalyticsExport
	Clear(ctx context.Context, scope storage.Scope)
}

// EmailService defines the contract for the mock outbox.
type EmailService interface {
	SendContactForm(ctx context.Context, scope storage.Scope, req *service.ContactRequest) (*service.EmailResult, error)
	SendChatTranscript(ctx context.Context, scope storage.Scope, userInfo map[string]any) (*service.EmailResult, error)
	Outbox(ctx context.Context, scope storage.Scope) []model.OutboxEmail
	ClearOutbox(ctx context.Context, scope storage.Scope)
}

// SessionStore exposes session lifecycle and storage diagnostics.
type SessionStore interface {
	EndSession(ctx context.Context, scope storage.Scope) bool
	Stats(ctx context.Context, scope storage.Scope) storage.Stats
}
