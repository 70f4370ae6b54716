package storage

import (
	"context"
	"time"

	"portfolio-ai/backend/internal/model"
)

// Fixed keys of the convenience accessors.
const (
	KeyUser              = "user"
	KeyAuthToken         = "auth_token"
	KeyChatHistory       = "chat_history"
	KeyGuestMessageCount = "guest_message_count"
	KeyPreferences       = "app_preferences"
	KeyEmailQueue        = "email_queue"
	KeyAnalyticsEvents   = "analytics_events"
	tempKeyPrefix        = "temp_"
	formKeyPrefix        = "form_"
)

// GuestUsageCounter tracks how many messages a guest has sent in the current
// quota window.
type GuestUsageCounter struct {
	Count       int       `json:"count"`
	WindowStart time.Time `json:"windowStart"`
}

// AppStore groups the accessors the site needs for one visitor: Durable
// outlives the session, Ephemeral is the per-session scope.
type AppStore struct {
	Durable   Store
	Ephemeral Store
}

func NewAppStore(durable, ephemeral Store) *AppStore {
	return &AppStore{Durable: durable, Ephemeral: ephemeral}
}

// User

func (a *AppStore) SetUser(ctx context.Context, u model.User) bool {
	return a.Durable.SetItem(ctx, KeyUser, u)
}

func (a *AppStore) User(ctx context.Context) *model.User {
	return Get[*model.User](ctx, a.Durable, KeyUser, nil)
}

// ClearUser removes the user record together with its token.
func (a *AppStore) ClearUser(ctx context.Context) {
	a.Durable.RemoveItem(ctx, KeyUser)
	a.Durable.RemoveItem(ctx, KeyAuthToken)
}

func (a *AppStore) SetAuthToken(ctx context.Context, token string) bool {
	return a.Durable.SetItem(ctx, KeyAuthToken, token)
}

func (a *AppStore) AuthToken(ctx context.Context) string {
	return Get(ctx, a.Durable, KeyAuthToken, "")
}

// Chat history

func (a *AppStore) SetChatHistory(ctx context.Context, messages []model.ChatMessage) bool {
	return a.Durable.SetItem(ctx, KeyChatHistory, messages)
}

func (a *AppStore) ChatHistory(ctx context.Context) []model.ChatMessage {
	return Get(ctx, a.Durable, KeyChatHistory, []model.ChatMessage{})
}

func (a *AppStore) ClearChatHistory(ctx context.Context) {
	a.Durable.RemoveItem(ctx, KeyChatHistory)
}

// Guest counter

func (a *AppStore) SetGuestMessageCount(ctx context.Context, c GuestUsageCounter) bool {
	return a.Ephemeral.SetItem(ctx, KeyGuestMessageCount, c)
}

func (a *AppStore) GuestMessageCount(ctx context.Context) GuestUsageCounter {
	return Get(ctx, a.Ephemeral, KeyGuestMessageCount, GuestUsageCounter{})
}

func (a *AppStore) ClearGuestMessageCount(ctx context.Context) {
	a.Ephemeral.RemoveItem(ctx, KeyGuestMessageCount)
}

// Preferences

func (a *AppStore) SetPreferences(ctx context.Context, p model.Preferences) bool {
	return a.Durable.SetItem(ctx, KeyPreferences, p)
}

func (a *AppStore) Preferences(ctx context.Context) model.Preferences {
	return Get(ctx, a.Durable, KeyPreferences, model.DefaultPreferences())
}

// Temporary values live in the session scope.

func (a *AppStore) SetTemp(ctx context.Context, key string, data any) bool {
	return a.Ephemeral.SetItem(ctx, tempKeyPrefix+key, data)
}

func (a *AppStore) Temp(ctx context.Context, key string, def any) any {
	return a.Ephemeral.GetItem(ctx, tempKeyPrefix+key, def)
}

func (a *AppStore) ClearTemp(ctx context.Context, key string) {
	a.Ephemeral.RemoveItem(ctx, tempKeyPrefix+key)
}

// Form drafts

func (a *AppStore) SaveFormData(ctx context.Context, formID string, data map[string]any) bool {
	return a.Durable.SetItem(ctx, formKeyPrefix+formID, data)
}

func (a *AppStore) FormData(ctx context.Context, formID string) map[string]any {
	return Get[map[string]any](ctx, a.Durable, formKeyPrefix+formID, nil)
}

func (a *AppStore) ClearFormData(ctx context.Context, formID string) {
	a.Durable.RemoveItem(ctx, formKeyPrefix+formID)
}

// Outbox

func (a *AppStore) SetEmailQueue(ctx context.Context, emails []model.OutboxEmail) bool {
	return a.Durable.SetItem(ctx, KeyEmailQueue, emails)
}

func (a *AppStore) EmailQueue(ctx context.Context) []model.OutboxEmail {
	return Get(ctx, a.Durable, KeyEmailQueue, []model.OutboxEmail{})
}

func (a *AppStore) ClearEmailQueue(ctx context.Context) {
	a.Durable.RemoveItem(ctx, KeyEmailQueue)
}

// Analytics

func (a *AppStore) SetAnalyticsEvents(ctx context.Context, events []model.AnalyticsEvent) bool {
	return a.Durable.SetItem(ctx, KeyAnalyticsEvents, events)
}

func (a *AppStore) AnalyticsEvents(ctx context.Context) []model.AnalyticsEvent {
	return Get(ctx, a.Durable, KeyAnalyticsEvents, []model.AnalyticsEvent{})
}

func (a *AppStore) ClearAnalyticsEvents(ctx context.Context) {
	a.Durable.RemoveItem(ctx, KeyAnalyticsEvents)
}
