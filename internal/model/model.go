package model

import (
	"encoding/json"
	"time"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatMessage is a single turn of a conversation. A history is an append-only
// slice where insertion order is chronological order.
type ChatMessage struct {
	Role      string    `json:"role" validate:"required,oneof=user assistant system"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// User is the signed-in visitor as persisted in the durable store.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	ImageURL   *string   `json:"imageUrl"`
	CreatedAt  time.Time `json:"createdAt"`
	LastSignIn time.Time `json:"lastSignIn"`
}

// Account is a registered user together with the credential hash.
type Account struct {
	User         User   `json:"user"`
	PasswordHash []byte `json:"passwordHash"`
}

// Preferences are per-visitor application settings.
type Preferences struct {
	Theme         string `json:"theme" validate:"required,oneof=light dark"`
	Language      string `json:"language" validate:"required,oneof=tr en"`
	Notifications bool   `json:"notifications"`
}

// DefaultPreferences is returned when a visitor has not saved any.
func DefaultPreferences() Preferences {
	return Preferences{Theme: "light", Language: "tr", Notifications: true}
}

// Usage mirrors the token accounting block of chat completion APIs.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatReply is the response of the reply endpoint.
type ChatReply struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Success   bool      `json:"success"`
	Model     string    `json:"model"`
	Usage     Usage     `json:"usage"`
}

// ConversationSummary aggregates a history.
type ConversationSummary struct {
	TotalMessages int   `json:"totalMessages"`
	UserMessages  int   `json:"userMessages"`
	AIMessages    int   `json:"aiMessages"`
	DurationMs    int64 `json:"durationMs"`
}

// OutboxEmail is a mock e-mail recorded instead of being delivered.
type OutboxEmail struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	Status    string          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
}

// Analytics event types.
const (
	EventTypePageView = "page_view"
	EventTypeEvent    = "event"
)

// AnalyticsEvent is one tracked visitor interaction. Page views carry Page
// and Title; custom events carry Category and Action.
type AnalyticsEvent struct {
	Type      string    `json:"type"`
	Category  string    `json:"category,omitempty"`
	Action    string    `json:"action,omitempty"`
	Label     string    `json:"label,omitempty"`
	Value     *float64  `json:"value,omitempty"`
	Page      string    `json:"page,omitempty"`
	Title     string    `json:"title,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EventStats aggregates a visitor's tracked events.
type EventStats struct {
	Total      int            `json:"total"`
	ByType     map[string]int `json:"byType"`
	ByCategory map[string]int `json:"byCategory"`
	ByAction   map[string]int `json:"byAction"`
	Today      int            `json:"today"`
	ThisWeek   int            `json:"thisWeek"`
	ThisMonth  int            `json:"thisMonth"`
}

// AnalyticsExport is the downloadable dump of a visitor's events.
type AnalyticsExport struct {
	Events       []AnalyticsEvent `json:"events"`
	SessionID    string           `json:"sessionId"`
	UserID       string           `json:"userId,omitempty"`
	PageViews    int              `json:"pageViews"`
	TotalEvents  int              `json:"totalEvents"`
	SessionStart *time.Time       `json:"sessionStart,omitempty"`
	LastActivity *time.Time       `json:"lastActivity,omitempty"`
}
