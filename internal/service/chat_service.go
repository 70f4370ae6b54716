package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	app_errors "portfolio-ai/backend/internal/errors"
	"portfolio-ai/backend/internal/llm"
	"portfolio-ai/backend/internal/metrics"
	"portfolio-ai/backend/internal/model"
	"portfolio-ai/backend/internal/quota"
	"portfolio-ai/backend/internal/responder"
	"portfolio-ai/backend/internal/storage"
)

// ApologyMessage replaces the assistant reply when the provider fails.
const ApologyMessage = "Üzgünüm, şu anda yanıt veremiyorum. Lütfen daha sonra tekrar deneyin."

// Authenticator tells signed-in visitors apart from guests.
type Authenticator interface {
	IsAuthenticated(ctx context.Context, scope storage.Scope) bool
}

// SendMessageRequest is the structure for a new message from the client.
type SendMessageRequest struct {
	Content  string         `json:"content" validate:"required" example:"Web sitesi fiyatı ne kadar?"`
	UserInfo map[string]any `json:"userInfo,omitempty"`
}

// SendMessageResult is what a visitor gets back for an accepted message.
// Fallback is set when Reply is the apology message; Notice then explains
// the failure in the visitor's language.
type SendMessageResult struct {
	UserMessage model.ChatMessage `json:"userMessage"`
	Reply       model.ChatMessage `json:"reply"`
	Fallback    bool              `json:"fallback"`
	ErrorKind   app_errors.Kind   `json:"errorKind,omitempty"`
	Notice      string            `json:"notice,omitempty"`
	Usage       *model.Usage      `json:"usage,omitempty"`
	Quota       *quota.Decision   `json:"quota,omitempty"`
}

// QuotaStatus describes the visitor's remaining allowance.
type QuotaStatus struct {
	Authenticated bool            `json:"authenticated"`
	Guest         *quota.Decision `json:"guest,omitempty"`
}

// ClassifyResult exposes how a text would be routed.
type ClassifyResult struct {
	Category responder.Category   `json:"category"`
	Matches  []responder.Category `json:"matches"`
}

type ChatService struct {
	stores           *storage.Stores
	llm              llm.LLMProvider
	quota            *quota.Policy
	auth             Authenticator
	maxMessageLength int
	now              func() time.Time
}

func NewChatService(stores *storage.Stores, llmProvider llm.LLMProvider, policy *quota.Policy, auth Authenticator, maxMessageLength int) *ChatService {
	return &ChatService{
		stores:           stores,
		llm:              llmProvider,
		quota:            policy,
		auth:             auth,
		maxMessageLength: maxMessageLength,
		now:              time.Now,
	}
}

// SendMessage runs one conversation turn. Guests are checked against the
// quota before anything else happens; a rejected message is neither stored
// nor classified. Provider failures never surface as errors: the apology
// message is stored and returned instead.
func (s *ChatService) SendMessage(ctx context.Context, scope storage.Scope, req *SendMessageRequest) (*SendMessageResult, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: message content cannot be empty", app_errors.ErrValidation)
	}
	if n := utf8.RuneCountInString(content); n > s.maxMessageLength {
		return nil, fmt.Errorf("%w: message is %d characters, the limit is %d", app_errors.ErrValidation, n, s.maxMessageLength)
	}

	app := s.stores.For(scope)
	result := &SendMessageResult{}

	audience := "user"
	if !s.auth.IsAuthenticated(ctx, scope) {
		audience = "guest"
		decision := s.quota.TryAcquire(ctx, scope.EphemeralNamespace(), app.Ephemeral)
		if err := decision.Err(); err != nil {
			return nil, err
		}
		result.Quota = &decision
	}
	metrics.ChatMessagesTotal.WithLabelValues(audience).Inc()

	result.UserMessage = model.ChatMessage{Role: model.RoleUser, Content: content, Timestamp: s.now().UTC()}
	history := append(app.ChatHistory(ctx), result.UserMessage)
	if !app.SetChatHistory(ctx, history) {
		slog.Warn("Chat history not persisted", "visitor", scope.VisitorID)
	}

	reply, err := s.llm.Chat(ctx, &llm.ChatRequest{Messages: history, UserInfo: req.UserInfo})

	// The turn is recorded even if the client went away while waiting.
	persistCtx := context.WithoutCancel(ctx)
	if err != nil {
		kind := app_errors.Classify(err)
		if errors.Is(err, context.Canceled) {
			slog.Info("Reply cancelled by client", "visitor", scope.VisitorID)
		} else {
			slog.Warn("Reply provider failed, sending apology", "visitor", scope.VisitorID, "kind", kind, "error", err)
		}
		metrics.ReplyFallbacksTotal.Inc()
		result.Fallback = true
		result.ErrorKind = kind
		result.Notice = app_errors.UserMessage(kind)
		result.Reply = model.ChatMessage{Role: model.RoleAssistant, Content: ApologyMessage, Timestamp: s.now().UTC()}
	} else {
		result.Reply = model.ChatMessage{Role: model.RoleAssistant, Content: reply.Message, Timestamp: s.now().UTC()}
		usage := reply.Usage
		result.Usage = &usage
	}

	history = append(history, result.Reply)
	if !app.SetChatHistory(persistCtx, history) {
		slog.Warn("Chat history not persisted", "visitor", scope.VisitorID)
	}
	return result, nil
}

// History returns the stored conversation, oldest first.
func (s *ChatService) History(ctx context.Context, scope storage.Scope) []model.ChatMessage {
	return s.stores.For(scope).ChatHistory(ctx)
}

// ClearHistory deletes the stored conversation.
func (s *ChatService) ClearHistory(ctx context.Context, scope storage.Scope) {
	s.stores.For(scope).ClearChatHistory(ctx)
	slog.Info("Chat history cleared", "visitor", scope.VisitorID)
}

// Export renders the conversation as a plain-text transcript and names the
// file after today's date.
func (s *ChatService) Export(ctx context.Context, scope storage.Scope) (filename, transcript string, err error) {
	history := s.History(ctx, scope)
	transcript = FormatTranscript(history)
	if transcript == "" {
		return "", "", app_errors.Public(app_errors.ErrNotFound, "Dışa aktarılacak mesaj bulunamadı.")
	}
	return ExportFilename(s.now()), transcript, nil
}

// Summary counts the messages of the conversation.
func (s *ChatService) Summary(ctx context.Context, scope storage.Scope) model.ConversationSummary {
	return Summarize(s.History(ctx, scope))
}

// Quota reports the visitor's allowance without consuming any of it.
func (s *ChatService) Quota(ctx context.Context, scope storage.Scope) QuotaStatus {
	if s.auth.IsAuthenticated(ctx, scope) {
		return QuotaStatus{Authenticated: true}
	}
	d := s.quota.Check(ctx, s.stores.For(scope).Ephemeral)
	return QuotaStatus{Guest: &d}
}

// Classify shows which category a text falls into and which others it
// also matched.
func (s *ChatService) Classify(text string) ClassifyResult {
	return ClassifyResult{Category: responder.Classify(text), Matches: responder.Matches(text)}
}
