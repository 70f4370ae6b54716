// Package llm produces assistant replies, either locally from the keyword
// responder or by calling a remote chat endpoint.
package llm

import (
	"context"
	"time"
	"unicode/utf16"

	"portfolio-ai/backend/internal/model"
)

// ChatRequest is the body of the chat endpoint.
type ChatRequest struct {
	Messages []model.ChatMessage `json:"messages" validate:"required,min=1,dive"`
	UserInfo map[string]any      `json:"userInfo,omitempty"`
}

// LastContent returns the content of the final message, which is the one
// being answered.
func (r *ChatRequest) LastContent() string {
	if r == nil || len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[len(r.Messages)-1].Content
}

// LLMProvider defines the interface for producing a reply to a conversation.
type LLMProvider interface {
	Chat(ctx context.Context, req *ChatRequest) (*model.ChatReply, error)
}

// ProviderFunc adapts a function to LLMProvider.
type ProviderFunc func(ctx context.Context, req *ChatRequest) (*model.ChatReply, error)

func (f ProviderFunc) Chat(ctx context.Context, req *ChatRequest) (*model.ChatReply, error) {
	return f(ctx, req)
}

// usageFor counts characters the way a browser's String.length does.
func usageFor(prompt, completion string) model.Usage {
	p := len(utf16.Encode([]rune(prompt)))
	c := len(utf16.Encode([]rune(completion)))
	return model.Usage{PromptTokens: p, CompletionTokens: c, TotalTokens: p + c}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
