package llm

import (
	"context"
	"log/slog"
	"time"

	app_errors "portfolio-ai/backend/internal/errors"
	"portfolio-ai/backend/internal/model"
)

// Retry calls fn up to attempts times, doubling the wait after each failure
// starting from baseDelay. Errors that cannot improve on retry (401, 403,
// 404, cancellation) are returned at once. Nothing retries by default.
func Retry[T any](ctx context.Context, attempts int, baseDelay time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var (
		result T
		err    error
	)
	attempts = max(attempts, 1)
	delay := baseDelay
	for i := 0; i < attempts; i++ {
		result, err = fn(ctx)
		if err == nil || !app_errors.IsRetryable(err) || i == attempts-1 {
			return result, err
		}
		slog.Debug("Retrying after failure", "attempt", i+1, "delay", delay, "error", err)
		if waitErr := sleep(ctx, delay); waitErr != nil {
			return result, err
		}
		delay *= 2
	}
	return result, err
}

// WithRetry wraps a provider so every Chat call goes through Retry.
func WithRetry(p LLMProvider, attempts int, baseDelay time.Duration) LLMProvider {
	if attempts <= 1 {
		return p
	}
	return ProviderFunc(func(ctx context.Context, req *ChatRequest) (*model.ChatReply, error) {
		return Retry(ctx, attempts, baseDelay, func(ctx context.Context) (*model.ChatReply, error) {
			return p.Chat(ctx, req)
		})
	})
}
