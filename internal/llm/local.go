package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	app_errors "portfolio-ai/backend/internal/errors"
	"portfolio-ai/backend/internal/metrics"
	"portfolio-ai/backend/internal/model"
	"portfolio-ai/backend/internal/responder"
)

type localProvider struct {
	responder *responder.Responder
	model     string
	delay     time.Duration
}

// NewLocalProvider answers from the keyword responder after an artificial
// delay. The delay is cut short when ctx is cancelled.
func NewLocalProvider(r *responder.Responder, modelName string, delay time.Duration) LLMProvider {
	return &localProvider{responder: r, model: modelName, delay: delay}
}

func (p *localProvider) Chat(ctx context.Context, req *ChatRequest) (*model.ChatReply, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, fmt.Errorf("%w: Messages array is required", app_errors.ErrValidation)
	}

	prompt := req.LastContent()
	category, reply := p.responder.Reply(prompt)
	metrics.ReplyCategoriesTotal.WithLabelValues(string(category)).Inc()
	slog.Debug("Local reply selected", "category", category)

	if err := sleep(ctx, p.delay); err != nil {
		return nil, err
	}

	return &model.ChatReply{
		Message:   reply,
		Timestamp: time.Now().UTC(),
		Success:   true,
		Model:     p.model,
		Usage:     usageFor(prompt, reply),
	}, nil
}
