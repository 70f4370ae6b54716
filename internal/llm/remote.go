package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	app_errors "portfolio-ai/backend/internal/errors"
	"portfolio-ai/backend/internal/metrics"
	"portfolio-ai/backend/internal/model"
)

type remoteProvider struct {
	client *http.Client
	url    string
}

// NewRemoteProvider posts conversations to a chat endpoint speaking the
// {messages, userInfo} protocol, such as this server's own /api/chat.
func NewRemoteProvider(url string, timeout time.Duration) LLMProvider {
	return &remoteProvider{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (p *remoteProvider) Chat(ctx context.Context, req *ChatRequest) (*model.ChatReply, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := p.client.Do(httpReq)
	metrics.RemoteReplyLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		statusErr := &app_errors.HTTPStatusError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
		var eb errorBody
		if json.Unmarshal(bodyBytes, &eb) == nil && eb.Message != "" {
			statusErr.Body = eb.Message
		}
		return nil, statusErr
	}

	var reply model.ChatReply
	if err := json.Unmarshal(bodyBytes, &reply); err != nil {
		return nil, fmt.Errorf("%w: could not decode reply: %v", app_errors.ErrSerialization, err)
	}
	if !reply.Success || reply.Message == "" {
		return nil, fmt.Errorf("remote endpoint returned an unsuccessful reply")
	}
	return &reply, nil
}
