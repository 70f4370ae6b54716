package errors_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	app_errors "portfolio-ai/backend/internal/errors"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o deadline" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want app_errors.Kind
	}{
		{"nil", nil, ""},
		{"status 401", &app_errors.HTTPStatusError{StatusCode: http.StatusUnauthorized}, app_errors.KindUnauthorized},
		{"status 403", &app_errors.HTTPStatusError{StatusCode: http.StatusForbidden}, app_errors.KindForbidden},
		{"status 404", &app_errors.HTTPStatusError{StatusCode: http.StatusNotFound}, app_errors.KindNotFound},
		{"status 502", &app_errors.HTTPStatusError{StatusCode: http.StatusBadGateway}, app_errors.KindServerError},
		{"wrapped status", fmt.Errorf("remote: %w", &app_errors.HTTPStatusError{StatusCode: 500}), app_errors.KindServerError},
		{"deadline", context.DeadlineExceeded, app_errors.KindTimeout},
		{"net timeout", timeoutErr{}, app_errors.KindTimeout},
		{"storage", fmt.Errorf("availability: %w", app_errors.ErrStorageUnavailable), app_errors.KindStorageUnavailable},
		{"serialization", app_errors.ErrSerialization, app_errors.KindSerializationFailure},
		{"text timeout", errors.New("Request timeout after 10000ms"), app_errors.KindTimeout},
		{"text 404", errors.New("HTTP 404: Not Found"), app_errors.KindNotFound},
		{"refused", errors.New("dial tcp: connection refused"), app_errors.KindNetwork},
		{"other", errors.New("boom"), app_errors.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, app_errors.Classify(tt.err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "İstek zaman aşımına uğradı. Lütfen tekrar deneyin.", app_errors.UserMessage(app_errors.KindTimeout))
	assert.Equal(t, app_errors.UserMessage(app_errors.KindUnknown), app_errors.UserMessage("made-up"))
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, app_errors.IsRetryable(&app_errors.HTTPStatusError{StatusCode: http.StatusNotFound}))
	assert.False(t, app_errors.IsRetryable(context.Canceled))
	assert.True(t, app_errors.IsRetryable(&app_errors.HTTPStatusError{StatusCode: http.StatusServiceUnavailable}))
	assert.True(t, app_errors.IsRetryable(errors.New("connection reset")))
}

func TestQuotaError(t *testing.T) {
	err := fmt.Errorf("send: %w", &app_errors.QuotaError{Reason: "limit", Count: 3, Limit: 3})
	assert.ErrorIs(t, err, app_errors.ErrQuotaExceeded)

	var qe *app_errors.QuotaError
	assert.True(t, errors.As(err, &qe))
	assert.Equal(t, 3, qe.Limit)
}
