// The `_test` suffix creates a "black box" test package.
// This means the test code lives outside the `api` package and can only access
// its exported identifiers (functions, types, etc.).
package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio-ai/backend/internal/api"
	app_errors "portfolio-ai/backend/internal/errors"
	"portfolio-ai/backend/internal/interfaces/mocks"
	"portfolio-ai/backend/internal/model"
	"portfolio-ai/backend/internal/service"
	"portfolio-ai/backend/internal/storage"
)

var testScope = storage.Scope{
	VisitorID: "6f1c2f4e-7c55-4f44-9a59-1c4f0f3b7a10",
	SessionID: "0b7e3d1a-2a3c-4d5e-8f90-123456789abc",
}

func setupChatHandler(t *testing.T) (*api.ChatHandler, *mocks.MockChatService, *mocks.MockEmailService) {
	mockChatSvc := mocks.NewMockChatService(t)
	mockEmailSvc := mocks.NewMockEmailService(t)
	return api.NewChatHandler(mockChatSvc, mockEmailSvc), mockChatSvc, mockEmailSvc
}

// newRequest builds a request that already carries the test visitor's scope,
// as the Identity middleware would set it.
func newRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(api.WithScope(req.Context(), testScope))
}

// addChiURLParams simulates how the chi router injects URL parameters into
// the request's context.
func addChiURLParams(req *http.Request, params map[string]string) *http.Request {
	chiCtx := chi.NewRouteContext()
	for key, value := range params {
		chiCtx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

func TestChatHandler_HandleSendMessage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		expected := &service.SendMessageResult{
			UserMessage: model.ChatMessage{Role: model.RoleUser, Content: "fiyat"},
			Reply:       model.ChatMessage{Role: model.RoleAssistant, Content: "2.500 TL"},
		}
		mockChatSvc.On("SendMessage", mock.Anything, testScope, mock.MatchedBy(func(r *service.SendMessageRequest) bool {
			return r.Content == "fiyat"
		})).Return(expected, nil).Once()

		req := newRequest(http.MethodPost, "/v1/chat/messages", strings.NewReader(`{"content":"fiyat"}`))
		rr := httptest.NewRecorder()
		handler.HandleSendMessage(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got service.SendMessageResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "2.500 TL", got.Reply.Content)
	})

	t.Run("Failure - Bad JSON", func(t *testing.T) {
		handler, _, _ := setupChatHandler(t)
		req := newRequest(http.MethodPost, "/v1/chat/messages", strings.NewReader(`{"content":`))
		rr := httptest.NewRecorder()
		handler.HandleSendMessage(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid request payload")
	})

	t.Run("Failure - Validation Error", func(t *testing.T) {
		handler, _, _ := setupChatHandler(t)
		req := newRequest(http.MethodPost, "/v1/chat/messages", strings.NewReader(`{"content":""}`))
		rr := httptest.NewRecorder()
		handler.HandleSendMessage(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Field 'content' failed on the 'required' tag")
	})

	t.Run("Failure - Quota exceeded", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		reason := "Misafir modunda en fazla 3 mesaj gönderebilirsiniz. Daha fazla konuşmak için giriş yapın."
		mockChatSvc.On("SendMessage", mock.Anything, testScope, mock.Anything).
			Return(nil, &app_errors.QuotaError{Reason: reason, Count: 3, Limit: 3}).Once()

		req := newRequest(http.MethodPost, "/v1/chat/messages", strings.NewReader(`{"content":"merhaba"}`))
		rr := httptest.NewRecorder()
		handler.HandleSendMessage(rr, req)

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		var body api.QuotaErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, reason, body.Error)
		assert.Equal(t, 3, body.Limit)
	})
}

func TestChatHandler_History(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		history := []model.ChatMessage{{Role: model.RoleUser, Content: "merhaba"}}
		mockChatSvc.On("History", mock.Anything, testScope).Return(history).Once()

		rr := httptest.NewRecorder()
		handler.GetHistory(rr, newRequest(http.MethodGet, "/v1/chat/history", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var got []model.ChatMessage
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "merhaba", got[0].Content)
	})

	t.Run("Clear", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("ClearHistory", mock.Anything, testScope).Return().Once()

		rr := httptest.NewRecorder()
		handler.ClearHistory(rr, newRequest(http.MethodDelete, "/v1/chat/history", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestChatHandler_ExportHistory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("Export", mock.Anything, testScope).
			Return("sohbet-2026-10-15.txt", "Sen: merhaba\n\nAI: Selam!", nil).Once()

		rr := httptest.NewRecorder()
		handler.ExportHistory(rr, newRequest(http.MethodGet, "/v1/chat/export", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="sohbet-2026-10-15.txt"`, rr.Header().Get("Content-Disposition"))
		assert.Equal(t, "Sen: merhaba\n\nAI: Selam!", rr.Body.String())
	})

	t.Run("Failure - Nothing to export", func(t *testing.T) {
		handler, mockChatSvc, _ := setupChatHandler(t)
		mockChatSvc.On("Export", mock.Anything, testScope).
			Return("", "", app_errors.Public(app_errors.ErrNotFound, "Dışa aktarılacak mesaj bulunamadı.")).Once()

		rr := httptest.NewRecorder()
		handler.ExportHistory(rr, newRequest(http.MethodGet, "/v1/chat/export", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Dışa aktarılacak mesaj bulunamadı.")
	})
}

func TestChatHandler_SummaryQuotaClassify(t *testing.T) {
	handler, mockChatSvc, _ := setupChatHandler(t)
	mockChatSvc.On("Summary", mock.Anything, testScope).Return(model.ConversationSummary{TotalMessages: 4}).Once()
	mockChatSvc.On("Quota", mock.Anything, testScope).Return(service.QuotaStatus{Authenticated: true}).Once()
	mockChatSvc.On("Classify", "mobil site").Return(service.ClassifyResult{Category: "mobile"}).Once()

	rr := httptest.NewRecorder()
	handler.GetSummary(rr, newRequest(http.MethodGet, "/v1/chat/summary", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"totalMessages":4`)

	rr = httptest.NewRecorder()
	handler.GetQuota(rr, newRequest(http.MethodGet, "/v1/chat/quota", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"authenticated":true`)

	rr = httptest.NewRecorder()
	handler.HandleClassify(rr, newRequest(http.MethodPost, "/v1/chat/classify", strings.NewReader(`{"text":"mobil site"}`)))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"category":"mobile"`)
}

func TestChatHandler_HandleEmailTranscript(t *testing.T) {
	t.Run("Success without body", func(t *testing.T) {
		handler, _, mockEmailSvc := setupChatHandler(t)
		mockEmailSvc.On("SendChatTranscript", mock.Anything, testScope, map[string]any(nil)).
			Return(&service.EmailResult{Success: true, Message: "Sohbet geçmişi e-postanıza gönderildi", EmailID: "email_1"}, nil).Once()

		rr := httptest.NewRecorder()
		handler.HandleEmailTranscript(rr, newRequest(http.MethodPost, "/v1/chat/transcript", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "email_1")
	})

	t.Run("Failure - Empty conversation", func(t *testing.T) {
		handler, _, mockEmailSvc := setupChatHandler(t)
		mockEmailSvc.On("SendChatTranscript", mock.Anything, testScope, mock.Anything).
			Return(nil, app_errors.ErrNotFound).Once()

		rr := httptest.NewRecorder()
		handler.HandleEmailTranscript(rr, newRequest(http.MethodPost, "/v1/chat/transcript", strings.NewReader(`{"userInfo":{"page":"home"}}`)))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
