package api

import (
	"net/http"

	"portfolio-ai/backend/internal/interfaces"
	"portfolio-ai/backend/internal/service"
)

// ClassifyRequest is the body of the classify endpoint.
type ClassifyRequest struct {
	Text string `json:"text" validate:"required" example:"Mobil uyumlu site ne kadar?"`
}

// TranscriptEmailRequest carries optional context for the transcript e-mail.
type TranscriptEmailRequest struct {
	UserInfo map[string]any `json:"userInfo,omitempty"`
}

// ChatHandler handles the assistant conversation of the current visitor.
type ChatHandler struct {
	service interfaces.ChatService
	email   interfaces.EmailService
}

func NewChatHandler(svc interfaces.ChatService, email interfaces.EmailService) *ChatHandler {
	return &ChatHandler{service: svc, email: email}
}

// HandleSendMessage godoc
// @Summary      Send a chat message
// @Description  Stores the message, asks the reply provider for an answer and stores that too. Guests are limited to a fixed number of messages.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        message  body      service.SendMessageRequest  true  "Message"
// @Success      200      {object}  service.SendMessageResult
// @Failure      400      {object}  ErrorResponse
// @Failure      429      {object}  QuotaErrorResponse
// @Router       /v1/chat/messages [post]
func (h *ChatHandler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req service.SendMessageRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	result, err := h.service.SendMessage(r.Context(), ScopeFrom(r.Context()), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// GetHistory godoc
// @Summary      Get the conversation
// @Tags         Chat
// @Produce      json
// @Success      200  {array}  model.ChatMessage
// @Router       /v1/chat/history [get]
func (h *ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.History(r.Context(), ScopeFrom(r.Context())))
}

// ClearHistory godoc
// @Summary      Delete the conversation
// @Tags         Chat
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /v1/chat/history [delete]
func (h *ChatHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	h.service.ClearHistory(r.Context(), ScopeFrom(r.Context()))
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// ExportHistory godoc
// @Summary      Download the conversation
// @Description  Plain-text transcript, one "Sen:" or "AI:" block per message.
// @Tags         Chat
// @Produce      plain
// @Success      200  {string}  string
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/chat/export [get]
func (h *ChatHandler) ExportHistory(w http.ResponseWriter, r *http.Request) {
	filename, transcript, err := h.service.Export(r.Context(), ScopeFrom(r.Context()))
	if err != nil {
		respondWithError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(transcript))
}

// GetSummary godoc
// @Summary      Conversation statistics
// @Tags         Chat
// @Produce      json
// @Success      200  {object}  model.ConversationSummary
// @Router       /v1/chat/summary [get]
func (h *ChatHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Summary(r.Context(), ScopeFrom(r.Context())))
}

// GetQuota godoc
// @Summary      Remaining guest messages
// @Tags         Chat
// @Produce      json
// @Success      200  {object}  service.QuotaStatus
// @Router       /v1/chat/quota [get]
func (h *ChatHandler) GetQuota(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Quota(r.Context(), ScopeFrom(r.Context())))
}

// HandleClassify godoc
// @Summary      Classify a text
// @Description  Shows which topic the assistant would answer a text with.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      ClassifyRequest  true  "Text"
// @Success      200      {object}  service.ClassifyResult
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/chat/classify [post]
func (h *ChatHandler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, h.service.Classify(req.Text))
}

// HandleEmailTranscript godoc
// @Summary      E-mail the conversation
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      TranscriptEmailRequest  false  "Extra context"
// @Success      200      {object}  service.EmailResult
// @Failure      404      {object}  ErrorResponse
// @Router       /v1/chat/transcript [post]
func (h *ChatHandler) HandleEmailTranscript(w http.ResponseWriter, r *http.Request) {
	var req TranscriptEmailRequest
	if r.ContentLength != 0 {
		if err := decodeAndValidate(r, &req); err != nil {
			respondWithError(w, err)
			return
		}
	}
	result, err := h.email.SendChatTranscript(r.Context(), ScopeFrom(r.Context()), req.UserInfo)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
