package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app_errors "portfolio-ai/backend/internal/errors"
	"portfolio-ai/backend/internal/llm"
)

// ReplyHandler serves the stateless reply endpoint that remote clients, and
// the remote provider, post whole conversations to.
type ReplyHandler struct {
	provider llm.LLMProvider
}

func NewReplyHandler(provider llm.LLMProvider) *ReplyHandler {
	return &ReplyHandler{provider: provider}
}

// HandleChat godoc
// @Summary      Reply to a conversation
// @Description  Answers the last message of the conversation. Stateless; no quota applies.
// @Tags         Reply
// @Accept       json
// @Produce      json
// @Param        request  body      llm.ChatRequest  true  "Conversation"
// @Success      200      {object}  model.ChatReply
// @Failure      400      {object}  ErrorResponse
// @Failure      405      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /chat [post]
func (h *ReplyHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		respondWithJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
			Error:   "Method not allowed",
			Message: "Only POST requests are supported",
		})
		return
	}

	// Malformed JSON gets the same 400 as a missing messages array.
	var req llm.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadReply(w)
		return
	}
	if err := validateRequest(&req); err != nil {
		slog.Debug("Rejected reply request", "error", err)
		respondBadReply(w)
		return
	}

	reply, err := h.provider.Chat(r.Context(), &req)
	if err != nil {
		if errors.Is(err, app_errors.ErrValidation) {
			respondBadReply(w)
			return
		}
		slog.Error("Chat API error", "error", err)
		respondWithJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal server error",
			Message: "An unexpected error occurred while processing your request",
		})
		return
	}
	respondWithJSON(w, http.StatusOK, reply)
}

func respondBadReply(w http.ResponseWriter) {
	respondWithJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   "Bad request",
		Message: "Messages array is required",
	})
}
