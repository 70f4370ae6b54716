package service

import (
	"strings"
	"time"

	"portfolio-ai/backend/internal/model"
)

// FormatTranscript renders one "label: content" block per message, blocks
// separated by a blank line. System messages are left out.
func FormatTranscript(messages []model.ChatMessage) string {
	blocks := make([]string, 0, len(messages))
	for _, m := range messages {
		if m.Role == model.RoleSystem {
			continue
		}
		label := "AI"
		if m.Role == model.RoleUser {
			label = "Sen"
		}
		blocks = append(blocks, label+": "+m.Content)
	}
	return strings.Join(blocks, "\n\n")
}

// ExportFilename is the download name of a transcript exported at t.
func ExportFilename(t time.Time) string {
	return "sohbet-" + t.UTC().Format(time.DateOnly) + ".txt"
}

// Summarize counts messages by role and measures the time between the first
// and the last one.
func Summarize(messages []model.ChatMessage) model.ConversationSummary {
	s := model.ConversationSummary{TotalMessages: len(messages)}
	for _, m := range messages {
		switch m.Role {
		case model.RoleUser:
			s.UserMessages++
		case model.RoleAssistant:
			s.AIMessages++
		}
	}
	if len(messages) > 0 {
		s.DurationMs = messages[len(messages)-1].Timestamp.Sub(messages[0].Timestamp).Milliseconds()
	}
	return s
}
