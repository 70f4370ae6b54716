package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	app_errors "portfolio-ai/backend/internal/errors"
	"portfolio-ai/backend/internal/model"
	"portfolio-ai/backend/internal/storage"
)

// Outbox entry types.
const (
	EmailTypeContactForm    = "contact_form"
	EmailTypeChatTranscript = "chat_transcript"

	emailStatusSent = "sent"
	siteInbox       = "info@example.com"
)

// UserSource resolves the signed-in user of a scope.
type UserSource interface {
	CurrentUser(ctx context.Context, scope storage.Scope) (*model.User, error)
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100" example:"Ayşe Yılmaz"`
	Email   string `json:"email" validate:"required,email" example:"ayse@example.com"`
	Phone   string `json:"phone,omitempty" validate:"max=30"`
	Subject string `json:"subject,omitempty" validate:"max=150"`
	Message string `json:"message" validate:"required,max=5000"`
}

type EmailResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EmailID string `json:"emailId"`
}

type OutboxStats struct {
	Total  int            `json:"total"`
	ByType map[string]int `json:"byType"`
}

type contactEmail struct {
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	From      string    `json:"from"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type transcriptEmail struct {
	To           string              `json:"to"`
	Subject      string              `json:"subject"`
	Conversation []model.ChatMessage `json:"conversation"`
	Transcript   string              `json:"transcript"`
	Timestamp    time.Time           `json:"timestamp"`
	UserInfo     map[string]any      `json:"userInfo"`
}

// EmailService records outgoing mail in the visitor's outbox instead of
// delivering it.
type EmailService struct {
	stores *storage.Stores
	users  UserSource
	now    func() time.Time
}

func NewEmailService(stores *storage.Stores, users UserSource) *EmailService {
	return &EmailService{stores: stores, users: users, now: time.Now}
}

func (s *EmailService) SendContactForm(ctx context.Context, scope storage.Scope, req *ContactRequest) (*EmailResult, error) {
	subject := req.Subject
	if subject == "" {
		subject = "Genel İletişim"
	}
	id, err := s.enqueue(ctx, scope, EmailTypeContactForm, contactEmail{
		To:        siteInbox,
		Subject:   "İletişim Formu - " + subject,
		From:      req.Email,
		Name:      req.Name,
		Phone:     req.Phone,
		Message:   req.Message,
		Timestamp: s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return &EmailResult{
		Success: true,
		Message: "Mesajınız başarıyla gönderildi. En kısa sürede size dönüş yapacağım.",
		EmailID: id,
	}, nil
}

// SendChatTranscript mails the visitor's conversation to the signed-in
// user's address, or to the demo address for guests.
func (s *EmailService) SendChatTranscript(ctx context.Context, scope storage.Scope, userInfo map[string]any) (*EmailResult, error) {
	history := s.stores.For(scope).ChatHistory(ctx)
	transcript := FormatTranscript(history)
	if transcript == "" {
		return nil, app_errors.Public(app_errors.ErrNotFound, "Gönderilecek mesaj bulunamadı.")
	}

	to := DemoEmail
	if user, err := s.users.CurrentUser(ctx, scope); err == nil {
		to = user.Email
	}
	if userInfo == nil {
		userInfo = map[string]any{}
	}

	id, err := s.enqueue(ctx, scope, EmailTypeChatTranscript, transcriptEmail{
		To:           to,
		Subject:      "Sohbet Geçmişi - Web Geliştirme Danışmanlığı",
		Conversation: history,
		Transcript:   transcript,
		Timestamp:    s.now().UTC(),
		UserInfo:     userInfo,
	})
	if err != nil {
		return nil, err
	}
	return &EmailResult{Success: true, Message: "Sohbet geçmişi e-postanıza gönderildi", EmailID: id}, nil
}

func (s *EmailService) Outbox(ctx context.Context, scope storage.Scope) []model.OutboxEmail {
	return s.stores.For(scope).EmailQueue(ctx)
}

func (s *EmailService) ClearOutbox(ctx context.Context, scope storage.Scope) {
	s.stores.For(scope).ClearEmailQueue(ctx)
	slog.Info("Outbox cleared", "visitor", scope.VisitorID)
}

func (s *EmailService) Stats(ctx context.Context, scope storage.Scope) OutboxStats {
	stats := OutboxStats{ByType: map[string]int{}}
	for _, e := range s.Outbox(ctx, scope) {
		stats.Total++
		stats.ByType[e.Type]++
	}
	return stats
}

func (s *EmailService) enqueue(ctx context.Context, scope storage.Scope, kind string, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", app_errors.ErrSerialization, err)
	}
	email := model.OutboxEmail{
		ID:        "email_" + uuid.NewString(),
		Type:      kind,
		Data:      data,
		Status:    emailStatusSent,
		Timestamp: s.now().UTC(),
	}

	app := s.stores.For(scope)
	if !app.SetEmailQueue(ctx, append(app.EmailQueue(ctx), email)) {
		return "", fmt.Errorf("%w: could not record %s email", app_errors.ErrInternal, kind)
	}
	slog.Info("Email recorded in outbox", "id", email.ID, "type", kind, "visitor", scope.VisitorID)
	return email.ID, nil
}
