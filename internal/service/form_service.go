package service

import (
	"context"
	"fmt"

	app_errors "portfolio-ai/backend/internal/errors"
	"portfolio-ai/backend/internal/storage"
)

// FormService keeps half-filled form drafts across visits and short-lived
// values for the current session.
type FormService struct {
	stores *storage.Stores
}

func NewFormService(stores *storage.Stores) *FormService {
	return &FormService{stores: stores}
}

func (s *FormService) SaveDraft(ctx context.Context, scope storage.Scope, formID string, data map[string]any) error {
	if formID == "" {
		return fmt.Errorf("%w: form id is required", app_errors.ErrValidation)
	}
	if !s.stores.For(scope).SaveFormData(ctx, formID, data) {
		return fmt.Errorf("%w: could not save draft %q", app_errors.ErrInternal, formID)
	}
	return nil
}

func (s *FormService) Draft(ctx context.Context, scope storage.Scope, formID string) (map[string]any, error) {
	data := s.stores.For(scope).FormData(ctx, formID)
	if data == nil {
		return nil, fmt.Errorf("%w: no draft for form %q", app_errors.ErrNotFound, formID)
	}
	return data, nil
}

func (s *FormService) ClearDraft(ctx context.Context, scope storage.Scope, formID string) {
	s.stores.For(scope).ClearFormData(ctx, formID)
}

func (s *FormService) SetTemp(ctx context.Context, scope storage.Scope, key string, value any) error {
	if key == "" {
		return fmt.Errorf("%w: key is required", app_errors.ErrValidation)
	}
	if !s.stores.For(scope).SetTemp(ctx, key, value) {
		return fmt.Errorf("%w: could not save temporary value %q", app_errors.ErrInternal, key)
	}
	return nil
}

// Temp returns the session value stored under key.
func (s *FormService) Temp(ctx context.Context, scope storage.Scope, key string) (any, error) {
	value := s.stores.For(scope).Temp(ctx, key, nil)
	if value == nil {
		return nil, fmt.Errorf("%w: no temporary value %q", app_errors.ErrNotFound, key)
	}
	return value, nil
}

func (s *FormService) ClearTemp(ctx context.Context, scope storage.Scope, key string) {
	s.stores.For(scope).ClearTemp(ctx, key)
}
