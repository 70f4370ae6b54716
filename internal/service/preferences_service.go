package service

import (
	"context"
	"fmt"
	"log/slog"

	app_errors "portfolio-ai/backend/internal/errors"
	"portfolio-ai/backend/internal/model"
	"portfolio-ai/backend/internal/storage"
)

type PreferencesService struct {
	stores *storage.Stores
}

func NewPreferencesService(stores *storage.Stores) *PreferencesService {
	return &PreferencesService{stores: stores}
}

// Get returns the visitor's preferences, or the defaults when none are saved.
func (s *PreferencesService) Get(ctx context.Context, scope storage.Scope) model.Preferences {
	return s.stores.For(scope).Preferences(ctx)
}

func (s *PreferencesService) Save(ctx context.Context, scope storage.Scope, prefs *model.Preferences) (*model.Preferences, error) {
	if !s.stores.For(scope).SetPreferences(ctx, *prefs) {
		return nil, fmt.Errorf("%w: could not save preferences", app_errors.ErrInternal)
	}
	slog.Debug("Preferences saved", "visitor", scope.VisitorID, "theme", prefs.Theme, "language", prefs.Language)
	return prefs, nil
}
