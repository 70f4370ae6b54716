package service

import (
	"context"
	"fmt"
	"time"

	app_errors "portfolio-ai/backend/internal/errors"
	"portfolio-ai/backend/internal/metrics"
	"portfolio-ai/backend/internal/model"
	"portfolio-ai/backend/internal/storage"
)

// MaxAnalyticsEvents bounds the per-visitor event log; the oldest events are
// dropped first.
const MaxAnalyticsEvents = 1000

// TrackEventRequest records either a page view or a custom event.
type TrackEventRequest struct {
	Type     string   `json:"type" validate:"required,oneof=page_view event" example:"event"`
	Category string   `json:"category,omitempty" validate:"required_if=Type event,max=100" example:"chat"`
	Action   string   `json:"action,omitempty" validate:"required_if=Type event,max=100" example:"open"`
	Label    string   `json:"label,omitempty" validate:"max=500"`
	Value    *float64 `json:"value,omitempty"`
	Page     string   `json:"page,omitempty" validate:"max=500" example:"/"`
	Title    string   `json:"title,omitempty" validate:"max=200"`
	Referrer string   `json:"referrer,omitempty" validate:"max=500"`
	// UserAgent is taken from the request, not the body.
	UserAgent string `json:"-"`
}

// AnalyticsService keeps a visitor's interaction log in the durable store.
type AnalyticsService struct {
	stores *storage.Stores
	users  UserSource
	now    func() time.Time
}

func NewAnalyticsService(stores *storage.Stores, users UserSource) *AnalyticsService {
	return &AnalyticsService{stores: stores, users: users, now: time.Now}
}

// WithClock replaces the time source. Used by tests.
func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	s.now = now
	return s
}

// Track appends one event, stamped with the session, the signed-in user if
// any, and the current time.
func (s *AnalyticsService) Track(ctx context.Context, scope storage.Scope, req *TrackEventRequest) (*model.AnalyticsEvent, error) {
	event := model.AnalyticsEvent{
		Type:      req.Type,
		Page:      req.Page,
		Referrer:  req.Referrer,
		UserAgent: req.UserAgent,
		SessionID: scope.SessionID,
		Timestamp: s.now().UTC(),
	}
	switch req.Type {
	case model.EventTypePageView:
		event.Title = req.Title
	case model.EventTypeEvent:
		if req.Category == "" || req.Action == "" {
			return nil, fmt.Errorf("%w: category and action are required for events", app_errors.ErrValidation)
		}
		event.Category = req.Category
		event.Action = req.Action
		event.Label = req.Label
		event.Value = req.Value
	default:
		return nil, fmt.Errorf("%w: unknown event type %q", app_errors.ErrValidation, req.Type)
	}
	if user, err := s.users.CurrentUser(ctx, scope); err == nil {
		event.UserID = user.ID
	}

	app := s.stores.For(scope)
	events := append(app.AnalyticsEvents(ctx), event)
	if len(events) > MaxAnalyticsEvents {
		events = events[len(events)-MaxAnalyticsEvents:]
	}
	if !app.SetAnalyticsEvents(ctx, events) {
		return nil, fmt.Errorf("%w: could not record analytics event", app_errors.ErrInternal)
	}
	metrics.AnalyticsEventsTotal.WithLabelValues(event.Type).Inc()
	return &event, nil
}

// Stats counts events by type, category and action, and by age. "Today" is
// the current UTC calendar day; week and month are the last 7 and 30 days.
func (s *AnalyticsService) Stats(ctx context.Context, scope storage.Scope) model.EventStats {
	events := s.stores.For(scope).AnalyticsEvents(ctx)
	stats := model.EventStats{
		Total:      len(events),
		ByType:     map[string]int{},
		ByCategory: map[string]int{},
		ByAction:   map[string]int{},
	}

	now := s.now().UTC()
	weekAgo := now.Add(-7 * 24 * time.Hour)
	monthAgo := now.Add(-30 * 24 * time.Hour)
	y, m, d := now.Date()

	for _, e := range events {
		stats.ByType[e.Type]++
		if e.Category != "" {
			stats.ByCategory[e.Category]++
		}
		if e.Action != "" {
			stats.ByAction[e.Action]++
		}

		ts := e.Timestamp.UTC()
		if ey, em, ed := ts.Date(); ey == y && em == m && ed == d {
			stats.Today++
		}
		if ts.After(weekAgo) {
			stats.ThisWeek++
		}
		if ts.After(monthAgo) {
			stats.ThisMonth++
		}
	}
	return stats
}

func (s *AnalyticsService) Export(ctx context.Context, scope storage.Scope) model.AnalyticsExport {
	events := s.stores.For(scope).AnalyticsEvents(ctx)
	out := model.AnalyticsExport{
		Events:      events,
		SessionID:   scope.SessionID,
		TotalEvents: len(events),
	}
	if user, err := s.users.CurrentUser(ctx, scope); err == nil {
		out.UserID = user.ID
	}
	for _, e := range events {
		if e.Type == model.EventTypePageView {
			out.PageViews++
		}
	}
	if len(events) > 0 {
		first, last := events[0].Timestamp, events[len(events)-1].Timestamp
		out.SessionStart = &first
		out.LastActivity = &last
	}
	return out
}

func (s *AnalyticsService) Clear(ctx context.Context, scope storage.Scope) {
	s.stores.For(scope).ClearAnalyticsEvents(ctx)
}
