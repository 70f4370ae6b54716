package api

import (
	"net/http"

	"portfolio-ai/backend/internal/interfaces"
	"portfolio-ai/backend/internal/service"
)

type AnalyticsHandler struct {
	service interfaces.AnalyticsService
}

func NewAnalyticsHandler(svc interfaces.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc}
}

// HandleTrack godoc
// @Summary      Track a visitor event
// @Description  Records a page view or a custom event (category + action) for the visitor.
// @Tags         Analytics
// @Accept       json
// @Produce      json
// @Param        event  body      service.TrackEventRequest  true  "Event"
// @Success      201    {object}  model.AnalyticsEvent
// @Failure      400    {object}  ErrorResponse
// @Router       /v1/analytics/events [post]
func (h *AnalyticsHandler) HandleTrack(w http.ResponseWriter, r *http.Request) {
	var req service.TrackEventRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	req.UserAgent = r.UserAgent()

	event, err := h.service.Track(r.Context(), ScopeFrom(r.Context()), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, event)
}

// GetStats godoc
// @Summary      Event statistics
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  model.EventStats
// @Router       /v1/analytics/stats [get]
func (h *AnalyticsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Stats(r.Context(), ScopeFrom(r.Context())))
}

// ExportData godoc
// @Summary      Export tracked events
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  model.AnalyticsExport
// @Router       /v1/analytics [get]
func (h *AnalyticsHandler) ExportData(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Export(r.Context(), ScopeFrom(r.Context())))
}

// ClearData godoc
// @Summary      Delete tracked events
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /v1/analytics [delete]
func (h *AnalyticsHandler) ClearData(w http.ResponseWriter, r *http.Request) {
	h.service.Clear(r.Context(), ScopeFrom(r.Context()))
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
