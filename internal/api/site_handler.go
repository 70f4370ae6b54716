package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-ai/backend/internal/interfaces"
	"portfolio-ai/backend/internal/model"
	"portfolio-ai/backend/internal/service"
)

// FormDraftRequest is a partially filled form.
type FormDraftRequest struct {
	Data map[string]any `json:"data" validate:"required"`
}

// TempValueRequest is a value kept for the current session only.
type TempValueRequest struct {
	Value any `json:"value" validate:"required"`
}

// TempValueResponse echoes a session value with its key.
type TempValueResponse struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// SiteHandler serves the visitor's preferences, form drafts, contact form,
// outbox and session.
type SiteHandler struct {
	prefs   interfaces.PreferencesService
	forms   interfaces.FormService
	email   interfaces.EmailService
	session interfaces.SessionStore
}

func NewSiteHandler(prefs interfaces.PreferencesService, forms interfaces.FormService, email interfaces.EmailService, session interfaces.SessionStore) *SiteHandler {
	return &SiteHandler{prefs: prefs, forms: forms, email: email, session: session}
}

// GetPreferences godoc
// @Summary      Get preferences
// @Tags         Preferences
// @Produce      json
// @Success      200  {object}  model.Preferences
// @Router       /v1/preferences [get]
func (h *SiteHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.prefs.Get(r.Context(), ScopeFrom(r.Context())))
}

// UpdatePreferences godoc
// @Summary      Save preferences
// @Tags         Preferences
// @Accept       json
// @Produce      json
// @Param        preferences  body      model.Preferences  true  "Preferences"
// @Success      200          {object}  model.Preferences
// @Failure      400          {object}  ErrorResponse
// @Router       /v1/preferences [put]
func (h *SiteHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var prefs model.Preferences
	if err := decodeAndValidate(r, &prefs); err != nil {
		respondWithError(w, err)
		return
	}
	saved, err := h.prefs.Save(r.Context(), ScopeFrom(r.Context()), &prefs)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, saved)
}

// GetFormDraft godoc
// @Summary      Get a form draft
// @Tags         Forms
// @Produce      json
// @Param        formID  path      string  true  "Form ID"
// @Success      200     {object}  map[string]interface{}
// @Failure      404     {object}  ErrorResponse
// @Router       /v1/forms/{formID} [get]
func (h *SiteHandler) GetFormDraft(w http.ResponseWriter, r *http.Request) {
	data, err := h.forms.Draft(r.Context(), ScopeFrom(r.Context()), chi.URLParam(r, "formID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, data)
}

// SaveFormDraft godoc
// @Summary      Save a form draft
// @Tags         Forms
// @Accept       json
// @Produce      json
// @Param        formID  path      string            true  "Form ID"
// @Param        draft   body      FormDraftRequest  true  "Draft"
// @Success      200     {object}  StatusResponse
// @Failure      400     {object}  ErrorResponse
// @Router       /v1/forms/{formID} [put]
func (h *SiteHandler) SaveFormDraft(w http.ResponseWriter, r *http.Request) {
	var req FormDraftRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.forms.SaveDraft(r.Context(), ScopeFrom(r.Context()), chi.URLParam(r, "formID"), req.Data); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// ClearFormDraft godoc
// @Summary      Delete a form draft
// @Tags         Forms
// @Produce      json
// @Param        formID  path      string  true  "Form ID"
// @Success      200     {object}  StatusResponse
// @Router       /v1/forms/{formID} [delete]
func (h *SiteHandler) ClearFormDraft(w http.ResponseWriter, r *http.Request) {
	h.forms.ClearDraft(r.Context(), ScopeFrom(r.Context()), chi.URLParam(r, "formID"))
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// GetTempValue godoc
// @Summary      Get a session value
// @Tags         Session
// @Produce      json
// @Param        key  path      string  true  "Key"
// @Success      200  {object}  TempValueResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/temp/{key} [get]
func (h *SiteHandler) GetTempValue(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	value, err := h.forms.Temp(r.Context(), ScopeFrom(r.Context()), key)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, TempValueResponse{Key: key, Value: value})
}

// SetTempValue godoc
// @Summary      Store a session value
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        key    path      string            true  "Key"
// @Param        value  body      TempValueRequest  true  "Value"
// @Success      200    {object}  TempValueResponse
// @Failure      400    {object}  ErrorResponse
// @Router       /v1/temp/{key} [put]
func (h *SiteHandler) SetTempValue(w http.ResponseWriter, r *http.Request) {
	var req TempValueRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	key := chi.URLParam(r, "key")
	if err := h.forms.SetTemp(r.Context(), ScopeFrom(r.Context()), key, req.Value); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, TempValueResponse{Key: key, Value: req.Value})
}

// ClearTempValue godoc
// @Summary      Delete a session value
// @Tags         Session
// @Produce      json
// @Param        key  path      string  true  "Key"
// @Success      200  {object}  StatusResponse
// @Router       /v1/temp/{key} [delete]
func (h *SiteHandler) ClearTempValue(w http.ResponseWriter, r *http.Request) {
	h.forms.ClearTemp(r.Context(), ScopeFrom(r.Context()), chi.URLParam(r, "key"))
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleContact godoc
// @Summary      Send the contact form
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        contact  body      service.ContactRequest  true  "Contact form"
// @Success      200      {object}  service.EmailResult
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/contact [post]
func (h *SiteHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	var req service.ContactRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	result, err := h.email.SendContactForm(r.Context(), ScopeFrom(r.Context()), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// GetOutbox godoc
// @Summary      List recorded e-mails
// @Tags         Contact
// @Produce      json
// @Success      200  {array}  model.OutboxEmail
// @Router       /v1/outbox [get]
func (h *SiteHandler) GetOutbox(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.email.Outbox(r.Context(), ScopeFrom(r.Context())))
}

// ClearOutbox godoc
// @Summary      Delete recorded e-mails
// @Tags         Contact
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /v1/outbox [delete]
func (h *SiteHandler) ClearOutbox(w http.ResponseWriter, r *http.Request) {
	h.email.ClearOutbox(r.Context(), ScopeFrom(r.Context()))
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// EndSession godoc
// @Summary      End the session
// @Description  Drops everything kept for the current session, including the guest message counter.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /v1/session [delete]
func (h *SiteHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	h.session.EndSession(r.Context(), ScopeFrom(r.Context()))
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// GetStorageStats godoc
// @Summary      Storage diagnostics
// @Tags         Session
// @Produce      json
// @Success      200  {object}  storage.Stats
// @Router       /v1/storage/stats [get]
func (h *SiteHandler) GetStorageStats(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.session.Stats(r.Context(), ScopeFrom(r.Context())))
}
