package api

import (
	"net/http"

	"portfolio-ai/backend/internal/interfaces"
	"portfolio-ai/backend/internal/service"
)

// AuthHandler exposes the mock sign-in flow.
type AuthHandler struct {
	service interfaces.AuthService
}

func NewAuthHandler(svc interfaces.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleSignIn godoc
// @Summary      Sign in
// @Description  Signs the visitor in. The demo account is demo@example.com / demo123.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      service.SignInRequest  true  "Credentials"
// @Success      200          {object}  service.AuthResult
// @Failure      400          {object}  ErrorResponse
// @Failure      401          {object}  ErrorResponse
// @Router       /v1/auth/sign-in [post]
func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req service.SignInRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	result, err := h.service.SignIn(r.Context(), ScopeFrom(r.Context()), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// HandleSignUp godoc
// @Summary      Create an account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        account  body      service.SignUpRequest  true  "Account"
// @Success      201      {object}  service.AuthResult
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /v1/auth/sign-up [post]
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req service.SignUpRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	result, err := h.service.SignUp(r.Context(), ScopeFrom(r.Context()), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, result)
}

// HandleSignOut godoc
// @Summary      Sign out
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /v1/auth/sign-out [post]
func (h *AuthHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	h.service.SignOut(r.Context(), ScopeFrom(r.Context()))
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// GetCurrentUser godoc
// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  model.User
// @Failure      401  {object}  ErrorResponse
// @Router       /v1/auth/me [get]
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.CurrentUser(r.Context(), ScopeFrom(r.Context()))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary      Update the profile
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        profile  body      service.UpdateProfileRequest  true  "Fields to change"
// @Success      200      {object}  model.User
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Router       /v1/auth/me [put]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateProfileRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	user, err := h.service.UpdateProfile(r.Context(), ScopeFrom(r.Context()), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}
