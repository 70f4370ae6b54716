package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio-ai/backend/internal/api"
	app_errors "portfolio-ai/backend/internal/errors"
	"portfolio-ai/backend/internal/interfaces/mocks"
	"portfolio-ai/backend/internal/model"
	"portfolio-ai/backend/internal/service"
)

func setupAuthHandler(t *testing.T) (*api.AuthHandler, *mocks.MockAuthService) {
	mockAuthSvc := mocks.NewMockAuthService(t)
	return api.NewAuthHandler(mockAuthSvc), mockAuthSvc
}

func TestAuthHandler_HandleSignIn(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockAuthSvc := setupAuthHandler(t)
		mockAuthSvc.On("SignIn", mock.Anything, testScope, &service.SignInRequest{Email: "demo@example.com", Password: "demo123"}).
			Return(&service.AuthResult{User: model.User{ID: "user_123"}, Token: "tok_abc"}, nil).Once()

		rr := httptest.NewRecorder()
		handler.HandleSignIn(rr, newRequest(http.MethodPost, "/v1/auth/sign-in",
			strings.NewReader(`{"email":"demo@example.com","password":"demo123"}`)))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "tok_abc")
	})

	t.Run("Failure - Wrong credentials", func(t *testing.T) {
		handler, mockAuthSvc := setupAuthHandler(t)
		mockAuthSvc.On("SignIn", mock.Anything, testScope, mock.Anything).
			Return(nil, app_errors.Public(app_errors.ErrUnauthorized, "Geçersiz e-posta veya şifre")).Once()

		rr := httptest.NewRecorder()
		handler.HandleSignIn(rr, newRequest(http.MethodPost, "/v1/auth/sign-in",
			strings.NewReader(`{"email":"demo@example.com","password":"nope"}`)))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"Geçersiz e-posta veya şifre"}`, rr.Body.String())
	})

	t.Run("Failure - Invalid email", func(t *testing.T) {
		handler, _ := setupAuthHandler(t)

		rr := httptest.NewRecorder()
		handler.HandleSignIn(rr, newRequest(http.MethodPost, "/v1/auth/sign-in",
			strings.NewReader(`{"email":"not-an-email","password":"x"}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Field 'email' failed on the 'email' tag")
	})
}

func TestAuthHandler_HandleSignUp(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockAuthSvc := setupAuthHandler(t)
		mockAuthSvc.On("SignUp", mock.Anything, testScope, mock.MatchedBy(func(r *service.SignUpRequest) bool {
			return r.Email == "ayse@example.com" && r.FirstName == "Ayşe"
		})).Return(&service.AuthResult{User: model.User{ID: "user_1"}, Token: "tok_1"}, nil).Once()

		rr := httptest.NewRecorder()
		handler.HandleSignUp(rr, newRequest(http.MethodPost, "/v1/auth/sign-up",
			strings.NewReader(`{"email":"ayse@example.com","password":"secret1","firstName":"Ayşe"}`)))
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Failure - Password too short", func(t *testing.T) {
		handler, _ := setupAuthHandler(t)

		rr := httptest.NewRecorder()
		handler.HandleSignUp(rr, newRequest(http.MethodPost, "/v1/auth/sign-up",
			strings.NewReader(`{"email":"ayse@example.com","password":"123","firstName":"Ayşe"}`)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Field 'password' failed on the 'min' tag (6)")
	})

	t.Run("Failure - Email taken", func(t *testing.T) {
		handler, mockAuthSvc := setupAuthHandler(t)
		mockAuthSvc.On("SignUp", mock.Anything, testScope, mock.Anything).
			Return(nil, app_errors.Public(app_errors.ErrConflict, "Bu e-posta adresi zaten kullanımda")).Once()

		rr := httptest.NewRecorder()
		handler.HandleSignUp(rr, newRequest(http.MethodPost, "/v1/auth/sign-up",
			strings.NewReader(`{"email":"demo@example.com","password":"secret1","firstName":"Demo"}`)))
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), "Bu e-posta adresi zaten kullanımda")
	})
}

func TestAuthHandler_Profile(t *testing.T) {
	t.Run("Not signed in", func(t *testing.T) {
		handler, mockAuthSvc := setupAuthHandler(t)
		mockAuthSvc.On("CurrentUser", mock.Anything, testScope).
			Return(nil, app_errors.Public(app_errors.ErrUnauthorized, "Kullanıcı giriş yapmamış")).Once()

		rr := httptest.NewRecorder()
		handler.GetCurrentUser(rr, newRequest(http.MethodGet, "/v1/auth/me", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Update", func(t *testing.T) {
		handler, mockAuthSvc := setupAuthHandler(t)
		mockAuthSvc.On("UpdateProfile", mock.Anything, testScope, mock.MatchedBy(func(r *service.UpdateProfileRequest) bool {
			return r.FirstName != nil && *r.FirstName == "Yeni" && r.LastName == nil
		})).Return(&model.User{ID: "user_123", FirstName: "Yeni"}, nil).Once()

		rr := httptest.NewRecorder()
		handler.UpdateProfile(rr, newRequest(http.MethodPut, "/v1/auth/me", strings.NewReader(`{"firstName":"Yeni"}`)))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"firstName":"Yeni"`)
	})

	t.Run("Sign out", func(t *testing.T) {
		handler, mockAuthSvc := setupAuthHandler(t)
		mockAuthSvc.On("SignOut", mock.Anything, testScope).Return().Once()

		rr := httptest.NewRecorder()
		handler.HandleSignOut(rr, newRequest(http.MethodPost, "/v1/auth/sign-out", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
