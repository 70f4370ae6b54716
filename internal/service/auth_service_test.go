package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	app_errors "portfolio-ai/backend/internal/errors"
	"portfolio-ai/backend/internal/quota"
	"portfolio-ai/backend/internal/service"
	"portfolio-ai/backend/internal/storage"
)

func setupAuthService(t *testing.T) (*service.AuthService, *storage.Stores, *quota.Policy) {
	ctx := context.Background()
	stores := storage.NewMemoryStores(ctx)
	policy := quota.NewPolicy(3, 0)
	auth := service.NewAuthService(stores, policy, bcrypt.MinCost)
	require.NoError(t, auth.EnsureDemoAccount(ctx))
	return auth, stores, policy
}

func publicMessage(t *testing.T, err error) string {
	t.Helper()
	var pe *app_errors.PublicError
	require.True(t, errors.As(err, &pe), "expected a public error, got %v", err)
	return pe.Message
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		auth, stores, _ := setupAuthService(t)

		result, err := auth.SignIn(ctx, guest, &service.SignInRequest{Email: "Demo@Example.com", Password: "demo123"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.Token, "tok_"))
		assert.Equal(t, "user_123", result.User.ID)
		assert.Equal(t, "Demo", result.User.FirstName)
		require.NotNil(t, result.User.ImageURL)
		assert.Equal(t, "assets/images/demo-avatar.jpg", *result.User.ImageURL)

		assert.True(t, auth.IsAuthenticated(ctx, guest))
		assert.Equal(t, result.Token, stores.For(guest).AuthToken(ctx))

		user, err := auth.CurrentUser(ctx, guest)
		require.NoError(t, err)
		assert.Equal(t, "demo@example.com", user.Email)
	})

	t.Run("Failure - Wrong password", func(t *testing.T) {
		auth, _, _ := setupAuthService(t)

		_, err := auth.SignIn(ctx, guest, &service.SignInRequest{Email: service.DemoEmail, Password: "wrong"})
		assert.ErrorIs(t, err, app_errors.ErrUnauthorized)
		assert.Equal(t, "Geçersiz e-posta veya şifre", publicMessage(t, err))
		assert.False(t, auth.IsAuthenticated(ctx, guest))
	})

	t.Run("Failure - Unknown email", func(t *testing.T) {
		auth, _, _ := setupAuthService(t)

		_, err := auth.SignIn(ctx, guest, &service.SignInRequest{Email: "nobody@example.com", Password: "demo123"})
		assert.ErrorIs(t, err, app_errors.ErrUnauthorized)
	})

	t.Run("Resets the guest counter", func(t *testing.T) {
		auth, stores, policy := setupAuthService(t)
		ephemeral := stores.For(guest).Ephemeral
		for i := 0; i < 3; i++ {
			_, err := policy.RecordAccepted(ctx, ephemeral)
			require.NoError(t, err)
		}
		require.False(t, policy.Check(ctx, ephemeral).Allowed)

		_, err := auth.SignIn(ctx, guest, &service.SignInRequest{Email: service.DemoEmail, Password: service.DemoPassword})
		require.NoError(t, err)
		assert.Equal(t, 0, policy.Check(ctx, ephemeral).Count)
	})
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		auth, _, _ := setupAuthService(t)

		result, err := auth.SignUp(ctx, guest, &service.SignUpRequest{
			Email: "ayse@example.com", Password: "secret1", FirstName: "Ayşe", LastName: "Yılmaz",
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.User.ID, "user_"))
		assert.True(t, auth.IsAuthenticated(ctx, guest))

		// The account can be used from another visitor.
		other := storage.Scope{VisitorID: "visitor-2", SessionID: "session-2"}
		again, err := auth.SignIn(ctx, other, &service.SignInRequest{Email: "ayse@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, result.User.ID, again.User.ID)
		assert.NotEqual(t, result.Token, again.Token)
	})

	t.Run("Failure - Email already registered", func(t *testing.T) {
		auth, _, _ := setupAuthService(t)

		_, err := auth.SignUp(ctx, guest, &service.SignUpRequest{
			Email: "DEMO@example.com", Password: "secret1", FirstName: "Taklit",
		})
		assert.ErrorIs(t, err, app_errors.ErrConflict)
		assert.Equal(t, "Bu e-posta adresi zaten kullanımda", publicMessage(t, err))
	})
}

func TestAuthService_SignOut(t *testing.T) {
	ctx := context.Background()
	auth, stores, _ := setupAuthService(t)

	result, err := auth.SignIn(ctx, guest, &service.SignInRequest{Email: service.DemoEmail, Password: service.DemoPassword})
	require.NoError(t, err)

	auth.SignOut(ctx, guest)
	assert.False(t, auth.IsAuthenticated(ctx, guest))
	assert.Nil(t, stores.For(guest).User(ctx))
	assert.Empty(t, stores.For(guest).AuthToken(ctx))

	// A revoked token does not authenticate even if a client replays it.
	app := stores.For(guest)
	require.True(t, app.SetUser(ctx, result.User))
	require.True(t, app.SetAuthToken(ctx, result.Token))
	assert.False(t, auth.IsAuthenticated(ctx, guest))
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure - Not signed in", func(t *testing.T) {
		auth, _, _ := setupAuthService(t)
		name := "Yeni"

		_, err := auth.UpdateProfile(ctx, guest, &service.UpdateProfileRequest{FirstName: &name})
		assert.ErrorIs(t, err, app_errors.ErrUnauthorized)
		assert.Equal(t, "Kullanıcı giriş yapmamış", publicMessage(t, err))
	})

	t.Run("Success", func(t *testing.T) {
		auth, _, _ := setupAuthService(t)
		_, err := auth.SignIn(ctx, guest, &service.SignInRequest{Email: service.DemoEmail, Password: service.DemoPassword})
		require.NoError(t, err)

		name := "Deneme"
		user, err := auth.UpdateProfile(ctx, guest, &service.UpdateProfileRequest{FirstName: &name})
		require.NoError(t, err)
		assert.Equal(t, "Deneme", user.FirstName)
		assert.Equal(t, "User", user.LastName)

		other := storage.Scope{VisitorID: "visitor-2", SessionID: "session-2"}
		result, err := auth.SignIn(ctx, other, &service.SignInRequest{Email: service.DemoEmail, Password: service.DemoPassword})
		require.NoError(t, err)
		assert.Equal(t, "Deneme", result.User.FirstName)
	})
}

func TestAuthService_EnsureDemoAccountIsIdempotent(t *testing.T) {
	ctx := context.Background()
	auth, _, _ := setupAuthService(t)

	require.NoError(t, auth.EnsureDemoAccount(ctx))
	_, err := auth.SignIn(ctx, guest, &service.SignInRequest{Email: service.DemoEmail, Password: service.DemoPassword})
	assert.NoError(t, err)
}
