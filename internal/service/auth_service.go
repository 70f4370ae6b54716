package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	app_errors "portfolio-ai/backend/internal/errors"
	"portfolio-ai/backend/internal/model"
	"portfolio-ai/backend/internal/quota"
	"portfolio-ai/backend/internal/storage"
)

const (
	accountsNamespace = "accounts"
	emailKeyPrefix    = "email:"
	tokenKeyPrefix    = "token:"

	DemoEmail    = "demo@example.com"
	DemoPassword = "demo123"
	demoAvatar   = "assets/images/demo-avatar.jpg"
)

var (
	errInvalidCredentials = app_errors.Public(app_errors.ErrUnauthorized, "Geçersiz e-posta veya şifre")
	errEmailTaken         = app_errors.Public(app_errors.ErrConflict, "Bu e-posta adresi zaten kullanımda")
	errNotSignedIn        = app_errors.Public(app_errors.ErrUnauthorized, "Kullanıcı giriş yapmamış")
)

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email" example:"demo@example.com"`
	Password string `json:"password" validate:"required" example:"demo123"`
}

type SignUpRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"max=50"`
}

// UpdateProfileRequest changes only the fields that are set.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,min=1,max=50"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,max=50"`
	ImageURL  *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

type AuthResult struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// AuthService is a mock identity provider. Accounts and issued tokens live
// in a shared durable namespace; the signed-in user and token are copied into
// the visitor's own namespace, like a browser session would hold them.
type AuthService struct {
	stores       *storage.Stores
	quota        *quota.Policy
	passwordCost int
	now          func() time.Time
}

func NewAuthService(stores *storage.Stores, policy *quota.Policy, passwordCost int) *AuthService {
	return &AuthService{stores: stores, quota: policy, passwordCost: passwordCost, now: time.Now}
}

func (s *AuthService) accounts() storage.Store { return s.stores.Shared(accountsNamespace) }

func emailKey(email string) string { return emailKeyPrefix + strings.ToLower(strings.TrimSpace(email)) }

// EnsureDemoAccount registers the demo user unless it already exists.
func (s *AuthService) EnsureDemoAccount(ctx context.Context) error {
	if s.accounts().HasItem(ctx, emailKey(DemoEmail)) {
		return nil
	}
	now := s.now().UTC()
	avatar := demoAvatar
	_, err := s.register(ctx, model.User{
		ID:         "user_123",
		Email:      DemoEmail,
		FirstName:  "Demo",
		LastName:   "User",
		ImageURL:   &avatar,
		CreatedAt:  now,
		LastSignIn: now,
	}, DemoPassword)
	if err != nil {
		return fmt.Errorf("could not create demo account: %w", err)
	}
	slog.Info("Demo account created", "email", DemoEmail)
	return nil
}

func (s *AuthService) SignIn(ctx context.Context, scope storage.Scope, req *SignInRequest) (*AuthResult, error) {
	account := storage.Get[*model.Account](ctx, s.accounts(), emailKey(req.Email), nil)
	if account == nil {
		return nil, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(req.Password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			slog.Error("Password check failed", "error", err)
		}
		return nil, errInvalidCredentials
	}

	account.User.LastSignIn = s.now().UTC()
	if !s.accounts().SetItem(ctx, emailKey(account.User.Email), account) {
		slog.Warn("Could not record sign-in time", "user_id", account.User.ID)
	}
	return s.startSession(ctx, scope, account.User)
}

func (s *AuthService) SignUp(ctx context.Context, scope storage.Scope, req *SignUpRequest) (*AuthResult, error) {
	now := s.now().UTC()
	user, err := s.register(ctx, model.User{
		ID:         "user_" + uuid.NewString(),
		Email:      strings.TrimSpace(req.Email),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		CreatedAt:  now,
		LastSignIn: now,
	}, req.Password)
	if err != nil {
		return nil, err
	}
	return s.startSession(ctx, scope, *user)
}

// SignOut revokes the visitor's token and forgets the user record.
func (s *AuthService) SignOut(ctx context.Context, scope storage.Scope) {
	app := s.stores.For(scope)
	if token := app.AuthToken(ctx); token != "" {
		s.accounts().RemoveItem(ctx, tokenKeyPrefix+token)
	}
	app.ClearUser(ctx)
	slog.Info("User signed out", "visitor", scope.VisitorID)
}

// IsAuthenticated reports whether the visitor holds a live token issued to
// the stored user.
func (s *AuthService) IsAuthenticated(ctx context.Context, scope storage.Scope) bool {
	_, err := s.CurrentUser(ctx, scope)
	return err == nil
}

func (s *AuthService) CurrentUser(ctx context.Context, scope storage.Scope) (*model.User, error) {
	app := s.stores.For(scope)
	user := app.User(ctx)
	token := app.AuthToken(ctx)
	if user == nil || token == "" {
		return nil, errNotSignedIn
	}
	if storage.Get(ctx, s.accounts(), tokenKeyPrefix+token, "") != user.ID {
		return nil, errNotSignedIn
	}
	return user, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, scope storage.Scope, req *UpdateProfileRequest) (*model.User, error) {
	user, err := s.CurrentUser(ctx, scope)
	if err != nil {
		return nil, err
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.ImageURL != nil {
		user.ImageURL = req.ImageURL
	}

	account := storage.Get[*model.Account](ctx, s.accounts(), emailKey(user.Email), nil)
	if account == nil {
		return nil, fmt.Errorf("%w: account for %s", app_errors.ErrNotFound, user.Email)
	}
	account.User = *user
	if !s.accounts().SetItem(ctx, emailKey(user.Email), account) || !s.stores.For(scope).SetUser(ctx, *user) {
		return nil, fmt.Errorf("%w: could not save profile", app_errors.ErrInternal)
	}
	return user, nil
}

func (s *AuthService) register(ctx context.Context, user model.User, password string) (*model.User, error) {
	key := emailKey(user.Email)
	if s.accounts().HasItem(ctx, key) {
		return nil, errEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.passwordCost)
	if err != nil {
		return nil, fmt.Errorf("%w: could not hash password: %v", app_errors.ErrInternal, err)
	}
	if !s.accounts().SetItem(ctx, key, model.Account{User: user, PasswordHash: hash}) {
		return nil, fmt.Errorf("%w: could not save account", app_errors.ErrInternal)
	}
	return &user, nil
}

// startSession issues a token, stores it with the user in the visitor's
// namespace and lifts the guest quota.
func (s *AuthService) startSession(ctx context.Context, scope storage.Scope, user model.User) (*AuthResult, error) {
	token := "tok_" + uuid.NewString()
	if !s.accounts().SetItem(ctx, tokenKeyPrefix+token, user.ID) {
		return nil, fmt.Errorf("%w: could not issue token", app_errors.ErrInternal)
	}

	app := s.stores.For(scope)
	app.SetUser(ctx, user)
	app.SetAuthToken(ctx, token)
	s.quota.Reset(ctx, app.Ephemeral)

	slog.Info("User signed in", "user_id", user.ID, "visitor", scope.VisitorID)
	return &AuthResult{User: user, Token: token}, nil
}
