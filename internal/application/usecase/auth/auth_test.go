// Package auth contains authentication use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/budget-pilot/backend/internal/application/adapter"
	"github.com/budget-pilot/backend/internal/domain/entity"
	domainerror "github.com/budget-pilot/backend/internal/domain/error"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	byID    map[uuid.UUID]*entity.User
	failOn  string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*entity.User),
		byID:    make(map[uuid.UUID]*entity.User),
	}
}

func (r *fakeUserRepo) add(user *entity.User) {
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.failOn == "create" {
		return errors.New("db down")
	}
	r.add(user)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if r.failOn == "update" {
		return errors.New("db down")
	}
	r.add(user)
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	user, ok := r.byID[id]
	if !ok {
		return domainerror.ErrUserNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, user.Email)
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if r.failOn == "exists" {
		return false, errors.New("db down")
	}
	_, ok := r.byEmail[email]
	return ok, nil
}

// fakePasswordService hashes by prefixing, which keeps the plain password
// recoverable for verification.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

type fakeTokenService struct {
	issued      int
	invalidated map[string]bool
	claims      map[string]*adapter.TokenClaims
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		invalidated: make(map[string]bool),
		claims:      make(map[string]*adapter.TokenClaims),
	}
}

func (s *fakeTokenService) GenerateTokenPair(_ context.Context, userID uuid.UUID, email string, _ bool) (*adapter.TokenPair, error) {
	s.issued++
	refresh := fmt.Sprintf("refresh-%d", s.issued)
	s.claims[refresh] = &adapter.TokenClaims{
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", s.issued),
		RefreshToken: refresh,
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not used in these tests")
}

func (s *fakeTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	claims, ok := s.claims[token]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return claims, nil
}

func (s *fakeTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.invalidated[token] = true
	return nil
}

func (s *fakeTokenService) InvalidateAllUserTokens(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	_, known := s.claims[token]
	return known && !s.invalidated[token], nil
}

type fakeResetTokenService struct {
	tokens    map[string]*adapter.PasswordResetToken
	generated int
	failOn    string
}

func newFakeResetTokenService() *fakeResetTokenService {
	return &fakeResetTokenService{tokens: make(map[string]*adapter.PasswordResetToken)}
}

func (s *fakeResetTokenService) GenerateResetToken(_ context.Context, userID uuid.UUID, email string) (*adapter.PasswordResetToken, error) {
	if s.failOn == "generate" {
		return nil, errors.New("db down")
	}
	s.generated++
	token := &adapter.PasswordResetToken{
		Token:     fmt.Sprintf("reset-%d", s.generated),
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	s.tokens[token.Token] = token
	return token, nil
}

func (s *fakeResetTokenService) ValidateResetToken(_ context.Context, token string) (*adapter.PasswordResetToken, error) {
	t, ok := s.tokens[token]
	if !ok {
		return nil, errors.New("invalid or expired reset token")
	}
	return t, nil
}

func (s *fakeResetTokenService) InvalidateResetToken(_ context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

type fakeMailer struct {
	sent []adapter.PasswordResetEmailInput
	err  error
}

func (m *fakeMailer) SendPasswordResetEmail(_ context.Context, input adapter.PasswordResetEmailInput) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, input)
	return nil
}

func registeredUser(repo *fakeUserRepo, email, password string) *entity.User {
	user := entity.NewUser(email, "Test User", "hashed:"+password)
	repo.add(user)
	return user
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("registers and signs in a new user", func(t *testing.T) {
		repo := newFakeUserRepo()
		tokens := newFakeTokenService()
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, tokens)

		out, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "secret123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Error("expected a token pair on registration")
		}
		if out.User.PasswordHash != "hashed:secret123" {
			t.Errorf("expected hashed password to be stored, got %q", out.User.PasswordHash)
		}
		if _, ok := repo.byEmail["ana@example.com"]; !ok {
			t.Error("expected user to be persisted")
		}
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(ctx, RegisterUserInput{Email: "not-an-email", Name: "X", Password: "secret123"})
		if !errors.Is(err, domainerror.ErrInvalidEmail) {
			t.Errorf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("rejects weak password", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(ctx, RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "short"})
		if !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		registeredUser(repo, "ana@example.com", "secret123")
		uc := NewRegisterUserUseCase(repo, fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(ctx, RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "secret123"})
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
		}
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeEmailExists {
			t.Errorf("expected code %s, got %v", domainerror.ErrCodeEmailExists, err)
		}
	})
}

func TestLoginUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("issues tokens on valid credentials", func(t *testing.T) {
		repo := newFakeUserRepo()
		user := registeredUser(repo, "ana@example.com", "secret123")
		uc := NewLoginUserUseCase(repo, fakePasswordService{}, newFakeTokenService())

		out, err := uc.Execute(ctx, LoginUserInput{Email: "ana@example.com", Password: "secret123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.ID != user.ID {
			t.Error("expected logged in user to match registered user")
		}
		if out.AccessToken == "" || out.RefreshToken == "" {
			t.Error("expected a token pair")
		}
	})

	t.Run("unknown email and wrong password yield the same error", func(t *testing.T) {
		repo := newFakeUserRepo()
		registeredUser(repo, "ana@example.com", "secret123")
		uc := NewLoginUserUseCase(repo, fakePasswordService{}, newFakeTokenService())

		_, unknownErr := uc.Execute(ctx, LoginUserInput{Email: "ghost@example.com", Password: "secret123"})
		_, wrongErr := uc.Execute(ctx, LoginUserInput{Email: "ana@example.com", Password: "wrong-pass"})

		if !errors.Is(unknownErr, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", unknownErr)
		}
		if !errors.Is(wrongErr, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", wrongErr)
		}
		if unknownErr.Error() != wrongErr.Error() {
			t.Errorf("error messages differ: %q vs %q", unknownErr, wrongErr)
		}
	})
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("rotates the refresh token", func(t *testing.T) {
		tokens := newFakeTokenService()
		pair, _ := tokens.GenerateTokenPair(ctx, userID, "ana@example.com", false)
		uc := NewRefreshTokenUseCase(tokens)

		out, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.RefreshToken == pair.RefreshToken {
			t.Error("expected a new refresh token, got the old one back")
		}
		if !tokens.invalidated[pair.RefreshToken] {
			t.Error("expected old refresh token to be invalidated")
		}
	})

	t.Run("rejects an unknown token", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(newFakeTokenService())

		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: "forged"})
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("rejects a revoked token", func(t *testing.T) {
		tokens := newFakeTokenService()
		pair, _ := tokens.GenerateTokenPair(ctx, userID, "ana@example.com", false)
		_ = tokens.InvalidateRefreshToken(ctx, pair.RefreshToken)
		uc := NewRefreshTokenUseCase(tokens)

		_, err := uc.Execute(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for revoked token, got %v", err)
		}
	})
}

func TestLogoutUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	tokens := newFakeTokenService()
	pair, _ := tokens.GenerateTokenPair(ctx, uuid.New(), "ana@example.com", false)
	uc := NewLogoutUserUseCase(tokens)

	if err := uc.Execute(ctx, LogoutUserInput{RefreshToken: pair.RefreshToken}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tokens.invalidated[pair.RefreshToken] {
		t.Error("expected refresh token to be invalidated")
	}

	// Logging out twice is not an error.
	if err := uc.Execute(ctx, LogoutUserInput{RefreshToken: pair.RefreshToken}); err != nil {
		t.Errorf("expected idempotent logout, got %v", err)
	}
}

func TestForgotPasswordUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	const baseURL = "http://localhost:5173"

	t.Run("sends a reset email to a known user", func(t *testing.T) {
		repo := newFakeUserRepo()
		user := registeredUser(repo, "ana@example.com", "secret123")
		resetTokens := newFakeResetTokenService()
		mailer := &fakeMailer{}
		uc := NewForgotPasswordUseCase(repo, resetTokens, mailer, baseURL)

		out, err := uc.Execute(ctx, ForgotPasswordInput{Email: "ana@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Message != forgotPasswordMessage {
			t.Errorf("unexpected message: %q", out.Message)
		}
		if len(mailer.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(mailer.sent))
		}
		sent := mailer.sent[0]
		if sent.UserEmail != user.Email {
			t.Errorf("email sent to %q, want %q", sent.UserEmail, user.Email)
		}
		if sent.ResetURL != baseURL+"/reset-password?token=reset-1" {
			t.Errorf("unexpected reset URL: %q", sent.ResetURL)
		}
	})

	t.Run("reports the same message for unknown email", func(t *testing.T) {
		resetTokens := newFakeResetTokenService()
		mailer := &fakeMailer{}
		uc := NewForgotPasswordUseCase(newFakeUserRepo(), resetTokens, mailer, baseURL)

		out, err := uc.Execute(ctx, ForgotPasswordInput{Email: "ghost@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Message != forgotPasswordMessage {
			t.Errorf("unexpected message: %q", out.Message)
		}
		if resetTokens.generated != 0 {
			t.Error("expected no reset token for unknown email")
		}
		if len(mailer.sent) != 0 {
			t.Error("expected no email for unknown email")
		}
	})

	t.Run("works without a configured mailer", func(t *testing.T) {
		repo := newFakeUserRepo()
		registeredUser(repo, "ana@example.com", "secret123")
		uc := NewForgotPasswordUseCase(repo, newFakeResetTokenService(), nil, baseURL)

		if _, err := uc.Execute(ctx, ForgotPasswordInput{Email: "ana@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		uc := NewForgotPasswordUseCase(newFakeUserRepo(), newFakeResetTokenService(), nil, baseURL)

		_, err := uc.Execute(ctx, ForgotPasswordInput{Email: "bad"})
		if !errors.Is(err, domainerror.ErrInvalidEmail) {
			t.Errorf("expected ErrInvalidEmail, got %v", err)
		}
	})
}

func TestDeleteAccountUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the account and revokes all tokens", func(t *testing.T) {
		repo := newFakeUserRepo()
		user := registeredUser(repo, "ana@example.com", "secret123")
		tokens := newFakeTokenService()
		pair, _ := tokens.GenerateTokenPair(ctx, user.ID, user.Email, false)
		uc := NewDeleteAccountUseCase(repo, fakePasswordService{}, tokens)

		err := uc.Execute(ctx, DeleteAccountInput{
			UserID:       user.ID,
			Password:     "secret123",
			Confirmation: "DELETE",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.byID[user.ID]; ok {
			t.Error("expected user to be removed")
		}
		if !tokens.invalidated[pair.RefreshToken] {
			t.Error("expected refresh tokens to be revoked")
		}
	})

	t.Run("rejects a wrong confirmation", func(t *testing.T) {
		repo := newFakeUserRepo()
		user := registeredUser(repo, "ana@example.com", "secret123")
		uc := NewDeleteAccountUseCase(repo, fakePasswordService{}, newFakeTokenService())

		err := uc.Execute(ctx, DeleteAccountInput{UserID: user.ID, Password: "secret123", Confirmation: "delete"})
		if !errors.Is(err, domainerror.ErrInvalidConfirmation) {
			t.Errorf("expected ErrInvalidConfirmation, got %v", err)
		}
		if _, ok := repo.byID[user.ID]; !ok {
			t.Error("user must survive a rejected deletion")
		}
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		repo := newFakeUserRepo()
		user := registeredUser(repo, "ana@example.com", "secret123")
		uc := NewDeleteAccountUseCase(repo, fakePasswordService{}, newFakeTokenService())

		err := uc.Execute(ctx, DeleteAccountInput{UserID: user.ID, Password: "wrong-pass", Confirmation: "DELETE"})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("reports an unknown user", func(t *testing.T) {
		uc := NewDeleteAccountUseCase(newFakeUserRepo(), fakePasswordService{}, newFakeTokenService())

		err := uc.Execute(ctx, DeleteAccountInput{UserID: uuid.New(), Password: "secret123", Confirmation: "DELETE"})
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestResetPasswordUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("resets the password and consumes the token", func(t *testing.T) {
		repo := newFakeUserRepo()
		user := registeredUser(repo, "ana@example.com", "oldpass123")
		resetTokens := newFakeResetTokenService()
		token, _ := resetTokens.GenerateResetToken(ctx, user.ID, user.Email)
		uc := NewResetPasswordUseCase(repo, fakePasswordService{}, resetTokens)

		err := uc.Execute(ctx, ResetPasswordInput{Token: token.Token, NewPassword: "newpass456"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.byID[user.ID].PasswordHash != "hashed:newpass456" {
			t.Errorf("password hash not updated: %q", repo.byID[user.ID].PasswordHash)
		}
		if _, ok := resetTokens.tokens[token.Token]; ok {
			t.Error("expected reset token to be consumed")
		}
	})

	t.Run("rejects an unknown token", func(t *testing.T) {
		uc := NewResetPasswordUseCase(newFakeUserRepo(), fakePasswordService{}, newFakeResetTokenService())

		err := uc.Execute(ctx, ResetPasswordInput{Token: "forged", NewPassword: "newpass456"})
		if !errors.Is(err, domainerror.ErrInvalidResetToken) {
			t.Errorf("expected ErrInvalidResetToken, got %v", err)
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		repo := newFakeUserRepo()
		user := registeredUser(repo, "ana@example.com", "oldpass123")
		resetTokens := newFakeResetTokenService()
		token, _ := resetTokens.GenerateResetToken(ctx, user.ID, user.Email)
		resetTokens.tokens[token.Token].ExpiresAt = time.Now().UTC().Add(-time.Minute)
		uc := NewResetPasswordUseCase(repo, fakePasswordService{}, resetTokens)

		err := uc.Execute(ctx, ResetPasswordInput{Token: token.Token, NewPassword: "newpass456"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeExpiredResetToken {
			t.Errorf("expected code %s, got %v", domainerror.ErrCodeExpiredResetToken, err)
		}
	})

	t.Run("rejects a weak replacement password", func(t *testing.T) {
		repo := newFakeUserRepo()
		user := registeredUser(repo, "ana@example.com", "oldpass123")
		resetTokens := newFakeResetTokenService()
		token, _ := resetTokens.GenerateResetToken(ctx, user.ID, user.Email)
		uc := NewResetPasswordUseCase(repo, fakePasswordService{}, resetTokens)

		err := uc.Execute(ctx, ResetPasswordInput{Token: token.Token, NewPassword: "short"})
		if !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
		if repo.byID[user.ID].PasswordHash != "hashed:oldpass123" {
			t.Error("password must not change on weak replacement")
		}
	})
}
