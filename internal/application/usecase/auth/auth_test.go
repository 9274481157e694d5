package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/salon-manager/backend/internal/application/adapter"
	"github.com/salon-manager/backend/internal/domain/entity"
	domainerror "github.com/salon-manager/backend/internal/domain/error"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

// fakePasswordService hashes by prefixing, which keeps assertions readable.
type fakePasswordService struct{}

func (s *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (s *fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password too short")
	}
	return nil
}

type fakeTokenService struct {
	counter     int
	invalidated map[string]bool
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{invalidated: make(map[string]bool)}
}

func (s *fakeTokenService) GenerateTokenPair(_ context.Context, userID uuid.UUID, email string, _ bool) (*adapter.TokenPair, error) {
	s.counter++
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%s-%d", userID, s.counter),
		RefreshToken: fmt.Sprintf("refresh-%s-%d", userID, s.counter),
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if token == "" {
		return nil, errors.New("empty token")
	}
	return &adapter.TokenClaims{
		UserID:    uuid.New(),
		Email:     "owner@salon.test",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (s *fakeTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.invalidated[token] = true
	return nil
}

func (s *fakeTokenService) InvalidateAllUserTokens(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	return !s.invalidated[token], nil
}

func TestRegisterUser_CreatesAccountWithTokens(t *testing.T) {
	userRepo := newFakeUserRepo()
	useCase := NewRegisterUserUseCase(userRepo, &fakePasswordService{}, newFakeTokenService())

	output, err := useCase.Execute(context.Background(), RegisterUserInput{
		Email:     "owner@salon.test",
		SalonName: "  Shear Genius  ",
		Password:  "correct-horse",
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if output.User.SalonName != "Shear Genius" {
		t.Errorf("expected trimmed salon name, got %q", output.User.SalonName)
	}
	if output.User.PasswordHash != "hashed:correct-horse" {
		t.Errorf("expected hashed password stored, got %q", output.User.PasswordHash)
	}
	if output.AccessToken == "" || output.RefreshToken == "" {
		t.Error("expected token pair in output")
	}
	if _, err := userRepo.FindByEmail(context.Background(), "owner@salon.test"); err != nil {
		t.Errorf("expected account persisted: %v", err)
	}
}

func TestRegisterUser_ValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		input    RegisterUserInput
		wantCode domainerror.AuthErrorCode
	}{
		{
			name:     "blank salon name",
			input:    RegisterUserInput{Email: "a@b.co", SalonName: "   ", Password: "long-enough"},
			wantCode: domainerror.ErrCodeMissingFields,
		},
		{
			name:     "malformed email",
			input:    RegisterUserInput{Email: "not-an-email", SalonName: "Salon", Password: "long-enough"},
			wantCode: domainerror.ErrCodeInvalidEmail,
		},
		{
			name:     "weak password",
			input:    RegisterUserInput{Email: "a@b.co", SalonName: "Salon", Password: "short"},
			wantCode: domainerror.ErrCodeWeakPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{}, newFakeTokenService())
			_, err := useCase.Execute(context.Background(), tt.input)

			var authErr *domainerror.AuthError
			if !errors.As(err, &authErr) || authErr.Code != tt.wantCode {
				t.Fatalf("expected code %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestRegisterUser_DuplicateEmailConflicts(t *testing.T) {
	useCase := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{}, newFakeTokenService())
	input := RegisterUserInput{Email: "owner@salon.test", SalonName: "Salon", Password: "long-enough"}

	if _, err := useCase.Execute(context.Background(), input); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := useCase.Execute(context.Background(), input)
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeEmailExists {
		t.Fatalf("expected email exists error, got %v", err)
	}
}

func TestLoginUser_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	userRepo := newFakeUserRepo()
	registerUseCase := NewRegisterUserUseCase(userRepo, &fakePasswordService{}, newFakeTokenService())
	if _, err := registerUseCase.Execute(context.Background(), RegisterUserInput{
		Email: "owner@salon.test", SalonName: "Salon", Password: "long-enough",
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	loginUseCase := NewLoginUserUseCase(userRepo, &fakePasswordService{}, newFakeTokenService())

	_, wrongPassErr := loginUseCase.Execute(context.Background(), LoginUserInput{
		Email: "owner@salon.test", Password: "wrong",
	})
	_, unknownErr := loginUseCase.Execute(context.Background(), LoginUserInput{
		Email: "nobody@salon.test", Password: "long-enough",
	})

	for _, err := range []error{wrongPassErr, unknownErr} {
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidCredentials {
			t.Fatalf("expected invalid credentials, got %v", err)
		}
	}
	if wrongPassErr.Error() != unknownErr.Error() {
		t.Errorf("wrong-password and unknown-email responses must be indistinguishable: %q vs %q",
			wrongPassErr.Error(), unknownErr.Error())
	}
}

func TestLoginUser_Succeeds(t *testing.T) {
	userRepo := newFakeUserRepo()
	tokens := newFakeTokenService()
	registerUseCase := NewRegisterUserUseCase(userRepo, &fakePasswordService{}, tokens)
	if _, err := registerUseCase.Execute(context.Background(), RegisterUserInput{
		Email: "owner@salon.test", SalonName: "Salon", Password: "long-enough",
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	loginUseCase := NewLoginUserUseCase(userRepo, &fakePasswordService{}, tokens)
	output, err := loginUseCase.Execute(context.Background(), LoginUserInput{
		Email: "owner@salon.test", Password: "long-enough", RememberMe: true,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.AccessToken == "" || output.RefreshToken == "" {
		t.Error("expected token pair in output")
	}
	if output.User.Email != "owner@salon.test" {
		t.Errorf("unexpected user in output: %q", output.User.Email)
	}
}

func TestRefreshToken_RotatesAndInvalidatesOld(t *testing.T) {
	tokens := newFakeTokenService()
	useCase := NewRefreshTokenUseCase(tokens)

	output, err := useCase.Execute(context.Background(), RefreshTokenInput{RefreshToken: "refresh-old"})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.RefreshToken == "refresh-old" {
		t.Error("expected a rotated refresh token")
	}
	if !tokens.invalidated["refresh-old"] {
		t.Error("expected the presented token to be invalidated")
	}
}

func TestRefreshToken_RejectsInvalidatedToken(t *testing.T) {
	tokens := newFakeTokenService()
	tokens.invalidated["refresh-revoked"] = true
	useCase := NewRefreshTokenUseCase(tokens)

	_, err := useCase.Execute(context.Background(), RefreshTokenInput{RefreshToken: "refresh-revoked"})

	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestLogoutUser_AlwaysSucceeds(t *testing.T) {
	tokens := newFakeTokenService()
	useCase := NewLogoutUserUseCase(tokens)

	output, err := useCase.Execute(context.Background(), LogoutUserInput{RefreshToken: "refresh-any"})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.Message == "" {
		t.Error("expected a confirmation message")
	}
	if !tokens.invalidated["refresh-any"] {
		t.Error("expected the refresh token to be invalidated")
	}
}
