// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/salon-manager/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for account logout.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserOutput represents the output of account logout.
type LogoutUserOutput struct {
	Message string
}

// LogoutUserUseCase handles account logout logic.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the logout by invalidating the refresh token. The token
// may already be invalid, which still counts as a successful logout.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)

	return &LogoutUserOutput{
		Message: "Successfully logged out",
	}, nil
}
