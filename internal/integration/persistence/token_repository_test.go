package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	expiresAt := time.Now().UTC().Add(time.Hour)

	t.Run("saved token is valid", func(t *testing.T) {
		if err := repo.SaveRefreshToken(ctx, "token-a", userID, expiresAt); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-a")
		if err != nil {
			t.Fatalf("validity check failed: %v", err)
		}
		if !valid {
			t.Error("expected freshly saved token to be valid")
		}
	})

	t.Run("unknown token is invalid without error", func(t *testing.T) {
		valid, err := repo.IsRefreshTokenValid(ctx, "never-issued")
		if err != nil {
			t.Fatalf("validity check failed: %v", err)
		}
		if valid {
			t.Error("unknown token must not validate")
		}
	})

	t.Run("expired token is invalid", func(t *testing.T) {
		if err := repo.SaveRefreshToken(ctx, "token-expired", userID, time.Now().UTC().Add(-time.Minute)); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-expired")
		if err != nil {
			t.Fatalf("validity check failed: %v", err)
		}
		if valid {
			t.Error("expired token must not validate")
		}
	})

	t.Run("invalidate single token", func(t *testing.T) {
		if err := repo.SaveRefreshToken(ctx, "token-b", userID, expiresAt); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		if err := repo.InvalidateRefreshToken(ctx, "token-b"); err != nil {
			t.Fatalf("invalidate failed: %v", err)
		}

		valid, err := repo.IsRefreshTokenValid(ctx, "token-b")
		if err != nil {
			t.Fatalf("validity check failed: %v", err)
		}
		if valid {
			t.Error("invalidated token must not validate")
		}
	})

	t.Run("invalidate all tokens for account", func(t *testing.T) {
		other := uuid.New()
		if err := repo.SaveRefreshToken(ctx, "token-c", userID, expiresAt); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		if err := repo.SaveRefreshToken(ctx, "token-other", other, expiresAt); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		if err := repo.InvalidateAllUserTokens(ctx, userID); err != nil {
			t.Fatalf("invalidate all failed: %v", err)
		}

		valid, _ := repo.IsRefreshTokenValid(ctx, "token-c")
		if valid {
			t.Error("user token must be invalidated")
		}
		valid, _ = repo.IsRefreshTokenValid(ctx, "token-other")
		if !valid {
			t.Error("other account's token must stay valid")
		}
	})
}
