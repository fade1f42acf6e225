package service

import (
	"context"
	"time"

	"alaayoubi/content-api/internal/repository"

	"go.uber.org/zap"
)

// ResetTokenCleanup defines a function used to periodically clear pending
// password reset tokens that expired without being consumed
func ResetTokenCleanup(t time.Duration, users repository.UserRepository) {
	ticker := time.NewTicker(t)

	zap.L().Debug("Reset token cleanup attached", zap.Duration("tick_every", t))

	go func() {
		for range ticker.C {
			cleared, err := users.ClearExpiredResetTokens(context.Background(), time.Now())
			if err != nil {
				zap.L().Error("Failed to clear expired reset tokens", zap.Error(err))
				continue
			}

			if cleared > 0 {
				zap.L().Debug("Cleared expired reset tokens", zap.Int64("count", cleared))
			}
		}
	}()
}
