package service

import (
	"time"

	"github.com/Maycoooz/DD-bot/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AccountCleanup periodically deletes parent and librarian accounts
// that registered but never verified their email within the grace
// window. Children are created verified so they are never touched
func AccountCleanup(t, grace time.Duration, db *gorm.DB) {
	ticker := time.NewTicker(t)

	zap.L().Debug("Account cleanup attached", zap.Duration("tick_every", t))

	go func() {
		for range ticker.C {
			cutoff := time.Now().Add(-grace)

			res := db.
				Where("is_verified = ? AND created_at < ?", false, cutoff).
				Delete(&model.User{})
			if res.Error != nil {
				zap.L().Error("Failed to cleanup unverified accounts", zap.Error(res.Error))
				continue
			}

			if res.RowsAffected > 0 {
				zap.L().Info("Cleaned up unverified accounts", zap.Int64("count", res.RowsAffected))
			}
		}
	}()
}
