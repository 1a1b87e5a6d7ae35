package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/andresrv/blogpress-backend/internal/app/repository"
	"github.com/andresrv/blogpress-backend/pkg/logger"
)

// ResetTokenScheduler periodically clears expired password reset tokens.
// Expired tokens are already unusable; the sweep keeps stale digests from
// accumulating on the users table.
type ResetTokenScheduler struct {
	cron     *cron.Cron
	userRepo repository.UserRepository
}

func NewResetTokenScheduler(userRepo repository.UserRepository) *ResetTokenScheduler {
	return &ResetTokenScheduler{
		cron:     cron.New(),
		userRepo: userRepo,
	}
}

// Start runs the sweep at the top of every hour.
func (s *ResetTokenScheduler) Start() error {
	_, err := s.cron.AddFunc("0 * * * *", func() {
		cleared, err := s.userRepo.ClearExpiredResetTokens(time.Now())
		if err != nil {
			logger.Error("Failed to clear expired reset tokens", err)
			return
		}
		if cleared > 0 {
			logger.Info("Cleared expired reset tokens", map[string]interface{}{
				"count": cleared,
			})
		}
	})
	if err != nil {
		logger.Error("Failed to add cron job for reset token cleanup", err)
		return err
	}

	s.cron.Start()
	logger.Info("Reset token scheduler started (hourly)", nil)
	return nil
}

func (s *ResetTokenScheduler) Stop() {
	logger.Info("Stopping reset token scheduler...")
	s.cron.Stop()
	logger.Info("Reset token scheduler stopped")
}
