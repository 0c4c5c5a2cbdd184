package cron

import (
	"context"
	"time"

	availabilityRepo "terravista/database/repository/availability"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartMaintenance schedules the daily cleanup job. Availability records for
// past dates can never be offered again, so they are pruned shortly after
// midnight.
func StartMaintenance(repo availabilityRepo.AvailabilityRepository) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("10 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		today := time.Now().Format("2006-01-02")
		pruned, err := repo.DeleteBefore(ctx, today)
		if err != nil {
			zap.L().Error("availability prune failed", zap.Error(err))
			return
		}
		if pruned > 0 {
			zap.L().Info("pruned past availabilities", zap.Int64("count", pruned))
		}
	})
	if err != nil {
		zap.L().Error("failed to schedule maintenance job", zap.Error(err))
	}

	c.Start()
	return c
}
