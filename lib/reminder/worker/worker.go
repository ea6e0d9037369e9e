package reminderworker

import (
	"context"
	"time"

	"qms-backend/config"
	"qms-backend/lib/certificate"
	"qms-backend/lib/reminder"
	baseworker "qms-backend/lib/utils/base-worker"
)

type workerImpl struct {
	*baseworker.BaseImpl
}

// StartWorker периодический обход планировщика напоминаний
func StartWorker(ctx context.Context) {
	firstRunDelay := time.Duration(config.Conf.Reminder.FirstRunDelaySec) * time.Second
	runInterval := time.Duration(config.Conf.Reminder.SweepIntervalMin) * time.Minute
	worker := workerImpl{
		BaseImpl: baseworker.NewInstance("reminder_sweep", firstRunDelay, runInterval),
	}
	go worker.Run(ctx, worker.sweep)
}

func (i workerImpl) sweep(ctx context.Context) {
	now := time.Now()
	certificate.Instance.RefreshStatuses(now)
	reminder.Instance.RunSweep(ctx, now)
}
